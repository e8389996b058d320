package geometry

import (
	"encoding/json"
	"fmt"
	"io"

	"gonum.org/v1/gonum/spatial/r3"

	"foamgen/pkg/errors"
)

// ReadPolylines decodes polylines from JSON: an array of paths, each an array
// of [x, y, z] triples. This is the interchange format the CLI accepts for
// exported CAD toolpaths.
func ReadPolylines(r io.Reader) ([]PointSource, error) {
	var raw [][][]float64
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.GeometryDecodeError("invalid polyline JSON", err)
	}

	sources := make([]PointSource, 0, len(raw))
	for i, rawPath := range raw {
		pl := make(Polyline, 0, len(rawPath))
		for j, triple := range rawPath {
			if len(triple) != 3 {
				return nil, errors.GeometryDecodeError(
					fmt.Sprintf("path %d point %d has %d coordinates, want 3", i, j, len(triple)), nil)
			}
			pl = append(pl, r3.Vec{X: triple[0], Y: triple[1], Z: triple[2]})
		}
		sources = append(sources, pl)
	}
	return sources, nil
}
