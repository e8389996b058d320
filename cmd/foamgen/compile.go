package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"foamgen/pkg/compiler"
	"foamgen/pkg/errors"
	"foamgen/pkg/geometry"
	"foamgen/pkg/history"
	"foamgen/pkg/log"
	"foamgen/pkg/profile"
	"foamgen/pkg/program"
)

var (
	compileProfile string
	compileMode    string
	compileOutput  string
	compileBase    string
	compileHistory string
	compilePreview int
)

func init() {
	compileCmd.Flags().StringVarP(&compileProfile, "profile", "p", "", "machine profile file (TOML)")
	compileCmd.Flags().StringVarP(&compileMode, "mode", "m", "Pen", "process mode when no profile file is given (Hot|Clay|Pen)")
	compileCmd.Flags().StringVarP(&compileOutput, "output", "o", "", "write G-code to this file instead of stdout")
	compileCmd.Flags().StringVar(&compileBase, "base", "", "G-code file whose contents replace the synthesized header")
	compileCmd.Flags().StringVar(&compileHistory, "history", "", "record the run in this history database")
	compileCmd.Flags().IntVar(&compilePreview, "preview", 0, "print only the first N lines plus a total")
}

var compileCmd = &cobra.Command{
	Use:   "compile [flags] geometry.json",
	Short: "Compile toolpath geometry into G-code",
	Long: "Compile reads polyline geometry (JSON, a list of paths where each path " +
		"is a list of [x, y, z] points), validates it against the machine envelope " +
		"and emits a complete G-code program. Out-of-bounds geometry is reported " +
		"but never blocks generation.",
	Args: cobra.ExactArgs(1),
	RunE: compileExecution,
}

func compileExecution(cmd *cobra.Command, args []string) error {
	logger := log.Default().Component("cli")

	prof, err := loadProfile()
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return errors.GeometryDecodeError(args[0], err)
	}
	sources, err := geometry.ReadPolylines(f)
	f.Close()
	if err != nil {
		return err
	}

	base, err := loadBase()
	if err != nil {
		return err
	}

	res := compiler.New(log.Default().Component("compiler")).Compile(sources, prof, base)
	logger.WithFields(log.Fields{"run": res.RunID}).Infof("compiled %d path(s) to %d line(s)", len(res.Paths), len(res.Program))

	if err := writeOutput(cmd, res); err != nil {
		return err
	}
	printStatus(cmd, res)

	if compileHistory != "" {
		if err := recordRun(res, prof); err != nil {
			logger.Errorf("history: %v", err)
			return err
		}
	}
	return nil
}

func loadProfile() (profile.Profile, error) {
	if compileProfile != "" {
		return profile.LoadFile(compileProfile)
	}
	switch strings.ToLower(compileMode) {
	case "hot":
		return profile.NewHot(profile.HotSetup{}), nil
	case "clay":
		return profile.NewClay(profile.ClaySetup{}), nil
	case "pen":
		return profile.NewPen(profile.PenSetup{}), nil
	}
	return profile.Profile{}, fmt.Errorf("unknown mode %q (must be Hot, Clay or Pen)", compileMode)
}

func loadBase() (program.Program, error) {
	if compileBase == "" {
		return nil, nil
	}
	f, err := os.Open(compileBase)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrProgramParse, "opening base G-code")
	}
	defer f.Close()
	return program.ParseProgram(f)
}

// writeOutput saves the complete program when a destination is given. The
// preview is a display rendering only; it never replaces the saved file.
func writeOutput(cmd *cobra.Command, res compiler.Result) error {
	text := res.Program.Text() + "\n"
	if compileOutput != "" {
		if err := os.WriteFile(compileOutput, []byte(text), 0o644); err != nil {
			return errors.ProgramWriteError(compileOutput, err)
		}
	}
	switch {
	case compilePreview > 0:
		fmt.Fprintln(cmd.OutOrStdout(), res.Preview(compilePreview))
	case compileOutput == "":
		fmt.Fprint(cmd.OutOrStdout(), text)
	}
	return nil
}

func printStatus(cmd *cobra.Command, res compiler.Result) {
	out := cmd.ErrOrStderr()
	fmt.Fprintln(out, res.Report())
	if res.Diagnostics.Violations > 0 {
		color.New(color.FgYellow).Fprintf(out, "warning: %s\n", res.Status)
		for _, ann := range res.Diagnostics.Annotations {
			fmt.Fprintf(out, "  (%g, %g, %g): %s\n", ann.Point.X, ann.Point.Y, ann.Point.Z, ann.Label())
		}
	} else {
		color.New(color.FgGreen).Fprintln(out, "within bounds")
	}
}

func recordRun(res compiler.Result, prof profile.Profile) error {
	store, err := history.Open(compileHistory)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Record(history.Entry{
		RunID:      res.RunID,
		Mode:       string(prof.Mode),
		Status:     res.Status,
		Paths:      len(res.Paths),
		Lines:      len(res.Program),
		OutputPath: compileOutput,
	})
}
