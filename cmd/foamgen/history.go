package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"foamgen/pkg/history"
)

var (
	historyDB    string
	historyLimit int
)

func init() {
	historyCmd.Flags().StringVar(&historyDB, "db", "foamgen-history.db", "history database file")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of runs to show")
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded compilation runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.Open(historyDB)
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.Recent(historyLimit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no runs recorded")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "RUN\tMODE\tPATHS\tLINES\tSTATUS\tOUTPUT\tWHEN")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%s\t%s\n",
				shortID(e.RunID.String()), e.Mode, e.Paths, e.Lines,
				e.Status, orDash(e.OutputPath), e.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		return w.Flush()
	},
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
