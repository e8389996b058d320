// Package main implements the foamgen CLI.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"foamgen/pkg/log"
)

var rootCmd = &cobra.Command{
	Use:   "foamgen",
	Short: "Toolpath to G-code compiler for FOAM machines",
	Long:  "foamgen compiles ordered toolpath geometry into executable G-code for hot extrusion, clay paste and pen plotting setups.",
}

var (
	flagLogLevel  string
	flagLogFormat string
	flagNoColor   bool
)

func main() {
	rootCmd.Version = Version

	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "log format (text|json)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		log.Default().SetLevel(log.ParseLevel(flagLogLevel))
		if flagLogFormat == "json" {
			log.Default().SetFormat(log.FormatJSON)
		}
		if flagNoColor {
			color.NoColor = true
			log.Default().SetColorize(false)
		}
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
