// Package cmd holds the tabx command-line entry point: a thin wrapper that
// prepares in-process data, hands it to pkg/table, and writes the rendered
// block to stdout.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/oakwood-commons/tabx/pkg/logger"
	"github.com/oakwood-commons/tabx/pkg/settings"
	"github.com/oakwood-commons/tabx/pkg/table"
)

var (
	maxRows   int
	separator string
	logLevel  int8
)

// listeningPorts is a captured snapshot of lsof-style output used as the
// demo dataset. The CLI exists to exercise the renderer end to end; data
// gathering is intentionally not its job.
var listeningPorts = [][]string{
	{"rapportd", "449", "Quentin", "*:61165"},
	{"Python", "22396", "Quentin", "*:8000"},
	{"foo", "108", "root", "*:1337"},
	{"rustrover", "30928", "Quentin", "127.0.0.1:63342"},
	{"Transmiss", "94671", "Quentin", "*:51413"},
	{"Transmiss", "94671", "Quentin", "*:51413"},
}

var rootCmd = &cobra.Command{
	Use:   settings.CliBinaryName,
	Short: "Render tabular data as aligned plain text",
	Long: `tabx renders a demo table with the pkg/table renderer: fixed-width
columns sized to their widest cell, per-column alignment, and a row cap
that elides the middle of the data behind a "..." row.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.Get(logLevel)

		rowCap := maxRows
		if rowCap == 0 {
			rowCap = rowsForTerminal()
		}
		log.V(1).Info("rendering table", "rows", len(listeningPorts), "maxRows", rowCap)

		tbl := table.New().
			Headers("COMMAND", "PID", "USER", "HOST:PORTS").
			Alignments(table.AlignLeft, table.AlignRight, table.AlignLeft, table.AlignRight).
			Data(listeningPorts).
			MaxRows(rowCap).
			Separator(separator)

		_, err := fmt.Fprint(cmd.OutOrStdout(), tbl.String())
		return err
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build version information",
	Run: func(cmd *cobra.Command, args []string) {
		v := settings.VersionInformation
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s (commit %s, built %s)\n",
			settings.CliBinaryName, v.BuildVersion, v.Commit, v.BuildTime)
	},
}

func init() {
	rootCmd.Flags().IntVarP(&maxRows, "max-rows", "n", 0,
		"cap the rendered body rows; 0 fits the terminal height, negative values disable the cap")
	rootCmd.Flags().StringVarP(&separator, "separator", "s", "  ",
		"string printed between columns")
	rootCmd.PersistentFlags().Int8Var(&logLevel, "log-level", 0,
		"minimum log level (zap convention, negative enables debug)")
	rootCmd.AddCommand(versionCmd)
}

// rowsForTerminal derives a row cap from the terminal height, leaving room
// for the header line and the shell prompt. Non-terminal stdout (pipes,
// test buffers) gets no cap.
func rowsForTerminal() int {
	_, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || height <= 2 {
		return -1
	}
	return height - 2
}

// Execute runs the root command and returns its error for main to report.
func Execute() error {
	return rootCmd.Execute()
}
