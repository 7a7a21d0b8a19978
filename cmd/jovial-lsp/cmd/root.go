package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "jovial-lsp",
		Short:        "jovial-lsp",
		SilenceUsage: true,
		Long:         `Single-shot query runner over the JOVIAL J73 semantic model: parse one file, answer one query, print the result.`,
	}

	filePath string
	verbose  bool
)

// Execute runs the command tree and returns the error from whichever
// subcommand ran, if any.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&filePath, "file", "f", "", "path to a JOVIAL source file (required)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	}
	return rootCmd.Execute()
}
