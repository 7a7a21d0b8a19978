package cmd

import (
	"fmt"

	"github.com/Zaneham/Jovial-LSP"
	"github.com/spf13/cobra"
)

var (
	completeLine   int
	completeColumn int

	completeCmd = &cobra.Command{
		Use:   "complete",
		Short: "Print completions at --line/--column in --file",
		RunE: func(cmd *cobra.Command, args []string) error {
			model, lines, err := loadModel(filePath)
			if err != nil {
				return err
			}

			items := jovial.CompletionsAt(model, lines, completeLine, completeColumn)
			if len(items) == 0 {
				return errNoResult
			}
			for _, item := range items {
				fmt.Printf("%-4s %-20s kind=%-2d %s\n", item.SortText, item.Label, item.Kind, item.Detail)
			}
			return nil
		},
	}
)

func init() {
	completeCmd.Flags().IntVar(&completeLine, "line", 0, "0-indexed line number")
	completeCmd.Flags().IntVar(&completeColumn, "column", 0, "0-indexed column number")
	rootCmd.AddCommand(completeCmd)
}
