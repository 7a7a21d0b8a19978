package cmd

import (
	"fmt"

	"github.com/Zaneham/Jovial-LSP"
	"github.com/spf13/cobra"
)

var (
	referencesLine   int
	referencesColumn int

	referencesCmd = &cobra.Command{
		Use:   "references",
		Short: "Print every occurrence of the symbol at --line/--column in --file",
		RunE: func(cmd *cobra.Command, args []string) error {
			model, lines, err := loadModel(filePath)
			if err != nil {
				return err
			}

			refs := jovial.ReferencesAt(model, lines, referencesLine, referencesColumn)
			if len(refs) == 0 {
				return errNoResult
			}
			for _, loc := range refs {
				fmt.Printf("%s:%d:%d-%d\n", filePath, loc.Line+1, loc.CharacterStart, loc.CharacterEnd)
			}
			return nil
		},
	}
)

func init() {
	referencesCmd.Flags().IntVar(&referencesLine, "line", 0, "0-indexed line number")
	referencesCmd.Flags().IntVar(&referencesColumn, "column", 0, "0-indexed column number")
	rootCmd.AddCommand(referencesCmd)
}
