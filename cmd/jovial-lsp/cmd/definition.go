package cmd

import (
	"fmt"

	"github.com/Zaneham/Jovial-LSP"
	"github.com/spf13/cobra"
)

var (
	definitionLine   int
	definitionColumn int

	definitionCmd = &cobra.Command{
		Use:   "definition",
		Short: "Print the definition location for the symbol at --line/--column in --file",
		RunE: func(cmd *cobra.Command, args []string) error {
			model, lines, err := loadModel(filePath)
			if err != nil {
				return err
			}

			loc := jovial.DefinitionAt(model, lines, definitionLine, definitionColumn)
			if loc == nil {
				return errNoResult
			}
			fmt.Printf("%s:%d:%d-%d\n", filePath, loc.Line+1, loc.CharacterStart, loc.CharacterEnd)
			return nil
		},
	}
)

func init() {
	definitionCmd.Flags().IntVar(&definitionLine, "line", 0, "0-indexed line number")
	definitionCmd.Flags().IntVar(&definitionColumn, "column", 0, "0-indexed column number")
	rootCmd.AddCommand(definitionCmd)
}
