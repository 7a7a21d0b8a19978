package cmd

import (
	"fmt"

	"github.com/Zaneham/Jovial-LSP"
	"github.com/spf13/cobra"
)

var symbolsCmd = &cobra.Command{
	Use:   "symbols",
	Short: "Print document symbols (items, tables, procs, defines) for --file",
	RunE: func(cmd *cobra.Command, args []string) error {
		model, _, err := loadModel(filePath)
		if err != nil {
			return err
		}

		syms := jovial.DocumentSymbols(model)
		if len(syms) == 0 {
			return errNoResult
		}
		for _, s := range syms {
			fmt.Printf("%-20s kind=%-2d line=%-5d detail=%s\n", s.Name, s.Kind, s.Location.Line+1, s.Detail)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(symbolsCmd)
}
