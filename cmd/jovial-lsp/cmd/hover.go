package cmd

import (
	"fmt"

	"github.com/Zaneham/Jovial-LSP"
	"github.com/spf13/cobra"
)

var (
	hoverLine   int
	hoverColumn int

	hoverCmd = &cobra.Command{
		Use:   "hover",
		Short: "Print hover information at --line/--column in --file",
		RunE: func(cmd *cobra.Command, args []string) error {
			model, lines, err := loadModel(filePath)
			if err != nil {
				return err
			}

			payload := jovial.HoverAt(model, lines, hoverLine, hoverColumn)
			if payload == nil {
				return errNoResult
			}
			fmt.Println(renderHover(payload))
			return nil
		},
	}
)

func init() {
	hoverCmd.Flags().IntVar(&hoverLine, "line", 0, "0-indexed line number")
	hoverCmd.Flags().IntVar(&hoverColumn, "column", 0, "0-indexed column number")
	rootCmd.AddCommand(hoverCmd)
}

// renderHover builds the markdown hover content for payload, in the same
// field order as the original JSON-RPC host's hover handler (name/kind
// header, then kind-specific detail lines, then source location).
func renderHover(p *jovial.HoverPayload) string {
	switch p.Kind {
	case jovial.HoverKindItem:
		s := fmt.Sprintf("**%s** (ITEM)\n\nType: `%s`", p.Name, p.ItemType)
		if p.Size != nil {
			s += fmt.Sprintf(" %d", *p.Size)
		}
		s += "\n"
		if p.IsConstant {
			s += "Attribute: `CONSTANT`\n"
		}
		if p.IsStatic {
			s += "Attribute: `STATIC`\n"
		}
		if len(p.StatusValues) > 0 {
			s += fmt.Sprintf("Values: %v\n", p.StatusValues)
		}
		if p.InitialValue != "" {
			s += fmt.Sprintf("Initial: `%s`\n", p.InitialValue)
		}
		s += fmt.Sprintf("\nDefined at line %d", p.Line+1)
		return s

	case jovial.HoverKindTable:
		s := fmt.Sprintf("**%s** (TABLE)\n\nDimensions: `(%s)`\n", p.Name, p.Dimensions)
		if p.Wordsize != nil {
			s += fmt.Sprintf("Word size: %d\n", *p.Wordsize)
		}
		if len(p.Entries) > 0 {
			s += "\nEntries:\n"
			for i, e := range p.Entries {
				if i >= 10 {
					break
				}
				s += fmt.Sprintf("- %s\n", e)
			}
		}
		lineEnd := p.LineEnd
		if lineEnd == 0 {
			lineEnd = p.LineStart
		}
		s += fmt.Sprintf("\nLines %d-%d", p.LineStart+1, lineEnd+1)
		return s

	case jovial.HoverKindProc:
		s := fmt.Sprintf("**%s** (PROC)\n\n", p.Name)
		if p.Parameters != "" {
			s += fmt.Sprintf("Parameters: `%s`\n", p.Parameters)
		}
		lineEnd := p.LineEnd
		if lineEnd == 0 {
			lineEnd = p.LineStart
		}
		s += fmt.Sprintf("\nLines %d-%d", p.LineStart+1, lineEnd+1)
		return s

	case jovial.HoverKindKeyword:
		return fmt.Sprintf("**%s** (J73 Keyword)\n\n%s", p.Name, p.Description)
	}

	return ""
}
