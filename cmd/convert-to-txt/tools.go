package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/convert-to-txt/internal/tool"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the external conversion tools and their availability",
	Long: `Tools probes the command search path for each external conversion
tool and prints, per document type, the candidates in selection order
with their availability. The first installed candidate is the one a
conversion of that type would use.`,
	RunE: runTools,
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}

func runTools(cmd *cobra.Command, args []string) error {
	reg := tool.NewRegistry(tool.NewRunner(0))

	for _, mt := range reg.Types() {
		var cands []string
		for _, t := range reg.Candidates(mt) {
			status := "missing"
			if t.Available() {
				status = "ok"
			}
			cands = append(cands, fmt.Sprintf("%s (%s)", t.Name(), status))
		}
		fmt.Printf("%-6s %s\n", mt.String()+":", strings.Join(cands, ", "))
	}
	return nil
}
