package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fadilmartias/useresume-gateway/internal/usecase"
)

func newToolsCmd() *cobra.Command {
	var withSchema bool
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List the available tools and their credit cost",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, t := range usecase.Tools() {
				summary, _, _ := strings.Cut(t.Description, "\n")
				fmt.Fprintf(out, "%-30s %d credits  %s\n", t.Name, t.Cost, summary)
				if !withSchema {
					continue
				}
				schema, err := json.MarshalIndent(t.InputSchema(), "  ", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "  %s\n\n", schema)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&withSchema, "schema", false, "Print each tool's input JSON schema")
	return cmd
}
