package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/giantswarm/qa-judge/internal/runner"
)

func newVariantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List template variants and their placeholders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Available template variants:\n\n")
			for _, name := range runner.StrategyNames() {
				s, err := runner.GetStrategy(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "  - %s\n", s.Name())
				fmt.Fprintf(out, "    Placeholders: %s\n", strings.Join(s.Variant().Tokens(), ", "))
				fmt.Fprintf(out, "    Default template: %s\n\n", s.DefaultTemplate())
			}
			return nil
		},
	}
}
