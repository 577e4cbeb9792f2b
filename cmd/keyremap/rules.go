package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/keyremap/pkg/remap"
)

func init() {
	rootCmd.AddCommand(newRulesCmd())
}

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules <replacements>",
		Short: "Validate and print a replacement table",
		Long: `The rules command loads a replacement config the same way a remap run does
and prints the resulting table. Later entries for a repeated key replace
earlier ones, so the table shows what will actually be applied.

Example:
  keyremap rules replacements.json
  keyremap rules replacements.toml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRules(args)
		},
	}
	return cmd
}

type ruleJSON struct {
	Key          string   `json:"key"`
	Replacement  string   `json:"replacement"`
	AddModifiers []string `json:"add_modifiers"`
}

func runRules(args []string) error {
	path := args[0]

	table, err := remap.LoadRules(path)
	if err != nil {
		return fmt.Errorf("failed to load replacements: %w", err)
	}

	if jsonOut {
		out := make([]ruleJSON, 0, table.Len())
		for _, r := range table.Rules() {
			out = append(out, ruleJSON{r.Key, r.Replacement, r.AddModifiers})
		}
		return printJSON(out)
	}

	printVerbose("Replacements in %s:\n", path)
	for _, r := range table.Rules() {
		line := fmt.Sprintf("%s -> %s", r.Key, r.Replacement)
		if len(r.AddModifiers) > 0 {
			line += " " + styled(dimStyle, "(+"+strings.Join(r.AddModifiers, " +")+")")
		}
		fmt.Println(line)
	}
	printInfo("%d rule%s\n", table.Len(), plural(table.Len()))
	return nil
}
