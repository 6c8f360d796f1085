package cmd

import (
	"fmt"
	"strings"

	"interface-reconciler/core/config"
	"interface-reconciler/core/reconcile"

	"github.com/spf13/cobra"
)

// transformCmd applies the ruleset's rewrite rules to the given values
var transformCmd = &cobra.Command{
	Use:   "transform [value...]",
	Short: "Show how the rewrite rules rewrite system or table names",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		rules, err := config.LoadRuleset(cfg.Reconcile.Ruleset)
		if err != nil {
			return err
		}

		for _, v := range args {
			applied := make([]string, 0, len(rules.Rules))
			for _, r := range rules.Rules.Present(v) {
				applied = append(applied, r.From+"->"+r.To)
			}
			fmt.Printf("%-30s -> %-30s rules=%s segment=%v\n",
				v, reconcile.Transform(v, rules.Rules), strings.Join(applied, ","), rules.Rules.StartsSegment(v))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(transformCmd)
}
