package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fabiotcs/apptributario-sub000/internal/sequencing"
	"github.com/spf13/cobra"
)

func (a *app) planCmd() *cobra.Command {
	var (
		strategy   string
		budget     int64
		categories []string
		allRegimes bool
	)

	cmd := &cobra.Command{
		Use:   "plan [input-file]",
		Short: "Order opportunities into an implementation plan within a budget",
		Long: "Strategies: " + strings.Join(sequencing.StrategyNames(), ", ") + `
By default only opportunities applicable under the recommended regime are planned.
Formats: console (default), json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if budget < 0 {
				return fmt.Errorf("budget cannot be negative")
			}
			sequence, err := sequencing.ParseCategories(categories)
			if err != nil {
				return err
			}

			cfg, rules, err := a.load(args[0])
			if err != nil {
				return err
			}

			ctx := sequencing.StrategyContext{Budget: budget}
			if !allRegimes {
				comparison := a.engine(rules).Compare(cfg.Financials)
				regime := comparison.RecommendedRegime
				ctx.Regime = &regime
			}

			opportunities := a.aggregator().DetectAll(cfg.Financials, &cfg.Company)
			plan := sequencing.CreateStrategy(strategy, sequence).Plan(opportunities, ctx)
			a.logger.Debug().Str("strategy", plan.StrategyUsed).Int("steps", len(plan.Steps)).Msg("implementation plan built")

			return writePlan(cmd.OutOrStdout(), plan, a.format("console"))
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", "standard", "ordering strategy")
	cmd.Flags().Int64Var(&budget, "budget", 0, "implementation budget in centavos (0 = unlimited)")
	cmd.Flags().StringSliceVar(&categories, "categories", nil, "category order for the custom strategy")
	cmd.Flags().BoolVar(&allRegimes, "all-regimes", false, "plan every opportunity regardless of regime")
	return cmd
}

func writePlan(w io.Writer, plan sequencing.ImplementationPlan, format string) error {
	switch format {
	case "console", "table":
		_, err := io.WriteString(w, sequencing.FormatPlan(plan))
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	default:
		return fmt.Errorf("unsupported format for plan: %s", format)
	}
}
