package main

import (
	"fmt"
	"io"

	"github.com/fabiotcs/apptributario-sub000/internal/breakeven"
	"github.com/spf13/cobra"
)

func (a *app) breakevenCmd() *cobra.Command {
	var (
		target     string
		maxValue   int64
		tolerance  int64
		allSectors bool
	)

	cmd := &cobra.Command{
		Use:   "breakeven [input-file]",
		Short: "Find the expense level at which Lucro Real becomes the cheapest regime",
		Long:  "Targets: expenses (default), deductions. Formats: table (default), json",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := breakeven.ParseTarget(target)
			if err != nil {
				return err
			}
			cfg, rules, err := a.load(args[0])
			if err != nil {
				return err
			}

			options := breakeven.DefaultSolverOptions()
			if tolerance > 0 {
				options.Tolerance = tolerance
			}
			solver := &breakeven.Solver{Engine: a.engine(rules), Options: options}
			req := breakeven.Request{Input: cfg.Financials, Target: t, Max: maxValue}

			w := cmd.OutOrStdout()
			format := a.format("table")
			if allSectors {
				results, err := solver.SolveSectors(cmd.Context(), req)
				if err != nil {
					return err
				}
				return writeBreakEven(w, format, results, func() string {
					return (&breakeven.TableFormatter{}).FormatSectors(results)
				})
			}

			result, err := solver.Solve(cmd.Context(), req)
			if err != nil {
				return err
			}
			a.logger.Debug().Int("iterations", result.Iterations).Bool("found", result.Found).Msg("break-even search finished")
			return writeBreakEven(w, format, result, func() string {
				return (&breakeven.TableFormatter{}).Format(result)
			})
		},
	}

	cmd.Flags().StringVar(&target, "target", string(breakeven.TargetExpenses), "input to vary: expenses or deductions")
	cmd.Flags().Int64Var(&maxValue, "max", 0, "upper bound of the search in centavos (0 = revenue minus the other input)")
	cmd.Flags().Int64Var(&tolerance, "tolerance", 0, "search precision in centavos (default 100)")
	cmd.Flags().BoolVar(&allSectors, "all-sectors", false, "repeat the search for every known sector")
	return cmd
}

func writeBreakEven(w io.Writer, format string, v any, table func() string) error {
	switch format {
	case "table", "console":
		_, err := io.WriteString(w, table())
		return err
	case "json":
		out, err := (&breakeven.JSONFormatter{Pretty: true}).Format(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err
	default:
		return fmt.Errorf("unsupported format for breakeven: %s", format)
	}
}
