package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fabiotcs/apptributario-sub000/internal/calculation"
	"github.com/fabiotcs/apptributario-sub000/internal/compare"
	"github.com/fabiotcs/apptributario-sub000/internal/config"
	"github.com/fabiotcs/apptributario-sub000/internal/domain"
	"github.com/fabiotcs/apptributario-sub000/internal/opportunity"
	"github.com/fabiotcs/apptributario-sub000/internal/output"
	"github.com/spf13/cobra"
)

// load parses the company file and resolves the tax tables: defaults, then the
// --rules file, then the file's own rules section
func (a *app) load(path string) (*domain.Configuration, domain.TaxRules, error) {
	parser := config.NewInputParser()

	cfg, err := parser.LoadFromFile(path)
	if err != nil {
		return nil, domain.TaxRules{}, err
	}

	rulesPath := a.settings.GetString("rules")
	rules, err := parser.ResolveRules(cfg, rulesPath)
	if err != nil {
		return nil, domain.TaxRules{}, err
	}
	if rulesPath != "" {
		a.logger.Debug().Str("rules", rulesPath).Msg("rule overrides loaded")
	}

	a.logger.Info().Str("company", cfg.Company.Name).Str("sector", string(cfg.Financials.Sector)).Msg("configuration loaded")
	return cfg, rules, nil
}

func (a *app) calculator(rules domain.TaxRules) *calculation.RegimeCalculator {
	calc := calculation.NewRegimeCalculatorWithRules(rules)
	calc.SetLogger(zerologAdapter{log: a.logger})
	return calc
}

func (a *app) engine(rules domain.TaxRules) *compare.Engine {
	engine := compare.NewEngine(a.calculator(rules))
	engine.SetLogger(zerologAdapter{log: a.logger})
	return engine
}

func (a *app) aggregator() *opportunity.Aggregator {
	agg := opportunity.NewAggregator()
	agg.SetLogger(zerologAdapter{log: a.logger})
	return agg
}

func (a *app) format(fallback string) string {
	if f := a.settings.GetString("output.format"); f != "" {
		return strings.ToLower(f)
	}
	return fallback
}

func (a *app) compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare [input-file]",
		Short: "Compare the three tax regimes and recommend the cheapest",
		Long:  "Formats: table (default), compact, analysis, json, csv",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, rules, err := a.load(args[0])
			if err != nil {
				return err
			}
			comparison := a.engine(rules).Compare(cfg.Financials)
			return writeComparison(cmd.OutOrStdout(), &comparison, a.format("table"))
		},
	}
}

func writeComparison(w io.Writer, rc *domain.RegimeComparison, format string) error {
	switch format {
	case "table", "console":
		_, err := io.WriteString(w, (&compare.TableFormatter{}).Format(rc))
		return err
	case "compact":
		_, err := fmt.Fprintln(w, (&compare.TableFormatter{}).FormatCompact(rc))
		return err
	case "analysis", "text":
		_, err := io.WriteString(w, rc.Analysis)
		return err
	case "json":
		out, err := (&compare.JSONFormatter{Pretty: true}).Format(rc)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err
	case "csv":
		out, err := (&compare.CSVFormatter{}).Format(rc)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	default:
		return fmt.Errorf("unsupported format for compare: %s", format)
	}
}

func (a *app) regimeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regime [simplified|presumed|real] [input-file]",
		Short: "Calculate a single tax regime",
		Long:  "Formats: console (default), json",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			regime, err := domain.ParseRegime(args[0])
			if err != nil {
				return err
			}
			cfg, rules, err := a.load(args[1])
			if err != nil {
				return err
			}
			result := a.calculator(rules).Calculate(regime, cfg.Financials)
			return writeRegimeResult(cmd.OutOrStdout(), result, a.format("console"))
		},
	}
}

func writeRegimeResult(w io.Writer, r domain.RegimeResult, format string) error {
	switch format {
	case "console", "table":
		fmt.Fprintf(w, "%s\n", strings.ToUpper(r.Regime.DisplayName()))
		fmt.Fprintf(w, "%s\n", strings.Repeat("=", 40))
		fmt.Fprintf(w, "Alíquota efetiva:   %s\n", domain.FormatRate(r.EffectiveTaxRate))
		fmt.Fprintf(w, "Base tributável:    %s\n", domain.FormatBRL(r.TaxableBase))
		fmt.Fprintf(w, "Imposto anual:      %s\n", domain.FormatBRL(r.AnnualTaxLiability))
		fmt.Fprintf(w, "Saldo a pagar:      %s\n", domain.FormatBRL(r.RemainingBalance))
		fmt.Fprintf(w, "Pagamento mensal:   %s\n", domain.FormatBRL(r.AverageMonthlyPayment))
		writeList(w, "Vantagens", r.Advantages)
		writeList(w, "Desvantagens", r.Disadvantages)
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	default:
		return fmt.Errorf("unsupported format for regime: %s", format)
	}
}

func writeList(w io.Writer, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s:\n", heading)
	for _, item := range items {
		fmt.Fprintf(w, "  - %s\n", item)
	}
}

func (a *app) opportunitiesCmd() *cobra.Command {
	var regimeFilter string

	cmd := &cobra.Command{
		Use:   "opportunities [input-file]",
		Short: "Detect and rank tax optimization opportunities",
		Long:  "Formats: console (default), json, csv",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := a.load(args[0])
			if err != nil {
				return err
			}

			opportunities := a.aggregator().DetectAll(cfg.Financials, &cfg.Company)
			if regimeFilter != "" {
				regime, err := domain.ParseRegime(regimeFilter)
				if err != nil {
					return err
				}
				opportunities = opportunity.FilterByRegime(opportunities, regime)
			}
			summary := opportunity.Summarize(opportunities)

			w := cmd.OutOrStdout()
			switch format := a.format("console"); format {
			case "console", "table":
				_, err = io.WriteString(w, output.FormatOpportunities(opportunities, summary))
			case "json":
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				err = enc.Encode(struct {
					Opportunities []domain.Opportunity  `json:"opportunities"`
					Summary       domain.SavingsSummary `json:"summary"`
				}{opportunities, summary})
			case "csv":
				var out []byte
				out, err = output.CSVSummarizer{}.Format(&output.Report{Opportunities: opportunities})
				if err == nil {
					_, err = w.Write(out)
				}
			default:
				err = fmt.Errorf("unsupported format for opportunities: %s", format)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&regimeFilter, "regime", "", "only show opportunities applicable under this regime")
	return cmd
}

func (a *app) reportCmd() *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "report [input-file]",
		Short: "Generate the full report: comparison, opportunities and summary",
		Long:  "Formats: " + strings.Join(output.AvailableFormatterNames(), ", ") + " (aliases: " + strings.Join(output.AvailableFormatAliases(), ", ") + ")",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := a.format("console")
			formatter := output.GetFormatterByName(format)
			if formatter == nil {
				return fmt.Errorf("unsupported format for report: %s", format)
			}

			cfg, rules, err := a.load(args[0])
			if err != nil {
				return err
			}
			generator := &output.ReportGenerator{Engine: a.engine(rules), Aggregator: a.aggregator()}
			report := generator.Generate(cfg)

			if save {
				filename, err := output.WriteFormatted(formatter, report, reportExtension(formatter.Name()))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Relatório gravado em %s\n", filename)
				return nil
			}

			out, err := formatter.Format(report)
			if err != nil {
				return fmt.Errorf("failed to format report: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "write the report to a timestamped file instead of stdout")
	return cmd
}

func reportExtension(formatter string) string {
	switch formatter {
	case "console":
		return "txt"
	case "markdown":
		return "md"
	default:
		return formatter
	}
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [input-file]",
		Short: "Validate a company input file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := a.load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuração válida: %s\n", cfg.Company.Name)
			return nil
		},
	}
}
