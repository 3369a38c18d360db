package main

import (
	"fmt"
	"strings"

	"github.com/fabiotcs/apptributario-sub000/internal/compare"
	"github.com/fabiotcs/apptributario-sub000/internal/transform"
	"github.com/spf13/cobra"
)

func (a *app) whatifCmd() *cobra.Command {
	var (
		applySpecs []string
		templates  []string
	)

	cmd := &cobra.Command{
		Use:   "whatif [input-file]",
		Short: "Compare the regimes under changed financials",
		Long: `Each --template becomes one scenario; all --apply transforms together form a
"custom" scenario. Transforms: ` + strings.Join(transform.NewTransformRegistry().List(), ", ") + `
Templates: ` + strings.Join(transform.CreateBuiltInTemplates().List(), ", ") + `
Formats: table (default), json`,
		Example: "  taxopt whatif company.yaml --apply scale_revenue:percent=20 --apply adjust_amount:field=expenses,amount=-5000000",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(applySpecs) == 0 && len(templates) == 0 {
				return fmt.Errorf("at least one --apply or --template is required")
			}

			cfg, rules, err := a.load(args[0])
			if err != nil {
				return err
			}

			base := compare.Scenario{Name: "Base", Input: cfg.Financials}
			var alternatives []compare.Scenario

			registry := transform.CreateBuiltInTemplates()
			for _, name := range templates {
				tmpl, ok := registry.Get(name)
				if !ok {
					return fmt.Errorf("unknown template: %s", name)
				}
				input, err := transform.ApplyTransforms(cfg.Financials, tmpl.Transforms)
				if err != nil {
					return err
				}
				alternatives = append(alternatives, compare.Scenario{Name: tmpl.Name, Description: tmpl.Description, Input: input})
			}

			if len(applySpecs) > 0 {
				transforms, err := transform.NewTransformRegistry().ParseTransformSpecs(applySpecs)
				if err != nil {
					return err
				}
				input, err := transform.ApplyTransforms(cfg.Financials, transforms)
				if err != nil {
					return err
				}
				descriptions := make([]string, 0, len(transforms))
				for _, t := range transforms {
					descriptions = append(descriptions, t.Description())
				}
				alternatives = append(alternatives, compare.Scenario{Name: "personalizado", Description: strings.Join(descriptions, "; "), Input: input})
			}

			set := compare.NewMetricsCalculator(a.engine(rules)).CompareScenarios(base, alternatives)
			a.logger.Debug().Int("scenarios", len(set.AlternativeResults)).Msg("what-if comparison finished")

			w := cmd.OutOrStdout()
			switch format := a.format("table"); format {
			case "table", "console":
				_, err = fmt.Fprint(w, (&compare.TableFormatter{}).FormatScenarios(set))
			case "json":
				var out string
				out, err = (&compare.JSONFormatter{Pretty: true}).FormatScenarios(set)
				if err == nil {
					_, err = fmt.Fprintln(w, out)
				}
			default:
				err = fmt.Errorf("unsupported format for whatif: %s", format)
			}
			return err
		},
	}

	cmd.Flags().StringArrayVar(&applySpecs, "apply", nil, "transform spec name:key=value,... (repeatable)")
	cmd.Flags().StringArrayVar(&templates, "template", nil, "built-in template name (repeatable)")
	return cmd
}
