package transform

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// TemplateRegistry manages built-in what-if templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template represents a named collection of transforms
type Template struct {
	Name        string
	Description string
	Transforms  []FinancialTransform
}

// NewTemplateRegistry creates an empty template registry
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names, sorted
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateBuiltInTemplates returns the common growth and cost scenarios
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()

	registry.Register(Template{
		Name:        "growth_10",
		Description: "Receita e despesas crescem 10%",
		Transforms: []FinancialTransform{
			&ScaleRevenue{Percent: decimal.NewFromInt(10)},
			&ScaleExpenses{Percent: decimal.NewFromInt(10)},
		},
	})

	registry.Register(Template{
		Name:        "growth_25",
		Description: "Receita e despesas crescem 25%",
		Transforms: []FinancialTransform{
			&ScaleRevenue{Percent: decimal.NewFromInt(25)},
			&ScaleExpenses{Percent: decimal.NewFromInt(25)},
		},
	})

	registry.Register(Template{
		Name:        "downturn_20",
		Description: "Receita cai 20% com despesas inalteradas",
		Transforms: []FinancialTransform{
			&ScaleRevenue{Percent: decimal.NewFromInt(-20)},
		},
	})

	registry.Register(Template{
		Name:        "cost_cut_15",
		Description: "Despesas caem 15%",
		Transforms: []FinancialTransform{
			&ScaleExpenses{Percent: decimal.NewFromInt(-15)},
		},
	})

	registry.Register(Template{
		Name:        "reclassify_10",
		Description: "Documenta 10% das despesas como itens dedutíveis",
		Transforms: []FinancialTransform{
			&ReclassifyExpenses{Percent: decimal.NewFromInt(10)},
		},
	})

	return registry
}
