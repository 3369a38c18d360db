package sequencing

import (
	"fmt"
	"sort"

	"github.com/fabiotcs/apptributario-sub000/internal/domain"
)

var strategies = map[string]func(custom []domain.Category) SequencingStrategy{
	"standard":    func([]domain.Category) SequencingStrategy { return NewStandardStrategy() },
	"quick_wins":  func([]domain.Category) SequencingStrategy { return NewQuickWinsStrategy() },
	"roi":         func([]domain.Category) SequencingStrategy { return NewROIStrategy() },
	"lowest_cost": func([]domain.Category) SequencingStrategy { return NewLowestCostStrategy() },
	"custom":      func(custom []domain.Category) SequencingStrategy { return NewCustomStrategy(custom) },
}

// CreateStrategy creates a sequencing strategy by name. Unknown names fall
// back to the standard priority order.
func CreateStrategy(name string, customSequence []domain.Category) SequencingStrategy {
	if factory, ok := strategies[name]; ok {
		return factory(customSequence)
	}
	return NewStandardStrategy()
}

// StrategyNames lists the accepted strategy names, sorted
func StrategyNames() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseCategories parses a custom category sequence such as ["TIMING", "deduction"]
func ParseCategories(names []string) ([]domain.Category, error) {
	categories := make([]domain.Category, 0, len(names))
	for _, name := range names {
		var c domain.Category
		if err := c.UnmarshalText([]byte(name)); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, nil
}

func skippedNote(n int, r domain.Regime) string {
	return fmt.Sprintf("%d oportunidades ignoradas: não aplicáveis no %s", n, r.DisplayName())
}

func deferredNote(n int) string {
	return fmt.Sprintf("%d oportunidades adiadas: custo de implementação excede o orçamento restante", n)
}
