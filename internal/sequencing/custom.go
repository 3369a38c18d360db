package sequencing

import "github.com/fabiotcs/apptributario-sub000/internal/domain"

// CustomStrategy implements opportunities grouped by a user-specified category
// order, each group in priority order. Unlisted categories follow at the end.
// A sequence that is empty or repeats a category falls back to standard.
type CustomStrategy struct {
	Sequence []domain.Category
}

func NewCustomStrategy(sequence []domain.Category) *CustomStrategy {
	return &CustomStrategy{Sequence: sequence}
}

func (s *CustomStrategy) Name() string { return "custom" }

func (s *CustomStrategy) Plan(opportunities []domain.Opportunity, ctx StrategyContext) ImplementationPlan {
	rank := make(map[domain.Category]int, len(s.Sequence))
	valid := len(s.Sequence) > 0
	for i, c := range s.Sequence {
		if _, dup := rank[c]; dup {
			valid = false
			break
		}
		rank[c] = i
	}
	if !valid {
		std := NewStandardStrategy().Plan(opportunities, ctx)
		std.StrategyUsed = "custom->standard_fallback"
		std.Notes = append([]string{"sequência personalizada inválida ou vazia, usando a estratégia standard"}, std.Notes...)
		return std
	}

	position := func(c domain.Category) int {
		if p, ok := rank[c]; ok {
			return p
		}
		return len(rank)
	}

	ordered := sortedCopy(opportunities, func(a, b domain.Opportunity) bool {
		if pa, pb := position(a.Category), position(b.Category); pa != pb {
			return pa < pb
		}
		return a.Priority > b.Priority
	})
	return allocate(s.Name(), ordered, ctx)
}
