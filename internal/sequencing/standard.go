package sequencing

import (
	"sort"

	"github.com/fabiotcs/apptributario-sub000/internal/domain"
)

// StandardStrategy implements opportunities in priority order, highest first.
// Equal priorities keep the detector order.
type StandardStrategy struct{}

func NewStandardStrategy() *StandardStrategy { return &StandardStrategy{} }

func (s *StandardStrategy) Name() string { return "standard" }

func (s *StandardStrategy) Plan(opportunities []domain.Opportunity, ctx StrategyContext) ImplementationPlan {
	ordered := sortedCopy(opportunities, func(a, b domain.Opportunity) bool {
		return a.Priority > b.Priority
	})
	return allocate(s.Name(), ordered, ctx)
}

// QuickWinsStrategy schedules low-effort low-risk items first, then the rest,
// each group in priority order
type QuickWinsStrategy struct{}

func NewQuickWinsStrategy() *QuickWinsStrategy { return &QuickWinsStrategy{} }

func (s *QuickWinsStrategy) Name() string { return "quick_wins" }

func (s *QuickWinsStrategy) Plan(opportunities []domain.Opportunity, ctx StrategyContext) ImplementationPlan {
	ordered := sortedCopy(opportunities, func(a, b domain.Opportunity) bool {
		if a.IsQuickWin() != b.IsQuickWin() {
			return a.IsQuickWin()
		}
		return a.Priority > b.Priority
	})
	return allocate(s.Name(), ordered, ctx)
}

// ROIStrategy schedules the best return per real spent first
type ROIStrategy struct{}

func NewROIStrategy() *ROIStrategy { return &ROIStrategy{} }

func (s *ROIStrategy) Name() string { return "roi" }

func (s *ROIStrategy) Plan(opportunities []domain.Opportunity, ctx StrategyContext) ImplementationPlan {
	ordered := sortedCopy(opportunities, func(a, b domain.Opportunity) bool {
		return a.ROI > b.ROI
	})
	return allocate(s.Name(), ordered, ctx)
}

// LowestCostStrategy schedules the cheapest items first, maximizing how many
// fit a tight budget
type LowestCostStrategy struct{}

func NewLowestCostStrategy() *LowestCostStrategy { return &LowestCostStrategy{} }

func (s *LowestCostStrategy) Name() string { return "lowest_cost" }

func (s *LowestCostStrategy) Plan(opportunities []domain.Opportunity, ctx StrategyContext) ImplementationPlan {
	ordered := sortedCopy(opportunities, func(a, b domain.Opportunity) bool {
		if a.ImplementationCost != b.ImplementationCost {
			return a.ImplementationCost < b.ImplementationCost
		}
		return a.EstimatedSavings > b.EstimatedSavings
	})
	return allocate(s.Name(), ordered, ctx)
}

func sortedCopy(opportunities []domain.Opportunity, less func(a, b domain.Opportunity) bool) []domain.Opportunity {
	ordered := make([]domain.Opportunity, len(opportunities))
	copy(ordered, opportunities)
	sort.SliceStable(ordered, func(i, j int) bool {
		return less(ordered[i], ordered[j])
	})
	return ordered
}
