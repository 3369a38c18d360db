package sequencing

import (
	"github.com/fabiotcs/apptributario-sub000/internal/domain"
)

// PlanStep is one opportunity scheduled for implementation
// Step: 1-based position in the plan
// CumulativeCost / CumulativeSavings: running totals including this step
type PlanStep struct {
	Step              int                `json:"step"`
	Opportunity       domain.Opportunity `json:"opportunity"`
	CumulativeCost    int64              `json:"cumulativeCost"`
	CumulativeSavings int64              `json:"cumulativeSavings"`
}

// ImplementationPlan orders opportunities and fits them into a budget
// Budget: implementation budget in centavos, zero means unlimited
// Steps: scheduled opportunities in implementation order
// Deferred: opportunities that did not fit the remaining budget
// RemainingBudget: budget left after every step (zero when unlimited)
// Notes: strategy-specific remarks
type ImplementationPlan struct {
	StrategyUsed    string               `json:"strategyUsed"`
	Budget          int64                `json:"budget"`
	Steps           []PlanStep           `json:"steps"`
	Deferred        []domain.Opportunity `json:"deferred"`
	TotalCost       int64                `json:"totalCost"`
	TotalSavings    int64                `json:"totalSavings"`
	NetSavings      int64                `json:"netSavings"`
	RemainingBudget int64                `json:"remainingBudget"`
	Notes           []string             `json:"notes,omitempty"`
}

// StrategyContext provides inputs required by sequencing strategies
// Budget: implementation budget in centavos, zero means unlimited
// Regime: when set, opportunities not applicable under it are skipped
type StrategyContext struct {
	Budget int64
	Regime *domain.Regime
}

// SequencingStrategy defines the interface for all implementation ordering algorithms
type SequencingStrategy interface {
	Name() string
	Plan(opportunities []domain.Opportunity, ctx StrategyContext) ImplementationPlan
}

// allocate walks ordered opportunities and schedules each one that fits the
// remaining budget. Items that do not fit are deferred and the walk continues,
// so a cheaper later item can still be scheduled.
func allocate(name string, ordered []domain.Opportunity, ctx StrategyContext) ImplementationPlan {
	plan := ImplementationPlan{
		StrategyUsed: name,
		Budget:       ctx.Budget,
		Steps:        []PlanStep{},
		Deferred:     []domain.Opportunity{},
	}

	remaining := ctx.Budget
	skipped := 0
	for _, o := range ordered {
		if ctx.Regime != nil && !o.AppliesTo(*ctx.Regime) {
			skipped++
			continue
		}
		if ctx.Budget > 0 && o.ImplementationCost > remaining {
			plan.Deferred = append(plan.Deferred, o)
			continue
		}

		if ctx.Budget > 0 {
			remaining -= o.ImplementationCost
		}
		plan.TotalCost += o.ImplementationCost
		plan.TotalSavings += o.EstimatedSavings
		plan.Steps = append(plan.Steps, PlanStep{
			Step:              len(plan.Steps) + 1,
			Opportunity:       o,
			CumulativeCost:    plan.TotalCost,
			CumulativeSavings: plan.TotalSavings,
		})
	}

	plan.NetSavings = plan.TotalSavings - plan.TotalCost
	if ctx.Budget > 0 {
		plan.RemainingBudget = remaining
	}
	if skipped > 0 {
		plan.Notes = append(plan.Notes, skippedNote(skipped, *ctx.Regime))
	}
	if len(plan.Deferred) > 0 {
		plan.Notes = append(plan.Notes, deferredNote(len(plan.Deferred)))
	}
	return plan
}
