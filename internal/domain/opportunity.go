package domain

import (
	"fmt"
	"strings"
)

// Category classifies an optimization opportunity
type Category int

const (
	CategoryDeduction Category = iota
	CategoryCredit
	CategoryTiming
	CategoryExpenseOptimization
)

// AllCategories returns the categories in generation order
func AllCategories() []Category {
	return []Category{CategoryDeduction, CategoryCredit, CategoryTiming, CategoryExpenseOptimization}
}

func (c Category) String() string {
	switch c {
	case CategoryDeduction:
		return "DEDUCTION"
	case CategoryCredit:
		return "CREDIT"
	case CategoryTiming:
		return "TIMING"
	case CategoryExpenseOptimization:
		return "EXPENSE_OPTIMIZATION"
	default:
		return "UNKNOWN"
	}
}

func (c Category) MarshalText() ([]byte, error) {
	if c < CategoryDeduction || c > CategoryExpenseOptimization {
		return nil, fmt.Errorf("invalid category %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	for _, candidate := range AllCategories() {
		if strings.EqualFold(candidate.String(), string(text)) {
			*c = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown category %q", string(text))
}

// Level grades risk and implementation effort
type Level int

const (
	LevelLow Level = iota
	LevelMedium
	LevelHigh
)

func (l Level) String() string {
	switch l {
	case LevelLow:
		return "LOW"
	case LevelMedium:
		return "MEDIUM"
	case LevelHigh:
		return "HIGH"
	default:
		return "UNKNOWN"
	}
}

func (l Level) MarshalText() ([]byte, error) {
	if l < LevelLow || l > LevelHigh {
		return nil, fmt.Errorf("invalid level %d", int(l))
	}
	return []byte(l.String()), nil
}

func (l *Level) UnmarshalText(text []byte) error {
	switch strings.ToUpper(string(text)) {
	case "LOW":
		*l = LevelLow
	case "MEDIUM":
		*l = LevelMedium
	case "HIGH":
		*l = LevelHigh
	default:
		return fmt.Errorf("unknown level %q", string(text))
	}
	return nil
}

// Opportunity is a single tax optimization suggestion. Priority stays zero
// until the scorer assigns it.
type Opportunity struct {
	ID                   string   `json:"id"`
	Category             Category `json:"category"`
	Title                string   `json:"title"`
	Description          string   `json:"description"`
	EstimatedSavings     int64    `json:"estimatedSavings"`
	ImplementationCost   int64    `json:"implementationCost"`
	ROI                  float64  `json:"roi"`
	RiskLevel            Level    `json:"riskLevel"`
	ImplementationEffort Level    `json:"implementationEffort"`
	ApplicableRegimes    []Regime `json:"applicableRegimes"`
	Requirements         []string `json:"requirements"`
	Timeline             string   `json:"timeline"`
	Priority             int      `json:"priority"`
	ActionItems          []string `json:"actionItems"`
	SuccessMetrics       []string `json:"successMetrics"`
}

// AppliesTo reports whether the opportunity is usable under the given regime
func (o Opportunity) AppliesTo(r Regime) bool {
	for _, applicable := range o.ApplicableRegimes {
		if applicable == r {
			return true
		}
	}
	return false
}

// IsQuickWin reports whether the opportunity is both low effort and low risk
func (o Opportunity) IsQuickWin() bool {
	return o.ImplementationEffort == LevelLow && o.RiskLevel == LevelLow
}

// SavingsSummary aggregates a ranked opportunity list
type SavingsSummary struct {
	OpportunityCount        int              `json:"opportunityCount"`
	TotalEstimatedSavings   int64            `json:"totalEstimatedSavings"`
	TotalImplementationCost int64            `json:"totalImplementationCost"`
	NetSavings              int64            `json:"netSavings"`
	ByCategory              map[Category]int `json:"byCategory"`
	ByRisk                  map[Level]int    `json:"byRisk"`
	QuickWins               int              `json:"quickWins"`
	QuickWinSavings         int64            `json:"quickWinSavings"`
	TopOpportunity          string           `json:"topOpportunity,omitempty"`
}
