package opportunity

import (
	"math"

	"github.com/fabiotcs/apptributario-sub000/internal/domain"
)

const (
	baseScore   = 5.0
	maxROIBonus = 3.0
	minPriority = 1
	maxPriority = 10
)

// CalculateROI returns the return on investment as a percentage. A zero cost is
// defined as exactly 100.
func CalculateROI(estimatedSavings, implementationCost int64) float64 {
	if implementationCost == 0 {
		return 100
	}
	return float64(estimatedSavings-implementationCost) / float64(implementationCost) * 100
}

// ScoreOpportunity grades an opportunity from 1 to 10: a base of 5, an ROI bonus
// of up to 3, minus effort and risk penalties.
func ScoreOpportunity(o domain.Opportunity) int {
	score := baseScore +
		math.Min(o.ROI/50, maxROIBonus) +
		effortPenalty(o.ImplementationEffort) +
		riskPenalty(o.RiskLevel)

	priority := int(math.Round(score))
	if priority < minPriority {
		return minPriority
	}
	if priority > maxPriority {
		return maxPriority
	}
	return priority
}

func effortPenalty(l domain.Level) float64 {
	switch l {
	case domain.LevelMedium:
		return -1
	case domain.LevelHigh:
		return -2
	default:
		return 0
	}
}

func riskPenalty(l domain.Level) float64 {
	switch l {
	case domain.LevelMedium:
		return -0.5
	case domain.LevelHigh:
		return -1.5
	default:
		return 0
	}
}
