// Package opportunity detects tax optimization opportunities for a company and
// ranks them by expected payoff.
//
// Every generator is a pure function of the financial input and company
// context: the same pair always yields the same opportunities, in the same
// order, with the same IDs.
package opportunity

import (
	"github.com/fabiotcs/apptributario-sub000/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Generator emits the opportunities of one category
type Generator func(input domain.FinancialInput, company *domain.CompanyContext) []domain.Opportunity

// Timeline used by opportunities that can be applied right away
const TimelineImmediate = "Immediate"

// idNamespace scopes the name-based opportunity IDs
var idNamespace = uuid.MustParse("5b0c7e0e-3f55-4c1e-9a7d-6f1f2a4d8c21")

// opportunityID derives a stable UUIDv5 from the category and a slug
func opportunityID(category domain.Category, slug string) string {
	return uuid.NewSHA1(idNamespace, []byte(category.String()+"/"+slug)).String()
}

// finalize fills the derived fields of a freshly built opportunity
func finalize(o domain.Opportunity, slug string) domain.Opportunity {
	o.ID = opportunityID(o.Category, slug)
	o.ROI = CalculateROI(o.EstimatedSavings, o.ImplementationCost)
	return o
}

// share returns round(amount x rate) in centavos
func share(amount int64, rate decimal.Decimal) int64 {
	return decimal.NewFromInt(amount).Mul(rate).Round(0).IntPart()
}

func capAt(v, limit int64) int64 {
	if v > limit {
		return limit
	}
	return v
}

func allRegimes() []domain.Regime {
	return domain.AllRegimes()
}
