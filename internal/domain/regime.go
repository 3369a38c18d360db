package domain

import (
	"fmt"
	"strings"
)

// Regime is one of the three mutually exclusive Brazilian corporate tax regimes
type Regime int

const (
	RegimeSimplified Regime = iota
	RegimePresumed
	RegimeReal
)

// AllRegimes returns the regimes in evaluation order. Comparison ties are
// resolved by this order, so it must not change.
func AllRegimes() []Regime {
	return []Regime{RegimeSimplified, RegimePresumed, RegimeReal}
}

func (r Regime) String() string {
	switch r {
	case RegimeSimplified:
		return "SIMPLIFIED"
	case RegimePresumed:
		return "PRESUMED"
	case RegimeReal:
		return "REAL"
	default:
		return "UNKNOWN"
	}
}

// DisplayName returns the regime's Brazilian name
func (r Regime) DisplayName() string {
	switch r {
	case RegimeSimplified:
		return "Simples Nacional"
	case RegimePresumed:
		return "Lucro Presumido"
	case RegimeReal:
		return "Lucro Real"
	default:
		return "Desconhecido"
	}
}

// ParseRegime accepts the identifier form (SIMPLIFIED, PRESUMED, REAL) in any case
func ParseRegime(s string) (Regime, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SIMPLIFIED":
		return RegimeSimplified, nil
	case "PRESUMED":
		return RegimePresumed, nil
	case "REAL":
		return RegimeReal, nil
	default:
		return 0, fmt.Errorf("unknown regime %q", s)
	}
}

func (r Regime) MarshalText() ([]byte, error) {
	if r < RegimeSimplified || r > RegimeReal {
		return nil, fmt.Errorf("invalid regime %d", int(r))
	}
	return []byte(r.String()), nil
}

func (r *Regime) UnmarshalText(text []byte) error {
	parsed, err := ParseRegime(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// RegimeResult is the estimated liability under a single regime
type RegimeResult struct {
	Regime                Regime   `json:"regime"`
	EffectiveTaxRate      float64  `json:"effectiveTaxRate"`
	AnnualTaxLiability    int64    `json:"annualTaxLiability"`
	AverageMonthlyPayment int64    `json:"averageMonthlyPayment"`
	TaxableBase           int64    `json:"taxableBase"`
	RemainingBalance      int64    `json:"remainingBalance,omitempty"` // REAL only
	Advantages            []string `json:"advantages"`
	Disadvantages         []string `json:"disadvantages"`
}

// RegimeComparison holds all three results plus the recommendation
type RegimeComparison struct {
	Results           map[Regime]RegimeResult `json:"results"`
	RecommendedRegime Regime                  `json:"recommendedRegime"`
	EstimatedSavings  int64                   `json:"estimatedSavings"`
	Analysis          string                  `json:"analysis"`
}

// Result returns the result for a regime
func (rc *RegimeComparison) Result(r Regime) RegimeResult {
	return rc.Results[r]
}

// Recommended returns the result of the recommended regime
func (rc *RegimeComparison) Recommended() RegimeResult {
	return rc.Results[rc.RecommendedRegime]
}

// Ordered returns the results in evaluation order
func (rc *RegimeComparison) Ordered() []RegimeResult {
	ordered := make([]RegimeResult, 0, len(rc.Results))
	for _, r := range AllRegimes() {
		if res, ok := rc.Results[r]; ok {
			ordered = append(ordered, res)
		}
	}
	return ordered
}
