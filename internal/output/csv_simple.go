package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/fabiotcs/apptributario-sub000/internal/domain"
)

// CSVSummarizer writes one row per ranked opportunity
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Rank", "ID", "Category", "Title", "EstimatedSavings", "ImplementationCost", "ROI", "Risk", "Effort", "Priority", "ApplicableRegimes"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i, o := range report.Opportunities {
		row := []string{
			strconv.Itoa(i + 1),
			o.ID,
			o.Category.String(),
			o.Title,
			domain.CentsToDecimal(o.EstimatedSavings).StringFixed(2),
			domain.CentsToDecimal(o.ImplementationCost).StringFixed(2),
			strconv.FormatFloat(o.ROI, 'f', 2, 64),
			o.RiskLevel.String(),
			o.ImplementationEffort.String(),
			strconv.Itoa(o.Priority),
			joinRegimes(o.ApplicableRegimes),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func joinRegimes(regimes []domain.Regime) string {
	names := make([]string, len(regimes))
	for i, r := range regimes {
		names[i] = r.String()
	}
	return strings.Join(names, ";")
}
