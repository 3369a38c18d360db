package compare

import (
	"encoding/json"

	"github.com/fabiotcs/apptributario-sub000/internal/domain"
)

// JSONFormatter formats a regime comparison as JSON
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

// Format generates JSON output for a regime comparison
func (jf *JSONFormatter) Format(rc *domain.RegimeComparison) (string, error) {
	return jf.marshal(rc)
}

// FormatScenarios generates JSON output for a what-if comparison set
func (jf *JSONFormatter) FormatScenarios(cs *ComparisonSet) (string, error) {
	return jf.marshal(cs)
}

func (jf *JSONFormatter) marshal(v any) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}
