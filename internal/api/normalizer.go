package api

import (
	"encoding/json"
	"regexp"
	"strings"

	"medellin/server/internal/models"
)

// ParseOutcome tags which recovery tier produced the normalized report.
type ParseOutcome int

const (
	// ParseDirect: the (fence-stripped) text was valid schema JSON.
	ParseDirect ParseOutcome = iota
	// ParseRecovered: a JSON object was extracted between the first '{'
	// and the last '}'.
	ParseRecovered
	// ParseFallback: nothing parsed; the raw text became the narrative.
	ParseFallback
)

func (o ParseOutcome) String() string {
	switch o {
	case ParseDirect:
		return "direct"
	case ParseRecovered:
		return "recovered"
	default:
		return "fallback"
	}
}

var (
	fenceOpen  = regexp.MustCompile("^```[a-zA-Z]*\\s*")
	fenceClose = regexp.MustCompile("\\s*```$")
)

// Normalize turns whatever text the agent produced into a valid AgentReport.
// It never fails: the worst case wraps the raw text verbatim as the
// narrative with empty tabular and chart parts.
func Normalize(raw string) (models.AgentReport, ParseOutcome) {
	clean := strings.TrimSpace(raw)
	if strings.Contains(clean, "```") {
		clean = fenceOpen.ReplaceAllString(clean, "")
		clean = fenceClose.ReplaceAllString(clean, "")
		clean = strings.TrimSpace(clean)
	}

	var report models.AgentReport
	if strings.HasPrefix(clean, "{") {
		if err := json.Unmarshal([]byte(clean), &report); err == nil {
			return report, ParseDirect
		}
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start != -1 && end > start {
		report = models.AgentReport{}
		if err := json.Unmarshal([]byte(raw[start:end+1]), &report); err == nil {
			return report, ParseRecovered
		}
	}

	return models.AgentReport{RespuestaTexto: raw}, ParseFallback
}
