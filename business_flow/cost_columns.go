package businessflow

import (
	"strings"

	"github.com/logenix/freightquote/config"
	"github.com/logenix/freightquote/utils"
)

// CostColumnClassifier decides which catalog columns feed the grand total.
// Two rules exist in the rate-sheet lineage; a deployment picks one and
// sticks with it, since switching rules changes ranking outcomes.
type CostColumnClassifier struct {
	rule string
}

// NewCostColumnClassifier creates a classifier for the configured rule.
func NewCostColumnClassifier(rule string) CostColumnClassifier {
	return CostColumnClassifier{rule: rule}
}

// Cost vocabulary for the keyword rule.
var costKeywords = []string{
	"freight", "price", "charge", "charges", "insurance", "customs",
	"tax", "trucking", "haulage", "handling", "toll", "fee", "cost",
}

// Columns that look like identifiers, dates, or locations are never costs
// even when the vocabulary matches.
var nonCostMarkers = []string{
	"date", "validity", "id", "pol", "pod", "commodity", "name",
	"remarks", "route",
}

// IsCostColumn reports whether the named column is a cost component.
//
// The suffix rule counts a column iff its normalized name ends with
// "_charges". The keyword rule counts a column whose normalized name
// contains any cost vocabulary word, excluding weight columns (other than
// overweight surcharges) and identifier/date/location-looking names.
func (c CostColumnClassifier) IsCostColumn(name string) bool {
	n := utils.Normalize(name)
	if n == "" {
		return false
	}

	if c.rule == config.CostRuleKeyword {
		if strings.Contains(n, "weight") && !strings.Contains(n, "overweight") {
			return false
		}
		for _, marker := range nonCostMarkers {
			if strings.Contains(n, marker) {
				return false
			}
		}
		for _, kw := range costKeywords {
			if strings.Contains(n, kw) {
				return true
			}
		}
		return false
	}

	return strings.HasSuffix(n, "_charges")
}
