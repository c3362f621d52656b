// Package whatif recomputes cost, timeline and confidence for a
// recovery option under hypothetical changes: either a named scenario
// carrying percentage and absolute deltas, or a set of parameter
// edits. Recalculation is a pure function of the baseline and the
// inputs; repeating it never compounds an adjustment.
package whatif

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/aeron-ops/backend/internal/config"
	"github.com/aeron-ops/backend/internal/models"
	"github.com/aeron-ops/backend/internal/plan"
	"github.com/aeron-ops/backend/internal/utils"
)

// Recalculate applies a scenario and/or parameter edits to the
// baseline option. Edits apply in the order the option's parameters
// are declared, so later multiplicative rules compose on the adjusted
// value rather than the baseline.
func Recalculate(pol config.Policy, base models.RecoveryOption, scenario *models.Scenario, edits map[string]any) models.ImpactResult {
	cost := utils.ParseAmount(base.Cost, pol.DefaultBaseCost)
	minutes := utils.ParseMinutes(base.Timeline, pol.DefaultBaseMinutes)
	confidence := base.Confidence
	baseCost := cost

	if scenario != nil {
		cost *= 1 + (scenario.CostIncreasePct-scenario.CostReductionPct)/100
		minutes += scenario.TimeIncreaseMin - scenario.TimeReductionMin
		if scenario.SuccessProbability > 0 {
			confidence = scenario.SuccessProbability
		}
	}

	rawMinutes := false
	if len(edits) > 0 {
		applied := map[string]bool{}
		for _, p := range plan.EditableParameters(base) {
			v, ok := edits[p.Name]
			if !ok {
				continue
			}
			cost, minutes, rawMinutes = applyEdit(pol, p.Name, v, cost, minutes, rawMinutes)
			applied[p.Name] = true
		}
		// Edits naming parameters outside the declared set still get
		// their rule, in a stable order.
		var rest []string
		for name := range edits {
			if !applied[name] {
				rest = append(rest, name)
			}
		}
		sort.Strings(rest)
		for _, name := range rest {
			cost, minutes, rawMinutes = applyEdit(pol, name, edits[name], cost, minutes, rawMinutes)
		}
	}

	if minutes < 0 {
		minutes = 0
	}
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 100 {
		confidence = 100
	}

	timeline := utils.FormatMinutes(minutes)
	if rawMinutes {
		timeline = fmt.Sprintf("%d minutes", int(minutes+0.5))
	}

	return models.ImpactResult{
		Cost:       utils.FormatAED(cost),
		Timeline:   timeline,
		Confidence: confidence,
		Impact:     impactLabel(cost, baseCost),
		RiskLevel:  riskLevel(confidence),
	}
}

// applyEdit runs one parameter rule. The rawMinutes flag is set when
// the operator pinned an explicit duration; the result then reports
// that duration in minutes regardless of magnitude.
func applyEdit(pol config.Policy, name string, value any, cost, minutes float64, rawMinutes bool) (float64, float64, bool) {
	switch name {
	case "Delay Duration":
		v := toFloat(value, minutes)
		if pol.ReferenceDelayMin > 0 {
			cost *= v / pol.ReferenceDelayMin
		}
		minutes = v
		rawMinutes = true
	case "Hotel Accommodation":
		switch toString(value) {
		case "Budget":
			cost *= 0.7
		case "Premium":
			cost *= 1.5
		}
	case "Priority Level":
		switch toString(value) {
		case "Expedited":
			cost *= 1.2
			minutes -= 10
		case "Emergency":
			cost *= 1.5
			minutes -= 20
		}
	case "Transfer Buffer", "Timeline Buffer":
		v := toFloat(value, 40)
		minutes += v - 40
		if minutes < 30 {
			minutes = 30
		}
	case "Briefing Duration":
		v := toFloat(value, 35)
		minutes += v - 35
	}
	return cost, minutes, rawMinutes
}

func impactLabel(cost, baseCost float64) string {
	switch {
	case cost > baseCost+0.5:
		return "Higher Cost"
	case cost < baseCost-0.5:
		return "Lower Cost"
	}
	return "Same Cost"
}

func riskLevel(confidence int) string {
	switch {
	case confidence > 90:
		return "Low"
	case confidence > 80:
		return "Medium"
	}
	return "High"
}

// Edits arrive from JSON or query params, so values may be numbers or
// strings; be lenient.
func toFloat(v any, fallback float64) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(x), 64); err == nil {
			return f
		}
	}
	return fallback
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return fmt.Sprint(v)
}
