package plan

import "github.com/aeron-ops/backend/internal/models"

func technicalSpecs(opt models.RecoveryOption, fam Family) map[string]any {
	switch fam {
	case FamilyAircraftSwap:
		return map[string]any{
			"aircraft_requirements": "Same type rating, route certification current, ETOPS where applicable",
			"fuel_planning":         "Full fuel load plus contingency per revised flight plan",
			"weight_balance":        "Load sheet recomputed for replacement tail",
			"maintenance_status":    "Airworthiness release and deferred defect review completed",
			"positioning_time":      "Tow from hangar to gate within 15 minutes",
		}
	case FamilyDelay:
		return map[string]any{
			"slot_coordination":  "Revised departure slot requested from flow management",
			"crew_legality":      "Duty time recomputed against revised departure",
			"aircraft_servicing": "Catering and water top-up before re-departure",
			"passenger_handling": "Accommodation triggered when delay exceeds 3 hours",
			"curfew_constraints": "Destination curfew checked against revised arrival",
		}
	case FamilyCrew:
		return map[string]any{
			"type_rating":    "Replacement crew current and qualified on aircraft type",
			"duty_time":      "Fresh crew within regulatory duty limitations",
			"briefing_scope": "Route, NOTAM, weather and disruption context",
			"documentation":  "Crew records and journey log updated before departure",
			"original_crew":  "Relieved crew stood down and repositioned per roster",
		}
	}
	return map[string]any{
		"operational_requirements": "Standard recovery execution per operations manual",
		"regulatory_compliance":    "All applicable aviation regulations observed",
		"coordination":             "Operations control, airport authority and ground handler aligned",
		"monitoring":               "Progress tracked against plan timeline at each phase",
	}
}
