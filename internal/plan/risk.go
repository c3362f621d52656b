package plan

import "github.com/aeron-ops/backend/internal/models"

func riskAssessment(opt models.RecoveryOption, fam Family) []models.RiskItem {
	switch fam {
	case FamilyAircraftSwap:
		return []models.RiskItem{
			{Risk: "Replacement aircraft technical issue", Probability: "Low", Impact: "High", Mitigation: "Pre-positioning inspection completed before passenger transfer", RiskScore: 2},
			{Risk: "Baggage transfer delay", Probability: "Medium", Impact: "Medium", Mitigation: "Priority handling team assigned with supervisor oversight", RiskScore: 4},
			{Risk: "Gate availability conflict", Probability: "Low", Impact: "Medium", Mitigation: "Gate hold confirmed with airport operations", RiskScore: 2},
		}
	case FamilyDelay:
		return []models.RiskItem{
			{Risk: "Resolution overruns planned delay", Probability: "Medium", Impact: "High", Mitigation: "Backup recovery option pre-approved at decision point", RiskScore: 6},
			{Risk: "Hotel capacity shortfall", Probability: "Low", Impact: "Medium", Mitigation: "Secondary hotel block on standby", RiskScore: 2},
			{Risk: "Crew duty limits reached during delay", Probability: "Medium", Impact: "High", Mitigation: "Standby crew identified before delay committed", RiskScore: 6},
		}
	case FamilyCrew:
		return []models.RiskItem{
			{Risk: "Standby crew response delay", Probability: "Low", Impact: "High", Mitigation: "Two standby sets contacted in parallel", RiskScore: 2},
			{Risk: "Briefing extends past planned window", Probability: "Medium", Impact: "Medium", Mitigation: "Briefing pack pre-staged in operations center", RiskScore: 4},
		}
	case FamilyCancellation:
		return []models.RiskItem{
			{Risk: "Insufficient rebooking capacity", Probability: "Medium", Impact: "High", Mitigation: "Partner airline inventory secured before cancellation declared", RiskScore: 6},
			{Risk: "Regulatory compensation claims", Probability: "High", Impact: "Medium", Mitigation: "Proactive compensation offered per passenger rights policy", RiskScore: 6},
			{Risk: "Reputational impact", Probability: "Medium", Impact: "Medium", Mitigation: "Coordinated passenger communication and care package", RiskScore: 4},
		}
	}

	// Generic: derive from option confidence.
	probability := "High"
	multiplier := 6
	switch {
	case opt.Confidence > 90:
		probability = "Low"
		multiplier = 2
	case opt.Confidence > 75:
		probability = "Medium"
		multiplier = 4
	}
	return []models.RiskItem{
		{Risk: "Execution deviates from plan", Probability: probability, Impact: "Medium", Mitigation: "Operations control monitors each phase against the timeline", RiskScore: multiplier},
		{Risk: "Secondary disruption during recovery", Probability: probability, Impact: "High", Mitigation: "Alternative option kept warm until recovery completes", RiskScore: multiplier + 1},
	}
}
