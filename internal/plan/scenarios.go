package plan

import (
	"fmt"

	"github.com/aeron-ops/backend/internal/models"
)

func whatIfScenarios(opt models.RecoveryOption, fam Family) []models.WhatIfScenario {
	switch fam {
	case FamilyAircraftSwap:
		return []models.WhatIfScenario{
			{Scenario: "Replacement aircraft develops a fault during positioning", Impact: "Fall back to delay option, cost increases ~60%", Probability: 5, Timeline: "+3 hours"},
			{Scenario: "Baggage transfer completes ahead of schedule", Impact: "Departure advances, cost reduces ~8%", Probability: 25, Timeline: "-15 minutes"},
			{Scenario: "Gate conflict forces remote stand departure", Impact: "Bus boarding required, minor cost increase", Probability: 15, Timeline: "+20 minutes"},
		}
	case FamilyDelay:
		return []models.WhatIfScenario{
			{Scenario: "Underlying issue resolves early", Impact: "Delay shortens, accommodation costs partially recovered", Probability: 30, Timeline: "-1 hour"},
			{Scenario: "Resolution overruns the planned delay", Impact: "Crew change required, cost increases ~40%", Probability: 20, Timeline: "+2 hours"},
			{Scenario: "Destination curfew reached", Impact: "Overnight delay forced, full accommodation costs", Probability: 10, Timeline: "+10 hours"},
		}
	case FamilyCrew:
		return []models.WhatIfScenario{
			{Scenario: "Primary standby crew unavailable", Impact: "Second standby set activated, modest delay added", Probability: 10, Timeline: "+45 minutes"},
			{Scenario: "Briefing completes early", Impact: "Departure advances", Probability: 35, Timeline: "-15 minutes"},
		}
	case FamilyCancellation:
		return []models.WhatIfScenario{
			{Scenario: "Partner capacity absorbs all passengers same day", Impact: "Accommodation costs largely avoided", Probability: 40, Timeline: "Same day"},
			{Scenario: "Rebooking spills to next day", Impact: "Full accommodation and compensation costs", Probability: 30, Timeline: "+1 day"},
		}
	}
	return []models.WhatIfScenario{
		{Scenario: "Execution proceeds as planned", Impact: "Cost and timeline hold within estimates", Probability: opt.Confidence, Timeline: "On plan"},
		{Scenario: "Secondary disruption during execution", Impact: "Escalation to alternative option, cost increases", Probability: 100 - opt.Confidence, Timeline: "+1-2 hours"},
	}
}

func alternativeConsiderations(opt models.RecoveryOption, f models.Flight, fam Family) []string {
	base := []string{
		fmt.Sprintf("Network knock-on effects for %s rotation assessed before commitment", f.Aircraft),
		"Passenger connection exposure reviewed against rebooking capacity",
	}
	switch fam {
	case FamilyAircraftSwap:
		return append(base,
			"Delay option remains viable if the replacement tail is withdrawn",
			"Partner codeshare capacity checked as a secondary fallback")
	case FamilyDelay:
		return append(base,
			"Aircraft swap reconsidered if resolution estimate slips past 6 hours",
			"Cancellation threshold reviewed against curfew and crew legality")
	case FamilyCancellation:
		return append(base,
			"Partial recovery via partner uplift evaluated before full cancellation")
	}
	return base
}

func stakeholderImpact(opt models.RecoveryOption, f models.Flight) []models.StakeholderImpact {
	return []models.StakeholderImpact{
		{Group: "Passengers", Impact: fmt.Sprintf("%d passengers affected on %s", f.Passengers, f.FlightNumber), Sentiment: "Concerned", Actions: "Proactive notifications and care per service policy", Details: "Connection passengers prioritized for rebooking support"},
		{Group: "Crew", Impact: "Duty schedules adjusted to the recovery timeline", Sentiment: "Neutral", Actions: "Roster updates and legality rechecks issued", Details: "Standby coverage refreshed after the recovery completes"},
		{Group: "Operations", Impact: fmt.Sprintf("Recovery executed under %s conditions", opt.Status), Sentiment: "Engaged", Actions: "Dedicated controller tracks execution phases", Details: "Escalation path defined if the plan deviates"},
		{Group: "Commercial", Impact: "Revenue protection through passenger retention", Sentiment: "Watchful", Actions: "Service recovery gestures authorized where warranted", Details: "High-value passengers flagged for individual follow-up"},
	}
}
