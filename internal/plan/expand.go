// Package plan expands a chosen recovery option into the full plan
// view: narrative, cost breakdown, timeline, resources, risks, specs,
// historical performance, editable parameters and what-if scenarios.
// Everything here is a pure function of the option, the flight context
// and a caller-supplied clock; pseudo-random texture derives from an
// FNV hash of the option ID so output is reproducible.
package plan

import (
	"fmt"
	"time"

	"github.com/aeron-ops/backend/internal/models"
)

// Expand materializes the detailed plan for one option. A zero-value
// option (nothing selected yet) yields a well-formed empty plan so the
// presentation layer can render a blank state without nil checks.
func Expand(opt models.RecoveryOption, flight models.Flight, at time.Time) models.ExpandedPlan {
	if opt.ID == "" && opt.Title == "" {
		return Empty()
	}
	flight = flight.WithDefaults()
	fam, exact := Resolve(opt.ID, opt.Title)

	return models.ExpandedPlan{
		OptionID:                  opt.ID,
		Description:               description(opt, flight, fam, exact),
		CostBreakdown:             costBreakdown(opt, flight, fam),
		Timeline:                  timeline(opt, fam, at),
		ResourceRequirements:      resourceRequirements(opt, fam),
		RiskAssessment:            riskAssessment(opt, fam),
		TechnicalSpecs:            technicalSpecs(opt, fam),
		HistoricalData:            historicalData(opt, fam, exact),
		EditableParameters:        EditableParameters(opt),
		WhatIfScenarios:           whatIfScenarios(opt, fam),
		AlternativeConsiderations: alternativeConsiderations(opt, flight, fam),
		StakeholderImpact:         stakeholderImpact(opt, flight),
	}
}

// Empty returns the canonical "nothing selected" plan: non-nil empty
// sections, never nil slices.
func Empty() models.ExpandedPlan {
	return models.ExpandedPlan{
		CostBreakdown:             []models.CostItem{},
		Timeline:                  []models.TimelineStep{},
		ResourceRequirements:      []models.ResourceRequirement{},
		RiskAssessment:            []models.RiskItem{},
		TechnicalSpecs:            map[string]any{},
		EditableParameters:        []models.Parameter{},
		WhatIfScenarios:           []models.WhatIfScenario{},
		AlternativeConsiderations: []string{},
		StakeholderImpact:         []models.StakeholderImpact{},
	}
}

func description(opt models.RecoveryOption, f models.Flight, fam Family, exact bool) string {
	if exact {
		if d, ok := exactDescriptions(f)[opt.ID]; ok {
			return d
		}
	}

	switch fam {
	case FamilyAircraftSwap:
		return fmt.Sprintf("Aircraft Swap Recovery for %s (%s→%s): Replace %s %s with available replacement aircraft at %s. "+
			"The replacement aircraft has been selected based on availability and route certification for %s-%s. "+
			"Estimated passenger transfer time: 35-45 minutes. All cargo and baggage will be transferred with priority handling. "+
			"This solution maintains schedule integrity with minimal passenger disruption. Current disruption: %s.",
			f.FlightNumber, f.Origin, f.Destination, f.Aircraft, f.Registration, f.Origin, f.Origin, f.Destination, f.DisruptionReason)
	case FamilyDelay:
		delay := opt.Timeline
		if delay == "" {
			delay = "4 hours"
		}
		return fmt.Sprintf("Controlled Delay Strategy for %s: Implement %s delay to allow comprehensive resolution of %s. "+
			"Includes passenger accommodation services, meal vouchers for all %d passengers, and ground transportation as needed. "+
			"This approach ensures complete issue resolution while providing appropriate passenger care.",
			f.FlightNumber, delay, f.DisruptionReason, f.Passengers)
	case FamilyReroute:
		return fmt.Sprintf("Route Optimization for %s: Alternative routing to reach %s while managing current %s. "+
			"Passengers will be provided with updated routing information and any necessary ground support. "+
			"Partnership agreements with other airlines and airports provide seamless ground handling. "+
			"Original %s %s status will be assessed during passenger journey.",
			f.FlightNumber, f.Destination, f.DisruptionReason, f.Aircraft, f.Registration)
	case FamilyPartner:
		return fmt.Sprintf("Emergency Codeshare Activation for %s: Secure seats on partner airline flight to %s. "+
			"Confirmed seat availability being processed for %d passengers including priority upgrades for VIP passengers. "+
			"Automatic baggage transfer arranged through ground services. Passenger notifications sent via SMS/email with new boarding details.",
			f.FlightNumber, f.Destination, f.Passengers)
	case FamilyCrew:
		return fmt.Sprintf("Crew Replacement Protocol for %s: Deploy standby crew currently available at %s. "+
			"Fresh crew well within regulatory duty time limitations. Extended briefing required for %s type rating and current route conditions. "+
			"Estimated crew preparation time: 45-60 minutes. Current crew situation: %s.",
			f.FlightNumber, f.Origin, f.Aircraft, f.DisruptionReason)
	case FamilyCancellation:
		return fmt.Sprintf("Flight Cancellation Protocol for %s: Due to %s, flight cancellation with comprehensive passenger re-accommodation. "+
			"All %d passengers will be rebooked on next available flights to %s. Hotel accommodation, meal vouchers, and transportation "+
			"provided as per passenger rights regulations. Priority rebooking for connecting passengers and VIP travelers.",
			f.FlightNumber, f.DisruptionReason, f.Passengers, f.Destination)
	}

	impact := opt.Impact
	if impact == "" {
		impact = "minimizing passenger disruption"
	}
	return fmt.Sprintf("Recovery solution for %s (%s→%s): %s. Aircraft: %s %s. Passengers affected: %d. Current situation: %s. "+
		"Solution focuses on %s while ensuring safety and regulatory compliance.",
		f.FlightNumber, f.Origin, f.Destination, opt.Description, f.Aircraft, f.Registration, f.Passengers, f.DisruptionReason, impact)
}

func exactDescriptions(f models.Flight) map[string]string {
	return map[string]string{
		"AIRCRAFT_SWAP_A320_001": fmt.Sprintf("Aircraft Swap Recovery for %s (%s→%s): Replace %s %s with available Airbus A320 (A6-FMC) at %s. "+
			"The replacement aircraft has completed D-check maintenance (last: 72 hours ago) and is certified for the %s-%s route. "+
			"Estimated passenger transfer time: 35 minutes. All cargo and baggage will be transferred with priority handling.",
			f.FlightNumber, f.Origin, f.Destination, f.Aircraft, f.Registration, f.Origin, f.Origin, f.Destination),
		"DELAY_4H_OVERNIGHT": fmt.Sprintf("Controlled Delay Strategy for %s: Implement 4-hour delay to allow comprehensive resolution of %s. "+
			"Includes passenger accommodation at Dubai International Hotel (147 rooms confirmed), meal vouchers for all %d passengers, "+
			"and ground transportation. Alternative aircraft A6-FMF will be available as backup after 6 hours if primary resolution fails.",
			f.FlightNumber, f.DisruptionReason, f.Passengers),
		"REROUTE_AUH_TECH": fmt.Sprintf("Route Optimization via Abu Dhabi for %s: Immediate departure to %s via AUH using hub connectivity. "+
			"Passengers will transit through AUH Terminal 1 with dedicated ground support. Estimated additional flight time: 45 minutes. "+
			"Original %s %s will undergo inspection at %s while passengers continue journey.",
			f.FlightNumber, f.Destination, f.Aircraft, f.Registration, f.Origin),
		"PARTNER_CODESHARE": fmt.Sprintf("Emergency Codeshare Activation for %s: Secure seats on Emirates flight EK542 (%s→%s) departing 16:45. "+
			"Confirmed availability: 189 seats including 12 business class upgrades for VIP passengers. "+
			"Automatic baggage transfer arranged through dnata ground services. Maintains arrival time within 30 minutes of original schedule.",
			f.FlightNumber, f.Origin, f.Destination),
		"CREW_REPLACEMENT_DXB": fmt.Sprintf("Crew Replacement Protocol for %s: Deploy standby crew (Captain Al-Zaabi, F/O Rahman + 4 cabin crew) "+
			"currently on duty at %s. Fresh crew duty time: 2.5 hours (well within regulatory limits). Extended briefing required for %s type rating. "+
			"Original crew stood down due to duty time violation (13.8/13.0 hours). Passenger delay: minimal (under 1 hour).",
			f.FlightNumber, f.Origin, f.Aircraft),
	}
}
