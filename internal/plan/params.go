package plan

import "github.com/aeron-ops/backend/internal/models"

// EditableParameters lists the operator-adjustable knobs for an
// option. Order matters: what-if recalculation applies edits in the
// order parameters are declared here.
func EditableParameters(opt models.RecoveryOption) []models.Parameter {
	fam, _ := Resolve(opt.ID, opt.Title)
	switch fam {
	case FamilyAircraftSwap:
		return []models.Parameter{
			{Name: "Priority Level", Type: "select", Value: "Standard", Options: []string{"Standard", "Expedited", "Emergency"}, Impact: "cost", Description: "Escalation level for positioning and ground resources"},
			{Name: "Passenger Transfer Mode", Type: "select", Value: "Gate to Gate", Options: []string{"Gate to Gate", "Bus Transfer", "Terminal Walk"}, Impact: "timeline", Description: "How passengers move to the replacement aircraft"},
			{Name: "Transfer Buffer", Type: "slider", Value: 40.0, Min: 20, Max: 90, Unit: "minutes", Impact: "timeline", Description: "Time reserved for passenger and baggage transfer"},
		}
	case FamilyDelay:
		return []models.Parameter{
			{Name: "Delay Duration", Type: "slider", Value: 240.0, Min: 60, Max: 720, Unit: "minutes", Impact: "cost", Description: "Planned delay before re-departure"},
			{Name: "Hotel Accommodation", Type: "select", Value: "Standard", Options: []string{"Budget", "Standard", "Premium"}, Impact: "cost", Description: "Accommodation tier for overnight passengers"},
			{Name: "Meal Service Level", Type: "select", Value: "Standard", Options: []string{"Vouchers Only", "Standard", "Full Service"}, Impact: "cost", Description: "Passenger meal provision during the delay"},
		}
	case FamilyCrew:
		return []models.Parameter{
			{Name: "Priority Level", Type: "select", Value: "Standard", Options: []string{"Standard", "Expedited", "Emergency"}, Impact: "cost", Description: "Callout urgency for the standby crew"},
			{Name: "Briefing Duration", Type: "slider", Value: 35.0, Min: 20, Max: 90, Unit: "minutes", Impact: "timeline", Description: "Time allocated for the extended crew briefing"},
			{Name: "Crew Transport Mode", Type: "select", Value: "Airside Direct", Options: []string{"Airside Direct", "Landside Shuttle"}, Impact: "timeline", Description: "Routing for replacement crew to the aircraft"},
		}
	case FamilyCancellation:
		return []models.Parameter{
			{Name: "Rebooking Priority", Type: "select", Value: "Connections First", Options: []string{"Connections First", "Booking Order", "Status Tier"}, Impact: "timeline", Description: "Ordering rule for passenger rebooking"},
			{Name: "Hotel Accommodation", Type: "select", Value: "Standard", Options: []string{"Budget", "Standard", "Premium"}, Impact: "cost", Description: "Accommodation tier for stranded passengers"},
			{Name: "Proactive Compensation", Type: "switch", Value: true, Impact: "cost", Description: "Offer compensation before claims are filed"},
		}
	}
	return []models.Parameter{
		{Name: "Priority Level", Type: "select", Value: "Standard", Options: []string{"Standard", "Expedited", "Emergency"}, Impact: "cost", Description: "Overall execution urgency"},
		{Name: "Timeline Buffer", Type: "slider", Value: 40.0, Min: 20, Max: 120, Unit: "minutes", Impact: "timeline", Description: "Contingency added to the execution timeline"},
	}
}
