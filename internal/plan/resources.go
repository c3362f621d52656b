package plan

import "github.com/aeron-ops/backend/internal/models"

func resourceRequirements(opt models.RecoveryOption, fam Family) []models.ResourceRequirement {
	switch fam {
	case FamilyAircraftSwap:
		return []models.ResourceRequirement{
			{Type: "Aircraft", Resource: "Replacement Aircraft", Availability: "Confirmed Available", Location: "Maintenance Hangar 2", Status: "Ready", ETA: "15 minutes to gate", Details: "Same type rating, full fuel, maintenance current"},
			{Type: "Ground Crew", Resource: "Aircraft Tow Team", Availability: "On Duty", Location: "Ramp Control", Status: "Assigned", ETA: "Immediate", Details: "Tow tractor and wing walkers allocated"},
			{Type: "Ground Crew", Resource: "Baggage Transfer Team", Availability: "Available", Location: "Terminal 2 Ramp", Status: "Standby", ETA: "10 minutes", Details: "Priority transfer of checked baggage and cargo"},
			{Type: "Gate", Resource: "Departure Gate", Availability: "Held", Location: "Terminal 2", Status: "Confirmed", ETA: "N/A", Details: "Gate hold extended for aircraft change"},
		}
	case FamilyDelay:
		return []models.ResourceRequirement{
			{Type: "Accommodation", Resource: "Hotel Room Block", Availability: "Confirmed", Location: "Airport Hotel", Status: "Reserved", ETA: "30 minutes", Details: "Rooms held against passenger manifest"},
			{Type: "Catering", Resource: "Meal Vouchers", Availability: "Available", Location: "Terminal Concessions", Status: "Issued", ETA: "Immediate", Details: "Vouchers valid at all terminal outlets"},
			{Type: "Transport", Resource: "Passenger Coaches", Availability: "On Request", Location: "Landside Forecourt", Status: "Standby", ETA: "20 minutes", Details: "Hotel shuttle rotation arranged"},
		}
	case FamilyCrew:
		return []models.ResourceRequirement{
			{Type: "Crew", Resource: "Standby Flight Crew", Availability: "On Duty", Location: "Crew Rest Facility", Status: "Activated", ETA: "25 minutes", Details: "Captain and first officer current on type"},
			{Type: "Crew", Resource: "Standby Cabin Crew", Availability: "On Duty", Location: "Crew Rest Facility", Status: "Activated", ETA: "25 minutes", Details: "Minimum complement plus one"},
			{Type: "Transport", Resource: "Crew Transport", Availability: "Available", Location: "Airside Pool", Status: "Dispatched", ETA: "10 minutes", Details: "Direct airside transfer to stand"},
			{Type: "Operations", Resource: "Briefing Room", Availability: "Reserved", Location: "Operations Center", Status: "Ready", ETA: "Immediate", Details: "Extended briefing for route and disruption context"},
		}
	}
	return []models.ResourceRequirement{
		{Type: "Operations", Resource: "Operations Control Desk", Availability: "On Duty", Location: "Operations Center", Status: "Monitoring", ETA: "Immediate", Details: "Dedicated controller assigned to this recovery"},
		{Type: "Ground Crew", Resource: "Ground Handling Team", Availability: "Available", Location: "Terminal Ramp", Status: "Standby", ETA: "15 minutes", Details: "Standard turnaround complement"},
		{Type: "Customer Service", Resource: "Passenger Service Agents", Availability: "Available", Location: "Departure Gate", Status: "Assigned", ETA: "Immediate", Details: "Gate staffing increased for passenger handling"},
	}
}
