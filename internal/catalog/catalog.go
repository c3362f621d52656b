// Package catalog synthesizes candidate recovery options for a
// disrupted flight. It is the local fallback behind the recovery data
// boundary: a pure function of the disruption category plus static
// per-category templates, guaranteed to return at least one option.
package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/aeron-ops/backend/internal/models"
)

// Classify maps free-text disruption typing onto a category. Used when
// upstream systems send a reason string instead of a structured
// category.
func Classify(disruptionType, reason string) models.DisruptionCategory {
	t := strings.ToLower(disruptionType)
	r := strings.ToLower(reason)

	switch {
	case strings.Contains(t, "technical") || strings.Contains(r, "maintenance") || strings.Contains(r, "aog"):
		return models.CategoryAircraftIssue
	case strings.Contains(t, "crew") || strings.Contains(r, "crew") || strings.Contains(r, "duty time"):
		return models.CategoryCrewIssue
	case strings.Contains(t, "weather") || strings.Contains(r, "weather") || strings.Contains(r, "atc"):
		return models.CategoryWeather
	case strings.Contains(t, "curfew") || strings.Contains(r, "curfew") || strings.Contains(r, "congestion"):
		return models.CategoryAirport
	case strings.Contains(t, "rotation") || strings.Contains(r, "rotation") || strings.Contains(r, "misalignment"):
		return models.CategoryRotation
	}
	return models.CategoryOther
}

// Generate returns the category-specific option set plus the analysis
// step trail. Never empty: unmapped categories get the standard
// recovery protocol.
func Generate(d models.Disruption, f models.Flight, at time.Time) ([]models.RecoveryOption, []models.GenerationStep) {
	f = withDefaults(f, d)

	var opts []models.RecoveryOption
	switch d.Category {
	case models.CategoryAircraftIssue:
		opts = aircraftIssueOptions(f)
	case models.CategoryCrewIssue:
		opts = crewIssueOptions(f)
	case models.CategoryWeather:
		opts = weatherOptions(f)
	case models.CategoryAirport:
		opts = airportOptions(f)
	case models.CategoryRotation:
		opts = rotationOptions(f)
	default:
		opts = standardOptions(f)
	}
	return opts, generationSteps(d, f, len(opts), at)
}

func withDefaults(f models.Flight, d models.Disruption) models.Flight {
	if f.FlightNumber == "" {
		f.FlightNumber = d.FlightNumber
	}
	if f.Passengers == 0 {
		f.Passengers = d.Passengers
	}
	if f.DisruptionReason == "" {
		f.DisruptionReason = d.Reason
	}
	return f.WithDefaults()
}

func aircraftIssueOptions(f models.Flight) []models.RecoveryOption {
	return []models.RecoveryOption{
		{
			ID:          "SWAP_AIRCRAFT",
			Title:       "Aircraft Swap - Available Alternative",
			Description: "Immediate tail swap with available aircraft",
			Cost:        "AED 45,000",
			Timeline:    "75 minutes",
			Confidence:  95,
			Impact:      "Minimal passenger disruption",
			Status:      models.StatusRecommended,
			Advantages: []string{
				"Same aircraft type - no passenger impact",
				"Available immediately",
				"Maintains 97% of schedule integrity",
			},
			Considerations: []string{
				"Crew briefing required for aircraft change",
				"Passenger transfer time: 30 minutes",
			},
			Metrics: models.OptionMetrics{
				TotalCost: 45000, OTPScore: 88, AircraftSwaps: 1,
				PaxAccommodated: 100, RegulatoryRisk: "Low",
				DelayMinutes: 75, NetworkImpact: "Low",
			},
		},
		{
			ID:          "DELAY_REPAIR",
			Title:       "Delay for Repair Completion",
			Description: "Wait for aircraft technical issue resolution",
			Cost:        "AED 180,000",
			Timeline:    "4-6 hours",
			Confidence:  45,
			Impact:      "Significant passenger disruption",
			Status:      models.StatusCaution,
			Advantages: []string{
				"Original aircraft maintained",
				"No aircraft swap complexity",
			},
			Considerations: []string{
				"Repair ETA uncertain",
				"Massive passenger accommodation needed",
			},
			Metrics: models.OptionMetrics{
				TotalCost: 180000, OTPScore: 45,
				PaxAccommodated: 85, RegulatoryRisk: "Medium",
				DelayMinutes: 360, NetworkImpact: "High",
			},
		},
		{
			ID:          "CANCEL_REBOOK",
			Title:       "Cancel and Rebook",
			Description: fmt.Sprintf("Cancel %s and rebook on partner airlines", f.FlightNumber),
			Cost:        "AED 520,000",
			Timeline:    "Immediate",
			Confidence:  75,
			Impact:      "Complete route cancellation",
			Status:      models.StatusWarning,
			Advantages: []string{
				"Stops cascade disruption immediately",
				"Quick passenger rebooking process",
			},
			Considerations: []string{
				"Complete revenue loss for sector",
				"High passenger compensation costs",
			},
			Metrics: models.OptionMetrics{
				TotalCost: 520000, OTPScore: 0,
				PaxAccommodated: 75, RegulatoryRisk: "High",
				DelayMinutes: 0, NetworkImpact: "Low",
			},
		},
	}
}

func crewIssueOptions(f models.Flight) []models.RecoveryOption {
	return []models.RecoveryOption{
		{
			ID:          "STANDBY_CREW",
			Title:       "Assign Standby Crew",
			Description: "Activate standby crew member from roster",
			Cost:        "AED 8,500",
			Timeline:    "30 minutes",
			Confidence:  92,
			Impact:      "Minimal operational disruption",
			Status:      models.StatusRecommended,
			Advantages: []string{
				"Standby crew immediately available",
				"Within all regulatory duty time limits",
			},
			Considerations: []string{
				"Extended briefing required",
				"Standby crew pay activation costs",
			},
			Metrics: models.OptionMetrics{
				TotalCost: 8500, OTPScore: 92,
				PaxAccommodated: 100, RegulatoryRisk: "Low",
				DelayMinutes: 30, NetworkImpact: "Low",
			},
		},
		{
			ID:          "DELAY_COMPLIANCE",
			Title:       "Delay for Crew Rest Completion",
			Description: "Wait for original crew mandatory rest period",
			Cost:        "AED 45,000",
			Timeline:    "3 hours",
			Confidence:  65,
			Impact:      "Significant passenger disruption",
			Status:      models.StatusWarning,
			Advantages: []string{
				"Uses original qualified crew",
				"Full regulatory compliance",
			},
			Considerations: []string{
				"3-hour minimum delay",
				"High passenger compensation liability",
			},
			Metrics: models.OptionMetrics{
				TotalCost: 45000, OTPScore: 65, CrewViolations: 1,
				PaxAccommodated: 85, RegulatoryRisk: "Medium",
				DelayMinutes: 180, NetworkImpact: "Medium",
			},
		},
	}
}

func weatherOptions(f models.Flight) []models.RecoveryOption {
	return []models.RecoveryOption{
		{
			ID:          "DELAY_WEATHER",
			Title:       "Delay for Weather Clearance",
			Description: fmt.Sprintf("Wait for weather improvement at %s", f.Destination),
			Cost:        "AED 25,000",
			Timeline:    "2-3 hours",
			Confidence:  90,
			Impact:      "Managed schedule delay",
			Status:      models.StatusRecommended,
			Advantages: []string{
				"Weather forecast shows improvement",
				"All connections protected",
			},
			Considerations: []string{
				"Dependent on weather improvement",
				"Crew duty time monitoring",
			},
			Metrics: models.OptionMetrics{
				TotalCost: 25000, OTPScore: 80,
				PaxAccommodated: 95, RegulatoryRisk: "Low",
				DelayMinutes: 150, NetworkImpact: "Low",
			},
		},
		{
			ID:          "CANCEL_WEATHER",
			Title:       "Cancel Due to Weather",
			Description: "Cancel flight and rebook passengers",
			Cost:        "AED 180,000",
			Timeline:    "Immediate",
			Confidence:  60,
			Impact:      "Complete sector cancellation",
			Status:      models.StatusWarning,
			Advantages: []string{
				"Immediate resolution",
				"Weather exemption from compensation",
			},
			Considerations: []string{
				"Complete revenue loss",
				"Customer dissatisfaction",
			},
			Metrics: models.OptionMetrics{
				TotalCost: 180000, OTPScore: 0,
				PaxAccommodated: 70, RegulatoryRisk: "Medium",
				DelayMinutes: 0, NetworkImpact: "Low",
			},
		},
	}
}

func airportOptions(f models.Flight) []models.RecoveryOption {
	return []models.RecoveryOption{
		{
			ID:          "SWAP_EARLY",
			Title:       "Aircraft Swap for Earlier Departure",
			Description: "Swap with earlier flight to depart ahead of the curfew window",
			Cost:        "AED 45,000",
			Timeline:    "45 minutes",
			Confidence:  92,
			Impact:      "Beat curfew timing",
			Status:      models.StatusRecommended,
			Advantages: []string{
				"Arrive before curfew",
				"Zero passenger rebooking",
				"Significant cost savings",
			},
			Considerations: []string{
				"Other flight delayed by 60 minutes",
				"Quick crew coordination needed",
			},
			Metrics: models.OptionMetrics{
				TotalCost: 45000, OTPScore: 88, AircraftSwaps: 1,
				PaxAccommodated: 100, RegulatoryRisk: "Low",
				DelayMinutes: 45, NetworkImpact: "Medium",
			},
		},
		{
			ID:          "OVERNIGHT_DELAY",
			Title:       "Overnight Delay",
			Description: "Delay until curfew end with passenger accommodation",
			Cost:        "AED 320,000",
			Timeline:    "7 hours",
			Confidence:  65,
			Impact:      "Overnight accommodation",
			Status:      models.StatusWarning,
			Advantages: []string{
				"Original route maintained",
				"Crew gets proper rest",
			},
			Considerations: []string{
				"High accommodation costs",
				"7-hour delay impact",
			},
			Metrics: models.OptionMetrics{
				TotalCost: 320000, OTPScore: 20,
				PaxAccommodated: 80, RegulatoryRisk: "High",
				DelayMinutes: 420, NetworkImpact: "High",
			},
		},
	}
}

func rotationOptions(f models.Flight) []models.RecoveryOption {
	return []models.RecoveryOption{
		{
			ID:          "SWAP_ALTERNATIVE",
			Title:       "Aircraft Swap with Alternative",
			Description: "Assign alternative aircraft to maintain schedule",
			Cost:        "AED 75,000",
			Timeline:    "90 minutes",
			Confidence:  88,
			Impact:      "Minimal network disruption",
			Status:      models.StatusRecommended,
			Advantages: []string{
				"Alternative aircraft immediately available",
				"Zero passenger impact",
			},
			Considerations: []string{
				"Alternative flight delayed 60 minutes",
				"Crew briefing for aircraft change",
			},
			Metrics: models.OptionMetrics{
				TotalCost: 75000, OTPScore: 85, AircraftSwaps: 1,
				PaxAccommodated: 100, RegulatoryRisk: "Low",
				DelayMinutes: 90, NetworkImpact: "Low",
			},
		},
		{
			ID:          "ACCEPT_DELAYS",
			Title:       "Accept Cascade Delays",
			Description: "Wait for aircraft maintenance completion",
			Cost:        "AED 150,000",
			Timeline:    "3 hours",
			Confidence:  70,
			Impact:      "Multiple flight delays",
			Status:      models.StatusCaution,
			Advantages: []string{
				"Original aircraft maintained",
				"Maintenance completed properly",
			},
			Considerations: []string{
				"3-hour delay cascade",
				"Multiple passengers affected",
			},
			Metrics: models.OptionMetrics{
				TotalCost: 150000, OTPScore: 55,
				PaxAccommodated: 85, RegulatoryRisk: "Medium",
				DelayMinutes: 180, NetworkImpact: "High",
			},
		},
	}
}

func standardOptions(f models.Flight) []models.RecoveryOption {
	return []models.RecoveryOption{
		{
			ID:          "STANDARD_RECOVERY",
			Title:       "Standard Recovery Protocol",
			Description: "Apply standard recovery procedures for this disruption type",
			Cost:        "AED 25,000",
			Timeline:    "2 hours",
			Confidence:  80,
			Impact:      fmt.Sprintf("%d passengers affected", f.Passengers),
			Status:      models.StatusRecommended,
			Advantages: []string{
				"Proven methodology",
				"Balanced cost-benefit",
				"Standard procedures",
			},
			Considerations: []string{
				"May not be optimal for unique situations",
				"Standard timeline may vary",
				"Resource availability dependent",
			},
			Metrics: models.OptionMetrics{
				TotalCost: 25000, OTPScore: 70,
				PaxAccommodated: 90, RegulatoryRisk: "Low",
				DelayMinutes: 120, NetworkImpact: "Medium",
			},
		},
	}
}

func generationSteps(d models.Disruption, f models.Flight, optionCount int, at time.Time) []models.GenerationStep {
	ts := func(offset time.Duration) string {
		return at.Add(offset).Format("15:04:05")
	}
	return []models.GenerationStep{
		{
			Step: 1, Title: "Disruption Analysis", Status: "completed",
			Timestamp: ts(0), System: "AERON Recovery Engine",
			Details: fmt.Sprintf("Analyzed %s disruption for flight %s", d.Category, f.FlightNumber),
			Data: map[string]any{
				"category": string(d.Category),
				"severity": d.Severity,
				"reason":   d.Reason,
			},
		},
		{
			Step: 2, Title: "Resource Assessment", Status: "completed",
			Timestamp: ts(90 * time.Second), System: "Resource Management",
			Details: "Checked available aircraft, crew, and slots",
			Data: map[string]any{
				"passengers": f.Passengers,
				"route":      f.Origin + "-" + f.Destination,
			},
		},
		{
			Step: 3, Title: "Option Generation", Status: "completed",
			Timestamp: ts(3 * time.Minute), System: "AERON Recovery Engine",
			Details: "Generated recovery options based on available resources",
			Data: map[string]any{
				"options_generated": optionCount,
			},
		},
	}
}
