package plan

import (
	"math"

	"github.com/aeron-ops/backend/internal/models"
	"github.com/aeron-ops/backend/internal/utils"
)

type costSlice struct {
	category    string
	pct         int
	description string
}

// Percentages in each table sum to exactly 100 so the rendered
// breakdown reconciles against the option's total cost.
var (
	swapCostSlices = []costSlice{
		{"Aircraft Positioning", 42, "Moving replacement aircraft to departure gate"},
		{"Passenger Transfer", 23, "Ground handling and baggage transfer between aircraft"},
		{"Crew Reassignment", 15, "Crew briefing and aircraft familiarization"},
		{"Ground Operations", 11, "Gate changes, fueling and catering adjustments"},
		{"Administrative", 9, "Documentation, notifications and coordination"},
	}
	delayLongCostSlices = []costSlice{
		{"Passenger Accommodation", 52, "Hotel rooms and ground transportation"},
		{"Meal Vouchers", 28, "Meals and refreshments for affected passengers"},
		{"Crew Costs", 12, "Extended duty pay and potential crew changes"},
		{"Airport Fees", 5, "Extended gate occupancy and slot charges"},
		{"Rebooking Support", 3, "Connection rebooking and customer service"},
	}
	delayShortCostSlices = []costSlice{
		{"Passenger Compensation", 40, "Meal vouchers and delay compensation"},
		{"Crew Costs", 35, "Extended duty time and overtime pay"},
		{"Airport Fees", 15, "Extended gate occupancy charges"},
		{"Operational Support", 10, "Ground staff and coordination"},
	}
	rerouteCostSlices = []costSlice{
		{"Additional Fuel", 58, "Extended routing fuel consumption"},
		{"Airport Charges", 26, "Landing and handling fees at alternate airport"},
		{"Passenger Services", 10, "Ground transportation from alternate airport"},
		{"Navigation Fees", 6, "Revised overflight and route charges"},
	}
	partnerCostSlices = []costSlice{
		{"Seat Purchase", 72, "Partner airline seat acquisition"},
		{"Baggage Transfer", 11, "Inter-airline baggage handling"},
		{"Passenger Services", 9, "Transfer assistance and notifications"},
		{"Class Upgrades", 6, "Involuntary upgrade costs for displaced passengers"},
		{"Administrative", 2, "Interline settlement processing"},
	}
	crewCostSlices = []costSlice{
		{"Crew Callout", 65, "Standby crew activation and positioning"},
		{"Original Crew Costs", 16, "Stand-down and accommodation for relieved crew"},
		{"Briefing Overhead", 10, "Extended briefing and documentation"},
		{"Schedule Adjustments", 9, "Downstream roster repair"},
	}
	cancelCostSlices = []costSlice{
		{"Passenger Rebooking", 45, "Alternative flight arrangements"},
		{"Accommodation", 25, "Hotel and meal provisions"},
		{"Compensation", 15, "Regulatory compensation payments"},
		{"Refunds", 10, "Ticket refunds for non-rebooked passengers"},
		{"Crew & Aircraft", 5, "Repositioning and schedule recovery"},
	}
	defaultCostSlices = []costSlice{
		{"Direct Operational Costs", 70, "Primary recovery execution costs"},
		{"Passenger Services", 20, "Passenger care and communication"},
		{"Administrative", 10, "Coordination and documentation"},
	}
)

func costSlicesFor(fam Family, totalMinutes int) []costSlice {
	switch fam {
	case FamilyAircraftSwap:
		return swapCostSlices
	case FamilyDelay:
		if totalMinutes >= 240 {
			return delayLongCostSlices
		}
		return delayShortCostSlices
	case FamilyReroute:
		return rerouteCostSlices
	case FamilyPartner:
		return partnerCostSlices
	case FamilyCrew:
		return crewCostSlices
	case FamilyCancellation:
		return cancelCostSlices
	}
	return defaultCostSlices
}

func costBreakdown(opt models.RecoveryOption, f models.Flight, fam Family) []models.CostItem {
	total := utils.ParseAmount(opt.Cost, 50000)
	minutes := int(utils.ParseMinutes(opt.Timeline, 120))
	slices := costSlicesFor(fam, minutes)

	items := make([]models.CostItem, 0, len(slices))
	var allocated float64
	for i, s := range slices {
		value := math.Round(total * float64(s.pct) / 100)
		if i == len(slices)-1 {
			value = total - allocated
		}
		allocated += value
		items = append(items, models.CostItem{
			Category:    s.category,
			Amount:      utils.FormatAED(value),
			Percentage:  s.pct,
			Description: s.description,
			Value:       value,
		})
	}
	return items
}

// TotalCost sums a breakdown back into a single figure.
func TotalCost(items []models.CostItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Value
	}
	return total
}
