package validate

import (
	"strings"

	"github.com/aeron-ops/backend/internal/config"
	"github.com/aeron-ops/backend/internal/models"
)

// CostImpact prices an edited assignment against the plan's baseline
// cost. Additions come from readiness shortfalls and callouts; savings
// come from running lighter ground staffing than the baseline
// complement. Variance is the signed percentage against base cost.
func CostImpact(pol config.Policy, baseCost float64, a models.ResourceAssignment, ref models.ReferenceData) models.CostImpact {
	var breakdown models.CostImpactBreakdown

	if a.Aircraft != nil {
		if a.Aircraft.FuelPercent < pol.FuelFloorPercent {
			breakdown.Aircraft += pol.LowFuelCost
		}
		if home := homeBase(ref); home != "" && a.Aircraft.Location != "" && !strings.EqualFold(a.Aircraft.Location, home) {
			breakdown.Aircraft += pol.FerryCost
		}
	}

	for _, c := range a.Crew {
		if strings.EqualFold(c.Status, "Standby") {
			breakdown.Crew += pol.CrewCalloutCost
		}
	}

	personnel := 0
	for _, g := range a.GroundSupport {
		personnel += g.Personnel
	}
	breakdown.GroundSupport = float64(personnel-pol.BaselinePersonnel) * pol.PersonnelRate

	additional := breakdown.Aircraft + breakdown.Crew
	savings := 0.0
	if breakdown.GroundSupport > 0 {
		additional += breakdown.GroundSupport
	} else {
		savings = -breakdown.GroundSupport
	}

	total := baseCost + additional - savings
	variance := 0.0
	if baseCost > 0 {
		variance = (total - baseCost) / baseCost * 100
	}
	return models.CostImpact{
		BaseCost:        baseCost,
		AdditionalCosts: additional,
		Savings:         savings,
		TotalCost:       total,
		Variance:        variance,
		Breakdown:       breakdown,
	}
}

// homeBase is the modal aircraft location in the reference roster,
// used to spot tails that would need ferrying in.
func homeBase(ref models.ReferenceData) string {
	counts := map[string]int{}
	best, bestN := "", 0
	for _, ac := range ref.Aircraft {
		loc := strings.ToUpper(strings.TrimSpace(ac.Location))
		if loc == "" {
			continue
		}
		counts[loc]++
		if counts[loc] > bestN {
			best, bestN = loc, counts[loc]
		}
	}
	return best
}
