package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeron-ops/backend/internal/config"
	"github.com/aeron-ops/backend/internal/models"
)

func cleanReference() models.ReferenceData {
	return models.ReferenceData{
		Aircraft: []models.Aircraft{
			{Tail: "A6-FMC", Type: "B737-800", Status: "Available", Location: "DXB", FuelPercent: 95},
			{Tail: "A6-FMD", Type: "B737-800", Status: "Maintenance", Location: "DXB", FuelPercent: 40},
		},
		Crew: []models.CrewMember{
			{ID: "CR001", Name: "Capt. Al-Zaabi", Role: "Captain", Status: "Available", Qualification: "B737-800", DutyHoursUsed: 2.5, DutyHoursMax: 13},
			{ID: "CR002", Name: "F/O Rahman", Role: "First Officer", Status: "Available", Qualification: "B737-800", DutyHoursUsed: 3.0, DutyHoursMax: 13},
			{ID: "CR003", Name: "Sara Khan", Role: "Senior Cabin Crew", Status: "Rest Required", Qualification: "Cabin", DutyHoursUsed: 11.5, DutyHoursMax: 13},
		},
		GroundSupport: []models.GroundUnit{
			{ID: "GS001", Name: "Baggage Team Alpha", Type: "Baggage", Personnel: 6, Status: "Available"},
			{ID: "GS002", Name: "GPU Unit 7", Type: "Power", Personnel: 2, Status: "Available"},
			{ID: "GS003", Name: "Tow Team Bravo", Type: "Positioning", Personnel: 4, Status: "Available"},
			{ID: "GS008", Name: "Baggage Team Delta", Type: "Baggage", Personnel: 6, Status: "Busy"},
		},
	}
}

func cleanAssignment(ref models.ReferenceData) models.ResourceAssignment {
	return SeedAssignment(config.DefaultPolicy(), ref)
}

func TestSeededAssignmentIsClean(t *testing.T) {
	ref := cleanReference()
	a := cleanAssignment(ref)

	require.NotNil(t, a.Aircraft)
	assert.Equal(t, "A6-FMC", a.Aircraft.Tail)
	assert.Len(t, a.Crew, 2)
	assert.Len(t, a.GroundSupport, 3)

	violations := Validate(config.DefaultPolicy(), a, ref)
	assert.Empty(t, violations)
}

func TestAircraftUnavailable(t *testing.T) {
	ref := cleanReference()
	a := cleanAssignment(ref)
	a.Aircraft.Status = "Maintenance"

	violations := Validate(config.DefaultPolicy(), a, ref)
	require.Len(t, violations, 1)
	assert.Equal(t, models.ViolationAircraftAvailability, violations[0].Type)
	assert.Equal(t, models.SeverityCritical, violations[0].Severity)
}

func TestLowFuel(t *testing.T) {
	ref := cleanReference()
	a := cleanAssignment(ref)
	a.Aircraft.FuelPercent = 55

	violations := Validate(config.DefaultPolicy(), a, ref)
	require.Len(t, violations, 1)
	assert.Equal(t, models.ViolationFuelLevel, violations[0].Type)
	assert.Equal(t, models.SeverityMedium, violations[0].Severity)
	assert.Contains(t, violations[0].Description, "55%")
}

func TestCrewDutyTimeExceeded(t *testing.T) {
	ref := cleanReference()
	a := cleanAssignment(ref)
	a.Crew[0].DutyHoursUsed = 11.2

	violations := Validate(config.DefaultPolicy(), a, ref)
	require.Len(t, violations, 1)
	assert.Equal(t, models.ViolationCrewDutyTime, violations[0].Type)
	assert.Equal(t, models.SeverityHigh, violations[0].Severity)
}

func TestCrewUnavailable(t *testing.T) {
	ref := cleanReference()
	a := cleanAssignment(ref)
	a.Crew[1].Status = "Rest Required"

	violations := Validate(config.DefaultPolicy(), a, ref)
	require.Len(t, violations, 1)
	assert.Equal(t, models.ViolationCrewAvailability, violations[0].Type)
	assert.Equal(t, models.SeverityCritical, violations[0].Severity)
}

func TestMissingGroundCategory(t *testing.T) {
	ref := cleanReference()
	a := cleanAssignment(ref)
	kept := a.GroundSupport[:0]
	for _, g := range a.GroundSupport {
		if g.Type != "Power" {
			kept = append(kept, g)
		}
	}
	a.GroundSupport = kept

	violations := Validate(config.DefaultPolicy(), a, ref)
	require.Len(t, violations, 1)
	assert.Equal(t, models.ViolationGroundSupport, violations[0].Type)
	assert.Equal(t, models.SeverityMedium, violations[0].Severity)
	assert.Contains(t, violations[0].Description, "power")
}

func TestBusyGroundUnitConflict(t *testing.T) {
	ref := cleanReference()
	a := cleanAssignment(ref)
	for i, g := range a.GroundSupport {
		if g.Type == "Baggage" {
			a.GroundSupport[i] = ref.GroundSupport[3] // GS008, busy
		}
	}

	violations := Validate(config.DefaultPolicy(), a, ref)
	require.Len(t, violations, 1)
	assert.Equal(t, models.ViolationResourceConflict, violations[0].Type)
	assert.Equal(t, models.SeverityHigh, violations[0].Severity)
}

func TestMultipleViolationsFireIndependently(t *testing.T) {
	ref := cleanReference()
	a := cleanAssignment(ref)
	a.Aircraft.Status = "AOG"
	a.Aircraft.FuelPercent = 30
	a.Crew[0].DutyHoursUsed = 12

	violations := Validate(config.DefaultPolicy(), a, ref)
	assert.Len(t, violations, 3)
	types := map[models.ViolationType]bool{}
	for _, v := range violations {
		types[v.Type] = true
	}
	assert.True(t, types[models.ViolationAircraftAvailability])
	assert.True(t, types[models.ViolationFuelLevel])
	assert.True(t, types[models.ViolationCrewDutyTime])
}

func TestValidateIsPure(t *testing.T) {
	ref := cleanReference()
	a := cleanAssignment(ref)
	first := Validate(config.DefaultPolicy(), a, ref)
	second := Validate(config.DefaultPolicy(), a, ref)
	assert.Equal(t, first, second)
}

func TestCostImpactCleanAssignment(t *testing.T) {
	pol := config.DefaultPolicy()
	ref := cleanReference()
	a := cleanAssignment(ref)

	ci := CostImpact(pol, 45000, a, ref)
	assert.Equal(t, 45000.0, ci.BaseCost)
	assert.Zero(t, ci.Breakdown.Aircraft)
	assert.Zero(t, ci.Breakdown.Crew)
	// 12 assigned personnel against a 15-person baseline: savings.
	assert.Equal(t, 450.0, ci.Savings)
	assert.Equal(t, 44550.0, ci.TotalCost)
	assert.InDelta(t, -1.0, ci.Variance, 0.01)
}

func TestCostImpactLowFuelAndFerry(t *testing.T) {
	pol := config.DefaultPolicy()
	ref := cleanReference()
	a := cleanAssignment(ref)
	a.Aircraft.FuelPercent = 50
	a.Aircraft.Location = "AUH"

	ci := CostImpact(pol, 45000, a, ref)
	assert.Equal(t, pol.LowFuelCost+pol.FerryCost, ci.Breakdown.Aircraft)
	assert.Greater(t, ci.TotalCost, ci.BaseCost)
	assert.Greater(t, ci.Variance, 0.0)
}

func TestCostImpactStandbyCrewCallout(t *testing.T) {
	pol := config.DefaultPolicy()
	ref := cleanReference()
	a := cleanAssignment(ref)
	a.Crew[0].Status = "Standby"
	a.Crew[1].Status = "Standby"

	ci := CostImpact(pol, 45000, a, ref)
	assert.Equal(t, 2*pol.CrewCalloutCost, ci.Breakdown.Crew)
}

func TestSeedSkipsUnavailableResources(t *testing.T) {
	ref := cleanReference()
	a := SeedAssignment(config.DefaultPolicy(), ref)

	for _, c := range a.Crew {
		assert.NotEqual(t, "CR003", c.ID)
	}
	for _, g := range a.GroundSupport {
		assert.NotEqual(t, "GS008", g.ID)
	}
}
