// Package validate checks an operator-edited resource assignment
// against availability, readiness and duty constraints. It is a pure
// constraint checker: every applicable rule fires independently, the
// assignment is never repaired, and an empty result means clean.
package validate

import (
	"fmt"
	"strings"

	"github.com/aeron-ops/backend/internal/config"
	"github.com/aeron-ops/backend/internal/models"
)

// Ground-support categories a recovery cannot run without.
var requiredGroundTypes = []string{"Baggage", "Power", "Positioning"}

// Validate runs all constraint rules over the assignment. Rules are
// independent of evaluation order and of each other.
func Validate(pol config.Policy, a models.ResourceAssignment, ref models.ReferenceData) []models.Violation {
	violations := []models.Violation{}
	violations = append(violations, aircraftRules(pol, a)...)
	violations = append(violations, crewRules(pol, a)...)
	violations = append(violations, groundRules(a, ref)...)
	return violations
}

func aircraftRules(pol config.Policy, a models.ResourceAssignment) []models.Violation {
	if a.Aircraft == nil {
		return nil
	}
	var out []models.Violation
	if !isAvailable(a.Aircraft.Status) {
		out = append(out, models.Violation{
			Type:        models.ViolationAircraftAvailability,
			Severity:    models.SeverityCritical,
			Description: fmt.Sprintf("Aircraft %s is %s and cannot operate the recovery", a.Aircraft.Tail, strings.ToLower(a.Aircraft.Status)),
			Impact:      "Recovery cannot depart on the assigned tail",
			Solution:    "Assign an available aircraft or resolve the current status",
		})
	}
	if a.Aircraft.FuelPercent < pol.FuelFloorPercent {
		out = append(out, models.Violation{
			Type:        models.ViolationFuelLevel,
			Severity:    models.SeverityMedium,
			Description: fmt.Sprintf("Aircraft %s fuel at %d%%, below the %d%% operational floor", a.Aircraft.Tail, a.Aircraft.FuelPercent, pol.FuelFloorPercent),
			Impact:      "Refueling adds approximately 30 minutes before departure",
			Solution:    "Schedule immediate refueling or assign a fueled aircraft",
		})
	}
	return out
}

func crewRules(pol config.Policy, a models.ResourceAssignment) []models.Violation {
	var out []models.Violation
	for _, c := range a.Crew {
		if c.DutyHoursUsed > pol.DutyHourLimit {
			out = append(out, models.Violation{
				Type:        models.ViolationCrewDutyTime,
				Severity:    models.SeverityHigh,
				Description: fmt.Sprintf("%s (%s) at %.1f duty hours, above the %.0f-hour utilization threshold", c.Name, c.Role, c.DutyHoursUsed, pol.DutyHourLimit),
				Impact:      "Duty time violation risk if the recovery extends",
				Solution:    "Substitute a crew member with lower accumulated duty time",
			})
		}
		if !isAvailable(c.Status) {
			out = append(out, models.Violation{
				Type:        models.ViolationCrewAvailability,
				Severity:    models.SeverityCritical,
				Description: fmt.Sprintf("%s (%s) is %s and cannot be assigned", c.Name, c.Role, strings.ToLower(c.Status)),
				Impact:      "Crew complement incomplete, departure blocked",
				Solution:    "Activate a standby crew member for this role",
			})
		}
	}
	return out
}

func groundRules(a models.ResourceAssignment, ref models.ReferenceData) []models.Violation {
	var out []models.Violation

	assigned := map[string]bool{}
	for _, g := range a.GroundSupport {
		assigned[g.Type] = true
	}
	for _, required := range requiredGroundTypes {
		if !assigned[required] {
			out = append(out, models.Violation{
				Type:        models.ViolationGroundSupport,
				Severity:    models.SeverityMedium,
				Description: fmt.Sprintf("No %s unit assigned to the recovery", strings.ToLower(required)),
				Impact:      "Turnaround cannot complete without this service",
				Solution:    fmt.Sprintf("Assign an available %s unit", strings.ToLower(required)),
			})
		}
	}

	// Busy units in the reference roster are committed to another
	// flight; assigning them here double-books the resource.
	busy := map[string]bool{}
	for _, g := range ref.GroundSupport {
		if strings.EqualFold(g.Status, "Busy") {
			busy[g.ID] = true
		}
	}
	for _, g := range a.GroundSupport {
		if busy[g.ID] || strings.EqualFold(g.Status, "Busy") {
			out = append(out, models.Violation{
				Type:        models.ViolationResourceConflict,
				Severity:    models.SeverityHigh,
				Description: fmt.Sprintf("%s (%s) is committed to another operation", g.Name, g.ID),
				Impact:      "Resource conflict: the unit cannot serve two flights at once",
				Solution:    "Assign a free unit of the same type or release the conflicting commitment",
			})
		}
	}
	return out
}

func isAvailable(status string) bool {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "available", "on duty", "standby", "ready":
		return true
	}
	return false
}

// SeedAssignment builds the initial working set from reference data:
// the first available aircraft, all available crew and one available
// unit per required ground category. The seed always validates clean
// against the same reference data.
func SeedAssignment(pol config.Policy, ref models.ReferenceData) models.ResourceAssignment {
	a := models.ResourceAssignment{
		Crew:          []models.CrewMember{},
		GroundSupport: []models.GroundUnit{},
	}
	for i := range ref.Aircraft {
		if isAvailable(ref.Aircraft[i].Status) && ref.Aircraft[i].FuelPercent >= pol.FuelFloorPercent {
			ac := ref.Aircraft[i]
			a.Aircraft = &ac
			break
		}
	}
	for _, c := range ref.Crew {
		if isAvailable(c.Status) && c.DutyHoursUsed <= pol.DutyHourLimit {
			a.Crew = append(a.Crew, c)
		}
	}
	for _, required := range requiredGroundTypes {
		for _, g := range ref.GroundSupport {
			if g.Type == required && !strings.EqualFold(g.Status, "Busy") {
				a.GroundSupport = append(a.GroundSupport, g)
				break
			}
		}
	}
	return a
}
