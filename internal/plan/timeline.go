package plan

import (
	"fmt"
	"math"
	"time"

	"github.com/aeron-ops/backend/internal/models"
	"github.com/aeron-ops/backend/internal/utils"
)

type timelinePhase struct {
	step     string
	fraction float64
	details  string
}

// Fractions per table sum to 1.0; the last phase absorbs integer
// rounding so consecutive steps tile the full duration with no gaps.
var (
	swapPhases = []timelinePhase{
		{"Decision Confirmation", 0.06, "Operations control confirms the swap and locks the replacement tail"},
		{"Aircraft Positioning", 0.40, "Replacement aircraft towed and prepared at departure gate"},
		{"Crew Briefing & Preparation", 0.20, "Crew briefed on replacement aircraft and revised paperwork"},
		{"Passenger & Baggage Transfer", 0.22, "Passengers re-boarded and baggage moved with priority handling"},
		{"Final Checks & Departure", 0.12, "Pre-departure checks, pushback and departure clearance"},
	}
	delayLongPhases = []timelinePhase{
		{"Delay Declaration", 0.04, "Delay published and downstream stations notified"},
		{"Passenger Notification", 0.10, "SMS and email notifications, gate announcements"},
		{"Accommodation Setup", 0.12, "Hotel blocks, meal vouchers and transport arranged"},
		{"Issue Resolution", 0.58, "Underlying disruption worked to completion"},
		{"Re-departure Preparation", 0.16, "Crew legality recheck, catering top-up and boarding"},
	}
	delayShortPhases = []timelinePhase{
		{"Delay Declaration", 0.06, "Delay published and slots renegotiated"},
		{"Passenger Care", 0.14, "Vouchers issued and connections protected"},
		{"Issue Resolution", 0.68, "Underlying disruption worked to completion"},
		{"Boarding & Departure", 0.12, "Re-boarding and departure sequence"},
	}
	reroutePhases = []timelinePhase{
		{"Route Replanning", 0.15, "New flight plan filed and alternate handling confirmed"},
		{"Regulatory Clearances", 0.10, "Overflight and landing permissions secured"},
		{"Flight Execution", 0.45, "Flight operated on revised routing"},
		{"Ground Connection", 0.30, "Passengers moved from alternate airport to destination"},
	}
	partnerPhases = []timelinePhase{
		{"Seat Confirmation", 0.15, "Partner inventory confirmed and PNRs reissued"},
		{"Passenger Notification", 0.10, "New boarding details pushed to passengers"},
		{"Transfer & Check-in", 0.40, "Passengers and baggage moved to partner flight"},
		{"Partner Departure", 0.35, "Partner flight boards and departs"},
	}
	crewPhases = []timelinePhase{
		{"Standby Activation", 0.10, "Standby crew called out and acknowledged"},
		{"Crew Positioning", 0.25, "Replacement crew transported to the aircraft"},
		{"Extended Briefing", 0.35, "Type, route and disruption briefing completed"},
		{"Documentation", 0.20, "Duty records and flight paperwork updated"},
		{"Boarding & Departure", 0.10, "Normal departure sequence resumes"},
	}
	cancelPhases = []timelinePhase{
		{"Cancellation Declaration", 0.05, "Flight cancelled in all systems"},
		{"Passenger Notification", 0.10, "All passengers informed with rebooking instructions"},
		{"Rebooking Processing", 0.50, "Passengers rebooked onto alternative services"},
		{"Accommodation & Care", 0.35, "Hotels, meals and transport for stranded passengers"},
	}
)

func timelinePhasesFor(fam Family, totalMinutes int) []timelinePhase {
	switch fam {
	case FamilyAircraftSwap:
		return swapPhases
	case FamilyDelay:
		if totalMinutes >= 240 {
			return delayLongPhases
		}
		return delayShortPhases
	case FamilyReroute:
		return reroutePhases
	case FamilyPartner:
		return partnerPhases
	case FamilyCrew:
		return crewPhases
	case FamilyCancellation:
		return cancelPhases
	}
	// Generic plans split evenly into 3-5 steps of roughly half an
	// hour each.
	n := totalMinutes / 30
	if n < 3 {
		n = 3
	}
	if n > 5 {
		n = 5
	}
	phases := make([]timelinePhase, n)
	for i := range phases {
		phases[i] = timelinePhase{
			step:     fmt.Sprintf("Execution Phase %d", i+1),
			fraction: 1.0 / float64(n),
			details:  "Recovery plan execution",
		}
	}
	return phases
}

func timeline(opt models.RecoveryOption, fam Family, at time.Time) []models.TimelineStep {
	total := int(utils.ParseMinutes(opt.Timeline, 120))
	if total <= 0 {
		total = 120
	}
	phases := timelinePhasesFor(fam, total)

	// Steps must tile total exactly: each phase gets at least a
	// minute while minutes remain, and whichever phase runs out of
	// budget absorbs the remainder, so the sum never overshoots.
	steps := make([]models.TimelineStep, 0, len(phases))
	offset := 0
	for i, p := range phases {
		remaining := total - offset
		if remaining <= 0 {
			break
		}
		dur := int(math.Round(float64(total) * p.fraction))
		if dur < 1 {
			dur = 1
		}
		if i == len(phases)-1 || dur > remaining {
			dur = remaining
		}
		start := at.Add(time.Duration(offset) * time.Minute)
		end := start.Add(time.Duration(dur) * time.Minute)
		status := "pending"
		if i == 0 {
			status = "in-progress"
		}
		steps = append(steps, models.TimelineStep{
			Step:            p.step,
			Duration:        utils.FormatMinutes(float64(dur)),
			Status:          status,
			StartTime:       start.Format("15:04"),
			EndTime:         end.Format("15:04"),
			Details:         p.details,
			StartOffsetMin:  offset,
			DurationMinutes: dur,
		})
		offset += dur
	}
	return steps
}
