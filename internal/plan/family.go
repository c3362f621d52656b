package plan

import "strings"

// Family is the template family an option expands through. Resolution
// is three-tier: exact template ID, then keyword match on ID and title,
// then FamilyUnknown, which always yields a complete generic plan. An
// operator-invented option therefore never produces an empty view.
type Family int

const (
	FamilyUnknown Family = iota
	FamilyAircraftSwap
	FamilyDelay
	FamilyReroute
	FamilyPartner
	FamilyCrew
	FamilyCancellation
)

func (f Family) String() string {
	switch f {
	case FamilyAircraftSwap:
		return "aircraft-swap"
	case FamilyDelay:
		return "delay"
	case FamilyReroute:
		return "reroute"
	case FamilyPartner:
		return "partner"
	case FamilyCrew:
		return "crew"
	case FamilyCancellation:
		return "cancellation"
	}
	return "unknown"
}

// Curated template IDs with hand-tuned detail sections.
var exactFamilies = map[string]Family{
	"AIRCRAFT_SWAP_A320_001": FamilyAircraftSwap,
	"DELAY_4H_OVERNIGHT":     FamilyDelay,
	"REROUTE_AUH_TECH":       FamilyReroute,
	"PARTNER_CODESHARE":      FamilyPartner,
	"CREW_REPLACEMENT_DXB":   FamilyCrew,
}

// Resolve classifies an option. The bool reports whether an exact
// template was found.
func Resolve(id, title string) (Family, bool) {
	if fam, ok := exactFamilies[id]; ok {
		return fam, true
	}

	lid := strings.ToLower(id)
	lt := strings.ToLower(title)
	has := func(s string) bool {
		return strings.Contains(lid, s) || strings.Contains(lt, s)
	}

	switch {
	case has("swap"):
		return FamilyAircraftSwap, false
	case has("delay"):
		return FamilyDelay, false
	case has("reroute") || has("divert"):
		return FamilyReroute, false
	case has("partner") || has("codeshare"):
		return FamilyPartner, false
	case has("crew"):
		return FamilyCrew, false
	case has("cancel"):
		return FamilyCancellation, false
	}
	return FamilyUnknown, false
}
