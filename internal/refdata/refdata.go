// Package refdata supplies the static rosters the validator reads:
// aircraft, crew with duty hours, and ground-support units. The
// built-in roster mirrors current hub staffing; ops can override it
// with a JSON file without a rebuild.
package refdata

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aeron-ops/backend/internal/models"
)

// Provider hands out reference rosters. Implementations must return
// data the caller can mutate freely.
type Provider interface {
	Reference() models.ReferenceData
}

// Static serves a fixed roster, copied on every call so validator
// sessions cannot leak edits into each other.
type Static struct {
	data models.ReferenceData
}

func NewStatic(data models.ReferenceData) *Static {
	return &Static{data: data}
}

// Default returns the built-in hub roster.
func Default() *Static {
	return NewStatic(defaultRoster())
}

// FromFile loads a roster override from a JSON file.
func FromFile(path string) (*Static, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster file: %w", err)
	}
	var data models.ReferenceData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse roster file %s: %w", path, err)
	}
	if len(data.Aircraft) == 0 && len(data.Crew) == 0 && len(data.GroundSupport) == 0 {
		return nil, fmt.Errorf("roster file %s has no entries", path)
	}
	return NewStatic(data), nil
}

func (s *Static) Reference() models.ReferenceData {
	out := models.ReferenceData{
		Aircraft:      make([]models.Aircraft, len(s.data.Aircraft)),
		Crew:          make([]models.CrewMember, len(s.data.Crew)),
		GroundSupport: make([]models.GroundUnit, len(s.data.GroundSupport)),
	}
	copy(out.Aircraft, s.data.Aircraft)
	copy(out.Crew, s.data.Crew)
	copy(out.GroundSupport, s.data.GroundSupport)
	return out
}

func defaultRoster() models.ReferenceData {
	return models.ReferenceData{
		Aircraft: []models.Aircraft{
			{Tail: "A6-FMC", Type: "B737-800", Status: "Available", Location: "DXB", LastMaintenance: "2025-03-10", FuelPercent: 95},
			{Tail: "A6-FMD", Type: "B737-800", Status: "Available", Location: "DXB", LastMaintenance: "2025-03-08", FuelPercent: 88},
			{Tail: "A6-FMF", Type: "B737 MAX 8", Status: "Available", Location: "DXB", LastMaintenance: "2025-03-12", FuelPercent: 92},
			{Tail: "A6-FDU", Type: "B737-800", Status: "Maintenance", Location: "DXB", LastMaintenance: "2025-02-27", FuelPercent: 45},
			{Tail: "A6-FDX", Type: "B737-800", Status: "In Flight", Location: "BOM", LastMaintenance: "2025-03-05", FuelPercent: 60},
			{Tail: "A6-FMG", Type: "B737 MAX 8", Status: "Available", Location: "AUH", LastMaintenance: "2025-03-11", FuelPercent: 85},
		},
		Crew: []models.CrewMember{
			{ID: "CR001", Name: "Capt. Khalid Al-Zaabi", Role: "Captain", Status: "Available", Qualification: "B737-800", DutyHoursUsed: 2.5, DutyHoursMax: 13, Location: "DXB"},
			{ID: "CR002", Name: "F/O Aisha Rahman", Role: "First Officer", Status: "Available", Qualification: "B737-800", DutyHoursUsed: 3.0, DutyHoursMax: 13, Location: "DXB"},
			{ID: "CR003", Name: "Capt. Omar Hassan", Role: "Captain", Status: "Standby", Qualification: "B737 MAX 8", DutyHoursUsed: 0, DutyHoursMax: 13, Location: "DXB"},
			{ID: "CR004", Name: "F/O Daniel Mathew", Role: "First Officer", Status: "Rest Required", Qualification: "B737-800", DutyHoursUsed: 12.2, DutyHoursMax: 13, Location: "DXB"},
			{ID: "CR005", Name: "Fatima Noor", Role: "Senior Cabin Crew", Status: "Available", Qualification: "Cabin", DutyHoursUsed: 4.0, DutyHoursMax: 13, Location: "DXB"},
			{ID: "CR006", Name: "Meera Pillai", Role: "Cabin Crew", Status: "Available", Qualification: "Cabin", DutyHoursUsed: 4.0, DutyHoursMax: 13, Location: "DXB"},
			{ID: "CR007", Name: "James Okoro", Role: "Cabin Crew", Status: "Available", Qualification: "Cabin", DutyHoursUsed: 5.5, DutyHoursMax: 13, Location: "DXB"},
			{ID: "CR008", Name: "Lena Petrova", Role: "Cabin Crew", Status: "Off Duty", Qualification: "Cabin", DutyHoursUsed: 0, DutyHoursMax: 13, Location: "DXB"},
		},
		GroundSupport: []models.GroundUnit{
			{ID: "GS001", Name: "Baggage Team Alpha", Type: "Baggage", Personnel: 6, Status: "Available", Location: "Terminal 2", Equipment: "2 belt loaders, 4 carts"},
			{ID: "GS002", Name: "GPU Unit 7", Type: "Power", Personnel: 2, Status: "Available", Location: "Stand E14", Equipment: "Ground power unit, air start"},
			{ID: "GS003", Name: "Tow Team Bravo", Type: "Positioning", Personnel: 4, Status: "Available", Location: "Ramp Control", Equipment: "Towbarless tractor"},
			{ID: "GS004", Name: "Catering Truck 12", Type: "Catering", Personnel: 3, Status: "Available", Location: "Catering Bay", Equipment: "High-loader"},
			{ID: "GS005", Name: "Fuel Bowser 3", Type: "Fueling", Personnel: 2, Status: "Available", Location: "Fuel Farm", Equipment: "40,000L bowser"},
			{ID: "GS006", Name: "Cleaning Crew 5", Type: "Cabin Services", Personnel: 5, Status: "Busy", Location: "Terminal 2", Equipment: "Standard cabin kit"},
			{ID: "GS007", Name: "Pushback Unit 2", Type: "Positioning", Personnel: 3, Status: "Busy", Location: "Stand C9", Equipment: "Conventional tractor"},
			{ID: "GS008", Name: "Baggage Team Delta", Type: "Baggage", Personnel: 6, Status: "Busy", Location: "Terminal 2", Equipment: "1 belt loader, 3 carts"},
		},
	}
}
