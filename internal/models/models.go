package models

import "time"

// Disruption categories
type DisruptionCategory string

const (
	CategoryAircraftIssue DisruptionCategory = "aircraft-issue"
	CategoryCrewIssue     DisruptionCategory = "crew-issue"
	CategoryWeather       DisruptionCategory = "weather"
	CategoryAirport       DisruptionCategory = "airport"
	CategoryRotation      DisruptionCategory = "rotation"
	CategoryOther         DisruptionCategory = "other"
)

// Recovery option status tags
type OptionStatus string

const (
	StatusRecommended OptionStatus = "recommended"
	StatusCaution     OptionStatus = "caution"
	StatusWarning     OptionStatus = "warning"
)

// Violation severities
type Severity string

const (
	SeverityCritical Severity = "Critical"
	SeverityHigh     Severity = "High"
	SeverityMedium   Severity = "Medium"
	SeverityLow      Severity = "Low"
)

// Violation types
type ViolationType string

const (
	ViolationAircraftAvailability ViolationType = "Aircraft Availability"
	ViolationFuelLevel            ViolationType = "Fuel Level"
	ViolationCrewDutyTime         ViolationType = "Crew Duty Time"
	ViolationCrewAvailability     ViolationType = "Crew Availability"
	ViolationGroundSupport        ViolationType = "Ground Support"
	ViolationResourceConflict     ViolationType = "Resource Conflict"
)

type Disruption struct {
	ID           string             `json:"id"`
	Category     DisruptionCategory `json:"category"`
	Severity     string             `json:"severity"`
	Reason       string             `json:"reason"`
	FlightNumber string             `json:"flight_number"`
	Passengers   int                `json:"passengers"`
	CreatedAt    time.Time          `json:"created_at"`
}

// Flight is the read-only context supplied by the flight provider.
type Flight struct {
	FlightNumber     string `json:"flight_number"`
	Origin           string `json:"origin"`
	Destination      string `json:"destination"`
	Aircraft         string `json:"aircraft"`
	Registration     string `json:"registration"`
	Passengers       int    `json:"passengers"`
	DisruptionReason string `json:"disruption_reason"`
}

// WithDefaults fills missing context fields so the expander always has
// something sensible to interpolate. Upstream providers frequently send
// partial rows.
func (f Flight) WithDefaults() Flight {
	if f.FlightNumber == "" {
		f.FlightNumber = "FZ123"
	}
	if f.Origin == "" {
		f.Origin = "DXB"
	}
	if f.Destination == "" {
		f.Destination = "BOM"
	}
	if f.Aircraft == "" {
		f.Aircraft = "B737-800"
	}
	if f.Registration == "" {
		f.Registration = "A6-FDU"
	}
	if f.Passengers == 0 {
		f.Passengers = 167
	}
	if f.DisruptionReason == "" {
		f.DisruptionReason = "Technical issue"
	}
	return f
}

type OptionMetrics struct {
	TotalCost       float64 `json:"total_cost"`
	OTPScore        int     `json:"otp_score"`
	AircraftSwaps   int     `json:"aircraft_swaps"`
	CrewViolations  int     `json:"crew_violations"`
	PaxAccommodated int     `json:"pax_accommodated"`
	RegulatoryRisk  string  `json:"regulatory_risk"`
	DelayMinutes    int     `json:"delay_minutes"`
	NetworkImpact   string  `json:"network_impact"`
}

// RecoveryOption is a candidate action. Read-only after generation;
// what-if edits always produce derived results.
type RecoveryOption struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Cost           string        `json:"cost"`
	Timeline       string        `json:"timeline"`
	Confidence     int           `json:"confidence"`
	Impact         string        `json:"impact"`
	Status         OptionStatus  `json:"status"`
	Advantages     []string      `json:"advantages"`
	Considerations []string      `json:"considerations"`
	Metrics        OptionMetrics `json:"metrics"`
}

// GenerationStep is one entry of the generation audit trail shown
// alongside the options.
type GenerationStep struct {
	Step      int            `json:"step"`
	Title     string         `json:"title"`
	Status    string         `json:"status"`
	Timestamp string         `json:"timestamp"`
	System    string         `json:"system"`
	Details   string         `json:"details"`
	Data      map[string]any `json:"data,omitempty"`
}

type CostItem struct {
	Category    string  `json:"category"`
	Amount      string  `json:"amount"`
	Percentage  int     `json:"percentage"`
	Description string  `json:"description"`
	Value       float64 `json:"value"`
}

type TimelineStep struct {
	Step            string `json:"step"`
	Duration        string `json:"duration"`
	Status          string `json:"status"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	Details         string `json:"details"`
	StartOffsetMin  int    `json:"start_offset_min"`
	DurationMinutes int    `json:"duration_minutes"`
}

type ResourceRequirement struct {
	Type         string `json:"type"`
	Resource     string `json:"resource"`
	Availability string `json:"availability"`
	Location     string `json:"location"`
	Status       string `json:"status"`
	ETA          string `json:"eta"`
	Details      string `json:"details"`
}

type RiskItem struct {
	Risk        string `json:"risk"`
	Probability string `json:"probability"`
	Impact      string `json:"impact"`
	Mitigation  string `json:"mitigation"`
	RiskScore   int    `json:"risk_score"`
}

type HistoricalData struct {
	SimilarScenarios      int    `json:"similar_scenarios"`
	SuccessRate           int    `json:"success_rate"`
	AvgExecutionTime      string `json:"avg_execution_time"`
	AvgCostVariance       string `json:"avg_cost_variance"`
	LastUsed              string `json:"last_used"`
	PassengerSatisfaction int    `json:"passenger_satisfaction"`
	SpecificNotes         string `json:"specific_notes"`
	SeasonalTrends        string `json:"seasonal_trends"`
	PreviousIncidents     string `json:"previous_incidents"`
}

// Parameter is an operator-editable knob of an expanded plan.
type Parameter struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"` // select, slider, switch
	Value       any      `json:"value"`
	Options     []string `json:"options,omitempty"`
	Min         float64  `json:"min,omitempty"`
	Max         float64  `json:"max,omitempty"`
	Unit        string   `json:"unit,omitempty"`
	Impact      string   `json:"impact"` // cost or timeline
	Description string   `json:"description"`
}

type WhatIfScenario struct {
	Scenario    string `json:"scenario"`
	Impact      string `json:"impact"`
	Probability int    `json:"probability"`
	Timeline    string `json:"timeline"`
}

type StakeholderImpact struct {
	Group     string `json:"group"`
	Impact    string `json:"impact"`
	Sentiment string `json:"sentiment"`
	Actions   string `json:"actions"`
	Details   string `json:"details"`
}

// ExpandedPlan is the fully materialized view of one option. Derived,
// never authoritative; regenerated whenever option or flight changes.
type ExpandedPlan struct {
	OptionID                  string                `json:"option_id"`
	Description               string                `json:"description"`
	CostBreakdown             []CostItem            `json:"cost_breakdown"`
	Timeline                  []TimelineStep        `json:"timeline"`
	ResourceRequirements      []ResourceRequirement `json:"resource_requirements"`
	RiskAssessment            []RiskItem            `json:"risk_assessment"`
	TechnicalSpecs            map[string]any        `json:"technical_specs"`
	HistoricalData            HistoricalData        `json:"historical_data"`
	EditableParameters        []Parameter           `json:"editable_parameters"`
	WhatIfScenarios           []WhatIfScenario      `json:"what_if_scenarios"`
	AlternativeConsiderations []string              `json:"alternative_considerations"`
	StakeholderImpact         []StakeholderImpact   `json:"stakeholder_impact"`
}

// Reference-data rosters, read-only input to validation.
type Aircraft struct {
	Tail            string `json:"tail"`
	Type            string `json:"type"`
	Status          string `json:"status"`
	Location        string `json:"location"`
	LastMaintenance string `json:"last_maintenance"`
	FuelPercent     int    `json:"fuel_percent"`
}

type CrewMember struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Role          string  `json:"role"`
	Status        string  `json:"status"`
	Qualification string  `json:"qualification"`
	DutyHoursUsed float64 `json:"duty_hours_used"`
	DutyHoursMax  float64 `json:"duty_hours_max"`
	Location      string  `json:"location"`
}

type GroundUnit struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Personnel int    `json:"personnel"`
	Status    string `json:"status"`
	Location  string `json:"location"`
	Equipment string `json:"equipment"`
}

type ReferenceData struct {
	Aircraft      []Aircraft   `json:"aircraft"`
	Crew          []CrewMember `json:"crew"`
	GroundSupport []GroundUnit `json:"ground_support"`
}

// ResourceAssignment is the operator's working set. It lives only for
// the editing session; validation is a pure function over it plus the
// reference rosters.
type ResourceAssignment struct {
	Aircraft      *Aircraft    `json:"aircraft,omitempty"`
	Crew          []CrewMember `json:"crew"`
	GroundSupport []GroundUnit `json:"ground_support"`
}

type Violation struct {
	Type        ViolationType `json:"type"`
	Severity    Severity      `json:"severity"`
	Description string        `json:"description"`
	Impact      string        `json:"impact"`
	Solution    string        `json:"solution"`
}

// CostImpact accompanies a validation pass: what the edited assignment
// does to the plan's cost relative to its baseline.
type CostImpact struct {
	BaseCost        float64            `json:"base_cost"`
	AdditionalCosts float64            `json:"additional_costs"`
	Savings         float64            `json:"savings"`
	TotalCost       float64            `json:"total_cost"`
	Variance        float64            `json:"variance"`
	Breakdown       CostImpactBreakdown `json:"breakdown"`
}

type CostImpactBreakdown struct {
	Aircraft      float64 `json:"aircraft"`
	Crew          float64 `json:"crew"`
	GroundSupport float64 `json:"ground_support"`
}

// Scenario carries named what-if deltas. Percentages apply to cost,
// absolute minutes to the timeline.
type Scenario struct {
	Name               string  `json:"name"`
	CostReductionPct   float64 `json:"cost_reduction_pct"`
	CostIncreasePct    float64 `json:"cost_increase_pct"`
	TimeReductionMin   float64 `json:"time_reduction_min"`
	TimeIncreaseMin    float64 `json:"time_increase_min"`
	SuccessProbability int     `json:"success_probability"`
}

type ImpactResult struct {
	Cost       string `json:"cost"`
	Timeline   string `json:"timeline"`
	Confidence int    `json:"confidence"`
	Impact     string `json:"impact"`     // Higher Cost / Lower Cost / Same Cost
	RiskLevel  string `json:"risk_level"` // Low / Medium / High
}
