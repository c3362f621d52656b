package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/aeron-ops/backend/internal/config"
	"github.com/aeron-ops/backend/internal/models"
	"github.com/aeron-ops/backend/internal/optionsource"
	"github.com/aeron-ops/backend/internal/refdata"
	"github.com/aeron-ops/backend/internal/validate"
)

func testHandler() *Handler {
	clock := func() time.Time { return time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC) }
	return &Handler{
		Resolver:  optionsource.NewResolver(zerolog.Nop(), optionsource.Local{Now: clock}),
		Reference: refdata.Default(),
		Policy:    config.DefaultPolicy(),
		Validator: validator.New(),
		Logger:    zerolog.Nop(),
		Now:       clock,
	}
}

func testRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/healthz", h.Healthz)
	r.POST("/api/recovery/options", h.GenerateOptions)
	r.POST("/api/recovery/plan", h.Plan)
	r.POST("/api/recovery/validate", h.Validate)
	r.POST("/api/recovery/recalculate", h.Recalculate)
	r.GET("/api/reference/resources", h.ReferenceResources)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthzWithoutStore(t *testing.T) {
	w := doJSON(t, testRouter(testHandler()), http.MethodGet, "/healthz", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestGenerateOptionsEndpoint(t *testing.T) {
	r := testRouter(testHandler())
	w := doJSON(t, r, http.MethodPost, "/api/recovery/options", map[string]any{
		"disruption": map[string]any{"id": "DIS-1", "category": "aircraft-issue"},
		"flight":     map[string]any{"flight_number": "FZ981"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Options []models.RecoveryOption `json:"options"`
		Steps   []models.GenerationStep `json:"steps"`
		Source  string                  `json:"source"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Options) == 0 {
		t.Fatal("expected at least one option")
	}
	if resp.Source != "local" {
		t.Fatalf("expected local source, got %q", resp.Source)
	}
	if len(resp.Steps) != 3 {
		t.Fatalf("expected 3 generation steps, got %d", len(resp.Steps))
	}
}

func TestGenerateOptionsClassifiesFromReason(t *testing.T) {
	r := testRouter(testHandler())
	w := doJSON(t, r, http.MethodPost, "/api/recovery/options", map[string]any{
		"disruption": map[string]any{"id": "DIS-2", "reason": "Crew duty time exceeded"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Options []models.RecoveryOption `json:"options"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Options[0].ID != "STANDBY_CREW" {
		t.Fatalf("expected crew options, got %s", resp.Options[0].ID)
	}
}

func TestGenerateOptionsRejectsBadJSON(t *testing.T) {
	r := testRouter(testHandler())
	req, _ := http.NewRequest(http.MethodPost, "/api/recovery/options", bytes.NewBufferString("{"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestPlanEndpoint(t *testing.T) {
	r := testRouter(testHandler())
	w := doJSON(t, r, http.MethodPost, "/api/recovery/plan", map[string]any{
		"option": map[string]any{
			"id": "AIRCRAFT_SWAP_A320_001", "title": "Aircraft Swap",
			"cost": "AED 45,000", "timeline": "75 minutes", "confidence": 95,
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var p models.ExpandedPlan
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(p.CostBreakdown) == 0 || len(p.Timeline) == 0 || len(p.ResourceRequirements) == 0 {
		t.Fatal("expected populated plan sections")
	}
}

func TestValidateEndpointCleanSeed(t *testing.T) {
	h := testHandler()
	r := testRouter(h)
	seed := validate.SeedAssignment(h.Policy, h.Reference.Reference())

	w := doJSON(t, r, http.MethodPost, "/api/recovery/validate", map[string]any{
		"assignment": seed,
		"base_cost":  45000,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Valid      bool               `json:"valid"`
		Violations []models.Violation `json:"violations"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Valid || len(resp.Violations) != 0 {
		t.Fatalf("expected clean assignment, got %+v", resp.Violations)
	}
}

func TestValidateEndpointReportsViolation(t *testing.T) {
	h := testHandler()
	r := testRouter(h)
	seed := validate.SeedAssignment(h.Policy, h.Reference.Reference())
	seed.Aircraft.Status = "Maintenance"

	w := doJSON(t, r, http.MethodPost, "/api/recovery/validate", map[string]any{"assignment": seed})
	var resp struct {
		Valid      bool               `json:"valid"`
		Violations []models.Violation `json:"violations"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Valid || len(resp.Violations) != 1 {
		t.Fatalf("expected exactly one violation, got %+v", resp.Violations)
	}
	if resp.Violations[0].Type != models.ViolationAircraftAvailability {
		t.Fatalf("unexpected violation type %s", resp.Violations[0].Type)
	}
}

func TestRecalculateEndpoint(t *testing.T) {
	r := testRouter(testHandler())
	w := doJSON(t, r, http.MethodPost, "/api/recovery/recalculate", map[string]any{
		"option": map[string]any{
			"id": "D1", "title": "Delay and resolve",
			"cost": "AED 50,000", "timeline": "4 hours", "confidence": 85,
		},
		"edits": map[string]any{"Delay Duration": 120},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res models.ImpactResult
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Cost != "AED 25,000" {
		t.Fatalf("expected AED 25,000, got %s", res.Cost)
	}
	if res.Timeline != "120 minutes" {
		t.Fatalf("expected 120 minutes, got %s", res.Timeline)
	}
}

func TestRecalculateDefaultsWhenNoOptionSelected(t *testing.T) {
	r := testRouter(testHandler())
	w := doJSON(t, r, http.MethodPost, "/api/recovery/recalculate", map[string]any{
		"scenario": map[string]any{"name": "baseline"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res models.ImpactResult
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Cost != "AED 50,000" {
		t.Fatalf("expected default baseline cost, got %s", res.Cost)
	}
	if res.Timeline != "2.0 hours" {
		t.Fatalf("expected default baseline timeline, got %s", res.Timeline)
	}
	if res.Impact != "Same Cost" {
		t.Fatalf("expected Same Cost, got %s", res.Impact)
	}
}

func TestReferenceResourcesEndpoint(t *testing.T) {
	r := testRouter(testHandler())
	w := doJSON(t, r, http.MethodGet, "/api/reference/resources", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Reference models.ReferenceData      `json:"reference"`
		Seed      models.ResourceAssignment `json:"seed"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Reference.Aircraft) == 0 || len(resp.Reference.Crew) == 0 {
		t.Fatal("expected populated rosters")
	}
	if resp.Seed.Aircraft == nil {
		t.Fatal("expected seeded aircraft")
	}
}

func TestEndToEndGenerateExpandValidate(t *testing.T) {
	h := testHandler()
	r := testRouter(h)

	w := doJSON(t, r, http.MethodPost, "/api/recovery/options", map[string]any{
		"disruption": map[string]any{"id": "DIS-9", "category": "aircraft-issue"},
	})
	var gen struct {
		Options []models.RecoveryOption `json:"options"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &gen); err != nil {
		t.Fatalf("decode options: %v", err)
	}
	if len(gen.Options) == 0 {
		t.Fatal("expected options")
	}

	w = doJSON(t, r, http.MethodPost, "/api/recovery/plan", map[string]any{"option": gen.Options[0]})
	var p models.ExpandedPlan
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode plan: %v", err)
	}
	if len(p.ResourceRequirements) == 0 || len(p.RiskAssessment) == 0 {
		t.Fatal("expected resource requirements and risk assessment")
	}

	seed := validate.SeedAssignment(h.Policy, h.Reference.Reference())
	w = doJSON(t, r, http.MethodPost, "/api/recovery/validate", map[string]any{
		"assignment": seed,
		"option":     gen.Options[0],
	})
	var resp struct {
		Valid      bool               `json:"valid"`
		Violations []models.Violation `json:"violations"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode validation: %v", err)
	}
	if !resp.Valid {
		t.Fatalf("seeded assignment should validate clean, got %+v", resp.Violations)
	}
}
