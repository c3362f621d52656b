package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/aeron-ops/backend/internal/catalog"
	"github.com/aeron-ops/backend/internal/config"
	"github.com/aeron-ops/backend/internal/db"
	"github.com/aeron-ops/backend/internal/models"
	"github.com/aeron-ops/backend/internal/observability"
	"github.com/aeron-ops/backend/internal/optionsource"
	"github.com/aeron-ops/backend/internal/plan"
	"github.com/aeron-ops/backend/internal/refdata"
	"github.com/aeron-ops/backend/internal/utils"
	"github.com/aeron-ops/backend/internal/validate"
	"github.com/aeron-ops/backend/internal/whatif"
)

type Handler struct {
	Resolver  *optionsource.Resolver
	Store     *db.Store
	Reference refdata.Provider
	Policy    config.Policy
	Validator *validator.Validate
	Logger    zerolog.Logger
	AdminKey  string
	Now       func() time.Time
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now().UTC()
}

func (h *Handler) Healthz(c *gin.Context) {
	if h.Store != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := h.Store.Ping(ctx); err != nil {
			writeError(c, http.StatusServiceUnavailable, "DB_UNAVAILABLE", "Database unavailable", err.Error())
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type OptionsRequest struct {
	Disruption models.Disruption `json:"disruption" validate:"required"`
	Flight     models.Flight     `json:"flight"`
}

// @Summary Generate recovery options
// @Description Produce candidate recovery options for a disruption
// @Tags recovery
// @Accept json
// @Produce json
// @Param request body OptionsRequest true "disruption context"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /api/recovery/options [post]
func (h *Handler) GenerateOptions(c *gin.Context) {
	var req OptionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if req.Disruption.Category == "" {
		req.Disruption.Category = catalog.Classify("", req.Disruption.Reason)
	}

	opts, steps, source, err := h.Resolver.Generate(c.Request.Context(), req.Disruption, req.Flight)
	if err != nil {
		writeError(c, http.StatusBadGateway, "SOURCE_UNAVAILABLE", "No recovery option source available", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"options": opts,
		"steps":   steps,
		"source":  source,
	})
}

type PlanRequest struct {
	Option models.RecoveryOption `json:"option" validate:"required"`
	Flight models.Flight         `json:"flight"`
}

// @Summary Expand a recovery option
// @Description Materialize the full plan view for a chosen option
// @Tags recovery
// @Accept json
// @Produce json
// @Param request body PlanRequest true "option and flight context"
// @Success 200 {object} models.ExpandedPlan
// @Failure 400 {object} map[string]any
// @Router /api/recovery/plan [post]
func (h *Handler) Plan(c *gin.Context) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}

	expanded := plan.Expand(req.Option, req.Flight, h.now())
	fam, _ := plan.Resolve(req.Option.ID, req.Option.Title)
	observability.ExpansionsTotal.WithLabelValues(fam.String()).Inc()
	c.JSON(http.StatusOK, expanded)
}

type ValidateRequest struct {
	Assignment models.ResourceAssignment `json:"assignment"`
	BaseCost   float64                   `json:"base_cost"`
	Option     models.RecoveryOption     `json:"option"`
}

// @Summary Validate a resource assignment
// @Description Check an edited assignment against availability, duty and capacity constraints
// @Tags recovery
// @Accept json
// @Produce json
// @Param request body ValidateRequest true "assignment to check"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /api/recovery/validate [post]
func (h *Handler) Validate(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}

	ref := h.Reference.Reference()
	violations := validate.Validate(h.Policy, req.Assignment, ref)
	for _, v := range violations {
		observability.ViolationsTotal.WithLabelValues(string(v.Type)).Inc()
	}

	baseCost := req.BaseCost
	if baseCost == 0 {
		baseCost = utils.ParseAmount(req.Option.Cost, h.Policy.DefaultBaseCost)
	}
	impact := validate.CostImpact(h.Policy, baseCost, req.Assignment, ref)

	c.JSON(http.StatusOK, gin.H{
		"valid":       len(violations) == 0,
		"violations":  violations,
		"cost_impact": impact,
	})
}

type RecalculateRequest struct {
	Option   models.RecoveryOption `json:"option" validate:"required"`
	Scenario *models.Scenario      `json:"scenario"`
	Edits    map[string]any        `json:"edits"`
}

// @Summary Recalculate impact
// @Description Apply a what-if scenario or parameter edits to a baseline option
// @Tags recovery
// @Accept json
// @Produce json
// @Param request body RecalculateRequest true "baseline plus scenario or edits"
// @Success 200 {object} models.ImpactResult
// @Failure 400 {object} map[string]any
// @Router /api/recovery/recalculate [post]
func (h *Handler) Recalculate(c *gin.Context) {
	var req RecalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	observability.RecalculationsTotal.Inc()
	result := whatif.Recalculate(h.Policy, req.Option, req.Scenario, req.Edits)
	c.JSON(http.StatusOK, result)
}

// @Summary Reference rosters
// @Description Aircraft, crew and ground-support rosters plus a clean seed assignment
// @Tags reference
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/reference/resources [get]
func (h *Handler) ReferenceResources(c *gin.Context) {
	ref := h.Reference.Reference()
	seed := validate.SeedAssignment(h.Policy, ref)
	c.JSON(http.StatusOK, gin.H{
		"reference": ref,
		"seed":      seed,
	})
}

type CreateDisruptionRequest struct {
	ID           string `json:"id"`
	Category     string `json:"category"`
	Severity     string `json:"severity"`
	Reason       string `json:"reason" validate:"required"`
	FlightNumber string `json:"flight_number"`
	Passengers   int    `json:"passengers"`
}

// @Summary Create a disruption
// @Description Persist a disruption and generate its option set
// @Tags admin
// @Accept json
// @Produce json
// @Param request body CreateDisruptionRequest true "disruption"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /api/disruptions [post]
func (h *Handler) CreateDisruption(c *gin.Context) {
	var req CreateDisruptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}

	d := models.Disruption{
		ID:           req.ID,
		Category:     models.DisruptionCategory(req.Category),
		Severity:     req.Severity,
		Reason:       req.Reason,
		FlightNumber: req.FlightNumber,
		Passengers:   req.Passengers,
		CreatedAt:    h.now(),
	}
	if d.ID == "" {
		d.ID = "DIS-" + d.CreatedAt.Format("20060102-150405")
	}
	if d.Category == "" {
		d.Category = catalog.Classify("", d.Reason)
	}

	opts, steps, source, err := h.Resolver.Generate(c.Request.Context(), d, models.Flight{})
	if err != nil {
		writeError(c, http.StatusBadGateway, "SOURCE_UNAVAILABLE", "No recovery option source available", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"disruption": d,
		"options":    opts,
		"steps":      steps,
		"source":     source,
	})
}

// @Summary Regenerate options
// @Description Rebuild the option set for a stored disruption
// @Tags admin
// @Produce json
// @Param id path string true "disruption id"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /api/disruptions/{id}/options/regenerate [post]
func (h *Handler) RegenerateOptions(c *gin.Context) {
	id := c.Param("id")
	if h.Store == nil {
		writeError(c, http.StatusServiceUnavailable, "DB_UNAVAILABLE", "Persistence is not configured", nil)
		return
	}

	d, err := h.Store.GetDisruption(c.Request.Context(), id)
	if err != nil {
		if db.NotFound(err) {
			writeError(c, http.StatusNotFound, "NOT_FOUND", "Disruption not found", nil)
			return
		}
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to load disruption", err.Error())
		return
	}

	opts, steps, source, err := h.Resolver.Generate(c.Request.Context(), d, models.Flight{})
	if err != nil {
		writeError(c, http.StatusBadGateway, "SOURCE_UNAVAILABLE", "No recovery option source available", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"disruption": d,
		"options":    opts,
		"steps":      steps,
		"source":     source,
	})
}

// @Summary Stored options
// @Description Fetch previously generated options for a disruption
// @Tags recovery
// @Produce json
// @Param id path string true "disruption id"
// @Success 200 {object} map[string]any
// @Router /api/disruptions/{id}/options [get]
func (h *Handler) DisruptionOptions(c *gin.Context) {
	opts, source, err := h.Resolver.Options(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, http.StatusInternalServerError, "SOURCE_ERROR", "Failed to load options", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"options": opts,
		"source":  source,
	})
}

func writeError(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
