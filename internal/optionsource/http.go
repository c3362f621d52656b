package optionsource

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aeron-ops/backend/internal/models"
)

// HTTPSource talks to the external recovery service when one is
// configured.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

func (h HTTPSource) Name() string { return "api" }

func (h HTTPSource) client() *http.Client {
	if h.Client != nil {
		return h.Client
	}
	return &http.Client{Timeout: 15 * time.Second}
}

func (h HTTPSource) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.BaseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := h.client().Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

func (h HTTPSource) GetOptions(ctx context.Context, disruptionID string) ([]models.RecoveryOption, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.BaseURL+"/recovery-options/"+disruptionID, nil)
	if err != nil {
		return nil, err
	}
	resp, err := h.client().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.New("recovery service error")
	}
	var opts []models.RecoveryOption
	if err := json.NewDecoder(resp.Body).Decode(&opts); err != nil {
		return nil, err
	}
	return opts, nil
}

type generateRequest struct {
	Disruption models.Disruption `json:"disruption"`
	Flight     models.Flight     `json:"flight"`
}

type generateResponse struct {
	Options []models.RecoveryOption `json:"options"`
	Steps   []models.GenerationStep `json:"steps"`
}

func (h HTTPSource) GenerateOptions(ctx context.Context, d models.Disruption, f models.Flight) ([]models.RecoveryOption, []models.GenerationStep, error) {
	b, _ := json.Marshal(generateRequest{Disruption: d, Flight: f})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.BaseURL+"/recovery-options/generate", bytes.NewBuffer(b))
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client().Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, nil, errors.New("recovery service error")
	}
	var r generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, nil, err
	}
	return r.Options, r.Steps, nil
}
