package api

import (
	"encoding/json"
	"net/http"
	"sync/atomic"

	"github.com/NicolasCard/RAPZ/internal/models"
	"github.com/NicolasCard/RAPZ/internal/pricing"
)

// PricingController serves fair-price estimates. A single request may be
// outstanding at a time; while one is in flight further calls are rejected,
// mirroring the disabled trigger button in the app.
type PricingController struct {
	Config    *models.Config
	Estimator pricing.Estimator
	busy      atomic.Bool
}

func NewPricingController(cfg *models.Config, estimator pricing.Estimator) *PricingController {
	return &PricingController{Config: cfg, Estimator: estimator}
}

type estimateRequest struct {
	DistanceKm float64 `json:"distance"`
	Urgent     bool    `json:"urgent"`
	Weather    string  `json:"weather"`
}

func (pc *PricingController) Estimate(w http.ResponseWriter, r *http.Request) {
	var req estimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}
	if req.DistanceKm <= 0 {
		respondError(w, http.StatusBadRequest, "distância deve ser positiva")
		return
	}

	if !pc.busy.CompareAndSwap(false, true) {
		respondError(w, http.StatusConflict, "já existe uma análise de preço em andamento")
		return
	}
	defer pc.busy.Store(false)

	weather := req.Weather
	if weather == "" {
		weather = pc.Config.DefaultWeather
	}

	analysis := pc.Estimator.Estimate(r.Context(), req.DistanceKm, req.Urgent, weather)
	respondJSON(w, http.StatusOK, analysis)
}
