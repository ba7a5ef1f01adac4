package pricing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/NicolasCard/RAPZ/internal/models"
	"github.com/NicolasCard/RAPZ/internal/output"
)

// GeminiEstimator asks the Gemini generateContent endpoint for a fair-price
// analysis. One request, no retry; any failure falls back to the local
// formula so the caller always gets an answer.
type GeminiEstimator struct {
	apiKey   string
	model    string
	baseURL  string
	client   *http.Client
	recorder *output.Recorder
}

func NewGeminiEstimator(cfg *models.Config, recorder *output.Recorder) *GeminiEstimator {
	client := &http.Client{}
	if cfg.PricingTimeout > 0 {
		client.Timeout = cfg.PricingTimeout
	}
	return &GeminiEstimator{
		apiKey:   cfg.GeminiAPIKey,
		model:    cfg.GeminiModel,
		baseURL:  cfg.GeminiBaseURL,
		client:   client,
		recorder: recorder,
	}
}

type generateContentRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   *responseSchema `json:"responseSchema,omitempty"`
}

type responseSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]responseSchema `json:"properties,omitempty"`
	Required   []string                  `json:"required,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// analysisPayload uses pointers so that a schema violation (missing field)
// is distinguishable from a zero value.
type analysisPayload struct {
	FairPrice     *float64 `json:"fairPrice"`
	Justification *string  `json:"justification"`
	EstimatedTime *float64 `json:"estimatedTime"`
}

func (g *GeminiEstimator) Estimate(ctx context.Context, distanceKm float64, urgent bool, weather string) models.PricingAnalysis {
	if weather == "" {
		weather = "bom"
	}

	analysis, err := g.analyze(ctx, distanceKm, urgent, weather)
	if err != nil {
		log.Printf("Gemini pricing error: %v", err)
		analysis = Fallback(distanceKm)
		g.recorder.PricingEstimated(distanceKm, urgent, weather, analysis, true, err.Error())
		return analysis
	}

	g.recorder.PricingEstimated(distanceKm, urgent, weather, analysis, false, "")
	return analysis
}

func (g *GeminiEstimator) analyze(ctx context.Context, distanceKm float64, urgent bool, weather string) (models.PricingAnalysis, error) {
	urgency := "Não"
	if urgent {
		urgency = "Sim"
	}
	prompt := fmt.Sprintf(
		"Analise um valor justo para uma entrega de motoboy com distância de %skm. "+
			"Considere urgência: %s. "+
			"Clima atual: %s. "+
			"Retorne um JSON com: fairPrice (número), justification (string curta em PT-BR), estimatedTime (número em minutos).",
		strconv.FormatFloat(distanceKm, 'f', -1, 64), urgency, weather,
	)

	reqBody := generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema: &responseSchema{
				Type: "OBJECT",
				Properties: map[string]responseSchema{
					"fairPrice":     {Type: "NUMBER"},
					"justification": {Type: "STRING"},
					"estimatedTime": {Type: "NUMBER"},
				},
				Required: []string{"fairPrice", "justification", "estimatedTime"},
			},
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return models.PricingAnalysis{}, fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return models.PricingAnalysis{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return models.PricingAnalysis{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.PricingAnalysis{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.PricingAnalysis{}, fmt.Errorf("failed to read response: %w", err)
	}

	var gcResp generateContentResponse
	if err := json.Unmarshal(raw, &gcResp); err != nil {
		return models.PricingAnalysis{}, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(gcResp.Candidates) == 0 || len(gcResp.Candidates[0].Content.Parts) == 0 {
		return models.PricingAnalysis{}, fmt.Errorf("empty response")
	}

	var payload analysisPayload
	if err := json.Unmarshal([]byte(gcResp.Candidates[0].Content.Parts[0].Text), &payload); err != nil {
		return models.PricingAnalysis{}, fmt.Errorf("unparseable analysis: %w", err)
	}
	if payload.FairPrice == nil || payload.Justification == nil || payload.EstimatedTime == nil {
		return models.PricingAnalysis{}, fmt.Errorf("analysis missing required fields")
	}

	return models.PricingAnalysis{
		FairPrice:     *payload.FairPrice,
		Justification: *payload.Justification,
		EstimatedTime: int(math.Round(*payload.EstimatedTime)),
	}, nil
}
