package pricing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallback_DeterministicFormula(t *testing.T) {
	analysis := Fallback(4.5)

	assert.Equal(t, 14.0, analysis.FairPrice)
	assert.Equal(t, 24, analysis.EstimatedTime)
	assert.Equal(t, "Cálculo baseado em distância padrão (fallback).", analysis.Justification)
}

func TestFallback_RoundsEstimatedTime(t *testing.T) {
	tests := []struct {
		distanceKm float64
		price      float64
		minutes    int
	}{
		{1, 7, 13},
		{2.1, 9.2, 16}, // 10 + 6.3 = 16.3
		{4.5, 14, 24},  // 23.5 rounds half up
		{10, 25, 40},
	}

	for _, tt := range tests {
		analysis := Fallback(tt.distanceKm)
		assert.InDelta(t, tt.price, analysis.FairPrice, 1e-9, "distance %v", tt.distanceKm)
		assert.Equal(t, tt.minutes, analysis.EstimatedTime, "distance %v", tt.distanceKm)
	}
}

func TestLocalEstimator_AlwaysAnswers(t *testing.T) {
	var e Estimator = LocalEstimator{}

	analysis := e.Estimate(context.Background(), 4.5, true, "chuva")
	assert.Equal(t, Fallback(4.5), analysis)
}
