package pricing

import (
	"context"
	"math"

	"github.com/NicolasCard/RAPZ/internal/models"
)

// FallbackJustification is the PT-BR note attached to locally computed
// estimates.
const FallbackJustification = "Cálculo baseado em distância padrão (fallback)."

// Estimator produces a fair price, justification and time estimate for a
// prospective delivery. Implementations must always return a usable
// analysis; external failures are absorbed, never propagated.
type Estimator interface {
	Estimate(ctx context.Context, distanceKm float64, urgent bool, weather string) models.PricingAnalysis
}

// Fallback computes the deterministic local estimate used whenever the
// external pricing service cannot be reached or answers garbage.
func Fallback(distanceKm float64) models.PricingAnalysis {
	return models.PricingAnalysis{
		FairPrice:     5 + distanceKm*2,
		Justification: FallbackJustification,
		EstimatedTime: int(math.Round(10 + distanceKm*3)),
	}
}

// LocalEstimator answers every estimate with the fallback formula. Used when
// no pricing-service credentials are configured and in the demo simulator.
type LocalEstimator struct{}

func (LocalEstimator) Estimate(_ context.Context, distanceKm float64, _ bool, _ string) models.PricingAnalysis {
	return Fallback(distanceKm)
}
