package factories

import (
	"math/rand"
	"testing"

	"github.com/NicolasCard/RAPZ/internal/models"
	"github.com/NicolasCard/RAPZ/internal/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func factoryConfig() *models.Config {
	return &models.Config{
		CityLat:     -23.5505,
		CityLng:     -46.6333,
		UrbanRadius: 10.0,
	}
}

func TestCreateOrder_CoherentDraft(t *testing.T) {
	factory := &OrderFactory{Rng: rand.New(rand.NewSource(42))}
	cfg := factoryConfig()

	order := factory.CreateOrder(cfg)

	assert.NotEmpty(t, order.ID)
	assert.NotEmpty(t, order.StoreID)
	assert.NotEmpty(t, order.StoreName)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Empty(t, order.RiderID)
	assert.Positive(t, order.DistanceKm)
	assert.NotZero(t, order.CreatedAt)

	// Price and time follow the local pricing formula for the distance.
	expected := pricing.Fallback(order.DistanceKm)
	assert.Equal(t, expected.FairPrice, order.Price)
	assert.Equal(t, expected.EstimatedTime, order.EstimatedTime)
}

func TestCreateOrder_UniqueIDs(t *testing.T) {
	factory := &OrderFactory{Rng: rand.New(rand.NewSource(42))}
	cfg := factoryConfig()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		order := factory.CreateOrder(cfg)
		require.False(t, seen[order.ID], "duplicate order id %s", order.ID)
		seen[order.ID] = true
	}
}

func TestSeedOrders_MatchesDemoData(t *testing.T) {
	seeds := SeedOrders()
	require.Len(t, seeds, 2)

	assert.Equal(t, "1", seeds[0].ID)
	assert.Equal(t, "Pizzaria do Bairro", seeds[0].StoreName)
	assert.Equal(t, 4.5, seeds[0].DistanceKm)
	assert.Equal(t, 12.50, seeds[0].Price)
	assert.Equal(t, 25, seeds[0].EstimatedTime)

	assert.Equal(t, "2", seeds[1].ID)
	assert.Equal(t, "Sushi Express", seeds[1].StoreName)
	assert.Equal(t, 2.1, seeds[1].DistanceKm)
	assert.Equal(t, 8.00, seeds[1].Price)
	assert.Equal(t, 15, seeds[1].EstimatedTime)

	for _, o := range seeds {
		assert.Equal(t, models.OrderStatusPending, o.Status)
		assert.Empty(t, o.RiderID)
	}
}
