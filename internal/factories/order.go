package factories

import (
	"math"
	"math/rand"

	"github.com/NicolasCard/RAPZ/internal/geo"
	"github.com/NicolasCard/RAPZ/internal/models"
	"github.com/NicolasCard/RAPZ/internal/pricing"
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
)

var fake = faker.New()

type OrderFactory struct {
	Rng *rand.Rand
}

// CreateOrder builds a pending delivery request from a random store placed
// inside the configured urban radius. Price and time come from the local
// pricing formula so generated data stays coherent with real estimates.
func (of *OrderFactory) CreateOrder(config *models.Config) *models.Order {
	pickup := of.randomLocation(config)
	dropoff := of.randomLocation(config)
	distance := geo.DistanceKm(pickup, dropoff)
	if distance < 0.5 {
		distance = 0.5
	}
	distance = math.Round(distance*10) / 10

	analysis := pricing.Fallback(distance)

	return &models.Order{
		ID:              cuid.New(),
		StoreID:         cuid.Slug(),
		StoreName:       fake.Company().Name(),
		PickupLocation:  pickup,
		DropoffLocation: dropoff,
		DistanceKm:      distance,
		Price:           analysis.FairPrice,
		EstimatedTime:   analysis.EstimatedTime,
		Status:          models.OrderStatusPending,
		CreatedAt:       models.NowMillis(),
	}
}

func (of *OrderFactory) randomLocation(config *models.Config) models.Location {
	// Approx. conversion from km to degrees
	latRange := config.UrbanRadius / 111.0
	lngRange := latRange / math.Cos(config.CityLat*math.Pi/180.0)

	latOffset := (of.random()*2 - 1) * latRange
	lngOffset := (of.random()*2 - 1) * lngRange

	return models.Location{
		Address: fake.Address().StreetAddress(),
		Lat:     config.CityLat + latOffset,
		Lng:     config.CityLng + lngOffset,
	}
}

func (of *OrderFactory) random() float64 {
	if of.Rng != nil {
		return of.Rng.Float64()
	}
	return rand.Float64()
}

// SeedOrders returns the two demo requests every fresh session starts with.
func SeedOrders() []models.Order {
	now := models.NowMillis()
	return []models.Order{
		{
			ID:              "1",
			StoreID:         "s1",
			StoreName:       "Pizzaria do Bairro",
			PickupLocation:  models.Location{Address: "Rua das Flores, 123", Lat: -23.5505, Lng: -46.6333},
			DropoffLocation: models.Location{Address: "Av. Paulista, 1000", Lat: -23.5615, Lng: -46.6560},
			DistanceKm:      4.5,
			Price:           12.50,
			EstimatedTime:   25,
			Status:          models.OrderStatusPending,
			CreatedAt:       now - 1000*60*5,
		},
		{
			ID:              "2",
			StoreID:         "s2",
			StoreName:       "Sushi Express",
			PickupLocation:  models.Location{Address: "Shopping Center, Loja 4", Lat: -23.5855, Lng: -46.6765},
			DropoffLocation: models.Location{Address: "Rua Augusta, 500", Lat: -23.5596, Lng: -46.6588},
			DistanceKm:      2.1,
			Price:           8.00,
			EstimatedTime:   15,
			Status:          models.OrderStatusPending,
			CreatedAt:       now - 1000*60*15,
		},
	}
}
