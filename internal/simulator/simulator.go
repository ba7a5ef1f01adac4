package simulator

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/NicolasCard/RAPZ/internal/factories"
	"github.com/NicolasCard/RAPZ/internal/models"
	"github.com/NicolasCard/RAPZ/internal/output"
	"github.com/NicolasCard/RAPZ/internal/pricing"
	"github.com/NicolasCard/RAPZ/internal/store"
	"github.com/schollz/progressbar/v3"
)

// Simulator drives a scripted delivery session against a fresh OrderStore:
// stores publish requests, the demo rider accepts and completes them one at
// a time. Every transition flows through the same store code the server
// uses, and every event reaches the configured sink.
type Simulator struct {
	Config    *models.Config
	Store     *store.OrderStore
	Estimator pricing.Estimator
	Rng       *rand.Rand

	sink output.OutputDestination
}

func NewSimulator(config *models.Config) (*Simulator, error) {
	sink, err := output.ForConfig(config)
	if err != nil {
		return nil, err
	}
	recorder := output.NewRecorder(sink)

	return &Simulator{
		Config:    config,
		Store:     store.NewOrderStore(recorder),
		Estimator: pricing.LocalEstimator{},
		Rng:       rand.New(rand.NewSource(config.SimSeed)),
		sink:      sink,
	}, nil
}

func (s *Simulator) Run() error {
	defer func() {
		if err := s.sink.Close(); err != nil {
			log.Printf("Failed to close event sink: %v", err)
		}
	}()

	ctx := context.Background()
	factory := &factories.OrderFactory{Rng: s.Rng}

	log.Printf("Simulating %d deliveries", s.Config.SimOrders)
	bar := progressbar.Default(int64(s.Config.SimOrders), "deliveries")

	start := time.Now()
	var delivered int
	for i := 0; i < s.Config.SimOrders; i++ {
		order := factory.CreateOrder(s.Config)

		// Re-estimate the way a store would before confirming the request.
		analysis := s.Estimator.Estimate(ctx, order.DistanceKm, false, s.Config.DefaultWeather)
		order.Price = analysis.FairPrice
		order.EstimatedTime = analysis.EstimatedTime

		created := s.Store.Create(*order)

		if _, err := s.Store.Accept(created.ID, s.Config.RiderID); err != nil {
			log.Printf("Rider could not accept order %s: %v", created.ID, err)
			continue
		}
		if _, err := s.Store.Complete(created.ID); err != nil {
			log.Printf("Rider could not complete order %s: %v", created.ID, err)
			continue
		}
		delivered++
		_ = bar.Add(1)
	}

	metrics := s.Store.Metrics()
	log.Printf("Simulation finished in %s: %d/%d delivered, R$ %.2f earned",
		time.Since(start).Round(time.Millisecond), delivered, s.Config.SimOrders, metrics.TotalEarnings)

	return nil
}
