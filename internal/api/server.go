package api

import (
	"log"
	"net/http"

	"github.com/NicolasCard/RAPZ/internal/factories"
	"github.com/NicolasCard/RAPZ/internal/models"
	"github.com/NicolasCard/RAPZ/internal/output"
	"github.com/NicolasCard/RAPZ/internal/pricing"
	"github.com/NicolasCard/RAPZ/internal/session"
	"github.com/NicolasCard/RAPZ/internal/store"
	"github.com/gorilla/mux"
)

// Server owns the session state and the HTTP surface around it.
type Server struct {
	Config  *models.Config
	Store   *store.OrderStore
	Session *session.Session
	Router  *mux.Router

	sink output.OutputDestination
}

// NewServer wires the whole application: the event sink, the order store,
// the session and the estimator, then the routes on top.
func NewServer(cfg *models.Config) (*Server, error) {
	sink, err := output.ForConfig(cfg)
	if err != nil {
		return nil, err
	}
	recorder := output.NewRecorder(sink)

	orderStore := store.NewOrderStore(recorder)
	if cfg.SeedOrders {
		seeds := factories.SeedOrders()
		for i := len(seeds) - 1; i >= 0; i-- {
			orderStore.Create(seeds[i])
		}
	}

	sess := session.New(cfg.RiderProfile(), cfg.StoreProfile())

	var estimator pricing.Estimator
	if cfg.GeminiAPIKey != "" {
		estimator = pricing.NewGeminiEstimator(cfg, recorder)
	} else {
		log.Printf("No Gemini API key configured, pricing runs on the local formula")
		estimator = pricing.LocalEstimator{}
	}

	router := mux.NewRouter()
	RegisterRoutes(router,
		NewOrderController(cfg, orderStore, sess),
		NewPricingController(cfg, estimator),
		NewSessionController(sess),
	)

	return &Server{
		Config:  cfg,
		Store:   orderStore,
		Session: sess,
		Router:  router,
		sink:    sink,
	}, nil
}

// Run serves until the listener fails.
func (s *Server) Run() error {
	defer func() {
		if err := s.sink.Close(); err != nil {
			log.Printf("Failed to close event sink: %v", err)
		}
	}()

	log.Printf("RAPZ server listening on %s", s.Config.ListenAddr)
	return http.ListenAndServe(s.Config.ListenAddr, s.Router)
}
