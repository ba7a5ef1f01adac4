package store

import (
	"errors"
	"sync"

	"github.com/NicolasCard/RAPZ/internal/models"
	"github.com/NicolasCard/RAPZ/internal/output"
)

var (
	// ErrOrderNotFound is returned when an order id is not in the collection.
	ErrOrderNotFound = errors.New("pedido não encontrado")
	// ErrOrderTaken is returned when accepting an order that is no longer pending.
	ErrOrderTaken = errors.New("esta entrega não está mais disponível")
	// ErrActiveDelivery is returned when the rider already has a delivery in
	// progress. At most one order may be active per rider session.
	ErrActiveDelivery = errors.New("você já possui uma entrega ativa")
	// ErrOrderNotActive is returned when completing an order that was never
	// accepted.
	ErrOrderNotActive = errors.New("esta entrega ainda não foi aceita")
)

// OrderStore is the single source of truth for all orders in the session.
// Orders are held most-recent-first and accumulate for the lifetime of the
// process. The mutex makes the store safe for the concurrent HTTP surface;
// the logical session is still a single actor.
type OrderStore struct {
	mu       sync.Mutex
	orders   []*models.Order
	recorder *output.Recorder
}

// NewOrderStore creates an empty store. The recorder may be nil, in which
// case lifecycle events are not emitted.
func NewOrderStore(recorder *output.Recorder) *OrderStore {
	return &OrderStore{
		orders:   make([]*models.Order, 0),
		recorder: recorder,
	}
}

// Create prepends a new pending order. The caller supplies a well-formed
// order with a unique id; status and rider assignment are overwritten here
// so a draft can never enter the collection mid-lifecycle.
func (s *OrderStore) Create(order models.Order) *models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	order.Status = models.OrderStatusPending
	order.RiderID = ""
	if order.CreatedAt == 0 {
		order.CreatedAt = models.NowMillis()
	}

	stored := order
	s.orders = append([]*models.Order{&stored}, s.orders...)

	s.recorder.OrderCreated(&stored)
	copied := stored
	return &copied
}

// Accept assigns a pending order to the rider. It fails without mutating
// anything when the order is unknown, no longer pending, or when the rider
// already has an active delivery.
func (s *OrderStore) Accept(orderID, riderID string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.Status.Active() {
			return nil, ErrActiveDelivery
		}
	}

	order := s.find(orderID)
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status != models.OrderStatusPending {
		return nil, ErrOrderTaken
	}

	order.Status = models.OrderStatusAccepted
	order.RiderID = riderID

	s.recorder.OrderAccepted(order)
	copied := *order
	return &copied, nil
}

// Complete marks an accepted order as delivered. Delivered is terminal.
func (s *OrderStore) Complete(orderID string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := s.find(orderID)
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !order.Status.Active() {
		return nil, ErrOrderNotActive
	}

	order.Status = models.OrderStatusDelivered

	s.recorder.OrderDelivered(order)
	copied := *order
	return &copied, nil
}

// find returns the stored order for id, or nil. Caller holds the lock.
func (s *OrderStore) find(orderID string) *models.Order {
	for _, o := range s.orders {
		if o.ID == orderID {
			return o
		}
	}
	return nil
}

// PendingOrders returns all orders still waiting for a rider,
// most-recent-first.
func (s *OrderStore) PendingOrders() []models.Order {
	return s.filter(func(o *models.Order) bool {
		return o.Status == models.OrderStatusPending
	})
}

// ActiveOrder returns the rider's delivery in progress, or nil. By the
// one-active-order invariant there is at most one.
func (s *OrderStore) ActiveOrder() *models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.Status.Active() {
			copied := *o
			return &copied
		}
	}
	return nil
}

// OrdersForStore returns every order the store has created, any status.
func (s *OrderStore) OrdersForStore(storeID string) []models.Order {
	return s.filter(func(o *models.Order) bool {
		return o.StoreID == storeID
	})
}

// DeliveryHistory returns the completed deliveries.
func (s *OrderStore) DeliveryHistory() []models.Order {
	return s.filter(func(o *models.Order) bool {
		return o.Status == models.OrderStatusDelivered
	})
}

// Get returns a copy of the order with the given id.
func (s *OrderStore) Get(orderID string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := s.find(orderID)
	if order == nil {
		return nil, ErrOrderNotFound
	}
	copied := *order
	return &copied, nil
}

// Metrics summarises the session from the delivered history.
func (s *OrderStore) Metrics() models.SessionMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()

	metrics := models.SessionMetrics{TotalOrders: len(s.orders)}
	for _, o := range s.orders {
		if o.Status != models.OrderStatusDelivered {
			continue
		}
		metrics.Delivered++
		metrics.TotalEarnings += o.Price
		metrics.AvgDistanceKm += o.DistanceKm
		metrics.AvgDeliveryTime += float64(o.EstimatedTime)
	}
	if metrics.Delivered > 0 {
		metrics.AvgDistanceKm /= float64(metrics.Delivered)
		metrics.AvgDeliveryTime /= float64(metrics.Delivered)
	}
	return metrics
}

func (s *OrderStore) filter(keep func(*models.Order) bool) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.Order, 0)
	for _, o := range s.orders {
		if keep(o) {
			result = append(result, *o)
		}
	}
	return result
}
