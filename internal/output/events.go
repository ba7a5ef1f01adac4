package output

import (
	"encoding/json"
	"log"
	"time"

	"github.com/NicolasCard/RAPZ/internal/models"
)

const (
	TopicOrderCreated    = "order_created_events"
	TopicOrderAccepted   = "order_accepted_events"
	TopicOrderDelivered  = "order_delivered_events"
	TopicPricingEstimate = "pricing_estimate_events"
)

// BaseEvent is the common structure for all session events
type BaseEvent struct {
	Timestamp int64  `json:"timestamp"`
	EventType string `json:"eventType"`
	OrderID   string `json:"orderId,omitempty"`
	StoreID   string `json:"storeId,omitempty"`
	RiderID   string `json:"riderId,omitempty"`
}

func NewBaseEvent(eventType string, timestamp time.Time) BaseEvent {
	return BaseEvent{
		Timestamp: timestamp.Unix(),
		EventType: eventType,
	}
}

// OrderCreatedEvent records a store publishing a new delivery request
type OrderCreatedEvent struct {
	BaseEvent
	Status        string  `json:"status"`
	DistanceKm    float64 `json:"distanceKm"`
	Price         float64 `json:"price"`
	EstimatedTime int     `json:"estimatedTime"`
	CreatedAt     int64   `json:"createdAt"`
}

// OrderAcceptedEvent records a rider taking an order
type OrderAcceptedEvent struct {
	BaseEvent
	Status string `json:"status"`
}

// OrderDeliveredEvent records a completed delivery
type OrderDeliveredEvent struct {
	BaseEvent
	Status string  `json:"status"`
	Price  float64 `json:"price"`
}

// PricingEstimateEvent records one estimator call, including whether the
// local fallback had to cover for the external service.
type PricingEstimateEvent struct {
	BaseEvent
	DistanceKm    float64 `json:"distanceKm"`
	Urgent        bool    `json:"urgent"`
	Weather       string  `json:"weather"`
	FairPrice     float64 `json:"fairPrice"`
	EstimatedTime int     `json:"estimatedTime"`
	Fallback      bool    `json:"fallback"`
	FailureReason string  `json:"failureReason,omitempty"`
}

// Recorder serializes session events and hands them to a sink. Write
// failures are diagnostics only and never interrupt the caller.
type Recorder struct {
	dest OutputDestination
}

func NewRecorder(dest OutputDestination) *Recorder {
	return &Recorder{dest: dest}
}

func (r *Recorder) write(topic string, event interface{}) {
	if r == nil || r.dest == nil {
		return
	}
	msg, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error serializing event: %v", err)
		return
	}
	if err := r.dest.WriteMessage(topic, msg); err != nil {
		log.Printf("Failed to write message: %v", err)
	}
}

func (r *Recorder) OrderCreated(order *models.Order) {
	event := OrderCreatedEvent{
		BaseEvent:     NewBaseEvent("OrderCreated", time.Now()),
		Status:        string(order.Status),
		DistanceKm:    order.DistanceKm,
		Price:         order.Price,
		EstimatedTime: order.EstimatedTime,
		CreatedAt:     order.CreatedAt,
	}
	event.OrderID = order.ID
	event.StoreID = order.StoreID
	r.write(TopicOrderCreated, event)
}

func (r *Recorder) OrderAccepted(order *models.Order) {
	event := OrderAcceptedEvent{
		BaseEvent: NewBaseEvent("OrderAccepted", time.Now()),
		Status:    string(order.Status),
	}
	event.OrderID = order.ID
	event.StoreID = order.StoreID
	event.RiderID = order.RiderID
	r.write(TopicOrderAccepted, event)
}

func (r *Recorder) OrderDelivered(order *models.Order) {
	event := OrderDeliveredEvent{
		BaseEvent: NewBaseEvent("OrderDelivered", time.Now()),
		Status:    string(order.Status),
		Price:     order.Price,
	}
	event.OrderID = order.ID
	event.StoreID = order.StoreID
	event.RiderID = order.RiderID
	r.write(TopicOrderDelivered, event)
}

func (r *Recorder) PricingEstimated(distanceKm float64, urgent bool, weather string, analysis models.PricingAnalysis, fallback bool, failureReason string) {
	event := PricingEstimateEvent{
		BaseEvent:     NewBaseEvent("PricingEstimated", time.Now()),
		DistanceKm:    distanceKm,
		Urgent:        urgent,
		Weather:       weather,
		FairPrice:     analysis.FairPrice,
		EstimatedTime: analysis.EstimatedTime,
		Fallback:      fallback,
		FailureReason: failureReason,
	}
	r.write(TopicPricingEstimate, event)
}
