package models

import "time"

// Order is a single delivery job from a store's pickup point to a
// customer's dropoff point. Orders live for the whole session; no
// transition removes or archives one.
type Order struct {
	ID              string      `json:"id"`
	StoreID         string      `json:"store_id"`
	StoreName       string      `json:"store_name"`
	PickupLocation  Location    `json:"pickup_location"`
	DropoffLocation Location    `json:"dropoff_location"`
	DistanceKm      float64     `json:"distance"` // kilometres
	Price           float64     `json:"price"`
	EstimatedTime   int         `json:"estimated_time"` // minutes
	Status          OrderStatus `json:"status"`
	RiderID         string      `json:"rider_id,omitempty"`
	CreatedAt       int64       `json:"created_at"` // epoch milliseconds
}

// StoreLabel is the PT-BR status label the store view renders for the order.
func (o *Order) StoreLabel() string {
	if o.Status == OrderStatusPending {
		return StoreLabelSearching
	}
	return StoreLabelInTransit
}

// Earnings projected for the session, derived from the delivered history.
type SessionMetrics struct {
	TotalOrders     int     `json:"total_orders"`
	Delivered       int     `json:"delivered"`
	TotalEarnings   float64 `json:"total_earnings"`
	AvgDistanceKm   float64 `json:"avg_distance_km"`
	AvgDeliveryTime float64 `json:"avg_delivery_time"`
}

// NowMillis is the creation-timestamp clock, epoch milliseconds.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
