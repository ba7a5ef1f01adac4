package models

// Location is a delivery endpoint: a human-readable address plus the
// coordinate pair used for routing deep links. Immutable once attached
// to an order.
type Location struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}
