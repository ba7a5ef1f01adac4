package models

// OrderStatus is the lifecycle state of a delivery order.
type OrderStatus string

// PICKED_UP and CANCELLED are declared for forward compatibility with the
// mobile clients; no transition currently produces them.
const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusAccepted  OrderStatus = "ACCEPTED"
	OrderStatusPickedUp  OrderStatus = "PICKED_UP"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusAccepted, OrderStatusPickedUp, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// Active reports whether an order in this status occupies the rider.
func (s OrderStatus) Active() bool {
	return s == OrderStatusAccepted || s == OrderStatusPickedUp
}

// Role selects which view and which action set is live for the session.
type Role string

const (
	RoleRider Role = "RIDER"
	RoleStore Role = "STORE"
)

func (r Role) IsValid() bool {
	return r == RoleRider || r == RoleStore
}

// Store-view labels shown next to an order, in PT-BR like the mobile app.
const (
	StoreLabelSearching = "PROCURANDO MOTOBOY"
	StoreLabelInTransit = "EM TRÂNSITO"
)
