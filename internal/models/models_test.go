package models

import "testing"

func TestOrderStatus_Active(t *testing.T) {
	tests := []struct {
		status OrderStatus
		active bool
	}{
		{OrderStatusPending, false},
		{OrderStatusAccepted, true},
		{OrderStatusPickedUp, true},
		{OrderStatusDelivered, false},
		{OrderStatusCancelled, false},
	}
	for _, tt := range tests {
		if got := tt.status.Active(); got != tt.active {
			t.Errorf("%s.Active() = %v, want %v", tt.status, got, tt.active)
		}
	}
}

func TestOrderStatus_IsValid(t *testing.T) {
	if !OrderStatusPickedUp.IsValid() {
		t.Error("PICKED_UP should be a declared status")
	}
	if OrderStatus("SHIPPED").IsValid() {
		t.Error("SHIPPED is not a declared status")
	}
}

func TestRole_IsValid(t *testing.T) {
	if !RoleRider.IsValid() || !RoleStore.IsValid() {
		t.Error("declared roles must be valid")
	}
	if Role("ADMIN").IsValid() {
		t.Error("ADMIN is not a declared role")
	}
}

func TestOrder_StoreLabel(t *testing.T) {
	pending := Order{Status: OrderStatusPending}
	if pending.StoreLabel() != StoreLabelSearching {
		t.Errorf("pending label = %s", pending.StoreLabel())
	}

	accepted := Order{Status: OrderStatusAccepted}
	if accepted.StoreLabel() != StoreLabelInTransit {
		t.Errorf("accepted label = %s", accepted.StoreLabel())
	}
}

func TestConfig_Profiles(t *testing.T) {
	cfg := &Config{
		StoreID: "s1", StoreName: "Pizzaria do Bairro", StoreRating: 4.9,
		RiderID: "r1", RiderName: "João", RiderRating: 4.8,
	}

	rider := cfg.RiderProfile()
	if rider.Role != RoleRider || rider.ID != "r1" || rider.Rating != 4.8 {
		t.Errorf("unexpected rider profile: %+v", rider)
	}

	store := cfg.StoreProfile()
	if store.Role != RoleStore || store.Name != "Pizzaria do Bairro" {
		t.Errorf("unexpected store profile: %+v", store)
	}
}
