package enums

import "testing"

func TestOrderStatusTransitions(t *testing.T) {
	legal := []struct {
		from OrderStatus
		to   OrderStatus
	}{
		{OrderStatusPlaced, OrderStatusAccepted},
		{OrderStatusPlaced, OrderStatusRejected},
		{OrderStatusAccepted, OrderStatusPreparing},
		{OrderStatusPreparing, OrderStatusReady},
		{OrderStatusReady, OrderStatusPicked},
		{OrderStatusPicked, OrderStatusDelivered},
	}
	for _, tt := range legal {
		if !tt.from.CanTransitionTo(tt.to) {
			t.Fatalf("expected %s -> %s to be legal", tt.from, tt.to)
		}
	}

	illegal := []struct {
		from OrderStatus
		to   OrderStatus
	}{
		{OrderStatusPlaced, OrderStatusPreparing},
		{OrderStatusPlaced, OrderStatusDelivered},
		{OrderStatusAccepted, OrderStatusRejected},
		{OrderStatusReady, OrderStatusDelivered},
		{OrderStatusDelivered, OrderStatusPlaced},
		{OrderStatusRejected, OrderStatusAccepted},
		{OrderStatusPicked, OrderStatusReady},
	}
	for _, tt := range illegal {
		if tt.from.CanTransitionTo(tt.to) {
			t.Fatalf("expected %s -> %s to be rejected", tt.from, tt.to)
		}
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	if !OrderStatusDelivered.IsTerminal() {
		t.Fatal("delivered must be terminal")
	}
	if !OrderStatusRejected.IsTerminal() {
		t.Fatal("rejected must be terminal")
	}
	if OrderStatusReady.IsTerminal() {
		t.Fatal("ready must not be terminal")
	}
	if OrderStatus("bogus").IsTerminal() {
		t.Fatal("unknown status must not be terminal")
	}
}

func TestParseOrderStatus(t *testing.T) {
	status, err := ParseOrderStatus("picked")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != OrderStatusPicked {
		t.Fatalf("unexpected status %s", status)
	}
	if _, err := ParseOrderStatus("shipped"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestParseRoleAndPaymentMethod(t *testing.T) {
	if _, err := ParseRole("driver"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseRole("superuser"); err == nil {
		t.Fatal("expected error for unknown role")
	}
	if _, err := ParsePaymentMethod("cash"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParsePaymentMethod("barter"); err == nil {
		t.Fatal("expected error for unknown payment method")
	}
}
