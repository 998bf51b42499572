package models

import "testing"

func validTestOrder() *Order {
	return &Order{
		CustomerName: "Alice",
		PhoneNumber:  "555-1234",
		PickupTime:   "12:00 PM",
		Day:          "Tuesday",
		Week:         "current",
		Items: []OrderLineItem{
			{Name: "Soup", Price: 5.00, Quantity: 2},
		},
		TotalPrice: 10.00,
	}
}

func TestValidOrderStatus(t *testing.T) {
	for _, status := range []string{"pending", "acknowledged", "completed"} {
		if !ValidOrderStatus(status) {
			t.Errorf("ValidOrderStatus(%q) = false, want true", status)
		}
	}

	for _, status := range []string{"", "Pending", "done", "cancelled"} {
		if ValidOrderStatus(status) {
			t.Errorf("ValidOrderStatus(%q) = true, want false", status)
		}
	}
}

func TestValidateOrder(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Order)
		wantErr bool
	}{
		{"valid", func(o *Order) {}, false},
		{"missing customer name", func(o *Order) { o.CustomerName = " " }, true},
		{"missing phone number", func(o *Order) { o.PhoneNumber = "" }, true},
		{"missing pickup time", func(o *Order) { o.PickupTime = "" }, true},
		{"invalid day", func(o *Order) { o.Day = "Sunday" }, true},
		{"invalid week", func(o *Order) { o.Week = "someday" }, true},
		{"no items", func(o *Order) { o.Items = nil }, true},
		{"item without name", func(o *Order) { o.Items[0].Name = "" }, true},
		{"item negative price", func(o *Order) { o.Items[0].Price = -1 }, true},
		{"item zero quantity", func(o *Order) { o.Items[0].Quantity = 0 }, true},
		{"negative total", func(o *Order) { o.TotalPrice = -5 }, true},
		// The total is the caller's asserted value; a mismatch against
		// the line items is accepted by design.
		{"mismatched total accepted", func(o *Order) { o.TotalPrice = 999.99 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := validTestOrder()
			tt.mutate(order)
			err := ValidateOrder(order)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOrder() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateSuggestion(t *testing.T) {
	tests := []struct {
		name       string
		suggestion Suggestion
		wantErr    bool
	}{
		{"valid", Suggestion{CustomerName: "Bob", Content: "More soup"}, false},
		{"missing name", Suggestion{Content: "More soup"}, true},
		{"blank content", Suggestion{CustomerName: "Bob", Content: "   "}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSuggestion(&tt.suggestion)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSuggestion() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
