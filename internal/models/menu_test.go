package models

import "testing"

func TestValidDay(t *testing.T) {
	valid := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	for _, day := range valid {
		if !ValidDay(day) {
			t.Errorf("ValidDay(%q) = false, want true", day)
		}
	}

	invalid := []string{"Saturday", "Sunday", "monday", "", "Someday"}
	for _, day := range invalid {
		if ValidDay(day) {
			t.Errorf("ValidDay(%q) = true, want false", day)
		}
	}
}

func TestValidWeek(t *testing.T) {
	if !ValidWeek("current") || !ValidWeek("next") {
		t.Error("ValidWeek rejected a valid week")
	}

	for _, week := range []string{"", "last", "Current", "NEXT"} {
		if ValidWeek(week) {
			t.Errorf("ValidWeek(%q) = true, want false", week)
		}
	}
}

func TestValidateMenuItem(t *testing.T) {
	tests := []struct {
		name    string
		item    MenuItem
		wantErr bool
	}{
		{"valid", MenuItem{Name: "Soup", Price: 5.00}, false},
		{"free item", MenuItem{Name: "Water", Price: 0}, false},
		{"with description", MenuItem{Name: "Soup", Description: "of the day", Price: 5.00}, false},
		{"empty name", MenuItem{Name: "", Price: 5.00}, true},
		{"blank name", MenuItem{Name: "   ", Price: 5.00}, true},
		{"negative price", MenuItem{Name: "Soup", Price: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMenuItem(&tt.item)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMenuItem() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
