package models

import (
	"strings"
	"time"
)

// Day is a weekday a menu can be published for. The restaurant only
// takes pickup orders on weekdays.
type Day string

const (
	DayMonday    Day = "Monday"
	DayTuesday   Day = "Tuesday"
	DayWednesday Day = "Wednesday"
	DayThursday  Day = "Thursday"
	DayFriday    Day = "Friday"
)

// Week selects one of the two rolling weeks menus are published for.
type Week string

const (
	WeekCurrent Week = "current"
	WeekNext    Week = "next"
)

// ValidDay reports whether day names a serving weekday.
func ValidDay(day string) bool {
	switch Day(day) {
	case DayMonday, DayTuesday, DayWednesday, DayThursday, DayFriday:
		return true
	}
	return false
}

// ValidWeek reports whether week is one of the two rolling weeks.
func ValidWeek(week string) bool {
	switch Week(week) {
	case WeekCurrent, WeekNext:
		return true
	}
	return false
}

// Menu is the published item list for one (day, week) slot.
// The compound unique index keeps at most one menu per slot.
type Menu struct {
	ID        string     `gorm:"primary_key" json:"id"`
	Day       string     `gorm:"unique_index:idx_menus_day_week" json:"day"`
	Week      string     `gorm:"unique_index:idx_menus_day_week" json:"week"`
	Items     []MenuItem `gorm:"foreignkey:MenuID" json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// MenuItem is a single dish on a published menu. Items have no identity
// of their own beyond containment in their menu.
type MenuItem struct {
	ID          uint    `gorm:"primary_key" json:"-"`
	MenuID      string  `gorm:"index" json:"-"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
}

// ValidateMenuItem validates a menu item before it is published.
func ValidateMenuItem(item *MenuItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return NewValidationError("menu item name is required")
	}
	if item.Price < 0 {
		return NewValidationError("menu item price must not be negative")
	}
	return nil
}
