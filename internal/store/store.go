// Package store holds the three persistent stores behind the gateway:
// the menu catalog, the order ledger, and the suggestion box. Each
// store owns its entities outright; stores never call each other.
package store

import (
	"errors"

	"github.com/jinzhu/gorm"
)

// ErrNotFound marks an id lookup miss on a targeted get or update.
var ErrNotFound = errors.New("record not found")

// byPosition preloads child rows in insertion order so item lists come
// back in the order they were submitted.
func byPosition(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}
