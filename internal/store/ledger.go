package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"brasserie/internal/models"
)

// OrderLedger owns customer pickup orders. Every order is a frozen
// snapshot of what was selected at creation time; only its status and
// updated timestamp ever change afterwards.
type OrderLedger struct {
	db *gorm.DB
}

// NewOrderLedger creates a ledger backed by the given database handle.
func NewOrderLedger(db *gorm.DB) *OrderLedger {
	return &OrderLedger{db: db}
}

// ListAll returns every order, newest first. The descending order is a
// committed contract with the staff dashboard, not incidental.
func (l *OrderLedger) ListAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := l.db.Preload("Items", byPosition).Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListByStatus returns the orders in one triage state, newest first.
func (l *OrderLedger) ListByStatus(ctx context.Context, status string) ([]models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, models.NewValidationError("invalid order status: %s", status)
	}
	var orders []models.Order
	err := l.db.Preload("Items", byPosition).Where("status = ?", status).Order("created_at desc").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// ListByDayWeek returns the orders placed against one menu slot,
// newest first.
func (l *OrderLedger) ListByDayWeek(ctx context.Context, day, week string) ([]models.Order, error) {
	var orders []models.Order
	err := l.db.Preload("Items", byPosition).Where("day = ? AND week = ?", day, week).Order("created_at desc").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// GetByID returns a single order or ErrNotFound.
func (l *OrderLedger) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := l.db.Preload("Items", byPosition).Where("id = ?", id).First(&order).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Create validates and persists a new order with status pending. The
// caller's total price is stored verbatim; the ledger does not
// reconcile it against the line items.
func (l *OrderLedger) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := models.ValidateOrder(order); err != nil {
		return nil, err
	}

	order.ID = uuid.NewString()
	order.Status = string(models.OrderStatusPending)

	items := order.Items
	order.Items = nil

	tx := l.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	if err := tx.Create(order).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	for i := range items {
		items[i].ID = 0
		items[i].OrderID = order.ID
		if err := tx.Create(&items[i]).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	order.Items = items
	return order, nil
}

// UpdateStatus overwrites an order's triage state. Any value from the
// status set is accepted regardless of the current state; the intended
// workflow is forward-only but staff corrections are not blocked.
func (l *OrderLedger) UpdateStatus(ctx context.Context, id, status string) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, models.NewValidationError("invalid order status: %s", status)
	}

	order, err := l.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := l.db.Model(order).Update("status", status).Error; err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}

// Remove deletes an order and its line items by id. A missing id is
// treated as already satisfied.
func (l *OrderLedger) Remove(ctx context.Context, id string) error {
	tx := l.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := tx.Where("order_id = ?", id).Delete(&models.OrderLineItem{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("id = ?", id).Delete(&models.Order{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}
