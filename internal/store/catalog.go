package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"brasserie/internal/models"
)

// PublishResult reports whether a publish created a new menu or
// replaced an existing one for the same slot.
type PublishResult string

const (
	PublishCreated  PublishResult = "created"
	PublishReplaced PublishResult = "replaced"
)

// MenuCatalog owns published menus, at most one per (day, week) slot.
type MenuCatalog struct {
	db *gorm.DB
}

// NewMenuCatalog creates a catalog backed by the given database handle.
func NewMenuCatalog(db *gorm.DB) *MenuCatalog {
	return &MenuCatalog{db: db}
}

// ListAll returns every published menu.
func (c *MenuCatalog) ListAll(ctx context.Context) ([]models.Menu, error) {
	var menus []models.Menu
	if err := c.db.Preload("Items", byPosition).Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

// ListByWeek returns the menus published for one rolling week.
func (c *MenuCatalog) ListByWeek(ctx context.Context, week string) ([]models.Menu, error) {
	if !models.ValidWeek(week) {
		return nil, models.NewValidationError("invalid week: %s", week)
	}
	var menus []models.Menu
	if err := c.db.Preload("Items", byPosition).Where("week = ?", week).Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

// GetByDayWeek returns the single menu at the given slot, or
// ErrNotFound if nothing has been published there.
func (c *MenuCatalog) GetByDayWeek(ctx context.Context, day, week string) (*models.Menu, error) {
	var menu models.Menu
	err := c.db.Preload("Items", byPosition).Where("day = ? AND week = ?", day, week).First(&menu).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

// Publish upserts the menu for a slot. An existing menu has its item
// list replaced wholesale and its updated timestamp refreshed; an empty
// slot gets a new menu. The result reports which of the two happened.
func (c *MenuCatalog) Publish(ctx context.Context, day, week string, items []models.MenuItem) (*models.Menu, PublishResult, error) {
	if !models.ValidDay(day) {
		return nil, "", models.NewValidationError("invalid day: %s", day)
	}
	if !models.ValidWeek(week) {
		return nil, "", models.NewValidationError("invalid week: %s", week)
	}
	for i := range items {
		if err := models.ValidateMenuItem(&items[i]); err != nil {
			return nil, "", err
		}
	}

	var existing models.Menu
	err := c.db.Where("day = ? AND week = ?", day, week).First(&existing).Error
	switch {
	case gorm.IsRecordNotFoundError(err):
		menu := models.Menu{ID: uuid.NewString(), Day: day, Week: week}
		if err := c.createMenu(&menu, items); err != nil {
			return nil, "", err
		}
		return &menu, PublishCreated, nil
	case err != nil:
		return nil, "", err
	}

	if err := c.replaceItems(&existing, items); err != nil {
		return nil, "", err
	}
	return &existing, PublishReplaced, nil
}

// Remove deletes a menu and its items by id. Deleting an id that does
// not exist is not an error.
func (c *MenuCatalog) Remove(ctx context.Context, id string) error {
	tx := c.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := tx.Where("menu_id = ?", id).Delete(&models.MenuItem{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("id = ?", id).Delete(&models.Menu{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

func (c *MenuCatalog) createMenu(menu *models.Menu, items []models.MenuItem) error {
	tx := c.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := tx.Create(menu).Error; err != nil {
		tx.Rollback()
		return err
	}
	for i := range items {
		items[i].ID = 0
		items[i].MenuID = menu.ID
		if err := tx.Create(&items[i]).Error; err != nil {
			tx.Rollback()
			return err
		}
	}
	if err := tx.Commit().Error; err != nil {
		return err
	}
	menu.Items = items
	return nil
}

func (c *MenuCatalog) replaceItems(menu *models.Menu, items []models.MenuItem) error {
	tx := c.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := tx.Where("menu_id = ?", menu.ID).Delete(&models.MenuItem{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	for i := range items {
		items[i].ID = 0
		items[i].MenuID = menu.ID
		if err := tx.Create(&items[i]).Error; err != nil {
			tx.Rollback()
			return err
		}
	}
	// Save bumps updated_at even when no other column changed.
	if err := tx.Save(menu).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit().Error; err != nil {
		return err
	}
	menu.Items = items
	return nil
}
