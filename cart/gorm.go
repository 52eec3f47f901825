package cart

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/junaidrashid-git/nursery-store/models"
)

// GormPersister stores one row per session in the carts table.
type GormPersister struct {
	db *gorm.DB
}

func NewGormPersister(db *gorm.DB) *GormPersister {
	return &GormPersister{db: db}
}

func (g *GormPersister) Load(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	var cart models.Cart
	err := g.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return cart.Items, nil
}

func (g *GormPersister) Save(ctx context.Context, sessionID string, items []models.CartItem) error {
	if items == nil {
		items = []models.CartItem{}
	}
	cart := models.Cart{SessionID: sessionID, Items: items}
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"items", "updated_at"}),
	}).Create(&cart).Error
}

func (g *GormPersister) Delete(ctx context.Context, sessionID string) error {
	return g.db.WithContext(ctx).Where("session_id = ?", sessionID).Delete(&models.Cart{}).Error
}
