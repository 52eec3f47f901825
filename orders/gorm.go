package orders

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/junaidrashid-git/nursery-store/internal/sqlutil"
	"github.com/junaidrashid-git/nursery-store/models"
)

// GormRepository stores orders and their step log in Postgres. The *gorm.DB
// must be opened with TranslateError so unique violations surface as
// gorm.ErrDuplicatedKey.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Create(ctx context.Context, order *models.Order) error {
	err := r.db.WithContext(ctx).Create(order).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateSession
	}
	return err
}

func (r *GormRepository) FindBySession(ctx context.Context, sessionID string) (models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&order).Error
	return order, notFound(err)
}

func (r *GormRepository) Get(ctx context.Context, id uint) (models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).First(&order, id).Error
	return order, notFound(err)
}

func (r *GormRepository) Update(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *GormRepository) List(ctx context.Context, q ListQuery) ([]models.Order, int64, error) {
	q = q.Normalize()
	filtered := func() *gorm.DB {
		tx := r.db.WithContext(ctx).Model(&models.Order{})
		if q.Status != "" {
			tx = tx.Where("order_status = ?", q.Status)
		}
		if search := strings.TrimSpace(q.Search); search != "" {
			like := sqlutil.Contains(strings.ToLower(search))
			tx = tx.Where(`LOWER(customer_email) LIKE ? ESCAPE '\' OR LOWER(customer_name) LIKE ? ESCAPE '\'`, like, like)
		}
		return tx
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var orders []models.Order
	err := filtered().
		Order("created_at DESC").
		Offset(q.Offset()).
		Limit(q.Limit).
		Find(&orders).Error
	return orders, total, err
}

func (r *GormRepository) Stats(ctx context.Context) (Stats, error) {
	stats := Stats{ByStatus: make(map[models.OrderStatus]int64)}
	db := r.db.WithContext(ctx).Model(&models.Order{})

	var rows []struct {
		Status  models.OrderStatus
		Count   int64
		Revenue int64
	}
	err := db.Select("order_status AS status, COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS revenue").
		Group("order_status").
		Scan(&rows).Error
	if err != nil {
		return Stats{}, err
	}
	for _, row := range rows {
		stats.ByStatus[row.Status] = row.Count
		stats.TotalOrders += row.Count
		stats.Revenue += row.Revenue
	}
	return stats, nil
}

func (r *GormRepository) RecordStep(ctx context.Context, step models.OrderStep) error {
	return r.db.WithContext(ctx).Create(&step).Error
}

func (r *GormRepository) StepSucceeded(ctx context.Context, sessionID string, step models.StepName) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.OrderStep{}).
		Where("session_id = ? AND step = ? AND outcome = ?", sessionID, step, models.StepSucceeded).
		Count(&n).Error
	return n > 0, err
}

func (r *GormRepository) Steps(ctx context.Context, sessionID string) ([]models.OrderStep, error) {
	var steps []models.OrderStep
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id").
		Find(&steps).Error
	return steps, err
}

func (r *GormRepository) ClaimStep(ctx context.Context, claim models.StepClaim, staleBefore time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}, {Name: "step"}},
		DoUpdates: clause.Assignments(map[string]any{"claimed_at": claim.ClaimedAt}),
		Where: clause.Where{Exprs: []clause.Expression{
			clause.Lt{Column: clause.Column{Table: "step_claims", Name: "claimed_at"}, Value: staleBefore},
		}},
	}).Create(&claim)
	return res.RowsAffected == 1, res.Error
}

func (r *GormRepository) ReleaseStep(ctx context.Context, sessionID string, step models.StepName) error {
	return r.db.WithContext(ctx).
		Where("session_id = ? AND step = ?", sessionID, step).
		Delete(&models.StepClaim{}).Error
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
