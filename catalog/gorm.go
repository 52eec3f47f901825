package catalog

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/junaidrashid-git/nursery-store/internal/sqlutil"
	"github.com/junaidrashid-git/nursery-store/models"
)

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) List(ctx context.Context, f Filter) ([]models.Product, error) {
	query := r.db.WithContext(ctx).Model(&models.Product{})

	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		likePattern := sqlutil.Contains(s)
		query = query.Where(`name ILIKE ? ESCAPE '\' OR scientific_name ILIKE ? ESCAPE '\' OR description ILIKE ? ESCAPE '\'`,
			likePattern, likePattern, likePattern)
	}
	if f.MinPrice != nil {
		query = query.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		query = query.Where("price <= ?", *f.MaxPrice)
	}
	if f.Featured != nil {
		query = query.Where("featured = ?", *f.Featured)
	}
	if f.InStockOnly {
		query = query.Where("in_stock = ?", true)
	}

	query = query.Order(clause.OrderByColumn{Column: clause.Column{Name: f.SortColumn()}, Desc: f.Descending})

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormRepository) Get(ctx context.Context, id string) (models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, ErrNotFound
	}
	return product, err
}

func (r *GormRepository) Save(ctx context.Context, p *models.Product) (bool, error) {
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Product
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&existing, "id = ?", p.ID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			created = true
			return tx.Create(p).Error
		case err != nil:
			return err
		}
		p.CreatedAt = existing.CreatedAt
		return tx.Save(p).Error
	})
	return created, err
}

func (r *GormRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormRepository) ReplaceAll(ctx context.Context, products []models.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Product{}).Error; err != nil {
			return err
		}
		if len(products) == 0 {
			return nil
		}
		return tx.CreateInBatches(products, 100).Error
	})
}

func (r *GormRepository) CountByCategory(ctx context.Context) (map[models.Category]int64, error) {
	var rows []struct {
		Category models.Category
		Count    int64
	}
	if err := r.db.WithContext(ctx).Model(&models.Product{}).
		Select("category, count(*) as count").
		Group("category").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[models.Category]int64, len(rows))
	for _, row := range rows {
		counts[row.Category] = row.Count
	}
	return counts, nil
}
