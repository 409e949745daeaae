package property

import (
	"context"
	"errors"
	"strings"

	"github.com/hazed32-ctrl/source-egypt-portal/internal/domain"
	"github.com/hazed32-ctrl/source-egypt-portal/internal/pkg"
	"gorm.io/gorm"
)

// sortClauses maps the public sort orders to ORDER BY clauses. Anything
// outside this map sorts as newest.
var sortClauses = map[string]string{
	domain.SortNewest:    "created_at DESC, id DESC",
	domain.SortPriceAsc:  "price ASC, id ASC",
	domain.SortPriceDesc: "price DESC, id ASC",
	domain.SortAreaAsc:   "area_sqm ASC, id ASC",
	domain.SortAreaDesc:  "area_sqm DESC, id ASC",
}

// propertyRepository implements domain.PropertyRepository using GORM.
type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a PropertyRepository backed by the given
// GORM database.
func NewPropertyRepository(db *gorm.DB) domain.PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) Create(ctx context.Context, p *domain.Property) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return mapError(err)
	}
	return nil
}

func (r *propertyRepository) GetByID(ctx context.Context, id uint) (*domain.Property, error) {
	var p domain.Property
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

func (r *propertyRepository) GetBySlug(ctx context.Context, slug string) (*domain.Property, error) {
	var p domain.Property
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&p).Error; err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

// GetByIDs fetches the published properties with the given IDs. Missing
// or unpublished IDs are simply absent from the result; callers decide
// whether that is an error. Result order follows the ids argument, not
// the database.
func (r *propertyRepository) GetByIDs(ctx context.Context, ids []uint) ([]domain.Property, error) {
	if len(ids) == 0 {
		return []domain.Property{}, nil
	}

	var rows []domain.Property
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Where("published = ?", true).
		Find(&rows).Error; err != nil {
		return nil, mapError(err)
	}

	byID := make(map[uint]domain.Property, len(rows))
	for _, p := range rows {
		byID[p.ID] = p
	}

	ordered := make([]domain.Property, 0, len(rows))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}

// List returns a page of published properties matching the filter,
// sorted per the filter's sort order, with the total match count.
// Unpublished drafts never appear in listings.
func (r *propertyRepository) List(ctx context.Context, filter domain.PropertyFilter, page domain.PageRequest) (*domain.PageResult[domain.Property], error) {
	base := r.db.WithContext(ctx).Model(&domain.Property{}).
		Where("published = ?", true).
		Scopes(filterScope(filter))

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, mapError(err)
	}

	var items []domain.Property
	if err := base.Scopes(
		pkg.Paginate(page),
		orderScope(filter.SortBy),
	).Find(&items).Error; err != nil {
		return nil, mapError(err)
	}

	return pkg.NewPageResult(items, total, page), nil
}

// Update persists all mutable fields. The existence check and the write
// run in one transaction so a concurrent delete cannot turn the save
// into an insert.
func (r *propertyRepository) Update(ctx context.Context, p *domain.Property) error {
	err := pkg.WithTx(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		var existing domain.Property
		if err := tx.Select("id").First(&existing, p.ID).Error; err != nil {
			return err
		}
		return tx.Save(p).Error
	})
	return mapError(err)
}

func (r *propertyRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Property{}, id)
	if result.Error != nil {
		return mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// filterScope applies each filter constraint independently; absent
// fields impose no condition.
func filterScope(f domain.PropertyFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Search != "" {
			like := "%" + f.Search + "%"
			db = db.Where("title LIKE ? OR description LIKE ?", like, like)
		}
		if f.City != "" {
			db = db.Where("city = ?", f.City)
		}
		if f.Area != "" {
			db = db.Where("area = ?", f.Area)
		}
		if f.MinPrice != nil {
			db = db.Where("price >= ?", *f.MinPrice)
		}
		if f.MaxPrice != nil {
			db = db.Where("price <= ?", *f.MaxPrice)
		}
		if f.Bedrooms != nil {
			db = db.Where("bedrooms = ?", *f.Bedrooms)
		}
		if f.Bathrooms != nil {
			db = db.Where("bathrooms = ?", *f.Bathrooms)
		}
		if f.MinArea != nil {
			db = db.Where("area_sqm >= ?", *f.MinArea)
		}
		if f.MaxArea != nil {
			db = db.Where("area_sqm <= ?", *f.MaxArea)
		}
		if f.Finishing != "" {
			db = db.Where("finishing = ?", f.Finishing)
		}
		// Tags are stored comma-separated; every requested tag must be
		// present. Padding with commas avoids substring false positives
		// ("pool" matching "whirlpool").
		for _, tag := range f.Tags {
			db = db.Where("(',' || tags || ',') LIKE ?", "%,"+tag+",%")
		}
		return db
	}
}

// orderScope maps a sort order to its whitelisted ORDER BY clause.
func orderScope(sortBy string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		clause, ok := sortClauses[sortBy]
		if !ok {
			clause = sortClauses[domain.SortNewest]
		}
		return db.Order(clause)
	}
}

// mapError converts GORM errors to domain errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
		return domain.NewAppError(domain.CodeAlreadyExists, "already exists", err)
	}
	return domain.NewAppError(domain.CodeInternal, "database error", err)
}

// isDuplicateKeyError detects unique constraint violations by examining the
// error message. Not all GORM dialectors translate driver-level errors to
// gorm.ErrDuplicatedKey (e.g. the pure-Go SQLite driver).
func isDuplicateKeyError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}
