package lead

import (
	"context"
	"errors"

	"github.com/hazed32-ctrl/source-egypt-portal/internal/domain"
	"github.com/hazed32-ctrl/source-egypt-portal/internal/pkg"
	"gorm.io/gorm"
)

// Allowed fields for sorting and filtering in List queries.
var (
	allowedSortFields   = []string{"id", "name", "email", "source", "created_at"}
	allowedFilterFields = []string{"name", "email", "source", "property_id"}
)

// leadRepository implements domain.LeadRepository using GORM.
type leadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a LeadRepository backed by the given GORM
// database.
func NewLeadRepository(db *gorm.DB) domain.LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) Create(ctx context.Context, lead *domain.Lead) error {
	if err := r.db.WithContext(ctx).Create(lead).Error; err != nil {
		return mapError(err)
	}
	return nil
}

func (r *leadRepository) GetByID(ctx context.Context, id uint) (*domain.Lead, error) {
	var lead domain.Lead
	if err := r.db.WithContext(ctx).First(&lead, id).Error; err != nil {
		return nil, mapError(err)
	}
	return &lead, nil
}

// List returns a paginated, sorted, and filtered list of leads.
func (r *leadRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Lead], error) {
	var total int64
	base := r.db.WithContext(ctx).Model(&domain.Lead{}).
		Scopes(pkg.Filter(req, allowedFilterFields))

	if err := base.Count(&total).Error; err != nil {
		return nil, mapError(err)
	}

	var leads []domain.Lead
	if err := base.Scopes(
		pkg.Paginate(req),
		pkg.Sort(req, allowedSortFields),
	).Find(&leads).Error; err != nil {
		return nil, mapError(err)
	}

	return pkg.NewPageResult(leads, total, req), nil
}

func (r *leadRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Lead{}, id)
	if result.Error != nil {
		return mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// mapError converts GORM errors to domain errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return domain.NewAppError(domain.CodeInternal, "database error", err)
}
