package compare

import (
	"context"
	"errors"

	"github.com/hazed32-ctrl/source-egypt-portal/internal/domain"
	"gorm.io/gorm"
)

// compareSessionRepository implements domain.CompareSessionRepository
// using GORM.
type compareSessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a CompareSessionRepository backed by the
// given GORM database.
func NewSessionRepository(db *gorm.DB) domain.CompareSessionRepository {
	return &compareSessionRepository{db: db}
}

// Save upserts the session keyed by its token.
func (r *compareSessionRepository) Save(ctx context.Context, session *domain.CompareSession) error {
	var existing domain.CompareSession
	err := r.db.WithContext(ctx).Where("token = ?", session.Token).First(&existing).Error
	switch {
	case err == nil:
		if err := r.db.WithContext(ctx).Model(&existing).Update("items", session.Items).Error; err != nil {
			return mapError(err)
		}
		session.ID = existing.ID
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
			return mapError(err)
		}
		return nil
	default:
		return mapError(err)
	}
}

func (r *compareSessionRepository) GetByToken(ctx context.Context, token string) (*domain.CompareSession, error) {
	var session domain.CompareSession
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&session).Error; err != nil {
		return nil, mapError(err)
	}
	return &session, nil
}

func (r *compareSessionRepository) Delete(ctx context.Context, token string) error {
	result := r.db.WithContext(ctx).Where("token = ?", token).Delete(&domain.CompareSession{})
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
