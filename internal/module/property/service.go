package property

import (
	"context"
	"strings"
	"unicode"

	"github.com/hazed32-ctrl/source-egypt-portal/internal/domain"
)

// propertyService implements domain.PropertyService.
type propertyService struct {
	repo domain.PropertyRepository
}

// NewPropertyService creates a PropertyService with the given repository.
func NewPropertyService(repo domain.PropertyRepository) domain.PropertyService {
	return &propertyService{repo: repo}
}

// CreateProperty validates the property, derives a slug from the title
// when none is supplied, and persists it.
func (s *propertyService) CreateProperty(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	normalize(p)
	if err := validateProperty(p); err != nil {
		return nil, err
	}
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetProperty returns the published property with the given ID.
// Unpublished drafts read as not found on the public detail path.
func (s *propertyService) GetProperty(ctx context.Context, id uint) (*domain.Property, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.Published {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// GetPropertyBySlug returns the published property with the given slug,
// with the same draft hiding as GetProperty.
func (s *propertyService) GetPropertyBySlug(ctx context.Context, slug string) (*domain.Property, error) {
	p, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !p.Published {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// ListProperties returns a page of properties matching the filter. An
// unrecognized sort order is normalized to newest before hitting the
// repository.
func (s *propertyService) ListProperties(ctx context.Context, filter domain.PropertyFilter, page domain.PageRequest) (*domain.PageResult[domain.Property], error) {
	if !domain.ValidSort(filter.SortBy) {
		filter.SortBy = domain.SortNewest
	}
	return s.repo.List(ctx, filter, page)
}

// UpdateProperty loads the stored property, overwrites its mutable
// fields from p, and persists the result.
func (s *propertyService) UpdateProperty(ctx context.Context, id uint, p *domain.Property) (*domain.Property, error) {
	normalize(p)
	if err := validateProperty(p); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Title = p.Title
	if p.Slug != "" {
		existing.Slug = p.Slug
	}
	existing.City = p.City
	existing.Area = p.Area
	existing.Price = p.Price
	existing.Bedrooms = p.Bedrooms
	existing.Bathrooms = p.Bathrooms
	existing.AreaSQM = p.AreaSQM
	existing.Finishing = p.Finishing
	existing.Tags = p.Tags
	existing.Amenities = p.Amenities
	existing.Description = p.Description
	existing.CoverImage = p.CoverImage
	existing.Developer = p.Developer
	existing.DeliveryYear = p.DeliveryYear
	existing.Published = p.Published

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *propertyService) DeleteProperty(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// normalize trims the free-text fields in place.
func normalize(p *domain.Property) {
	p.Title = strings.TrimSpace(p.Title)
	p.Slug = strings.TrimSpace(p.Slug)
	p.City = strings.TrimSpace(p.City)
	p.Area = strings.TrimSpace(p.Area)
	p.Finishing = strings.TrimSpace(p.Finishing)
	p.Developer = strings.TrimSpace(p.Developer)
}

// validateProperty checks the cross-field rules the binding tags cannot
// express.
func validateProperty(p *domain.Property) error {
	if p.Title == "" {
		return domain.NewAppError(domain.CodeValidation, "title is required", nil)
	}
	if len(p.Title) < 3 {
		return domain.NewAppError(domain.CodeValidation, "title must be at least 3 characters", nil)
	}
	if p.Price < 0 {
		return domain.NewAppError(domain.CodeValidation, "price must not be negative", nil)
	}
	if p.Bedrooms < 0 || p.Bathrooms < 0 {
		return domain.NewAppError(domain.CodeValidation, "room counts must not be negative", nil)
	}
	if p.AreaSQM < 0 {
		return domain.NewAppError(domain.CodeValidation, "area must not be negative", nil)
	}
	return nil
}

// Slugify converts a title to a URL slug: lowercase alphanumeric runs
// joined by single hyphens.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
