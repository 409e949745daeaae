package lead

import (
	"context"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/hazed32-ctrl/source-egypt-portal/internal/domain"
)

// phonePattern accepts international and local numbers: an optional
// leading +, then 7 to 15 digits with optional spaces or dashes.
var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 -]{5,18}[0-9]$`)

// leadService implements domain.LeadService.
type leadService struct {
	repo  domain.LeadRepository
	props domain.PropertyRepository
}

// NewLeadService creates a LeadService. props is used to verify that a
// lead's referenced property exists.
func NewLeadService(repo domain.LeadRepository, props domain.PropertyRepository) domain.LeadService {
	return &leadService{repo: repo, props: props}
}

// SubmitLead validates the inquiry and persists it. Validation failures
// leave nothing persisted.
func (s *leadService) SubmitLead(ctx context.Context, lead *domain.Lead) (*domain.Lead, error) {
	lead.Name = strings.TrimSpace(lead.Name)
	lead.Email = strings.TrimSpace(lead.Email)
	lead.Phone = strings.TrimSpace(lead.Phone)
	lead.Message = strings.TrimSpace(lead.Message)
	lead.Source = strings.TrimSpace(lead.Source)

	if err := validateLead(lead); err != nil {
		return nil, err
	}

	if lead.PropertyID != nil {
		if _, err := s.props.GetByID(ctx, *lead.PropertyID); err != nil {
			if domain.IsNotFound(err) {
				return nil, domain.NewAppError(domain.CodeValidation, "referenced property does not exist", nil)
			}
			return nil, err
		}
	}

	if lead.Source == "" {
		lead.Source = "website"
	}

	if err := s.repo.Create(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

func (s *leadService) GetLead(ctx context.Context, id uint) (*domain.Lead, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *leadService) ListLeads(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Lead], error) {
	return s.repo.List(ctx, req)
}

func (s *leadService) DeleteLead(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// validateLead checks the contact fields.
func validateLead(lead *domain.Lead) error {
	if lead.Name == "" {
		return domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}
	if utf8.RuneCountInString(lead.Name) < 2 {
		return domain.NewAppError(domain.CodeValidation, "name must be at least 2 characters", nil)
	}
	if lead.Email == "" {
		return domain.NewAppError(domain.CodeValidation, "email is required", nil)
	}
	if _, err := mail.ParseAddress(lead.Email); err != nil {
		return domain.NewAppError(domain.CodeValidation, "email must be a valid email address", nil)
	}
	if lead.Phone != "" && !phonePattern.MatchString(lead.Phone) {
		return domain.NewAppError(domain.CodeValidation, "phone must be a valid phone number", nil)
	}
	return nil
}
