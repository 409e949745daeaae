package lead

import "github.com/hazed32-ctrl/source-egypt-portal/internal/domain"

// SubmitLeadRequest represents the public contact-form input.
type SubmitLeadRequest struct {
	Name       string `json:"name" form:"name" binding:"required,min=2,max=100"`
	Email      string `json:"email" form:"email" binding:"required,email"`
	Phone      string `json:"phone" form:"phone" binding:"omitempty,max=32"`
	Message    string `json:"message" form:"message" binding:"omitempty,max=2000"`
	PropertyID *uint  `json:"property_id" form:"property_id" binding:"omitempty,gt=0"`
	Source     string `json:"source" form:"source" binding:"omitempty,max=50"`
}

// toDomain maps the request onto a domain Lead.
func (r SubmitLeadRequest) toDomain() *domain.Lead {
	return &domain.Lead{
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Message:    r.Message,
		PropertyID: r.PropertyID,
		Source:     r.Source,
	}
}
