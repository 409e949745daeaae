package domain

import "context"

// Lead represents a sales inquiry captured from the public site:
// a contact form submission, optionally tied to a specific property.
type Lead struct {
	BaseModel
	Name       string `gorm:"size:100;not null" json:"name"`
	Email      string `gorm:"size:255;not null" json:"email"`
	Phone      string `gorm:"size:32" json:"phone"`
	Message    string `gorm:"type:text" json:"message"`
	PropertyID *uint  `gorm:"index" json:"property_id,omitempty"`
	Source     string `gorm:"size:50;index" json:"source"`
}

// LeadRepository defines the data access interface for leads.
type LeadRepository interface {
	Create(ctx context.Context, lead *Lead) error
	GetByID(ctx context.Context, id uint) (*Lead, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Lead], error)
	Delete(ctx context.Context, id uint) error
}

// LeadService defines the business logic interface for leads.
type LeadService interface {
	SubmitLead(ctx context.Context, lead *Lead) (*Lead, error)
	GetLead(ctx context.Context, id uint) (*Lead, error)
	ListLeads(ctx context.Context, req PageRequest) (*PageResult[Lead], error)
	DeleteLead(ctx context.Context, id uint) error
}
