package domain

import "context"

// Sort orders accepted by property list queries.
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortAreaAsc   = "area_asc"
	SortAreaDesc  = "area_desc"
)

// ValidSort reports whether s is a recognized property sort order.
func ValidSort(s string) bool {
	switch s {
	case SortNewest, SortPriceAsc, SortPriceDesc, SortAreaAsc, SortAreaDesc:
		return true
	}
	return false
}

// Property represents a listed unit: an apartment, villa, or commercial
// space marketed on the portal.
type Property struct {
	BaseModel
	Title        string  `gorm:"size:255;not null" json:"title"`
	Slug         string  `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	City         string  `gorm:"size:100;index" json:"city"`
	Area         string  `gorm:"size:100;index" json:"area"`
	Price        float64 `gorm:"index" json:"price"`
	Bedrooms     int     `json:"bedrooms"`
	Bathrooms    int     `json:"bathrooms"`
	AreaSQM      float64 `json:"area_sqm"`
	Finishing    string  `gorm:"size:50" json:"finishing"`
	Tags         string  `gorm:"size:512" json:"tags"`      // comma-separated
	Amenities    string  `gorm:"size:1024" json:"amenities"` // comma-separated
	Description  string  `gorm:"type:text" json:"description"`
	CoverImage   string  `gorm:"size:512" json:"cover_image"`
	Developer    string  `gorm:"size:255" json:"developer"`
	DeliveryYear int     `json:"delivery_year"`
	Published    bool    `gorm:"index" json:"published"`
}

// PropertyFilter is the structured representation of all active
// search/filter/sort criteria for the listing endpoint. Every field is
// independently optional; the zero value of a pointer/slice field means
// "no constraint".
type PropertyFilter struct {
	Search    string
	City      string
	Area      string
	MinPrice  *float64
	MaxPrice  *float64
	Bedrooms  *int
	Bathrooms *int
	MinArea   *float64
	MaxArea   *float64
	Finishing string
	Tags      []string
	SortBy    string // one of the Sort* constants; empty means SortNewest
}

// PropertyRepository defines the data access interface for properties.
type PropertyRepository interface {
	Create(ctx context.Context, p *Property) error
	GetByID(ctx context.Context, id uint) (*Property, error)
	GetBySlug(ctx context.Context, slug string) (*Property, error)
	GetByIDs(ctx context.Context, ids []uint) ([]Property, error)
	List(ctx context.Context, filter PropertyFilter, page PageRequest) (*PageResult[Property], error)
	Update(ctx context.Context, p *Property) error
	Delete(ctx context.Context, id uint) error
}

// PropertyService defines the business logic interface for properties.
type PropertyService interface {
	CreateProperty(ctx context.Context, p *Property) (*Property, error)
	GetProperty(ctx context.Context, id uint) (*Property, error)
	GetPropertyBySlug(ctx context.Context, slug string) (*Property, error)
	ListProperties(ctx context.Context, filter PropertyFilter, page PageRequest) (*PageResult[Property], error)
	UpdateProperty(ctx context.Context, id uint, p *Property) (*Property, error)
	DeleteProperty(ctx context.Context, id uint) error
}
