package property

import "github.com/hazed32-ctrl/source-egypt-portal/internal/domain"

// PropertyRequest represents the admin input for creating or updating a
// property listing.
type PropertyRequest struct {
	Title        string  `json:"title" form:"title" binding:"required,min=3,max=255"`
	Slug         string  `json:"slug" form:"slug" binding:"omitempty,max=255"`
	City         string  `json:"city" form:"city" binding:"omitempty,max=100"`
	Area         string  `json:"area" form:"area" binding:"omitempty,max=100"`
	Price        float64 `json:"price" form:"price" binding:"omitempty,gte=0"`
	Bedrooms     int     `json:"bedrooms" form:"bedrooms" binding:"omitempty,gte=0,lte=20"`
	Bathrooms    int     `json:"bathrooms" form:"bathrooms" binding:"omitempty,gte=0,lte=20"`
	AreaSQM      float64 `json:"area_sqm" form:"area_sqm" binding:"omitempty,gte=0"`
	Finishing    string  `json:"finishing" form:"finishing" binding:"omitempty,max=50"`
	Tags         string  `json:"tags" form:"tags" binding:"omitempty,max=512"`
	Amenities    string  `json:"amenities" form:"amenities" binding:"omitempty,max=1024"`
	Description  string  `json:"description" form:"description"`
	CoverImage   string  `json:"cover_image" form:"cover_image" binding:"omitempty,max=512"`
	Developer    string  `json:"developer" form:"developer" binding:"omitempty,max=255"`
	DeliveryYear int     `json:"delivery_year" form:"delivery_year" binding:"omitempty,gte=1900,lte=2100"`
	// Published defaults to true when omitted.
	Published *bool `json:"published" form:"published"`
}

// toDomain maps the request onto a domain Property.
func (r PropertyRequest) toDomain() *domain.Property {
	published := true
	if r.Published != nil {
		published = *r.Published
	}
	return &domain.Property{
		Title:        r.Title,
		Slug:         r.Slug,
		City:         r.City,
		Area:         r.Area,
		Price:        r.Price,
		Bedrooms:     r.Bedrooms,
		Bathrooms:    r.Bathrooms,
		AreaSQM:      r.AreaSQM,
		Finishing:    r.Finishing,
		Tags:         r.Tags,
		Amenities:    r.Amenities,
		Description:  r.Description,
		CoverImage:   r.CoverImage,
		Developer:    r.Developer,
		DeliveryYear: r.DeliveryYear,
		Published:    published,
	}
}
