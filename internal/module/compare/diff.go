package compare

import (
	"strconv"
	"strings"

	"github.com/hazed32-ctrl/source-egypt-portal/internal/domain"
)

// Placeholder is rendered for attributes a property has no value for.
// A placeholder still takes part in the difference check.
const Placeholder = "—"

// DiffRow is one comparison-table row for a single attribute: the
// display value per compared property and whether the values differ.
type DiffRow struct {
	Field   string   `json:"field"`
	Label   string   `json:"label"`
	Values  []string `json:"values"`
	Differs bool     `json:"differs"`
}

// ComparisonResult is the full field-by-field diff of the compared
// properties.
type ComparisonResult struct {
	Properties []domain.Property `json:"properties"`
	Rows       []DiffRow         `json:"rows"`
}

// diffField declares one compared attribute and how to render it.
type diffField struct {
	field string
	label string
	value func(p *domain.Property) string
}

// comparedFields lists the attributes shown in the comparison table, in
// display order.
var comparedFields = []diffField{
	{"price", "Price", func(p *domain.Property) string {
		if p.Price == 0 {
			return ""
		}
		return strconv.FormatFloat(p.Price, 'f', -1, 64)
	}},
	{"bedrooms", "Bedrooms", func(p *domain.Property) string {
		if p.Bedrooms == 0 {
			return ""
		}
		return strconv.Itoa(p.Bedrooms)
	}},
	{"bathrooms", "Bathrooms", func(p *domain.Property) string {
		if p.Bathrooms == 0 {
			return ""
		}
		return strconv.Itoa(p.Bathrooms)
	}},
	{"area_sqm", "Area (sqm)", func(p *domain.Property) string {
		if p.AreaSQM == 0 {
			return ""
		}
		return strconv.FormatFloat(p.AreaSQM, 'f', -1, 64)
	}},
	{"city", "City", func(p *domain.Property) string { return p.City }},
	{"area", "District", func(p *domain.Property) string { return p.Area }},
	{"finishing", "Finishing", func(p *domain.Property) string { return p.Finishing }},
	{"developer", "Developer", func(p *domain.Property) string { return p.Developer }},
	{"delivery_year", "Delivery Year", func(p *domain.Property) string {
		if p.DeliveryYear == 0 {
			return ""
		}
		return strconv.Itoa(p.DeliveryYear)
	}},
	{"amenities", "Amenities", func(p *domain.Property) string { return p.Amenities }},
}

// BuildDiff produces one DiffRow per compared attribute. A row is
// flagged when the normalized values are not all equal; normalization
// is trim plus case-fold, with no numeric tolerance.
func BuildDiff(props []domain.Property) []DiffRow {
	rows := make([]DiffRow, 0, len(comparedFields))
	for _, f := range comparedFields {
		row := DiffRow{Field: f.field, Label: f.label}
		for i := range props {
			v := strings.TrimSpace(f.value(&props[i]))
			if v == "" {
				v = Placeholder
			}
			row.Values = append(row.Values, v)
		}
		row.Differs = differs(row.Values)
		rows = append(rows, row)
	}
	return rows
}

// differs reports whether the normalized values are not all equal.
// Fewer than two values never differ.
func differs(values []string) bool {
	if len(values) < 2 {
		return false
	}
	first := normalize(values[0])
	for _, v := range values[1:] {
		if normalize(v) != first {
			return true
		}
	}
	return false
}

func normalize(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
