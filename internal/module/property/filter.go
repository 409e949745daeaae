package property

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/hazed32-ctrl/source-egypt-portal/internal/domain"
)

// Query parameter names recognized by the listing filter codec.
// Unknown parameters are ignored on decode.
const (
	paramSearch    = "search"
	paramCity      = "city"
	paramArea      = "area"
	paramMinPrice  = "minPrice"
	paramMaxPrice  = "maxPrice"
	paramBedrooms  = "bedrooms"
	paramBathrooms = "bathrooms"
	paramMinArea   = "minArea"
	paramMaxArea   = "maxArea"
	paramFinishing = "finishing"
	paramTags      = "tags"
	paramSortBy    = "sortBy"
)

// DecodeFilter parses listing query parameters into a PropertyFilter.
// Each known key is parsed with its type; unparsable numbers are treated
// as unset, an unrecognized sortBy falls back to "newest", and unknown
// keys are ignored.
func DecodeFilter(values url.Values) domain.PropertyFilter {
	f := domain.PropertyFilter{
		Search:    strings.TrimSpace(values.Get(paramSearch)),
		City:      strings.TrimSpace(values.Get(paramCity)),
		Area:      strings.TrimSpace(values.Get(paramArea)),
		Finishing: strings.TrimSpace(values.Get(paramFinishing)),
		MinPrice:  parseFloat(values.Get(paramMinPrice)),
		MaxPrice:  parseFloat(values.Get(paramMaxPrice)),
		Bedrooms:  parseInt(values.Get(paramBedrooms)),
		Bathrooms: parseInt(values.Get(paramBathrooms)),
		MinArea:   parseFloat(values.Get(paramMinArea)),
		MaxArea:   parseFloat(values.Get(paramMaxArea)),
		Tags:      splitTags(values.Get(paramTags)),
	}

	sortBy := values.Get(paramSortBy)
	if !domain.ValidSort(sortBy) {
		sortBy = domain.SortNewest
	}
	f.SortBy = sortBy

	return f
}

// EncodeFilter serializes a PropertyFilter into canonical query
// parameters: unset fields and the default sort order are omitted,
// numbers are rendered as plain decimal strings, and tags are joined
// by comma. The output of EncodeFilter decodes back to the same filter.
func EncodeFilter(f domain.PropertyFilter) url.Values {
	values := url.Values{}

	setString(values, paramSearch, f.Search)
	setString(values, paramCity, f.City)
	setString(values, paramArea, f.Area)
	setFloat(values, paramMinPrice, f.MinPrice)
	setFloat(values, paramMaxPrice, f.MaxPrice)
	setInt(values, paramBedrooms, f.Bedrooms)
	setInt(values, paramBathrooms, f.Bathrooms)
	setFloat(values, paramMinArea, f.MinArea)
	setFloat(values, paramMaxArea, f.MaxArea)
	setString(values, paramFinishing, f.Finishing)

	if len(f.Tags) > 0 {
		values.Set(paramTags, strings.Join(f.Tags, ","))
	}
	if f.SortBy != "" && f.SortBy != domain.SortNewest {
		values.Set(paramSortBy, f.SortBy)
	}

	return values
}

// FilterSignature returns a stable string identity for a filter, used to
// detect filter changes in the listing feed.
func FilterSignature(f domain.PropertyFilter) string {
	return EncodeFilter(f).Encode()
}

func parseFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

// splitTags splits a comma-separated tag list, dropping empty entries.
func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			tags = append(tags, p)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}

func setString(values url.Values, key, v string) {
	if v != "" {
		values.Set(key, v)
	}
}

func setFloat(values url.Values, key string, v *float64) {
	if v != nil {
		values.Set(key, strconv.FormatFloat(*v, 'f', -1, 64))
	}
}

func setInt(values url.Values, key string, v *int) {
	if v != nil {
		values.Set(key, strconv.Itoa(*v))
	}
}
