package property

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hazed32-ctrl/source-egypt-portal/internal/domain"
	"github.com/hazed32-ctrl/source-egypt-portal/internal/feed"
	"github.com/hazed32-ctrl/source-egypt-portal/internal/pkg"
)

// exportPageSize is the page size the export endpoint drains the listing
// feed with.
const exportPageSize = 100

// PropertyHandler handles REST API requests for the property resource.
type PropertyHandler struct {
	svc domain.PropertyService
}

// NewPropertyHandler creates a PropertyHandler with the given service.
func NewPropertyHandler(svc domain.PropertyService) *PropertyHandler {
	return &PropertyHandler{svc: svc}
}

// List handles GET /api/v1/properties. Filter criteria come from the
// query string (see DecodeFilter); page and page_size control pagination.
func (h *PropertyHandler) List(c *gin.Context) {
	filter := DecodeFilter(c.Request.URL.Query())
	page := pkg.ParsePageRequest(c)

	result, err := h.svc.ListProperties(c.Request.Context(), filter, page)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Get handles GET /api/v1/properties/:id. The parameter is a numeric ID
// or, failing that, a slug.
func (h *PropertyHandler) Get(c *gin.Context) {
	param := c.Param("id")

	if id, err := strconv.ParseUint(param, 10, 64); err == nil && id > 0 {
		p, err := h.svc.GetProperty(c.Request.Context(), uint(id))
		if err != nil {
			pkg.Error(c, err)
			return
		}
		pkg.Success(c, p)
		return
	}

	p, err := h.svc.GetPropertyBySlug(c.Request.Context(), param)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, p)
}

// Export handles GET /api/v1/properties/export: it drains every listing
// page for the active filter into one de-duplicated result set.
func (h *PropertyHandler) Export(c *gin.Context) {
	filter := DecodeFilter(c.Request.URL.Query())

	paginator := feed.New(
		func(ctx context.Context, _ string, page int) (feed.Page[domain.Property], error) {
			result, err := h.svc.ListProperties(ctx, filter, domain.PageRequest{
				Page:     page,
				PageSize: exportPageSize,
			})
			if err != nil {
				return feed.Page[domain.Property]{}, err
			}
			return feed.Page[domain.Property]{
				Items:      result.Items,
				TotalPages: result.TotalPages,
			}, nil
		},
		func(p domain.Property) uint { return p.ID },
	)
	paginator.Reset(FilterSignature(filter))

	items, err := paginator.Drain(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, gin.H{
		"count": len(items),
		"items": items,
	})
}

// Create handles POST /api/v1/admin/properties.
func (h *PropertyHandler) Create(c *gin.Context) {
	var req PropertyRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	created, err := h.svc.CreateProperty(c.Request.Context(), req.toDomain())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    created,
	})
}

// Update handles PUT /api/v1/admin/properties/:id.
func (h *PropertyHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req PropertyRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	updated, err := h.svc.UpdateProperty(c.Request.Context(), id, req.toDomain())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, updated)
}

// Delete handles DELETE /api/v1/admin/properties/:id.
func (h *PropertyHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.DeleteProperty(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}

// parseID extracts and validates the "id" URL parameter.
func parseID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id: %s", idStr)
	}
	if id > uint64(^uint(0)) {
		return 0, fmt.Errorf("invalid id: %s", idStr)
	}
	return uint(id), nil
}
