package lead

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hazed32-ctrl/source-egypt-portal/internal/domain"
	"github.com/hazed32-ctrl/source-egypt-portal/internal/pkg"
)

// LeadHandler handles REST API requests for the lead resource.
type LeadHandler struct {
	svc domain.LeadService
}

// NewLeadHandler creates a LeadHandler with the given service.
func NewLeadHandler(svc domain.LeadService) *LeadHandler {
	return &LeadHandler{svc: svc}
}

// Submit handles POST /api/v1/leads, the public contact form.
func (h *LeadHandler) Submit(c *gin.Context) {
	var req SubmitLeadRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	lead, err := h.svc.SubmitLead(c.Request.Context(), req.toDomain())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    lead,
	})
}

// List handles GET /api/v1/admin/leads.
func (h *LeadHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.ListLeads(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Get handles GET /api/v1/admin/leads/:id.
func (h *LeadHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	lead, err := h.svc.GetLead(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, lead)
}

// Delete handles DELETE /api/v1/admin/leads/:id.
func (h *LeadHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.DeleteLead(c.Request.Context(), id); err != nil {
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
	return uint(id), nil
}
