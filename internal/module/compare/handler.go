package compare

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hazed32-ctrl/source-egypt-portal/internal/domain"
	"github.com/hazed32-ctrl/source-egypt-portal/internal/pkg"
)

// SessionHeader carries the comparison session token. The server issues
// a token on the first write and the client echoes it on subsequent
// requests.
const SessionHeader = "X-Compare-Session"

// CompareHandler handles REST API requests for the comparison feature.
type CompareHandler struct {
	svc Service
}

// NewHandler creates a CompareHandler with the given service.
func NewHandler(svc Service) *CompareHandler {
	return &CompareHandler{svc: svc}
}

// GetSelection handles GET /api/v1/compare/selection.
func (h *CompareHandler) GetSelection(c *gin.Context) {
	sel, err := h.svc.GetSelection(c.Request.Context(), c.GetHeader(SessionHeader))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	h.respond(c, sel)
}

// AddToSelection handles POST /api/v1/compare/selection.
func (h *CompareHandler) AddToSelection(c *gin.Context) {
	var req AddSelectionRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	sel, err := h.svc.AddToSelection(c.Request.Context(), c.GetHeader(SessionHeader), req.PropertyID)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	h.respond(c, sel)
}

// ReplaceInSelection handles PUT /api/v1/compare/selection.
func (h *CompareHandler) ReplaceInSelection(c *gin.Context) {
	var req ReplaceSelectionRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	sel, err := h.svc.ReplaceInSelection(c.Request.Context(), c.GetHeader(SessionHeader), req.OldID, req.NewID)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	h.respond(c, sel)
}

// RemoveFromSelection handles DELETE /api/v1/compare/selection/:id.
func (h *CompareHandler) RemoveFromSelection(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "invalid id", nil))
		return
	}

	sel, err2 := h.svc.RemoveFromSelection(c.Request.Context(), c.GetHeader(SessionHeader), uint(id))
	if err2 != nil {
		pkg.Error(c, err2)
		return
	}
	h.respond(c, sel)
}

// ClearSelection handles DELETE /api/v1/compare/selection.
func (h *CompareHandler) ClearSelection(c *gin.Context) {
	sel, err := h.svc.ClearSelection(c.Request.Context(), c.GetHeader(SessionHeader))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	h.respond(c, sel)
}

// Compare handles GET /api/v1/compare?ids=a,b. Without an ids parameter
// the current session selection is compared.
func (h *CompareHandler) Compare(c *gin.Context) {
	ids, err := h.compareIDs(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	result, err := h.svc.Compare(c.Request.Context(), ids)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, result)
}

// compareIDs resolves the ids to compare from the query parameter,
// falling back to the session selection.
func (h *CompareHandler) compareIDs(c *gin.Context) ([]uint, error) {
	raw := strings.TrimSpace(c.Query("ids"))
	if raw == "" {
		sel, err := h.svc.GetSelection(c.Request.Context(), c.GetHeader(SessionHeader))
		if err != nil {
			return nil, err
		}
		return sel.Items, nil
	}

	var ids []uint
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseUint(part, 10, 64)
		if err != nil || v == 0 {
			return nil, domain.NewAppError(domain.CodeValidation, "ids must be a comma-separated list of property ids", nil)
		}
		ids = append(ids, uint(v))
	}
	return ids, nil
}

// respond sends the selection and echoes its session token in the
// response header so first-write clients learn their token.
func (h *CompareHandler) respond(c *gin.Context, sel *Selection) {
	c.Header(SessionHeader, sel.Token)
	pkg.Success(c, sel)
}
