package compare

import "github.com/gin-gonic/gin"

// CompareModule implements the app.Module interface for the comparison
// feature.
type CompareModule struct {
	handler *CompareHandler
}

// NewModule creates a new CompareModule with the given handler.
// Panics if h is nil.
func NewModule(h *CompareHandler) *CompareModule {
	if h == nil {
		panic("compare.NewModule: handler must not be nil")
	}
	return &CompareModule{handler: h}
}

// RegisterRoutes registers the comparison routes on the public api group.
func (m *CompareModule) RegisterRoutes(api *gin.RouterGroup, admin *gin.RouterGroup) {
	api.GET("/compare", m.handler.Compare)
	api.GET("/compare/selection", m.handler.GetSelection)
	api.POST("/compare/selection", m.handler.AddToSelection)
	api.PUT("/compare/selection", m.handler.ReplaceInSelection)
	api.DELETE("/compare/selection", m.handler.ClearSelection)
	api.DELETE("/compare/selection/:id", m.handler.RemoveFromSelection)
}
