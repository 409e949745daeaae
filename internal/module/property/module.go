package property

import "github.com/gin-gonic/gin"

// PropertyModule implements the app.Module interface for the property
// domain.
type PropertyModule struct {
	handler *PropertyHandler
}

// NewModule creates a new PropertyModule with the given handler.
// Panics if h is nil.
func NewModule(h *PropertyHandler) *PropertyModule {
	if h == nil {
		panic("property.NewModule: handler must not be nil")
	}
	return &PropertyModule{handler: h}
}

// RegisterRoutes registers public listing routes on the api group and
// CRUD routes on the admin group.
func (m *PropertyModule) RegisterRoutes(api *gin.RouterGroup, admin *gin.RouterGroup) {
	api.GET("/properties", m.handler.List)
	api.GET("/properties/export", m.handler.Export)
	api.GET("/properties/:id", m.handler.Get)

	admin.POST("/properties", m.handler.Create)
	admin.PUT("/properties/:id", m.handler.Update)
	admin.DELETE("/properties/:id", m.handler.Delete)
}
