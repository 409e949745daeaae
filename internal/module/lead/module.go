package lead

import "github.com/gin-gonic/gin"

// LeadModule implements the app.Module interface for the lead domain.
type LeadModule struct {
	handler *LeadHandler
}

// NewModule creates a new LeadModule with the given handler.
// Panics if h is nil.
func NewModule(h *LeadHandler) *LeadModule {
	if h == nil {
		panic("lead.NewModule: handler must not be nil")
	}
	return &LeadModule{handler: h}
}

// RegisterRoutes registers the public submit route on the api group and
// management routes on the admin group.
func (m *LeadModule) RegisterRoutes(api *gin.RouterGroup, admin *gin.RouterGroup) {
	api.POST("/leads", m.handler.Submit)

	admin.GET("/leads", m.handler.List)
	admin.GET("/leads/:id", m.handler.Get)
	admin.DELETE("/leads/:id", m.handler.Delete)
}
