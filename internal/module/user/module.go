package user

import "github.com/gin-gonic/gin"

// UserModule implements the app.Module interface for the user domain.
type UserModule struct {
	handler *UserHandler
}

// NewModule creates a new UserModule with the given handler.
// Panics if h is nil.
func NewModule(h *UserHandler) *UserModule {
	if h == nil {
		panic("user.NewModule: handler must not be nil")
	}
	return &UserModule{handler: h}
}

// RegisterRoutes registers user API routes on the admin group.
func (m *UserModule) RegisterRoutes(api *gin.RouterGroup, admin *gin.RouterGroup) {
	admin.POST("/users", m.handler.Create)
	admin.GET("/users/:id", m.handler.Get)
	admin.GET("/users", m.handler.List)
	admin.PUT("/users/:id", m.handler.Update)
	admin.DELETE("/users/:id", m.handler.Delete)
}
