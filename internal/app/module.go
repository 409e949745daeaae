package app

import "github.com/gin-gonic/gin"

// Module defines the contract for a self-registering business module.
// Each module registers its public routes on api and its back-office
// routes on admin.
type Module interface {
	RegisterRoutes(api *gin.RouterGroup, admin *gin.RouterGroup)
}
