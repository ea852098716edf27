package router

import "github.com/gin-gonic/gin"

// Module is a feature unit that registers its own routes on a RouterGroup.
type Module interface {
	Register(rg *gin.RouterGroup)
}
