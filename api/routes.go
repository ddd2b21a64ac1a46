package api

import "github.com/gin-gonic/gin"

// Routes mounts the storage API on router.
func Routes(router *gin.Engine, handler *Handler) {
	ns := router.Group("/namespaces/:ns")
	{
		ns.GET("/keys", handler.Keys)
		ns.DELETE("", handler.Clear)

		ns.PUT("/keys/:key", handler.Set)
		ns.GET("/keys/:key", handler.Get)
		ns.HEAD("/keys/:key", handler.Contains)
		ns.DELETE("/keys/:key", handler.Remove)
	}
}
