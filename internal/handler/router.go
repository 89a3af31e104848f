package handler

import "github.com/gin-gonic/gin"

// NewRouter builds the engine shared by the HTTP server and the cloud function.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(RequestID(), CORS(), PermissiveHeaders())

	h.Register(router)
	return router
}
