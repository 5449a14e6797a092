package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Registers POST /intent/detect on the given group.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/detect", h.Detect)
}
