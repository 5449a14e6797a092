package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The two order operations live under different top-level prefixes, so the
// caller passes both groups:
//
//	GET  /status/orders/:vendor_order_code
//	POST /orders/:vendor_order_code/fix-dates
func RegisterRoutes(status, orders *gin.RouterGroup, h *handler) {
	status.GET("/orders/:vendor_order_code", h.CheckStatus)
	orders.POST("/:vendor_order_code/fix-dates", h.FixDates)
}
