package http

import (
	"github.com/gin-gonic/gin"

	"order-support-service/internal/order"
	"order-support-service/pkg/log"
)

// Handler is the public interface for the order HTTP delivery layer.
type Handler interface {
	CheckStatus(c *gin.Context)
	FixDates(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc order.UseCase
}

// New creates a new HTTP handler for the order domain.
func New(l log.Logger, uc order.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
