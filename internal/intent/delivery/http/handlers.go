package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"order-support-service/internal/intent"
	"order-support-service/pkg/response"
)

// Detect godoc
// @Summary     Detect customer intent
// @Description Classifies a free-text customer question into order status / buy / fix / other.
// @Tags        Intent
// @Accept      json
// @Produce     json
// @Param       body body detectReq true "Customer question"
// @Success     200  {object} detectResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /intent/detect [POST]
func (h *handler) Detect(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDetectReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Detect(ctx, req.toInput())
	if err != nil {
		// Only validation-style errors reach here; classifier failures are
		// already shaped into an "other" verdict by the usecase.
		if err == intent.ErrEmptyQuestion {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "uc.Detect: %v", err)
		response.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.newDetectResp(output))
}
