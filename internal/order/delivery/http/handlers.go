package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"order-support-service/internal/order"
)

// HeaderActingUser identifies the user on whose behalf a mutating order
// operation runs.
const HeaderActingUser = "X-Acting-User"

// CheckStatus godoc
// @Summary     Check order status
// @Description Looks up the status of an order by its vendor order code. SFDC-prefixed codes take the salesforce lookup path, all others the external one.
// @Tags        Orders
// @Produce     json
// @Param       vendor_order_code path string true "Vendor order code"
// @Success     200 {object} statusResp
// @Failure     400 {object} map[string]string "Bad Request"
// @Router      /status/orders/{vendor_order_code} [get]
func (h *handler) CheckStatus(c *gin.Context) {
	ctx := c.Request.Context()

	code := strings.TrimSpace(c.Param("vendor_order_code"))
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "vendor_order_code is required"})
		return
	}

	output, err := h.uc.CheckStatus(ctx, code)
	if err != nil {
		h.l.Errorf(ctx, "uc.CheckStatus: %v", err)
		c.JSON(http.StatusOK, statusResp{OrderID: code, Result: "error: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.newStatusResp(output))
}

// FixDates godoc
// @Summary     Fix order item dates
// @Description Runs the fix-dates stored routine for every line of the order. The acting user is taken from the X-Acting-User header when present.
// @Tags        Orders
// @Produce     json
// @Param       vendor_order_code path   string true  "Vendor order code"
// @Param       X-Acting-User     header string false "Acting user identity"
// @Success     200 {object} fixResp
// @Failure     400 {object} map[string]string "Bad Request"
// @Router      /orders/{vendor_order_code}/fix-dates [post]
func (h *handler) FixDates(c *gin.Context) {
	ctx := c.Request.Context()

	code := strings.TrimSpace(c.Param("vendor_order_code"))
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "vendor_order_code is required"})
		return
	}

	output, err := h.uc.FixDates(ctx, order.FixDatesInput{
		VendorOrderCode: code,
		ActingUser:      c.GetHeader(HeaderActingUser),
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.FixDates: %v", err)
		output = order.FixDatesOutput{Status: order.FixStatusError, Message: err.Error()}
	}

	c.JSON(http.StatusOK, h.newFixResp(code, output))
}
