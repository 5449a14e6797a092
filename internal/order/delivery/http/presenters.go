package http

import (
	"order-support-service/internal/order"
	"order-support-service/pkg/response"
)

// --- Response DTOs ---

// statusResp is the fixed wire contract for the order status lookup.
type statusResp struct {
	OrderType string `json:"order_type"`
	OrderID   string `json:"order_id"`
	Result    string `json:"result"`
}

func (h *handler) newStatusResp(out order.StatusOutput) statusResp {
	return statusResp{
		OrderType: out.OrderType,
		OrderID:   out.OrderID,
		Result:    out.Result,
	}
}

// fixResp is the fixed wire contract for the fix-dates operation.
type fixResp struct {
	OrderID string        `json:"order_id"`
	Result  fixResultResp `json:"result"`
}

type fixResultResp struct {
	Status  string          `json:"status"`
	Data    []fixedLineResp `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

type fixedLineResp struct {
	OrderItemID       int64         `json:"order_item_id"`
	LineNumber        int           `json:"line_number"`
	PreviousStartDate response.Date `json:"previous_start_date"`
	NewStartDate      response.Date `json:"new_start_date"`
	PreviousEndDate   response.Date `json:"previous_end_date"`
	NewEndDate        response.Date `json:"new_end_date"`
}

func (h *handler) newFixResp(orderID string, out order.FixDatesOutput) fixResp {
	lines := make([]fixedLineResp, len(out.Data))
	for i, line := range out.Data {
		lines[i] = fixedLineResp{
			OrderItemID:       line.OrderItemID,
			LineNumber:        line.LineNumber,
			PreviousStartDate: response.Date(line.PreviousStartDate),
			NewStartDate:      response.Date(line.NewStartDate),
			PreviousEndDate:   response.Date(line.PreviousEndDate),
			NewEndDate:        response.Date(line.NewEndDate),
		}
	}
	return fixResp{
		OrderID: orderID,
		Result: fixResultResp{
			Status:  out.Status,
			Data:    lines,
			Message: out.Message,
		},
	}
}
