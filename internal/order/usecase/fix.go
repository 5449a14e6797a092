package usecase

import (
	"context"
	"fmt"
	"strings"

	"order-support-service/internal/order"
	repo "order-support-service/internal/order/repository"
)

// FixDates runs the fix-dates stored routine for an order. Store failures
// are shaped into a status:"error" payload, never an error return.
func (uc *implUseCase) FixDates(ctx context.Context, input order.FixDatesInput) (order.FixDatesOutput, error) {
	code := strings.TrimSpace(input.VendorOrderCode)

	actingUser := input.ActingUser
	if actingUser == "" {
		actingUser = uc.serviceUser
	}

	lines, err := uc.repo.FixOrderDates(ctx, repo.FixOrderDatesOptions{
		VendorOrderCode: code,
		ActingUser:      actingUser,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.FixDates FixOrderDates: %v", err)
		return order.FixDatesOutput{
			Status:  order.FixStatusError,
			Message: fmt.Sprintf("database error: %s", err),
		}, nil
	}

	return order.FixDatesOutput{
		Status: order.FixStatusSuccess,
		Data:   lines,
	}, nil
}
