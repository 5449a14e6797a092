package usecase

import (
	"context"
	"fmt"
	"strings"

	"order-support-service/internal/order"
)

// CheckStatus looks up an order's status. The case-insensitive SFDC prefix
// selects the salesforce lookup path; every other code takes the external
// path. Store failures are folded into the Result string — the caller
// always gets a well-formed status, never a transport error.
func (uc *implUseCase) CheckStatus(ctx context.Context, vendorOrderCode string) (order.StatusOutput, error) {
	code := strings.TrimSpace(vendorOrderCode)

	out := order.StatusOutput{OrderID: code}
	if strings.HasPrefix(strings.ToUpper(code), "SFDC") {
		out.OrderType = order.OrderTypeSFDC
		out.Result = uc.checkSFDCOrder(ctx, code)
	} else {
		out.OrderType = order.OrderTypeExternal
		out.Result = uc.checkExternalOrder(ctx, code)
	}
	return out, nil
}

// checkExternalOrder resolves the order header and reports any recorded
// opportunity-update failure.
func (uc *implUseCase) checkExternalOrder(ctx context.Context, code string) string {
	headerID, err := uc.repo.GetOrderHeaderID(ctx, code)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CheckStatus GetOrderHeaderID: %v", err)
		return fmt.Sprintf("error: %s", err)
	}
	if headerID == 0 {
		return fmt.Sprintf("invalid vendor_order_code: %s", code)
	}

	failure, err := uc.repo.GetOpportunityUpdateFailure(ctx, headerID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CheckStatus GetOpportunityUpdateFailure: %v", err)
		return fmt.Sprintf("error: %s", err)
	}
	if failure != "" {
		return fmt.Sprintf("order failed: %s", failure)
	}
	return "order successful"
}

// checkSFDCOrder resolves the salesforce opportunity and runs the
// opportunity-select stored routine.
func (uc *implUseCase) checkSFDCOrder(ctx context.Context, code string) string {
	opportunityID, err := uc.repo.GetOpportunityID(ctx, code)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CheckStatus GetOpportunityID: %v", err)
		return fmt.Sprintf("error: %s", err)
	}
	if opportunityID == "" {
		return "no opportunity found for the given vendor order code"
	}

	check, err := uc.repo.CheckOpportunity(ctx, opportunityID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CheckStatus CheckOpportunity: %v", err)
		return fmt.Sprintf("error: %s", err)
	}
	if !check.Found {
		return "no record found for the given opportunity id"
	}
	if !strings.EqualFold(check.FailureDescription, "success") {
		return fmt.Sprintf("order failed: %s", check.FailureDescription)
	}
	return "order successful"
}
