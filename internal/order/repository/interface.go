package repository

import (
	"context"

	"order-support-service/internal/order"
)

// Repository is the composed interface for the order domain data store.
type Repository interface {
	OrderRepository
}

// OrderRepository defines all data access methods for order records.
// Lookup methods return zero values for not-found; errors mean the store
// itself failed.
type OrderRepository interface {
	// GetOrderHeaderID resolves a vendor order code to its order header id.
	// Returns 0 when the code does not exist.
	GetOrderHeaderID(ctx context.Context, vendorOrderCode string) (int64, error)

	// GetOpportunityUpdateFailure returns the recorded update-failure
	// message for an order header, or "" when the order has none.
	GetOpportunityUpdateFailure(ctx context.Context, orderHeaderID int64) (string, error)

	// GetOpportunityID resolves a vendor order code to its salesforce
	// opportunity id. Returns "" when no opportunity is linked.
	GetOpportunityID(ctx context.Context, vendorOrderCode string) (string, error)

	// CheckOpportunity runs the opportunity-select stored routine.
	CheckOpportunity(ctx context.Context, opportunityID string) (OpportunityCheck, error)

	// FixOrderDates runs the fix-dates stored routine and returns the
	// touched order lines.
	FixOrderDates(ctx context.Context, opt FixOrderDatesOptions) ([]order.FixedLine, error)
}
