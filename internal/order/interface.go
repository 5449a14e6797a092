package order

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// CheckStatus looks up the status of an order, branching on the
	// case-insensitive SFDC vendor prefix.
	CheckStatus(ctx context.Context, vendorOrderCode string) (StatusOutput, error)

	// FixDates runs the fix-dates stored routine for every line of the order.
	FixDates(ctx context.Context, input FixDatesInput) (FixDatesOutput, error)
}
