package order

import "time"

// Order type reported back to the caller, derived from the vendor prefix.
const (
	OrderTypeSFDC     = "sfdc"
	OrderTypeExternal = "external"
)

// Fix-dates outcome statuses.
const (
	FixStatusSuccess = "success"
	FixStatusError   = "error"
)

// FixedLine is one order line touched by the fix-dates stored routine.
// Fields mirror the routine's select list.
type FixedLine struct {
	OrderItemID       int64
	LineNumber        int
	PreviousStartDate time.Time
	NewStartDate      time.Time
	PreviousEndDate   time.Time
	NewEndDate        time.Time
}

// --- UseCase Inputs ---

type FixDatesInput struct {
	VendorOrderCode string
	ActingUser      string
}

// --- UseCase Outputs ---

// StatusOutput carries the human-readable status of an order. Result
// describes failures too; a repository problem never surfaces as an error.
type StatusOutput struct {
	OrderType string
	OrderID   string
	Result    string
}

// FixDatesOutput is the structured result of the fix-dates routine.
type FixDatesOutput struct {
	Status  string
	Data    []FixedLine
	Message string
}
