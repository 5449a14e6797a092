package repository

// OpportunityCheck is the result of the opportunity-select stored routine.
// Found is false when the routine returned no row.
type OpportunityCheck struct {
	Found              bool
	FailureDescription string
}

// FixOrderDatesOptions holds parameters for the fix-dates stored routine.
type FixOrderDatesOptions struct {
	VendorOrderCode string
	ActingUser      string
}
