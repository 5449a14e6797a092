package postgre

import (
	"context"
	"database/sql"

	"order-support-service/internal/order"
	repo "order-support-service/internal/order/repository"
)

// GetOrderHeaderID resolves a vendor order code to its order header id.
// Returns 0 without error when the code does not exist.
func (r *implRepository) GetOrderHeaderID(ctx context.Context, vendorOrderCode string) (int64, error) {
	const query = `
		SELECT oh.order_header_id
		FROM vendor_order vo
		JOIN order_header oh ON oh.vendor_order_id = vo.vendor_order_id
		WHERE vo.vendor_order_code = $1`

	var id int64
	err := r.db.QueryRowContext(ctx, query, vendorOrderCode).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOrderHeaderID"), err)
		return 0, repo.ErrFailedToGet
	}
	return id, nil
}

// GetOpportunityUpdateFailure returns the recorded update-failure message
// for an order header, or "" when the order has none.
func (r *implRepository) GetOpportunityUpdateFailure(ctx context.Context, orderHeaderID int64) (string, error) {
	const query = `
		SELECT sfdc_response_message
		FROM sfdc_opportunity_update_failure
		WHERE order_header_id = $1`

	var message string
	err := r.db.QueryRowContext(ctx, query, orderHeaderID).Scan(&message)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOpportunityUpdateFailure"), err)
		return "", repo.ErrFailedToGet
	}
	return message, nil
}

// GetOpportunityID resolves a vendor order code to its salesforce
// opportunity id. Returns "" without error when no opportunity is linked.
func (r *implRepository) GetOpportunityID(ctx context.Context, vendorOrderCode string) (string, error) {
	const query = `
		SELECT oo.salesforce_opportunity_id
		FROM order_opportunity oo
		JOIN order_header oh ON oh.order_header_id = oo.order_header_id
		JOIN vendor_order vo ON vo.vendor_order_id = oh.vendor_order_id
		WHERE vo.vendor_order_code = $1`

	var opportunityID string
	err := r.db.QueryRowContext(ctx, query, vendorOrderCode).Scan(&opportunityID)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOpportunityID"), err)
		return "", repo.ErrFailedToGet
	}
	return opportunityID, nil
}

// CheckOpportunity runs the opportunity-select stored routine.
// Found is false when the routine returned no row.
func (r *implRepository) CheckOpportunity(ctx context.Context, opportunityID string) (repo.OpportunityCheck, error) {
	const query = `SELECT failure_description FROM sfdc_select_opportunity($1)`

	var desc string
	err := r.db.QueryRowContext(ctx, query, opportunityID).Scan(&desc)
	if err == sql.ErrNoRows {
		return repo.OpportunityCheck{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CheckOpportunity"), err)
		return repo.OpportunityCheck{}, repo.ErrFailedToExecute
	}
	return repo.OpportunityCheck{Found: true, FailureDescription: desc}, nil
}

// FixOrderDates runs the fix-dates stored routine for every line of the
// order and returns the touched lines.
func (r *implRepository) FixOrderDates(ctx context.Context, opt repo.FixOrderDatesOptions) ([]order.FixedLine, error) {
	const query = `
		SELECT order_item_id, line_number,
		       previous_start_date, new_start_date,
		       previous_end_date, new_end_date
		FROM fix_order_item_dates_all_lines($1, $2)`

	rows, err := r.db.QueryContext(ctx, query, opt.VendorOrderCode, opt.ActingUser)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FixOrderDates"), err)
		return nil, repo.ErrFailedToExecute
	}
	defer rows.Close()

	var lines []order.FixedLine
	for rows.Next() {
		var line order.FixedLine
		if err := rows.Scan(
			&line.OrderItemID, &line.LineNumber,
			&line.PreviousStartDate, &line.NewStartDate,
			&line.PreviousEndDate, &line.NewEndDate,
		); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("FixOrderDates"), err)
			return nil, repo.ErrFailedToExecute
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("FixOrderDates"), err)
		return nil, repo.ErrFailedToExecute
	}
	return lines, nil
}
