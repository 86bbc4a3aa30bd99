package odoo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/erp/odoo-dashboard/internal/domain/reporting"
)

const (
	modelPayment = "account.payment"
	modelInvoice = "account.move"

	// DefaultRecordCap bounds how many rows an aggregation query pulls.
	DefaultRecordCap = 1000
)

// Querier runs the dashboard's read queries against the ERP through a
// managed session.
type Querier struct {
	client   *Client
	sessions *SessionManager
	// recordCap limits unpaginated fetches used as aggregation input.
	recordCap int
}

// NewQuerier returns a querier. recordCap <= 0 selects DefaultRecordCap.
func NewQuerier(client *Client, sessions *SessionManager, recordCap int) *Querier {
	if recordCap <= 0 {
		recordCap = DefaultRecordCap
	}
	return &Querier{client: client, sessions: sessions, recordCap: recordCap}
}

func paymentDomain(dateFrom, dateTo, repStatus string) []any {
	domain := []any{
		[]any{"state", "=", "posted"},
		[]any{"date", ">=", dateFrom},
		[]any{"date", "<=", dateTo},
	}
	if repStatus != "" {
		domain = append(domain, []any{"estado_pago", "=", repStatus})
	}
	return domain
}

func invoiceDomain(dateFrom, dateTo, state string) []any {
	domain := []any{
		[]any{"move_type", "in", []any{"out_invoice", "out_refund"}},
		[]any{"invoice_date", ">=", dateFrom},
		[]any{"invoice_date", "<=", dateTo},
	}
	if state != "" {
		domain = append(domain, []any{"state", "=", state})
	}
	return domain
}

func (q *Querier) searchRead(ctx context.Context, model string, domain []any, fields []string, offset, limit int, order string, out any) error {
	sess, err := q.sessions.Ensure(ctx)
	if err != nil {
		return err
	}
	kwargs := map[string]any{
		"domain": domain,
		"fields": fields,
		"offset": offset,
		"limit":  limit,
	}
	if order != "" {
		kwargs["order"] = order
	}
	res, err := q.client.CallKW(ctx, sess.UID, model, "search_read", []any{}, kwargs)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(res, out); err != nil {
		return fmt.Errorf("%w: decode %s rows: %v", ErrInvalidResponse, model, err)
	}
	return nil
}

func (q *Querier) searchCount(ctx context.Context, model string, domain []any) (int, error) {
	sess, err := q.sessions.Ensure(ctx)
	if err != nil {
		return 0, err
	}
	res, err := q.client.CallKW(ctx, sess.UID, model, "search_count", []any{domain}, nil)
	if err != nil {
		return 0, err
	}
	var total int
	if err := json.Unmarshal(res, &total); err != nil {
		return 0, fmt.Errorf("%w: decode %s count: %v", ErrInvalidResponse, model, err)
	}
	return total, nil
}

// PaymentPage returns one page of posted payments in the date range,
// together with pagination metadata from a dedicated count query.
func (q *Querier) PaymentPage(ctx context.Context, req reporting.PageRequest) ([]reporting.PaymentRecord, reporting.Pagination, error) {
	domain := paymentDomain(req.DateFrom, req.DateTo, req.RepStatus)

	total, err := q.searchCount(ctx, modelPayment, domain)
	if err != nil {
		return nil, reporting.Pagination{}, err
	}

	var records []reporting.PaymentRecord
	if err := q.searchRead(ctx, modelPayment, domain, reporting.PaymentFields,
		req.Offset(), req.PageSize, "date desc, id desc", &records); err != nil {
		return nil, reporting.Pagination{}, err
	}
	return records, reporting.NewPagination(req.Page, req.PageSize, total), nil
}

// Payments returns the posted payments in the date range as aggregation
// input, capped at the configured record limit.
func (q *Querier) Payments(ctx context.Context, dateFrom, dateTo, repStatus string) ([]reporting.PaymentRecord, error) {
	var records []reporting.PaymentRecord
	if err := q.searchRead(ctx, modelPayment, paymentDomain(dateFrom, dateTo, repStatus),
		reporting.PaymentFields, 0, q.recordCap, "date asc, id asc", &records); err != nil {
		return nil, err
	}
	return records, nil
}

// InvoicePage returns one page of customer invoices and credit notes in
// the date range, with pagination from a dedicated count query.
func (q *Querier) InvoicePage(ctx context.Context, req reporting.PageRequest) ([]reporting.InvoiceRecord, reporting.Pagination, error) {
	domain := invoiceDomain(req.DateFrom, req.DateTo, req.State)

	total, err := q.searchCount(ctx, modelInvoice, domain)
	if err != nil {
		return nil, reporting.Pagination{}, err
	}

	var records []reporting.InvoiceRecord
	if err := q.searchRead(ctx, modelInvoice, domain, reporting.InvoiceFields,
		req.Offset(), req.PageSize, "invoice_date desc, id desc", &records); err != nil {
		return nil, reporting.Pagination{}, err
	}
	return records, reporting.NewPagination(req.Page, req.PageSize, total), nil
}
