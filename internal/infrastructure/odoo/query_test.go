package odoo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/erp/odoo-dashboard/internal/domain/reporting"
)

// queryERP answers authenticate, the session probe, search_count and
// search_read, recording the kwargs of the last search_read.
type queryERP struct {
	srv *httptest.Server

	total        int
	rows         []map[string]any
	lastModel    string
	lastDomain   []any
	lastKwargs   map[string]any
	countDomains [][]any
}

func newQueryERP(t *testing.T) *queryERP {
	t.Helper()
	q := &queryERP{}
	q.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == authPath {
			writeRPCResult(w, map[string]any{"uid": 7, "name": "Reporter", "db": "erp_test"})
			return
		}

		var req struct {
			Params struct {
				Model  string         `json:"model"`
				Method string         `json:"method"`
				Args   []any          `json:"args"`
				Kwargs map[string]any `json:"kwargs"`
			} `json:"params"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		switch req.Params.Method {
		case "read": // session probe
			writeRPCResult(w, []any{map[string]any{"id": 7, "name": "Reporter"}})
		case "search_count":
			domain, _ := req.Params.Args[0].([]any)
			q.countDomains = append(q.countDomains, domain)
			writeRPCResult(w, q.total)
		case "search_read":
			q.lastModel = req.Params.Model
			q.lastDomain, _ = req.Params.Kwargs["domain"].([]any)
			q.lastKwargs = req.Params.Kwargs
			writeRPCResult(w, q.rows)
		default:
			t.Errorf("unexpected method %s", req.Params.Method)
		}
	}))
	t.Cleanup(q.srv.Close)
	return q
}

func newTestQuerier(t *testing.T, q *queryERP, recordCap int) *Querier {
	t.Helper()
	client := testClient(t, q.srv.URL, 0)
	sessions := NewSessionManager(client, "reporter@example.com", "secret", zap.NewNop())
	return NewQuerier(client, sessions, recordCap)
}

func TestPaymentPage(t *testing.T) {
	erp := newQueryERP(t)
	erp.total = 25
	erp.rows = []map[string]any{
		{"id": 1, "name": "PAGO/2025/00001", "date": "2025-01-15", "amount": 100.0,
			"journal_id": []any{1, "Banco"}, "estado_pago": "pago_correcto"},
	}

	querier := newTestQuerier(t, erp, 0)
	req := reporting.PageRequest{
		DateFrom: "2025-01-01", DateTo: "2025-01-31",
		RepStatus: "pago_correcto", Page: 2, PageSize: 10,
	}

	records, pagination, err := querier.PaymentPage(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, "PAGO/2025/00001", records[0].Name.String())

	assert.Equal(t, 25, pagination.TotalRecords)
	assert.Equal(t, 3, pagination.TotalPages)
	assert.Equal(t, 2, pagination.Page)

	assert.Equal(t, modelPayment, erp.lastModel)
	assert.Equal(t, float64(10), erp.lastKwargs["offset"])
	assert.Equal(t, float64(10), erp.lastKwargs["limit"])

	// Domain carries the posted filter, the range and the REP filter
	require.Len(t, erp.lastDomain, 4)
	first := erp.lastDomain[0].([]any)
	assert.Equal(t, []any{"state", "=", "posted"}, first)
	last := erp.lastDomain[3].([]any)
	assert.Equal(t, []any{"estado_pago", "=", "pago_correcto"}, last)

	// The count query uses the same domain
	require.Len(t, erp.countDomains, 1)
	assert.Equal(t, erp.lastDomain, erp.countDomains[0])
}

func TestPaymentsCapped(t *testing.T) {
	erp := newQueryERP(t)
	erp.rows = []map[string]any{}

	querier := newTestQuerier(t, erp, 250)
	_, err := querier.Payments(context.Background(), "2025-01-01", "2025-01-31", "")
	require.NoError(t, err)

	assert.Equal(t, float64(0), erp.lastKwargs["offset"])
	assert.Equal(t, float64(250), erp.lastKwargs["limit"])
	// No REP filter requested: domain is the posted filter plus the range
	assert.Len(t, erp.lastDomain, 3)
	// Aggregation input never issues a count
	assert.Empty(t, erp.countDomains)
}

func TestInvoicePage(t *testing.T) {
	erp := newQueryERP(t)
	erp.total = 2
	erp.rows = []map[string]any{
		{"id": 10, "name": "FACT/2025/00010", "invoice_date": "2025-01-10",
			"amount_total": 500.0, "amount_residual": 0.0,
			"partner_id": []any{4, "Cliente"}, "state": "posted", "move_type": "out_invoice"},
	}

	querier := newTestQuerier(t, erp, 0)
	req := reporting.PageRequest{
		DateFrom: "2025-01-01", DateTo: "2025-01-31",
		State: "posted", Page: 1, PageSize: 10,
	}

	records, pagination, err := querier.InvoicePage(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.True(t, records[0].Paid())
	assert.Equal(t, "Cliente", records[0].Partner.Label)
	assert.Equal(t, 1, pagination.TotalPages)

	assert.Equal(t, modelInvoice, erp.lastModel)
	require.Len(t, erp.lastDomain, 4)
	moveType := erp.lastDomain[0].([]any)
	assert.Equal(t, "move_type", moveType[0])
	assert.Equal(t, "in", moveType[1])
}
