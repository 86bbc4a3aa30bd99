package reporting

import (
	"github.com/shopspring/decimal"

	"github.com/erp/odoo-dashboard/internal/domain/reporting"
)

// demoInvoice builds one fixture row. The set mirrors a typical September
// billing run: odd rows settled, even rows with their full amount open.
func demoInvoice(id int64, name, date, due string, partner reporting.Relation, total, residual, tax float64, origin string, term reporting.Relation, created string) reporting.InvoiceRecord {
	return reporting.InvoiceRecord{
		ID:             id,
		Name:           reporting.NullString(name),
		InvoiceDate:    date,
		InvoiceDateDue: reporting.NullString(due),
		Partner:        partner,
		AmountTotal:    decimal.NewFromFloat(total),
		AmountResidual: decimal.NewFromFloat(residual),
		AmountTax:      decimal.NewFromFloat(tax),
		Currency:       reporting.Relation{ID: 1, Label: "MXN"},
		State:          "posted",
		MoveType:       "out_invoice",
		InvoiceOrigin:  reporting.NullString(origin),
		PaymentTerm:    term,
		SalesPerson:    reporting.Relation{ID: 1, Label: "Usuario Demo"},
		SalesTeam:      reporting.Relation{ID: 1, Label: "Equipo Ventas"},
		Company:        reporting.Relation{ID: 1, Label: "Empresa Demo"},
		CreateDate:     reporting.NullString(created),
		WriteDate:      reporting.NullString(created),
	}
}

var (
	termImmediate = reporting.Relation{ID: 1, Label: "Pago Inmediato"}
	term30Days    = reporting.Relation{ID: 2, Label: "30 días"}
)

func demoInvoices() []reporting.InvoiceRecord {
	return []reporting.InvoiceRecord{
		demoInvoice(1, "FACT/2025/00001", "2025-09-01", "2025-09-15",
			reporting.Relation{ID: 1, Label: "Cliente Demo 1"},
			15000.00, 0.00, 2400.00, "SO001", termImmediate, "2025-09-01 10:00:00"),
		demoInvoice(2, "FACT/2025/00002", "2025-09-02", "2025-09-16",
			reporting.Relation{ID: 2, Label: "Cliente Demo 2"},
			25000.00, 25000.00, 4000.00, "SO002", term30Days, "2025-09-02 11:00:00"),
		demoInvoice(3, "FACT/2025/00003", "2025-09-03", "2025-09-17",
			reporting.Relation{ID: 3, Label: "Cliente Demo 3"},
			18000.00, 0.00, 2880.00, "SO003", termImmediate, "2025-09-03 12:00:00"),
		demoInvoice(4, "FACT/2025/00004", "2025-09-04", "2025-09-18",
			reporting.Relation{ID: 4, Label: "Cliente Demo 4"},
			32000.00, 32000.00, 5120.00, "SO004", term30Days, "2025-09-04 13:00:00"),
		demoInvoice(5, "FACT/2025/00005", "2025-09-05", "2025-09-19",
			reporting.Relation{ID: 5, Label: "Cliente Demo 5"},
			12000.00, 0.00, 1920.00, "SO005", termImmediate, "2025-09-05 14:00:00"),
	}
}

// demoInvoicePage applies the request's state filter and pagination to the
// fixture set, with the same page arithmetic the live path uses.
func demoInvoicePage(req reporting.PageRequest) ([]reporting.InvoiceRecord, reporting.Pagination) {
	rows := demoInvoices()
	if req.State != "" && req.State != "all" {
		filtered := rows[:0]
		for _, r := range rows {
			if string(r.State) == req.State {
				filtered = append(filtered, r)
			}
		}
		rows = filtered
	}

	total := len(rows)
	start := req.Offset()
	if start > total {
		start = total
	}
	end := start + req.PageSize
	if end > total {
		end = total
	}

	page := make([]reporting.InvoiceRecord, end-start)
	copy(page, rows[start:end])
	return page, reporting.NewPagination(req.Page, req.PageSize, total)
}
