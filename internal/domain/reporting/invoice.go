package reporting

import "github.com/shopspring/decimal"

// InvoiceRecord is an immutable snapshot of an account.move record as
// delivered by the upstream ERP.
type InvoiceRecord struct {
	ID             int64           `json:"id"`
	Name           NullString      `json:"name"`
	InvoiceDate    string          `json:"invoice_date"`
	InvoiceDateDue NullString      `json:"invoice_date_due"`
	Partner        Relation        `json:"partner_id"`
	AmountTotal    decimal.Decimal `json:"amount_total"`
	AmountResidual decimal.Decimal `json:"amount_residual"`
	AmountTax      decimal.Decimal `json:"amount_tax"`
	Currency       Relation        `json:"currency_id"`
	State          NullString      `json:"state"`
	MoveType       NullString      `json:"move_type"`
	Ref            NullString      `json:"ref"`
	InvoiceOrigin  NullString      `json:"invoice_origin"`
	PaymentTerm    Relation        `json:"invoice_payment_term_id"`
	SalesPerson    Relation        `json:"user_id"`
	SalesTeam      Relation        `json:"team_id"`
	Company        Relation        `json:"company_id"`
	CreateDate     NullString      `json:"create_date"`
	WriteDate      NullString      `json:"write_date"`
}

// Paid reports whether the invoice is fully settled. The rule is exact
// equality on the residual amount as delivered by upstream; no epsilon.
func (r InvoiceRecord) Paid() bool {
	return r.AmountResidual.IsZero()
}

// InvoiceFields lists the upstream fields requested for invoice queries.
var InvoiceFields = []string{
	"id", "name", "invoice_date", "invoice_date_due", "partner_id",
	"amount_total", "amount_residual", "amount_tax", "currency_id",
	"state", "move_type", "ref", "invoice_origin", "invoice_payment_term_id",
	"user_id", "team_id", "company_id", "create_date", "write_date",
}
