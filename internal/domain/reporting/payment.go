package reporting

import "github.com/shopspring/decimal"

// REP status values on a payment. The compliance receipt (REP) flag is
// binary in practice; any other value a record carries is counted only in
// overall aggregates, never in a sub-bucket.
const (
	RepNotSent = "pago_no_enviado"
	RepSent    = "pago_correcto"
)

// PaymentRecord is an immutable snapshot of an account.payment record as
// delivered by the upstream ERP. Field names follow the upstream schema.
type PaymentRecord struct {
	ID           int64           `json:"id"`
	Name         NullString      `json:"name"`
	Date         string          `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     Relation        `json:"currency_id"`
	Partner      Relation        `json:"partner_id"`
	Journal      Relation        `json:"journal_id"`
	RepStatus    NullString      `json:"estado_pago"`
	State        NullString      `json:"state"`
	Ref          NullString      `json:"ref"`
	PaymentType  NullString      `json:"payment_type"`
	AmountSigned decimal.Decimal `json:"amount_company_currency_signed"`
}

// PaymentFields lists the upstream fields requested for payment queries.
var PaymentFields = []string{
	"id", "name", "date", "amount", "currency_id",
	"partner_id", "journal_id",
	"estado_pago", "state", "ref", "payment_type",
	"amount_company_currency_signed",
}
