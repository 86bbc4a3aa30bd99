package reporting

import (
	"sort"

	"github.com/shopspring/decimal"
)

// DailyStats accumulates payments for a single calendar date, split by the
// REP status dimension.
type DailyStats struct {
	Date            string          `json:"date"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	PaymentCount    int             `json:"paymentCount"`
	RepNotSentCount int             `json:"repNoGenerado"`
	RepSentCount    int             `json:"repGenerado"`
	AmountNotSent   decimal.Decimal `json:"amountNoGenerado"`
	AmountSent      decimal.Decimal `json:"amountGenerado"`
}

// JournalStats accumulates payments for a single journal (ledger).
type JournalStats struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	PaymentCount    int             `json:"paymentCount"`
	RepNotSentCount int             `json:"repNoGenerado"`
	RepSentCount    int             `json:"repGenerado"`
	AmountNotSent   decimal.Decimal `json:"amountNoGenerado"`
	AmountSent      decimal.Decimal `json:"amountGenerado"`
}

// StatsTotals is the grand-total reduction over all daily aggregates.
type StatsTotals struct {
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	TotalPayments   int             `json:"totalPayments"`
	RepNotSentCount int             `json:"totalRepNoGenerado"`
	RepSentCount    int             `json:"totalRepGenerado"`
	AmountNotSent   decimal.Decimal `json:"totalAmountNoGenerado"`
	AmountSent      decimal.Decimal `json:"totalAmountGenerado"`
}

// AggregateByDay groups payments by date. The result is sorted ascending
// by date. Records whose REP status is neither RepSent nor RepNotSent
// count toward the day's totals but toward neither sub-bucket.
func AggregateByDay(payments []PaymentRecord) []DailyStats {
	byDate := make(map[string]*DailyStats)
	for _, p := range payments {
		day, ok := byDate[p.Date]
		if !ok {
			day = &DailyStats{
				Date:          p.Date,
				TotalAmount:   decimal.Zero,
				AmountNotSent: decimal.Zero,
				AmountSent:    decimal.Zero,
			}
			byDate[p.Date] = day
		}
		day.TotalAmount = day.TotalAmount.Add(p.Amount)
		day.PaymentCount++

		switch p.RepStatus.String() {
		case RepNotSent:
			day.RepNotSentCount++
			day.AmountNotSent = day.AmountNotSent.Add(p.Amount)
		case RepSent:
			day.RepSentCount++
			day.AmountSent = day.AmountSent.Add(p.Amount)
		}
	}

	out := make([]DailyStats, 0, len(byDate))
	for _, day := range byDate {
		out = append(out, *day)
	}
	// ISO dates order lexicographically
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// AggregateByJournal groups payments by journal, sorted descending by
// total amount. Payments without a journal are skipped.
func AggregateByJournal(payments []PaymentRecord) []JournalStats {
	byJournal := make(map[int64]*JournalStats)
	for _, p := range payments {
		if !p.Journal.Set() {
			continue
		}
		js, ok := byJournal[p.Journal.ID]
		if !ok {
			js = &JournalStats{
				ID:            p.Journal.ID,
				Name:          p.Journal.Label,
				TotalAmount:   decimal.Zero,
				AmountNotSent: decimal.Zero,
				AmountSent:    decimal.Zero,
			}
			byJournal[p.Journal.ID] = js
		}
		js.TotalAmount = js.TotalAmount.Add(p.Amount)
		js.PaymentCount++

		switch p.RepStatus.String() {
		case RepNotSent:
			js.RepNotSentCount++
			js.AmountNotSent = js.AmountNotSent.Add(p.Amount)
		case RepSent:
			js.RepSentCount++
			js.AmountSent = js.AmountSent.Add(p.Amount)
		}
	}

	out := make([]JournalStats, 0, len(byJournal))
	for _, js := range byJournal {
		out = append(out, *js)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if cmp := out[i].TotalAmount.Cmp(out[j].TotalAmount); cmp != 0 {
			return cmp > 0
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// ReduceTotals sums all daily aggregates into grand totals.
func ReduceTotals(daily []DailyStats) StatsTotals {
	totals := StatsTotals{
		TotalAmount:   decimal.Zero,
		AmountNotSent: decimal.Zero,
		AmountSent:    decimal.Zero,
	}
	for _, day := range daily {
		totals.TotalAmount = totals.TotalAmount.Add(day.TotalAmount)
		totals.TotalPayments += day.PaymentCount
		totals.RepNotSentCount += day.RepNotSentCount
		totals.RepSentCount += day.RepSentCount
		totals.AmountNotSent = totals.AmountNotSent.Add(day.AmountNotSent)
		totals.AmountSent = totals.AmountSent.Add(day.AmountSent)
	}
	return totals
}

// StatisticsFilter echoes the request filter back in the statistics payload.
type StatisticsFilter struct {
	DateFrom  string `json:"dateFrom"`
	DateTo    string `json:"dateTo"`
	RepStatus string `json:"estadoRep,omitempty"`
}

// PaymentStatistics is the full daily-payments report payload.
type PaymentStatistics struct {
	DailyData   []DailyStats     `json:"dailyData"`
	JournalData []JournalStats   `json:"journalData"`
	Totals      StatsTotals      `json:"totals"`
	Filter      StatisticsFilter `json:"filters"`
}
