package reporting

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/erp/odoo-dashboard/internal/domain/reporting"
	"github.com/erp/odoo-dashboard/internal/infrastructure/cache"
)

// Query is the read side of the upstream ERP as the report service needs it.
type Query interface {
	PaymentPage(ctx context.Context, req reporting.PageRequest) ([]reporting.PaymentRecord, reporting.Pagination, error)
	Payments(ctx context.Context, dateFrom, dateTo, repStatus string) ([]reporting.PaymentRecord, error)
	InvoicePage(ctx context.Context, req reporting.PageRequest) ([]reporting.InvoiceRecord, reporting.Pagination, error)
}

// InvoiceTableResult is one page of invoices plus a flag marking whether
// the data came from the demo fallback instead of the live ERP.
type InvoiceTableResult struct {
	Records    []reporting.InvoiceRecord
	Pagination reporting.Pagination
	Degraded   bool
}

// PaymentTableResult is one page of payment records.
type PaymentTableResult struct {
	Records    []reporting.PaymentRecord
	Pagination reporting.Pagination
}

// Service provides the dashboard's report operations.
type Service struct {
	query    Query
	reports  cache.ReportCache
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewService creates a report service. reports may be nil to disable caching.
func NewService(query Query, reports cache.ReportCache, cacheTTL time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		query:    query,
		reports:  reports,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

func statsCacheKey(f reporting.StatisticsFilter) string {
	return fmt.Sprintf("stats:%s:%s:%s", f.DateFrom, f.DateTo, f.RepStatus)
}

// DailyPayments aggregates posted payments in the date range by day and
// by journal. Results are cached per filter combination.
func (s *Service) DailyPayments(ctx context.Context, filter reporting.StatisticsFilter) (*reporting.PaymentStatistics, error) {
	key := statsCacheKey(filter)
	if s.reports != nil {
		if payload, ok, err := s.reports.Get(ctx, key); err != nil {
			s.logger.Warn("report cache read failed", zap.Error(err))
		} else if ok {
			var stats reporting.PaymentStatistics
			if err := json.Unmarshal(payload, &stats); err == nil {
				return &stats, nil
			}
			// A corrupt entry is dropped and recomputed.
			_ = s.reports.Invalidate(ctx, key)
		}
	}

	payments, err := s.query.Payments(ctx, filter.DateFrom, filter.DateTo, filter.RepStatus)
	if err != nil {
		return nil, err
	}

	daily := reporting.AggregateByDay(payments)
	stats := &reporting.PaymentStatistics{
		DailyData:   daily,
		JournalData: reporting.AggregateByJournal(payments),
		Totals:      reporting.ReduceTotals(daily),
		Filter:      filter,
	}

	if s.reports != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := s.reports.Set(ctx, key, payload, s.cacheTTL); err != nil {
				s.logger.Warn("report cache write failed", zap.Error(err))
			}
		}
	}
	return stats, nil
}

// PaymentTable returns one page of posted payments in the date range.
func (s *Service) PaymentTable(ctx context.Context, req reporting.PageRequest) (*PaymentTableResult, error) {
	records, pagination, err := s.query.PaymentPage(ctx, req)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []reporting.PaymentRecord{}
	}
	return &PaymentTableResult{Records: records, Pagination: pagination}, nil
}

// InvoiceTable returns one page of customer invoices. When the ERP is
// unreachable it serves the demo data set instead, marked degraded, so
// the dashboard stays usable during upstream outages.
func (s *Service) InvoiceTable(ctx context.Context, req reporting.PageRequest) (*InvoiceTableResult, error) {
	records, pagination, err := s.query.InvoicePage(ctx, req)
	if err != nil {
		s.logger.Warn("invoice query failed, serving demo data", zap.Error(err))
		demoRecords, demoPagination := demoInvoicePage(req)
		return &InvoiceTableResult{Records: demoRecords, Pagination: demoPagination, Degraded: true}, nil
	}
	if records == nil {
		records = []reporting.InvoiceRecord{}
	}
	return &InvoiceTableResult{Records: records, Pagination: pagination}, nil
}
