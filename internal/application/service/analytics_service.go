package service

import (
	"context"
	"sort"
	"time"

	"github.com/kiptoo/carebill/internal/domain/entity"
	"github.com/kiptoo/carebill/internal/domain/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AnalyticsService derives read-only summaries over the stored tables.
// Nothing here mutates a table.
type AnalyticsService struct {
	patients repository.PatientRepository
	appts    repository.AppointmentRepository
	bills    repository.BillRepository
	logger   *zap.Logger
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	patients repository.PatientRepository,
	appts repository.AppointmentRepository,
	bills repository.BillRepository,
	logger *zap.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		patients: patients,
		appts:    appts,
		bills:    bills,
		logger:   logger,
	}
}

// CountedLabel is one label with its tally, used by distribution reports.
type CountedLabel struct {
	Label string
	Count int
}

// MonthlyIncome is the income total for one calendar month.
type MonthlyIncome struct {
	Month string
	Total decimal.Decimal
}

// DiseaseDistribution tallies patients per recorded disease, sorted by
// count descending and label ascending for equal counts.
func (s *AnalyticsService) DiseaseDistribution(ctx context.Context) ([]CountedLabel, error) {
	patients, err := s.patients.All(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, p := range patients {
		label := p.Disease
		if label == "" {
			label = "Unspecified"
		}
		counts[label]++
	}
	out := make([]CountedLabel, 0, len(counts))
	for label, count := range counts {
		out = append(out, CountedLabel{Label: label, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out, nil
}

// IncomeByMonth sums paid bill amounts keyed by YYYY-MM, sorted
// chronologically. Bills with unparseable dates are skipped with a warning
// rather than failing the whole report.
func (s *AnalyticsService) IncomeByMonth(ctx context.Context) ([]MonthlyIncome, error) {
	bills, err := s.bills.All(ctx)
	if err != nil {
		return nil, err
	}
	totals := make(map[string]decimal.Decimal)
	for _, b := range bills {
		if !b.Paid() {
			continue
		}
		parsed, err := time.Parse(dateLayout, b.Date)
		if err != nil {
			s.logger.Warn("skipping bill with unparseable date",
				zap.String("bill_id", b.ID),
				zap.String("date", b.Date),
			)
			continue
		}
		month := parsed.Format("2006-01")
		totals[month] = totals[month].Add(b.Amount)
	}
	out := make([]MonthlyIncome, 0, len(totals))
	for month, total := range totals {
		out = append(out, MonthlyIncome{Month: month, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out, nil
}

// VisitsByDate lists a patient's appointments sorted by date, then time.
func (s *AnalyticsService) VisitsByDate(ctx context.Context, patientID string) ([]entity.Appointment, error) {
	appts, err := s.appts.All(ctx)
	if err != nil {
		return nil, err
	}
	var out []entity.Appointment
	for _, a := range appts {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}
