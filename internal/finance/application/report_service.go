package application

import (
	"time"

	"github.com/ulil-albab/MasjidManager/internal/finance/domain"
	financeErrors "github.com/ulil-albab/MasjidManager/internal/finance/errors"
)

// ReportService is the aggregation core: it folds dated transactions into
// per-period buckets with a running balance. The opening balance is always
// recomputed from the transaction store (BalanceBeforeDate), never read from
// the ledger singleton, and that read happens before the range fetch so a
// report is a consistent point-in-time snapshot.
type ReportService struct {
	transactions domain.TransactionRepository
	balance      *BalanceService
}

func NewReportService(transactions domain.TransactionRepository, balance *BalanceService) *ReportService {
	return &ReportService{transactions: transactions, balance: balance}
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999*int(time.Millisecond), t.Location())
}

// inRange applies the inclusive-both-ends rule used everywhere in reporting.
func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// WeeklyReport covers the 7 calendar days ending at (and including) refDate.
// The reference date's time-of-day is zeroed first so the window always
// aligns to day boundaries.
func (s *ReportService) WeeklyReport(refDate time.Time) (*domain.Report, error) {
	ref := dayStart(refDate)
	start := ref.AddDate(0, 0, -6)
	end := dayEnd(ref)

	days := make([]time.Time, 0, 7)
	for d := start; !d.After(ref); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return s.generateDaily(domain.ReportWeekly, start, end, days)
}

// MonthlyReport covers the calendar month containing refDate, one bucket per
// actual day of that month.
func (s *ReportService) MonthlyReport(refDate time.Time) (*domain.Report, error) {
	year, month := refDate.Year(), refDate.Month()
	first := time.Date(year, month, 1, 0, 0, 0, 0, refDate.Location())
	// Day zero of the next month is the last day of this one.
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, refDate.Location())

	days := make([]time.Time, 0, last.Day())
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return s.generateDaily(domain.ReportMonthly, first, dayEnd(last), days)
}

func (s *ReportService) generateDaily(kind string, start, end time.Time, days []time.Time) (*domain.Report, error) {
	openingBalance, err := s.balance.BalanceBeforeDate(start)
	if err != nil {
		return nil, err
	}
	incomes, expenses, err := s.fetchRange(start, end)
	if err != nil {
		return nil, err
	}

	series := make([]domain.ReportBucket, 0, len(days))
	running := openingBalance
	for _, day := range days {
		bucketStart, bucketEnd := dayStart(day), dayEnd(day)
		income := sumInRange(incomes, bucketStart, bucketEnd)
		expense := sumInRange(expenses, bucketStart, bucketEnd)
		running += income - expense
		series = append(series, domain.ReportBucket{
			Date:    bucketStart.Format("2006-01-02"),
			Income:  income,
			Expense: expense,
			Balance: running,
		})
	}

	return assemble(kind, start, end, openingBalance, series, incomes, expenses), nil
}

// YearlyReport covers [startDate, endDate] with one bucket per calendar year.
// The first and last buckets are clamped to the window's actual edges, so the
// series always partitions the window exactly: a transaction inside the
// window can never fall outside every bucket.
func (s *ReportService) YearlyReport(startDate, endDate time.Time) (*domain.Report, error) {
	if endDate.Before(startDate) {
		return nil, financeErrors.NewValidationError("Format tanggal tidak valid")
	}

	openingBalance, err := s.balance.BalanceBeforeDate(startDate)
	if err != nil {
		return nil, err
	}
	incomes, expenses, err := s.fetchRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	startYear, endYear := startDate.Year(), endDate.Year()
	series := make([]domain.ReportBucket, 0, endYear-startYear+1)
	running := openingBalance
	for year := startYear; year <= endYear; year++ {
		bucketStart := time.Date(year, time.January, 1, 0, 0, 0, 0, startDate.Location())
		bucketEnd := dayEnd(time.Date(year, time.December, 31, 0, 0, 0, 0, startDate.Location()))
		if bucketStart.Before(startDate) {
			bucketStart = startDate
		}
		if bucketEnd.After(endDate) {
			bucketEnd = endDate
		}

		income := sumInRange(incomes, bucketStart, bucketEnd)
		expense := sumInRange(expenses, bucketStart, bucketEnd)
		running += income - expense
		series = append(series, domain.ReportBucket{
			Year:    year,
			Income:  income,
			Expense: expense,
			Balance: running,
		})
	}

	return assemble(domain.ReportYearly, startDate, endDate, openingBalance, series, incomes, expenses), nil
}

func (s *ReportService) fetchRange(start, end time.Time) ([]domain.Transaction, []domain.Transaction, error) {
	incomes, err := s.transactions.FindInRange(domain.TypeIncome, start, end)
	if err != nil {
		return nil, nil, err
	}
	expenses, err := s.transactions.FindInRange(domain.TypeExpense, start, end)
	if err != nil {
		return nil, nil, err
	}
	for i := range incomes {
		incomes[i].Type = domain.TypeIncome
	}
	for i := range expenses {
		expenses[i].Type = domain.TypeExpense
	}
	return incomes, expenses, nil
}

func sumInRange(transactions []domain.Transaction, start, end time.Time) int64 {
	var total int64
	for _, transaction := range transactions {
		if inRange(transaction.Date, start, end) {
			total += transaction.Amount
		}
	}
	return total
}

func assemble(kind string, start, end time.Time, openingBalance int64, series []domain.ReportBucket, incomes, expenses []domain.Transaction) *domain.Report {
	var totalIncome, totalExpense int64
	for _, bucket := range series {
		totalIncome += bucket.Income
		totalExpense += bucket.Expense
	}
	closingBalance := openingBalance
	if len(series) > 0 {
		closingBalance = series[len(series)-1].Balance
	}
	if incomes == nil {
		incomes = []domain.Transaction{}
	}
	if expenses == nil {
		expenses = []domain.Transaction{}
	}
	return &domain.Report{
		Kind:           kind,
		Range:          domain.ReportRange{Start: start, End: end},
		OpeningBalance: openingBalance,
		TotalIncome:    totalIncome,
		TotalExpense:   totalExpense,
		ClosingBalance: closingBalance,
		Series:         series,
		Incomes:        incomes,
		Expenses:       expenses,
	}
}
