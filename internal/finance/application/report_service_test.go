package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ulil-albab/MasjidManager/internal/finance/domain"
	financeErrors "github.com/ulil-albab/MasjidManager/internal/finance/errors"
	"github.com/ulil-albab/MasjidManager/internal/finance/infrastructure"
)

func newReportFixture() (*ReportService, *TransactionService) {
	transactions := infrastructure.NewMockTransactionRepository()
	balances := infrastructure.NewMockBalanceRepository()
	balanceService := NewBalanceService(balances, transactions)
	return NewReportService(transactions, balanceService),
		NewTransactionService(transactions, balanceService)
}

func mustCreate(t *testing.T, service *TransactionService, kind, name string, amount int64, date time.Time) {
	t.Helper()
	_, err := service.Create(kind, &domain.Transaction{Name: name, Amount: amount, Date: date})
	require.NoError(t, err)
}

func TestWeeklyReport_WindowAndSeries(t *testing.T) {
	reports, transactions := newReportFixture()

	// Reference date carries a time of day; the window must still align to
	// whole days: 2024-06-09 through 2024-06-15.
	ref := time.Date(2024, time.June, 15, 14, 30, 0, 0, time.UTC)

	mustCreate(t, transactions, domain.TypeIncome, "Sebelum periode", 1_000_000,
		time.Date(2024, time.June, 8, 23, 59, 0, 0, time.UTC))
	mustCreate(t, transactions, domain.TypeIncome, "Hari pertama", 200_000,
		time.Date(2024, time.June, 9, 0, 0, 0, 0, time.UTC))
	mustCreate(t, transactions, domain.TypeExpense, "Hari ketiga", 50_000,
		time.Date(2024, time.June, 11, 10, 0, 0, 0, time.UTC))
	mustCreate(t, transactions, domain.TypeIncome, "Hari terakhir", 300_000,
		time.Date(2024, time.June, 15, 23, 59, 59, 0, time.UTC))
	mustCreate(t, transactions, domain.TypeIncome, "Setelah periode", 999_999,
		time.Date(2024, time.June, 16, 0, 0, 0, 0, time.UTC))

	report, err := reports.WeeklyReport(ref)
	require.NoError(t, err)

	require.Len(t, report.Series, 7)
	assert.Equal(t, "2024-06-09", report.Series[0].Date)
	assert.Equal(t, "2024-06-15", report.Series[6].Date)

	assert.Equal(t, int64(1_000_000), report.OpeningBalance)
	assert.Equal(t, int64(500_000), report.TotalIncome)
	assert.Equal(t, int64(50_000), report.TotalExpense)
	assert.Equal(t, report.OpeningBalance+report.TotalIncome-report.TotalExpense, report.ClosingBalance)
	assert.Equal(t, report.Series[6].Balance, report.ClosingBalance)

	// Running balance folds day by day.
	assert.Equal(t, int64(1_200_000), report.Series[0].Balance)
	assert.Equal(t, int64(1_150_000), report.Series[2].Balance)
	// A quiet day carries the previous balance forward.
	assert.Equal(t, int64(0), report.Series[1].Income)
	assert.Equal(t, report.Series[0].Balance, report.Series[1].Balance)

	require.Len(t, report.Incomes, 2)
	require.Len(t, report.Expenses, 1)
	assert.Equal(t, domain.TypeIncome, report.Incomes[0].Type)
	assert.Equal(t, domain.TypeExpense, report.Expenses[0].Type)
}

func TestWeeklyReport_EmptyWindow(t *testing.T) {
	reports, _ := newReportFixture()

	report, err := reports.WeeklyReport(time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Len(t, report.Series, 7)
	assert.Equal(t, int64(0), report.OpeningBalance)
	assert.Equal(t, report.OpeningBalance, report.ClosingBalance)
	assert.NotNil(t, report.Incomes)
	assert.NotNil(t, report.Expenses)
	assert.Empty(t, report.Incomes)
	assert.Empty(t, report.Expenses)
}

func TestMonthlyReport_CalendarMonthBuckets(t *testing.T) {
	reports, transactions := newReportFixture()

	mustCreate(t, transactions, domain.TypeIncome, "Januari", 500_000,
		time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC))
	mustCreate(t, transactions, domain.TypeIncome, "Awal Februari", 100_000,
		time.Date(2024, time.February, 1, 8, 0, 0, 0, time.UTC))
	mustCreate(t, transactions, domain.TypeExpense, "Akhir Februari", 40_000,
		time.Date(2024, time.February, 29, 20, 0, 0, 0, time.UTC))

	report, err := reports.MonthlyReport(time.Date(2024, time.February, 14, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	// 2024 is a leap year.
	require.Len(t, report.Series, 29)
	assert.Equal(t, "2024-02-01", report.Series[0].Date)
	assert.Equal(t, "2024-02-29", report.Series[28].Date)

	assert.Equal(t, int64(500_000), report.OpeningBalance)
	assert.Equal(t, int64(100_000), report.TotalIncome)
	assert.Equal(t, int64(40_000), report.TotalExpense)
	assert.Equal(t, int64(560_000), report.ClosingBalance)
}

func TestMonthlyReport_SeriesPartitionsTransactions(t *testing.T) {
	reports, transactions := newReportFixture()

	// One transaction per day across the whole month; every one must land in
	// exactly one bucket.
	for day := 1; day <= 30; day++ {
		mustCreate(t, transactions, domain.TypeIncome, "Harian", 10_000,
			time.Date(2024, time.April, day, 13, 0, 0, 0, time.UTC))
	}

	report, err := reports.MonthlyReport(time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Len(t, report.Series, 30)
	var bucketed int64
	for _, bucket := range report.Series {
		assert.Equal(t, int64(10_000), bucket.Income)
		bucketed += bucket.Income
	}
	assert.Equal(t, report.TotalIncome, bucketed)
	assert.Equal(t, int64(300_000), report.TotalIncome)
}

func TestYearlyReport_PerYearBucketsWithClamping(t *testing.T) {
	reports, transactions := newReportFixture()

	mustCreate(t, transactions, domain.TypeIncome, "Sebelum", 2_000_000,
		time.Date(2021, time.December, 31, 0, 0, 0, 0, time.UTC))
	// Outside the clamped first bucket even though it is in 2022.
	mustCreate(t, transactions, domain.TypeIncome, "Awal 2022", 100_000,
		time.Date(2022, time.February, 1, 0, 0, 0, 0, time.UTC))
	mustCreate(t, transactions, domain.TypeIncome, "Pertengahan 2022", 400_000,
		time.Date(2022, time.July, 1, 0, 0, 0, 0, time.UTC))
	mustCreate(t, transactions, domain.TypeExpense, "2023", 150_000,
		time.Date(2023, time.May, 10, 0, 0, 0, 0, time.UTC))
	mustCreate(t, transactions, domain.TypeIncome, "2024", 600_000,
		time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC))

	start := time.Date(2022, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.June, 30, 23, 59, 59, 0, time.UTC)
	report, err := reports.YearlyReport(start, end)
	require.NoError(t, err)

	require.Len(t, report.Series, 3)
	assert.Equal(t, 2022, report.Series[0].Year)
	assert.Equal(t, 2023, report.Series[1].Year)
	assert.Equal(t, 2024, report.Series[2].Year)

	// 2022 bucket starts at the window edge, so the February income is out.
	assert.Equal(t, int64(400_000), report.Series[0].Income)
	assert.Equal(t, int64(150_000), report.Series[1].Expense)
	assert.Equal(t, int64(600_000), report.Series[2].Income)

	// Opening balance counts everything strictly before the window start.
	assert.Equal(t, int64(2_100_000), report.OpeningBalance)
	assert.Equal(t, report.OpeningBalance+report.TotalIncome-report.TotalExpense, report.ClosingBalance)
}

func TestYearlyReport_InvalidRange(t *testing.T) {
	reports, _ := newReportFixture()

	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	_, err := reports.YearlyReport(start, start.AddDate(-1, 0, 0))
	assert.True(t, financeErrors.IsValidationError(err))
}

func TestYearlyReport_SingleYear(t *testing.T) {
	reports, transactions := newReportFixture()

	mustCreate(t, transactions, domain.TypeIncome, "Infaq", 100_000,
		time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC))

	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
	report, err := reports.YearlyReport(start, end)
	require.NoError(t, err)

	require.Len(t, report.Series, 1)
	assert.Equal(t, 2024, report.Series[0].Year)
	assert.Equal(t, int64(100_000), report.Series[0].Income)
}
