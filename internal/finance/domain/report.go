package domain

import "time"

const (
	ReportWeekly  = "weekly"
	ReportMonthly = "monthly"
	ReportYearly  = "yearly"
	ReportCustom  = "custom"
)

type ReportRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ReportBucket is one sub-period of a report: a calendar day for weekly and
// monthly reports, a calendar year for yearly reports. Balance carries the
// running total from the opening balance through this bucket inclusive.
type ReportBucket struct {
	Date    string `json:"date,omitempty"`
	Year    int    `json:"year,omitempty"`
	Income  int64  `json:"income"`
	Expense int64  `json:"expense"`
	Balance int64  `json:"balance"`
}

// Report is derived on demand and never persisted.
type Report struct {
	Kind           string         `json:"-"`
	Range          ReportRange    `json:"range"`
	OpeningBalance int64          `json:"openingBalance"`
	TotalIncome    int64          `json:"totalIncome"`
	TotalExpense   int64          `json:"totalExpense"`
	ClosingBalance int64          `json:"closingBalance"`
	Series         []ReportBucket `json:"series"`
	Incomes        []Transaction  `json:"incomes"`
	Expenses       []Transaction  `json:"expenses"`
	// Khatib optionally names the Friday sermon speaker on the weekly PDF.
	Khatib string `json:"khatib,omitempty"`
}
