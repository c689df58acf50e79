package interfaces

import (
	"time"

	"github.com/ulil-albab/MasjidManager/internal/finance/domain"
)

type MockReportService struct {
	Report    *domain.Report
	Err       error
	LastStart time.Time
	LastEnd   time.Time
}

func (m *MockReportService) WeeklyReport(refDate time.Time) (*domain.Report, error) {
	m.LastStart = refDate
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Report, nil
}

func (m *MockReportService) MonthlyReport(refDate time.Time) (*domain.Report, error) {
	m.LastStart = refDate
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Report, nil
}

func (m *MockReportService) YearlyReport(startDate, endDate time.Time) (*domain.Report, error) {
	m.LastStart, m.LastEnd = startDate, endDate
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Report, nil
}

type MockReportRenderer struct {
	Document []byte
	Err      error
	Rendered *domain.Report
}

func (m *MockReportRenderer) Render(report *domain.Report) ([]byte, error) {
	m.Rendered = report
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Document, nil
}
