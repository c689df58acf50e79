package interfaces

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/ulil-albab/MasjidManager/internal/finance/domain"
	financeErrors "github.com/ulil-albab/MasjidManager/internal/finance/errors"
)

type ReportServiceInterface interface {
	WeeklyReport(refDate time.Time) (*domain.Report, error)
	MonthlyReport(refDate time.Time) (*domain.Report, error)
	YearlyReport(startDate, endDate time.Time) (*domain.Report, error)
}

// ReportRenderer turns a finished report into a downloadable PDF document.
type ReportRenderer interface {
	Render(report *domain.Report) ([]byte, error)
}

type ReportHandler struct {
	service      ReportServiceInterface
	renderer     ReportRenderer
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errorDetail ...string)
}

func NewReportHandler(
	service ReportServiceInterface,
	renderer ReportRenderer,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errorDetail ...string),
) *ReportHandler {
	if service == nil || renderer == nil {
		log.Fatal("Service and renderer must not be nil")
		return nil
	}
	if respondJSON == nil || respondError == nil {
		log.Fatal("Respond functions must not be nil")
		return nil
	}
	return &ReportHandler{
		service:      service,
		renderer:     renderer,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

// parseDateParam reads an optional yyyy-mm-dd query parameter. A missing or
// unparseable value falls back to now, so these endpoints always have a
// reference date to report on.
func parseDateParam(r *http.Request, name string) time.Time {
	value := r.URL.Query().Get(name)
	if value == "" {
		return time.Now()
	}
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		log.Printf("Ignoring unparseable %s parameter %q, using current date", name, value)
		return time.Now()
	}
	return date
}

// yearlyRange reads the optional start/end parameters. Missing or unparseable
// values fall back to the current calendar year's bounds.
func (h *ReportHandler) yearlyRange(r *http.Request) (time.Time, time.Time) {
	now := time.Now()
	startDate := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	endDate := time.Date(now.Year(), time.December, 31, 23, 59, 59, 999*int(time.Millisecond), now.Location())

	if value := r.URL.Query().Get("start"); value != "" {
		if parsed, err := time.Parse("2006-01-02", value); err == nil {
			startDate = parsed
		} else {
			log.Printf("Ignoring unparseable start parameter %q, using current year", value)
		}
	}
	if value := r.URL.Query().Get("end"); value != "" {
		if parsed, err := time.Parse("2006-01-02", value); err == nil {
			endDate = parsed
		} else {
			log.Printf("Ignoring unparseable end parameter %q, using current year", value)
		}
	}
	return startDate, endDate
}

func (h *ReportHandler) WeeklyReport(w http.ResponseWriter, r *http.Request) {
	refDate := parseDateParam(r, "date")

	report, err := h.service.WeeklyReport(refDate)
	if err != nil {
		log.Printf("Error during weekly report: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Gagal mengambil laporan mingguan")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": fmt.Sprintf("Laporan mingguan yang mengandung tanggal %s berhasil diambil",
			refDate.Format("2006-01-02")),
		"data": report,
	})
}

func (h *ReportHandler) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	refDate := parseDateParam(r, "date")

	report, err := h.service.MonthlyReport(refDate)
	if err != nil {
		log.Printf("Error during monthly report: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Gagal mengambil laporan bulanan")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": fmt.Sprintf("Laporan bulanan yang mengandung tanggal %s berhasil diambil",
			refDate.Format("2006-01-02")),
		"data": report,
	})
}

func (h *ReportHandler) YearlyReport(w http.ResponseWriter, r *http.Request) {
	startDate, endDate := h.yearlyRange(r)

	report, err := h.service.YearlyReport(startDate, endDate)
	if err != nil {
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("Error during yearly report: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Gagal mengambil laporan tahunan")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Laporan multi-tahun berhasil diambil",
		"data":    report,
	})
}

func (h *ReportHandler) WeeklyReportPDF(w http.ResponseWriter, r *http.Request) {
	refDate := parseDateParam(r, "date")

	report, err := h.service.WeeklyReport(refDate)
	if err != nil {
		log.Printf("Error during weekly report: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Gagal membuat PDF laporan mingguan", err.Error())
		return
	}
	report.Khatib = r.URL.Query().Get("khatib")

	document, err := h.renderer.Render(report)
	if err != nil {
		log.Printf("Error during weekly PDF render: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Gagal membuat PDF laporan mingguan", err.Error())
		return
	}

	filename := "Laporan-Mingguan-" + refDate.Format("2006-01-02") + ".pdf"
	writePDF(w, document, filename)
}

func (h *ReportHandler) MonthlyReportPDF(w http.ResponseWriter, r *http.Request) {
	refDate := parseDateParam(r, "date")

	report, err := h.service.MonthlyReport(refDate)
	if err != nil {
		log.Printf("Error during monthly report: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Gagal membuat PDF laporan bulanan", err.Error())
		return
	}

	document, err := h.renderer.Render(report)
	if err != nil {
		log.Printf("Error during monthly PDF render: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Gagal membuat PDF laporan bulanan", err.Error())
		return
	}

	filename := "Laporan-Bulanan-" + refDate.Format("2006-01-02") + ".pdf"
	writePDF(w, document, filename)
}

func (h *ReportHandler) YearlyReportPDF(w http.ResponseWriter, r *http.Request) {
	startDate, endDate := h.yearlyRange(r)

	report, err := h.service.YearlyReport(startDate, endDate)
	if err != nil {
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("Error during yearly report: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Gagal membuat PDF laporan tahunan", err.Error())
		return
	}

	document, err := h.renderer.Render(report)
	if err != nil {
		log.Printf("Error during yearly PDF render: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Gagal membuat PDF laporan tahunan", err.Error())
		return
	}

	filename := fmt.Sprintf("Laporan-Tahunan-%d-%d.pdf", startDate.Year(), endDate.Year())
	writePDF(w, document, filename)
}

func writePDF(w http.ResponseWriter, document []byte, filename string) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(document)))
	w.WriteHeader(http.StatusOK)
	w.Write(document)
}
