package pdf

import (
	"bytes"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/ulil-albab/MasjidManager/internal/finance/domain"
)

const (
	pageMargin   = 15.0
	contentWidth = 180.0
	lineHeight   = 6.0
)

// Renderer produces the institutional report document. Missing fonts or logos
// degrade to core fonts and drawn placeholders instead of failing the export.
type Renderer struct {
	assetDir string
}

func NewRenderer(assetDir string) *Renderer {
	return &Renderer{assetDir: assetDir}
}

type typography struct {
	family string
	tr     func(string) string
}

func (r *Renderer) Render(report *domain.Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Laporan Keuangan Masjid Ulil Albab", false)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()

	fonts := r.registerFonts(pdf)
	r.drawHeader(pdf, fonts)
	drawTitle(pdf, fonts, report.Kind)
	drawContent(pdf, fonts, report)
	drawFooter(pdf, fonts)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// registerFonts loads Poppins when the TTF files are present and falls back
// to Helvetica otherwise. Core fonts are cp1252, so text must pass through
// the unicode translator in that case.
func (r *Renderer) registerFonts(pdf *gofpdf.Fpdf) typography {
	regular := filepath.Join(r.assetDir, "fonts", "Poppins-Regular.ttf")
	bold := filepath.Join(r.assetDir, "fonts", "Poppins-Bold.ttf")

	if fileExists(regular) && fileExists(bold) {
		pdf.AddUTF8Font("Poppins", "", regular)
		pdf.AddUTF8Font("Poppins", "B", bold)
		return typography{family: "Poppins", tr: func(s string) string { return s }}
	}
	log.Println("Poppins font not found, using default fonts")
	return typography{family: "Helvetica", tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// loadLogo reads and decodes a PNG, returning nil when the file is missing or
// corrupt. Registering a broken image would poison the document's error state.
func (r *Renderer) loadLogo(name string) []byte {
	path := filepath.Join(r.assetDir, "images", name)
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error loading logo %s: %v", name, err)
		return nil
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		log.Printf("Error decoding logo %s: %v", name, err)
		return nil
	}
	return data
}

func (r *Renderer) drawHeader(pdf *gofpdf.Fpdf, fonts typography) {
	unmLogo := r.loadLogo("unm.png")
	ulilLogo := r.loadLogo("ulil.png")
	opts := gofpdf.ImageOptions{ImageType: "PNG"}

	if unmLogo != nil {
		pdf.RegisterImageOptionsReader("unm-logo", opts, bytes.NewReader(unmLogo))
		pdf.ImageOptions("unm-logo", pageMargin+2, 12, 16, 16, false, opts, 0, "")
	} else {
		pdf.SetFont(fonts.family, "", 9)
		pdf.Circle(pageMargin+10, 20, 8, "D")
		pdf.Text(pageMargin+6, 21, "UNM")
	}

	if ulilLogo != nil {
		pdf.RegisterImageOptionsReader("ulil-logo", opts, bytes.NewReader(ulilLogo))
		pdf.ImageOptions("ulil-logo", pageMargin+contentWidth-18, 12, 16, 16, false, opts, 0, "")
	} else {
		pdf.SetFont(fonts.family, "", 9)
		pdf.Rect(pageMargin+contentWidth-18, 12, 16, 13, "D")
		pdf.Text(pageMargin+contentWidth-14, 19, "Ulil")
	}

	pdf.SetXY(pageMargin+25, 12)
	pdf.SetFont(fonts.family, "B", 12)
	pdf.CellFormat(contentWidth-50, 5, fonts.tr("PENGURUS MASJID"), "", 2, "C", false, 0, "")
	pdf.SetTextColor(0, 128, 0)
	pdf.CellFormat(contentWidth-50, 5, fonts.tr("ULIL ALBAB"), "", 2, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont(fonts.family, "", 12)
	pdf.CellFormat(contentWidth-50, 5, fonts.tr("UNIVERSITAS NEGERI MAKASSAR"), "", 2, "C", false, 0, "")

	pdf.SetLineWidth(0.7)
	pdf.Line(pageMargin, 30, pageMargin+contentWidth, 30)

	pdf.SetXY(pageMargin, 32)
	pdf.SetFont(fonts.family, "", 10)
	pdf.CellFormat(contentWidth, 5,
		fonts.tr("Sekretariat: Kompleks Masjid Ulil Albab UNM Makassar, 90224. Telp: 082187502481"),
		"", 1, "C", false, 0, "")

	pdf.SetLineWidth(0.3)
	pdf.Line(pageMargin, 39, pageMargin+contentWidth, 39)
	pdf.SetY(44)
}

func drawTitle(pdf *gofpdf.Fpdf, fonts typography, kind string) {
	pdf.SetFont(fonts.family, "B", 12)
	pdf.CellFormat(contentWidth, lineHeight, fonts.tr("LAPORAN KEUANGAN"), "", 1, "C", false, 0, "")

	var subtitle string
	switch kind {
	case domain.ReportWeekly:
		subtitle = "MASJID ULIL ALBAB UNM (MINGGUAN)"
	case domain.ReportMonthly:
		subtitle = "MASJID ULIL ALBAB UNM (BULANAN)"
	case domain.ReportYearly:
		subtitle = "MASJID ULIL ALBAB UNM (TAHUNAN)"
	case domain.ReportCustom:
		subtitle = "MASJID ULIL ALBAB UNM (PERIODE KHUSUS)"
	default:
		subtitle = "MASJID ULIL ALBAB UNM"
	}
	pdf.SetFont(fonts.family, "", 12)
	pdf.CellFormat(contentWidth, lineHeight, fonts.tr(subtitle), "", 1, "C", false, 0, "")
	pdf.Ln(4)
}

func drawContent(pdf *gofpdf.Fpdf, fonts typography, report *domain.Report) {
	pdf.SetFont(fonts.family, "B", 12)
	pdf.CellFormat(contentWidth, lineHeight, fonts.tr("A. Laporan Keuangan"), "", 1, "L", false, 0, "")

	if report.Kind == domain.ReportCustom {
		pdf.SetFont(fonts.family, "", 11)
		period := "Periode Laporan: " + formatDate(report.Range.Start) + " - " + formatDate(report.Range.End)
		pdf.CellFormat(contentWidth, lineHeight, fonts.tr(period), "", 1, "L", false, 0, "")
		pdf.Ln(2)
	} else {
		drawOpeningBalance(pdf, fonts, report)
	}

	drawTransactionBlock(pdf, fonts, "Pemasukan", report.Incomes,
		"Isi kotak amal", report.TotalIncome, "Total Pemasukan", report.TotalIncome)
	drawTransactionBlock(pdf, fonts, "Pengeluaran", report.Expenses,
		"Tidak ada pengeluaran", 0, "Total Pengeluaran", report.TotalExpense)

	pdf.SetFont(fonts.family, "B", 11)
	pdf.CellFormat(120, lineHeight, fonts.tr("Saldo kas saat ini"), "", 0, "L", false, 0, "")
	pdf.CellFormat(60, lineHeight, fonts.tr(": "+formatRupiah(report.ClosingBalance)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	if report.Kind == domain.ReportWeekly {
		drawFridayAgenda(pdf, fonts, report.Khatib)
	}
}

// drawOpeningBalance labels the carried-over balance with the last day before
// the reporting window, in both calendars.
func drawOpeningBalance(pdf *gofpdf.Fpdf, fonts typography, report *domain.Report) {
	var label string
	switch report.Kind {
	case domain.ReportWeekly:
		label = "Saldo Kas 7 Hari Lalu"
	case domain.ReportMonthly:
		label = "Saldo Kas Bulan Lalu"
	case domain.ReportYearly:
		label = "Saldo Kas Tahun Lalu"
	default:
		label = "Saldo Kas Sebelumnya"
	}
	referenceDate := report.Range.Start.AddDate(0, 0, -1)

	pdf.SetFont(fonts.family, "", 11)
	pdf.CellFormat(120, lineHeight, fonts.tr(label), "", 0, "L", false, 0, "")
	pdf.CellFormat(60, lineHeight, fonts.tr(": "+formatRupiah(report.OpeningBalance)), "", 1, "L", false, 0, "")
	dates := formatDate(referenceDate) + " M / " + formatHijriDate(referenceDate)
	pdf.CellFormat(contentWidth, lineHeight, fonts.tr(dates), "", 1, "L", false, 0, "")
	pdf.Ln(2)
}

func drawTransactionBlock(pdf *gofpdf.Fpdf, fonts typography, heading string, transactions []domain.Transaction, emptyLabel string, emptyAmount int64, totalLabel string, total int64) {
	pdf.SetFont(fonts.family, "B", 11)
	pdf.CellFormat(contentWidth, lineHeight, fonts.tr(heading), "", 1, "L", false, 0, "")

	pdf.SetFont(fonts.family, "", 11)
	if len(transactions) > 0 {
		for _, transaction := range transactions {
			pdf.SetX(pageMargin + 8)
			pdf.CellFormat(112, lineHeight, fonts.tr("- "+transaction.Name), "", 0, "L", false, 0, "")
			pdf.CellFormat(60, lineHeight, fonts.tr(": "+formatRupiah(transaction.Amount)), "", 1, "L", false, 0, "")
		}
	} else {
		pdf.SetX(pageMargin + 8)
		pdf.CellFormat(112, lineHeight, fonts.tr("- "+emptyLabel), "", 0, "L", false, 0, "")
		pdf.CellFormat(60, lineHeight, fonts.tr(": "+formatRupiah(emptyAmount)), "", 1, "L", false, 0, "")
	}

	pdf.CellFormat(contentWidth, lineHeight,
		fonts.tr(totalLabel+": "+formatRupiah(total)), "", 1, "R", false, 0, "")
	pdf.Ln(2)
}

func drawFridayAgenda(pdf *gofpdf.Fpdf, fonts typography, khatib string) {
	pdf.SetFont(fonts.family, "B", 12)
	pdf.CellFormat(contentWidth, lineHeight, fonts.tr("B. Acara Jum'at"), "", 1, "L", false, 0, "")

	if khatib == "" {
		khatib = ".............."
	}
	rows := [][2]string{
		{"Muadzin", ": PM ULIL ALBAB"},
		{"Imam", ": ............................."},
		{"Khatib", ": " + khatib},
	}
	pdf.SetFont(fonts.family, "", 11)
	for _, row := range rows {
		pdf.SetX(pageMargin + 8)
		pdf.CellFormat(25, lineHeight, fonts.tr(row[0]), "", 0, "L", false, 0, "")
		pdf.CellFormat(147, lineHeight, fonts.tr(row[1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func drawFooter(pdf *gofpdf.Fpdf, fonts typography) {
	now := time.Now()
	blockX := pageMargin + contentWidth - 65

	pdf.SetFont(fonts.family, "", 11)
	pdf.SetX(blockX)
	pdf.CellFormat(65, lineHeight, fonts.tr("Makassar, "+formatDate(now)+" M"), "", 1, "C", false, 0, "")
	pdf.SetX(blockX)
	pdf.CellFormat(65, lineHeight, fonts.tr(formatHijriDate(now)), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	pdf.SetX(blockX)
	pdf.CellFormat(65, lineHeight, fonts.tr("Hormat kami,"), "", 1, "C", false, 0, "")
	pdf.SetX(blockX)
	pdf.CellFormat(65, lineHeight, fonts.tr("Pengurus Masjid Ulil Albab"), "", 1, "C", false, 0, "")
	pdf.Ln(12)

	pdf.SetFont(fonts.family, "BU", 11)
	pdf.SetX(blockX)
	pdf.CellFormat(65, lineHeight, fonts.tr("Zulfikar, S.Pd., M.Si"), "", 1, "C", false, 0, "")
}
