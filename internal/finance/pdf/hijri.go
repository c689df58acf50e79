package pdf

import (
	"fmt"
	"time"
)

var hijriMonths = [12]string{
	"Muharram", "Safar", "Rabiul Awal", "Rabiul Akhir",
	"Jumadil Awal", "Jumadil Akhir", "Rajab", "Sya'ban",
	"Ramadhan", "Syawal", "Dzulqaidah", "Dzulhijjah",
}

// julianDayNumber converts a Gregorian calendar date to its Julian day number.
func julianDayNumber(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// hijriFromJDN converts a Julian day number to a tabular (arithmetic) Islamic
// calendar date. The tabular calendar runs on a fixed 30-year cycle of 11
// leap years, which is accurate to within a day of the observed calendar.
func hijriFromJDN(jdn int) (year, month, day int) {
	days := jdn - 1948440 + 10632
	n := (days - 1) / 10631
	days = days - 10631*n + 354

	j := ((10985-days)/5316)*((50*days)/17719) + (days/5670)*((43*days)/15238)
	days = days - ((30-j)/15)*((17719*j)/50) - (j/16)*((15238*j)/43) + 29

	month = (24 * days) / 709
	day = days - (709*month)/24
	year = 30*n + j - 30
	return year, month, day
}

func hijriDate(t time.Time) (year, month, day int) {
	return hijriFromJDN(julianDayNumber(t.Year(), int(t.Month()), t.Day()))
}

// formatHijriDate renders a date in the Islamic calendar, e.g. "1 Ramadhan 1445 H".
func formatHijriDate(t time.Time) string {
	year, month, day := hijriDate(t)
	return fmt.Sprintf("%d %s %d H", day, hijriMonths[month-1], year)
}
