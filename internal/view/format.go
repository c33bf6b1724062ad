package view

import (
	"math"
	"strconv"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatPrice renders a USD amount without cents, e.g. "$1,200"
func FormatPrice(price float64) string {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return ""
	}
	return printer.Sprintf("$%d", int64(math.Round(price)))
}

// FormatDate renders the calendar date in UTC, e.g. "05/12/2023"
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("01/02/2006")
}

// FormatDateTime renders an instant in UTC
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("01/02/2006 15:04 MST")
}

// FormatAmountInput renders a price the way the amount input shows it
func FormatAmountInput(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// capitalize builds a Caser per call; Casers are not safe for concurrent use
func capitalize(s string) string {
	return cases.Title(language.AmericanEnglish).String(s)
}
