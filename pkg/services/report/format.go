package report

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	dateLayout    = "02/01/2006"
	euroSuffix    = " €"
	thousandsSep  = " "
	decimalSep    = ","
	missingMarker = "-"
)

// PlainDecimal is the machine form written to CSV: 1500.00.
func PlainDecimal(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatNumber groups thousands with spaces and uses a decimal comma: 1 234,56.
func FormatNumber(d decimal.Decimal, places int32) string {
	fixed := d.Abs().StringFixed(places)
	integer, fraction, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if d.Round(places).IsNegative() {
		b.WriteString("-")
	}
	for i, digit := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			b.WriteString(thousandsSep)
		}
		b.WriteRune(digit)
	}
	if fraction != "" {
		b.WriteString(decimalSep)
		b.WriteString(fraction)
	}
	return b.String()
}

func FormatMoney(d decimal.Decimal) string {
	return FormatNumber(d, 2) + euroSuffix
}

// FormatSignedMoney always shows the sign of a non-zero amount: +5 200,00 €.
func FormatSignedMoney(d decimal.Decimal) string {
	if d.Round(2).IsPositive() {
		return "+" + FormatMoney(d)
	}
	return FormatMoney(d)
}

func FormatPercent(p float64) string {
	return FormatNumber(decimal.NewFromFloat(p), 2) + " %"
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return missingMarker
	}
	return t.Format(dateLayout)
}
