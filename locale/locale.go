// Package locale renders monetary amounts and dates for display in the
// Persian locale: Jalali calendar dates and localized digit glyphs with
// thousands separators. Display only — never used for arithmetic.
package locale

import (
	"time"

	"github.com/shopspring/decimal"
	ptime "github.com/yaa110/go-persian-calendar"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Persian)

var persianDigits = [10]rune{'۰', '۱', '۲', '۳', '۴', '۵', '۶', '۷', '۸', '۹'}

func toPersianDigits(s string) string {
	out := []rune(s)
	for i, r := range out {
		if r >= '0' && r <= '9' {
			out[i] = persianDigits[r-'0']
		}
	}
	return string(out)
}

// U+066B, the Persian decimal separator.
const decimalSeparator = "٫"

// FormatAmount renders a monetary value with localized digits and
// thousands separators, working from the decimal's own digits so no
// precision is lost to a float conversion. Whole amounts are shown
// without decimals; fractional ones are quantized to 2 places.
func FormatAmount(d decimal.Decimal) string {
	q := d.Round(2)
	if q.IsInteger() {
		return printer.Sprintf("%d", q.IntPart())
	}
	whole := printer.Sprintf("%d", q.IntPart())
	frac := q.Abs().Sub(q.Abs().Truncate(0)).StringFixed(2)
	return whole + decimalSeparator + toPersianDigits(frac[2:])
}

// FormatDate converts a Gregorian date to the Jalali calendar,
// rendered as yyyy/MM/dd with localized digits.
func FormatDate(t time.Time) string {
	return toPersianDigits(ptime.New(t).Format("yyyy/MM/dd"))
}
