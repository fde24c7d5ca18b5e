// Package format renders job card fields the same way on every surface.
package format

import (
	"fmt"

	"github.com/samber/mo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"job-board-web/internal/models"
)

var printer = message.NewPrinter(language.English)

// SalaryRange renders the salary line of a job card. A zero bound counts
// as unknown, and the line is empty when neither bound is known.
func SalaryRange(minSalary, maxSalary mo.Option[float64]) string {
	lo, hasLo := minSalary.Get()
	hi, hasHi := maxSalary.Get()
	hasLo = hasLo && lo != 0
	hasHi = hasHi && hi != 0

	switch {
	case hasLo && hasHi:
		return printer.Sprintf("$%v - $%v", amount(lo), amount(hi))
	case hasLo:
		return printer.Sprintf("From $%v", amount(lo))
	case hasHi:
		return printer.Sprintf("Up to $%v", amount(hi))
	}
	return ""
}

// amount groups thousands and keeps up to three fraction digits.
func amount(v float64) number.Formatter {
	return number.Decimal(v, number.MaxFractionDigits(3))
}

// Date renders a calendar date as "Jan 2, 2006".
func Date(d models.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.Format("Jan 2, 2006")
}

func OpenPositions(n int) string {
	if n == 1 {
		return "1 open position"
	}
	return fmt.Sprintf("%d open positions", n)
}
