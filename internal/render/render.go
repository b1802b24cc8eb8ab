// Package render formats scenario results for terminal display: locale-aware
// currency and number formatting, "n/a" for ratios that were not computable.
// Pure string building; no conversion between currencies happens here.
package render

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sells-group/abm-planner/internal/engine"
)

// Formatter renders amounts and results for one locale/currency pair.
type Formatter struct {
	printer *message.Printer
	unit    currency.Unit
}

// New builds a Formatter for the given BCP 47 locale and ISO 4217 currency
// code. An unparseable locale falls back to English; an unknown currency is
// an error.
func New(locale, currencyCode string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}

	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return nil, eris.Wrapf(err, "render: parse currency %q", currencyCode)
	}

	return &Formatter{
		printer: message.NewPrinter(tag),
		unit:    unit,
	}, nil
}

// Money formats a currency amount with grouping and symbol.
func (f *Formatter) Money(v float64) string {
	return f.printer.Sprintf("%v", currency.Symbol(f.unit.Amount(v)))
}

// Count formats a fractional account/win count to one decimal place.
func (f *Formatter) Count(v float64) string {
	return f.printer.Sprintf("%.1f", v)
}

// Percent formats a percentage value (already in percent units).
func (f *Formatter) Percent(pct float64) string {
	return f.printer.Sprintf("%.1f%%", pct)
}

// Ratio formats a nullable ratio as a percentage, or "n/a" when nil.
func (f *Formatter) Ratio(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return f.printer.Sprintf("%.1f%%", *v*100)
}

// Months formats a nullable month figure, or "n/a" when nil.
func (f *Formatter) Months(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return f.printer.Sprintf("%.1f mo", *v)
}

// Wins formats a nullable win count, or "n/a" when nil.
func (f *Formatter) Wins(v *int) string {
	if v == nil {
		return "n/a"
	}
	return f.printer.Sprintf("%d", *v)
}

// Summary renders a full scenario result as a terminal block.
func (f *Formatter) Summary(res engine.ScenarioResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Coverage\n")
	fmt.Fprintf(&b, "  requested / capacity / treated  %d / %d / %d\n",
		res.Coverage.RequestedAccounts, res.Coverage.AccountCapacity, res.Coverage.TreatedAccounts)
	fmt.Fprintf(&b, "  coverage rate                   %s\n", f.Percent(res.Coverage.CoverageRate*100))
	fmt.Fprintf(&b, "  intensity factor                %.2f\n", res.Coverage.IntensityFactor)
	fmt.Fprintf(&b, "  binding constraint              %s", res.Coverage.Binding)
	if res.Coverage.TeamBottleneck != "" {
		fmt.Fprintf(&b, " (%s)", res.Coverage.TeamBottleneck)
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%-22s %14s %14s\n", "Funnel", "Baseline", "ABM")
	fmt.Fprintf(&b, "%-22s %14s %14s\n", "  in-market accounts",
		f.Count(res.Baseline.InMarketAccounts), f.Count(res.Abm.InMarketAccounts))
	fmt.Fprintf(&b, "%-22s %14s %14s\n", "  qualified opps",
		f.Count(res.Baseline.QualifiedOpps), f.Count(res.Abm.QualifiedOpps))
	fmt.Fprintf(&b, "%-22s %14s %14s\n", "  expected wins",
		f.Count(res.Baseline.ExpectedWins), f.Count(res.Abm.ExpectedWins))
	fmt.Fprintf(&b, "%-22s %14s %14s\n", "  revenue",
		f.Money(res.Baseline.Revenue), f.Money(res.Abm.Revenue))
	fmt.Fprintf(&b, "%-22s %14s %14s\n", "  gross profit",
		f.Money(res.Baseline.GrossProfit), f.Money(res.Abm.GrossProfit))
	b.WriteString("\n")

	fmt.Fprintf(&b, "Financials\n")
	fmt.Fprintf(&b, "  total cost              %s\n", f.Money(res.Incremental.TotalCost))
	fmt.Fprintf(&b, "  incremental revenue     %s\n", f.Money(res.Incremental.IncrementalRevenue))
	fmt.Fprintf(&b, "  incremental gross profit %s\n", f.Money(res.Incremental.IncrementalGrossProfit))
	fmt.Fprintf(&b, "  ROI                     %s\n", f.Ratio(res.Incremental.ROI))
	fmt.Fprintf(&b, "  gross ROMI              %s\n", f.Ratio(res.Incremental.GrossROMI))
	fmt.Fprintf(&b, "  break-even wins         %s\n", f.Wins(res.Incremental.BreakEvenWins))
	fmt.Fprintf(&b, "  payback                 %s\n", f.Months(res.Incremental.PaybackMonths))

	for _, g := range res.Guardrails {
		fmt.Fprintf(&b, "  ! %s\n", g)
	}

	return b.String()
}

// Grid renders the sensitivity matrix as a table: rows are in-market rates,
// columns are win-rate uplifts, cells are ROI.
func (f *Formatter) Grid(grid [][]engine.SensitivityCell) string {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return ""
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%-12s", "in-mkt \\ +pp")
	for _, cell := range grid[0] {
		fmt.Fprintf(&b, "%10s", f.printer.Sprintf("+%.0fpp", cell.WinUpliftPoints))
	}
	b.WriteString("\n")

	for _, row := range grid {
		fmt.Fprintf(&b, "%-12s", f.Percent(row[0].InMarketRatePct))
		for _, cell := range row {
			fmt.Fprintf(&b, "%10s", f.Ratio(cell.ROI))
		}
		b.WriteString("\n")
	}

	return b.String()
}
