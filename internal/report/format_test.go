package report_test

import (
	"strings"
	"testing"

	"ecom-report/internal/report"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestFormatCurrency(t *testing.T) {
	cases := map[string]string{
		"0":          "Rs.0.00",
		"5":          "Rs.5.00",
		"999.9":      "Rs.999.90",
		"1000":       "Rs.1,000.00",
		"1234567.89": "Rs.1,234,567.89",
		"100000":     "Rs.100,000.00",
		"-1234.5":    "-Rs.1,234.50",
	}
	for in, want := range cases {
		assert.Equal(t, want, report.FormatCurrency(dec(in)), "input %s", in)
	}
}

func TestAnalyze_SplitsActiveAndInactive(t *testing.T) {
	rows := []report.Row{
		{CustomerID: 1, FullName: "A", Orders: 2, Quantity: 5, Revenue: dec("100.50")},
		{CustomerID: 2, FullName: "B", Orders: 0, Quantity: 0, Revenue: dec("0")},
		{CustomerID: 3, FullName: "C", Orders: 1, Quantity: 1, Revenue: dec("49.50")},
	}

	a := report.Analyze(rows)

	assert.Equal(t, 2, a.Summary.ActiveCount)
	assert.Equal(t, 1, a.Summary.InactiveCount)
	assert.Equal(t, int64(3), a.Summary.TotalOrders)
	assert.Equal(t, int64(6), a.Summary.TotalQuantity)
	assert.Equal(t, "150", a.Summary.TotalRevenue.String())
	assert.Equal(t, "75", a.Summary.AvgRevenue.String())
}

func TestAnalyze_NoActiveCustomers(t *testing.T) {
	a := report.Analyze([]report.Row{{CustomerID: 1, Orders: 0}})
	assert.Zero(t, a.Summary.ActiveCount)
	assert.Equal(t, "0", a.Summary.AvgRevenue.String())
}

func TestTopByRevenue_RanksDescendingAndCaps(t *testing.T) {
	var active []report.Row
	for i := 1; i <= 12; i++ {
		active = append(active, report.Row{
			CustomerID: int64(i),
			Orders:     1,
			Revenue:    decimal.NewFromInt(int64(i * 10)),
		})
	}

	top := report.TopByRevenue(active, 10)
	require.Len(t, top, 10)
	assert.Equal(t, int64(12), top[0].CustomerID)
	assert.Equal(t, int64(3), top[9].CustomerID)
	// input order preserved
	assert.Equal(t, int64(1), active[0].CustomerID)
}

func TestTopByRevenue_ExcludesNothingButInput(t *testing.T) {
	// inactive customers never reach the ranking: the caller passes
	// only the active slice
	a := report.Analyze([]report.Row{
		{CustomerID: 1, Orders: 3, Revenue: dec("10")},
		{CustomerID: 2, Orders: 0, Revenue: dec("0")},
	})
	top := report.TopByRevenue(a.Active, 10)
	require.Len(t, top, 1)
	assert.Equal(t, int64(1), top[0].CustomerID)
}

func TestPlainRenderer_AlignsColumns(t *testing.T) {
	out := report.PlainRenderer{}.Render(
		[]string{"ID", "Name"},
		[][]string{{"1", "Asha"}, {"22", "B"}})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.True(t, strings.HasPrefix(lines[1], "---"))
	assert.Contains(t, lines[2], "Asha")
}

func TestPrintReport_Sections(t *testing.T) {
	a := report.Analyze([]report.Row{
		{CustomerID: 1, FullName: "Asha", Orders: 2, Quantity: 4, Revenue: dec("2500")},
		{CustomerID: 2, FullName: "Bimal", Orders: 0, Quantity: 0, Revenue: dec("0")},
	})

	var b strings.Builder
	report.PrintReport(&b, a, report.PlainRenderer{})
	out := b.String()

	assert.Contains(t, out, "CUSTOMER REVENUE ANALYSIS - ACTIVE CUSTOMERS")
	assert.Contains(t, out, "SUMMARY STATISTICS - ACTIVE CUSTOMERS")
	assert.Contains(t, out, "TOP 10 CUSTOMERS BY REVENUE")
	assert.Contains(t, out, "Rs.2,500.00")
	assert.Contains(t, out, "Total Inactive Customers:      1")
	assert.NotContains(t, out, "Bimal", "inactive customers stay out of the tables")
}

func TestPrintReport_NoActiveCustomers(t *testing.T) {
	a := report.Analyze([]report.Row{{CustomerID: 9, FullName: "Z", Orders: 0}})

	var b strings.Builder
	report.PrintReport(&b, a, report.GridRenderer{})
	out := b.String()

	assert.Contains(t, out, "No active customers found.")
	assert.NotContains(t, out, "TOP 10")
	assert.Contains(t, out, "Total Inactive Customers:      1")
}
