package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"
)

const rule = 110

// FormatCurrency renders a revenue value as "Rs." with thousands separators
// and two decimals. Zero renders as "Rs.0.00".
func FormatCurrency(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	grouped := groupThousands(parts[0])

	out := "Rs." + grouped + "." + parts[1]
	if neg {
		out = "-" + out
	}
	return out
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// TableRenderer renders one table section of the console report.
// Two strategies exist: grid (boxed) and plain (fixed-width fallback),
// selected by configuration.
type TableRenderer interface {
	Render(headers []string, rows [][]string) string
}

// NewRenderer returns the renderer for a configured style name.
func NewRenderer(style string) TableRenderer {
	if strings.EqualFold(style, "plain") {
		return PlainRenderer{}
	}
	return GridRenderer{}
}

// GridRenderer draws a bordered table.
type GridRenderer struct{}

func (GridRenderer) Render(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers...).
		Rows(rows...)
	return t.String()
}

// PlainRenderer prints fixed-width columns with a dashed header rule.
type PlainRenderer struct{}

func (PlainRenderer) Render(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				b.WriteString("  ")
			}
			fmt.Fprintf(&b, "%-*s", widths[i], cell)
		}
		b.WriteByte('\n')
	}
	writeRow(headers)
	b.WriteString(strings.Repeat("-", rule))
	b.WriteByte('\n')
	for _, row := range rows {
		writeRow(row)
	}
	return b.String()
}

// PrintReport writes the formatted console report: active customer table,
// summary statistics, top-10 ranking, and the inactive customer summary.
func PrintReport(w io.Writer, a Analysis, r TableRenderer) {
	banner(w, "CUSTOMER REVENUE ANALYSIS - ACTIVE CUSTOMERS")

	if len(a.Active) == 0 {
		fmt.Fprintln(w, "No active customers found.")
		fmt.Fprintln(w, strings.Repeat("=", rule))
		printInactive(w, a)
		return
	}

	headers := []string{"Customer ID", "Full Name", "Orders", "Quantity", "Total Revenue"}
	rows := make([][]string, 0, len(a.Active))
	for _, row := range a.Active {
		rows = append(rows, customerCells(row))
	}
	fmt.Fprintln(w, r.Render(headers, rows))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "SUMMARY STATISTICS - ACTIVE CUSTOMERS")
	fmt.Fprintln(w, strings.Repeat("-", rule))
	fmt.Fprintf(w, "  Active Customers:              %d\n", a.Summary.ActiveCount)
	fmt.Fprintf(w, "  Total Orders:                  %d\n", a.Summary.TotalOrders)
	fmt.Fprintf(w, "  Total Quantity Sold:           %d\n", a.Summary.TotalQuantity)
	fmt.Fprintf(w, "  Total Revenue:                 %s\n", FormatCurrency(a.Summary.TotalRevenue))
	fmt.Fprintf(w, "  Average Revenue per Customer:  %s\n", FormatCurrency(a.Summary.AvgRevenue))

	banner(w, "TOP 10 CUSTOMERS BY REVENUE")
	top := TopByRevenue(a.Active, 10)
	topHeaders := append([]string{"Rank"}, headers...)
	topRows := make([][]string, 0, len(top))
	for rank, row := range top {
		topRows = append(topRows, append([]string{strconv.Itoa(rank + 1)}, customerCells(row)...))
	}
	fmt.Fprintln(w, r.Render(topHeaders, topRows))
	fmt.Fprintln(w, strings.Repeat("=", rule))

	printInactive(w, a)
}

func customerCells(row Row) []string {
	return []string{
		strconv.FormatInt(row.CustomerID, 10),
		row.FullName,
		strconv.FormatInt(row.Orders, 10),
		strconv.FormatInt(row.Quantity, 10),
		FormatCurrency(row.Revenue),
	}
}

func banner(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", rule))
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", rule))
}

func printInactive(w io.Writer, a Analysis) {
	if a.Summary.InactiveCount == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "INACTIVE CUSTOMERS SUMMARY")
	fmt.Fprintln(w, strings.Repeat("-", rule))
	fmt.Fprintf(w, "  Total Inactive Customers:      %d\n", a.Summary.InactiveCount)
	fmt.Fprintln(w, "  These customers have not placed any orders yet.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", rule))
}
