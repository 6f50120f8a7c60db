package report

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Summary holds the aggregate statistics computed over active customers.
type Summary struct {
	ActiveCount   int
	InactiveCount int
	TotalOrders   int64
	TotalQuantity int64
	TotalRevenue  decimal.Decimal
	AvgRevenue    decimal.Decimal
}

// Analysis is the console report's view of a result set: active customers
// (at least one order), inactive ones, and active-only summary statistics.
type Analysis struct {
	Active   []Row
	Inactive []Row
	Summary  Summary
}

// Analyze splits customers into active and inactive and computes summary
// statistics over the active set only.
func Analyze(rows []Row) Analysis {
	a := Analysis{Summary: Summary{TotalRevenue: decimal.Zero, AvgRevenue: decimal.Zero}}
	for _, r := range rows {
		if r.Orders > 0 {
			a.Active = append(a.Active, r)
			a.Summary.TotalOrders += r.Orders
			a.Summary.TotalQuantity += r.Quantity
			a.Summary.TotalRevenue = a.Summary.TotalRevenue.Add(r.Revenue)
		} else {
			a.Inactive = append(a.Inactive, r)
		}
	}
	a.Summary.ActiveCount = len(a.Active)
	a.Summary.InactiveCount = len(a.Inactive)
	if a.Summary.ActiveCount > 0 {
		a.Summary.AvgRevenue = a.Summary.TotalRevenue.Div(decimal.NewFromInt(int64(a.Summary.ActiveCount)))
	}
	return a
}

// TopByRevenue returns up to n active customers ranked by revenue
// descending. Ranking is computed here rather than trusting the SQL file's
// ORDER BY. The sort is stable so equal revenues keep query order.
func TopByRevenue(active []Row, n int) []Row {
	ranked := make([]Row, len(active))
	copy(ranked, active)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue.Cmp(ranked[j].Revenue) > 0
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
