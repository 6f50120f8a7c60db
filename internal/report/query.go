// Package report executes the customer revenue query and renders its
// results as a CSV export plus a formatted console report.
package report

import (
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"ecom-report/internal/schema"

	"github.com/shopspring/decimal"
)

// ErrDatabaseNotFound is returned when the sqlite database file does not
// exist yet. Callers can check for this with errors.Is.
var ErrDatabaseNotFound = errors.New("database not found")

// Columns the revenue query must produce (matched case-insensitively).
var requiredColumns = []string{"customer_id", "full_name", "total_orders", "total_quantity", "total_revenue"}

// Row is the typed per-customer view of one result record.
type Row struct {
	CustomerID int64
	FullName   string
	Orders     int64
	Quantity   int64
	Revenue    decimal.Decimal
}

// ResultSet holds the materialized query output. Records keep every column
// the query produced (for the CSV export); Rows is the typed view used by
// the console report. NULL aggregates are already defaulted to zero in both.
type ResultSet struct {
	Columns []string
	Records [][]interface{}
	Rows    []Row
}

// ReadQueryFile reads the single SQL statement the reporter executes.
func ReadQueryFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("SQL file not found: %s: %w", path, err)
	}
	query := strings.TrimSpace(string(data))
	if query == "" {
		return "", fmt.Errorf("SQL file is empty: %s", path)
	}
	return query, nil
}

// Run executes the query and materializes every row, defaulting NULL
// aggregate columns to zero.
func Run(db *sql.DB, query string) (*ResultSet, error) {
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	index, err := requiredColumnIndex(columns)
	if err != nil {
		return nil, err
	}

	rs := &ResultSet{Columns: schema.NormalizeHeader(columns)}
	for rows.Next() {
		record := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range record {
			ptrs[i] = &record[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan result row: %w", err)
		}
		for i, v := range record {
			if b, ok := v.([]byte); ok {
				record[i] = string(b)
			}
		}

		// NULL aggregates mean "customer without orders": default to zero.
		for _, col := range []string{"total_orders", "total_quantity", "total_revenue"} {
			if record[index[col]] == nil {
				record[index[col]] = int64(0)
			}
		}

		row := Row{
			CustomerID: toInt64(record[index["customer_id"]]),
			FullName:   toString(record[index["full_name"]]),
			Orders:     toInt64(record[index["total_orders"]]),
			Quantity:   toInt64(record[index["total_quantity"]]),
			Revenue:    toDecimal(record[index["total_revenue"]]),
		}
		rs.Records = append(rs.Records, record)
		rs.Rows = append(rs.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating result rows: %w", err)
	}
	return rs, nil
}

func requiredColumnIndex(columns []string) (map[string]int, error) {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		index[schema.NormalizeColumn(c)] = i
	}
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("query result is missing required columns: %s", strings.Join(missing, ", "))
	}
	return index, nil
}

// WriteCSV exports the full result set, creating the output directory.
func (rs *ResultSet) WriteCSV(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(rs.Columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, record := range rs.Records {
		cells := make([]string, len(record))
		for i, v := range record {
			cells[i] = formatCell(v)
		}
		if err := w.Write(cells); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV output: %w", err)
	}
	return nil
}

func formatCell(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case time.Time:
		return t.Format("2006-01-02 15:04:05")
	case string:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}

func toInt64(v interface{}) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case float64:
		return int64(t)
	case string:
		n, _ := strconv.ParseFloat(t, 64)
		return int64(n)
	default:
		return 0
	}
}

func toString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

func toDecimal(v interface{}) decimal.Decimal {
	switch t := v.(type) {
	case int64:
		return decimal.NewFromInt(t)
	case float64:
		return decimal.NewFromFloat(t)
	case string:
		if d, err := decimal.NewFromString(t); err == nil {
			return d
		}
	}
	return decimal.Zero
}
