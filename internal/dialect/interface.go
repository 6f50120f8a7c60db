package dialect

import "ecom-report/internal/schema"

// Dialect abstracts database-specific SQL generation for the pipeline tables.
type Dialect interface {
	// Driver returns the database/sql driver name this dialect targets.
	Driver() string

	// Identifier quoting
	QuoteIdent(name string) string

	// Column type mapping for coerced kinds
	ColumnType(kind schema.Kind) string

	// Query Generation
	CreateTableQuery(table string, cols []string, kinds []schema.Kind) string
	DropTableQuery(table string) string
	InsertQuery(table string, cols []string) string
	CountQuery(table string) string
	Placeholder(index int) string // Returns ?, $1, @p1, :1, etc.
}
