package dialect

import (
	"fmt"

	"ecom-report/internal/schema"
)

// SqliteDialect targets the embedded file database (mattn/go-sqlite3).
// This is the pipeline default.
type SqliteDialect struct{}

func (d *SqliteDialect) Driver() string {
	return "sqlite3"
}

func (d *SqliteDialect) QuoteIdent(name string) string {
	return `"` + name + `"`
}

func (d *SqliteDialect) ColumnType(kind schema.Kind) string {
	switch kind {
	case schema.KindInt:
		return "INTEGER"
	case schema.KindFloat:
		return "REAL"
	case schema.KindTime:
		return "TIMESTAMP"
	default:
		return "TEXT"
	}
}

func (d *SqliteDialect) CreateTableQuery(table string, cols []string, kinds []schema.Kind) string {
	return buildCreateTable(d, table, cols, kinds)
}

func (d *SqliteDialect) DropTableQuery(table string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", d.QuoteIdent(table))
}

func (d *SqliteDialect) InsertQuery(table string, cols []string) string {
	return buildInsert(d, table, cols)
}

func (d *SqliteDialect) CountQuery(table string) string {
	return buildCount(d, table)
}

func (d *SqliteDialect) Placeholder(index int) string {
	return "?"
}
