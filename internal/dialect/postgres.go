package dialect

import (
	"fmt"

	"ecom-report/internal/schema"
)

type PostgresDialect struct{}

func (d *PostgresDialect) Driver() string {
	return "postgres"
}

func (d *PostgresDialect) QuoteIdent(name string) string {
	return `"` + name + `"`
}

func (d *PostgresDialect) ColumnType(kind schema.Kind) string {
	switch kind {
	case schema.KindInt:
		return "BIGINT"
	case schema.KindFloat:
		return "DOUBLE PRECISION"
	case schema.KindTime:
		return "TIMESTAMP"
	default:
		return "TEXT"
	}
}

func (d *PostgresDialect) CreateTableQuery(table string, cols []string, kinds []schema.Kind) string {
	return buildCreateTable(d, table, cols, kinds)
}

func (d *PostgresDialect) DropTableQuery(table string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", d.QuoteIdent(table))
}

func (d *PostgresDialect) InsertQuery(table string, cols []string) string {
	return buildInsert(d, table, cols)
}

func (d *PostgresDialect) CountQuery(table string) string {
	return buildCount(d, table)
}

func (d *PostgresDialect) Placeholder(index int) string {
	return fmt.Sprintf("$%d", index+1)
}
