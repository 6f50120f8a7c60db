package dialect

import (
	"fmt"

	"ecom-report/internal/schema"
)

type MSSQLDialect struct{}

func (d *MSSQLDialect) Driver() string {
	return "sqlserver"
}

func (d *MSSQLDialect) QuoteIdent(name string) string {
	return "[" + name + "]"
}

func (d *MSSQLDialect) ColumnType(kind schema.Kind) string {
	switch kind {
	case schema.KindInt:
		return "BIGINT"
	case schema.KindFloat:
		return "FLOAT"
	case schema.KindTime:
		return "DATETIME2"
	default:
		return "NVARCHAR(MAX)"
	}
}

func (d *MSSQLDialect) CreateTableQuery(table string, cols []string, kinds []schema.Kind) string {
	return buildCreateTable(d, table, cols, kinds)
}

func (d *MSSQLDialect) DropTableQuery(table string) string {
	// DROP TABLE IF EXISTS requires SQL Server 2016+
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", d.QuoteIdent(table))
}

func (d *MSSQLDialect) InsertQuery(table string, cols []string) string {
	return buildInsert(d, table, cols)
}

func (d *MSSQLDialect) CountQuery(table string) string {
	return buildCount(d, table)
}

func (d *MSSQLDialect) Placeholder(index int) string {
	return fmt.Sprintf("@p%d", index+1)
}
