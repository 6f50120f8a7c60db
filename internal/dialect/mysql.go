package dialect

import (
	"fmt"

	"ecom-report/internal/schema"
)

type MysqlDialect struct{}

func (d *MysqlDialect) Driver() string {
	return "mysql"
}

func (d *MysqlDialect) QuoteIdent(name string) string {
	return "`" + name + "`"
}

func (d *MysqlDialect) ColumnType(kind schema.Kind) string {
	switch kind {
	case schema.KindInt:
		return "BIGINT"
	case schema.KindFloat:
		return "DOUBLE"
	case schema.KindTime:
		return "DATETIME"
	default:
		return "TEXT"
	}
}

func (d *MysqlDialect) CreateTableQuery(table string, cols []string, kinds []schema.Kind) string {
	return buildCreateTable(d, table, cols, kinds)
}

func (d *MysqlDialect) DropTableQuery(table string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", d.QuoteIdent(table))
}

func (d *MysqlDialect) InsertQuery(table string, cols []string) string {
	return buildInsert(d, table, cols)
}

func (d *MysqlDialect) CountQuery(table string) string {
	return buildCount(d, table)
}

func (d *MysqlDialect) Placeholder(index int) string {
	return "?"
}
