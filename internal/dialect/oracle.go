package dialect

import (
	"fmt"

	"ecom-report/internal/schema"
)

type OracleDialect struct{}

func (d *OracleDialect) Driver() string {
	return "oracle"
}

// Unquoted identifiers keep Oracle's case-insensitive resolution, which
// matches the lowercase column names the loader produces.
func (d *OracleDialect) QuoteIdent(name string) string {
	return name
}

func (d *OracleDialect) ColumnType(kind schema.Kind) string {
	switch kind {
	case schema.KindInt:
		return "NUMBER(19)"
	case schema.KindFloat:
		return "BINARY_DOUBLE"
	case schema.KindTime:
		return "TIMESTAMP"
	default:
		return "VARCHAR2(4000)"
	}
}

func (d *OracleDialect) CreateTableQuery(table string, cols []string, kinds []schema.Kind) string {
	return buildCreateTable(d, table, cols, kinds)
}

func (d *OracleDialect) DropTableQuery(table string) string {
	// Oracle has no DROP TABLE IF EXISTS; swallow ORA-00942 (table does not exist).
	return fmt.Sprintf(
		"BEGIN EXECUTE IMMEDIATE 'DROP TABLE %s'; EXCEPTION WHEN OTHERS THEN IF SQLCODE != -942 THEN RAISE; END IF; END;",
		table)
}

func (d *OracleDialect) InsertQuery(table string, cols []string) string {
	return buildInsert(d, table, cols)
}

func (d *OracleDialect) CountQuery(table string) string {
	return buildCount(d, table)
}

func (d *OracleDialect) Placeholder(index int) string {
	return fmt.Sprintf(":%d", index+1)
}
