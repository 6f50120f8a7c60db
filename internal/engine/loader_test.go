package engine_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"ecom-report/internal/dialect"
	"ecom-report/internal/engine"
	"ecom-report/internal/schema"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "ecom.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func customerFrame(t *testing.T, dir string, csvBody string) *engine.Frame {
	t.Helper()
	path := writeFile(t, dir, "customers.csv", csvBody)
	frame, err := engine.ReadTable(path, customersSpec(t))
	require.NoError(t, err)
	return frame
}

const threeCustomers = "customer_id,full_name,email,phone,city,created_at\n" +
	"1,A,a@b.c,111,X,2024-01-01\n" +
	"2,B,b@b.c,222,Y,2024-01-02\n" +
	"3,C,c@b.c,333,Z,bogus-date\n"

const twoCustomers = "customer_id,full_name,email,phone,city,created_at\n" +
	"7,G,g@b.c,777,P,2024-03-01\n" +
	"8,H,h@b.c,888,Q,2024-03-02\n"

func TestLoad_WritesAllRows(t *testing.T) {
	db := openTestDB(t)
	d := dialect.GetDialect("sqlite3")

	frame := customerFrame(t, t.TempDir(), threeCustomers)
	ticks := 0
	results, err := engine.Load(db, d, []*engine.Frame{frame}, func() { ticks++ })
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "customers", results[0].Table)
	assert.Equal(t, 3, results[0].Rows)
	assert.Equal(t, 1, results[0].Warnings)
	assert.Equal(t, 3, ticks)

	// the malformed date landed as NULL
	var nulls int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM customers WHERE created_at IS NULL`).Scan(&nulls))
	assert.Equal(t, 1, nulls)
}

func TestLoad_ReplacesPriorContents(t *testing.T) {
	db := openTestDB(t)
	d := dialect.GetDialect("sqlite3")

	first := customerFrame(t, t.TempDir(), threeCustomers)
	_, err := engine.Load(db, d, []*engine.Frame{first}, nil)
	require.NoError(t, err)

	second := customerFrame(t, t.TempDir(), twoCustomers)
	results, err := engine.Load(db, d, []*engine.Frame{second}, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, results[0].Rows, "second load replaces, not appends")

	var id int64
	require.NoError(t, db.QueryRow(`SELECT MIN(customer_id) FROM customers`).Scan(&id))
	assert.Equal(t, int64(7), id)
}

func TestLoad_FailureRollsBackEverything(t *testing.T) {
	db := openTestDB(t)
	d := dialect.GetDialect("sqlite3")

	good := customerFrame(t, t.TempDir(), threeCustomers)

	// A frame with more values per row than columns makes the insert fail
	// after the first table was already written inside the transaction.
	bad := &engine.Frame{
		Spec:    schema.Spec{Table: "orders"},
		Columns: []string{"order_id"},
		Kinds:   []schema.Kind{schema.KindInt},
		Rows:    [][]interface{}{{int64(1), "extra"}},
	}

	_, err := engine.Load(db, d, []*engine.Frame{good, bad}, nil)
	require.Error(t, err)

	// the customers table from this batch must not survive
	var count int
	err = db.QueryRow(`SELECT COUNT(*) FROM customers`).Scan(&count)
	assert.Error(t, err, "rolled-back table should not exist")
}

func TestDropTables(t *testing.T) {
	db := openTestDB(t)
	d := dialect.GetDialect("sqlite3")

	frame := customerFrame(t, t.TempDir(), twoCustomers)
	_, err := engine.Load(db, d, []*engine.Frame{frame}, nil)
	require.NoError(t, err)

	require.NoError(t, engine.DropTables(db, d, []string{"customers", "orders"}))

	var count int
	err = db.QueryRow(`SELECT COUNT(*) FROM customers`).Scan(&count)
	assert.Error(t, err)
}
