package engine_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ecom-report/internal/engine"
	"ecom-report/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func customersSpec(t *testing.T) schema.Spec {
	t.Helper()
	for _, s := range schema.Specs() {
		if s.Table == "customers" {
			return s
		}
	}
	t.Fatal("customers spec not found")
	return schema.Spec{}
}

func TestReadTable_NormalizesAndCoerces(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "customers.csv",
		"Customer_ID, Full_Name ,EMAIL,phone,City,Created_At\n"+
			"1,  Asha Perera  ,asha@example.com,0771234567,Colombo,2024-01-01\n")

	frame, err := engine.ReadTable(path, customersSpec(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"customer_id", "full_name", "email", "phone", "city", "created_at"}, frame.Columns)
	require.Len(t, frame.Rows, 1)
	assert.Equal(t, 0, frame.Warnings)

	row := frame.Rows[0]
	assert.Equal(t, int64(1), row[0])
	assert.Equal(t, "Asha Perera", row[1], "text cells are trimmed")
	assert.Equal(t, float64(771234567), row[3], "phone coerced to numeric")

	created, ok := row[5].(time.Time)
	require.True(t, ok)
	assert.Equal(t, 2024, created.Year())
}

func TestReadTable_MalformedDateBecomesNull(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "customers.csv",
		"customer_id,full_name,email,phone,city,created_at\n"+
			"1,A,a@b.c,123,X,not-a-date\n"+
			"2,B,b@b.c,456,Y,2024-06-15 10:30:00\n")

	frame, err := engine.ReadTable(path, customersSpec(t))
	require.NoError(t, err, "conversion failures must not abort the load")

	assert.Nil(t, frame.Rows[0][5])
	assert.NotNil(t, frame.Rows[1][5])
	assert.Equal(t, 1, frame.Warnings)
}

func TestReadTable_MalformedNumericBecomesNull(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "customers.csv",
		"customer_id,full_name,email,phone,city,created_at\n"+
			"abc,A,a@b.c,not-a-phone,X,2024-01-01\n")

	frame, err := engine.ReadTable(path, customersSpec(t))
	require.NoError(t, err)

	assert.Nil(t, frame.Rows[0][0], "unparseable id coerced to NULL, row kept")
	assert.Nil(t, frame.Rows[0][3])
	assert.Equal(t, 2, frame.Warnings)
}

func TestReadTable_EmptyCellIsNullWithoutWarning(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "customers.csv",
		"customer_id,full_name,email,phone,city,created_at\n"+
			"1,A,a@b.c,,,\n")

	frame, err := engine.ReadTable(path, customersSpec(t))
	require.NoError(t, err)

	assert.Nil(t, frame.Rows[0][3])
	assert.Nil(t, frame.Rows[0][4])
	assert.Nil(t, frame.Rows[0][5])
	assert.Equal(t, 0, frame.Warnings)
}

func TestReadTable_MissingRequiredColumn(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "customers.csv",
		"customer_id,full_name,email\n1,A,a@b.c\n")

	_, err := engine.ReadTable(path, customersSpec(t))
	require.Error(t, err)

	var missing *schema.MissingColumnsError
	require.True(t, errors.As(err, &missing))
	assert.ElementsMatch(t, []string{"phone", "city", "created_at"}, missing.Columns)
}

func TestReadTable_MissingFile(t *testing.T) {
	_, err := engine.ReadTable(filepath.Join(t.TempDir(), "customers.csv"), customersSpec(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestReadTable_ExtraColumnsKeptAsText(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "customers.csv",
		"customer_id,full_name,email,phone,city,created_at,loyalty_tier\n"+
			"1,A,a@b.c,123,X,2024-01-01,gold\n")

	frame, err := engine.ReadTable(path, customersSpec(t))
	require.NoError(t, err)
	assert.Equal(t, "loyalty_tier", frame.Columns[6])
	assert.Equal(t, schema.KindText, frame.Kinds[6])
	assert.Equal(t, "gold", frame.Rows[0][6])
}
