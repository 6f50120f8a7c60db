package schema

import (
	"fmt"
	"strings"
)

// MissingColumnsError reports required CSV columns absent from an input file.
// Callers can match it with errors.As.
type MissingColumnsError struct {
	Table   string
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing columns in %s: %s", e.Table, strings.Join(e.Columns, ", "))
}
