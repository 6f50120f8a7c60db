package engine

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"ecom-report/internal/schema"
)

// Date layouts tried in order. First match wins.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"01-02-2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// Log at most this many conversion warnings per table; the rest are only counted.
const maxWarningLogs = 5

// ReadTable reads and cleans one CSV file against its table spec:
// header normalized (lowercase, trimmed) and validated, text cells trimmed,
// date/numeric columns coerced with unparseable values downgraded to NULL.
func ReadTable(path string, spec schema.Spec) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("file not found: %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	rawHeader, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header from %s: %w", path, err)
	}

	columns := schema.NormalizeHeader(rawHeader)
	if err := spec.Validate(columns); err != nil {
		return nil, err
	}

	kinds := make([]schema.Kind, len(columns))
	for i, c := range columns {
		kinds[i] = spec.KindOf(c)
	}

	frame := &Frame{Spec: spec, Columns: columns, Kinds: kinds}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record from %s: %w", path, err)
		}

		row := make([]interface{}, len(columns))
		for i, raw := range record {
			val, ok := coerceValue(raw, kinds[i])
			if !ok {
				frame.Warnings++
				if frame.Warnings <= maxWarningLogs {
					log.Printf("[WARN] %s: cannot convert %q to %s (column %s), using NULL",
						spec.Table, strings.TrimSpace(raw), kinds[i], columns[i])
				}
				val = nil
			}
			row[i] = val
		}
		frame.Rows = append(frame.Rows, row)
	}

	return frame, nil
}

// coerceValue converts one trimmed cell to its column kind. The second
// return value is false only for a genuine conversion failure; empty
// cells are NULL without a warning.
func coerceValue(raw string, kind schema.Kind) (interface{}, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, true
	}

	switch kind {
	case schema.KindInt:
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			return v, true
		}
		// "12.0" style values still count as numeric, mirroring the
		// loose coercion of the CSV sources this tool ingests.
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return v, true
		}
		return nil, false
	case schema.KindFloat:
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return v, true
		}
		return nil, false
	case schema.KindTime:
		if v, ok := parseDate(s); ok {
			return v, true
		}
		return nil, false
	default:
		return s, true
	}
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if v, err := time.Parse(layout, s); err == nil {
			return v, true
		}
	}
	return time.Time{}, false
}
