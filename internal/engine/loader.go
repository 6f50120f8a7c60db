package engine

import (
	"database/sql"
	"fmt"

	"ecom-report/internal/dialect"
)

// Load replaces the contents of every frame's table inside a single
// transaction: any failure rolls back the whole batch. Frames must arrive
// in dependency order (parents first). onProgress fires once per inserted
// row, if set.
//
// All-or-nothing holds on engines with transactional DDL (sqlite, postgres,
// sqlserver); mysql and oracle commit DDL implicitly.
func Load(db *sql.DB, d dialect.Dialect, frames []*Frame, onProgress func()) ([]LoadResult, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if tx != nil {
			tx.Rollback()
		}
	}()

	for _, frame := range frames {
		if err := loadTable(tx, d, frame, onProgress); err != nil {
			return nil, fmt.Errorf("failed to load %s, rolling back: %w", frame.Spec.Table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit load transaction: %w", err)
	}
	tx = nil

	// Verification: count what actually landed.
	results := make([]LoadResult, 0, len(frames))
	for _, frame := range frames {
		var count int
		if err := db.QueryRow(d.CountQuery(frame.Spec.Table)).Scan(&count); err != nil {
			return nil, fmt.Errorf("failed to count rows in %s: %w", frame.Spec.Table, err)
		}
		results = append(results, LoadResult{
			Table:    frame.Spec.Table,
			Rows:     count,
			Warnings: frame.Warnings,
		})
	}
	return results, nil
}

func loadTable(tx *sql.Tx, d dialect.Dialect, frame *Frame, onProgress func()) error {
	if _, err := tx.Exec(d.DropTableQuery(frame.Spec.Table)); err != nil {
		return fmt.Errorf("drop failed: %w", err)
	}
	if _, err := tx.Exec(d.CreateTableQuery(frame.Spec.Table, frame.Columns, frame.Kinds)); err != nil {
		return fmt.Errorf("create failed: %w", err)
	}

	stmt, err := tx.Prepare(d.InsertQuery(frame.Spec.Table, frame.Columns))
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range frame.Rows {
		if _, err := stmt.Exec(row...); err != nil {
			return fmt.Errorf("insert failed: %w", err)
		}
		if onProgress != nil {
			onProgress()
		}
	}
	return nil
}

// DropTables removes the pipeline tables in reverse dependency order.
// Missing tables are not an error.
func DropTables(db *sql.DB, d dialect.Dialect, tables []string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if tx != nil {
			tx.Rollback()
		}
	}()

	for i := len(tables) - 1; i >= 0; i-- {
		if _, err := tx.Exec(d.DropTableQuery(tables[i])); err != nil {
			return fmt.Errorf("failed to drop %s: %w", tables[i], err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit clean transaction: %w", err)
	}
	tx = nil
	return nil
}
