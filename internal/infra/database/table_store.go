package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/lucilles-catering/crm-sync/internal/usecase"
)

// TableStore persists named positional tables in a single relation:
// one row per (table_name, row_index) with the cells as text[]. That
// keeps the spreadsheet addressing model (fetch all, append, overwrite
// by position) without inventing a schema per table.
type TableStore struct {
	DB     *sql.DB
	tables map[string]bool
}

// NewTableStore wires the store over an open pool. Only the named
// tables are served; anything else reads as missing, matching the
// "sheet not found" behavior of the system this replaces.
func NewTableStore(db *sql.DB, tables ...string) *TableStore {
	known := make(map[string]bool, len(tables))
	for _, t := range tables {
		known[t] = true
	}
	return &TableStore{DB: db, tables: known}
}

// Init creates the backing relation if it doesn't exist yet.
func (s *TableStore) Init(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS crm_rows (
			table_name TEXT    NOT NULL,
			row_index  INTEGER NOT NULL,
			cells      TEXT[]  NOT NULL,
			PRIMARY KEY (table_name, row_index)
		)
	`
	if _, err := s.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create crm_rows: %w", err)
	}
	return nil
}

func (s *TableStore) GetRows(ctx context.Context, table string) ([][]string, error) {
	if !s.tables[table] {
		return nil, fmt.Errorf("%w: %q", usecase.ErrTableNotFound, table)
	}

	rows, err := s.DB.QueryContext(ctx,
		`SELECT cells FROM crm_rows WHERE table_name = $1 ORDER BY row_index`, table)
	if err != nil {
		return nil, fmt.Errorf("failed to query rows of %q: %w", table, err)
	}
	defer rows.Close()

	var result [][]string
	for rows.Next() {
		var cells []string
		if err := rows.Scan(pq.Array(&cells)); err != nil {
			return nil, fmt.Errorf("failed to scan row of %q: %w", table, err)
		}
		result = append(result, cells)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows of %q: %w", table, err)
	}

	return result, nil
}

func (s *TableStore) AppendRow(ctx context.Context, table string, row []string) error {
	if !s.tables[table] {
		return fmt.Errorf("%w: %q", usecase.ErrTableNotFound, table)
	}

	query := `
		INSERT INTO crm_rows (table_name, row_index, cells)
		SELECT $1, COALESCE(MAX(row_index) + 1, 0), $2
		FROM crm_rows WHERE table_name = $1
	`
	if _, err := s.DB.ExecContext(ctx, query, table, pq.Array(row)); err != nil {
		return fmt.Errorf("failed to append to %q: %w", table, err)
	}
	return nil
}

func (s *TableStore) UpdateRow(ctx context.Context, table string, index int, row []string) error {
	if !s.tables[table] {
		return fmt.Errorf("%w: %q", usecase.ErrTableNotFound, table)
	}

	res, err := s.DB.ExecContext(ctx,
		`UPDATE crm_rows SET cells = $3 WHERE table_name = $1 AND row_index = $2`,
		table, index, pq.Array(row))
	if err != nil {
		return fmt.Errorf("failed to update row %d of %q: %w", index, table, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("no row at index %d of %q", index, table)
	}
	return nil
}
