package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ericfisherdev/guestwifi/internal/domain/model"
	"github.com/ericfisherdev/guestwifi/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.RecordStore = (*PasswordRepo)(nil)

// PasswordRepo is the SQLite implementation of the RecordStore port interface.
type PasswordRepo struct {
	db  *DB
	now func() time.Time
}

// NewPasswordRepo creates a new PasswordRepo backed by the given DB.
func NewPasswordRepo(db *DB) *PasswordRepo {
	return &PasswordRepo{db: db, now: time.Now}
}

// ListAll returns every stored record in insertion order.
func (r *PasswordRepo) ListAll(ctx context.Context) ([]model.PasswordRecord, error) {
	const query = `SELECT date, password FROM password_records ORDER BY id`
	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list password records: %w", err)
	}
	defer rows.Close()

	var records []model.PasswordRecord
	for rows.Next() {
		var rec model.PasswordRecord
		if err := rows.Scan(&rec.Date, &rec.Password); err != nil {
			return nil, fmt.Errorf("scan password record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate password records: %w", err)
	}

	return records, nil
}

// ModifiedAt returns the revision stamp written by the last ReplaceAll.
func (r *PasswordRepo) ModifiedAt(ctx context.Context) (time.Time, bool, error) {
	const query = `SELECT modified_at FROM password_table_meta WHERE id = 1`
	var raw string
	err := r.db.Reader.QueryRowContext(ctx, query).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("get password table stamp: %w", err)
	}

	t, err := parseTime(raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parse modified_at: %w", err)
	}
	return t, true, nil
}

// ReplaceAll swaps the table contents in a single transaction and records a
// new revision stamp with nanosecond precision.
func (r *PasswordRepo) ReplaceAll(ctx context.Context, records []model.PasswordRecord) error {
	tx, err := r.db.Writer.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM password_records`); err != nil {
		return fmt.Errorf("clear password records: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO password_records (date, password) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.ExecContext(ctx, rec.Date, rec.Password); err != nil {
			return fmt.Errorf("insert record for %s: %w", rec.Date, err)
		}
	}

	const stampQuery = `
		INSERT INTO password_table_meta (id, modified_at, row_count)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			modified_at = excluded.modified_at,
			row_count = excluded.row_count
	`
	stamp := r.now().UTC().Format(time.RFC3339Nano)
	if _, err := tx.ExecContext(ctx, stampQuery, stamp, len(records)); err != nil {
		return fmt.Errorf("update password table stamp: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace: %w", err)
	}
	return nil
}

// parseTime tries multiple SQLite datetime formats.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02 15:04:05.000",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized time format: %s", s)
}
