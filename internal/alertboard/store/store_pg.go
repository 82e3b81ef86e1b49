package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/infofatec/alertboard/internal/alertboard/database"
	"github.com/infofatec/alertboard/internal/alertboard/model"
)

// PgStore is the PostgreSQL-backed Store implementation.
type PgStore struct {
	DB *database.Database
}

func NewPgStore(db *database.Database) *PgStore { return &PgStore{DB: db} }

// EnsureSchema creates the alerts table when missing. Called once at startup.
func (s *PgStore) EnsureSchema(ctx context.Context) error {
	const q = `
	CREATE TABLE IF NOT EXISTS alerts (
		id         TEXT PRIMARY KEY,
		text       TEXT NOT NULL,
		image_url  TEXT,
		image_key  TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`
	if _, err := s.DB.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("ensure alerts schema: %w", err)
	}
	return nil
}

func (s *PgStore) Create(ctx context.Context, a *model.Alert) error {
	const q = `
	INSERT INTO alerts(id, text, image_url, image_key, created_at)
	VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.DB.ExecContext(ctx, q, a.ID, a.Text, a.ImageURL, a.ImageKey, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("create alert: %w", err)
	}
	return nil
}

func (s *PgStore) Get(ctx context.Context, id string) (*model.Alert, error) {
	const q = `SELECT id, text, image_url, image_key, created_at FROM alerts WHERE id = $1`
	a, err := scanAlert(s.DB.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrAlertNotFound
		}
		return nil, fmt.Errorf("get alert: %w", err)
	}
	return a, nil
}

// List returns alerts newest-first; ids break ties so the order is stable
// for equal timestamps.
func (s *PgStore) List(ctx context.Context) ([]*model.Alert, error) {
	const q = `
	SELECT id, text, image_url, image_key, created_at
	FROM alerts
	ORDER BY created_at DESC, id DESC
	`
	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()

	var res []*model.Alert
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		res = append(res, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	return res, nil
}

func (s *PgStore) Update(ctx context.Context, a *model.Alert) error {
	const q = `UPDATE alerts SET text=$2, image_url=$3, image_key=$4 WHERE id=$1`
	res, err := s.DB.ExecContext(ctx, q, a.ID, a.Text, a.ImageURL, a.ImageKey)
	if err != nil {
		return fmt.Errorf("update alert: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.ErrAlertNotFound
	}
	return nil
}

func (s *PgStore) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM alerts WHERE id=$1`
	res, err := s.DB.ExecContext(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete alert: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.ErrAlertNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAlert(r rowScanner) (*model.Alert, error) {
	var a model.Alert
	var url sql.NullString
	if err := r.Scan(&a.ID, &a.Text, &url, &a.ImageKey, &a.CreatedAt); err != nil {
		return nil, err
	}
	if url.Valid {
		a.ImageURL = &url.String
	}
	return &a, nil
}
