package history

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/MikeBiancalana/dtpick/internal/storage"
	"github.com/rs/xid"
)

// Repository persists sessions and confirmations.
type Repository struct {
	db     *storage.Database
	logger *slog.Logger
	now    func() time.Time
}

func NewRepository(db *storage.Database, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger, now: time.Now}
}

// StartSession records the start of a picker run.
func (r *Repository) StartSession(source string) (*Session, error) {
	s := &Session{
		ID:        xid.New().String(),
		StartedAt: r.now(),
		Source:    source,
	}

	_, err := r.db.DB().Exec(`
		INSERT INTO sessions (id, started_at, source)
		VALUES (?, ?, ?)
	`, s.ID, s.StartedAt.UnixMilli(), s.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	r.logger.Debug("session started", "session_id", s.ID, "source", source)
	return s, nil
}

// Record stores a confirmed value under sessionID.
func (r *Repository) Record(sessionID, value, display, timezone string) (*Confirmation, error) {
	c := &Confirmation{
		ID:          xid.New().String(),
		SessionID:   sessionID,
		Value:       value,
		Display:     display,
		Timezone:    timezone,
		ConfirmedAt: r.now(),
	}

	_, err := r.db.DB().Exec(`
		INSERT INTO confirmations (id, session_id, value, display, timezone, confirmed_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, c.ID, c.SessionID, c.Value, c.Display, c.Timezone, c.ConfirmedAt.UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("failed to record confirmation: %w", err)
	}

	r.logger.Info("confirmation recorded", "id", c.ID, "value", value)
	return c, nil
}

// List returns the most recent confirmations first. limit <= 0 means all.
func (r *Repository) List(limit int) ([]*Confirmation, error) {
	query := `
		SELECT id, session_id, value, display, timezone, confirmed_at
		FROM confirmations ORDER BY confirmed_at DESC, rowid DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.DB().Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list confirmations: %w", err)
	}
	defer rows.Close()

	var out []*Confirmation
	for rows.Next() {
		c, err := scanConfirmation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate confirmations: %w", err)
	}
	return out, nil
}

// Last returns the most recent confirmation, or nil when there is none.
func (r *Repository) Last() (*Confirmation, error) {
	row := r.db.DB().QueryRow(`
		SELECT id, session_id, value, display, timezone, confirmed_at
		FROM confirmations ORDER BY confirmed_at DESC, rowid DESC LIMIT 1
	`)
	c, err := scanConfirmation(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return c, err
}

// Clear removes all history and returns how many confirmations were deleted.
func (r *Repository) Clear() (int64, error) {
	res, err := r.db.DB().Exec("DELETE FROM confirmations")
	if err != nil {
		return 0, fmt.Errorf("failed to clear confirmations: %w", err)
	}
	n, _ := res.RowsAffected()

	if _, err := r.db.DB().Exec("DELETE FROM sessions"); err != nil {
		return n, fmt.Errorf("failed to clear sessions: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanConfirmation(s scanner) (*Confirmation, error) {
	var c Confirmation
	var confirmedAt int64
	if err := s.Scan(&c.ID, &c.SessionID, &c.Value, &c.Display, &c.Timezone, &confirmedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan confirmation: %w", err)
	}
	c.ConfirmedAt = time.UnixMilli(confirmedAt)
	return &c, nil
}
