// Package drafts caches unsent contact form input for the lifetime of a
// browser session.
package drafts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

// Draft is an opaque field name to value map.
type Draft map[string]string

// Store keeps one draft per session. Drafts older than the TTL are treated as
// absent and removed by Purge.
type Store struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

func NewStore(db *sql.DB, ttl time.Duration) *Store {
	return &Store{db: db, ttl: ttl, now: time.Now}
}

func (s *Store) Save(ctx context.Context, sessionID string, d Draft) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO drafts (session_id, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (session_id) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at
	`, sessionID, string(payload), s.now().Unix())
	if err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

// Load returns the session's draft. ok is false when there is none or it has
// expired.
func (s *Store) Load(ctx context.Context, sessionID string) (d Draft, ok bool, err error) {
	var payload string
	err = s.db.QueryRowContext(ctx, `
		SELECT payload FROM drafts
		WHERE session_id = ? AND updated_at >= ?
	`, sessionID, s.cutoff()).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load draft: %w", err)
	}

	if err := json.Unmarshal([]byte(payload), &d); err != nil {
		return nil, false, fmt.Errorf("decode draft: %w", err)
	}
	return d, true, nil
}

func (s *Store) Clear(ctx context.Context, sessionID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM drafts WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}

// Purge deletes expired drafts and returns how many were removed.
func (s *Store) Purge(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM drafts WHERE updated_at < ?`, s.cutoff())
	if err != nil {
		return 0, fmt.Errorf("purge drafts: %w", err)
	}
	return result.RowsAffected()
}

// RunPurger purges expired drafts every interval until ctx is done.
func (s *Store) RunPurger(ctx context.Context, interval time.Duration, log logrus.FieldLogger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.Purge(ctx)
			if err != nil {
				log.WithError(err).Error("purging drafts")
				continue
			}
			if n > 0 {
				log.WithField("removed", n).Info("purged expired drafts")
			}
		}
	}
}

func (s *Store) cutoff() int64 {
	return s.now().Add(-s.ttl).Unix()
}
