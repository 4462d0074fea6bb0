package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/decalage/internal/db"
	"github.com/alexanderramin/decalage/internal/domain"
)

const sessionColumns = `id, starts_at, ends_at, type, order_index`

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	query := `INSERT INTO sessions (` + sessionColumns + `) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Start.Format(timestampLayout),
		s.End.Format(timestampLayout),
		string(s.Type),
		s.Order,
	)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	return nil
}

// List returns every session in table order.
func (r *SQLiteSessionRepo) List(ctx context.Context) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions ORDER BY order_index`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()
	return scanSessions(rows)
}

func (r *SQLiteSessionRepo) ListByType(ctx context.Context, t domain.SessionType) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE type = ? ORDER BY order_index`
	rows, err := r.db.QueryContext(ctx, query, string(t))
	if err != nil {
		return nil, fmt.Errorf("listing sessions by type: %w", err)
	}
	defer rows.Close()
	return scanSessions(rows)
}

func (r *SQLiteSessionRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sessions`); err != nil {
		return fmt.Errorf("clearing sessions: %w", err)
	}
	return nil
}

func scanSessions(rows *sql.Rows) ([]*domain.Session, error) {
	var sessions []*domain.Session
	for rows.Next() {
		var s domain.Session
		var startStr, endStr, typ string
		if err := rows.Scan(&s.ID, &startStr, &endStr, &typ, &s.Order); err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		session, err := populateSession(&s, startStr, endStr, typ)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

// populateSession fills parsed fields after scanning raw strings.
func populateSession(s *domain.Session, startStr, endStr, typ string) (*domain.Session, error) {
	var err error
	if s.Start, err = parseStoredTime("starts_at", startStr, timestampLayout); err != nil {
		return nil, err
	}
	if s.End, err = parseStoredTime("ends_at", endStr, timestampLayout); err != nil {
		return nil, err
	}
	if s.Type, err = domain.ParseSessionType(typ); err != nil {
		return nil, err
	}
	return s, nil
}
