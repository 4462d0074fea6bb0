package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/decalage/internal/db"
	"github.com/alexanderramin/decalage/internal/domain"
)

// SQLiteDaySlotRepo implements DaySlotRepo using a SQLite database.
type SQLiteDaySlotRepo struct {
	db db.DBTX
}

func NewSQLiteDaySlotRepo(conn db.DBTX) *SQLiteDaySlotRepo {
	return &SQLiteDaySlotRepo{db: conn}
}

func (r *SQLiteDaySlotRepo) Create(ctx context.Context, d *domain.DaySlot) error {
	query := `INSERT INTO day_slots (label, date, order_index) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, d.Label, d.DateString(), d.Order)
	if err != nil {
		return fmt.Errorf("inserting day slot: %w", err)
	}
	return nil
}

func (r *SQLiteDaySlotRepo) GetByLabel(ctx context.Context, label string) (*domain.DaySlot, error) {
	query := `SELECT label, date, order_index FROM day_slots WHERE label = ?`
	row := r.db.QueryRowContext(ctx, query, label)

	var d domain.DaySlot
	var dateStr string
	if err := row.Scan(&d.Label, &dateStr, &d.Order); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("day slot %q: %w", label, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning day slot: %w", err)
	}

	date, err := parseStoredTime("date", dateStr, domain.DateLayout)
	if err != nil {
		return nil, err
	}
	d.Date = date
	return &d, nil
}

func (r *SQLiteDaySlotRepo) List(ctx context.Context) ([]*domain.DaySlot, error) {
	query := `SELECT label, date, order_index FROM day_slots ORDER BY order_index, label`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing day slots: %w", err)
	}
	defer rows.Close()

	var days []*domain.DaySlot
	for rows.Next() {
		var d domain.DaySlot
		var dateStr string
		if err := rows.Scan(&d.Label, &dateStr, &d.Order); err != nil {
			return nil, fmt.Errorf("scanning day slot row: %w", err)
		}
		date, err := parseStoredTime("date", dateStr, domain.DateLayout)
		if err != nil {
			return nil, err
		}
		d.Date = date
		days = append(days, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating day slots: %w", err)
	}
	return days, nil
}

func (r *SQLiteDaySlotRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM day_slots`); err != nil {
		return fmt.Errorf("clearing day slots: %w", err)
	}
	return nil
}
