package repository

import (
	"context"

	"github.com/alexanderramin/decalage/internal/domain"
)

type DaySlotRepo interface {
	Create(ctx context.Context, d *domain.DaySlot) error
	GetByLabel(ctx context.Context, label string) (*domain.DaySlot, error)
	List(ctx context.Context) ([]*domain.DaySlot, error)
	DeleteAll(ctx context.Context) error
}

type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	List(ctx context.Context) ([]*domain.Session, error)
	ListByType(ctx context.Context, t domain.SessionType) ([]*domain.Session, error)
	DeleteAll(ctx context.Context) error
}
