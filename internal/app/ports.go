package app

import (
	"context"

	"github.com/alexanderramin/decalage/internal/domain"
	"github.com/alexanderramin/decalage/internal/importer"
)

type CalculateUseCase interface {
	Calculate(ctx context.Context, req CalculateRequest) (*CalculateResponse, error)
}

type CatalogUseCase interface {
	ListDays(ctx context.Context) ([]*domain.DaySlot, error)
	ListSessions(ctx context.Context) ([]*domain.Session, error)
}

type LoadResult struct {
	DayCount     int
	SessionCount int
}

type LoadTablesUseCase interface {
	LoadTables(ctx context.Context, tables *importer.Tables) (*LoadResult, error)
}
