package service

import (
	"context"

	"github.com/alexanderramin/decalage/internal/app"
	"github.com/alexanderramin/decalage/internal/domain"
	"github.com/alexanderramin/decalage/internal/importer"
)

type CalculatorService interface {
	Calculate(ctx context.Context, req app.CalculateRequest) (*app.CalculateResponse, error)
}

type CatalogService interface {
	ListDays(ctx context.Context) ([]*domain.DaySlot, error)
	ListSessions(ctx context.Context) ([]*domain.Session, error)
	ListSessionsByType(ctx context.Context, t domain.SessionType) ([]*domain.Session, error)
	LoadTables(ctx context.Context, tables *importer.Tables) (*app.LoadResult, error)
}

var (
	_ app.CalculateUseCase  = (CalculatorService)(nil)
	_ app.CatalogUseCase    = (CatalogService)(nil)
	_ app.LoadTablesUseCase = (CatalogService)(nil)
)
