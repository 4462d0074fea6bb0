package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/decalage/internal/app"
	"github.com/alexanderramin/decalage/internal/db"
	"github.com/alexanderramin/decalage/internal/domain"
	"github.com/alexanderramin/decalage/internal/importer"
	"github.com/alexanderramin/decalage/internal/repository"
)

type catalogService struct {
	days     repository.DaySlotRepo
	sessions repository.SessionRepo
	uow      db.UnitOfWork
	loc      *time.Location
	observer UseCaseObserver
}

// NewCatalogService wires read access to the static tables and the loader
// that replaces them.
func NewCatalogService(
	days repository.DaySlotRepo,
	sessions repository.SessionRepo,
	uow db.UnitOfWork,
	loc *time.Location,
	observers ...UseCaseObserver,
) CatalogService {
	if loc == nil {
		loc = time.Local
	}
	return &catalogService{
		days:     days,
		sessions: sessions,
		uow:      uow,
		loc:      loc,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *catalogService) ListDays(ctx context.Context) ([]*domain.DaySlot, error) {
	return s.days.List(ctx)
}

func (s *catalogService) ListSessions(ctx context.Context) ([]*domain.Session, error) {
	return s.sessions.List(ctx)
}

func (s *catalogService) ListSessionsByType(ctx context.Context, t domain.SessionType) ([]*domain.Session, error) {
	return s.sessions.ListByType(ctx, t)
}

// LoadTables validates the tables and replaces the catalog contents in a
// single transaction.
func (s *catalogService) LoadTables(ctx context.Context, tables *importer.Tables) (result *app.LoadResult, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "load-tables", time.Now(), fields, &err)

	if errs := importer.ValidateTables(tables); len(errs) > 0 {
		return nil, fmt.Errorf("invalid tables: %w", errors.Join(errs...))
	}

	converted, err := importer.Convert(tables, s.loc)
	if err != nil {
		return nil, fmt.Errorf("converting tables: %w", err)
	}
	fields["day_count"] = len(converted.Days)
	fields["session_count"] = len(converted.Sessions)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txDays := repository.NewSQLiteDaySlotRepo(tx)
		txSessions := repository.NewSQLiteSessionRepo(tx)

		if err := txDays.DeleteAll(ctx); err != nil {
			return err
		}
		if err := txSessions.DeleteAll(ctx); err != nil {
			return err
		}
		for _, d := range converted.Days {
			if err := txDays.Create(ctx, d); err != nil {
				return err
			}
		}
		for _, sess := range converted.Sessions {
			if err := txSessions.Create(ctx, sess); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading tables: %w", err)
	}

	return &app.LoadResult{
		DayCount:     len(converted.Days),
		SessionCount: len(converted.Sessions),
	}, nil
}
