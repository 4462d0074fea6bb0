package service

import (
	"bytes"
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/decalage/internal/importer"
	"github.com/alexanderramin/decalage/internal/repository"
	"github.com/alexanderramin/decalage/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testServices struct {
	db         *sql.DB
	days       *repository.SQLiteDaySlotRepo
	sessions   *repository.SQLiteSessionRepo
	catalog    CatalogService
	calculator CalculatorService
	log        *bytes.Buffer
}

func setupServices(t *testing.T) *testServices {
	t.Helper()
	database := testutil.NewTestDB(t)
	days := repository.NewSQLiteDaySlotRepo(database)
	sessions := repository.NewSQLiteSessionRepo(database)
	log := new(bytes.Buffer)
	obs := NewLogUseCaseObserver(log)

	return &testServices{
		db:         database,
		days:       days,
		sessions:   sessions,
		catalog:    NewCatalogService(days, sessions, testutil.NewTestUoW(database), time.UTC, obs),
		calculator: NewCalculatorService(days, sessions, time.UTC, obs),
		log:        log,
	}
}

// mondayTables is the single-day scenario: Mon -> 2024-01-01 with one graph
// session from 10:00 to 12:00.
func mondayTables() *importer.Tables {
	return &importer.Tables{
		Days: []importer.DayRecord{
			{Day: "Mon", Date: "2024-01-01"},
			{Day: "Tue", Date: "2024-01-02"},
		},
		Sessions: []importer.SessionRecord{
			{Start: "2024-01-01T10:00:00", End: "2024-01-01T12:00:00", Type: "graph"},
		},
	}
}

func (s *testServices) load(t *testing.T, tables *importer.Tables) {
	t.Helper()
	_, err := s.catalog.LoadTables(context.Background(), tables)
	require.NoError(t, err)
}
