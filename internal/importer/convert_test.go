package importer

import (
	"testing"
	"time"

	"github.com/alexanderramin/decalage/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_DaysAndSessions(t *testing.T) {
	tables := &Tables{
		Days: []DayRecord{
			{Day: "Mon", Date: "2024-01-01"},
			{Day: "Tue", Date: "2024-01-02"},
		},
		Sessions: []SessionRecord{
			{Start: "2024-01-01T10:00:00", End: "2024-01-01T12:00:00", Type: "graph"},
			{Start: "2024-01-02T18:00", End: "2024-01-02T21:00", Type: "rush"},
		},
	}

	conv, err := Convert(tables, time.UTC)
	require.NoError(t, err)

	require.Len(t, conv.Days, 2)
	assert.Equal(t, "Tue", conv.Days[1].Label)
	assert.Equal(t, 1, conv.Days[1].Order)
	assert.Equal(t, "2024-01-02", conv.Days[1].DateString())

	require.Len(t, conv.Sessions, 2)
	first := conv.Sessions[0]
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, domain.SessionGraph, first.Type)
	assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), first.Start)
	assert.Equal(t, 2*time.Hour, first.Duration())
	assert.Equal(t, domain.SessionRush, conv.Sessions[1].Type)
	assert.Equal(t, 1, conv.Sessions[1].Order)
	assert.NotEqual(t, first.ID, conv.Sessions[1].ID)
}

func TestConvert_ZonelessTimestampsUseLocation(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	tables := validTables()

	conv, err := Convert(tables, paris)
	require.NoError(t, err)
	assert.Equal(t, paris, conv.Sessions[0].Start.Location())
	assert.Equal(t, 9, conv.Sessions[0].Start.UTC().Hour())
}

func TestConvert_RejectsUnknownType(t *testing.T) {
	tables := validTables()
	tables.Sessions[0].Type = "lecture"

	_, err := Convert(tables, time.UTC)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sessions[0]")
}
