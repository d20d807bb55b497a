package history

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"stock-audit/core/database"
	"stock-audit/core/report"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandler(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	feature := NewFeature(db, zap.NewNop())
	assert.Equal(t, "history", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	require.NoError(t, feature.Load(app))

	rep := sampleReport(t, time.Now().UTC())
	require.NoError(t, feature.Repository().Save(context.Background(), rep, "reports/r.json", report.FormatJSON))

	resp, err := app.Test(httptest.NewRequest("GET", "/history", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var records []AuditRecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
	require.Len(t, records, 1)
	assert.Equal(t, rep.ID, records[0].ID)

	resp, err = app.Test(httptest.NewRequest("GET", "/history/"+rep.ID, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/history/unknown", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestFeature_DisabledWithoutDatabase(t *testing.T) {
	assert.False(t, NewFeature(nil, nil).IsEnabled())
}
