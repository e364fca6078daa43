package cmd_test

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"catering/cmd"
	"catering/internal/adapters/out/filestore"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const newOrderJSON = `{
  "eventName": "Buka Bersama",
  "deliveryDate": "2026-03-20",
  "timeSlot": "Buka Puasa",
  "location": "Masjid Kantor",
  "guestTier": "reguler",
  "requestedBy": "Dewi",
  "department": "Keuangan",
  "approverName": "Hendra",
  "lines": [{"catalogItemId": "reg-prasmanan", "quantity": 120}]
}`

func testConfig(driver, storeFile string) cmd.Config {
	return cmd.Config{
		LogLevel:          "error",
		PersistenceDriver: driver,
		StoreFile:         storeFile,
		OrderIDPrefix:     "P",
		OrderIDWidth:      3,
		FlushSchedule:     "*/30 * * * * *",
		ExportDir:         "exports",
	}
}

func TestCompositionRoot_FilePersistenceRoundTrip(t *testing.T) {
	// Given
	ctx := t.Context()
	path := filepath.Join(t.TempDir(), "orders.json")
	clock := kernel.FixedClock(time.Date(2026, time.March, 10, 7, 0, 0, 0, time.UTC))

	root, err := cmd.NewCompositionRoot(ctx, testConfig(cmd.PersistenceFile, path), clock, logging.Discard())
	require.NoError(t, err)
	router, err := root.CreateRouter(ctx)
	require.NoError(t, err)

	// When
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(newOrderJSON))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.NoError(t, root.Close(ctx))

	// Then
	fileStore, err := filestore.NewStore(path)
	require.NoError(t, err)
	saved, err := fileStore.Load(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "P-001", saved[0].ID())
	assert.Equal(t, "pax", saved[0].Lines()[0].Unit())

	reopened, err := cmd.NewCompositionRoot(ctx, testConfig(cmd.PersistenceFile, path), clock, logging.Discard())
	require.NoError(t, err)
	assert.Len(t, reopened.OrderStore().List(), 1)
}

func TestCompositionRoot_ServesOpenAPIDocument(t *testing.T) {
	ctx := t.Context()
	root, err := cmd.NewCompositionRoot(ctx, testConfig(cmd.PersistenceMemory, ""), nil, logging.Discard())
	require.NoError(t, err)
	router, err := root.CreateRouter(ctx)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Catering Orders API")
}

func TestCompositionRoot_JobManager(t *testing.T) {
	ctx := t.Context()
	cfg := testConfig(cmd.PersistenceMemory, "")
	cfg.ExportSchedule = "0 0 18 * * *"

	root, err := cmd.NewCompositionRoot(ctx, cfg, nil, logging.Discard())
	require.NoError(t, err)

	jm := root.CreateJobManager()
	assert.True(t, jm.ExportEnabled())
	require.NoError(t, jm.StartAll())
	jm.StopAll()
}

func TestCompositionRoot_Errors(t *testing.T) {
	ctx := t.Context()

	cfg := testConfig(cmd.PersistenceMemory, "")
	cfg.OrderIDPrefix = ""
	_, err := cmd.NewCompositionRoot(ctx, cfg, nil, logging.Discard())
	require.Error(t, err)

	cfg = testConfig(cmd.PersistenceMemory, "")
	cfg.CatalogFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = cmd.NewCompositionRoot(ctx, cfg, nil, logging.Discard())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load catalog")
}
