package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"uniadvisor_backend/internal/catalog"
	"uniadvisor_backend/internal/config"
	"uniadvisor_backend/internal/events"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Server.CORSOrigins = []string{"*"}
	cfg.Database.Driver = "postgres"
	cfg.Catalog.Source = config.SourceSeed
	cfg.Catalog.Mode = config.ModeCached
	cfg.Catalog.UniversitiesPath = "data/universities.csv"
	cfg.Catalog.ScholarshipsPath = "data/scholarships.csv"
	return cfg
}

func TestFileSource(t *testing.T) {
	cfg := testConfig()

	src, err := FileSource(cfg)
	require.NoError(t, err)
	assert.Equal(t, catalog.SeedSourceName, src.Describe())

	cfg.Catalog.Source = config.SourceCSV
	src, err = FileSource(cfg)
	require.NoError(t, err)
	assert.Equal(t, "csv:data/universities.csv,data/scholarships.csv", src.Describe())

	cfg.Catalog.Source = config.SourceDatabase
	_, err = FileSource(cfg)
	assert.Error(t, err)
}

func TestNewCatalogModes(t *testing.T) {
	cfg := testConfig()

	cat, err := NewCatalog(context.Background(), cfg)
	require.NoError(t, err)
	require.NotNil(t, cat.Store)
	assert.Same(t, cat.Store, cat.Provider)
	assert.Nil(t, cat.DB)
	cat.Close()

	cfg.Catalog.Mode = config.ModeLive
	cat, err = NewCatalog(context.Background(), cfg)
	require.NoError(t, err)
	assert.Nil(t, cat.Store)
	_, isLive := cat.Provider.(*catalog.Live)
	assert.True(t, isLive)

	snap, err := cat.Provider.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Universities, 15)
}

func TestEventSource(t *testing.T) {
	cfg := testConfig()
	assert.Nil(t, eventSource(cfg))

	cfg.Events.Listener = config.ListenerPostgres
	_, ok := eventSource(cfg).(*events.PGListener)
	assert.True(t, ok)

	cfg.Events.Listener = config.ListenerAMQP
	_, ok = eventSource(cfg).(*events.AMQPConsumer)
	assert.True(t, ok)
}

func TestSetupRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	snap := catalog.NewSnapshot("test", catalog.SeedUniversities(), catalog.SeedScholarships(), nil)
	router := SetupRouter(testConfig(), catalog.NewStaticStore(snap))

	registered := map[string]bool{}
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}
	for _, want := range []string{
		"GET /", "GET /health", "POST /recommend", "POST /predict", "POST /query",
		"POST /cost-analysis", "POST /predict-roi", "POST /find-affordable",
		"POST /scholarships", "GET /universities", "GET /scholarships-list",
		"GET /scholarships-by-country/:country", "GET /scholarships-statistics",
		"GET /scholarships-filter", "GET /api/visa/requirements/:code",
		"GET /api/visa/countries", "POST /admin/catalog/reload", "GET /swagger/*any",
	} {
		assert.True(t, registered[want], want)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"source":"test"`)
}
