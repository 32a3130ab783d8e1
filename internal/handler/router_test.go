package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"POI-Map-App/internal/domain/model"
	domainrepo "POI-Map-App/internal/domain/repository"
	"POI-Map-App/internal/domain/service"
	"POI-Map-App/internal/infrastructure/metrics"
	"POI-Map-App/internal/repository"
)

// failingPOIsRepository 常にクエリ失敗を返すストア
type failingPOIsRepository struct {
	calls int
}

func (r *failingPOIsRepository) FindNearby(ctx context.Context, q model.NearbyQuery) ([]model.POI, error) {
	r.calls++
	return nil, errors.New(`pq: function st_dwithin(unknown) does not exist`)
}

func (r *failingPOIsRepository) HealthCheck(ctx context.Context) error { return nil }

func (r *failingPOIsRepository) Source() model.DataSource { return model.DataSourcePostGIS }

// setupTestRouter liveRepoがnilならストア未設定としてルーターを組み立てる
func setupTestRouter(liveRepo *failingPOIsRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	var live domainrepo.POIsRepository
	if liveRepo != nil {
		live = liveRepo
	}

	searchService := service.NewPOISearchService(live, repository.NewSamplePOIsRepository())
	detailService := service.NewPlaceDetailService(repository.NewStaticPlaceDetailsRepository())
	recorder := metrics.NewRecorder()

	return NewRouter(RouterDeps{
		POIs:    NewPOIsHandler(searchService, recorder),
		Places:  NewPlacesHandler(detailService, recorder),
		Health:  NewHealthHandler("POI-Map-App", searchService),
		Metrics: recorder,
	})
}

func performGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestGetNearbyPOIs_SampleWhenStoreNotConfigured(t *testing.T) {
	r := setupTestRouter(nil)

	w := performGet(r, "/api/pois/nearby?lat=41.90&lon=12.49")
	require.Equal(t, http.StatusOK, w.Code)

	var pois []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pois))
	require.Len(t, pois, 2)
	assert.Equal(t, "Colosseo", pois[0]["nome"])
	assert.Equal(t, "Fontana di Trevi", pois[1]["nome"])
	assert.Equal(t, "ChIJrRkKO7heLxMRMD_3eR4-h-E", pois[0]["google_place_id"])
	assert.Equal(t, 41.8902, pois[0]["latitude"])
	assert.Equal(t, 12.4922, pois[0]["longitude"])
	assert.Equal(t, float64(1), pois[0]["id"])
}

func TestGetNearbyPOIs_MissingCoordinatesSkipStore(t *testing.T) {
	live := &failingPOIsRepository{}
	r := setupTestRouter(live)

	for _, path := range []string{"/api/pois/nearby", "/api/pois/nearby?lat=41.9", "/api/pois/nearby?lon=12.4"} {
		w := performGet(r, path)
		assert.Equal(t, http.StatusOK, w.Code, path)

		var pois []model.POI
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pois))
		assert.Len(t, pois, 2)
	}
	assert.Zero(t, live.calls)
}

func TestGetNearbyPOIs_StoreFailureIs500(t *testing.T) {
	live := &failingPOIsRepository{}
	r := setupTestRouter(live)

	w := performGet(r, "/api/pois/nearby?lat=41.9028&lon=12.4964")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 1, live.calls)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.IsType(t, "", body["error"])
	// ストアの詳細なエラーはクライアントに返さない
	assert.NotContains(t, w.Body.String(), "st_dwithin")
}

func TestGetPlaceDetails(t *testing.T) {
	r := setupTestRouter(nil)

	t.Run("既知の参照は200", func(t *testing.T) {
		w := performGet(r, "/api/places/details/ChIJg8swS71hLxMR-9i-AMVj8rA")
		require.Equal(t, http.StatusOK, w.Code)

		var detail model.PlaceDetail
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
		assert.Equal(t, model.PlaceDetail{
			Name:             "Fontana di Trevi",
			FormattedAddress: "Piazza di Trevi, 00187 Roma RM, Italia",
			Rating:           4.8,
		}, detail)
	})

	t.Run("未知の参照は404", func(t *testing.T) {
		w := performGet(r, "/api/places/details/unknown-id")
		require.Equal(t, http.StatusNotFound, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.NotEmpty(t, body["error"])
	})
}

func TestRequestIDHeader(t *testing.T) {
	r := setupTestRouter(nil)

	w := performGet(r, "/api/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(requestIDHeader, "fixed-id")
	r.ServeHTTP(w, req)
	assert.Equal(t, "fixed-id", w.Header().Get(requestIDHeader))
}

func TestHealthReportsDataSource(t *testing.T) {
	w := performGet(setupTestRouter(nil), "/api/health")

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "sample", body["data_source"])

	w = performGet(setupTestRouter(&failingPOIsRepository{}), "/api/health")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "postgis", body["data_source"])
}

func TestMetricsEndpoint(t *testing.T) {
	r := setupTestRouter(nil)
	performGet(r, "/api/pois/nearby")

	w := performGet(r, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `poi_map_pois_nearby_requests_total{fallback_reason="data_source_unavailable",source="sample"} 1`)
}

func TestFrontendIsServed(t *testing.T) {
	r := setupTestRouter(nil)

	w := performGet(r, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `data-lat="41.9028"`)

	w = performGet(r, "/static/app.js")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "nearbySeq")
}

func TestPageTemplateIsNotServedRaw(t *testing.T) {
	r := setupTestRouter(nil)

	w := performGet(r, "/static/index.html")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotContains(t, w.Body.String(), "{{.MapsAPIKey}}")

	w = performGet(r, "/templates/index.html")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
