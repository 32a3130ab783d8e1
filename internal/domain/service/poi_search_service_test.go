package service

import (
	"context"
	"errors"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"POI-Map-App/internal/domain/model"
	"POI-Map-App/internal/repository"
)

func TestPOISearchService_NoStoreReturnsSample(t *testing.T) {
	svc := NewPOISearchService(nil, repository.NewSamplePOIsRepository())

	for _, coords := range [][2]string{{"41.90", "12.49"}, {"-33.86", "151.20"}, {"", ""}} {
		result, err := svc.FindNearby(context.Background(), coords[0], coords[1])
		require.NoError(t, err)
		assert.Equal(t, repository.SamplePOIs(), result.POIs)
		assert.Equal(t, model.DataSourceSample, result.Source)
		assert.Equal(t, model.FallbackDataSourceUnavailable, result.Reason)
	}
	assert.Equal(t, model.DataSourceSample, svc.DataSource())
}

func TestPOISearchService_MissingCoordinatesNeverHitStore(t *testing.T) {
	live := &recordingPOIsRepository{}
	svc := NewPOISearchService(live, repository.NewSamplePOIsRepository())

	for _, coords := range [][2]string{{"", "12.49"}, {"41.90", ""}, {"", ""}} {
		result, err := svc.FindNearby(context.Background(), coords[0], coords[1])
		require.NoError(t, err)
		assert.Equal(t, repository.SamplePOIs(), result.POIs)
		assert.Equal(t, model.FallbackInsufficientInput, result.Reason)
	}
	assert.Empty(t, live.calls())
}

func TestPOISearchService_QueriesStoreWithGeodesicRadius(t *testing.T) {
	id := int64(10)
	live := &recordingPOIsRepository{pois: []model.POI{
		{ID: &id, Name: "Pantheon", Latitude: 41.8986, Longitude: 12.4768, GooglePlaceID: "p"},
	}}
	svc := NewPOISearchService(live, repository.NewSamplePOIsRepository())

	result, err := svc.FindNearby(context.Background(), "41.9028", "12.4964")
	require.NoError(t, err)

	calls := live.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, orb.Point{12.4964, 41.9028}, calls[0].Center)
	assert.Equal(t, float64(5000), calls[0].RadiusMeters)
	assert.Equal(t, model.MetricGeodesic, calls[0].Metric)

	assert.Equal(t, live.pois, result.POIs)
	assert.Equal(t, model.DataSourcePostGIS, result.Source)
	assert.Equal(t, model.FallbackNone, result.Reason)
}

func TestPOISearchService_StoreFailureDoesNotFallBack(t *testing.T) {
	storeErr := errors.New("connection refused")
	live := &recordingPOIsRepository{err: storeErr}
	svc := NewPOISearchService(live, repository.NewSamplePOIsRepository())

	result, err := svc.FindNearby(context.Background(), "41.9028", "12.4964")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, storeErr)
}
