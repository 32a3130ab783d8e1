package service

import (
	"context"
	"sync"

	"POI-Map-App/internal/domain/model"
)

// recordingPOIsRepository 受け取った検索条件を記録するテスト用リポジトリ
type recordingPOIsRepository struct {
	mu      sync.Mutex
	queries []model.NearbyQuery
	pois    []model.POI
	err     error
	source  model.DataSource
}

func (r *recordingPOIsRepository) FindNearby(ctx context.Context, q model.NearbyQuery) ([]model.POI, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries = append(r.queries, q)
	if r.err != nil {
		return nil, r.err
	}
	return r.pois, nil
}

func (r *recordingPOIsRepository) HealthCheck(ctx context.Context) error { return nil }

func (r *recordingPOIsRepository) Source() model.DataSource {
	if r.source == "" {
		return model.DataSourcePostGIS
	}
	return r.source
}

func (r *recordingPOIsRepository) calls() []model.NearbyQuery {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.NearbyQuery(nil), r.queries...)
}

type stubPlaceDetailsRepository struct {
	details map[string]model.PlaceDetail
	err     error
}

func (r *stubPlaceDetailsRepository) GetByPlaceID(ctx context.Context, placeID string) (*model.PlaceDetail, error) {
	if r.err != nil {
		return nil, r.err
	}
	d, ok := r.details[placeID]
	if !ok {
		return nil, model.ErrPlaceNotFound
	}
	return &d, nil
}
