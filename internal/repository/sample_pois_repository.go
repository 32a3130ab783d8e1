package repository

import (
	"context"

	"POI-Map-App/internal/domain/model"
	"POI-Map-App/internal/domain/repository"
)

// samplePOIs ストアが使えない場合に返す固定データ
var samplePOIs = []model.POI{
	{ID: int64Ptr(1), Name: "Colosseo", Latitude: 41.8902, Longitude: 12.4922, GooglePlaceID: "ChIJrRkKO7heLxMRMD_3eR4-h-E"},
	{ID: int64Ptr(2), Name: "Fontana di Trevi", Latitude: 41.9009, Longitude: 12.4833, GooglePlaceID: "ChIJg8swS71hLxMR-9i-AMVj8rA"},
}

func int64Ptr(v int64) *int64 {
	return &v
}

// SamplePOIsRepository 検索条件に関係なく固定のサンプルPOIを返す
type SamplePOIsRepository struct{}

func NewSamplePOIsRepository() repository.POIsRepository {
	return &SamplePOIsRepository{}
}

// SamplePOIs サンプルPOIのコピーを返す
func SamplePOIs() []model.POI {
	pois := make([]model.POI, len(samplePOIs))
	for i, poi := range samplePOIs {
		pois[i] = poi
		if poi.ID != nil {
			pois[i].ID = int64Ptr(*poi.ID)
		}
	}
	return pois
}

func (r *SamplePOIsRepository) FindNearby(ctx context.Context, q model.NearbyQuery) ([]model.POI, error) {
	return SamplePOIs(), nil
}

func (r *SamplePOIsRepository) HealthCheck(ctx context.Context) error {
	return nil
}

func (r *SamplePOIsRepository) Source() model.DataSource {
	return model.DataSourceSample
}
