package repository

import (
	"context"

	"POI-Map-App/internal/domain/model"
)

// POIsRepository 地理空間ストアに対する周辺POI検索
type POIsRepository interface {
	// FindNearby 検索条件の中心から半径内のPOIをストアの返却順で取得する
	FindNearby(ctx context.Context, query model.NearbyQuery) ([]model.POI, error)
	// HealthCheck ストアへの到達確認
	HealthCheck(ctx context.Context) error
	// Source 検索結果のデータソース種別
	Source() model.DataSource
}
