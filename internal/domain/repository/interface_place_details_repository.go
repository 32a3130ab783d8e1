package repository

import (
	"context"

	"POI-Map-App/internal/domain/model"
)

// PlaceDetailsRepository プレイス参照をキーとした詳細情報の取得
type PlaceDetailsRepository interface {
	// GetByPlaceID 見つからない場合はmodel.ErrPlaceNotFoundを返す
	GetByPlaceID(ctx context.Context, placeID string) (*model.PlaceDetail, error)
}
