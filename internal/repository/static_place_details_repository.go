package repository

import (
	"context"
	"fmt"

	"POI-Map-App/internal/domain/model"
	"POI-Map-App/internal/domain/repository"
)

// staticPlaceDetails 外部プレイスAPIの代わりに使う固定の詳細テーブル
var staticPlaceDetails = map[string]model.PlaceDetail{
	"ChIJrRkKO7heLxMRMD_3eR4-h-E": {
		Name:             "Colosseo",
		FormattedAddress: "Piazza del Colosseo, 1, 00184 Roma RM, Italia",
		Rating:           4.7,
	},
	"ChIJg8swS71hLxMR-9i-AMVj8rA": {
		Name:             "Fontana di Trevi",
		FormattedAddress: "Piazza di Trevi, 00187 Roma RM, Italia",
		Rating:           4.8,
	},
}

type StaticPlaceDetailsRepository struct{}

func NewStaticPlaceDetailsRepository() repository.PlaceDetailsRepository {
	return &StaticPlaceDetailsRepository{}
}

func (r *StaticPlaceDetailsRepository) GetByPlaceID(ctx context.Context, placeID string) (*model.PlaceDetail, error) {
	detail, ok := staticPlaceDetails[placeID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrPlaceNotFound, placeID)
	}
	return &detail, nil
}
