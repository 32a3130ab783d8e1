package service

import (
	"context"
	"errors"
	"fmt"

	"POI-Map-App/internal/domain/model"
	"POI-Map-App/internal/domain/repository"
)

// PlaceDetailService 外部プレイス参照から詳細レコードを引くサービス
type PlaceDetailService interface {
	GetDetails(ctx context.Context, placeID string) (*model.PlaceDetail, error)
}

type placeDetailService struct {
	detailsRepo repository.PlaceDetailsRepository
}

func NewPlaceDetailService(detailsRepo repository.PlaceDetailsRepository) PlaceDetailService {
	return &placeDetailService{
		detailsRepo: detailsRepo,
	}
}

// GetDetails 見つからない場合はmodel.ErrPlaceNotFoundをラップして返す
func (s *placeDetailService) GetDetails(ctx context.Context, placeID string) (*model.PlaceDetail, error) {
	if placeID == "" {
		return nil, fmt.Errorf("%w: place_idが空です", model.ErrPlaceNotFound)
	}

	detail, err := s.detailsRepo.GetByPlaceID(ctx, placeID)
	if err != nil {
		if errors.Is(err, model.ErrPlaceNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("プレイス詳細の取得失敗: %w", err)
	}
	return detail, nil
}
