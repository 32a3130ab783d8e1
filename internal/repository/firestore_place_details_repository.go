package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"POI-Map-App/internal/domain/model"
	"POI-Map-App/internal/domain/repository"
)

// placeDetailsCollection プレイス参照をドキュメントIDとするコレクション
const placeDetailsCollection = "placeDetails"

// FirestorePlaceDetailsRepository Firestoreに格納された詳細レコードを読み取るリポジトリ
type FirestorePlaceDetailsRepository struct {
	client *firestore.Client
}

func NewFirestorePlaceDetailsRepository(client *firestore.Client) repository.PlaceDetailsRepository {
	return &FirestorePlaceDetailsRepository{
		client: client,
	}
}

func (r *FirestorePlaceDetailsRepository) GetByPlaceID(ctx context.Context, placeID string) (*model.PlaceDetail, error) {
	doc, err := r.client.Collection(placeDetailsCollection).Doc(placeID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("%w: %s", model.ErrPlaceNotFound, placeID)
		}
		return nil, fmt.Errorf("プレイス詳細の取得に失敗しました: %w", err)
	}

	var detail model.PlaceDetail
	if err := doc.DataTo(&detail); err != nil {
		return nil, fmt.Errorf("データの変換に失敗しました: %w", err)
	}
	return &detail, nil
}
