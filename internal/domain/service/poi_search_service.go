package service

import (
	"context"
	"fmt"
	"log"

	"POI-Map-App/internal/domain/helper"
	"POI-Map-App/internal/domain/model"
	"POI-Map-App/internal/domain/repository"
)

// NearbyResult 周辺検索の結果と、その結果がどこから来たか
type NearbyResult struct {
	POIs   []model.POI
	Source model.DataSource
	Reason model.FallbackReason
}

// POISearchService 地理空間ストアへの周辺検索と、サンプルデータへのフォールバックを行うサービス
type POISearchService interface {
	// FindNearby 文字列の緯度経度から固定半径内のPOIを取得する
	FindNearby(ctx context.Context, rawLat, rawLon string) (*NearbyResult, error)
	// DataSource ライブ検索に使うデータソース（ストアが無ければsample）
	DataSource() model.DataSource
}

type poiSearchService struct {
	liveRepo   repository.POIsRepository
	sampleRepo repository.POIsRepository
}

// NewPOISearchService liveRepoがnilの場合は常にサンプルデータを返す
func NewPOISearchService(liveRepo, sampleRepo repository.POIsRepository) POISearchService {
	return &poiSearchService{
		liveRepo:   liveRepo,
		sampleRepo: sampleRepo,
	}
}

func (s *poiSearchService) FindNearby(ctx context.Context, rawLat, rawLon string) (*NearbyResult, error) {
	req := helper.ResolveNearbyRequest(s.liveRepo != nil, rawLat, rawLon)

	if req.UseFallback() {
		log.Printf("⚠️  サンプルデータを返します (理由: %s)", req.Reason)
		pois, err := s.sampleRepo.FindNearby(ctx, req.Query)
		if err != nil {
			return nil, fmt.Errorf("サンプルPOIの取得失敗: %w", err)
		}
		return &NearbyResult{POIs: pois, Source: s.sampleRepo.Source(), Reason: req.Reason}, nil
	}

	// ストアでの失敗はフォールバックせずにエラーとして返す
	pois, err := s.liveRepo.FindNearby(ctx, req.Query)
	if err != nil {
		return nil, fmt.Errorf("周辺POI検索に失敗 (%s): %w", s.liveRepo.Source(), err)
	}

	log.Printf("✅ %d件のPOIを取得 (%s)", len(pois), s.liveRepo.Source())
	return &NearbyResult{POIs: pois, Source: s.liveRepo.Source(), Reason: model.FallbackNone}, nil
}

func (s *poiSearchService) DataSource() model.DataSource {
	if s.liveRepo == nil {
		return s.sampleRepo.Source()
	}
	return s.liveRepo.Source()
}
