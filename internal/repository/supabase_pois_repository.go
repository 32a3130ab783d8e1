package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"POI-Map-App/internal/domain/model"
	"POI-Map-App/internal/domain/repository"
	"POI-Map-App/internal/infrastructure/database"
)

// nearbyRPCName Supabase側に用意するST_DWithinラッパー関数
const nearbyRPCName = "pois_within_radius"

type SupabasePOIsRepository struct {
	client *database.SupabaseClient
}

func NewSupabasePOIsRepository(client *database.SupabaseClient) repository.POIsRepository {
	return &SupabasePOIsRepository{
		client: client,
	}
}

// nearbyRPCParams RPC関数の引数
type nearbyRPCParams struct {
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
	RadiusMeters float64 `json:"radius_meters"`
}

// postgrestError PostgRESTがエラー時に返すJSON
type postgrestError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (r *SupabasePOIsRepository) FindNearby(ctx context.Context, q model.NearbyQuery) ([]model.POI, error) {
	if q.Metric != model.MetricGeodesic {
		return nil, fmt.Errorf("%w: %s", model.ErrUnsupportedMetric, q.Metric)
	}

	params := nearbyRPCParams{
		Lat:          q.Center.Lat(),
		Lon:          q.Center.Lon(),
		RadiusMeters: q.RadiusMeters,
	}
	// supabase-goのRpcはエラーを返さず、失敗時は空文字列になる
	body := r.client.GetClient().Rpc(nearbyRPCName, "", params)

	pois, err := decodeRPCResult(body)
	if err != nil {
		return nil, fmt.Errorf("周辺POI検索失敗: %w", err)
	}
	return pois, nil
}

// decodeRPCResult RPCのレスポンスボディをPOI一覧に変換
func decodeRPCResult(body string) ([]model.POI, error) {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return nil, fmt.Errorf("Supabase RPC %sの呼び出しに失敗しました", nearbyRPCName)
	}

	if strings.HasPrefix(trimmed, "{") {
		var pgErr postgrestError
		if err := json.Unmarshal([]byte(trimmed), &pgErr); err != nil {
			return nil, fmt.Errorf("RPCエラーレスポンスのパース失敗: %w", err)
		}
		return nil, fmt.Errorf("Supabase RPCエラー (%s): %s", pgErr.Code, pgErr.Message)
	}

	pois := []model.POI{}
	if err := json.Unmarshal([]byte(trimmed), &pois); err != nil {
		return nil, fmt.Errorf("POIデータのJSONアンマーシャル失敗: %w", err)
	}
	return pois, nil
}

func (r *SupabasePOIsRepository) HealthCheck(ctx context.Context) error {
	_, _, err := r.client.GetClient().From("pois").Select("id", "", false).Limit(1, "").Execute()
	if err != nil {
		return fmt.Errorf("Supabaseへの接続確認に失敗: %w", err)
	}
	return nil
}

func (r *SupabasePOIsRepository) Source() model.DataSource {
	return model.DataSourceSupabase
}
