package helper

import (
	"math"
	"strconv"
	"strings"

	"POI-Map-App/internal/domain/model"
)

// NearbyRequest 周辺検索リクエストの解決結果
type NearbyRequest struct {
	Query  model.NearbyQuery
	Reason model.FallbackReason
}

// UseFallback サンプルデータを返すべきかどうか
func (r NearbyRequest) UseFallback() bool {
	return r.Reason != model.FallbackNone
}

// ResolveNearbyRequest ストアの有無と生の座標文字列からフォールバック方針を決める
// ストアが無い場合は座標の有無より優先してDataSourceUnavailableになる
func ResolveNearbyRequest(storeAvailable bool, rawLat, rawLon string) NearbyRequest {
	if !storeAvailable {
		return NearbyRequest{Reason: model.FallbackDataSourceUnavailable}
	}

	lat, latOK := parseCoordinate(rawLat)
	lon, lonOK := parseCoordinate(rawLon)
	if !latOK || !lonOK {
		return NearbyRequest{Reason: model.FallbackInsufficientInput}
	}

	return NearbyRequest{
		Query:  model.NewNearbyQuery(lat, lon),
		Reason: model.FallbackNone,
	}
}

// parseCoordinate 座標文字列をfloat64に変換する。範囲チェックは行わない
// 空文字列、数値でない値、NaN・Infは欠落として扱う
func parseCoordinate(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
