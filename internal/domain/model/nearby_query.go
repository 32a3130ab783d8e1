package model

import (
	"errors"

	"github.com/paulmach/orb"
)

// DistanceMetric 距離判定に使う計量
type DistanceMetric string

const (
	// MetricGeodesic 地球表面上の測地線距離（PostGISのgeography型）
	MetricGeodesic DistanceMetric = "geodesic"
	// MetricPlanar 平面距離（geometry型）。本システムでは使用しない
	MetricPlanar DistanceMetric = "planar"
)

// NearbyQuery 地理空間ストアへ発行する半径内検索の条件
type NearbyQuery struct {
	Center       orb.Point // [経度, 緯度]
	RadiusMeters float64
	Metric       DistanceMetric
}

// NewNearbyQuery 固定半径・測地線距離で検索条件を作成
func NewNearbyQuery(lat, lng float64) NearbyQuery {
	return NearbyQuery{
		Center:       orb.Point{lng, lat},
		RadiusMeters: SearchRadiusMeters,
		Metric:       MetricGeodesic,
	}
}

// FallbackReason サンプルデータへ切り替える理由
type FallbackReason int

const (
	// FallbackNone フォールバック不要（ライブ検索を行う）
	FallbackNone FallbackReason = iota
	// FallbackDataSourceUnavailable ストア未設定または起動時に到達不能
	FallbackDataSourceUnavailable
	// FallbackInsufficientInput 緯度・経度が欠落または数値として解釈できない
	FallbackInsufficientInput
)

// String メトリクスやログ用のラベル
func (r FallbackReason) String() string {
	switch r {
	case FallbackNone:
		return "none"
	case FallbackDataSourceUnavailable:
		return "data_source_unavailable"
	case FallbackInsufficientInput:
		return "insufficient_input"
	default:
		return "unknown"
	}
}

var (
	// ErrPlaceNotFound 指定されたプレイス参照の詳細が存在しない
	ErrPlaceNotFound = errors.New("place details not found")
	// ErrUnsupportedMetric ストアが要求された距離計量に対応していない
	ErrUnsupportedMetric = errors.New("unsupported distance metric")
)
