package mapview

import (
	"context"

	"POI-Map-App/internal/domain/model"
)

// MapWidget 地図ウィジェットの抽象（ブラウザの地図やターミナル表示など）
type MapWidget interface {
	SetCenter(pos model.LatLng)
	Center() model.LatLng
	SetZoom(zoom int)
	NewMarker(opts MarkerOptions) Marker
	NewInfoWindow() InfoWindow
	// Alert ユーザーの操作を止めるアラートを表示する
	Alert(message string)
}

// MarkerIcon マーカーの見た目
type MarkerIcon struct {
	Shape        string
	Scale        float64
	FillColor    string
	FillOpacity  float64
	StrokeColor  string
	StrokeWeight float64
}

// MarkerOptions マーカー作成時のパラメータ
type MarkerOptions struct {
	ID       string
	Position model.LatLng
	Title    string
	Icon     *MarkerIcon
	OnClick  func()
}

// Marker 地図上に描画された1点
type Marker interface {
	ID() string
	Title() string
	Position() model.LatLng
	SetPosition(pos model.LatLng)
	// Remove 地図からマーカーを取り除く
	Remove()
}

// InfoWindow マーカーまたは座標に紐づく一時的なオーバーレイ
type InfoWindow interface {
	SetContent(content string)
	SetPosition(pos model.LatLng)
	// Open anchorがnilの場合はSetPositionの座標に開く
	Open(anchor Marker)
}

// WatchOptions 位置監視のオプション
type WatchOptions struct {
	HighAccuracy bool
}

// Geolocator 継続的な位置情報の購読を提供する測位サブシステム
type Geolocator interface {
	// WatchPosition 戻り値のstopで購読を解除する
	WatchPosition(ctx context.Context, onPosition func(model.UserPosition), onError func(error), opts WatchOptions) (stop func(), err error)
}

// POIClient HTTP API層へのクライアント
type POIClient interface {
	FetchNearby(ctx context.Context, pos model.LatLng) ([]model.POI, error)
	FetchPlaceDetails(ctx context.Context, placeID string) (*model.PlaceDetail, error)
}

// userMarkerIcon ユーザー位置マーカー用の円形アイコン
var userMarkerIcon = MarkerIcon{
	Shape:        "circle",
	Scale:        8,
	FillColor:    "#4285F4",
	FillOpacity:  1,
	StrokeColor:  "white",
	StrokeWeight: 2,
}
