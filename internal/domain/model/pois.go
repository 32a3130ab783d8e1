package model

import (
	"github.com/paulmach/orb"
)

// LatLng 緯度経度を表す基本的な型（地図の中心やユーザー位置で使用）
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ToPoint LatLngをorb.Point（[経度, 緯度]）に変換
func (l LatLng) ToPoint() orb.Point {
	return orb.Point{l.Lng, l.Lat}
}

// LatLngFromPoint orb.PointからLatLngを作成
func LatLngFromPoint(p orb.Point) LatLng {
	return LatLng{Lat: p.Lat(), Lng: p.Lon()}
}

// POI Point of Interest（興味のあるスポット）を表すモデル
// 本システムからは読み取り専用。ライブ検索時のIDはストア側のキーをそのまま使う
type POI struct {
	ID            *int64  `json:"id,omitempty" db:"id"`                // ストア採番のID（サンプル以外では省略されうる）
	Name          string  `json:"nome" db:"nome"`                      // 表示名
	Latitude      float64 `json:"latitude" db:"latitude"`              // 緯度
	Longitude     float64 `json:"longitude" db:"longitude"`            // 経度
	GooglePlaceID string  `json:"google_place_id" db:"google_place_id"` // 外部プレイス参照
}

// ToLatLng POIの位置情報をLatLng型に変換
func (p *POI) ToLatLng() LatLng {
	return LatLng{Lat: p.Latitude, Lng: p.Longitude}
}

// ToPoint POIの位置情報をorb.Pointに変換
func (p *POI) ToPoint() orb.Point {
	return orb.Point{p.Longitude, p.Latitude}
}

// PlaceDetail 外部プレイス参照をキーとする詳細情報
type PlaceDetail struct {
	Name             string  `json:"name" firestore:"name"`
	FormattedAddress string  `json:"formatted_address" firestore:"formatted_address"`
	Rating           float64 `json:"rating" firestore:"rating"`
}

// UserPosition 測位サブシステムから届くユーザー位置（永続化しない）
type UserPosition struct {
	Lat          float64
	Lng          float64
	HighAccuracy bool
}

// ToLatLng UserPositionをLatLngに変換
func (u UserPosition) ToLatLng() LatLng {
	return LatLng{Lat: u.Lat, Lng: u.Lng}
}
