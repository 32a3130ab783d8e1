package repository

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// GeoJSONToPoint ST_AsGeoJSONが返すPOINTをorb.Pointに変換
func GeoJSONToPoint(raw string) (orb.Point, error) {
	if raw == "" {
		return orb.Point{}, fmt.Errorf("location GeoJSONが空です")
	}

	geometry, err := geojson.UnmarshalGeometry([]byte(raw))
	if err != nil {
		return orb.Point{}, fmt.Errorf("location GeoJSONパースエラー: %w", err)
	}

	point, ok := geometry.Geometry().(orb.Point)
	if !ok {
		return orb.Point{}, fmt.Errorf("locationがPOINTではありません: %s", geometry.Type)
	}
	return point, nil
}
