package mapview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"POI-Map-App/internal/domain/model"
)

// TrackGeolocator GeoJSONの軌跡を一定間隔で位置更新として再生するGeolocator
type TrackGeolocator struct {
	points   []orb.Point
	interval time.Duration
}

// NewTrackGeolocator 再生する点列と間隔からGeolocatorを作成
func NewTrackGeolocator(points []orb.Point, interval time.Duration) (*TrackGeolocator, error) {
	if len(points) == 0 {
		return nil, errors.New("軌跡に位置が含まれていません")
	}
	if interval <= 0 {
		return nil, fmt.Errorf("再生間隔が不正です: %s", interval)
	}
	return &TrackGeolocator{points: points, interval: interval}, nil
}

// LoadTrackFile GeoJSONファイルから軌跡を読み込む
func LoadTrackFile(path string) ([]orb.Point, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("軌跡ファイルの読み込みに失敗: %w", err)
	}
	return ParseTrack(data)
}

// ParseTrack FeatureCollection、Feature、ジオメトリ単体のいずれかから点列を取り出す
// LineStringとMultiPointは頂点順、Pointはそのまま1点として扱う
func ParseTrack(data []byte) ([]orb.Point, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("GeoJSONのパースに失敗: %w", err)
	}

	var geometries []orb.Geometry
	switch head.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, fmt.Errorf("FeatureCollectionのパースに失敗: %w", err)
		}
		for _, f := range fc.Features {
			geometries = append(geometries, f.Geometry)
		}
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, fmt.Errorf("Featureのパースに失敗: %w", err)
		}
		geometries = append(geometries, f.Geometry)
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, fmt.Errorf("ジオメトリのパースに失敗: %w", err)
		}
		geometries = append(geometries, g.Geometry())
	}

	var points []orb.Point
	for _, g := range geometries {
		switch v := g.(type) {
		case orb.Point:
			points = append(points, v)
		case orb.MultiPoint:
			points = append(points, v...)
		case orb.LineString:
			points = append(points, v...)
		default:
			return nil, fmt.Errorf("未対応のジオメトリ: %T", g)
		}
	}
	if len(points) == 0 {
		return nil, errors.New("軌跡に位置が含まれていません")
	}
	return points, nil
}

// WatchPosition 最初の位置を即座に、以降はintervalごとに通知する。最後の点で再生を終える
func (t *TrackGeolocator) WatchPosition(ctx context.Context, onPosition func(model.UserPosition), onError func(error), opts WatchOptions) (func(), error) {
	ctx, cancel := context.WithCancel(ctx)
	var once sync.Once
	stop := func() { once.Do(cancel) }

	go func() {
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()

		for i, p := range t.points {
			if i > 0 {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
				}
			}
			if ctx.Err() != nil {
				return
			}
			onPosition(model.UserPosition{Lat: p.Lat(), Lng: p.Lon(), HighAccuracy: opts.HighAccuracy})
		}
	}()

	return stop, nil
}
