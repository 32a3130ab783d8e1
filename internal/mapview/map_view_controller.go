package mapview

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"sync"

	"github.com/google/uuid"

	"POI-Map-App/internal/domain/model"
)

// infoWindowTemplate マーカークリック時に情報ウィンドウへ表示する内容
var infoWindowTemplate = template.Must(template.New("info").Parse(
	`<div class="info-window-content"><h3>{{.Name}}</h3><p>{{.FormattedAddress}}</p><p>Valutazione: {{.Rating}} ★</p></div>`,
))

// ViewState 地図コントローラーが所有する表示状態
type ViewState struct {
	Map        MapWidget
	InfoWindow InfoWindow
	UserMarker Marker
	// POIMarkers 入力順に並んだPOIマーカー
	POIMarkers []Marker
	// placeByMarker マーカーIDからプレイス参照を引くための索引（参照は重複しうる）
	placeByMarker map[string]string
	// nearbySeq 最後に発行した周辺検索のシーケンス番号
	nearbySeq uint64
}

// MapViewController 地図の初期化、マーカーの生成・破棄、クリック時の詳細表示を担当する
// 位置更新やHTTP応答は別goroutineから届くため、表示状態はmuで直列化する
type MapViewController struct {
	mu     sync.Mutex
	state  ViewState
	client POIClient
	geo    *GeolocationController

	ctx      context.Context
	inflight sync.WaitGroup
}

func NewMapViewController(widget MapWidget, client POIClient, geolocator Geolocator) *MapViewController {
	c := &MapViewController{
		state: ViewState{
			Map:            widget,
			placeByMarker: map[string]string{},
		},
		client: client,
		ctx:    context.Background(),
	}
	c.geo = NewGeolocationController(geolocator, c)
	return c
}

// Initialize 地図をローマ中心・固定ズームで表示し、情報ウィンドウを用意してから位置監視を始める
func (c *MapViewController) Initialize(ctx context.Context) error {
	c.mu.Lock()
	c.ctx = ctx
	c.state.Map.SetCenter(model.DefaultCenter)
	c.state.Map.SetZoom(model.DefaultZoom)
	c.state.InfoWindow = c.state.Map.NewInfoWindow()
	c.mu.Unlock()

	return c.geo.Start(ctx)
}

// Geolocation 位置監視コントローラー
func (c *MapViewController) Geolocation() *GeolocationController {
	return c.geo
}

// HandlePosition 位置更新ごとに地図の中心移動、ユーザーマーカー更新、周辺POIの再取得を行う
func (c *MapViewController) HandlePosition(pos model.UserPosition) {
	latLng := pos.ToLatLng()

	c.mu.Lock()
	c.state.Map.SetCenter(latLng)
	c.mu.Unlock()

	c.SetUserPosition(latLng)
	c.RequestNearby(latLng)
}

// HandleLocationError 測位エラーを現在の地図中心に固定文言で表示する。監視は継続
func (c *MapViewController) HandleLocationError(err error) {
	log.Printf("⚠️  位置情報の取得に失敗: %v", err)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.InfoWindow == nil {
		return
	}
	c.state.InfoWindow.SetPosition(c.state.Map.Center())
	c.state.InfoWindow.SetContent(model.GeolocationFailedMessage)
	c.state.InfoWindow.Open(nil)
}

// HandleGeolocationUnavailable 測位機能が無い場合のアラート
func (c *MapViewController) HandleGeolocationUnavailable() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Map.Alert(model.GeolocationUnsupportedMessage)
}

// SetUserPosition ユーザーマーカーを初回のみ作成し、以降は移動だけ行う
func (c *MapViewController) SetUserPosition(pos model.LatLng) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.UserMarker != nil {
		c.state.UserMarker.SetPosition(pos)
		return
	}
	icon := userMarkerIcon
	c.state.UserMarker = c.state.Map.NewMarker(MarkerOptions{
		ID:       uuid.New().String(),
		Position: pos,
		Title:    model.UserMarkerTitle,
		Icon:     &icon,
	})
}

// RequestNearby 周辺POIを非同期で取得する。新しい要求が発行済みなら古い応答は捨てる
func (c *MapViewController) RequestNearby(pos model.LatLng) uint64 {
	c.mu.Lock()
	c.state.nearbySeq++
	seq := c.state.nearbySeq
	ctx := c.ctx
	c.mu.Unlock()

	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		pois, err := c.client.FetchNearby(ctx, pos)
		c.applyNearby(seq, pois, err)
	}()
	return seq
}

// applyNearby 応答のシーケンス番号が最新の場合だけマーカーを描き直す
func (c *MapViewController) applyNearby(seq uint64, pois []model.POI, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.state.nearbySeq {
		log.Printf("🔍 古い周辺検索の応答を破棄 (seq=%d, latest=%d)", seq, c.state.nearbySeq)
		return false
	}
	if err != nil {
		log.Printf("❌ Errore nel recupero dei POI: %v", err)
		return false
	}
	c.refreshPoisLocked(pois)
	return true
}

// RefreshPois 既存のPOIマーカーをすべて消し、入力順に作り直す
func (c *MapViewController) RefreshPois(pois []model.POI) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refreshPoisLocked(pois)
}

func (c *MapViewController) refreshPoisLocked(pois []model.POI) {
	for _, marker := range c.state.POIMarkers {
		marker.Remove()
	}
	c.state.POIMarkers = make([]Marker, 0, len(pois))
	c.state.placeByMarker = make(map[string]string, len(pois))

	for _, poi := range pois {
		var marker Marker
		marker = c.state.Map.NewMarker(MarkerOptions{
			ID:       uuid.New().String(),
			Position: poi.ToLatLng(),
			Title:    poi.Name,
			OnClick:  func() { c.OnMarkerClicked(marker) },
		})
		c.state.POIMarkers = append(c.state.POIMarkers, marker)
		c.state.placeByMarker[marker.ID()] = poi.GooglePlaceID
	}
}

// OnMarkerClicked 詳細取得を非同期で行い、結果をクリックされたマーカーの情報ウィンドウに表示する
func (c *MapViewController) OnMarkerClicked(marker Marker) {
	c.mu.Lock()
	ctx := c.ctx
	c.mu.Unlock()

	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		if err := c.ShowPlaceDetails(ctx, marker); err != nil {
			log.Printf("❌ Errore nel recupero dei dettagli del luogo: %v", err)
		}
	}()
}

// ShowPlaceDetails マーカーのプレイス参照で詳細を取得し、そのマーカーに情報ウィンドウを開く
// 取得中にマーカーが描き直された場合は内容だけ更新して開かない
func (c *MapViewController) ShowPlaceDetails(ctx context.Context, marker Marker) error {
	c.mu.Lock()
	placeID, ok := c.state.placeByMarker[marker.ID()]
	c.mu.Unlock()
	if !ok {
		return fmt.Errorf("表示中のPOIマーカーではありません: %s", marker.ID())
	}

	detail, err := c.client.FetchPlaceDetails(ctx, placeID)
	if err != nil {
		return err
	}

	content, err := renderInfoWindow(detail)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.InfoWindow == nil {
		return fmt.Errorf("情報ウィンドウが初期化されていません")
	}
	c.state.InfoWindow.SetContent(content)
	if _, stillShown := c.state.placeByMarker[marker.ID()]; stillShown {
		c.state.InfoWindow.Open(marker)
	}
	return nil
}

func renderInfoWindow(detail *model.PlaceDetail) (string, error) {
	var buf bytes.Buffer
	if err := infoWindowTemplate.Execute(&buf, detail); err != nil {
		return "", fmt.Errorf("情報ウィンドウの描画に失敗: %w", err)
	}
	return buf.String(), nil
}

// Wait 実行中の取得処理がすべて終わるまで待つ
func (c *MapViewController) Wait() {
	c.inflight.Wait()
}

// POIMarkers 現在表示中のPOIマーカー（入力順）
func (c *MapViewController) POIMarkers() []Marker {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Marker(nil), c.state.POIMarkers...)
}

// UserMarker ユーザー位置マーカー（未作成ならnil）
func (c *MapViewController) UserMarker() Marker {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.UserMarker
}
