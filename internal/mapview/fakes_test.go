package mapview

import (
	"context"
	"errors"
	"sync"

	"POI-Map-App/internal/domain/model"
)

type fakeMarker struct {
	mu       sync.Mutex
	opts     MarkerOptions
	position model.LatLng
	removed  bool
}

func (m *fakeMarker) ID() string    { return m.opts.ID }
func (m *fakeMarker) Title() string { return m.opts.Title }

func (m *fakeMarker) Position() model.LatLng {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

func (m *fakeMarker) SetPosition(pos model.LatLng) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.position = pos
}

func (m *fakeMarker) Remove() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removed = true
}

func (m *fakeMarker) isRemoved() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.removed
}

// click ブラウザ上のクリックに相当
func (m *fakeMarker) click() {
	if m.opts.OnClick != nil {
		m.opts.OnClick()
	}
}

type fakeInfoWindow struct {
	mu       sync.Mutex
	content  string
	position model.LatLng
	anchor   Marker
	opened   int
}

func (w *fakeInfoWindow) SetContent(content string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.content = content
}

func (w *fakeInfoWindow) SetPosition(pos model.LatLng) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.position = pos
}

func (w *fakeInfoWindow) Open(anchor Marker) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.anchor = anchor
	w.opened++
}

type fakeWidget struct {
	mu          sync.Mutex
	center      model.LatLng
	zoom        int
	markers     []*fakeMarker
	infoWindows []*fakeInfoWindow
	alerts      []string
}

func (w *fakeWidget) SetCenter(pos model.LatLng) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.center = pos
}

func (w *fakeWidget) Center() model.LatLng {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.center
}

func (w *fakeWidget) SetZoom(zoom int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.zoom = zoom
}

func (w *fakeWidget) NewMarker(opts MarkerOptions) Marker {
	w.mu.Lock()
	defer w.mu.Unlock()
	m := &fakeMarker{opts: opts, position: opts.Position}
	w.markers = append(w.markers, m)
	return m
}

func (w *fakeWidget) NewInfoWindow() InfoWindow {
	w.mu.Lock()
	defer w.mu.Unlock()
	iw := &fakeInfoWindow{}
	w.infoWindows = append(w.infoWindows, iw)
	return iw
}

func (w *fakeWidget) Alert(message string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.alerts = append(w.alerts, message)
}

// visibleMarkers 削除されていないマーカー
func (w *fakeWidget) visibleMarkers() []*fakeMarker {
	w.mu.Lock()
	defer w.mu.Unlock()
	var visible []*fakeMarker
	for _, m := range w.markers {
		if !m.isRemoved() {
			visible = append(visible, m)
		}
	}
	return visible
}

// fakeGeolocator 購読時に渡されたコールバックを保持し、テストから位置を流し込む
type fakeGeolocator struct {
	mu         sync.Mutex
	onPosition func(model.UserPosition)
	onError    func(error)
	opts       WatchOptions
	watchCalls int
	stopped    bool
}

func (g *fakeGeolocator) WatchPosition(ctx context.Context, onPosition func(model.UserPosition), onError func(error), opts WatchOptions) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onPosition = onPosition
	g.onError = onError
	g.opts = opts
	g.watchCalls++
	return func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		g.stopped = true
	}, nil
}

func (g *fakeGeolocator) emit(lat, lng float64) {
	g.mu.Lock()
	cb := g.onPosition
	g.mu.Unlock()
	cb(model.UserPosition{Lat: lat, Lng: lng, HighAccuracy: true})
}

func (g *fakeGeolocator) fail() {
	g.mu.Lock()
	cb := g.onError
	g.mu.Unlock()
	cb(errors.New("position unavailable"))
}

type nearbyResponse struct {
	pois []model.POI
	err  error
}

// fakeClient 座標ごとにゲートを設定でき、応答の到着順をテストで制御できる
type fakeClient struct {
	mu          sync.Mutex
	gates       map[model.LatLng]chan nearbyResponse
	defaultPOIs []model.POI
	nearbyCalls []model.LatLng
	details     map[string]model.PlaceDetail
	detailErr   error
}

func newFakeClient(pois []model.POI) *fakeClient {
	return &fakeClient{
		gates:       map[model.LatLng]chan nearbyResponse{},
		defaultPOIs: pois,
		details:     map[string]model.PlaceDetail{},
	}
}

func (f *fakeClient) gate(pos model.LatLng) chan nearbyResponse {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan nearbyResponse, 1)
	f.gates[pos] = ch
	return ch
}

func (f *fakeClient) FetchNearby(ctx context.Context, pos model.LatLng) ([]model.POI, error) {
	f.mu.Lock()
	f.nearbyCalls = append(f.nearbyCalls, pos)
	ch, gated := f.gates[pos]
	f.mu.Unlock()

	if !gated {
		return f.defaultPOIs, nil
	}
	resp := <-ch
	return resp.pois, resp.err
}

func (f *fakeClient) FetchPlaceDetails(ctx context.Context, placeID string) (*model.PlaceDetail, error) {
	if f.detailErr != nil {
		return nil, f.detailErr
	}
	d, ok := f.details[placeID]
	if !ok {
		return nil, errors.New("HTTP error! status: 404")
	}
	return &d, nil
}

func (f *fakeClient) calls() []model.LatLng {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.LatLng(nil), f.nearbyCalls...)
}
