package mapview

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/paulmach/orb/geo"

	"POI-Map-App/internal/domain/model"
)

// TerminalWidget 地図の状態をテキストで出力するMapWidget実装
// クリックはClickで番号指定して擬似的に発生させる
type TerminalWidget struct {
	mu      sync.Mutex
	out     io.Writer
	center  model.LatLng
	zoom    int
	markers []*terminalMarker
}

func NewTerminalWidget(out io.Writer) *TerminalWidget {
	return &TerminalWidget{out: out}
}

func (w *TerminalWidget) SetCenter(pos model.LatLng) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.center = pos
	fmt.Fprintf(w.out, "🗺️  center %.6f,%.6f\n", pos.Lat, pos.Lng)
}

func (w *TerminalWidget) Center() model.LatLng {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.center
}

func (w *TerminalWidget) SetZoom(zoom int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.zoom = zoom
}

func (w *TerminalWidget) NewMarker(opts MarkerOptions) Marker {
	w.mu.Lock()
	defer w.mu.Unlock()
	m := &terminalMarker{widget: w, opts: opts, position: opts.Position}
	w.markers = append(w.markers, m)
	return m
}

func (w *TerminalWidget) NewInfoWindow() InfoWindow {
	return &terminalInfoWindow{widget: w}
}

func (w *TerminalWidget) Alert(message string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintf(w.out, "⚠️  %s\n", message)
}

// visibleLocked 削除されていないマーカーを作成順で返す
func (w *TerminalWidget) visibleLocked() []*terminalMarker {
	visible := make([]*terminalMarker, 0, len(w.markers))
	for _, m := range w.markers {
		if !m.removed {
			visible = append(visible, m)
		}
	}
	return visible
}

// Render 表示中のマーカーを中心からの距離順に一覧表示する
func (w *TerminalWidget) Render() {
	w.mu.Lock()
	defer w.mu.Unlock()

	visible := w.visibleLocked()
	center := w.center.ToPoint()
	type row struct {
		index    int
		marker   *terminalMarker
		distance float64
	}
	rows := make([]row, 0, len(visible))
	for i, m := range visible {
		rows = append(rows, row{index: i + 1, marker: m, distance: geo.Distance(center, m.position.ToPoint())})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].distance < rows[j].distance })

	fmt.Fprintf(w.out, "📍 %d markers around %.6f,%.6f (zoom %d)\n", len(rows), w.center.Lat, w.center.Lng, w.zoom)
	for _, r := range rows {
		fmt.Fprintf(w.out, "  [%d] %s  %.0f m\n", r.index, r.marker.opts.Title, r.distance)
	}
}

// Click 表示中マーカーの番号（1始まり、作成順）を指定してクリックする
func (w *TerminalWidget) Click(index int) error {
	w.mu.Lock()
	visible := w.visibleLocked()
	if index < 1 || index > len(visible) {
		w.mu.Unlock()
		return fmt.Errorf("マーカー番号が範囲外です: %d", index)
	}
	onClick := visible[index-1].opts.OnClick
	w.mu.Unlock()

	if onClick != nil {
		onClick()
	}
	return nil
}

type terminalMarker struct {
	widget   *TerminalWidget
	opts     MarkerOptions
	position model.LatLng
	removed  bool
}

func (m *terminalMarker) ID() string    { return m.opts.ID }
func (m *terminalMarker) Title() string { return m.opts.Title }

func (m *terminalMarker) Position() model.LatLng {
	m.widget.mu.Lock()
	defer m.widget.mu.Unlock()
	return m.position
}

func (m *terminalMarker) SetPosition(pos model.LatLng) {
	m.widget.mu.Lock()
	defer m.widget.mu.Unlock()
	m.position = pos
}

func (m *terminalMarker) Remove() {
	m.widget.mu.Lock()
	defer m.widget.mu.Unlock()
	m.removed = true
}

type terminalInfoWindow struct {
	widget   *TerminalWidget
	content  string
	position model.LatLng
}

func (iw *terminalInfoWindow) SetContent(content string) {
	iw.widget.mu.Lock()
	defer iw.widget.mu.Unlock()
	iw.content = content
}

func (iw *terminalInfoWindow) SetPosition(pos model.LatLng) {
	iw.widget.mu.Lock()
	defer iw.widget.mu.Unlock()
	iw.position = pos
}

func (iw *terminalInfoWindow) Open(anchor Marker) {
	if anchor != nil {
		pos := anchor.Position()
		iw.widget.mu.Lock()
		defer iw.widget.mu.Unlock()
		fmt.Fprintf(iw.widget.out, "💬 %s @ %.6f,%.6f: %s\n", anchor.Title(), pos.Lat, pos.Lng, iw.content)
		return
	}
	iw.widget.mu.Lock()
	defer iw.widget.mu.Unlock()
	fmt.Fprintf(iw.widget.out, "💬 %.6f,%.6f: %s\n", iw.position.Lat, iw.position.Lng, iw.content)
}
