package mapview

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"POI-Map-App/internal/domain/model"
)

// ErrGeolocationUnsupported 測位機能が無い。リトライはしない
var ErrGeolocationUnsupported = errors.New("geolocation not supported")

// GeolocationState 位置監視の状態
type GeolocationState int

const (
	StateIdle GeolocationState = iota
	StateWatching
)

func (s GeolocationState) String() string {
	if s == StateWatching {
		return "watching"
	}
	return "idle"
}

// PositionListener 位置更新の通知先
type PositionListener interface {
	HandlePosition(pos model.UserPosition)
	HandleLocationError(err error)
	HandleGeolocationUnavailable()
}

// GeolocationController Idle/Watchingの2状態で位置更新を購読する
// 更新の間引きや重複排除は行わず、測位側の更新間隔にそのまま従う
type GeolocationController struct {
	mu         sync.Mutex
	geolocator Geolocator
	listener   PositionListener
	state      GeolocationState
	stop       func()
}

func NewGeolocationController(geolocator Geolocator, listener PositionListener) *GeolocationController {
	return &GeolocationController{
		geolocator: geolocator,
		listener:   listener,
		state:      StateIdle,
	}
}

// Start 起動時に一度だけ呼ぶ。測位機能が無ければIdleのままアラートを出す
func (g *GeolocationController) Start(ctx context.Context) error {
	g.mu.Lock()
	if g.state == StateWatching {
		g.mu.Unlock()
		return nil
	}
	if g.geolocator == nil {
		g.mu.Unlock()
		g.listener.HandleGeolocationUnavailable()
		return ErrGeolocationUnsupported
	}
	g.mu.Unlock()

	stop, err := g.geolocator.WatchPosition(ctx,
		g.listener.HandlePosition,
		g.listener.HandleLocationError,
		WatchOptions{HighAccuracy: true},
	)
	if err != nil {
		if errors.Is(err, ErrGeolocationUnsupported) {
			g.listener.HandleGeolocationUnavailable()
		}
		return fmt.Errorf("位置情報の監視開始に失敗: %w", err)
	}

	g.mu.Lock()
	g.state = StateWatching
	g.stop = stop
	g.mu.Unlock()
	return nil
}

// Stop 購読を解除してIdleに戻る
func (g *GeolocationController) Stop() {
	g.mu.Lock()
	stop := g.stop
	g.stop = nil
	g.state = StateIdle
	g.mu.Unlock()

	if stop != nil {
		stop()
	}
}

// State 現在の状態
func (g *GeolocationController) State() GeolocationState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}
