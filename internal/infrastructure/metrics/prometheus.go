// Package metrics provides Prometheus metrics for the POI map service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"POI-Map-App/internal/domain/model"
)

const namespace = "poi_map"

// Recorder 周辺検索・詳細取得・HTTPリクエストのメトリクスをまとめたもの
// nilのRecorderでも各メソッドは何もしないで戻る
type Recorder struct {
	gatherer prometheus.Gatherer

	nearbyRequests      *prometheus.CounterVec
	detailLookups       *prometheus.CounterVec
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// NewRecorder 専用レジストリにメトリクスを登録する
func NewRecorder() *Recorder {
	return NewRecorderWithRegistry(prometheus.NewRegistry())
}

// NewRecorderWithRegistry 指定したレジストリにメトリクスを登録する
func NewRecorderWithRegistry(reg *prometheus.Registry) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		gatherer: reg,
		nearbyRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pois",
			Name:      "nearby_requests_total",
			Help:      "Nearby POI requests by data source and fallback reason.",
		}, []string{"source", "fallback_reason"}),
		detailLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "places",
			Name:      "detail_lookups_total",
			Help:      "Place detail lookups by outcome.",
		}, []string{"outcome"}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
}

// RecordNearby 周辺検索1件を記録
func (r *Recorder) RecordNearby(source model.DataSource, reason model.FallbackReason) {
	if r == nil {
		return
	}
	r.nearbyRequests.WithLabelValues(string(source), reason.String()).Inc()
}

// RecordNearbyFailure ストア検索の失敗を記録
func (r *Recorder) RecordNearbyFailure(source model.DataSource) {
	if r == nil {
		return
	}
	r.nearbyRequests.WithLabelValues(string(source), "query_failure").Inc()
}

// RecordDetailLookup 詳細取得の結果（hit, not_found, error）を記録
func (r *Recorder) RecordDetailLookup(outcome string) {
	if r == nil {
		return
	}
	r.detailLookups.WithLabelValues(outcome).Inc()
}

// RecordHTTPRequest HTTPリクエスト1件の結果と所要時間を記録
func (r *Recorder) RecordHTTPRequest(route, method string, status int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	r.httpRequestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// Handler /metrics用のハンドラー
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
}
