package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"POI-Map-App/internal/infrastructure/metrics"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestIDMiddleware リクエストごとにIDを振り、レスポンスヘッダーにも返す
// クライアントが指定したX-Request-IDはそのまま引き継ぐ
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// MetricsMiddleware ルート単位でリクエスト数と所要時間を記録
func MetricsMiddleware(recorder *metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		recorder.RecordHTTPRequest(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}

func requestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
