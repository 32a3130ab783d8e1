package handler

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"POI-Map-App/internal/domain/model"
	"POI-Map-App/internal/infrastructure/metrics"
	"POI-Map-App/web"
)

// RouterDeps ルーター構築に必要な依存関係
type RouterDeps struct {
	POIs             *POIsHandler
	Places           *PlacesHandler
	Health           *HealthHandler
	Metrics          *metrics.Recorder
	GoogleMapsAPIKey string
}

// NewRouter APIルートとブラウザ向けフロントエンドを登録したginエンジンを作成
func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), RequestIDMiddleware(), MetricsMiddleware(deps.Metrics))

	api := r.Group("/api")
	{
		api.GET("/health", deps.Health.GetHealth)
		api.GET("/pois/nearby", deps.POIs.GetNearbyPOIs)
		api.GET("/places/details/:placeId", deps.Places.GetPlaceDetails)
	}

	r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	// フロントエンド（埋め込み静的ファイル）
	r.SetHTMLTemplate(template.Must(template.ParseFS(web.Files, web.IndexTemplate)))
	r.StaticFS("/static", web.FS())
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"MapsAPIKey": deps.GoogleMapsAPIKey,
			"CenterLat":  model.DefaultCenter.Lat,
			"CenterLng":  model.DefaultCenter.Lng,
			"Zoom":       model.DefaultZoom,
		})
	})

	return r
}
