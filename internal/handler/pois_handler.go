package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"POI-Map-App/internal/domain/service"
	"POI-Map-App/internal/infrastructure/metrics"
)

// POIsHandler 周辺POI検索のHTTPハンドラー
type POIsHandler struct {
	searchService service.POISearchService
	metrics       *metrics.Recorder
}

// NewPOIsHandler POIsHandlerの新しいインスタンスを作成
func NewPOIsHandler(searchService service.POISearchService, recorder *metrics.Recorder) *POIsHandler {
	return &POIsHandler{
		searchService: searchService,
		metrics:       recorder,
	}
}

// GetNearbyPOIs GET /api/pois/nearby?lat=..&lon=.. - 半径5km以内のPOIを取得
// lat・lonは任意。欠けている場合はバリデーションエラーではなくサンプルデータを返す
func (h *POIsHandler) GetNearbyPOIs(c *gin.Context) {
	result, err := h.searchService.FindNearby(c.Request.Context(), c.Query("lat"), c.Query("lon"))
	if err != nil {
		log.Printf("❌ 周辺POI検索エラー [%s]: %v", requestID(c), err)
		h.metrics.RecordNearbyFailure(h.searchService.DataSource())
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Errore del server durante la ricerca dei POI.",
		})
		return
	}

	h.metrics.RecordNearby(result.Source, result.Reason)
	c.JSON(http.StatusOK, result.POIs)
}
