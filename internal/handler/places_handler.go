package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"POI-Map-App/internal/domain/model"
	"POI-Map-App/internal/domain/service"
	"POI-Map-App/internal/infrastructure/metrics"
)

// PlacesHandler プレイス詳細のHTTPハンドラー
type PlacesHandler struct {
	detailService service.PlaceDetailService
	metrics       *metrics.Recorder
}

// NewPlacesHandler PlacesHandlerの新しいインスタンスを作成
func NewPlacesHandler(detailService service.PlaceDetailService, recorder *metrics.Recorder) *PlacesHandler {
	return &PlacesHandler{
		detailService: detailService,
		metrics:       recorder,
	}
}

// GetPlaceDetails GET /api/places/details/:placeId - プレイス詳細を取得
func (h *PlacesHandler) GetPlaceDetails(c *gin.Context) {
	placeID := c.Param("placeId")

	detail, err := h.detailService.GetDetails(c.Request.Context(), placeID)
	if err != nil {
		if errors.Is(err, model.ErrPlaceNotFound) {
			h.metrics.RecordDetailLookup("not_found")
			c.JSON(http.StatusNotFound, gin.H{
				"error":    "Dettagli non trovati.",
				"place_id": placeID,
			})
			return
		}

		log.Printf("❌ プレイス詳細取得エラー [%s]: %v", requestID(c), err)
		h.metrics.RecordDetailLookup("error")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Errore del server durante il recupero dei dettagli.",
		})
		return
	}

	h.metrics.RecordDetailLookup("hit")
	c.JSON(http.StatusOK, detail)
}
