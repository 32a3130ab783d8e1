package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"POI-Map-App/internal/domain/service"
)

// HealthHandler サービス稼働確認のハンドラー
type HealthHandler struct {
	serviceName   string
	searchService service.POISearchService
}

func NewHealthHandler(serviceName string, searchService service.POISearchService) *HealthHandler {
	return &HealthHandler{
		serviceName:   serviceName,
		searchService: searchService,
	}
}

// GetHealth GET /api/health
func (h *HealthHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"service":     h.serviceName,
		"data_source": h.searchService.DataSource(),
	})
}
