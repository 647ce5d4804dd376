package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/contract-dictionary/internal/service"
)

// HealthHandler предоставляет endpoint для проверки здоровья сервиса.
type HealthHandler struct {
	dictionary *service.DictionaryService
}

// NewHealthHandler создаёт новый health handler.
func NewHealthHandler(dictionary *service.DictionaryService) *HealthHandler {
	return &HealthHandler{dictionary: dictionary}
}

// HealthResponse представляет ответ health check.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

// Health обрабатывает GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	// Справочник собирается при старте; пустой реестр — признак битой сборки
	if h.dictionary.CategoryCount() == 0 {
		checks["dictionary"] = "unhealthy: no categories registered"
		status = "unhealthy"
	} else {
		checks["dictionary"] = "healthy"
	}

	statusCode := http.StatusOK
	if status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
		Checks:    checks,
	})
}
