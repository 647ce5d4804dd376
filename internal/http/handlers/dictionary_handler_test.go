package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ignatzorin/contract-dictionary/internal/codes"
	"github.com/ignatzorin/contract-dictionary/internal/dto"
	"github.com/ignatzorin/contract-dictionary/internal/http/middleware"
	"github.com/ignatzorin/contract-dictionary/internal/service"
)

func setupDictionaryRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	registry := codes.DefaultRegistry()
	svc := service.NewDictionaryService(registry, codes.StatusClassPrefix)
	handler := NewDictionaryHandler(svc)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/dictionary", handler.ListCategories)
	r.GET("/dictionary/:category", middleware.CategoryValidator(registry, "category"), handler.GetCategory)
	r.GET("/dictionary/:category/resolve", middleware.CategoryValidator(registry, "category"), handler.Resolve)
	return r
}

func TestDictionaryHandler_ListCategories(t *testing.T) {
	r := setupDictionaryRouter()

	req, _ := http.NewRequest("GET", "/dictionary", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Categories []dto.CategoryResponse `json:"categories"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Categories, 4)
	assert.Equal(t, "CONTRACT_STATUS", body.Categories[0].Name)
	assert.Equal(t, "待提交", body.Categories[0].Entries[0].Label)
}

func TestDictionaryHandler_GetCategory(t *testing.T) {
	r := setupDictionaryRouter()

	req, _ := http.NewRequest("GET", "/dictionary/CONTRACT_TYPE", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Category dto.CategoryResponse `json:"category"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "CONTRACT_TYPE", body.Category.Name)
	assert.Len(t, body.Category.Entries, 4)
}

func TestDictionaryHandler_GetCategory_Unknown(t *testing.T) {
	r := setupDictionaryRouter()

	req, _ := http.NewRequest("GET", "/dictionary/NO_SUCH_CATEGORY", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDictionaryHandler_Resolve(t *testing.T) {
	r := setupDictionaryRouter()

	req, _ := http.NewRequest("GET", "/dictionary/CONTRACT_STATUS/resolve?code=3", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body dto.ResolveResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Found)
	assert.Equal(t, "PASSED", body.Key)
	assert.Equal(t, "审核通过", body.Label)
	assert.Equal(t, "contract-status-icon PASSED", body.Class)
}

func TestDictionaryHandler_Resolve_UnknownCode(t *testing.T) {
	r := setupDictionaryRouter()

	// неизвестный код — это 200 с пустой подписью, не ошибка
	req, _ := http.NewRequest("GET", "/dictionary/CONTRACT_STATUS/resolve?code=9", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body dto.ResolveResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Found)
	assert.Equal(t, "", body.Label)
	assert.Equal(t, "", body.Class)
}

func TestDictionaryHandler_Resolve_MissingCode(t *testing.T) {
	r := setupDictionaryRouter()

	req, _ := http.NewRequest("GET", "/dictionary/CONTRACT_STATUS/resolve", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDictionaryHandler_Resolve_CreateMode(t *testing.T) {
	r := setupDictionaryRouter()

	req, _ := http.NewRequest("GET", "/dictionary/CONTRACT_CREATE_MODE/resolve?code=0", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body dto.ResolveResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "contract-status-icon FROM_UPLOAD", body.Class)
	assert.Equal(t, "上传创建", body.Label)
}
