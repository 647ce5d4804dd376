package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/contract-dictionary/internal/dto"
	"github.com/ignatzorin/contract-dictionary/internal/http/middleware"
	"github.com/ignatzorin/contract-dictionary/internal/logger"
	"github.com/ignatzorin/contract-dictionary/internal/pkg/apperror"
	"github.com/ignatzorin/contract-dictionary/internal/service"
)

// DictionaryHandler отдаёт справочник кодов фронтендам.
type DictionaryHandler struct {
	dictionary *service.DictionaryService
}

// NewDictionaryHandler создаёт новый handler справочника.
func NewDictionaryHandler(dictionary *service.DictionaryService) *DictionaryHandler {
	return &DictionaryHandler{dictionary: dictionary}
}

// ListCategories GET /dictionary
// Отдаёт весь справочник: фронтенд собирает из него свой конфиг кодов при старте.
func (h *DictionaryHandler) ListCategories(c *gin.Context) {
	categories := h.dictionary.ListCategories()

	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, dto.NewCategoryResponse(category))
	}

	c.JSON(http.StatusOK, gin.H{"categories": out})
}

// GetCategory GET /dictionary/:category
func (h *DictionaryHandler) GetCategory(c *gin.Context) {
	name := c.Param("category")

	category, err := h.dictionary.GetCategory(name)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": dto.NewCategoryResponse(category)})
}

// Resolve GET /dictionary/:category/resolve?code=X
// Неизвестный код — не ошибка: отдаём found=false с пустой подписью.
func (h *DictionaryHandler) Resolve(c *gin.Context) {
	name := c.Param("category")

	code, ok := c.GetQuery("code")
	if !ok {
		c.Error(apperror.ErrEmptyCode)
		return
	}

	res, err := h.dictionary.Resolve(name, code)
	if err != nil {
		c.Error(err)
		return
	}

	if !res.Found {
		// Новый код со стороны бэкенда договоров — повод дополнить справочник
		logger.WithRequestID(c.GetString(middleware.RequestIDKey)).WithFields(logrus.Fields{
			"category": name,
			"code":     code,
		}).Debug("dictionary: код не найден в справочнике")
	}

	c.JSON(http.StatusOK, dto.NewResolveResponse(name, code, res))
}
