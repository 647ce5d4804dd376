package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/contract-dictionary/internal/codes"
)

// CategoryValidator проверяет, что параметр с указанным именем — известная
// категория справочника. Неизвестная категория отрезается до хэндлера.
// Использование: router.GET("/dictionary/:category", CategoryValidator(registry, "category"), handler.GetCategory)
func CategoryValidator(registry *codes.Registry, paramName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param(paramName)
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "параметр " + paramName + " обязателен",
			})
			c.Abort()
			return
		}

		if _, ok := registry.Category(name); !ok {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "категория справочника не найдена",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
