package service

import (
	"github.com/ignatzorin/contract-dictionary/internal/codes"
	"github.com/ignatzorin/contract-dictionary/internal/pkg/apperror"
)

// Resolution — результат разбора кода: ключ, подпись и производный CSS-класс.
// Для неизвестного кода все поля пустые, Found = false.
type Resolution struct {
	Key   string
	Label string
	Class string
	Found bool
}

// DictionaryService — читающий сервис над справочником кодов.
// Реестр неизменяемый, поэтому сервис не держит никакого состояния кроме ссылки.
type DictionaryService struct {
	registry    *codes.Registry
	classPrefix string
}

// NewDictionaryService создаёт сервис над готовым реестром.
func NewDictionaryService(registry *codes.Registry, classPrefix string) *DictionaryService {
	return &DictionaryService{
		registry:    registry,
		classPrefix: classPrefix,
	}
}

// ListCategories возвращает все категории справочника в порядке объявления.
func (s *DictionaryService) ListCategories() []codes.Category {
	return s.registry.Categories()
}

// GetCategory возвращает категорию по имени.
func (s *DictionaryService) GetCategory(name string) (codes.Category, error) {
	c, ok := s.registry.Category(name)
	if !ok {
		return codes.Category{}, apperror.ErrCategoryNotFound
	}
	return c, nil
}

// Resolve ищет код в категории. Неизвестная категория — ошибка,
// неизвестный код — нейтральный результат с пустыми полями.
func (s *DictionaryService) Resolve(category string, code interface{}) (Resolution, error) {
	c, ok := s.registry.Category(category)
	if !ok {
		return Resolution{}, apperror.ErrCategoryNotFound
	}

	e, ok := c.Lookup(code)
	if !ok {
		return Resolution{}, nil
	}

	return Resolution{
		Key:   e.Key,
		Label: e.Label,
		Class: s.classPrefix + e.Key,
		Found: true,
	}, nil
}

// CategoryCount возвращает количество категорий (для health check).
func (s *DictionaryService) CategoryCount() int {
	return s.registry.Len()
}
