package codes

import (
	"fmt"
	"strconv"
	"strings"
)

// Normalize приводит код к нормальной строковой форме для сравнения.
// Бэкенд может отдавать код числом, а в справочнике он объявлен строкой,
// поэтому число 0 и строка "0" считаются одним и тем же кодом.
func Normalize(code interface{}) string {
	switch v := code.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case float32:
		return normalizeFloat(float64(v))
	case float64:
		// JSON-числа декодируются во float64
		return normalizeFloat(v)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// normalizeFloat форматирует целые значения без дробной части.
func normalizeFloat(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Label возвращает подпись для кода в категории.
// Промах — не ошибка: для неизвестного кода возвращается пустая строка.
func (r *Registry) Label(category string, code interface{}) string {
	c, ok := r.categories[category]
	if !ok {
		return ""
	}
	e, ok := c.Lookup(code)
	if !ok {
		return ""
	}
	return e.Label
}

// Key возвращает ключ записи для кода в категории, либо пустую строку.
func (r *Registry) Key(category string, code interface{}) string {
	c, ok := r.categories[category]
	if !ok {
		return ""
	}
	e, ok := c.Lookup(code)
	if !ok {
		return ""
	}
	return e.Key
}

// ClassName строит производный токен: префикс плюс ключ найденной записи.
// Используется фронтендом как имя CSS-класса. Промах — пустая строка.
func (r *Registry) ClassName(category string, code interface{}, prefix string) string {
	key := r.Key(category, code)
	if key == "" {
		return ""
	}
	return prefix + key
}
