package codes

import (
	"fmt"
)

// Entry описывает одну запись справочника: ключ, код и подпись для отображения.
type Entry struct {
	Key   string `json:"key" yaml:"key"`
	Code  string `json:"code" yaml:"code"`
	Label string `json:"label" yaml:"label"`
}

// Category — упорядоченный набор записей одного справочника (статусы, типы и т.п.).
// Порядок записей совпадает с порядком объявления.
type Category struct {
	name    string
	entries []Entry
}

// NewCategory создаёт категорию с записями в порядке объявления.
func NewCategory(name string, entries ...Entry) Category {
	return Category{
		name:    name,
		entries: entries,
	}
}

// Name возвращает имя категории.
func (c Category) Name() string {
	return c.name
}

// Entries возвращает копию записей категории в порядке объявления.
func (c Category) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Entry возвращает запись по ключу.
func (c Category) Entry(key string) (Entry, bool) {
	for _, e := range c.entries {
		if e.Key == key {
			return e, true
		}
	}
	return Entry{}, false
}

// Lookup ищет запись по коду. Код может приходить в другом представлении
// (число вместо строки), обе стороны приводятся к нормальной форме.
// Категории маленькие, линейный проход достаточен.
func (c Category) Lookup(code interface{}) (Entry, bool) {
	want := Normalize(code)
	for _, e := range c.entries {
		if Normalize(e.Code) == want {
			return e, true
		}
	}
	return Entry{}, false
}

// Registry — неизменяемый набор категорий. Собирается один раз при старте
// приложения и дальше только читается, поэтому безопасен для конкурентного доступа.
type Registry struct {
	categories map[string]Category
	order      []string
}

// NewRegistry собирает реестр из категорий. Дубликат имени категории, ключа или
// нормализованного кода внутри категории — ошибка конфигурации, реестр не создаётся.
func NewRegistry(categories ...Category) (*Registry, error) {
	r := &Registry{
		categories: make(map[string]Category, len(categories)),
		order:      make([]string, 0, len(categories)),
	}

	for _, c := range categories {
		if c.name == "" {
			return nil, fmt.Errorf("codes: категория без имени")
		}
		if _, exists := r.categories[c.name]; exists {
			return nil, fmt.Errorf("codes: категория %s объявлена дважды", c.name)
		}

		seenKeys := make(map[string]struct{}, len(c.entries))
		seenCodes := make(map[string]struct{}, len(c.entries))
		for _, e := range c.entries {
			if e.Key == "" {
				return nil, fmt.Errorf("codes: запись без ключа в категории %s", c.name)
			}
			if _, dup := seenKeys[e.Key]; dup {
				return nil, fmt.Errorf("codes: дубликат ключа %s в категории %s", e.Key, c.name)
			}
			seenKeys[e.Key] = struct{}{}

			norm := Normalize(e.Code)
			if _, dup := seenCodes[norm]; dup {
				return nil, fmt.Errorf("codes: дубликат кода %q в категории %s", e.Code, c.name)
			}
			seenCodes[norm] = struct{}{}
		}

		r.categories[c.name] = c
		r.order = append(r.order, c.name)
	}

	return r, nil
}

// MustRegistry — как NewRegistry, но паникует при ошибке конфигурации.
// Используется для статических справочников, собираемых при старте.
func MustRegistry(categories ...Category) *Registry {
	r, err := NewRegistry(categories...)
	if err != nil {
		panic(err)
	}
	return r
}

// Category возвращает категорию по имени.
func (r *Registry) Category(name string) (Category, bool) {
	c, ok := r.categories[name]
	return c, ok
}

// Categories возвращает все категории в порядке объявления.
func (r *Registry) Categories() []Category {
	out := make([]Category, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.categories[name])
	}
	return out
}

// Len возвращает количество категорий.
func (r *Registry) Len() int {
	return len(r.order)
}

// Entry возвращает запись по имени категории и ключу.
func (r *Registry) Entry(category, key string) (Entry, bool) {
	c, ok := r.categories[category]
	if !ok {
		return Entry{}, false
	}
	return c.Entry(key)
}
