package dto

import (
	"github.com/ignatzorin/contract-dictionary/internal/codes"
	"github.com/ignatzorin/contract-dictionary/internal/service"
)

// EntryResponse represents a single dictionary entry
type EntryResponse struct {
	Key   string `json:"key"`
	Code  string `json:"code"`
	Label string `json:"label"`
}

// CategoryResponse represents a dictionary category with its entries
// This is the shape frontends consume to bootstrap their code config
type CategoryResponse struct {
	Name    string          `json:"name"`
	Entries []EntryResponse `json:"entries"`
}

// NewCategoryResponse creates a CategoryResponse from a registry category
func NewCategoryResponse(c codes.Category) CategoryResponse {
	entries := c.Entries()
	out := CategoryResponse{
		Name:    c.Name(),
		Entries: make([]EntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		out.Entries = append(out.Entries, EntryResponse{
			Key:   e.Key,
			Code:  e.Code,
			Label: e.Label,
		})
	}
	return out
}

// ResolveResponse represents the result of a code lookup
type ResolveResponse struct {
	Category string `json:"category"`
	Code     string `json:"code"`
	Key      string `json:"key"`
	Label    string `json:"label"`
	Class    string `json:"class"`
	Found    bool   `json:"found"`
}

// NewResolveResponse creates a ResolveResponse from a service resolution
func NewResolveResponse(category, code string, res service.Resolution) ResolveResponse {
	return ResolveResponse{
		Category: category,
		Code:     code,
		Key:      res.Key,
		Label:    res.Label,
		Class:    res.Class,
		Found:    res.Found,
	}
}
