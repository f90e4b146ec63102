package models

import "time"

// ItemCategory groups home feed items.
type ItemCategory string

// Known home feed categories.
const (
	CategoryFeatured    ItemCategory = "Featured"
	CategoryRecent      ItemCategory = "Recent"
	CategoryPopular     ItemCategory = "Popular"
	CategoryRecommended ItemCategory = "Recommended"
)

// Valid reports whether c is one of the known categories.
func (c ItemCategory) Valid() bool {
	switch c {
	case CategoryFeatured, CategoryRecent, CategoryPopular, CategoryRecommended:
		return true
	default:
		return false
	}
}

// HomeItem is one entry of the home feed.
type HomeItem struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Subtitle  *string      `json:"subtitle,omitempty"`
	ImageURL  *string      `json:"image_url,omitempty"`
	Category  ItemCategory `json:"category"`
	CreatedAt time.Time    `json:"created_at"`
}

// HomeItemsResponse is the payload of the home feed endpoint.
type HomeItemsResponse struct {
	Items []HomeItem `json:"items"`
	Total int        `json:"total"`
}
