package models

import "time"

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// GalleryItem is the canonical shape every media provider listing is
// normalized into. JSON field names match the public API contract consumed
// by the site frontend.
type GalleryItem struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	ImageURL      string    `json:"imageUrl"`
	ThumbnailURL  string    `json:"thumbnailUrl,omitempty"`
	FullURL       string    `json:"fullUrl,omitempty"`
	CategoryID    string    `json:"categoryId"`
	SubcategoryID string    `json:"subcategoryId,omitempty"`
	Type          MediaType `json:"type"`
	Featured      bool      `json:"featured"`
	Date          time.Time `json:"date"`
}

// GalleryPage is the filtered, display-paginated view over a fetched item
// set, together with the taxonomy the filter UI needs.
type GalleryPage struct {
	Items         []GalleryItem       `json:"items"`
	TotalItems    int                 `json:"totalItems"`
	TotalPages    int                 `json:"totalPages"`
	Page          int                 `json:"page"`
	Categories    []string            `json:"categories"`
	Subcategories map[string][]string `json:"subcategories"`
	Degraded      bool                `json:"degraded,omitempty"`
	Notice        string              `json:"notice,omitempty"`
}
