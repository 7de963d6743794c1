package gallery

import (
	"sort"

	"ukhamba-backend/internal/models"
	"ukhamba-backend/internal/taxonomy"
)

const DefaultPerPage = 12

// Query selects a filtered, display-paginated slice of an already-fetched
// item set. Empty CategoryID means no restriction; SubcategoryID only
// restricts when CategoryID is set.
type Query struct {
	CategoryID    string
	SubcategoryID string
	Page          int
	PerPage       int
}

func (q Query) normalized() Query {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = DefaultPerPage
	}
	return q
}

// BuildPage applies the filter/sort/paginate pipeline. The live fetch path
// keeps the fetch service's taxonomy ordering; the fallback path sorts
// newest-first (newestFirst true), matching the static data's historical
// behavior.
func BuildPage(items []models.GalleryItem, q Query, newestFirst bool) models.GalleryPage {
	q = q.normalized()

	filtered := make([]models.GalleryItem, 0, len(items))
	for _, item := range items {
		if q.CategoryID != "" {
			if item.CategoryID != q.CategoryID {
				continue
			}
			if q.SubcategoryID != "" && item.SubcategoryID != q.SubcategoryID {
				continue
			}
		}
		filtered = append(filtered, item)
	}

	if newestFirst {
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Date.After(filtered[j].Date)
		})
	}

	totalItems := len(filtered)
	totalPages := (totalItems + q.PerPage - 1) / q.PerPage
	if totalPages < 1 {
		totalPages = 1
	}

	start := (q.Page - 1) * q.PerPage
	end := start + q.PerPage
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	categories, subcategories := taxonomyLists()

	return models.GalleryPage{
		Items:         filtered[start:end],
		TotalItems:    totalItems,
		TotalPages:    totalPages,
		Page:          q.Page,
		Categories:    categories,
		Subcategories: subcategories,
	}
}

func taxonomyLists() ([]string, map[string][]string) {
	cats := taxonomy.Categories()
	categories := make([]string, 0, len(cats))
	subcategories := make(map[string][]string, len(cats))
	for _, c := range cats {
		categories = append(categories, c.ID)
		for _, s := range c.Subcategories {
			subcategories[c.ID] = append(subcategories[c.ID], s.ID)
		}
	}
	return categories, subcategories
}
