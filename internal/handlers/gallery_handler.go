package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"ukhamba-backend/internal/gallery"
	"ukhamba-backend/internal/provider"
	"ukhamba-backend/internal/service"
	"ukhamba-backend/internal/taxonomy"
	"ukhamba-backend/pkg/logger"
)

type GalleryHandler struct {
	galleryService *service.GalleryService
	perPage        int
}

func NewGalleryHandler(galleryService *service.GalleryService, perPage int) *GalleryHandler {
	if perPage <= 0 {
		perPage = gallery.DefaultPerPage
	}
	return &GalleryHandler{galleryService: galleryService, perPage: perPage}
}

// ListImages returns the full normalized gallery listing. Consumers that
// paginate client-side fetch this once and filter locally.
func (h *GalleryHandler) ListImages(c *gin.Context) {
	items, err := h.galleryService.FetchItems(c.Request.Context())
	if err != nil {
		logger.Error(err, "Failed to fetch gallery listing", map[string]interface{}{
			"provider": h.galleryService.ProviderName(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     err.Error(),
			"empty":     errors.Is(err, provider.ErrEmptyListing),
			"provider":  h.galleryService.ProviderName(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"images": items,
		"count":  len(items),
	})
}

// GetPage returns a filtered, paginated view. On provider failure the
// bundled fallback set is served with a degraded notice instead of an error.
func (h *GalleryHandler) GetPage(c *gin.Context) {
	q := gallery.Query{
		CategoryID:    c.Query("category"),
		SubcategoryID: c.Query("subcategory"),
		PerPage:       h.perPage,
	}
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		q.Page = page
	}

	items, err := h.galleryService.FetchItems(c.Request.Context())
	if err != nil {
		logger.Warn("Serving fallback gallery page", map[string]interface{}{
			"provider": h.galleryService.ProviderName(),
			"error":    err.Error(),
		})
		page := gallery.BuildPage(h.galleryService.FallbackItems(), q, true)
		page.Degraded = true
		page.Notice = "Using fallback gallery images. " + err.Error()
		c.JSON(http.StatusOK, page)
		return
	}

	c.JSON(http.StatusOK, gallery.BuildPage(items, q, false))
}

// GetCategories returns the curated taxonomy with display names.
func (h *GalleryHandler) GetCategories(c *gin.Context) {
	cats := taxonomy.Categories()

	type subcategoryView struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	type categoryView struct {
		ID            string            `json:"id"`
		Name          string            `json:"name"`
		Subcategories []subcategoryView `json:"subcategories"`
	}

	out := make([]categoryView, 0, len(cats))
	for _, cat := range cats {
		cv := categoryView{
			ID:            cat.ID,
			Name:          taxonomy.DisplayName(cat.ID),
			Subcategories: make([]subcategoryView, 0, len(cat.Subcategories)),
		}
		for _, sub := range cat.Subcategories {
			cv.Subcategories = append(cv.Subcategories, subcategoryView{
				ID:   sub.ID,
				Name: taxonomy.DisplayName(sub.ID),
			})
		}
		out = append(out, cv)
	}

	c.JSON(http.StatusOK, gin.H{"categories": out})
}

// InvalidateCache drops the cached gallery listing so the next request
// refetches from the provider.
func (h *GalleryHandler) InvalidateCache(c *gin.Context) {
	h.galleryService.InvalidateCache()
	c.JSON(http.StatusOK, gin.H{"success": true})
}
