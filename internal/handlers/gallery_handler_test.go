package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"ukhamba-backend/internal/models"
	"ukhamba-backend/internal/provider"
	"ukhamba-backend/internal/service"
)

type fakeProvider struct {
	objects []provider.StorageObject
	err     error
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) List(ctx context.Context) ([]provider.StorageObject, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.objects, nil
}

func newGalleryRouter(p provider.MediaProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := service.NewGalleryService(p, nil, time.Minute, "/placeholder.svg")
	h := NewGalleryHandler(svc, 12)

	r := gin.New()
	r.GET("/api/v1/gallery/images", h.ListImages)
	r.GET("/api/v1/gallery", h.GetPage)
	r.GET("/api/v1/gallery/categories", h.GetCategories)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestListImagesReturnsNormalizedItems(t *testing.T) {
	p := &fakeProvider{objects: []provider.StorageObject{
		{Key: "youth/youth-workshops/3. Youth Workshops_2.webp", LastModified: time.Now()},
		{Key: "events/gala/dinner.jpg", LastModified: time.Now()},
	}}
	w := get(newGalleryRouter(p), "/api/v1/gallery/images")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Images []models.GalleryItem `json:"images"`
		Count  int                  `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Count != 2 || len(resp.Images) != 2 {
		t.Fatalf("expected 2 images, got count=%d len=%d", resp.Count, len(resp.Images))
	}
	if resp.Images[1].Title != "Youth Workshops 2" {
		t.Errorf("unexpected derived title %q", resp.Images[1].Title)
	}
}

func TestListImagesReportsProviderFailure(t *testing.T) {
	p := &fakeProvider{err: errors.New("dial tcp: connection refused")}
	w := get(newGalleryRouter(p), "/api/v1/gallery/images")

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var resp struct {
		Error     string `json:"error"`
		Empty     bool   `json:"empty"`
		Provider  string `json:"provider"`
		Timestamp string `json:"timestamp"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Provider != "fake" {
		t.Errorf("expected provider name in error payload, got %q", resp.Provider)
	}
	if resp.Empty {
		t.Error("transport failure should not be flagged as empty listing")
	}
	if resp.Timestamp == "" {
		t.Error("expected timestamp in error payload")
	}
}

func TestListImagesFlagsEmptyListing(t *testing.T) {
	p := &fakeProvider{err: provider.ErrEmptyListing}
	w := get(newGalleryRouter(p), "/api/v1/gallery/images")

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var resp struct {
		Empty bool `json:"empty"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !resp.Empty {
		t.Error("empty listing should be reported distinctly")
	}
}

func TestGetPageFiltersAndPaginates(t *testing.T) {
	objects := make([]provider.StorageObject, 0, 6)
	keys := []string{
		"youth/youth-school/visit1.jpg",
		"youth/youth-school/visit2.jpg",
		"youth/youth-workshops/session.jpg",
		"community/community-relief/drive.jpg",
		"events/gala/dinner.jpg",
		"culture/heritage/day.jpg",
	}
	for _, k := range keys {
		objects = append(objects, provider.StorageObject{Key: k, LastModified: time.Now()})
	}

	w := get(newGalleryRouter(&fakeProvider{objects: objects}), "/api/v1/gallery?category=youth")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var page models.GalleryPage
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if page.TotalItems != 3 {
		t.Errorf("expected 3 youth items, got %d", page.TotalItems)
	}
	if page.Degraded {
		t.Error("live fetch should not be degraded")
	}
	for _, item := range page.Items {
		if item.CategoryID != "youth" {
			t.Errorf("item %q leaked into youth filter", item.ID)
		}
	}
}

func TestGetPageServesFallbackOnFailure(t *testing.T) {
	p := &fakeProvider{err: errors.New("provider down")}
	w := get(newGalleryRouter(p), "/api/v1/gallery")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with fallback, got %d", w.Code)
	}

	var page models.GalleryPage
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !page.Degraded {
		t.Error("fallback page should be marked degraded")
	}
	if page.Notice == "" {
		t.Error("fallback page should carry a notice")
	}
	if len(page.Items) == 0 {
		t.Error("fallback page should contain bundled items")
	}
}

func TestGetCategoriesReturnsTaxonomy(t *testing.T) {
	w := get(newGalleryRouter(&fakeProvider{}), "/api/v1/gallery/categories")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Categories []struct {
			ID            string `json:"id"`
			Name          string `json:"name"`
			Subcategories []struct {
				ID string `json:"id"`
			} `json:"subcategories"`
		} `json:"categories"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Categories) != 4 {
		t.Fatalf("expected 4 categories, got %d", len(resp.Categories))
	}
	if resp.Categories[0].ID != "youth" || len(resp.Categories[0].Subcategories) != 3 {
		t.Errorf("unexpected youth taxonomy: %+v", resp.Categories[0])
	}
}
