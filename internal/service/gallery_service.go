package service

import (
	"context"
	"fmt"
	"path"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"ukhamba-backend/internal/models"
	"ukhamba-backend/internal/provider"
	"ukhamba-backend/internal/taxonomy"
	"ukhamba-backend/pkg/cache"
	"ukhamba-backend/pkg/logger"
)

var (
	imageExtensions = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true}
	videoExtensions = map[string]bool{".mp4": true, ".mov": true}

	leadingOrdinal = regexp.MustCompile(`^\d+[\s.-]*`)
	purelyNumeric  = regexp.MustCompile(`^\d+$`)
)

// featuredInterval marks every Nth item featured when the provider carries no
// authoritative flag.
const featuredInterval = 7

// GalleryService translates a provider listing into the canonical GalleryItem
// set. The normalized listing is cached with a TTL and fetched single-flight
// so concurrent requests after expiry trigger one provider round-trip.
type GalleryService struct {
	provider    provider.MediaProvider
	fallback    provider.MediaProvider
	cache       *cache.Cache
	ttl         time.Duration
	placeholder string

	group singleflight.Group

	mu        sync.Mutex
	memItems  []models.GalleryItem
	memStored time.Time

	now func() time.Time
}

func NewGalleryService(p provider.MediaProvider, cacheService *cache.Cache, ttl time.Duration, placeholderURL string) *GalleryService {
	return &GalleryService{
		provider:    p,
		fallback:    provider.NewStatic(),
		cache:       cacheService,
		ttl:         ttl,
		placeholder: placeholderURL,
		now:         time.Now,
	}
}

func (s *GalleryService) ProviderName() string {
	return s.provider.Name()
}

func (s *GalleryService) cacheKey() string {
	return "gallery:items:" + s.provider.Name()
}

// FetchItems returns the full normalized item set from the live provider.
func (s *GalleryService) FetchItems(ctx context.Context) ([]models.GalleryItem, error) {
	if items, ok := s.cached(); ok {
		return items, nil
	}

	result, err, _ := s.group.Do(s.cacheKey(), func() (interface{}, error) {
		if items, ok := s.cached(); ok {
			return items, nil
		}

		objects, err := s.provider.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("provider %s: %w", s.provider.Name(), err)
		}

		items := s.Normalize(objects)
		s.store(items)
		logger.Info("Gallery listing refreshed", map[string]interface{}{
			"provider": s.provider.Name(),
			"items":    len(items),
		})
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]models.GalleryItem), nil
}

// FallbackItems returns the bundled static set, run through the same
// normalization pipeline as live listings. It never fails.
func (s *GalleryService) FallbackItems() []models.GalleryItem {
	objects, _ := s.fallback.List(context.Background())
	return s.Normalize(objects)
}

// InvalidateCache drops the cached listing so the next fetch hits the
// provider again.
func (s *GalleryService) InvalidateCache() {
	s.mu.Lock()
	s.memItems = nil
	s.memStored = time.Time{}
	s.mu.Unlock()

	if err := s.cache.Delete(s.cacheKey()); err != nil {
		logger.Warn("Failed to invalidate gallery cache", map[string]interface{}{"error": err.Error()})
	}
}

func (s *GalleryService) cached() ([]models.GalleryItem, bool) {
	s.mu.Lock()
	if s.memItems != nil && s.now().Sub(s.memStored) < s.ttl {
		items := s.memItems
		s.mu.Unlock()
		return items, true
	}
	s.mu.Unlock()

	if s.cache.Enabled() {
		var items []models.GalleryItem
		if err := s.cache.Get(s.cacheKey(), &items); err == nil && len(items) > 0 {
			return items, true
		}
	}
	return nil, false
}

func (s *GalleryService) store(items []models.GalleryItem) {
	s.mu.Lock()
	s.memItems = items
	s.memStored = s.now()
	s.mu.Unlock()

	if err := s.cache.Set(s.cacheKey(), items, s.ttl); err != nil {
		logger.Warn("Failed to cache gallery listing", map[string]interface{}{"error": err.Error()})
	}
}

// Normalize turns raw storage objects into sorted gallery items. Objects with
// unsupported extensions and directory placeholders are skipped.
func (s *GalleryService) Normalize(objects []provider.StorageObject) []models.GalleryItem {
	type keyed struct {
		item models.GalleryItem
		key  string
	}

	entries := make([]keyed, 0, len(objects))
	for _, obj := range objects {
		item, ok := s.normalizeObject(obj)
		if !ok {
			continue
		}
		entries = append(entries, keyed{item: item, key: obj.Key})
	}

	// Category, then subcategory (empty first), then the original object
	// key so numeric filename ordering survives.
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.item.CategoryID != b.item.CategoryID {
			return a.item.CategoryID < b.item.CategoryID
		}
		if a.item.SubcategoryID != b.item.SubcategoryID {
			return a.item.SubcategoryID < b.item.SubcategoryID
		}
		return a.key < b.key
	})

	items := make([]models.GalleryItem, len(entries))
	for i, e := range entries {
		e.item.Featured = i%featuredInterval == 0
		items[i] = e.item
	}
	return items
}

func (s *GalleryService) normalizeObject(obj provider.StorageObject) (models.GalleryItem, bool) {
	key := obj.Key
	if key == "" || strings.HasSuffix(key, "/") {
		return models.GalleryItem{}, false
	}

	ext := strings.ToLower(path.Ext(key))
	isImage := imageExtensions[ext]
	isVideo := videoExtensions[ext]
	if !isImage && !isVideo {
		return models.GalleryItem{}, false
	}

	segments := strings.Split(key, "/")
	filename := segments[len(segments)-1]

	categoryID := taxonomy.Uncategorized
	subcategoryID := ""
	if len(segments) > 1 {
		categoryID = segments[0]
		if len(segments) > 2 {
			subcategoryID = strings.Join(segments[1:len(segments)-1], "/")
		}
	}

	mediaType := models.MediaImage
	if isVideo || obj.Kind == "video" {
		mediaType = models.MediaVideo
	}

	id := obj.ID
	if id == "" {
		id = key
	}

	imageURL := obj.URL
	if imageURL == "" {
		imageURL = s.placeholder
	}

	date := obj.LastModified
	if date.IsZero() {
		date = s.now()
	}

	return models.GalleryItem{
		ID:            id,
		Title:         deriveTitle(filename, subcategoryID),
		Description:   taxonomy.Describe(categoryID, subcategoryID),
		ImageURL:      imageURL,
		ThumbnailURL:  imageURL,
		FullURL:       imageURL,
		CategoryID:    categoryID,
		SubcategoryID: subcategoryID,
		Type:          mediaType,
		Date:          date,
	}, true
}

// deriveTitle cleans a storage filename into a display title: extension off,
// underscores to spaces, leading ordering tokens off, duplicate subcategory
// prefix off, first letter capitalized. A result that is empty or purely
// numeric falls back to the string before the prefix strip.
func deriveTitle(filename, subcategoryID string) string {
	base := strings.TrimSuffix(filename, path.Ext(filename))
	cleaned := strings.TrimSpace(strings.ReplaceAll(base, "_", " "))
	stripped := strings.TrimSpace(leadingOrdinal.ReplaceAllString(cleaned, ""))

	title := stripped
	if subcategoryID != "" {
		subName := strings.NewReplacer("-", " ", "_", " ").Replace(subcategoryID)
		if len(title) >= len(subName) && strings.EqualFold(title[:len(subName)], subName) {
			title = strings.TrimSpace(title[len(subName):])
		}
	}

	if title == "" || purelyNumeric.MatchString(title) {
		title = stripped
	}
	if title == "" {
		title = cleaned
	}
	return capitalize(title)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
