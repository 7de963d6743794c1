package gallery

import (
	"context"
	"sync"

	"ukhamba-backend/internal/models"
)

type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateEmpty   State = "empty"
	StateError   State = "error"
)

// Fetcher is what the viewer needs from the gallery service.
type Fetcher interface {
	FetchItems(ctx context.Context) ([]models.GalleryItem, error)
	FallbackItems() []models.GalleryItem
}

// Snapshot is the viewer's externally visible state.
type Snapshot struct {
	State         State
	Page          models.GalleryPage
	Err           string
	CategoryID    string
	SubcategoryID string
	PageNumber    int
}

// Viewer holds the filter, page and loading state the gallery page works
// with. Every load is tagged with a monotonically increasing token; a load
// that finishes after a newer one started is dropped instead of overwriting
// fresher state.
type Viewer struct {
	fetcher Fetcher
	perPage int

	mu            sync.Mutex
	token         uint64
	state         State
	categoryID    string
	subcategoryID string
	page          int
	result        models.GalleryPage
	errMsg        string
}

func NewViewer(fetcher Fetcher, perPage int) *Viewer {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	return &Viewer{
		fetcher: fetcher,
		perPage: perPage,
		state:   StateIdle,
		page:    1,
	}
}

// SetCategory selects a category, clearing the subcategory and resetting to
// page 1. Empty id means "all categories".
func (v *Viewer) SetCategory(ctx context.Context, id string) {
	v.mu.Lock()
	v.categoryID = id
	v.subcategoryID = ""
	v.page = 1
	v.mu.Unlock()
	v.load(ctx)
}

// SetSubcategory restricts within the active category and resets to page 1.
func (v *Viewer) SetSubcategory(ctx context.Context, id string) {
	v.mu.Lock()
	v.subcategoryID = id
	v.page = 1
	v.mu.Unlock()
	v.load(ctx)
}

func (v *Viewer) SetPage(ctx context.Context, page int) {
	if page < 1 {
		page = 1
	}
	v.mu.Lock()
	v.page = page
	v.mu.Unlock()
	v.load(ctx)
}

// Retry re-issues the fetch with the current filters, without requiring a
// filter change.
func (v *Viewer) Retry(ctx context.Context) {
	v.load(ctx)
}

func (v *Viewer) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Snapshot{
		State:         v.state,
		Page:          v.result,
		Err:           v.errMsg,
		CategoryID:    v.categoryID,
		SubcategoryID: v.subcategoryID,
		PageNumber:    v.page,
	}
}

func (v *Viewer) load(ctx context.Context) {
	token, q := v.begin()

	items, err := v.fetcher.FetchItems(ctx)
	if err != nil {
		// Degraded mode: run the same pipeline over the bundled set and
		// surface a non-fatal notice so the page still shows content.
		fallback := v.fetcher.FallbackItems()
		if len(fallback) == 0 {
			v.apply(token, StateError, models.GalleryPage{TotalPages: 1}, err.Error())
			return
		}
		page := BuildPage(fallback, q, true)
		page.Degraded = true
		page.Notice = "Using fallback gallery images. " + err.Error()
		v.apply(token, StateSuccess, page, page.Notice)
		return
	}

	page := BuildPage(items, q, false)
	state := StateSuccess
	if page.TotalItems == 0 {
		state = StateEmpty
	}
	v.apply(token, state, page, "")
}

// begin bumps the request token and snapshots the query, entering Loading.
func (v *Viewer) begin() (uint64, Query) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.token++
	v.state = StateLoading
	return v.token, Query{
		CategoryID:    v.categoryID,
		SubcategoryID: v.subcategoryID,
		Page:          v.page,
		PerPage:       v.perPage,
	}
}

// apply installs a completed load unless a newer load has started since.
// Reports whether the result was applied.
func (v *Viewer) apply(token uint64, state State, page models.GalleryPage, errMsg string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if token != v.token {
		return false
	}
	v.state = state
	v.result = page
	v.errMsg = errMsg
	return true
}
