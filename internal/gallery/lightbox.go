package gallery

import "ukhamba-backend/internal/models"

// Lightbox models the modal's navigation over the current page's item slice.
// Navigation is bounded by that slice: moving past either end is a no-op, it
// never crosses a page boundary.
type Lightbox struct {
	items []models.GalleryItem
	index int
	open  bool
}

func NewLightbox(pageItems []models.GalleryItem) *Lightbox {
	return &Lightbox{items: pageItems}
}

// Open shows the item at the given index of the current page slice.
func (l *Lightbox) Open(index int) bool {
	if index < 0 || index >= len(l.items) {
		return false
	}
	l.index = index
	l.open = true
	return true
}

func (l *Lightbox) Close() {
	l.open = false
}

func (l *Lightbox) IsOpen() bool {
	return l.open
}

func (l *Lightbox) Current() (models.GalleryItem, bool) {
	if !l.open {
		return models.GalleryItem{}, false
	}
	return l.items[l.index], true
}

func (l *Lightbox) Index() int {
	return l.index
}

func (l *Lightbox) HasPrevious() bool {
	return l.open && l.index > 0
}

func (l *Lightbox) HasNext() bool {
	return l.open && l.index < len(l.items)-1
}

func (l *Lightbox) Previous() bool {
	if !l.HasPrevious() {
		return false
	}
	l.index--
	return true
}

func (l *Lightbox) Next() bool {
	if !l.HasNext() {
		return false
	}
	l.index++
	return true
}

// HandleKey maps keyboard input to navigation. Bindings are active only
// while the lightbox is open.
func (l *Lightbox) HandleKey(key string) bool {
	if !l.open {
		return false
	}
	switch key {
	case "ArrowLeft":
		return l.Previous()
	case "ArrowRight":
		return l.Next()
	case "Escape":
		l.Close()
		return true
	}
	return false
}
