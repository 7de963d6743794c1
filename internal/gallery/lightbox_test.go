package gallery

import "testing"

func TestLightboxBounds(t *testing.T) {
	items := seedItems(3, "youth", "youth-school")
	l := NewLightbox(items)

	if l.Open(5) {
		t.Fatal("opening out of range must fail")
	}
	if !l.Open(0) {
		t.Fatal("opening index 0 must succeed")
	}
	if l.HasPrevious() {
		t.Fatal("index 0 has no previous")
	}
	if !l.HasNext() {
		t.Fatal("index 0 of 3 has next")
	}

	l.Open(2)
	if l.HasNext() {
		t.Fatal("last index has no next")
	}

	// Next at the last index is a no-op, state unchanged.
	if l.Next() {
		t.Fatal("next at last index must be a no-op")
	}
	if l.Index() != 2 {
		t.Fatalf("index changed to %d", l.Index())
	}
}

func TestLightboxNavigation(t *testing.T) {
	items := seedItems(3, "youth", "youth-school")
	l := NewLightbox(items)
	l.Open(1)

	if !l.Previous() || l.Index() != 0 {
		t.Fatalf("previous failed, index %d", l.Index())
	}
	if !l.Next() || l.Index() != 1 {
		t.Fatalf("next failed, index %d", l.Index())
	}

	current, ok := l.Current()
	if !ok || current.ID != items[1].ID {
		t.Fatalf("current = %+v", current)
	}
}

func TestLightboxKeysActiveOnlyWhileOpen(t *testing.T) {
	items := seedItems(2, "youth", "")
	l := NewLightbox(items)

	if l.HandleKey("ArrowRight") {
		t.Fatal("keys must be inactive while closed")
	}

	l.Open(0)
	if !l.HandleKey("ArrowRight") || l.Index() != 1 {
		t.Fatalf("ArrowRight failed, index %d", l.Index())
	}
	if !l.HandleKey("ArrowLeft") || l.Index() != 0 {
		t.Fatalf("ArrowLeft failed, index %d", l.Index())
	}
	if l.HandleKey("Enter") {
		t.Fatal("unbound key must be ignored")
	}
	if !l.HandleKey("Escape") || l.IsOpen() {
		t.Fatal("Escape must close the lightbox")
	}
	if _, ok := l.Current(); ok {
		t.Fatal("closed lightbox has no current item")
	}
}
