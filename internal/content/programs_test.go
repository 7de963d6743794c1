package content

import (
	"strings"
	"testing"
)

func TestProgramCategoriesCoverAllAreas(t *testing.T) {
	cats := ProgramCategories()
	if len(cats) != 6 {
		t.Fatalf("expected 6 program categories, got %d", len(cats))
	}

	want := []string{"youth", "gbv", "rural", "media", "faith", "leadership"}
	for i, id := range want {
		if cats[i].ID != id {
			t.Errorf("category %d: expected %q, got %q", i, id, cats[i].ID)
		}
		if len(cats[i].Programs) == 0 {
			t.Errorf("category %q has no programs", id)
		}
	}
}

func TestProgramByID(t *testing.T) {
	p, cat, ok := ProgramByID("career-guidance")
	if !ok {
		t.Fatal("expected career-guidance to exist")
	}
	if cat.ID != "youth" {
		t.Errorf("expected youth category, got %q", cat.ID)
	}
	if p.Title != "Career Guidance & Skills Development" {
		t.Errorf("unexpected title %q", p.Title)
	}

	if _, _, ok := ProgramByID("no-such-program"); ok {
		t.Error("expected lookup miss for unknown id")
	}
}

func TestProgramIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range ProgramCategories() {
		for _, p := range c.Programs {
			if seen[p.ID] {
				t.Errorf("duplicate program id %q", p.ID)
			}
			seen[p.ID] = true
		}
	}
}

func TestRenderMarkdown(t *testing.T) {
	out := RenderMarkdown("Our **Anti-Bullying program** works with schools.")
	if !strings.Contains(out, "<strong>Anti-Bullying program</strong>") {
		t.Errorf("expected bold markup in %q", out)
	}

	if RenderMarkdown("") != "" {
		t.Error("empty source should render empty")
	}
}

func TestRenderProgram(t *testing.T) {
	p, _, _ := ProgramByID("anti-bullying")
	r := RenderProgram(p)
	if r.ID != p.ID {
		t.Errorf("expected embedded program fields to carry over")
	}
	if !strings.Contains(r.LongDescriptionHTML, "<strong>") {
		t.Errorf("expected rendered HTML, got %q", r.LongDescriptionHTML)
	}
}
