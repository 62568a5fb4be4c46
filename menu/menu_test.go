package menu

import (
	"testing"

	"github.com/ColdMacaroni/KaiUI-DTC/models"
)

func TestDefaultMenuBuilds(t *testing.T) {
	byCategory, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	catalog, err := models.BuildCatalog(byCategory)
	if err != nil {
		t.Fatalf("catalog build failed: %v", err)
	}

	for _, key := range models.Categories {
		if got := len(catalog.ListCategory(key)); got != 5 {
			t.Errorf("%s: expected 5 items, got %d", key, got)
		}
	}
	if got := len(catalog.AllProducts()); got != 20 {
		t.Errorf("expected 20 products in total, got %d", got)
	}
}

func TestDefaultMenuSpecials(t *testing.T) {
	byCategory, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	specials := byCategory[models.CategorySpecials]
	wantDays := []models.Weekday{models.Monday, models.Tuesday, models.Wednesday, models.Thursday, models.Friday}
	if len(specials) != len(wantDays) {
		t.Fatalf("expected %d specials, got %d", len(wantDays), len(specials))
	}
	for i, s := range specials {
		if s.Day != wantDays[i] {
			t.Errorf("special %q: got day %s, want %s", s.Name, s.Day, wantDays[i])
		}
		if s.Country == "" {
			t.Errorf("special %q has no country of origin", s.Name)
		}
		if !s.Price.Equal(price("6.00")) {
			t.Errorf("special %q: got price %s, want 6.00", s.Name, s.Price)
		}
	}
}

func TestDefaultMenuSushiPresentation(t *testing.T) {
	byCategory, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var pieces, bowls int
	for _, s := range byCategory[models.CategorySushi] {
		switch s.Style {
		case models.SushiPieces:
			pieces++
			if s.PrettyName() != s.Name+" sushi (3 pcs)" {
				t.Errorf("unexpected pretty name %q", s.PrettyName())
			}
		case models.SushiBowl:
			bowls++
			if s.PrettyName() != s.Name+" bowl" {
				t.Errorf("unexpected pretty name %q", s.PrettyName())
			}
		}
	}
	if pieces != 3 || bowls != 2 {
		t.Errorf("expected 3 piece-count and 2 bowl items, got %d and %d", pieces, bowls)
	}
}
