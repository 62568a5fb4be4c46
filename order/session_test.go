package order

import (
	"errors"
	"testing"

	"github.com/ColdMacaroni/KaiUI-DTC/models"
)

func testCatalog(t *testing.T) (*models.Catalog, map[string]*models.Product) {
	t.Helper()
	sandwichP, sandwichErr := models.NewSandwich("Ham & egg sandwich", price(t, "3.50"), 0)
	drinkP, drinkErr := models.NewDrink("Soda can", price(t, "2.00"), models.AttrHasSugar)
	hangiP, hangiErr := models.NewSpecial(models.Wednesday, "New Zealand", "Hangi", price(t, "6.00"), models.AttrVegan|models.AttrVegetarian)
	kaleMoaP, kaleMoaErr := models.NewSpecial(models.Monday, "Samoa", "Kale moa", price(t, "6.00"), models.AttrHasSugar)
	products := map[string]*models.Product{
		"sandwich": mustProduct(t, sandwichP, sandwichErr),
		"drink":    mustProduct(t, drinkP, drinkErr),
		"hangi":    mustProduct(t, hangiP, hangiErr),
		"kale moa": mustProduct(t, kaleMoaP, kaleMoaErr),
	}
	catalog, err := models.BuildCatalog(map[models.Category][]*models.Product{
		models.CategorySandwiches: {products["sandwich"]},
		models.CategoryDrinks:     {products["drink"]},
		models.CategorySpecials:   {products["hangi"], products["kale moa"]},
	})
	if err != nil {
		t.Fatalf("unexpected error building catalog: %v", err)
	}
	return catalog, products
}

func TestAddSpecialGatedByDay(t *testing.T) {
	catalog, products := testCatalog(t)
	hangi := products["hangi"]

	for _, day := range models.Weekdays() {
		sess := NewSession(catalog, day)
		qty, err := sess.AddToOrder(hangi)

		if day == models.Wednesday {
			if err != nil {
				t.Errorf("%s: expected add to succeed, got %v", day, err)
			}
			if qty != 1 {
				t.Errorf("%s: got quantity %d, want 1", day, qty)
			}
			continue
		}

		var mismatch *DayMismatchError
		if !errors.As(err, &mismatch) {
			t.Errorf("%s: expected DayMismatchError, got %v", day, err)
			continue
		}
		if mismatch.Product != hangi || mismatch.ActiveDay != day {
			t.Errorf("%s: mismatch error has wrong details: %+v", day, mismatch)
		}
		if len(sess.Entries()) != 0 {
			t.Errorf("%s: rejected add must leave the order untouched", day)
		}
	}
}

func TestNonSpecialsIgnoreDay(t *testing.T) {
	catalog, products := testCatalog(t)
	for _, day := range models.Weekdays() {
		sess := NewSession(catalog, day)
		if _, err := sess.AddToOrder(products["sandwich"]); err != nil {
			t.Errorf("%s: sandwich add failed: %v", day, err)
		}
		if _, err := sess.AddToOrder(products["drink"]); err != nil {
			t.Errorf("%s: drink add failed: %v", day, err)
		}
	}
}

func TestSetActiveDayConflicts(t *testing.T) {
	catalog, products := testCatalog(t)

	// empty order: any change is accepted
	sess := NewSession(catalog, models.Monday)
	if err := sess.SetActiveDay(models.Sunday); err != nil {
		t.Fatalf("day change with empty order rejected: %v", err)
	}
	if sess.ActiveDay() != models.Sunday {
		t.Errorf("active day not updated: %s", sess.ActiveDay())
	}

	// order with a matching special: accepted (stays on the same day)
	sess = NewSession(catalog, models.Wednesday)
	if _, err := sess.AddToOrder(products["hangi"]); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sess.SetActiveDay(models.Wednesday); err != nil {
		t.Errorf("no-op day change rejected: %v", err)
	}

	// order with an off-day special: rejected as a whole
	err := sess.SetActiveDay(models.Monday)
	var conflict *DayConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected DayConflictError, got %v", err)
	}
	if conflict.Requested != models.Monday {
		t.Errorf("conflict names wrong day: %s", conflict.Requested)
	}
	if len(conflict.Conflicts) != 1 || conflict.Conflicts[0] != products["hangi"] {
		t.Errorf("conflict should list Hangi, got %v", conflict.Conflicts)
	}
	if sess.ActiveDay() != models.Wednesday {
		t.Errorf("rejected change must leave the day unchanged, got %s", sess.ActiveDay())
	}

	// non-specials never block a day change
	sess = NewSession(catalog, models.Monday)
	sess.AddToOrder(products["sandwich"])
	sess.AddToOrder(products["drink"])
	if err := sess.SetActiveDay(models.Friday); err != nil {
		t.Errorf("non-specials blocked a day change: %v", err)
	}
}

func TestEnabledSpecials(t *testing.T) {
	catalog, products := testCatalog(t)

	sess := NewSession(catalog, models.Wednesday)
	enabled := sess.EnabledSpecials()
	if len(enabled) != 1 || enabled[0] != products["hangi"] {
		t.Errorf("Wednesday should enable only Hangi, got %v", enabled)
	}

	sess = NewSession(catalog, models.Sunday)
	if enabled := sess.EnabledSpecials(); len(enabled) != 0 {
		t.Errorf("Sunday should enable no specials, got %v", enabled)
	}
}

// The Hangi walkthrough: mismatch on Monday, accepted on Wednesday, then a
// switch back to Monday is refused while Hangi is in the order.
func TestHangiScenario(t *testing.T) {
	catalog, products := testCatalog(t)
	hangi := products["hangi"]

	sess := NewSession(catalog, models.Monday)

	var mismatch *DayMismatchError
	if _, err := sess.AddToOrder(hangi); !errors.As(err, &mismatch) {
		t.Fatalf("expected DayMismatchError on Monday, got %v", err)
	}

	if err := sess.SetActiveDay(models.Wednesday); err != nil {
		t.Fatalf("day change to Wednesday rejected: %v", err)
	}
	if _, err := sess.AddToOrder(hangi); err != nil {
		t.Fatalf("add on Wednesday failed: %v", err)
	}
	if !sess.Total().Equal(price(t, "6.00")) {
		t.Errorf("total: got %s, want 6.00", sess.Total())
	}

	err := sess.SetActiveDay(models.Monday)
	var conflict *DayConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected DayConflictError, got %v", err)
	}
	if len(conflict.Conflicts) != 1 || conflict.Conflicts[0] != hangi {
		t.Errorf("conflicts should be [Hangi], got %v", conflict.Conflicts)
	}
	if sess.ActiveDay() != models.Wednesday {
		t.Errorf("day must remain Wednesday, got %s", sess.ActiveDay())
	}
	if !sess.Total().Equal(price(t, "6.00")) {
		t.Errorf("total must remain 6.00, got %s", sess.Total())
	}
}

func TestSubmitClearsOrder(t *testing.T) {
	catalog, products := testCatalog(t)
	sess := NewSession(catalog, models.Monday)

	sess.AddToOrder(products["sandwich"])
	sess.AddToOrder(products["sandwich"])
	sess.AddToOrder(products["drink"])

	if !sess.Total().Equal(price(t, "9.00")) {
		t.Fatalf("total before submit: got %s, want 9.00", sess.Total())
	}

	receipt := sess.Submit()
	if len(receipt) != 2 {
		t.Fatalf("receipt should have 2 lines, got %d", len(receipt))
	}
	if receipt[0].Product != products["sandwich"] || receipt[0].Quantity != 2 {
		t.Errorf("unexpected first receipt line: %+v", receipt[0])
	}

	if len(sess.Entries()) != 0 {
		t.Error("submit must clear the order")
	}
	if !sess.Total().IsZero() {
		t.Errorf("total after submit: got %s, want 0.00", sess.Total())
	}
}

func TestRemoveFromOrderNeverGated(t *testing.T) {
	catalog, products := testCatalog(t)
	sess := NewSession(catalog, models.Wednesday)
	sess.AddToOrder(products["hangi"])

	// day stays Wednesday but removal must work for any product, and the
	// active-day state is untouched by removing the last special
	if qty := sess.RemoveFromOrder(products["hangi"]); qty != 0 {
		t.Errorf("remove: got quantity %d, want 0", qty)
	}
	if sess.ActiveDay() != models.Wednesday {
		t.Errorf("remove must not change the active day, got %s", sess.ActiveDay())
	}
	if qty := sess.RemoveFromOrder(products["sandwich"]); qty != 0 {
		t.Errorf("no-op remove: got quantity %d, want 0", qty)
	}
}
