package order

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ColdMacaroni/KaiUI-DTC/models"
)

// Session is one ordering session: the catalog being ordered from, the
// in-progress ledger and the active day gating the specials. Sessions are
// not shared; callers serialize access.
type Session struct {
	ID        uuid.UUID
	catalog   *models.Catalog
	ledger    *Ledger
	activeDay models.Weekday
}

func NewSession(catalog *models.Catalog, initialDay models.Weekday) *Session {
	return &Session{
		ID:        uuid.New(),
		catalog:   catalog,
		ledger:    NewLedger(),
		activeDay: initialDay,
	}
}

func (s *Session) ActiveDay() models.Weekday {
	return s.activeDay
}

func (s *Session) Catalog() *models.Catalog {
	return s.catalog
}

// AddToOrder adds one unit of the product and returns the new quantity.
// Specials assigned to another day are refused with a DayMismatchError.
func (s *Session) AddToOrder(p *models.Product) (int, error) {
	if !p.OrderableOn(s.activeDay) {
		return 0, &DayMismatchError{Product: p, ActiveDay: s.activeDay}
	}
	return s.ledger.Add(p), nil
}

// RemoveFromOrder removes one unit and returns the remaining quantity.
// Removal is never day-gated and is a no-op for absent products.
func (s *Session) RemoveFromOrder(p *models.Product) int {
	return s.ledger.Remove(p)
}

// SetActiveDay switches the session to another day. The change is all or
// nothing: if the order holds any special assigned to a different day, the
// switch is refused with a DayConflictError and the day stays as it was.
func (s *Session) SetActiveDay(day models.Weekday) error {
	var conflicts []*models.Product
	for _, line := range s.ledger.Entries() {
		if !line.Product.OrderableOn(day) {
			conflicts = append(conflicts, line.Product)
		}
	}
	if len(conflicts) > 0 {
		return &DayConflictError{Requested: day, Conflicts: conflicts}
	}
	s.activeDay = day
	return nil
}

// EnabledSpecials lists the specials orderable on the active day. Off-day
// specials remain in the catalog listing, just not orderable.
func (s *Session) EnabledSpecials() []*models.Product {
	var enabled []*models.Product
	for _, p := range s.catalog.Specials() {
		if p.Day == s.activeDay {
			enabled = append(enabled, p)
		}
	}
	return enabled
}

func (s *Session) Entries() []Line {
	return s.ledger.Entries()
}

func (s *Session) Total() decimal.Decimal {
	return s.ledger.Total()
}

// Submit snapshots the order as a receipt and clears the ledger. Handing the
// receipt to the kitchen is the caller's business.
func (s *Session) Submit() []Line {
	receipt := s.ledger.Entries()
	s.ledger.Clear()
	return receipt
}
