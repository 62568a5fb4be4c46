package order

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ColdMacaroni/KaiUI-DTC/models"
)

// Line is one order entry: a catalog product and how many of it.
type Line struct {
	Product  *models.Product
	Quantity int
}

// Ledger is the in-progress order: a multiset keyed by product ID. A stored
// quantity is always positive; removing the last unit deletes the entry.
// Entries iterate in first-add order.
type Ledger struct {
	lines map[uuid.UUID]*Line
	seq   []uuid.UUID
}

func NewLedger() *Ledger {
	return &Ledger{lines: make(map[uuid.UUID]*Line)}
}

// Add increments the product's quantity and returns the new count.
func (l *Ledger) Add(p *models.Product) int {
	line, ok := l.lines[p.ID]
	if !ok {
		line = &Line{Product: p}
		l.lines[p.ID] = line
		l.seq = append(l.seq, p.ID)
	}
	line.Quantity++
	return line.Quantity
}

// Remove decrements the product's quantity and returns the remaining count.
// Removing a product that is not in the order is a no-op, not an error.
func (l *Ledger) Remove(p *models.Product) int {
	line, ok := l.lines[p.ID]
	if !ok {
		return 0
	}
	line.Quantity--
	if line.Quantity <= 0 {
		l.delete(p.ID)
		return 0
	}
	return line.Quantity
}

func (l *Ledger) delete(id uuid.UUID) {
	delete(l.lines, id)
	for i, other := range l.seq {
		if other == id {
			l.seq = append(l.seq[:i], l.seq[i+1:]...)
			break
		}
	}
}

func (l *Ledger) Quantity(p *models.Product) int {
	if line, ok := l.lines[p.ID]; ok {
		return line.Quantity
	}
	return 0
}

func (l *Ledger) Len() int {
	return len(l.seq)
}

func (l *Ledger) Clear() {
	l.lines = make(map[uuid.UUID]*Line)
	l.seq = nil
}

// Entries returns the order lines in first-add order.
func (l *Ledger) Entries() []Line {
	out := make([]Line, 0, len(l.seq))
	for _, id := range l.seq {
		out = append(out, *l.lines[id])
	}
	return out
}

// Total sums price times quantity over all lines. Decimal arithmetic keeps
// repeated add/remove cycles from drifting.
func (l *Ledger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, id := range l.seq {
		line := l.lines[id]
		total = total.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}
