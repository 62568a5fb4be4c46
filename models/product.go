package models

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindSandwich Kind = "sandwich"
	KindSushi    Kind = "sushi"
	KindDrink    Kind = "drink"
	KindSpecial  Kind = "special"
)

type SushiStyle string

const (
	SushiPieces SushiStyle = "pieces"
	SushiBowl   SushiStyle = "bowl"
)

// Product is a single menu line. Kind tags which of the variant fields are
// meaningful: Style/Pieces for sushi, Day/Country for specials. Products are
// built once at catalog construction and never mutated; the ID is the ledger
// key, so two lines with identical fields are still distinct entries.
type Product struct {
	ID         uuid.UUID       `json:"id"`
	Kind       Kind            `json:"kind"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Attributes Attributes      `json:"-"`

	Style  SushiStyle `json:"style,omitempty"`
	Pieces int        `json:"pieces,omitempty"`

	Day     Weekday `json:"day,omitempty"`
	Country string  `json:"country,omitempty"`
}

func newProduct(kind Kind, name string, price decimal.Decimal, attrs Attributes) (*Product, error) {
	if name == "" {
		return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if price.IsNegative() {
		return nil, &ValidationError{Product: name, Field: "price", Reason: "must not be negative"}
	}
	return &Product{
		ID:         uuid.New(),
		Kind:       kind,
		Name:       name,
		Price:      price,
		Attributes: attrs,
	}, nil
}

func NewSandwich(name string, price decimal.Decimal, attrs Attributes) (*Product, error) {
	return newProduct(KindSandwich, name, price, attrs)
}

func NewDrink(name string, price decimal.Decimal, attrs Attributes) (*Product, error) {
	return newProduct(KindDrink, name, price, attrs)
}

// NewSushi builds a sushi line. Pieces is only meaningful for the
// piece-count style and is zeroed for bowls.
func NewSushi(style SushiStyle, name string, price decimal.Decimal, attrs Attributes, pieces int) (*Product, error) {
	p, err := newProduct(KindSushi, name, price, attrs)
	if err != nil {
		return nil, err
	}
	switch style {
	case SushiPieces:
		if pieces < 0 {
			return nil, &ValidationError{Product: name, Field: "pieces", Reason: "must not be negative"}
		}
		p.Pieces = pieces
	case SushiBowl:
		// pieces ignored
	default:
		return nil, &ValidationError{Product: name, Field: "style", Reason: fmt.Sprintf("unknown sushi style %q", style)}
	}
	p.Style = style
	return p, nil
}

// NewSpecial builds a day-restricted line. A special is valid on exactly one
// weekday and carries its country of origin.
func NewSpecial(day Weekday, country, name string, price decimal.Decimal, attrs Attributes) (*Product, error) {
	p, err := newProduct(KindSpecial, name, price, attrs)
	if err != nil {
		return nil, err
	}
	if !day.IsValid() {
		return nil, &ValidationError{Product: name, Field: "day", Reason: fmt.Sprintf("unknown weekday %q", day)}
	}
	if country == "" {
		return nil, &ValidationError{Product: name, Field: "country", Reason: "must not be empty"}
	}
	p.Day = day
	p.Country = country
	return p, nil
}

// PrettyName is the display name: sushi lines get their presentation
// appended, everything else displays as-is.
func (p *Product) PrettyName() string {
	if p.Kind == KindSushi {
		if p.Style == SushiBowl {
			return p.Name + " bowl"
		}
		return fmt.Sprintf("%s sushi (%d pcs)", p.Name, p.Pieces)
	}
	return p.Name
}

// OrderableOn reports whether the product may be added to an order for the
// given day. Only specials are day-gated.
func (p *Product) OrderableOn(day Weekday) bool {
	if p.Kind != KindSpecial {
		return true
	}
	return p.Day == day
}
