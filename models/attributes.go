package models

// Attributes is a bitset of dietary properties. The flags are independent:
// vegan does not imply vegetarian, both must be set explicitly.
type Attributes uint8

const (
	AttrVegan Attributes = 1 << iota
	AttrVegetarian
	AttrHasSugar
)

func (a Attributes) Has(flag Attributes) bool {
	return a&flag != 0
}

func (a Attributes) Combine(b Attributes) Attributes {
	return a | b
}

// DisplayStrings renders the three known flags in a fixed order so the
// rendered product info is deterministic.
func (a Attributes) DisplayStrings() []string {
	return []string{
		"Vegetarian: " + yesNo(a.Has(AttrVegetarian)),
		"Vegan: " + yesNo(a.Has(AttrVegan)),
		"Contains sugar: " + yesNo(a.Has(AttrHasSugar)),
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
