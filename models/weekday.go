package models

import "fmt"

type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

var weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Weekdays returns all seven days in calendar order.
func Weekdays() []Weekday {
	out := make([]Weekday, len(weekdays))
	copy(out, weekdays)
	return out
}

func (d Weekday) IsValid() bool {
	for _, w := range weekdays {
		if d == w {
			return true
		}
	}
	return false
}

func (d Weekday) String() string {
	return string(d)
}

// ParseWeekday maps a display name to a Weekday, for input coming over the
// HTTP boundary.
func ParseWeekday(s string) (Weekday, error) {
	d := Weekday(s)
	if !d.IsValid() {
		return "", fmt.Errorf("unknown weekday %q", s)
	}
	return d, nil
}
