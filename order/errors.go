package order

import (
	"fmt"
	"strings"

	"github.com/ColdMacaroni/KaiUI-DTC/models"
)

// DayMismatchError rejects adding a special outside its day. The order is
// left untouched.
type DayMismatchError struct {
	Product   *models.Product
	ActiveDay models.Weekday
}

func (e *DayMismatchError) Error() string {
	return fmt.Sprintf("%s is only available on %s (active day is %s)",
		e.Product.PrettyName(), e.Product.Day, e.ActiveDay)
}

// DayConflictError rejects a day change while the order still holds specials
// for another day. The active day stays unchanged.
type DayConflictError struct {
	Requested models.Weekday
	Conflicts []*models.Product
}

func (e *DayConflictError) Error() string {
	names := make([]string, len(e.Conflicts))
	for i, p := range e.Conflicts {
		names[i] = p.PrettyName()
	}
	return fmt.Sprintf("cannot change day to %s: order contains %s",
		e.Requested, strings.Join(names, ", "))
}
