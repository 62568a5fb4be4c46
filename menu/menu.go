// Package menu holds the built-in cafeteria menu. It is the default menu
// source; the same data ships as a database seed for deployments that manage
// the menu in Postgres.
package menu

import (
	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"

	"github.com/ColdMacaroni/KaiUI-DTC/models"
)

// Default builds the full menu grouped by category. All invalid items are
// reported together so a menu editor sees every problem at once.
func Default() (map[models.Category][]*models.Product, error) {
	var errs *multierror.Error
	collect := func(p *models.Product, err error) *models.Product {
		if err != nil {
			errs = multierror.Append(errs, err)
		}
		return p
	}

	sandwiches := []*models.Product{
		collect(models.NewSandwich("Ham & egg sandwich", price("3.50"), 0)),
		collect(models.NewSandwich("Chicken mayo sandwich", price("3.50"), 0)),
		collect(models.NewSandwich("Egg sandwich", price("3.00"), models.AttrVegetarian)),
		collect(models.NewSandwich("Beef sandwich", price("3.80"), 0)),
		collect(models.NewSandwich("Salad sandwich", price("3.20"), models.AttrVegan|models.AttrVegetarian)),
	}

	sushi := []*models.Product{
		collect(models.NewSushi(models.SushiPieces, "Chicken", price("4.50"), 0, 3)),
		collect(models.NewSushi(models.SushiPieces, "Tuna", price("4.50"), 0, 3)),
		collect(models.NewSushi(models.SushiPieces, "Avocado", price("4.80"), models.AttrVegan|models.AttrVegetarian, 3)),
		collect(models.NewSushi(models.SushiBowl, "Chicken rice", price("5.50"), 0, 0)),
		collect(models.NewSushi(models.SushiBowl, "Vegetarian rice", price("5.50"), models.AttrVegan|models.AttrVegetarian, 0)),
	}

	drinks := []*models.Product{
		collect(models.NewDrink("Soda can", price("2.00"), models.AttrVegan|models.AttrVegetarian|models.AttrHasSugar)),
		collect(models.NewDrink("Aloe vera drink", price("3.50"), models.AttrVegetarian|models.AttrHasSugar)),
		collect(models.NewDrink("Chocolate milk", price("3.50"), models.AttrHasSugar)),
		collect(models.NewDrink("Water bottle", price("2.50"), models.AttrVegan|models.AttrVegetarian)),
		collect(models.NewDrink("Instant hot chocolate", price("1.50"), models.AttrVegetarian|models.AttrHasSugar)),
	}

	specials := []*models.Product{
		collect(models.NewSpecial(models.Monday, "Samoa", "Kale moa", price("6.00"), models.AttrHasSugar)),
		collect(models.NewSpecial(models.Tuesday, "South Africa", "Potjiekos", price("6.00"), 0)),
		collect(models.NewSpecial(models.Wednesday, "New Zealand", "Hangi", price("6.00"), models.AttrVegan|models.AttrVegetarian)),
		collect(models.NewSpecial(models.Thursday, "India", "Paneer tikka masala", price("6.00"), models.AttrVegetarian|models.AttrHasSugar)),
		collect(models.NewSpecial(models.Friday, "China", "Chow mein", price("6.00"), models.AttrVegan|models.AttrVegetarian)),
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	return map[models.Category][]*models.Product{
		models.CategorySandwiches: sandwiches,
		models.CategorySushi:      sushi,
		models.CategoryDrinks:     drinks,
		models.CategorySpecials:   specials,
	}, nil
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
