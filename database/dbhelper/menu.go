package dbhelper

import (
	"database/sql"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"

	"github.com/ColdMacaroni/KaiUI-DTC/database"
	"github.com/ColdMacaroni/KaiUI-DTC/models"
)

// LoadMenu reads the menu_items table into catalog input. Rows that fail
// product validation are collected so the whole bad menu is reported, not
// just the first row.
func LoadMenu() (map[models.Category][]*models.Product, error) {
	rows, err := database.Cafe.Query(`
		SELECT name, category, price::text, vegetarian, vegan, has_sugar,
		       sushi_style, pieces, special_day, country
		FROM menu_items
		ORDER BY category, position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	byCategory := make(map[models.Category][]*models.Product)
	var errs *multierror.Error

	for rows.Next() {
		var (
			name, category, priceStr        string
			vegetarian, vegan, hasSugar     bool
			sushiStyle, specialDay, country sql.NullString
			pieces                          sql.NullInt64
		)
		if err := rows.Scan(&name, &category, &priceStr, &vegetarian, &vegan, &hasSugar,
			&sushiStyle, &pieces, &specialDay, &country); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}

		price, err := decimal.NewFromString(priceStr)
		if err != nil {
			errs = multierror.Append(errs, &models.ValidationError{Product: name, Field: "price", Reason: err.Error()})
			continue
		}

		var attrs models.Attributes
		if vegetarian {
			attrs = attrs.Combine(models.AttrVegetarian)
		}
		if vegan {
			attrs = attrs.Combine(models.AttrVegan)
		}
		if hasSugar {
			attrs = attrs.Combine(models.AttrHasSugar)
		}

		var p *models.Product
		switch key := models.Category(category); key {
		case models.CategorySandwiches:
			p, err = models.NewSandwich(name, price, attrs)
		case models.CategorySushi:
			p, err = models.NewSushi(models.SushiStyle(sushiStyle.String), name, price, attrs, int(pieces.Int64))
		case models.CategoryDrinks:
			p, err = models.NewDrink(name, price, attrs)
		case models.CategorySpecials:
			p, err = models.NewSpecial(models.Weekday(specialDay.String), country.String, name, price, attrs)
		default:
			err = &models.InvalidCategoryError{Key: category}
		}
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		byCategory[models.Category(category)] = append(byCategory[models.Category(category)], p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate menu items: %w", err)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return byCategory, nil
}
