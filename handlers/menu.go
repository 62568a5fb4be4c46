package handlers

import (
	"net/http"

	"github.com/ColdMacaroni/KaiUI-DTC/models"
	"github.com/ColdMacaroni/KaiUI-DTC/utils"
)

// GetMenu lists the whole catalog by category, in display order. Off-day
// specials are listed too; whether they are orderable is a session question.
func GetMenu(w http.ResponseWriter, r *http.Request) {
	type menuItem struct {
		ID      string   `json:"id"`
		Name    string   `json:"name"`
		Price   string   `json:"price"`
		Info    []string `json:"info"`
		Day     string   `json:"day,omitempty"`
		Country string   `json:"country,omitempty"`
	}
	type menuCategory struct {
		Category string     `json:"category"`
		Items    []menuItem `json:"items"`
	}

	var menu []menuCategory
	for _, key := range models.Categories {
		cat := menuCategory{Category: string(key)}
		for _, p := range catalog.ListCategory(key) {
			cat.Items = append(cat.Items, menuItem{
				ID:      p.ID.String(),
				Name:    p.PrettyName(),
				Price:   p.Price.StringFixed(2),
				Info:    p.Attributes.DisplayStrings(),
				Day:     string(p.Day),
				Country: p.Country,
			})
		}
		menu = append(menu, cat)
	}

	utils.RespondJSON(w, http.StatusOK, menu)
}
