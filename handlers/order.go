package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/ColdMacaroni/KaiUI-DTC/models"
	"github.com/ColdMacaroni/KaiUI-DTC/order"
	"github.com/ColdMacaroni/KaiUI-DTC/utils"
)

type orderLine struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
	LineTotal string `json:"line_total"`
}

func renderLines(lines []order.Line) []orderLine {
	out := make([]orderLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, orderLine{
			ProductID: l.Product.ID.String(),
			Name:      l.Product.PrettyName(),
			Quantity:  l.Quantity,
			Price:     l.Product.Price.StringFixed(2),
			LineTotal: l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity))).StringFixed(2),
		})
	}
	return out
}

func CreateSession(w http.ResponseWriter, r *http.Request) {
	day := defaultDay
	var body struct {
		Day string `json:"day"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err == nil && body.Day != "" {
		parsed, err := models.ParseWeekday(body.Day)
		if err != nil {
			utils.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		day = parsed
	}

	sess := store.create(day)
	utils.RespondJSON(w, http.StatusCreated, struct {
		SessionID string `json:"session_id"`
		Day       string `json:"day"`
	}{SessionID: sess.ID.String(), Day: string(day)})
}

func GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	type sessionView struct {
		SessionID       string      `json:"session_id"`
		Day             string      `json:"day"`
		EnabledSpecials []string    `json:"enabled_specials"`
		Entries         []orderLine `json:"entries"`
		Total           string      `json:"total"`
	}

	var view sessionView
	found := store.with(sessionID, func(sess *order.Session) {
		view = sessionView{
			SessionID:       sess.ID.String(),
			Day:             string(sess.ActiveDay()),
			EnabledSpecials: specialNames(sess.EnabledSpecials()),
			Entries:         renderLines(sess.Entries()),
			Total:           sess.Total().StringFixed(2),
		}
	})
	if !found {
		utils.RespondError(w, http.StatusNotFound, "session not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, view)
}

func AddOrderItem(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	var body struct {
		ProductID string `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	productID, err := uuid.Parse(body.ProductID)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	product, ok := catalog.Lookup(productID)
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "product not found")
		return
	}

	var (
		quantity int
		total    string
		addErr   error
	)
	found := store.with(sessionID, func(sess *order.Session) {
		quantity, addErr = sess.AddToOrder(product)
		total = sess.Total().StringFixed(2)
	})
	if !found {
		utils.RespondError(w, http.StatusNotFound, "session not found")
		return
	}

	var mismatch *order.DayMismatchError
	if errors.As(addErr, &mismatch) {
		utils.RespondError(w, http.StatusConflict, mismatch.Error())
		return
	}
	if addErr != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to add item")
		return
	}

	utils.RespondJSON(w, http.StatusOK, struct {
		Name     string `json:"name"`
		Quantity int    `json:"quantity"`
		Total    string `json:"total"`
	}{Name: product.PrettyName(), Quantity: quantity, Total: total})
}

func RemoveOrderItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID, err := uuid.Parse(vars["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid session id")
		return
	}
	productID, err := uuid.Parse(vars["productID"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	product, ok := catalog.Lookup(productID)
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "product not found")
		return
	}

	var (
		quantity int
		total    string
	)
	found := store.with(sessionID, func(sess *order.Session) {
		quantity = sess.RemoveFromOrder(product)
		total = sess.Total().StringFixed(2)
	})
	if !found {
		utils.RespondError(w, http.StatusNotFound, "session not found")
		return
	}

	// removing an absent product is a no-op, still 200
	utils.RespondJSON(w, http.StatusOK, struct {
		Name     string `json:"name"`
		Quantity int    `json:"quantity"`
		Total    string `json:"total"`
	}{Name: product.PrettyName(), Quantity: quantity, Total: total})
}

func SetDay(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	var body struct {
		Day string `json:"day"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	day, err := models.ParseWeekday(body.Day)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var setErr error
	found := store.with(sessionID, func(sess *order.Session) {
		setErr = sess.SetActiveDay(day)
	})
	if !found {
		utils.RespondError(w, http.StatusNotFound, "session not found")
		return
	}

	var conflict *order.DayConflictError
	if errors.As(setErr, &conflict) {
		utils.RespondJSON(w, http.StatusConflict, struct {
			Error     string   `json:"error"`
			Conflicts []string `json:"conflicts"`
		}{Error: conflict.Error(), Conflicts: specialNames(conflict.Conflicts)})
		return
	}
	if setErr != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to change day")
		return
	}

	utils.RespondJSON(w, http.StatusOK, struct {
		Day string `json:"day"`
	}{Day: string(day)})
}

func SubmitOrder(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	var (
		receipt []order.Line
		total   string
	)
	found := store.with(sessionID, func(sess *order.Session) {
		total = sess.Total().StringFixed(2)
		receipt = sess.Submit()
	})
	if !found {
		utils.RespondError(w, http.StatusNotFound, "session not found")
		return
	}

	logrus.WithFields(logrus.Fields{
		"session_id": sessionID,
		"lines":      len(receipt),
		"total":      total,
	}).Info("order submitted")

	utils.RespondJSON(w, http.StatusOK, struct {
		Entries []orderLine `json:"entries"`
		Total   string      `json:"total"`
	}{Entries: renderLines(receipt), Total: total})
}

func specialNames(products []*models.Product) []string {
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.PrettyName())
	}
	return names
}
