package utils

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

func RespondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("failed to encode response body")
	}
}

func RespondError(w http.ResponseWriter, status int, msg string) {
	RespondJSON(w, status, struct {
		Error string `json:"error"`
	}{Error: msg})
}
