package utils

import (
	"encoding/json"
	"net/http"
	"sync/atomic"

	"go.uber.org/zap"
)

type Response struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

var exposeInternalErrors atomic.Bool

// ExposeInternalErrors controls whether 500 responses carry the underlying error text.
func ExposeInternalErrors(expose bool) {
	exposeInternalErrors.Store(expose)
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload == nil || code == http.StatusNoContent {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("failed to encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, Response{Success: false, Message: message})
}

func RespondWithFields(w http.ResponseWriter, code int, message string, fields map[string]string) {
	RespondWithJSON(w, code, Response{Success: false, Message: message, Fields: fields})
}

func RespondWithInternalError(w http.ResponseWriter, err error) {
	message := "Internal server error"
	if err != nil && exposeInternalErrors.Load() {
		message = err.Error()
	}
	RespondWithError(w, http.StatusInternalServerError, message)
}
