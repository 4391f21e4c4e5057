package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithJSON(w, http.StatusCreated, map[string]string{"id": "1"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":"1"}`, w.Body.String())
}

func TestRespondWithJSON_NoContent(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithJSON(w, http.StatusNoContent, Response{Success: true})

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestRespondWithFields(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithFields(w, http.StatusBadRequest, "Missing required fields: email", map[string]string{"email": "is required"})

	var body Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "Missing required fields: email", body.Message)
	assert.Equal(t, "is required", body.Fields["email"])
}

func TestRespondWithInternalError(t *testing.T) {
	tests := []struct {
		name     string
		expose   bool
		expected string
	}{
		{name: "Production hides the cause", expose: false, expected: "Internal server error"},
		{name: "Development shows the cause", expose: true, expected: "connection refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ExposeInternalErrors(tt.expose)
			defer ExposeInternalErrors(false)

			w := httptest.NewRecorder()
			RespondWithInternalError(w, errors.New("connection refused"))

			var body Response
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Equal(t, tt.expected, body.Message)
		})
	}
}
