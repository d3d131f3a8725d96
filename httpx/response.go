// Package httpx writes the JSON replies used by the health endpoints and by
// handlers rejecting malformed or mis-methoded requests. Page flows render
// HTML instead; nothing here is part of the browser-facing surface.
package httpx

import (
	"encoding/json"
	"net/http"
)

// Error codes shared across handlers. Machine clients match on these, so
// they are stable strings rather than prose.
const (
	CodeInvalidForm      = "invalid_form"
	CodeUnknownAction    = "unknown_action"
	CodeMethodNotAllowed = "method_not_allowed"
	CodeDegraded         = "degraded"
)

type errorBody struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// JSON marshals v and writes it with the given status. Marshal failures
// degrade to a fixed 500 body so the client never sees partial JSON.
func JSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, `{"error":"encode_error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// JSONError writes the standard error envelope for the given code.
func JSONError(w http.ResponseWriter, status int, code string, details any) {
	JSON(w, status, errorBody{Error: code, Details: details})
}
