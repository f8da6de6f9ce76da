package httputil

import (
	"encoding/json"
	"io"
	"net/http"
)

// WriteJSON encodes response as JSON with the given status.
// json.Encoder terminates the body with a newline, which the registration
// contract relies on.
func WriteJSON(w http.ResponseWriter, status int, response any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Errors after WriteHeader cannot change the status code, so we ignore encoding errors.
	_ = json.NewEncoder(w).Encode(response)
}

// WriteBody writes a pre-encoded JSON body verbatim.
func WriteBody(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}
