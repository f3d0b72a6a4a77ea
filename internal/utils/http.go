package utils

import (
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
)

// WriteJSON answers with data encoded as JSON and the given status code.
// If data cannot be encoded the response is a plain 500.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
