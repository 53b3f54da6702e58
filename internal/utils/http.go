package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data, sets the JSON content type, writes statusCode,
// and sends the body. When marshaling fails it answers 500 and returns a
// wrapped error; handlers treat that as already-responded.
//
//	utils.WriteJSON(w, models.ErrorResponse{Error: "not found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
