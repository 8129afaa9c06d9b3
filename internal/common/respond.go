package common

import (
	"encoding/json"
	"log"
	"net/http"
)

type errorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// WriteError maps an error kind to its HTTP status and writes the message.
// Internal failures keep their detail out of the response body.
func WriteError(w http.ResponseWriter, err error) {
	switch KindOf(err) {
	case KindNotFound:
		WriteJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case KindUnauthorized:
		WriteJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case KindConflict:
		WriteJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case KindBadRequest:
		WriteJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		log.Printf("internal error: %v", err)
		WriteJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
