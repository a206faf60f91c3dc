package utils

import (
	"encoding/json"
	"net/http"
)

// Response is the error envelope every failing route answers with.
type Response struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func RespondWithError(w http.ResponseWriter, status int, message string) {
	RespondWithJSON(w, status, Response{Error: true, Message: message})
}
