package api

import (
	"encoding/json"
	"net/http"

	apperrors "sharedspaces/internal/errors"
)

// DeleteByIDRequest carries the requester's email for an id-addressed cancel.
type DeleteByIDRequest struct {
	Email string `json:"email"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeServiceError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), apperrors.StatusCode(err))
}
