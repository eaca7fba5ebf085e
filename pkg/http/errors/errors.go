package errors

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the envelope every failed request returns.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// RespondError writes the standard error envelope for the given status code.
// Unknown codes fall back to a 500 with a generic message.
func RespondError(w http.ResponseWriter, status int) {
	message, ok := messages[status]
	if !ok {
		status = http.StatusInternalServerError
		message = "internal server error"
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Success: false,
		Error:   status,
		Message: message,
	})
}

// RespondBadRequest writes a 400 error envelope.
func RespondBadRequest(w http.ResponseWriter) {
	RespondError(w, http.StatusBadRequest)
}

// RespondNotFound writes a 404 error envelope.
func RespondNotFound(w http.ResponseWriter) {
	RespondError(w, http.StatusNotFound)
}

// RespondUnprocessable writes a 422 error envelope.
func RespondUnprocessable(w http.ResponseWriter) {
	RespondError(w, http.StatusUnprocessableEntity)
}
