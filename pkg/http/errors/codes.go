package errors

import "net/http"

// Messages for the error envelope. The casing is part of the public API
// contract and is deliberately inconsistent.
var messages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "not found",
	http.StatusUnprocessableEntity: "Unprocessable",
}
