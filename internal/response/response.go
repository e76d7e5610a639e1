// Package response writes the JSON bodies shared by handlers and middleware.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/apperr"
)

// ErrorBody is the error contract: {"error":true,"message":...,"code":...}.
type ErrorBody struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// JSON sends a success response.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// Error sends an error response converting the error to the common structure.
func Error(w http.ResponseWriter, err error) {
	appErr := apperr.FromError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Status)
	json.NewEncoder(w).Encode(ErrorBody{Error: true, Message: appErr.Message, Code: appErr.Code})
}
