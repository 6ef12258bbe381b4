package helpers

import (
	"encoding/json"
	"net/http"
)

// Machine-readable error codes returned to clients.
const (
	CodeMissingHref   = "missing_href"
	CodeInvalidEmail  = "invalid_email"
	CodeMissingFields = "missing_fields"
	CodeInvalidToken  = "invalid_token"
	CodeUnauthorized  = "unauthorized"
)

// ErrorResponse is the JSON error body: {"error": "<code or message>"}.
// 4xx responses carry a fixed code; 5xx responses carry the raw error
// message (a deliberate debug-convenience trade-off).
type ErrorResponse struct {
	Error string `json:"error"`
}

// OKResponse is the JSON success body for signup and contact submissions.
type OKResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes v.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes an ErrorResponse with the given status and error string.
func WriteError(w http.ResponseWriter, statusCode int, errString string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: errString})
}

// WriteOK writes a 200 OKResponse with the given message.
func WriteOK(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusOK, OKResponse{OK: true, Message: message})
}

// DecodeJSON decodes the request body into dest. Unknown fields are allowed;
// the public forms send extra fields freely.
func DecodeJSON(r *http.Request, dest any) error {
	return json.NewDecoder(r.Body).Decode(dest)
}
