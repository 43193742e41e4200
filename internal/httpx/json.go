package httpx

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Message is the `{"error": {"message": ...}}` shape.
type Message struct {
	Message string `json:"message"`
}

// ErrorBody wraps any error payload under the "error" key.
type ErrorBody struct {
	Error any `json:"error"`
}

// WriteJSON writes v with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes {"error": detail}.
func WriteError(w http.ResponseWriter, status int, detail any) {
	WriteJSON(w, status, ErrorBody{Error: detail})
}

// WriteMessage writes {"error": {"message": msg}}.
func WriteMessage(w http.ResponseWriter, status int, msg string) {
	WriteError(w, status, Message{Message: msg})
}

// ErrorHandler answers requests that failed with an unexpected error.
type ErrorHandler struct {
	logger  *zap.Logger
	verbose bool
}

// NewErrorHandler returns a handler that hides error details unless verbose
// is set.
func NewErrorHandler(logger *zap.Logger, verbose bool) *ErrorHandler {
	return &ErrorHandler{logger: logger, verbose: verbose}
}

// ServerError logs err and responds 500.
func (h *ErrorHandler) ServerError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("request failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)

	msg := "server error"
	if h.verbose {
		msg = err.Error()
	}
	WriteMessage(w, http.StatusInternalServerError, msg)
}
