package apperror

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/go-softwarelab/common/docs/internal/logger"
)

// HandlerFunc is an http handler that reports failure by returning an error.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handle adapts h to http.HandlerFunc, writing any returned error with Write.
func Handle(log *slog.Logger, h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			Write(w, r, log, err)
		}
	}
}

// Write sends err as a JSON error body. 5xx errors are logged with the
// request id; the internal cause never reaches the client.
func Write(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	appErr := From(err)

	if appErr.HTTPStatus >= http.StatusInternalServerError && log != nil {
		log.Error("request error",
			slog.Int("status", appErr.HTTPStatus),
			slog.String("path", r.URL.Path),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			logger.Error(err),
		)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(appErr.HTTPStatus)
	if r.Method == http.MethodHead {
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}

// NotFoundHandler writes ErrNotFound.
func NotFoundHandler(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		Write(w, r, log, ErrNotFound)
	}
}

// MethodNotAllowedHandler writes ErrMethodNotAllowed.
func MethodNotAllowedHandler(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		Write(w, r, log, ErrMethodNotAllowed)
	}
}
