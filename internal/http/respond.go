package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"ecommerce-api/internal/apperr"
	"ecommerce-api/pkg/i18n"
)

// envelope is the single response shape: every outcome carries a localized
// message; successes additionally carry a data payload.
type envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respond(w http.ResponseWriter, r *http.Request, status int, messageKey string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{
		Message: i18n.T(Lang(r), messageKey, nil),
		Data:    data,
	})
}

// respondErr maps a domain failure to its status and localized message.
// Anything else is an internal fault: logged in full, surfaced as a generic
// 500 with no detail leaked.
func respondErr(w http.ResponseWriter, r *http.Request, log zerolog.Logger, err error) {
	if e, ok := apperr.As(err); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(e.Status)
		_ = json.NewEncoder(w).Encode(envelope{
			Message: i18n.T(Lang(r), e.MessageKey, e.Data),
		})
		return
	}
	log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("unhandled error")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(envelope{
		Message: i18n.T(Lang(r), "server_error", nil),
	})
}
