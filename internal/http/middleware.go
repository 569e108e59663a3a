package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"ecommerce-api/internal/apperr"
	"ecommerce-api/internal/auth"
	"ecommerce-api/internal/models"
	"ecommerce-api/pkg/i18n"
)

type ctxKey int

const (
	ctxKeyLang ctxKey = iota
	ctxKeyIdentity
)

// Identity is the resolved caller, taken from a verified bearer token.
type Identity struct {
	UserID string
	Email  string
	Role   models.Role
}

func Lang(r *http.Request) string {
	if lang, ok := r.Context().Value(ctxKeyLang).(string); ok {
		return lang
	}
	return i18n.DefaultLang
}

func CallerIdentity(r *http.Request) (Identity, bool) {
	id, ok := r.Context().Value(ctxKeyIdentity).(Identity)
	return id, ok
}

// LangMiddleware resolves the response locale from Accept-Language.
func LangMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := i18n.Normalize(r.Header.Get("Accept-Language"))
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKeyLang, lang)))
	})
}

// AuthMiddleware gates a route on a valid bearer token. The token carries the
// role; the only live check is that the embedded user still exists, which
// covers the deleted-user edge case.
func AuthMiddleware(svc *auth.Service, log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				respondErr(w, r, log, apperr.ErrInvalidToken)
				return
			}
			claims, err := svc.VerifyToken(token)
			if err != nil {
				respondErr(w, r, log, apperr.ErrInvalidToken)
				return
			}
			exists, err := svc.UserExists(r.Context(), claims.UserID)
			if err != nil {
				respondErr(w, r, log, err)
				return
			}
			if !exists {
				respondErr(w, r, log, apperr.ErrInvalidToken)
				return
			}
			id := Identity{UserID: claims.UserID, Email: claims.Email, Role: claims.Role}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKeyIdentity, id)))
		})
	}
}

// RequireAdmin passes iff the resolved role is ADMIN.
func RequireAdmin(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := CallerIdentity(r)
			if !ok || id.Role != models.RoleAdmin {
				respondErr(w, r, log, apperr.ErrForbiddenAdmin)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	return token, token != ""
}
