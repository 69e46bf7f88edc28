package middleware

import (
	"net/http"
	"strings"

	"github.com/innovelous/agency/internal/ctxkeys"
	"github.com/innovelous/agency/internal/response"
	"github.com/innovelous/agency/internal/service"
)

// Auth checks for the session cookie and adds the admin session to the
// request context if valid. Requests without a valid session continue
// unauthenticated; gating happens in RequireAdmin.
func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(service.SessionCookieName)
			if err != nil {
				// No cookie, continue without auth
				next.ServeHTTP(w, r)
				return
			}

			session, err := authService.VerifySession(cookie.Value)
			if err != nil {
				// Invalid or expired token, clear cookie and continue
				authService.ClearSessionCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			ctx := ctxkeys.WithAdmin(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin gates the dashboard API. API clients get a 401 JSON envelope;
// browser navigation is redirected to the login entry point.
func RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := ctxkeys.Admin(r.Context())
		if session == nil {
			if isAPIRequest(r) {
				response.Error(w, http.StatusUnauthorized, "authentication required")
				return
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	}
}

// isAPIRequest distinguishes fetch/XHR calls from browser navigation.
func isAPIRequest(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		return true
	}
	if r.Header.Get("X-Requested-With") == "XMLHttpRequest" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}
