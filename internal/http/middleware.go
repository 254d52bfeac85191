package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// SessionCookie carries the shopper session id. There is no authentication:
// a session is just an anonymous browsing identity.
const SessionCookie = "fmes_session"

// SessionMiddleware resolves the shopper session from the cookie, issuing a
// fresh one on first contact, and puts the id on the request context.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := ""
		if c, err := r.Cookie(SessionCookie); err == nil {
			sessionID = c.Value
		}

		if sessionID == "" {
			sessionID = uuid.New().String()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), "session_id", sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
