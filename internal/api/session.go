package api

import (
	"context"
	"net/http"
	"time"
)

const (
	authCookie  = "admin-authenticated"
	emailCookie = "admin-email"
)

// SessionConfig controls the admin session cookies.
type SessionConfig struct {
	Secure bool
	MaxAge time.Duration
}

type actorKey struct{}

// sessionEmail returns the admin email when both session cookies are set.
func sessionEmail(r *http.Request) (string, bool) {
	auth, err := r.Cookie(authCookie)
	if err != nil || auth.Value != "true" {
		return "", false
	}
	email, err := r.Cookie(emailCookie)
	if err != nil || email.Value == "" {
		return "", false
	}
	return email.Value, true
}

func actor(ctx context.Context) string {
	email, _ := ctx.Value(actorKey{}).(string)
	return email
}

func withActor(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, actorKey{}, email)
}

// requireSession rejects requests without an admin session and stores the
// admin email on the request context.
func requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := sessionEmail(r)
		if !ok {
			reject(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		next.ServeHTTP(w, r.WithContext(withActor(r.Context(), email)))
	})
}

func (c SessionConfig) cookie(name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(c.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (c SessionConfig) start(w http.ResponseWriter, email string) {
	http.SetCookie(w, c.cookie(authCookie, "true"))
	http.SetCookie(w, c.cookie(emailCookie, email))
}

func (c SessionConfig) end(w http.ResponseWriter) {
	for _, name := range []string{authCookie, emailCookie} {
		cookie := c.cookie(name, "")
		cookie.MaxAge = -1
		http.SetCookie(w, cookie)
	}
}
