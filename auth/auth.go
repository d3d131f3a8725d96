package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type ctxKey string

const (
	sessionCookieName = "session"
	sessionCtxKey     = ctxKey("session")
)

// Session is the per-request authentication state, built once by Middleware
// and carried in the request context. Anonymous requests get the zero value.
type Session struct {
	Authenticated bool
	Username      string
}

var secret = "devsessionsecret"

// SetSecret installs the signing secret from configuration. Call once at
// startup, before any session is created or parsed.
func SetSecret(s string) {
	if s != "" {
		secret = s
	}
}

// Secret returns the session signing secret.
func Secret() string { return secret }

func sign(username string) string {
	mac := hmac.New(sha256.New, []byte(Secret()))
	mac.Write([]byte(username))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// CreateSession sets a signed cookie carrying the username.
func CreateSession(w http.ResponseWriter, username string) {
	value := username + "." + sign(username)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(14 * 24 * time.Hour),
	})
}

// ClearSession deletes the session cookie.
func ClearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: sessionCookieName, Value: "", Path: "/", Expires: time.Unix(0, 0), HttpOnly: true, SameSite: http.SameSiteLaxMode})
}

// ParseSession validates the cookie signature and returns the username.
func ParseSession(r *http.Request) (string, bool) {
	c, err := r.Cookie(sessionCookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	i := strings.LastIndex(c.Value, ".")
	if i <= 0 {
		return "", false
	}
	username, sig := c.Value[:i], c.Value[i+1:]
	if !hmac.Equal([]byte(sig), []byte(sign(username))) {
		return "", false
	}
	return username, true
}

// WithSession stores the session in context.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey, s)
}

// FromContext extracts the session; anonymous if Middleware did not run.
func FromContext(ctx context.Context) Session {
	if s, ok := ctx.Value(sessionCtxKey).(Session); ok {
		return s
	}
	return Session{}
}

// Middleware builds the request session from the cookie and attaches it to
// the context. It never rejects; route gating decides what anonymous
// sessions may reach.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := Session{}
		if username, ok := ParseSession(r); ok {
			s = Session{Authenticated: true, Username: username}
		}
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
	})
}

// HashPassword returns the bcrypt hash of the plaintext.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plain matches the stored hash.
// Malformed hashes are treated as a mismatch.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
