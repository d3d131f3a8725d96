package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"time"
)

const flashCookieName = "flash"

// Flash categories shown by the layout.
const (
	flashSuccess = "success"
	flashWarning = "warning"
	flashError   = "error"
)

// SetFlash stores a one-shot notice in the flash cookie, shown on the next
// rendered page and cleared on read.
func SetFlash(w http.ResponseWriter, category, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:  flashCookieName,
		Value: url.QueryEscape(category + "|" + message),
		Path:  "/",
	})
}

// PopFlash reads and clears the flash cookie.
func PopFlash(w http.ResponseWriter, r *http.Request) (category, message string, ok bool) {
	c, err := r.Cookie(flashCookieName)
	if err != nil || c.Value == "" {
		return "", "", false
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookieName, Value: "", Path: "/", Expires: time.Unix(0, 0), MaxAge: -1})
	dec, derr := url.QueryUnescape(c.Value)
	if derr != nil {
		dec = c.Value
	}
	category, message, found := strings.Cut(dec, "|")
	if !found {
		return flashSuccess, dec, true
	}
	return category, message, true
}
