package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFlashRoundTrip(t *testing.T) {
	w := httptest.NewRecorder()
	SetFlash(w, flashWarning, "Please log in to access this page.")

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	w2 := httptest.NewRecorder()
	category, message, ok := PopFlash(w2, r)
	if !ok {
		t.Fatal("flash not found")
	}
	if category != flashWarning || message != "Please log in to access this page." {
		t.Fatalf("got %q/%q", category, message)
	}

	// Pop clears the cookie.
	cleared := false
	for _, c := range w2.Result().Cookies() {
		if c.Name == flashCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("flash cookie not cleared on pop")
	}
}

func TestPopFlashEmpty(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, _, ok := PopFlash(httptest.NewRecorder(), r); ok {
		t.Fatal("flash popped from empty request")
	}
}
