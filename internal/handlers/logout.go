package handlers

import (
	"net/http"

	"github.com/diewo77/go-social/auth"
)

// Logout clears the session and returns to the landing page.
func Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	auth.ClearSession(w)
	SetFlash(w, flashSuccess, "You have been logged out.")
	http.Redirect(w, r, "/", statusSeeOther)
}
