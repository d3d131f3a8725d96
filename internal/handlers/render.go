package handlers

import (
	"net/http"

	"github.com/diewo77/go-social/auth"
	"github.com/diewo77/go-social/view"
)

// Explicit constant for 303 See Other (Post/Redirect/Get)
const statusSeeOther = 303

// render executes the named page through the shared view, attaching the
// CSRF token and any pending flash. Handlers that re-render after a failed
// POST put their message in data["Flash"] directly instead of the cookie.
func render(w http.ResponseWriter, r *http.Request, name string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	data["CSRFToken"] = auth.CSRFToken(w, r)
	if _, present := data["Flash"]; !present {
		if category, message, ok := PopFlash(w, r); ok {
			data["Flash"] = message
			data["FlashCategory"] = category
		}
	}
	if err := view.Render(w, r, name+".html", data); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		if _, werr := w.Write([]byte("template error")); werr != nil {
			_ = werr
		}
	}
}

// renderNotFound serves the handled 404 page for missing users and posts.
func renderNotFound(w http.ResponseWriter, r *http.Request, what string) {
	w.WriteHeader(http.StatusNotFound)
	if err := view.Render(w, r, "404.html", map[string]any{"What": what, "CSRFToken": ""}); err != nil {
		if _, werr := w.Write([]byte(what + " not found")); werr != nil {
			_ = werr
		}
	}
}
