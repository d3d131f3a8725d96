package handlers

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/diewo77/go-social/auth"
	"github.com/diewo77/go-social/httpx"
	"github.com/diewo77/go-social/internal/forms"
	"github.com/diewo77/go-social/internal/services"
	"github.com/diewo77/go-social/sanitize"
)

// ProfileHandler shows a profile and lets a user update their own.
type ProfileHandler struct {
	Accounts *services.AccountService
}

func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{Accounts: services.NewAccountService(db)}
}

func (h *ProfileHandler) Handle(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	user, err := h.Accounts.FindByUsername(username)
	if errors.Is(err, services.ErrUnknownUser) {
		renderNotFound(w, r, "user")
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	switch r.Method {
	case http.MethodPost:
		target := "/profile/" + username
		sess := auth.FromContext(r.Context())
		if sess.Username != username {
			SetFlash(w, flashWarning, "You can only edit your own profile.")
			http.Redirect(w, r, target, statusSeeOther)
			return
		}
		if perr := r.ParseForm(); perr != nil {
			httpx.JSONError(w, http.StatusBadRequest, httpx.CodeInvalidForm, nil)
			return
		}
		f := forms.NewProfile(r.PostForm)
		uerr := h.Accounts.UpdateProfile(username, services.ProfileUpdate{
			Education:   f.Education,
			Employment:  f.Employment,
			Music:       f.Music,
			Movie:       f.Movie,
			Nationality: f.Nationality,
			Birthday:    f.Birthday,
		})
		if uerr != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		SetFlash(w, flashSuccess, "Profile updated.")
		http.Redirect(w, r, target, statusSeeOther)
	case http.MethodGet:
		// Profile fields are sanitized on write; clean again before display
		// in case older rows predate that.
		user.Education = sanitize.Clean(user.Education)
		user.Employment = sanitize.Clean(user.Employment)
		user.Music = sanitize.Clean(user.Music)
		user.Movie = sanitize.Clean(user.Movie)
		user.Nationality = sanitize.Clean(user.Nationality)
		user.Birthday = sanitize.Clean(user.Birthday)
		render(w, r, "profile", map[string]any{"ProfileUser": user})
	default:
		w.Header().Set("Allow", "GET,POST")
		httpx.JSONError(w, http.StatusMethodNotAllowed, httpx.CodeMethodNotAllowed, nil)
	}
}
