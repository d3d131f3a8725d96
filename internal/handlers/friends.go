package handlers

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/diewo77/go-social/httpx"
	"github.com/diewo77/go-social/internal/forms"
	"github.com/diewo77/go-social/internal/services"
)

// FriendsHandler lists a user's outgoing friend edges and adds new ones.
type FriendsHandler struct {
	Accounts *services.AccountService
	Friends  *services.FriendService
}

func NewFriendsHandler(db *gorm.DB) *FriendsHandler {
	return &FriendsHandler{
		Accounts: services.NewAccountService(db),
		Friends:  services.NewFriendService(db),
	}
}

func (h *FriendsHandler) Handle(w http.ResponseWriter, r *http.Request) {
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
		if perr := r.ParseForm(); perr != nil {
			httpx.JSONError(w, http.StatusBadRequest, httpx.CodeInvalidForm, nil)
			return
		}
		target := "/friends/" + username
		f := forms.NewFriend(r.PostForm)
		if errs := f.Validate(); !errs.Empty() {
			SetFlash(w, flashWarning, "Enter a username to add.")
			http.Redirect(w, r, target, statusSeeOther)
			return
		}
		_, aerr := h.Friends.Add(user, f.Username)
		switch {
		case errors.Is(aerr, services.ErrUnknownUser):
			SetFlash(w, flashWarning, "User does not exist!")
		case errors.Is(aerr, services.ErrSelfFriend):
			SetFlash(w, flashWarning, "You cannot be friends with yourself!")
		case errors.Is(aerr, services.ErrAlreadyFriends):
			SetFlash(w, flashWarning, "You are already friends with this user!")
		case aerr != nil:
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		default:
			SetFlash(w, flashSuccess, "Friend successfully added!")
		}
		http.Redirect(w, r, target, statusSeeOther)
	case http.MethodGet:
		edges, lerr := h.Friends.ListFor(user)
		if lerr != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		render(w, r, "friends", map[string]any{"ProfileUser": user, "Friends": edges})
	default:
		w.Header().Set("Allow", "GET,POST")
		httpx.JSONError(w, http.StatusMethodNotAllowed, httpx.CodeMethodNotAllowed, nil)
	}
}
