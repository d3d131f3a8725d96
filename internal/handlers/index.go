package handlers

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/diewo77/go-social/auth"
	"github.com/diewo77/go-social/httpx"
	"github.com/diewo77/go-social/internal/forms"
	"github.com/diewo77/go-social/internal/services"
)

// IndexHandler serves the landing page with its composite login+register
// form. The POSTed "action" field selects which sub-form was submitted.
type IndexHandler struct {
	Accounts *services.AccountService
}

func NewIndexHandler(db *gorm.DB) *IndexHandler {
	return &IndexHandler{Accounts: services.NewAccountService(db)}
}

func (h *IndexHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		render(w, r, "index", nil)
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			httpx.JSONError(w, http.StatusBadRequest, httpx.CodeInvalidForm, nil)
			return
		}
		switch r.PostFormValue("action") {
		case "login":
			h.login(w, r)
		case "register":
			h.register(w, r)
		default:
			httpx.JSONError(w, http.StatusBadRequest, httpx.CodeUnknownAction, nil)
		}
	default:
		w.Header().Set("Allow", "GET,POST")
		httpx.JSONError(w, http.StatusMethodNotAllowed, httpx.CodeMethodNotAllowed, nil)
	}
}

func (h *IndexHandler) login(w http.ResponseWriter, r *http.Request) {
	f := forms.NewLogin(r.PostForm)
	if errs := f.Validate(); !errs.Empty() {
		render(w, r, "index", map[string]any{
			"Login": f, "LoginErrors": errs,
			"Flash": "Invalid username.", "FlashCategory": flashWarning,
		})
		return
	}
	user, err := h.Accounts.Authenticate(f.Username, f.Password)
	switch {
	case errors.Is(err, services.ErrUnknownUser):
		render(w, r, "index", map[string]any{
			"Login": f, "Flash": "Sorry, this user does not exist!", "FlashCategory": flashWarning,
		})
	case errors.Is(err, services.ErrWrongPassword):
		render(w, r, "index", map[string]any{
			"Login": f, "Flash": "Sorry, wrong password!", "FlashCategory": flashWarning,
		})
	case err != nil:
		http.Error(w, "internal error", http.StatusInternalServerError)
	default:
		auth.CreateSession(w, user.Username)
		http.Redirect(w, r, "/stream/"+user.Username, statusSeeOther)
	}
}

func (h *IndexHandler) register(w http.ResponseWriter, r *http.Request) {
	f := forms.NewRegister(r.PostForm)
	if errs := f.Validate(); !errs.Empty() {
		render(w, r, "index", map[string]any{"Register": f, "RegisterErrors": errs})
		return
	}
	_, err := h.Accounts.Register(services.RegisterInput{
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Username:  f.Username,
		Password:  f.Password,
	})
	switch {
	case errors.Is(err, services.ErrUsernameTaken):
		render(w, r, "index", map[string]any{
			"Register": f, "Flash": "That username is already in use.", "FlashCategory": flashWarning,
		})
	case err != nil:
		http.Error(w, "internal error", http.StatusInternalServerError)
	default:
		SetFlash(w, flashSuccess, "User successfully created!")
		http.Redirect(w, r, "/", statusSeeOther)
	}
}
