package handlers

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/diewo77/go-social/auth"
	"github.com/diewo77/go-social/httpx"
	"github.com/diewo77/go-social/internal/config"
	"github.com/diewo77/go-social/internal/forms"
	"github.com/diewo77/go-social/internal/services"
)

// StreamHandler serves a user's stream: their posts plus posts from both
// friend directions, and accepts new posts with an optional image.
type StreamHandler struct {
	Accounts *services.AccountService
	Feed     *services.FeedService
	Uploads  *UploadStore
}

func NewStreamHandler(db *gorm.DB, cfg config.Config) *StreamHandler {
	return &StreamHandler{
		Accounts: services.NewAccountService(db),
		Feed:     services.NewFeedService(db),
		Uploads:  NewUploadStore(cfg),
	}
}

func (h *StreamHandler) Handle(w http.ResponseWriter, r *http.Request) {
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
		h.post(w, r, username)
	case http.MethodGet:
		posts, ferr := h.Feed.StreamFor(user)
		if ferr != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		render(w, r, "stream", map[string]any{"ProfileUser": user, "Posts": posts})
	default:
		w.Header().Set("Allow", "GET,POST")
		httpx.JSONError(w, http.StatusMethodNotAllowed, httpx.CodeMethodNotAllowed, nil)
	}
}

// post handles the multipart form itself: the body is capped before parsing
// and the CSRF token checked right after, since the shared middleware cannot
// parse a capped multipart body for us.
func (h *StreamHandler) post(w http.ResponseWriter, r *http.Request, username string) {
	sess := auth.FromContext(r.Context())
	author, err := h.Accounts.FindByUsername(sess.Username)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.Uploads.MaxBytes+64<<10)
	if perr := r.ParseMultipartForm(h.Uploads.MaxBytes); perr != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(perr, &maxErr):
			SetFlash(w, flashError, "File size exceeds allowed limit.")
			http.Redirect(w, r, "/stream/"+username, statusSeeOther)
			return
		case errors.Is(perr, http.ErrNotMultipart):
			// A plain urlencoded post without an image. The form values are
			// already parsed at this point, so just continue; FormFile below
			// will find nothing.
		default:
			httpx.JSONError(w, http.StatusBadRequest, httpx.CodeInvalidForm, nil)
			return
		}
	}
	if cerr := auth.VerifyCSRF(r); cerr != nil {
		http.Error(w, cerr.Error(), http.StatusForbidden)
		return
	}

	f := forms.NewPost(r.PostForm)
	filename := ""
	if file, header, ferr := r.FormFile("image"); ferr == nil {
		defer file.Close()
		filename, ferr = h.Uploads.Save(file, header.Filename)
		if errors.Is(ferr, ErrBadExtension) {
			SetFlash(w, flashError, "Only jpeg, jpg, png, img and data files are allowed.")
			http.Redirect(w, r, "/stream/"+username, statusSeeOther)
			return
		}
		if ferr != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
	}
	if f.Content == "" && filename == "" {
		SetFlash(w, flashWarning, "A post needs some content or an image.")
		http.Redirect(w, r, "/stream/"+username, statusSeeOther)
		return
	}
	if _, perr := h.Feed.CreatePost(author.ID, f.Content, filename); perr != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/stream/"+username, statusSeeOther)
}
