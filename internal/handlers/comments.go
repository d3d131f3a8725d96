package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"gorm.io/gorm"

	"github.com/diewo77/go-social/auth"
	"github.com/diewo77/go-social/httpx"
	"github.com/diewo77/go-social/internal/forms"
	"github.com/diewo77/go-social/internal/services"
)

// CommentsHandler shows a post with its comments and accepts new comments.
// Comments are authored by the session user, not the user named in the URL.
type CommentsHandler struct {
	Accounts *services.AccountService
	Feed     *services.FeedService
}

func NewCommentsHandler(db *gorm.DB) *CommentsHandler {
	return &CommentsHandler{
		Accounts: services.NewAccountService(db),
		Feed:     services.NewFeedService(db),
	}
}

func (h *CommentsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	postID64, err := strconv.ParseUint(r.PathValue("postID"), 10, 32)
	if err != nil {
		renderNotFound(w, r, "post")
		return
	}
	postID := uint(postID64)
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
		h.post(w, r, username, postID)
	case http.MethodGet:
		post, perr := h.Feed.Post(postID)
		if errors.Is(perr, services.ErrUnknownPost) {
			renderNotFound(w, r, "post")
			return
		}
		if perr != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		comments, cerr := h.Feed.Comments(postID)
		if cerr != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		render(w, r, "comments", map[string]any{
			"ProfileUser": user, "Post": post, "Comments": comments,
		})
	default:
		w.Header().Set("Allow", "GET,POST")
		httpx.JSONError(w, http.StatusMethodNotAllowed, httpx.CodeMethodNotAllowed, nil)
	}
}

func (h *CommentsHandler) post(w http.ResponseWriter, r *http.Request, username string, postID uint) {
	if err := r.ParseForm(); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, httpx.CodeInvalidForm, nil)
		return
	}
	target := "/comments/" + username + "/" + strconv.FormatUint(uint64(postID), 10)
	f := forms.NewComment(r.PostForm)
	if errs := f.Validate(); !errs.Empty() {
		SetFlash(w, flashWarning, "A comment cannot be empty.")
		http.Redirect(w, r, target, statusSeeOther)
		return
	}
	sess := auth.FromContext(r.Context())
	author, err := h.Accounts.FindByUsername(sess.Username)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if _, err := h.Feed.AddComment(postID, author.ID, f.Body); err != nil {
		if errors.Is(err, services.ErrUnknownPost) {
			renderNotFound(w, r, "post")
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, target, statusSeeOther)
}
