package server

import (
	"context"
	"net/http"

	"gorm.io/gorm"

	"github.com/diewo77/go-social/auth"
	"github.com/diewo77/go-social/gate"
	"github.com/diewo77/go-social/httpx"
	"github.com/diewo77/go-social/internal/config"
	"github.com/diewo77/go-social/internal/handlers"
)

// New constructs the root http.Handler with all routes and middlewares
// applied. Every route declares its access level here; the gate middleware
// evaluates it instead of an allow-list of route names.
func New(db *gorm.DB, cfg config.Config) http.Handler {
	g := gate.New[auth.Session](gate.PolicyFunc[auth.Session](
		func(_ context.Context, s auth.Session, level gate.Level) bool {
			return level == gate.LevelPublic || s.Authenticated
		}))

	mux := http.NewServeMux()

	// --- Health endpoints ---
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if err := db.Exec("SELECT 1").Error; err != nil {
			httpx.JSONError(w, http.StatusServiceUnavailable, httpx.CodeDegraded, nil)
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	idx := handlers.NewIndexHandler(db)
	stream := handlers.NewStreamHandler(db, cfg)
	comments := handlers.NewCommentsHandler(db)
	friends := handlers.NewFriendsHandler(db)
	profile := handlers.NewProfileHandler(db)
	uploads := handlers.NewUploadHandler(cfg)

	routes := []struct {
		pattern string
		level   gate.Level
		handler http.Handler
	}{
		{"/{$}", gate.LevelPublic, auth.CSRF(http.HandlerFunc(idx.Handle))},
		// The stream handler verifies CSRF itself after its size-capped
		// multipart parse.
		{"/stream/{username}", gate.LevelProtected, http.HandlerFunc(stream.Handle)},
		{"/comments/{username}/{postID}", gate.LevelProtected, auth.CSRF(http.HandlerFunc(comments.Handle))},
		{"/friends/{username}", gate.LevelProtected, auth.CSRF(http.HandlerFunc(friends.Handle))},
		{"/profile/{username}", gate.LevelProtected, auth.CSRF(http.HandlerFunc(profile.Handle))},
		{"/uploads/{filename}", gate.LevelProtected, http.HandlerFunc(uploads.Handle)},
		{"/logout", gate.LevelProtected, auth.CSRF(http.HandlerFunc(handlers.Logout))},
	}
	for _, rt := range routes {
		mux.Handle(rt.pattern, protect(g, rt.level, rt.handler))
	}

	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	return auth.Middleware(mux)
}

// protect redirects anonymous requests away from protected routes with a
// warning flash.
func protect(g *gate.Gate[auth.Session], level gate.Level, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := auth.FromContext(r.Context())
		if !g.Allows(r.Context(), sess, level) {
			handlers.SetFlash(w, "warning", "Please log in to access this page.")
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
