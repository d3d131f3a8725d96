// Package view renders HTML templates with a shared layout. Templates live
// in a templates directory resolved relative to the working directory so the
// server can run from the repo root or a subdirectory (e.g. cmd/server).
package view

import (
	"bytes"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/diewo77/go-social/auth"
)

var (
	baseDir  string
	devMode  bool
	once     sync.Once
	tplCache = struct {
		sync.RWMutex
		m map[string]*template.Template
	}{m: map[string]*template.Template{}}
)

// SetDevMode disables the template cache so edits show up without a restart.
func SetDevMode(on bool) { devMode = on }

func detectBase() {
	candidates := []string{"templates", "../templates", "../../templates"}
	for _, c := range candidates {
		if fi, err := os.Stat(filepath.Clean(c)); err == nil && fi.IsDir() {
			baseDir = filepath.Clean(c)
			return
		}
	}
	baseDir = "templates"
}

// BaseDir returns the resolved templates directory.
func BaseDir() string {
	once.Do(detectBase)
	return baseDir
}

// Funcs returns the standard func map available to every template.
func Funcs(r *http.Request) template.FuncMap {
	sess := auth.FromContext(r.Context())
	return template.FuncMap{
		"year":     func() int { return time.Now().Year() },
		"username": func() string { return sess.Username },
		"loggedIn": func() bool { return sess.Authenticated },
		"fmtTime":  func(t time.Time) string { return t.Format("Jan 2, 2006 15:04") },
		// dict creates a map from key-value pairs for passing to sub-templates.
		// Usage: {{ template "partial" (dict "Key1" val1 "Key2" val2) }}
		"dict": func(values ...any) map[string]any {
			if len(values)%2 != 0 {
				return nil
			}
			m := make(map[string]any, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					continue
				}
				m[key] = values[i+1]
			}
			return m
		},
	}
}

func load(r *http.Request, name string) (*template.Template, error) {
	once.Do(detectBase)
	if !devMode {
		tplCache.RLock()
		if t, ok := tplCache.m[name]; ok {
			tplCache.RUnlock()
			return t, nil
		}
		tplCache.RUnlock()
	}
	t, err := template.New("layout.html").Funcs(Funcs(r)).ParseFiles(
		filepath.Join(baseDir, "layout.html"),
		filepath.Join(baseDir, name),
	)
	if err != nil {
		return nil, err
	}
	if !devMode {
		tplCache.Lock()
		tplCache.m[name] = t
		tplCache.Unlock()
	}
	return t, nil
}

// Render executes the named page template inside the shared layout. The
// output is buffered so a template error never leaves a half-written body.
func Render(w http.ResponseWriter, r *http.Request, name string, data map[string]any) error {
	if data == nil {
		data = map[string]any{}
	}
	t, err := load(r, name)
	if err != nil {
		return err
	}
	// Funcs close over the request session, so execute on a per-request
	// clone rather than mutating the cached template.
	t, err = t.Clone()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := t.Funcs(Funcs(r)).ExecuteTemplate(&buf, "layout.html", data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err = buf.WriteTo(w)
	return err
}
