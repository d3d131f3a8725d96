package handlers

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/diewo77/go-social/internal/config"
)

// ErrBadExtension is returned when an upload's extension is not allowed.
var ErrBadExtension = errors.New("file extension not allowed")

var allowedImageExt = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".img": true, ".data": true,
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// SecureFilename reduces a client-supplied filename to a safe basename:
// no path separators, no characters outside [a-zA-Z0-9._-], no dotfiles.
func SecureFilename(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	base = strings.ReplaceAll(base, " ", "_")
	base = unsafeFilenameChars.ReplaceAllString(base, "")
	base = strings.TrimLeft(base, ".")
	if base == "" || base == "_" {
		return ""
	}
	return base
}

// UploadStore writes and serves files under the uploads directory.
type UploadStore struct {
	Dir      string
	MaxBytes int64
}

func NewUploadStore(cfg config.Config) *UploadStore {
	return &UploadStore{Dir: cfg.UploadsDir, MaxBytes: cfg.MaxUploadBytes}
}

// Save stores the upload under a sanitized, collision-proofed filename and
// returns the stored name. The reader is already size-capped by the caller.
func (s *UploadStore) Save(file io.Reader, clientName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(clientName))
	if !allowedImageExt[ext] {
		return "", ErrBadExtension
	}
	name := SecureFilename(clientName)
	if name == "" {
		return "", ErrBadExtension
	}
	name = uuid.NewString()[:8] + "_" + name
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", err
	}
	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}
	return name, nil
}

// UploadHandler streams stored files back by name. Any authenticated
// session may fetch any stored filename: images are embedded in friends'
// streams, so reads cannot be limited to the uploader.
type UploadHandler struct {
	Store *UploadStore
}

func NewUploadHandler(cfg config.Config) *UploadHandler {
	return &UploadHandler{Store: NewUploadStore(cfg)}
}

func (h *UploadHandler) Handle(w http.ResponseWriter, r *http.Request) {
	name := SecureFilename(r.PathValue("filename"))
	if name == "" {
		http.NotFound(w, r)
		return
	}
	path := filepath.Join(h.Store.Dir, name)
	if fi, err := os.Stat(path); err != nil || fi.IsDir() {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, path)
}
