package handlers

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/diewo77/go-social/internal/config"
)

func TestSecureFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"cat.jpg", "cat.jpg"},
		{"my picture.png", "my_picture.png"},
		{"../../etc/passwd", "passwd"},
		{`..\..\boot.ini`, "boot.ini"},
		{"week<end>.png", "weekend.png"},
		{".hidden", "hidden"},
		{"", ""},
		{"...", ""},
	}
	for _, c := range cases {
		if got := SecureFilename(c.in); got != c.want {
			t.Errorf("SecureFilename(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func testStore(t *testing.T) *UploadStore {
	t.Helper()
	return NewUploadStore(config.Config{UploadsDir: t.TempDir(), MaxUploadBytes: 10 << 20})
}

func TestUploadStoreSave(t *testing.T) {
	s := testStore(t)
	name, err := s.Save(strings.NewReader("fake image bytes"), "holiday.jpg")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasSuffix(name, "_holiday.jpg") {
		t.Fatalf("stored name not collision-proofed: %q", name)
	}
	data, err := os.ReadFile(filepath.Join(s.Dir, name))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "fake image bytes" {
		t.Fatalf("content mismatch: %q", data)
	}
}

func TestUploadStoreRejectsExtension(t *testing.T) {
	s := testStore(t)
	for _, bad := range []string{"run.exe", "page.html", "noext", "script.js"} {
		if _, err := s.Save(strings.NewReader("x"), bad); !errors.Is(err, ErrBadExtension) {
			t.Errorf("%q: expected ErrBadExtension, got %v", bad, err)
		}
	}
	for _, ok := range []string{"a.jpg", "b.jpeg", "c.png", "d.img", "e.data", "F.JPG"} {
		if _, err := s.Save(strings.NewReader("x"), ok); err != nil {
			t.Errorf("%q: unexpected error %v", ok, err)
		}
	}
}

func TestUploadsAreCollisionProof(t *testing.T) {
	s := testStore(t)
	a, err := s.Save(strings.NewReader("one"), "same.png")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	b, err := s.Save(strings.NewReader("two"), "same.png")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if a == b {
		t.Fatalf("second upload overwrote the first: %q", a)
	}
}
