package uploads

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Uploaded files (resumes, offer letters) are stored on local disk and
// referenced by URL string in the owning document.

func Dir() string {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}
	return dir
}

// StoredName returns a collision-free file name that keeps the original
// extension.
func StoredName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return uuid.NewString() + ext
}

// StoredPath is the on-disk destination for a stored name.
func StoredPath(stored string) string {
	return filepath.Join(Dir(), stored)
}

// URLFor is the reference kept in the owning document.
func URLFor(stored string) string {
	return "/uploads/" + stored
}

// EnsureDir creates the upload directory if it does not exist yet.
func EnsureDir() error {
	return os.MkdirAll(Dir(), 0o755)
}
