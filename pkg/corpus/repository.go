package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Repository owns the raw-data directory tree. Layout is always two levels
// deep under the configured root: politician, then category. Independent
// politician subtrees never interfere with one another.
type Repository struct {
	root string
}

// NewRepository creates a repository rooted at the given directory. The root
// itself is created lazily by the first EnsureCategoryDir call.
func NewRepository(root string) *Repository {
	return &Repository{root: root}
}

// Root returns the repository's root directory.
func (r *Repository) Root() string {
	return r.root
}

// PoliticianDir returns the directory holding one politician's categories.
func (r *Repository) PoliticianDir(politician string) string {
	return filepath.Join(r.root, politician)
}

// Path returns the full path of one speech file.
func (r *Repository) Path(politician, category, filename string) string {
	return filepath.Join(r.root, politician, category, filename)
}

// EnsureCategoryDir idempotently creates <root>/<politician>/<category>.
// Creation is mkdir -p semantics, so racing across independent politician
// subtrees is safe.
func (r *Repository) EnsureCategoryDir(politician, category string) error {
	dir := filepath.Join(r.root, politician, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create category directory %s: %w", dir, err)
	}
	return nil
}

// WriteText writes text as UTF-8 to <root>/<politician>/<category>/<filename>,
// overwriting any existing file. Writes are whole-file overwrites; a crash
// mid-write can corrupt one file, which is acceptable because every file is
// re-fetchable.
func (r *Repository) WriteText(politician, category, filename, text string) error {
	path := r.Path(politician, category, filename)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// SanitizeFilename strips characters invalid on common filesystems:
// < > : " / \ | ? *. It does not trim whitespace or collapse repeated
// spaces.
func SanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', ':', '"', '/', '\\', '|', '?', '*':
			return -1
		}
		return r
	}, name)
}
