// Package document discovers GraphQL operation documents on disk.
package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

var (
	// ErrNotADirectory is reported when the search root is missing or
	// is not a directory.
	ErrNotADirectory = errors.New("document: not a directory")

	// ErrNoDocumentsFound is reported when the search root holds no
	// matching files. Generating code from zero operations is meaningless,
	// so an empty set is fatal, not a no-op.
	ErrNoDocumentsFound = errors.New("document: no documents found")
)

// Set is an ordered collection of operation-document files discovered
// under a common root. It is never empty.
type Set struct {
	// Root is the directory the set was discovered under.
	Root string

	// Files are paths relative to nothing, exactly as walked. The order
	// is the filesystem walk order, which is stable for an unchanged tree.
	Files []string
}

// Len returns the number of documents in the set.
func (s *Set) Len() int { return len(s.Files) }

// Discover recursively collects every regular file under root whose name
// ends in ext. The extension may be given with or without a leading dot.
func Discover(fs afero.Fs, root, ext string) (*Set, error) {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	fi, err := fs.Stat(root)
	if err != nil || !fi.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, root)
	}

	s := &Set{Root: root}
	err = afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(info.Name(), ext) {
			return nil
		}

		s.Files = append(s.Files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("document: walking %s: %w", root, err)
	}

	if len(s.Files) == 0 {
		return nil, fmt.Errorf("%w: no *%s files under %s", ErrNoDocumentsFound, ext, root)
	}

	zap.L().Info("discovered operation documents",
		zap.String("root", root),
		zap.Int("count", len(s.Files)),
	)
	return s, nil
}

// Read returns the contents of the i-th document in the set.
func (s *Set) Read(fs afero.Fs, i int) ([]byte, error) {
	return afero.ReadFile(fs, s.Files[i])
}

// Rel returns the i-th document's path relative to the set root. It is
// used for naming generated artifacts.
func (s *Set) Rel(i int) string {
	rel, err := filepath.Rel(s.Root, s.Files[i])
	if err != nil {
		return filepath.Base(s.Files[i])
	}
	return rel
}
