package schema

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// DefaultTimeout bounds a single introspection call.
const DefaultTimeout = 30 * time.Second

// Acquirer materializes schema definitions on the local filesystem.
type Acquirer struct {
	fs     afero.Fs
	client *http.Client
}

// AcquirerOption configures an Acquirer.
type AcquirerOption func(*Acquirer)

// WithClient overrides the HTTP client used for introspection calls.
func WithClient(c *http.Client) AcquirerOption {
	return func(a *Acquirer) { a.client = c }
}

// NewAcquirer returns an Acquirer reading and writing through fs.
func NewAcquirer(fs afero.Fs, opts ...AcquirerOption) *Acquirer {
	a := &Acquirer{fs: fs}

	for _, opt := range opts {
		opt(a)
	}

	if a.client == nil {
		a.client = &http.Client{Timeout: DefaultTimeout}
	}

	return a
}

// Acquire makes the schema described by src available at dest.
//
// A local source is only verified: the file must exist and be regular.
// A remote source is introspected once and the response body is written
// to dest verbatim, creating parent directories as needed. An existing
// file at dest is overwritten; that is the schema-refresh path and is
// logged, never silent.
func (a *Acquirer) Acquire(ctx context.Context, src Source, dest string) error {
	if !src.IsRemote() {
		return a.verifyLocal(src.Path)
	}

	body, err := a.fetch(ctx, src)
	if err != nil {
		return fmt.Errorf("%w: introspecting %s: %v", ErrAcquisitionFailed, src.Endpoint, err)
	}
	if len(body) == 0 {
		return fmt.Errorf("%w: %s returned an empty schema", ErrAcquisitionFailed, src.Endpoint)
	}

	if exists, _ := afero.Exists(a.fs, dest); exists {
		zap.L().Info("overwriting existing schema file", zap.String("file", dest))
	}

	if err = a.fs.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("%w: creating %s: %v", ErrAcquisitionFailed, filepath.Dir(dest), err)
	}

	if err = afero.WriteFile(a.fs, dest, body, 0644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrAcquisitionFailed, dest, err)
	}

	zap.L().Info("wrote schema file", zap.String("file", dest), zap.Int("bytes", len(body)))
	return a.verifyLocal(dest)
}

func (a *Acquirer) verifyLocal(path string) error {
	fi, err := a.fs.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrMissingSchemaFile, path)
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", ErrMissingSchemaFile, path)
	}
	return nil
}
