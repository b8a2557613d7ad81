// Package fsstore implements storage.Store on top of a local directory.
package fsstore

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"revwhois/pkg/domain"
	"revwhois/pkg/logger"
	"revwhois/pkg/storage"
	"sort"
	"strings"

	"go.uber.org/zap"
)

const (
	dirMode  = 0o755
	fileMode = 0o644
)

// FS stores every file directly inside one directory. The directory is
// created on the first write.
type FS struct {
	dir string
}

// Ensure FS conforms to the storage.Store interface at compile time.
var _ storage.Store = (*FS)(nil)

// New returns a store rooted at dir. Nothing is touched on disk until the
// first write.
func New(dir string) *FS {
	return &FS{dir: filepath.Clean(dir)}
}

// Location returns the directory backing the store.
func (s *FS) Location() string { return s.dir }

func (s *FS) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", storage.ErrInvalidName, name)
	}

	return filepath.Join(s.dir, name), nil
}

// SaveResult implements storage.ResultStore.
func (s *FS) SaveResult(ctx context.Context, name string, body []byte) (string, error) {
	if !strings.HasSuffix(name, domain.ResultSuffix) {
		return "", fmt.Errorf("%w: %q", storage.ErrNotResult, name)
	}
	p, err := s.path(name)
	if err != nil {
		return "", err
	}
	if err := s.write(p, body); err != nil {
		return "", fmt.Errorf("could not save result: %w", err)
	}
	logger.Debug(ctx, "result saved", zap.String("path", p), zap.Int("bytes", len(body)))

	return p, nil
}

// ResultFiles implements storage.ResultStore. Only regular files carrying the
// result suffix are listed.
func (s *FS) ResultFiles(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not list results: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.Type().IsRegular() || !strings.HasSuffix(e.Name(), domain.ResultSuffix) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	return names, nil
}

// ReadResult implements storage.ResultStore.
func (s *FS) ReadResult(_ context.Context, name string) ([]byte, error) {
	p, err := s.path(name)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("could not read result: %w", err)
	}

	return b, nil
}

// WriteDomains implements storage.DomainWriter.
func (s *FS) WriteDomains(ctx context.Context, domains []string) (string, error) {
	var buf bytes.Buffer
	for _, d := range domains {
		buf.WriteString(d)
		buf.WriteByte('\n')
	}

	p := filepath.Join(s.dir, storage.DomainsFile)
	if err := s.write(p, buf.Bytes()); err != nil {
		return "", fmt.Errorf("could not write domains: %w", err)
	}
	logger.Debug(ctx, "domains written", zap.String("path", p), zap.Int("count", len(domains)))

	return p, nil
}

// WriteDomainsCSV implements storage.DomainWriter.
func (s *FS) WriteDomainsCSV(ctx context.Context, domains []string) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"domain"}); err != nil {
		return "", fmt.Errorf("could not encode csv header: %w", err)
	}
	for _, d := range domains {
		if err := w.Write([]string{d}); err != nil {
			return "", fmt.Errorf("could not encode csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("could not encode csv: %w", err)
	}

	p := filepath.Join(s.dir, storage.DomainsCSVFile)
	if err := s.write(p, buf.Bytes()); err != nil {
		return "", fmt.Errorf("could not write domains csv: %w", err)
	}
	logger.Debug(ctx, "domains csv written", zap.String("path", p), zap.Int("count", len(domains)))

	return p, nil
}

// write replaces p atomically: the content goes to a temporary file in the
// same directory which is then renamed over p.
func (s *FS) write(p string, content []byte) error {
	if err := os.MkdirAll(s.dir, dirMode); err != nil {
		return fmt.Errorf("could not create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("could not create temp file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("could not write temp file: %w", err)
	}
	if err := tmp.Chmod(fileMode); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("could not chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		return fmt.Errorf("could not rename temp file: %w", err)
	}

	return nil
}
