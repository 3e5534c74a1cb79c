// Package artifact manages the per-request scratch files of the pipeline.
package artifact

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	dErrors "retireplan/pkg/domain-errors"
)

// File names inside a set directory.
const (
	ChartFile  = "chart.png"
	ReportFile = "retirement_report.pdf"
)

// Store hands out request-scoped artifact sets under a base directory.
type Store struct {
	baseDir       string
	retainReports bool
}

// Option configures a Store.
type Option func(*Store)

// WithRetainReports keeps report files after Release.
func WithRetainReports(retain bool) Option {
	return func(s *Store) {
		s.retainReports = retain
	}
}

// NewStore creates the base directory if needed. An empty baseDir places it
// under the system temp directory.
func NewStore(baseDir string, opts ...Option) (*Store, error) {
	if baseDir == "" {
		baseDir = filepath.Join(os.TempDir(), "retireplan")
	}
	if err := os.MkdirAll(baseDir, 0o700); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeStorage, "failed to create artifact directory")
	}
	s := &Store{baseDir: baseDir}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// BaseDir returns the directory holding all sets.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// RetainsReports reports whether Release keeps report files.
func (s *Store) RetainsReports() bool {
	return s.retainReports
}

// Writable checks that a set could be created right now.
func (s *Store) Writable() error {
	f, err := os.CreateTemp(s.baseDir, ".probe-*")
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeStorage, "artifact directory not writable")
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}

// Open creates the directory for set id. The id must be a single path
// element and must not already be in use.
func (s *Store) Open(id string) (*Set, error) {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) || strings.ContainsRune(id, 0) {
		return nil, dErrors.New(dErrors.CodeStorage, "invalid artifact set id")
	}
	dir := filepath.Join(s.baseDir, id)
	if err := os.Mkdir(dir, 0o700); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeStorage, "failed to create artifact set")
	}
	return &Set{id: id, dir: dir, retainReport: s.retainReports}, nil
}

// Set is the scratch space of one request.
type Set struct {
	id           string
	dir          string
	retainReport bool
}

// ID returns the set identifier.
func (s *Set) ID() string { return s.id }

// Dir returns the set directory.
func (s *Set) Dir() string { return s.dir }

// ChartPath is where the chart image is written.
func (s *Set) ChartPath() string { return filepath.Join(s.dir, ChartFile) }

// ReportPath is where the report document is written.
func (s *Set) ReportPath() string { return filepath.Join(s.dir, ReportFile) }

// RemoveChart deletes the chart image. A missing chart is not an error.
func (s *Set) RemoveChart() error {
	return removeIfExists(s.ChartPath())
}

// Release removes the report unless reports are retained, then the set
// directory once it is empty. Safe to call more than once.
func (s *Set) Release() error {
	if !s.retainReport {
		if err := removeIfExists(s.ReportPath()); err != nil {
			return err
		}
	}
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeStorage, "failed to inspect artifact set")
	}
	if len(entries) > 0 {
		return nil
	}
	return removeIfExists(s.dir)
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return dErrors.Wrap(err, dErrors.CodeStorage, "failed to remove artifact")
	}
	return nil
}
