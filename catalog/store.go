package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/kjk/common/atomicfile"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Store persists the catalog as a JSON array in a single flat file. It only
// encodes, decodes and performs file I/O; all business rules live in Catalog.
type Store struct {
	path string
}

// NewStore prepares a store writing to path. It creates the parent directory
// so first-run saves succeed.
func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	return &Store{path: path}, nil
}

// Path returns the location of the backing file.
func (s *Store) Path() string { return s.path }

// Load reads the full catalog from disk. A missing file is an empty catalog,
// not an error. Unreadable or undecodable data is returned as an error; the
// caller decides whether that is fatal.
func (s *Store) Load() ([]*Book, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var books []*Book
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	for _, b := range books {
		if !b.Status.Valid() {
			return nil, fmt.Errorf("decode %s: book %d has unknown status %q", s.path, b.ID, b.Status)
		}
	}
	return books, nil
}

// Save overwrites the backing file with the full book list. The write goes
// through a temp file and rename so a crash mid-save never leaves a truncated
// catalog behind.
func (s *Store) Save(books []*Book) error {
	f, err := atomicfile.New(s.path)
	if err != nil {
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	defer f.RemoveIfNotClosed()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	// Keep non-ASCII titles and authors readable in the file.
	enc.SetEscapeHTML(false)
	if books == nil {
		books = []*Book{}
	}
	if err := enc.Encode(books); err != nil {
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	return nil
}
