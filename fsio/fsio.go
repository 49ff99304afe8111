// Package fsio abstracts the file operations the table layer depends on.
//
// The table model treats file access as an externally owned service: it never
// retries, and it surfaces failures as-is. Production code uses OS; tests and
// embedded data use Mem.
package fsio

import (
	"fmt"
	"os"

	"github.com/arloliu/csvtable/errs"
)

// FileSystem is the capability the table layer consumes for file access.
//
// WriteFile refuses to replace an existing file unless overwrite is set,
// reporting errs.ErrFileExists. All reads and writes are whole-file and
// binary; no newline translation is performed.
type FileSystem interface {
	// Exists reports whether path names an existing file.
	Exists(path string) bool

	// Size returns the size of the file at path in bytes.
	Size(path string) (int64, error)

	// ReadFile returns the entire contents of the file at path.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to path, creating the file. An existing path is
	// an error unless overwrite is set.
	WriteFile(path string, data []byte, overwrite bool) error
}

// OS is the FileSystem backed by the real filesystem.
type OS struct{}

var _ FileSystem = OS{}

func (OS) Exists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}

func (OS) Size(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("%w: %s", errs.ErrFileNotFound, path)
		}

		return 0, err
	}

	return info.Size(), nil
}

func (OS) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", errs.ErrFileNotFound, path)
		}

		return nil, err
	}

	return data, nil
}

func (fs OS) WriteFile(path string, data []byte, overwrite bool) error {
	if !overwrite && fs.Exists(path) {
		return fmt.Errorf("%w: %s", errs.ErrFileExists, path)
	}

	return os.WriteFile(path, data, 0o644)
}

// Mem is a map-backed FileSystem for tests and embedded table data.
//
// The zero value is not usable; construct with NewMem. Mem is not safe for
// concurrent use, matching the single-threaded table contract.
type Mem struct {
	files map[string][]byte
}

var _ FileSystem = (*Mem)(nil)

// NewMem creates an empty in-memory filesystem.
func NewMem() *Mem {
	return &Mem{files: make(map[string][]byte)}
}

// Put stores data at path, replacing any previous contents.
func (m *Mem) Put(path string, data []byte) {
	m.files[path] = append([]byte(nil), data...)
}

func (m *Mem) Exists(path string) bool {
	_, ok := m.files[path]

	return ok
}

func (m *Mem) Size(path string) (int64, error) {
	data, ok := m.files[path]
	if !ok {
		return 0, fmt.Errorf("%w: %s", errs.ErrFileNotFound, path)
	}

	return int64(len(data)), nil
}

func (m *Mem) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrFileNotFound, path)
	}

	// Copy so destructive parsing never mutates the stored file.
	return append([]byte(nil), data...), nil
}

func (m *Mem) WriteFile(path string, data []byte, overwrite bool) error {
	if _, ok := m.files[path]; ok && !overwrite {
		return fmt.Errorf("%w: %s", errs.ErrFileExists, path)
	}

	m.Put(path, data)

	return nil
}
