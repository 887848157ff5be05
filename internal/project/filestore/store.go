// Package filestore reads files into lines and writes documents back.
package filestore

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
)

// DefaultMaxFileSize is the largest file Load accepts.
const DefaultMaxFileSize = 64 * 1024 * 1024

// Store loads and saves documents on the local filesystem.
type Store struct {
	maxFileSize int64 // 0 = unlimited
	onSave      []func(path string, n int)
}

// Option configures a Store.
type Option func(*Store)

// WithMaxFileSize sets the maximum file size. Zero disables the limit.
func WithMaxFileSize(size int64) Option {
	return func(s *Store) {
		s.maxFileSize = size
	}
}

// NewStore creates a Store.
func NewStore(opts ...Option) *Store {
	s := &Store{maxFileSize: DefaultMaxFileSize}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnSave registers a handler called after every successful save.
func (s *Store) OnSave(handler func(path string, n int)) {
	s.onSave = append(s.onSave, handler)
}

// Load reads the file at path as lines. A missing file returns an error
// matching fs.ErrNotExist.
func (s *Store) Load(path string) ([][]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &PathError{Op: "open", Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &PathError{Op: "open", Path: path, Err: ErrIsDirectory}
	}
	if s.maxFileSize > 0 && info.Size() > s.maxFileSize {
		return nil, &PathError{Op: "open", Path: path, Err: ErrFileTooLarge}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &PathError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	lines, err := LoadLines(f)
	if err != nil {
		return nil, &PathError{Op: "read", Path: path, Err: err}
	}
	return lines, nil
}

// Save writes data to path and returns the number of bytes written.
func (s *Store) Save(path string, data []byte) (int, error) {
	n, err := SaveLines(path, data)
	if err != nil {
		return n, err
	}
	for _, h := range s.onSave {
		h(path, n)
	}
	return n, nil
}

// LoadLines splits r into lines. Trailing '\r' and '\n' bytes are removed
// from every line, and a final newline does not start an extra line.
func LoadLines(r io.Reader) ([][]byte, error) {
	br := bufio.NewReader(r)
	var lines [][]byte
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			lines = append(lines, bytes.TrimRight(line, "\r\n"))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// SaveLines writes data to path, creating it with mode 0644 if needed and
// truncating it to the new length. The file is written in place.
func SaveLines(path string, data []byte) (int, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return 0, &PathError{Op: "open", Path: path, Err: err}
	}

	if err := f.Truncate(int64(len(data))); err != nil {
		f.Close()
		return 0, &PathError{Op: "truncate", Path: path, Err: err}
	}
	n, err := f.Write(data)
	if err != nil {
		f.Close()
		return n, &PathError{Op: "write", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return n, &PathError{Op: "close", Path: path, Err: err}
	}
	return n, nil
}
