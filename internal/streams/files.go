package streams

import (
	"github.com/pkg/errors"
	"os"
	"time"
)

// StandardStream is the name which selects stdin / stdout instead of a file
const StandardStream = "-"

// standardFile wraps stdin / stdout. Closing it is a no-op, as the process still owns the
// descriptor.
type standardFile struct {
	*os.File
}

func (s *standardFile) Close() error {
	return nil
}

// streamInfo describes a stream which cannot be stat-ed: a named pipe of unknown size
type streamInfo struct {
	name string
}

func (s *streamInfo) Name() string       { return s.name }
func (s *streamInfo) Size() int64        { return -1 }
func (s *streamInfo) Mode() os.FileMode  { return os.ModeNamedPipe }
func (s *streamInfo) ModTime() time.Time { return time.Time{} }
func (s *streamInfo) IsDir() bool        { return false }
func (s *streamInfo) Sys() interface{}   { return nil }

// OpenInput opens the file for reading. StandardStream opens the standard input.
func OpenInput(name string) (*NamedReader, error) {
	if name == "" || name == StandardStream {
		return NewNamedReader(&standardFile{File: os.Stdin}, "stdin"), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if fi, err := f.Stat(); err != nil {
		_ = f.Close()
		return nil, errors.WithStack(err)
	} else if fi.IsDir() {
		_ = f.Close()
		return nil, errors.Errorf("%v is a directory", name)
	}
	return NewNamedReader(f, name), nil
}

// OpenOutput creates or truncates the file for writing. StandardStream opens the standard output.
func OpenOutput(name string, perm os.FileMode) (*NamedWriter, error) {
	if name == "" || name == StandardStream {
		return NewNamedWriter(&standardFile{File: os.Stdout}, "stdout"), nil
	}
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return NewNamedWriter(f, name), nil
}
