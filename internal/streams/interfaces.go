package streams

import (
	"io"
	"os"
)

// Closed is an interface which defines if a method to check if a stream is closed or not
type Closed interface {
	Closed() bool
}

type ReadCloserClosed interface {
	io.ReadCloser
	Closed
}

type WriteCloserClosed interface {
	io.WriteCloser
	Closed
}

type UnwrappedReadCloser interface {
	Unwrap() io.ReadCloser
}

type UnwrappedWriteCloser interface {
	Unwrap() io.WriteCloser
}

// Stater is implemented by streams which can report their size and type, e.g. *os.File
type Stater interface {
	Stat() (os.FileInfo, error)
}

// Input is what a conversion session reads from. The session re-stats the input while reading
// to learn the size of the stream; a non-positive read ends the stream.
type Input interface {
	io.Reader
	Stater
}

// Output is what a conversion session writes to. A failed or short write aborts the session.
type Output interface {
	io.Writer
}
