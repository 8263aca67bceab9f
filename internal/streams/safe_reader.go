package streams

import (
	"io"
	"os"
)

// SafeReader implements the io.ReadCloser and makes sure that `Close()` can be called safely multiple times.
// Calling `Close()` on a closed object will simply succeed without an error. Reading from a closed
// SafeReader returns os.ErrClosed.
type SafeReader struct {
	io.ReadCloser
	closed bool
}

func NewSafeReader(wrapped io.ReadCloser) *SafeReader {
	if scs, ok := wrapped.(*SafeReader); ok {
		return scs
	}

	return &SafeReader{
		ReadCloser: wrapped,
	}
}

func (ns *SafeReader) Read(p []byte) (int, error) {
	if ns.closed {
		return 0, os.ErrClosed
	}
	return ns.ReadCloser.Read(p)
}

func (ns *SafeReader) WriteTo(w io.Writer) (n int64, err error) {
	if ns.closed {
		return 0, os.ErrClosed
	}
	if o, ok := ns.ReadCloser.(io.WriterTo); ok {
		return o.WriteTo(w)
	} else {
		return copyBuffer(w, ns.ReadCloser)
	}
}

// Close will close the underlying stream. If the Close has already been called, it will do nothing
func (ns *SafeReader) Close() error {
	if ns.closed {
		return nil
	}
	err := LogClose(ns.ReadCloser)
	ns.closed = true

	return err
}

// Closed will return `true` if SafeReader.Close has been called at least once
func (ns *SafeReader) Closed() bool {
	return ns.closed
}

// Unwrap returns the embedded io.ReadCloser
func (ns *SafeReader) Unwrap() io.ReadCloser {
	return ns.ReadCloser
}
