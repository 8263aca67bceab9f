package it

import (
	"bytes"
	"context"
	"github.com/bokysan/b64stream/internal/session"
	"github.com/bokysan/b64stream/internal/streams"
	"github.com/bokysan/b64stream/internal/util/buffers"
	"github.com/bokysan/b64stream/internal/util/enc"
	"github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

var pool = buffers.NewPool(buffers.BufferSize, buffers.MaxChunkSize)

func TestMain(m *testing.M) {
	log.SetLevel(log.TraceLevel)

	code := m.Run()

	log.Infof("Tests complete, %d buffers outstanding", pool.Outstanding())
	if code == 0 && pool.Outstanding() != 0 {
		code = 1
	}
	os.Exit(code)
}

func randomFile(t *testing.T, dir string, size int) (string, []byte) {
	data := make([]byte, size)
	rand.New(rand.NewSource(int64(size))).Read(data)
	name := filepath.Join(dir, "data.bin")
	require.NoError(t, ioutil.WriteFile(name, data, 0644))
	return name, data
}

// Test_Pipe encodes a file into a pipe while the other end of the pipe is decoded at the same
// time, exactly like `b64stream encode < file | b64stream decode`.
func Test_Pipe(t *testing.T) {
	dir, err := ioutil.TempDir("", "it")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	name, data := randomFile(t, dir, 100*1024+1)
	in, err := streams.OpenInput(name)
	require.NoError(t, err)

	r, w, err := os.Pipe()
	require.NoError(t, err)
	reader := streams.NewNamedReader(r, "pipe-reader")
	writer := streams.NewNamedWriter(w, "pipe-writer")

	var errs error
	var m sync.Mutex
	var wg sync.WaitGroup
	wg.Add(2)

	var encoded session.Stats
	go func() {
		defer wg.Done()
		defer streams.CloseAll(in, writer)
		s, err := session.New(session.Encode, in, writer, session.WithPool(pool), session.WithSeparator(enc.NewSeparator("\r\n", 76)))
		if err == nil {
			_, err = s.Run(context.Background())
			encoded = s.Stats()
		}
		if err != nil {
			m.Lock()
			errs = multierror.Append(errs, err)
			m.Unlock()
		}
	}()

	out := &bytes.Buffer{}
	var decoded session.Stats
	go func() {
		defer wg.Done()
		defer streams.CloseAll(reader)
		s, err := session.New(session.Decode, reader, out, session.WithPool(pool), session.WithChunkSize(77))
		if err == nil {
			_, err = s.Run(context.Background())
			decoded = s.Stats()
		}
		if err != nil {
			m.Lock()
			errs = multierror.Append(errs, err)
			m.Unlock()
		}
	}()

	wg.Wait()
	require.NoError(t, errs)
	require.Equal(t, data, out.Bytes())
	require.Equal(t, encoded.Digest, decoded.Digest)
	require.Equal(t, encoded.Written, decoded.Read)
	require.Equal(t, int64(len(data)), decoded.Written)
}

// Test_RoundTripFiles converts files on disk with every combination of chunk sizes
func Test_RoundTripFiles(t *testing.T) {
	dir, err := ioutil.TempDir("", "it")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	name, data := randomFile(t, dir, 4099)
	encoded := filepath.Join(dir, "data.b64")
	decoded := filepath.Join(dir, "data.out")

	for _, encodeChunk := range []int{1, 2, 3, 768, 5000} {
		for _, decodeChunk := range []int{1, 4, 5, 512} {
			_, err := session.ConvertFiles(context.Background(), session.Encode, name, encoded,
				session.WithPool(pool), session.WithChunkSize(encodeChunk), session.WithSeparator(enc.NewSeparator("\n", 64)))
			require.NoError(t, err)

			_, err = session.ConvertFiles(context.Background(), session.Decode, encoded, decoded,
				session.WithPool(pool), session.WithChunkSize(decodeChunk))
			require.NoError(t, err)

			res, err := ioutil.ReadFile(decoded)
			require.NoError(t, err)
			require.Equal(t, data, res, "Encode chunk %d, decode chunk %d", encodeChunk, decodeChunk)
		}
	}
}
