package session

import (
	"context"
	"github.com/bokysan/b64stream/internal/util/enc"
	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func Test_ConvertFiles(t *testing.T) {
	dir, err := ioutil.TempDir("", "session")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	data := randomBytes(5000)
	raw := filepath.Join(dir, "data.bin")
	encoded := filepath.Join(dir, "data.b64")
	decoded := filepath.Join(dir, "data.out")
	require.NoError(t, ioutil.WriteFile(raw, data, 0644))

	stats, err := ConvertFiles(context.Background(), Encode, raw, encoded, WithSeparator(enc.NewSeparator("\n", 76)))
	require.NoError(t, err)
	require.Equal(t, int64(len(data)), stats.Read)
	require.Equal(t, xxhash.Sum64(data), stats.Digest)
	require.Equal(t, 7, stats.Chunks, "5000 bytes in chunks of 768")

	text, err := ioutil.ReadFile(encoded)
	require.NoError(t, err)
	require.Equal(t, int64(len(text)), stats.Written)
	require.Equal(t, enc.EncodedLen(len(data), enc.NewSeparator("\n", 76)), len(text))

	stats, err = ConvertFiles(context.Background(), Decode, encoded, decoded)
	require.NoError(t, err)
	require.Equal(t, xxhash.Sum64(data), stats.Digest)

	res, err := ioutil.ReadFile(decoded)
	require.NoError(t, err)
	require.Equal(t, data, res)
}

func Test_ConvertFiles_Errors(t *testing.T) {
	dir, err := ioutil.TempDir("", "session")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "data.b64")
	require.NoError(t, ioutil.WriteFile(name, []byte("TWF"), 0644))

	_, err = ConvertFiles(context.Background(), Decode, name, name)
	require.True(t, errors.Is(err, enc.ErrInvalidArgument), "Unexpected error: %v", err)

	_, err = ConvertFiles(context.Background(), Decode, filepath.Join(dir, "missing"), filepath.Join(dir, "out"))
	require.True(t, errors.Is(err, ErrIO), "Unexpected error: %v", err)

	_, err = ConvertFiles(context.Background(), Decode, name, filepath.Join(dir, "missing", "out"))
	require.True(t, errors.Is(err, ErrIO), "Unexpected error: %v", err)

	_, err = ConvertFiles(context.Background(), Decode, name, filepath.Join(dir, "out"))
	require.True(t, errors.Is(err, enc.ErrMalformedInput), "Unexpected error: %v", err)
}
