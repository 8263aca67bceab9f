package encode

import (
	"encoding/base64"
	"github.com/bokysan/b64stream/internal/util/enc"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func tempDir(t *testing.T) (string, func()) {
	dir, err := ioutil.TempDir("", "encode")
	require.NoError(t, err)
	return dir, func() {
		_ = os.RemoveAll(dir)
	}
}

func Test_Command_File(t *testing.T) {
	dir, cleanup := tempDir(t)
	defer cleanup()

	data := make([]byte, 1000)
	for i := range data {
		data[i] = byte(i * 7)
	}
	input := filepath.Join(dir, "in.bin")
	require.NoError(t, ioutil.WriteFile(input, data, 0644))

	cmd := NewCommand()
	cmd.Input = input
	cmd.Output = filepath.Join(dir, "out.txt")
	cmd.Separator = `\r\n`
	cmd.ChunkSize = 100
	require.NoError(t, cmd.Execute(nil))

	res, err := ioutil.ReadFile(cmd.Output)
	require.NoError(t, err)
	lines := strings.Split(string(res), "\r\n")
	require.Len(t, lines[0], 76)
	require.Equal(t, base64.StdEncoding.EncodeToString(data), strings.Join(lines, ""))
}

func Test_Command_NoWrap(t *testing.T) {
	dir, cleanup := tempDir(t)
	defer cleanup()

	input := filepath.Join(dir, "in.bin")
	require.NoError(t, ioutil.WriteFile(input, []byte(strings.Repeat("Man", 100)), 0644))

	cmd := NewCommand()
	cmd.Input = input
	cmd.Output = filepath.Join(dir, "out.txt")
	cmd.Columns = 0
	require.NoError(t, cmd.Execute(nil))

	res, err := ioutil.ReadFile(cmd.Output)
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("TWFu", 100), string(res))
}

func Test_Command_Literals(t *testing.T) {
	dir, cleanup := tempDir(t)
	defer cleanup()

	cmd := NewCommand()
	cmd.Output = filepath.Join(dir, "out.txt")
	cmd.Columns = 4
	cmd.Literals.Data = []string{"Man", "Ma", "ManMa"}
	require.NoError(t, cmd.Execute(nil))

	res, err := ioutil.ReadFile(cmd.Output)
	require.NoError(t, err)
	require.Equal(t, "TWFu\nTWE=\nTWFu\nTWE=\n", string(res))
}

func Test_Command_InvalidArguments(t *testing.T) {
	cmd := NewCommand()
	cmd.Columns = -1
	err := cmd.Execute(nil)
	require.True(t, errors.Is(err, enc.ErrInvalidArgument), "Unexpected error: %v", err)

	cmd = NewCommand()
	cmd.Separator = `\x`
	err = cmd.Execute(nil)
	require.True(t, errors.Is(err, enc.ErrInvalidArgument), "Unexpected error: %v", err)

	dir, cleanup := tempDir(t)
	defer cleanup()
	input := filepath.Join(dir, "in.bin")
	require.NoError(t, ioutil.WriteFile(input, []byte("Man"), 0644))

	cmd = NewCommand()
	cmd.Input = input
	cmd.Output = filepath.Join(dir, "out.txt")
	cmd.ChunkSize = 0
	err = cmd.Execute(nil)
	require.True(t, errors.Is(err, enc.ErrInvalidArgument), "Unexpected error: %v", err)
}
