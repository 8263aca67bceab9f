package session

import (
	"context"
	"github.com/bokysan/b64stream/internal/streams"
	"github.com/bokysan/b64stream/internal/util/enc"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
	"path/filepath"
)

// OutputMode is the permission of output files created by ConvertFiles
const OutputMode os.FileMode = 0644

// ConvertFiles runs a session from the input file to the output file, creating or truncating
// the output. streams.StandardStream ("-") selects stdin and stdout. Both files are closed when
// done, and the output file is synced to disk on success.
func ConvertFiles(ctx context.Context, mode Mode, input, output string, opts ...Option) (stats Stats, err error) {
	if sameFile(input, output) {
		return stats, errors.Wrapf(enc.ErrInvalidArgument, "cannot convert %v in place", input)
	}

	in, err := streams.OpenInput(input)
	if err != nil {
		return stats, errors.Wrapf(ErrIO, "could not open %v: %v", input, err)
	}
	out, err := streams.OpenOutput(output, OutputMode)
	if err != nil {
		_ = streams.LogClose(in)
		return stats, errors.Wrapf(ErrIO, "could not create %v: %v", output, err)
	}
	defer func() {
		if cerr := streams.CloseAll(in, out); cerr != nil && err == nil {
			err = errors.Wrapf(ErrIO, "%v", cerr)
		}
	}()

	s, err := New(mode, in, out, opts...)
	if err != nil {
		return stats, err
	}
	log.Debugf("[Session] Converting %v", s)

	_, err = s.Run(ctx)
	stats = s.Stats()
	if err != nil {
		return stats, err
	}

	if output != "" && output != streams.StandardStream {
		if err := out.Sync(); err != nil {
			return stats, errors.Wrapf(ErrIO, "could not sync %v: %v", out, err)
		}
	}
	return stats, nil
}

func sameFile(input, output string) bool {
	if input == "" || input == streams.StandardStream || output == "" || output == streams.StandardStream {
		return false
	}
	if filepath.Clean(input) == filepath.Clean(output) {
		return true
	}
	a, err := os.Stat(input)
	if err != nil {
		return false
	}
	b, err := os.Stat(output)
	if err != nil {
		return false
	}
	return os.SameFile(a, b)
}
