package commands

import (
	"bytes"
	"fmt"
	"github.com/bokysan/b64stream/internal/args"
	"github.com/bokysan/b64stream/internal/session"
	"github.com/bokysan/b64stream/internal/streams"
	"github.com/bokysan/b64stream/internal/util/enc"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"strconv"
)

// Unescape interprets Go escape sequences in a separator given on the command line, e.g. `\r\n`
func Unescape(s string) (string, error) {
	res, err := strconv.Unquote(`"` + s + `"`)
	if err != nil {
		return "", errors.Wrapf(enc.ErrInvalidArgument, "invalid separator %q", s)
	}
	return res, nil
}

// ConvertLiterals runs every argument through the given function and writes the results to the
// named output, each followed by the terminator unless the result already ends with it.
func ConvertLiterals(output string, literals []string, terminator string, convert func([]byte) ([]byte, error)) (err error) {
	out, err := streams.OpenOutput(output, session.OutputMode)
	if err != nil {
		return errors.Wrapf(session.ErrIO, "could not create %v: %v", output, err)
	}
	defer func() {
		if cerr := streams.CloseAll(out); cerr != nil && err == nil {
			err = errors.Wrapf(session.ErrIO, "%v", cerr)
		}
	}()

	for _, l := range literals {
		res, err := convert([]byte(l))
		if err != nil {
			return errors.Wrapf(err, "could not convert %q", l)
		}
		if !bytes.HasSuffix(res, []byte(terminator)) {
			res = append(res, terminator...)
		}
		if err := writeAll(out, res); err != nil {
			return errors.Wrapf(session.ErrIO, "could not write to %v: %v", out, err)
		}
	}
	return nil
}

func writeAll(w io.Writer, data ...[]byte) error {
	for _, d := range data {
		if _, err := w.Write(d); err != nil {
			return err
		}
	}
	return nil
}

// ReportStats prints the session statistics to stderr if requested by the general options
func ReportStats(mode session.Mode, stats session.Stats) {
	log.WithFields(log.Fields{
		"mode":    mode.String(),
		"chunks":  stats.Chunks,
		"read":    stats.Read,
		"written": stats.Written,
		"xxhash":  fmt.Sprintf("%016x", stats.Digest),
	}).Debugf("Conversion done")

	if args.General.Stats {
		_, _ = fmt.Fprintf(os.Stderr, "%v: %v\n", mode, stats)
	}
}
