package streams

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
)

// LogClose will close the stream and log if closing fails
func LogClose(closer io.Closer) error {
	if closer == nil {
		return nil
	}

	if c, ok := closer.(Closed); ok {
		if c.Closed() {
			return nil
		}
	}

	if err := closer.Close(); err != nil {
		err = errors.WithStack(err)
		log.WithError(err).Errorf("Could not close: %v", err)
		return err
	}
	return nil
}

// CloseAll closes all the given streams, even if some of them fail, and returns the combined
// errors. Nil closers are skipped.
func CloseAll(closers ...io.Closer) error {
	var errs error
	for _, c := range closers {
		if c == nil {
			continue
		}
		if err := LogClose(c); err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "Could not close %v", c))
		}
	}
	return errs
}
