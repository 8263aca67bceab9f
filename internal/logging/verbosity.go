package logging

import (
	log "github.com/sirupsen/logrus"
	"strings"
)

// SetVerbosity sets the log level from the number of -v flags: none logs panics only, six or more
// log everything down to trace.
func SetVerbosity(v []bool) {
	level := log.Level(len(v))
	if level > log.TraceLevel {
		level = log.TraceLevel
	}
	log.SetLevel(level)
}

// VerbosityName returns the current log level in upper case, e.g. "DEBUG"
func VerbosityName() string {
	level := log.GetLevel()
	if level == log.WarnLevel {
		return "WARN"
	}
	return strings.ToUpper(level.String())
}
