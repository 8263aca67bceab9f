package logging

import (
	"github.com/sirupsen/logrus"
	"path"
	"runtime"
	"strings"
)

const logrusPackage = "github.com/sirupsen/logrus."

// ContextHook will add go source information (file, line, func) of the log call
type ContextHook struct{}

// Levels defines which logging levels fire the hook. In our case, all levels.
func (hook ContextHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire walks up the call stack past the logrus frames and records the first caller outside of it
func (hook ContextHook) Fire(entry *logrus.Entry) error {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, logrusPackage) && !strings.Contains(frame.Function, "ContextHook") {
			entry.Data["file"] = path.Base(frame.File)
			entry.Data["line"] = frame.Line
			entry.Data["func"] = path.Base(frame.Function)
			return nil
		}
		if !more {
			return nil
		}
	}
}
