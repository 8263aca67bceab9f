package logging

import (
	"bytes"
	"encoding/json"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_SetVerbosity(t *testing.T) {
	level := logrus.GetLevel()
	defer logrus.SetLevel(level)

	SetVerbosity(nil)
	require.Equal(t, logrus.PanicLevel, logrus.GetLevel())
	require.Equal(t, "PANIC", VerbosityName())

	SetVerbosity([]bool{true, true, true, true})
	require.Equal(t, logrus.InfoLevel, logrus.GetLevel())
	require.Equal(t, "INFO", VerbosityName())

	SetVerbosity(make([]bool, 10))
	require.Equal(t, logrus.TraceLevel, logrus.GetLevel())
	require.Equal(t, "TRACE", VerbosityName())
}

func Test_NewFormatter(t *testing.T) {
	_, ok := NewFormatter("json", "auto", false).(*logrus.JSONFormatter)
	require.True(t, ok, "Expected a JSON formatter")

	text, ok := NewFormatter("text", " YES ", true).(*logrus.TextFormatter)
	require.True(t, ok, "Expected a text formatter")
	require.True(t, text.ForceColors)
	require.False(t, text.DisableColors)
	require.True(t, text.FullTimestamp)

	text = NewFormatter("text", "false", false).(*logrus.TextFormatter)
	require.True(t, text.DisableColors)
}

func Test_ContextHook(t *testing.T) {
	out := &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.AddHook(&ContextHook{})

	logger.WithField("test", true).Info("Hello")

	entry := make(map[string]interface{})
	require.NoError(t, json.Unmarshal(out.Bytes(), &entry))
	require.Equal(t, "verbosity_test.go", entry["file"])
	require.Equal(t, "logging.Test_ContextHook", entry["func"])
}
