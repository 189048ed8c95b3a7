package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	tests := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"INFO":    logrus.InfoLevel,
		" warn ":  logrus.WarnLevel,
		"warning": logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"trace":   logrus.TraceLevel,
		"":        logrus.WarnLevel,
		"verbose": logrus.WarnLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, GetLevel(in), "level %q", in)
	}
}

func TestSetup_WritesRotatingFile(t *testing.T) {
	t.Cleanup(func() {
		logrus.SetOutput(os.Stderr)
		logrus.SetFormatter(&logrus.TextFormatter{})
		logrus.SetLevel(logrus.InfoLevel)
	})
	base := filepath.Join(t.TempDir(), "physio")

	closer := Setup(Params{LogFileName: base, LogLevel: "info", LogFormatJSON: true})
	logrus.WithField("exercise_id", "abc").Info("logged")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(base + ".log")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"exercise_id":"abc"`)
	assert.Contains(t, string(data), `"msg":"logged"`)
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestSetup_StderrWithoutFile(t *testing.T) {
	t.Cleanup(func() { logrus.SetLevel(logrus.InfoLevel) })

	closer := Setup(Params{LogLevel: "error"})
	assert.NoError(t, closer.Close())
	assert.Equal(t, logrus.ErrorLevel, logrus.GetLevel())
	assert.Equal(t, os.Stderr, logrus.StandardLogger().Out)
}
