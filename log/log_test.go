package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func capture(t *testing.T, l int64) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut := SetOutput(&buf)
	prevLevel := level.Load()
	level.Store(l)
	t.Cleanup(func() {
		SetOutput(prevOut)
		level.Store(prevLevel)
	})
	return &buf
}

func TestDebugSuppressedAtInfo(t *testing.T) {
	buf := capture(t, int64(LevelInfo))

	Debug("[menu] sector %d tapped", 3)
	require.Empty(t, buf.String())

	Info("[game] started")
	require.Equal(t, "[INFO] [game] started\n", buf.String())
}

func TestDebugEmittedAtDebug(t *testing.T) {
	buf := capture(t, int64(LevelDebug))

	Debug("[menu] sector %d tapped", 3)
	require.Equal(t, "[DEBUG] [menu] sector 3 tapped\n", buf.String())
}

func TestErrorAlwaysEmitted(t *testing.T) {
	buf := capture(t, int64(LevelError)+4)

	Warn("dropped")
	Error("[config] %v", "bad color")
	require.Equal(t, "[ERROR] [config] bad color\n", buf.String())
}

func TestSetLevel(t *testing.T) {
	capture(t, int64(LevelInfo))

	SetLevel(LevelWarn)
	require.Equal(t, LevelWarn, GetLevel())
}
