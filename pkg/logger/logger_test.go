package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelsAndFormatting(t *testing.T) {
	require.NoError(t, Initialize("info", false))
	var buf bytes.Buffer
	SetOutput(&buf)

	Info("loaded %d transmissions", 3)
	Debug("hidden %s", "detail")
	Error("persist failed: %v", "disk full")

	out := buf.String()
	assert.Contains(t, out, `"level":"info"`)
	assert.Contains(t, out, "loaded 3 transmissions")
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, "persist failed: disk full")
	assert.NotContains(t, out, "hidden")
}

func TestDebugLevelEnablesDebug(t *testing.T) {
	require.NoError(t, Initialize("debug", false))
	var buf bytes.Buffer
	SetOutput(&buf)

	Debug("tick %d", 1)
	assert.Contains(t, buf.String(), "tick 1")
}

func TestInitializeRejectsUnknownLevel(t *testing.T) {
	assert.Error(t, Initialize("chatty", false))
}
