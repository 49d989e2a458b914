package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebug_SilentByDefault(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetVerbose(false)

	Debug("hidden %d", 1)

	assert.Empty(t, buf.String())
}

func TestDebug_PrintsWhenVerbose(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetVerbose(true)
	defer SetVerbose(false)

	Debug("edge %s -> %s", "a.ts", "b.ts")

	assert.Contains(t, buf.String(), "[DEBUG] edge a.ts -> b.ts")
}

func TestSectionAndLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetVerbose(true)
	defer SetVerbose(false)

	Section("Scan")
	Info("files: %d", 3)
	Warn("slow walk")

	out := buf.String()
	assert.Contains(t, out, "=== Scan ===")
	assert.Contains(t, out, "[INFO] files: 3")
	assert.Contains(t, out, "[WARN] slow walk")
	assert.True(t, IsVerbose())
}
