package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	SetTestOutput(&buf)
	defer UnsetTestOutput()

	InitLogger("info", true)

	Debug("hidden debug message")
	Info("visible info message", Fields{"source": "test"})

	out := buf.String()
	assert.NotContains(t, out, "hidden debug message")
	assert.Contains(t, out, "visible info message")
	assert.Contains(t, out, "source=test")
}

func TestLoggerDebugEnabled(t *testing.T) {
	var buf bytes.Buffer
	SetTestOutput(&buf)
	defer UnsetTestOutput()

	InitLogger("debug", true)

	Debugf("processing %d sources", 3)
	assert.Contains(t, buf.String(), "processing 3 sources")
}

func TestLoggerUnknownLevelFallsBack(t *testing.T) {
	var buf bytes.Buffer
	SetTestOutput(&buf)
	defer UnsetTestOutput()

	InitLogger("bogus", true)

	Warnf("rate limit low: %d", 12)
	assert.Contains(t, buf.String(), "rate limit low: 12")
}

func TestLoggerNoColorSelectsTextFormat(t *testing.T) {
	var buf bytes.Buffer
	SetTestOutput(&buf)
	defer UnsetTestOutput()

	InitLogger("info", false)
	Warn("rich warning", Fields{"source": "test"})
	assert.Contains(t, buf.String(), `"msg":"rich warning"`)

	buf.Reset()
	InitLogger("info", true)
	Warn("plain warning", Fields{"source": "test"})
	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "source=test")
}
