package window

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLogger(prefix string, debug bool) (*DefaultLogger, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	l := NewDefaultLogger(prefix, debug)
	l.out = log.New(&out, "", 0)
	l.err = log.New(&errOut, "", 0)
	return l, &out, &errOut
}

func TestDefaultLogger(t *testing.T) {
	l, out, errOut := captureLogger("win", false)

	l.Debugf("hidden %d", 1)
	assert.Empty(t, out.String())

	l.SetDebug(true)
	assert.True(t, l.DebugEnabled())
	l.Debugf("shown %d", 2)
	l.Infof("info")
	l.Warnf("warn")
	l.Errorf("error")

	assert.Equal(t, "[win] DEBUG: shown 2\n[win] INFO: info\n", out.String())
	assert.Equal(t, "[win] WARN: warn\n[win] ERROR: error\n", errOut.String())
}

func TestWindowLoggerTag(t *testing.T) {
	l, out, _ := captureLogger("", true)
	wl := windowLogger{Logger: l, tag: "window 1234abcd: "}

	wl.Infof("Created %s window", BackendHeadless)
	assert.Equal(t, "INFO: window 1234abcd: Created headless window\n", out.String())
	assert.True(t, wl.DebugEnabled())
}

func TestWindowLogsThroughDescLogger(t *testing.T) {
	l, out, _ := captureLogger("test", false)
	w, err := New(WindowDesc{Width: 10, Height: 10, Title: "logged", Backend: BackendHeadless, Logger: l})
	assert.NoError(t, err)
	w.Destroy()

	assert.Contains(t, out.String(), w.ID().String()[:8])
	assert.Contains(t, out.String(), "Created headless window (10x10) 'logged'")
	assert.Contains(t, out.String(), "Destroyed headless window")
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.SetDebug(true)
	assert.False(t, l.DebugEnabled())
	l.Errorf("dropped")
}
