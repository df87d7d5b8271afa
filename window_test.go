package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHeadless(t *testing.T, width, height uint32) *Window {
	t.Helper()
	w, err := New(WindowDesc{Width: width, Height: height, Title: "test", Backend: BackendHeadless})
	require.NoError(t, err)
	t.Cleanup(w.Destroy)
	return w
}

func TestNew(t *testing.T) {
	w := newHeadless(t, 640, 480)

	assert.Equal(t, BackendHeadless, w.Backend())
	assert.Equal(t, uint32(640), w.Width())
	assert.Equal(t, uint32(480), w.Height())
	assert.Equal(t, "test", w.Title())
	assert.Equal(t, CursorModeNormal, w.CursorMode())
	assert.False(t, w.ShouldClose())
	assert.NotEqual(t, w.ID(), newHeadless(t, 1, 1).ID())
}

func TestNewInvalidSize(t *testing.T) {
	for _, desc := range []WindowDesc{
		{Width: 0, Height: 480, Backend: BackendHeadless},
		{Width: 640, Height: 0, Backend: BackendHeadless},
		{Backend: BackendExternal},
	} {
		_, err := New(desc)
		assert.ErrorIs(t, err, ErrInvalidSize)
	}
}

func TestNewUnknownBackend(t *testing.T) {
	_, err := New(WindowDesc{Width: 1, Height: 1, Backend: BackendKind(42)})
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestAvailable(t *testing.T) {
	assert.True(t, Available(BackendAuto))
	assert.True(t, Available(BackendExternal))
	assert.True(t, Available(BackendHeadless))
	assert.False(t, Available(BackendKind(42)))
}

func TestResolveBackend(t *testing.T) {
	assert.Equal(t, BackendHeadless, resolveBackend(BackendHeadless))
	assert.Equal(t, BackendX11, resolveBackend(BackendX11))

	auto := resolveBackend(BackendAuto)
	assert.NotEqual(t, BackendAuto, auto)
	assert.True(t, Available(auto))
}

func TestCloseIsMonotonic(t *testing.T) {
	w := newHeadless(t, 100, 100)

	w.Close()
	assert.True(t, w.ShouldClose())
	w.Close()
	assert.True(t, w.ShouldClose())

	w.ProcessEvents()
	assert.True(t, w.ShouldClose())
}

func TestCloseRequestedByWindowSystem(t *testing.T) {
	w := newHeadless(t, 100, 100)
	w.Headless().RequestClose()
	assert.False(t, w.ShouldClose())

	w.ProcessEvents()
	assert.True(t, w.ShouldClose())
}

func TestString(t *testing.T) {
	w := newHeadless(t, 800, 600)
	w.SetTitle("Demo")

	expected := "Window(\n  width = 800,\n  height = 600,\n  title = \"Demo\"\n)"
	assert.Equal(t, expected, w.String())
}

func TestSettersOnHeadless(t *testing.T) {
	w := newHeadless(t, 100, 100)

	w.SetPosition(Position{X: 10, Y: 20})
	assert.Equal(t, Position{X: 10, Y: 20}, w.Position())

	w.SetWidth(300)
	w.SetHeight(200)
	assert.Equal(t, uint32(300), w.Width())
	assert.Equal(t, uint32(200), w.Height())

	w.SetCursorMode(CursorModeDisabled)
	assert.Equal(t, CursorModeDisabled, w.CursorMode())

	_, ok := w.Clipboard()
	assert.False(t, ok)
	w.SetClipboard("hello")
	text, ok := w.Clipboard()
	assert.True(t, ok)
	assert.Equal(t, "hello", text)

	assert.False(t, w.Handle().Valid())
}

func TestFramebufferSizeFollowsWindowSize(t *testing.T) {
	w := newHeadless(t, 320, 200)
	width, height := w.FramebufferSize()
	assert.Equal(t, uint32(320), width)
	assert.Equal(t, uint32(200), height)

	w.Resize(640, 400)
	width, height = w.FramebufferSize()
	assert.Equal(t, uint32(640), width)
	assert.Equal(t, uint32(400), height)

	w.Destroy()
	width, height = w.FramebufferSize()
	assert.Equal(t, uint32(640), width)
	assert.Equal(t, uint32(400), height)
}

type scaledPlatform struct {
	nopPlatform
	scale uint32
	w     *Window
}

func (p scaledPlatform) framebufferSize() (uint32, uint32, bool) {
	return p.w.width * p.scale, p.w.height * p.scale, true
}

func TestFramebufferSizeOnScaledDisplay(t *testing.T) {
	w := newHeadless(t, 1280, 720)
	w.p = scaledPlatform{nopPlatform: nopPlatform{k: BackendGLFW}, scale: 2, w: w}

	width, height := w.Size()
	assert.Equal(t, uint32(1280), width)
	assert.Equal(t, uint32(720), height)

	width, height = w.FramebufferSize()
	assert.Equal(t, uint32(2560), width)
	assert.Equal(t, uint32(1440), height)
}

func TestDestroy(t *testing.T) {
	w, err := New(WindowDesc{Width: 100, Height: 100, Title: "a", Backend: BackendHeadless})
	require.NoError(t, err)

	calls := 0
	w.SetOnResize(func(width, height uint32) { calls++ })
	w.Headless().InjectResize(10, 10)

	w.Destroy()
	w.Destroy()

	assert.Equal(t, BackendHeadless, w.Backend())
	assert.Nil(t, w.Headless())

	// Everything after destroy is a no-op.
	w.ProcessEvents()
	w.HandleWindowSize(1, 1)
	w.Resize(50, 50)
	w.SetTitle("b")
	w.SetCursorMode(CursorModeHidden)
	w.SetPosition(Position{X: 5, Y: 5})

	assert.Equal(t, 0, calls)
	assert.Equal(t, uint32(100), w.Width())
	assert.Equal(t, "a", w.Title())
	assert.Equal(t, CursorModeNormal, w.CursorMode())
	assert.Equal(t, Position{}, w.Position())
	assert.ErrorIs(t, w.AttachNativeWindow(0x1000), ErrWindowDestroyed)
}
