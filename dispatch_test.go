package window

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResizeStoresSizeBeforeCallback(t *testing.T) {
	w := newHeadless(t, 100, 100)

	var calls int
	var seenW, seenH uint32
	w.SetOnResize(func(width, height uint32) {
		calls++
		seenW, seenH = w.Size()
		assert.Equal(t, uint32(800), width)
		assert.Equal(t, uint32(600), height)
	})

	w.Resize(800, 600)

	assert.Equal(t, 1, calls)
	assert.Equal(t, uint32(800), seenW)
	assert.Equal(t, uint32(600), seenH)
}

func TestEventsWithoutCallbackAreDropped(t *testing.T) {
	w := newHeadless(t, 100, 100)
	h := w.Headless()
	h.InjectKeyboard(KeyboardEvent{Type: KeyPress, Key: KeyA})
	h.InjectMouse(MouseEvent{Type: MouseMove})
	h.InjectDropFiles("a.txt")
	h.InjectResize(300, 200)

	w.ProcessEvents()

	assert.Equal(t, 0, h.Pending())
	assert.Equal(t, uint32(300), w.Width())
	assert.Equal(t, uint32(200), w.Height())
}

func TestClearCallback(t *testing.T) {
	w := newHeadless(t, 100, 100)
	calls := 0
	w.SetOnKeyboardEvent(func(KeyboardEvent) { calls++ })

	w.HandleKeyboardEvent(KeyboardEvent{Type: KeyPress, Key: KeySpace})
	w.SetOnKeyboardEvent(nil)
	w.HandleKeyboardEvent(KeyboardEvent{Type: KeyPress, Key: KeySpace})

	assert.Equal(t, 1, calls)
}

func TestDeliveryOrder(t *testing.T) {
	w := newHeadless(t, 100, 100)
	h := w.Headless()

	var got []string
	w.SetOnKeyboardEvent(func(ev KeyboardEvent) { got = append(got, "key:"+ev.Key.String()) })
	w.SetOnMouseEvent(func(ev MouseEvent) { got = append(got, "mouse") })
	w.SetOnResize(func(width, height uint32) { got = append(got, "resize") })
	w.SetOnDropFiles(func(paths []string) { got = append(got, "drop") })

	h.InjectKeyboard(KeyboardEvent{Type: KeyPress, Key: KeyW})
	h.InjectMouse(MouseEvent{Type: MouseButtonDown, Button: MouseButtonLeft, Pos: mgl32.Vec2{4, 2}})
	h.InjectResize(640, 480)
	h.InjectDropFiles("a.png", "b.png")
	h.InjectKeyboard(KeyboardEvent{Type: KeyRelease, Key: KeyW})
	require.Equal(t, 5, h.Pending())

	w.ProcessEvents()

	assert.Equal(t, []string{"key:" + KeyW.String(), "mouse", "resize", "drop", "key:" + KeyW.String()}, got)
}

func TestEventInjectedByCallbackIsDeliveredNextCycle(t *testing.T) {
	w := newHeadless(t, 100, 100)
	h := w.Headless()

	var keys []KeyCode
	w.SetOnKeyboardEvent(func(ev KeyboardEvent) {
		keys = append(keys, ev.Key)
		if ev.Key == KeyA {
			h.InjectKeyboard(KeyboardEvent{Type: KeyPress, Key: KeyB})
		}
	})

	h.InjectKeyboard(KeyboardEvent{Type: KeyPress, Key: KeyA})
	w.ProcessEvents()
	assert.Equal(t, []KeyCode{KeyA}, keys)
	assert.Equal(t, 1, h.Pending())

	w.ProcessEvents()
	assert.Equal(t, []KeyCode{KeyA, KeyB}, keys)
}

func TestCallbackMayCloseWindow(t *testing.T) {
	w := newHeadless(t, 100, 100)
	w.SetOnKeyboardEvent(func(ev KeyboardEvent) {
		if ev.Key == KeyEscape {
			w.Close()
		}
	})

	w.Headless().InjectKeyboard(KeyboardEvent{Type: KeyPress, Key: KeyEscape})
	w.ProcessEvents()
	assert.True(t, w.ShouldClose())
}

func TestCallbackMayDestroyWindow(t *testing.T) {
	w := newHeadless(t, 100, 100)
	h := w.Headless()
	calls := 0
	w.SetOnMouseEvent(func(MouseEvent) {
		calls++
		w.Destroy()
	})

	h.InjectMouse(MouseEvent{Type: MouseMove})
	h.InjectMouse(MouseEvent{Type: MouseMove})
	w.ProcessEvents()

	assert.Equal(t, 1, calls)
}

func TestDropFilesForwardedVerbatim(t *testing.T) {
	w := newExternal(t, newFakeNativeAPI())
	defer w.Destroy()

	var got [][]string
	w.SetOnDropFiles(func(paths []string) { got = append(got, paths) })

	w.HandleDropFiles([]string{})
	w.HandleDropFiles([]string{"a.txt", "b.txt"})

	require.Len(t, got, 2)
	assert.Empty(t, got[0])
	assert.Equal(t, []string{"a.txt", "b.txt"}, got[1])
}

func TestHeadlessGamepad(t *testing.T) {
	w := newHeadless(t, 100, 100)
	h := w.Headless()

	var events []GamepadEvent
	w.SetOnGamepadEvent(func(ev GamepadEvent) { events = append(events, ev) })

	state := GamepadState{Connected: true}
	state.Buttons[GamepadButtonA] = true
	state.Axes[GamepadAxisLeftX] = 0.5
	h.InjectGamepadState(state)
	w.PollGamepadInput()

	assert.Equal(t, []GamepadEvent{
		{Type: GamepadConnect},
		{Type: GamepadButtonDown, Button: GamepadButtonA},
	}, events)
	assert.True(t, w.GamepadState().IsButtonDown(GamepadButtonA))
	assert.Equal(t, float32(0.5), w.GamepadState().Axis(GamepadAxisLeftX))

	events = nil
	w.PollGamepadInput()
	assert.Empty(t, events)
}
