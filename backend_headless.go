package window

func init() {
	registerBackend(BackendHeadless, newHeadlessPlatform)
}

// Headless is a backend without a native window. Events are injected by the
// program (typically a test or an offscreen renderer) and delivered by the next
// ProcessEvents call in injection order.
type Headless struct {
	w *Window

	pos     Position
	clip    string
	clipSet bool

	pad     GamepadState
	padNext GamepadState

	queue []func()
}

func newHeadlessPlatform(w *Window, desc *WindowDesc) (platform, error) {
	return &Headless{w: w}, nil
}

// Headless returns the injection interface of a headless window, or nil for
// other backends.
func (w *Window) Headless() *Headless {
	h, _ := w.p.(*Headless)
	return h
}

func (h *Headless) push(fn func()) {
	h.queue = append(h.queue, fn)
}

func (h *Headless) InjectResize(width, height uint32) {
	h.push(func() { h.w.HandleWindowSize(width, height) })
}

func (h *Headless) InjectKeyboard(event KeyboardEvent) {
	h.push(func() { h.w.HandleKeyboardEvent(event) })
}

func (h *Headless) InjectMouse(event MouseEvent) {
	h.push(func() { h.w.HandleMouseEvent(event) })
}

func (h *Headless) InjectDropFiles(paths ...string) {
	h.push(func() { h.w.HandleDropFiles(paths) })
}

// InjectGamepadState sets the state the next PollGamepadInput will observe.
func (h *Headless) InjectGamepadState(state GamepadState) {
	h.padNext = state
}

// RequestClose simulates the window manager's close button.
func (h *Headless) RequestClose() {
	h.push(h.w.closeRequested)
}

// Pending reports the number of queued events.
func (h *Headless) Pending() int {
	return len(h.queue)
}

func (h *Headless) kind() BackendKind { return BackendHeadless }

func (h *Headless) handle() WindowHandle { return WindowHandle{Backend: BackendHeadless} }

// A headless surface accepts any size and reports it back at once.
func (h *Headless) setSize(width, height uint32) {
	h.w.HandleWindowSize(width, height)
}

func (h *Headless) framebufferSize() (uint32, uint32, bool) { return 0, 0, false }

func (h *Headless) position() Position { return h.pos }

func (h *Headless) setPosition(pos Position) { h.pos = pos }

func (h *Headless) setTitle(title string) {}

func (h *Headless) setIcon(path string) {}

func (h *Headless) setCursorMode(mode CursorMode) {}

func (h *Headless) clipboard() (string, bool) { return h.clip, h.clipSet }

func (h *Headless) setClipboard(text string) {
	h.clip = text
	h.clipSet = true
}

func (h *Headless) pollGamepadInput() {
	prev := h.pad
	h.pad = h.padNext
	for _, ev := range diffGamepad(prev, h.pad) {
		h.w.HandleGamepadEvent(ev)
	}
}

func (h *Headless) gamepadState() GamepadState { return h.pad }

// Events queued by callbacks during this call are delivered by the next one.
func (h *Headless) processEvents() {
	queue := h.queue
	h.queue = nil
	for _, fn := range queue {
		fn()
	}
}

func (h *Headless) requestClose() {}

func (h *Headless) destroy() {
	h.queue = nil
}
