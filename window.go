package window

import (
	"fmt"

	"github.com/google/uuid"
)

// Window is a single native window, or the placeholder for one on the External
// backend. A Window is not safe for concurrent use.
type Window struct {
	id  uuid.UUID
	log Logger

	width      uint32
	height     uint32
	title      string
	cursorMode CursorMode

	shouldClose bool
	destroyed   bool

	callbacks callbacks
	p         platform
}

// New creates a window for desc. The External and Headless backends never fail
// for a valid descriptor; desktop backends fail when the window system is not
// reachable.
func New(desc WindowDesc) (*Window, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	kind := resolveBackend(desc.Backend)
	factory, ok := backends[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBackendUnavailable, kind)
	}

	base := desc.Logger
	if base == nil {
		base = NewNopLogger()
	}
	w := &Window{
		id:         uuid.New(),
		width:      desc.Width,
		height:     desc.Height,
		title:      desc.Title,
		cursorMode: desc.CursorMode,
	}
	w.log = windowLogger{Logger: base, tag: "window " + w.id.String()[:8] + ": "}

	p, err := factory(w, &desc)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s window: %w", kind, err)
	}
	w.p = p
	w.log.Infof("Created %s window (%dx%d) '%s'", kind, w.width, w.height, w.title)
	return w, nil
}

func (w *Window) ID() uuid.UUID        { return w.id }
func (w *Window) Backend() BackendKind { return w.p.kind() }

func (w *Window) Width() uint32  { return w.width }
func (w *Window) Height() uint32 { return w.height }

func (w *Window) Size() (width, height uint32) {
	return w.width, w.height
}

func (w *Window) SetWidth(width uint32) {
	w.Resize(width, w.height)
}

func (w *Window) SetHeight(height uint32) {
	w.Resize(w.width, height)
}

func (w *Window) SetSize(width, height uint32) {
	w.Resize(width, height)
}

// Resize requests a new client area size. Backends that report sizes back
// update the stored size when the report arrives; the others record it as is.
func (w *Window) Resize(width, height uint32) {
	w.p.setSize(width, height)
}

// FramebufferSize returns the drawable size in pixels, which is what GPU
// surfaces are configured with. It equals Size except on GLFW windows on
// scaled displays.
func (w *Window) FramebufferSize() (width, height uint32) {
	if fw, fh, ok := w.p.framebufferSize(); ok {
		return fw, fh
	}
	return w.width, w.height
}

// Position returns the window's top-left corner in screen coordinates, or the
// origin on backends without a position concept.
func (w *Window) Position() Position {
	return w.p.position()
}

func (w *Window) SetPosition(pos Position) {
	w.p.setPosition(pos)
}

func (w *Window) Title() string { return w.title }

func (w *Window) SetTitle(title string) {
	if w.destroyed {
		return
	}
	w.title = title
	w.p.setTitle(title)
}

// SetIcon loads an image file and uses it as the window icon. Unreadable files
// are logged and otherwise ignored.
func (w *Window) SetIcon(path string) {
	w.p.setIcon(path)
}

func (w *Window) CursorMode() CursorMode { return w.cursorMode }

func (w *Window) SetCursorMode(mode CursorMode) {
	if w.destroyed {
		return
	}
	w.cursorMode = mode
	w.p.setCursorMode(mode)
}

// Clipboard returns the clipboard text, or false where the clipboard is not
// available.
func (w *Window) Clipboard() (string, bool) {
	return w.p.clipboard()
}

func (w *Window) SetClipboard(text string) {
	w.p.setClipboard(text)
}

// PollGamepadInput samples the first gamepad and dispatches the changes since
// the previous poll as gamepad events.
func (w *Window) PollGamepadInput() {
	w.p.pollGamepadInput()
}

// GamepadState returns the state seen by the last PollGamepadInput.
func (w *Window) GamepadState() GamepadState {
	return w.p.gamepadState()
}

// ProcessEvents dispatches pending platform events in delivery order. It never
// blocks longer than the platform's own poll call.
func (w *Window) ProcessEvents() {
	w.p.processEvents()
}

// Close marks the window for closing. The window stays usable until Destroy.
func (w *Window) Close() {
	if w.shouldClose {
		return
	}
	w.shouldClose = true
	w.p.requestClose()
}

func (w *Window) ShouldClose() bool { return w.shouldClose }

// closeRequested is called by backends when the window system asks to close.
func (w *Window) closeRequested() {
	if !w.shouldClose {
		w.log.Debugf("close requested by window system")
	}
	w.shouldClose = true
}

// Handle returns the native window for graphics collaborators. The zero handle
// is returned while no native window exists.
func (w *Window) Handle() WindowHandle {
	return w.p.handle()
}

// AttachNativeWindow hands a host-owned surface to an External window. The
// window retains its own reference until DetachNativeWindow or Destroy.
// Attaching another surface releases the previous one; attaching the same one
// again only refreshes the size. A failed attach leaves the window as it was.
func (w *Window) AttachNativeWindow(ptr uintptr) error {
	if w.destroyed {
		return ErrWindowDestroyed
	}
	a, ok := w.p.(surfaceAttacher)
	if !ok {
		return fmt.Errorf("%w: %s", ErrAttachUnsupported, w.p.kind())
	}
	return a.attach(ptr)
}

// DetachNativeWindow releases an attached host surface early, typically when
// the host reports the surface destroyed. It is a no-op otherwise.
func (w *Window) DetachNativeWindow() {
	if a, ok := w.p.(surfaceAttacher); ok {
		a.detach()
	}
}

// Destroy releases the native window. Later calls, and every mutator after the
// first call, do nothing.
func (w *Window) Destroy() {
	if w.destroyed {
		return
	}
	kind := w.p.kind()
	w.p.destroy()
	w.p = nopPlatform{k: kind}
	w.destroyed = true
	w.log.Infof("Destroyed %s window", kind)
}

func (w *Window) String() string {
	return fmt.Sprintf(
		"Window(\n"+
			"  width = %d,\n"+
			"  height = %d,\n"+
			"  title = %q\n"+
			")",
		w.width,
		w.height,
		w.title,
	)
}
