package window

import (
	"runtime"
)

// platform is implemented once per backend. Every method must be total:
// operations the backend cannot perform are explicit no-ops.
type platform interface {
	kind() BackendKind
	handle() WindowHandle

	setSize(width, height uint32)
	// framebufferSize reports the drawable size in pixels where it differs
	// from the window size.
	framebufferSize() (width, height uint32, ok bool)
	position() Position
	setPosition(pos Position)
	setTitle(title string)
	setIcon(path string)
	setCursorMode(mode CursorMode)

	clipboard() (string, bool)
	setClipboard(text string)

	pollGamepadInput()
	gamepadState() GamepadState
	processEvents()

	requestClose()
	destroy()
}

// surfaceAttacher is implemented by backends whose native surface is handed
// in by a host after construction.
type surfaceAttacher interface {
	attach(ptr uintptr) error
	detach()
}

type backendFactory func(w *Window, desc *WindowDesc) (platform, error)

var backends = map[BackendKind]backendFactory{}

func registerBackend(kind BackendKind, factory backendFactory) {
	backends[kind] = factory
}

// Available reports whether a backend was compiled into this binary.
func Available(kind BackendKind) bool {
	if kind == BackendAuto {
		return true
	}
	_, ok := backends[kind]
	return ok
}

func resolveBackend(kind BackendKind) BackendKind {
	if kind != BackendAuto {
		return kind
	}
	switch runtime.GOOS {
	case "android", "ios":
		return BackendExternal
	}
	for _, k := range []BackendKind{BackendGLFW, BackendX11} {
		if _, ok := backends[k]; ok {
			return k
		}
	}
	return BackendHeadless
}

// nopPlatform stands in for a destroyed window's backend.
type nopPlatform struct {
	k BackendKind
}

func (p nopPlatform) kind() BackendKind                       { return p.k }
func (p nopPlatform) handle() WindowHandle                    { return WindowHandle{Backend: p.k} }
func (p nopPlatform) setSize(width, height uint32)            {}
func (p nopPlatform) framebufferSize() (uint32, uint32, bool) { return 0, 0, false }
func (p nopPlatform) position() Position                      { return Position{} }
func (p nopPlatform) setPosition(pos Position)                {}
func (p nopPlatform) setTitle(title string)                   {}
func (p nopPlatform) setIcon(path string)                     {}
func (p nopPlatform) setCursorMode(mode CursorMode)           {}
func (p nopPlatform) clipboard() (string, bool)               { return "", false }
func (p nopPlatform) setClipboard(text string)                {}
func (p nopPlatform) pollGamepadInput()                       {}
func (p nopPlatform) gamepadState() GamepadState              { return GamepadState{} }
func (p nopPlatform) processEvents()                          {}
func (p nopPlatform) requestClose()                           {}
func (p nopPlatform) destroy()                                {}
