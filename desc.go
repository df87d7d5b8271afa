package window

import (
	"fmt"
	"strings"
)

type WindowMode int

const (
	WindowModeNormal WindowMode = iota
	WindowModeMinimized
	WindowModeMaximized
	WindowModeFullscreen
)

var windowModeNames = map[WindowMode]string{
	WindowModeNormal:     "normal",
	WindowModeMinimized:  "minimized",
	WindowModeMaximized:  "maximized",
	WindowModeFullscreen: "fullscreen",
}

func (m WindowMode) String() string {
	if s, ok := windowModeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("WindowMode(%d)", int(m))
}

func ParseWindowMode(s string) (WindowMode, error) {
	for m, name := range windowModeNames {
		if strings.EqualFold(s, name) {
			return m, nil
		}
	}
	return WindowModeNormal, fmt.Errorf("unknown window mode %q", s)
}

type CursorMode int

const (
	CursorModeNormal CursorMode = iota
	CursorModeHidden
	// CursorModeDisabled hides the cursor and locks it to the window, giving
	// unbounded relative motion.
	CursorModeDisabled
)

var cursorModeNames = map[CursorMode]string{
	CursorModeNormal:   "normal",
	CursorModeHidden:   "hidden",
	CursorModeDisabled: "disabled",
}

func (m CursorMode) String() string {
	if s, ok := cursorModeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("CursorMode(%d)", int(m))
}

func ParseCursorMode(s string) (CursorMode, error) {
	for m, name := range cursorModeNames {
		if strings.EqualFold(s, name) {
			return m, nil
		}
	}
	return CursorModeNormal, fmt.Errorf("unknown cursor mode %q", s)
}

// BackendKind names a platform realization of Window.
type BackendKind int

const (
	// BackendAuto picks External on mobile targets and the first compiled-in
	// desktop backend elsewhere, falling back to Headless.
	BackendAuto BackendKind = iota
	BackendGLFW
	BackendX11
	// BackendExternal is driven by a host that owns the native surface and hands
	// it over through AttachNativeWindow.
	BackendExternal
	BackendHeadless
)

var backendNames = map[BackendKind]string{
	BackendAuto:     "auto",
	BackendGLFW:     "glfw",
	BackendX11:      "x11",
	BackendExternal: "external",
	BackendHeadless: "headless",
}

func (k BackendKind) String() string {
	if s, ok := backendNames[k]; ok {
		return s
	}
	return fmt.Sprintf("BackendKind(%d)", int(k))
}

func ParseBackendKind(s string) (BackendKind, error) {
	for k, name := range backendNames {
		if strings.EqualFold(s, name) {
			return k, nil
		}
	}
	return BackendAuto, fmt.Errorf("unknown backend %q", s)
}

// WindowDesc is consumed once by New. The zero value of every optional field is
// its default: normal mode, resizable, normal cursor, automatic backend, lazily
// loaded native window API and no logging.
type WindowDesc struct {
	Width  uint32
	Height uint32
	Title  string

	Mode       WindowMode
	FixedSize  bool
	CursorMode CursorMode
	Backend    BackendKind

	// NativeAPI manages foreign surfaces on the External backend. When nil the
	// platform library is loaded on the first attach.
	NativeAPI NativeWindowAPI
	Logger    Logger
}

// DefaultWindowDesc returns the descriptor used when a config file omits fields.
func DefaultWindowDesc() WindowDesc {
	return WindowDesc{
		Width:  1280,
		Height: 720,
	}
}

func (d WindowDesc) Validate() error {
	if d.Width == 0 || d.Height == 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, d.Width, d.Height)
	}
	return nil
}
