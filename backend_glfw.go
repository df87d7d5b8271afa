//go:build cgo && ((darwin && !ios) || windows || (linux && !android) || freebsd)

package window

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

func init() {
	registerBackend(BackendGLFW, newGLFWPlatform)
}

// glfwUsers counts live GLFW windows; the library is initialized by the first
// and terminated with the last.
var glfwUsers int

var glfwInit = glfw.Init

func glfwAcquire() error {
	if glfwUsers == 0 {
		runtime.LockOSThread()
		if err := glfwInit(); err != nil {
			runtime.UnlockOSThread()
			return err
		}
	}
	glfwUsers++
	return nil
}

func glfwRelease() {
	glfwUsers--
	if glfwUsers == 0 {
		glfw.Terminate()
	}
}

type glfwPlatform struct {
	w   *Window
	win *glfw.Window
	pad GamepadState
}

func newGLFWPlatform(w *Window, desc *WindowDesc) (platform, error) {
	if err := glfwAcquire(); err != nil {
		return nil, err
	}

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI) // the graphics device creates its own surface
	glfw.WindowHint(glfw.Resizable, glfwBool(!desc.FixedSize))
	if desc.Mode == WindowModeMaximized {
		glfw.WindowHint(glfw.Maximized, glfw.True)
	}

	var monitor *glfw.Monitor
	width, height := int(desc.Width), int(desc.Height)
	if desc.Mode == WindowModeFullscreen {
		monitor = glfw.GetPrimaryMonitor()
		if monitor != nil {
			if mode := monitor.GetVideoMode(); mode != nil {
				width, height = mode.Width, mode.Height
			}
		}
	}

	win, err := glfw.CreateWindow(width, height, desc.Title, monitor, nil)
	if err != nil {
		glfwRelease()
		return nil, err
	}
	if desc.Mode == WindowModeMinimized {
		win.Iconify()
	}

	p := &glfwPlatform{w: w, win: win}
	p.installCallbacks()
	p.setCursorMode(desc.CursorMode)

	// Fullscreen and maximized windows do not get the requested size.
	if fw, fh := win.GetSize(); fw > 0 && fh > 0 {
		w.width, w.height = uint32(fw), uint32(fh)
	}
	return p, nil
}

func glfwBool(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}

func (p *glfwPlatform) installCallbacks() {
	w := p.w
	p.win.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		w.HandleWindowSize(uint32(width), uint32(height))
	})
	p.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		w.HandleKeyboardEvent(KeyboardEvent{
			Type: glfwKeyEventType(action),
			Key:  glfwKeyCode(key),
			Mods: glfwMods(mods),
		})
	})
	p.win.SetCharCallback(func(_ *glfw.Window, char rune) {
		w.HandleKeyboardEvent(KeyboardEvent{Type: KeyInput, Codepoint: char})
	})
	p.win.SetMouseButtonCallback(func(gw *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		typ := MouseButtonDown
		if action == glfw.Release {
			typ = MouseButtonUp
		}
		w.HandleMouseEvent(MouseEvent{
			Type:   typ,
			Pos:    cursorPos(gw),
			Button: glfwMouseButton(button),
			Mods:   glfwMods(mods),
		})
	})
	p.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.HandleMouseEvent(MouseEvent{Type: MouseMove, Pos: mgl32.Vec2{float32(x), float32(y)}})
	})
	p.win.SetScrollCallback(func(gw *glfw.Window, xoff, yoff float64) {
		w.HandleMouseEvent(MouseEvent{
			Type:   MouseScroll,
			Pos:    cursorPos(gw),
			Scroll: mgl32.Vec2{float32(xoff), float32(yoff)},
		})
	})
	p.win.SetDropCallback(func(_ *glfw.Window, names []string) {
		w.HandleDropFiles(names)
	})
	p.win.SetCloseCallback(func(_ *glfw.Window) {
		w.closeRequested()
	})
}

func cursorPos(gw *glfw.Window) mgl32.Vec2 {
	x, y := gw.GetCursorPos()
	return mgl32.Vec2{float32(x), float32(y)}
}

func (p *glfwPlatform) kind() BackendKind { return BackendGLFW }

func (p *glfwPlatform) handle() WindowHandle {
	return WindowHandle{Backend: BackendGLFW, Native: uintptr(p.win.Handle())}
}

// The stored size follows the size callback fired by the next poll.
func (p *glfwPlatform) setSize(width, height uint32) {
	p.win.SetSize(int(width), int(height))
}

// On scaled displays the framebuffer is larger than the window, which GLFW
// sizes in screen coordinates.
func (p *glfwPlatform) framebufferSize() (uint32, uint32, bool) {
	fw, fh := p.win.GetFramebufferSize()
	if fw <= 0 || fh <= 0 {
		return 0, 0, false
	}
	return uint32(fw), uint32(fh), true
}

func (p *glfwPlatform) position() Position {
	x, y := p.win.GetPos()
	return Position{X: int32(x), Y: int32(y)}
}

func (p *glfwPlatform) setPosition(pos Position) {
	p.win.SetPos(int(pos.X), int(pos.Y))
}

func (p *glfwPlatform) setTitle(title string) {
	p.win.SetTitle(title)
}

func (p *glfwPlatform) setIcon(path string) {
	icons, err := loadIcon(path)
	if err != nil {
		p.w.log.Warnf("Ignoring window icon: %v", err)
		return
	}
	p.win.SetIcon(icons)
}

func (p *glfwPlatform) setCursorMode(mode CursorMode) {
	p.win.SetInputMode(glfw.CursorMode, glfwCursorMode(mode))
}

// GLFW returns an empty string for an empty or non-text clipboard.
func (p *glfwPlatform) clipboard() (string, bool) {
	text := p.win.GetClipboardString()
	return text, text != ""
}

func (p *glfwPlatform) setClipboard(text string) {
	p.win.SetClipboardString(text)
}

func (p *glfwPlatform) pollGamepadInput() {
	var next GamepadState
	joy := glfw.Joystick1
	if joy.Present() && joy.IsGamepad() {
		next.Connected = true
		if st := joy.GetGamepadState(); st != nil {
			for i := range next.Buttons {
				next.Buttons[i] = st.Buttons[i] == glfw.Press
			}
			copy(next.Axes[:], st.Axes[:])
		}
	}

	prev := p.pad
	p.pad = next
	for _, ev := range diffGamepad(prev, next) {
		p.w.HandleGamepadEvent(ev)
	}
}

func (p *glfwPlatform) gamepadState() GamepadState { return p.pad }

func (p *glfwPlatform) processEvents() {
	glfw.PollEvents()
	// A callback may have destroyed the window during the poll.
	if !p.w.destroyed && p.win.ShouldClose() {
		p.w.closeRequested()
	}
}

func (p *glfwPlatform) requestClose() {
	p.win.SetShouldClose(true)
}

func (p *glfwPlatform) destroy() {
	p.win.Destroy()
	glfwRelease()
}
