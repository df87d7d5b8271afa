//go:build (linux && !android) || freebsd || openbsd || netbsd

package window

import (
	"image"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/BurntSushi/xgbutil/xwindow"
	"github.com/atotto/clipboard"
	"github.com/go-gl/mathgl/mgl32"
)

func init() {
	registerBackend(BackendX11, newX11Platform)
}

const x11EventMask = xproto.EventMaskStructureNotify |
	xproto.EventMaskKeyPress |
	xproto.EventMaskKeyRelease |
	xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskPointerMotion

// x11Platform talks the X protocol directly through xgb, without cgo. It has no
// GPU surface interop (xgb has no Xlib display pointer) and is meant for tools
// and software presenters on X servers.
type x11Platform struct {
	w   *Window
	xu  *xgbutil.XUtil
	win *xwindow.Window

	wmDelete xproto.Atom

	// last ConfigureNotify size; moves also produce ConfigureNotify
	lastWidth, lastHeight uint16

	keysDown map[xproto.Keycode]bool
	blank    xproto.Cursor
	grabbed  bool
}

func newX11Platform(w *Window, desc *WindowDesc) (platform, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, err
	}
	keybind.Initialize(xu)

	win, err := xwindow.Generate(xu)
	if err != nil {
		xu.Conn().Close()
		return nil, err
	}
	win.Create(xu.RootWin(), 0, 0, int(desc.Width), int(desc.Height),
		xproto.CwBackPixel|xproto.CwEventMask, 0, x11EventMask)

	p := &x11Platform{
		w:          w,
		xu:         xu,
		win:        win,
		lastWidth:  uint16(desc.Width),
		lastHeight: uint16(desc.Height),
		keysDown:   map[xproto.Keycode]bool{},
	}

	if err := icccm.WmProtocolsSet(xu, win.Id, []string{"WM_DELETE_WINDOW"}); err != nil {
		w.log.Warnf("Failed to set WM_PROTOCOLS: %v", err)
	}
	if p.wmDelete, err = xprop.Atm(xu, "WM_DELETE_WINDOW"); err != nil {
		w.log.Warnf("Failed to intern WM_DELETE_WINDOW: %v", err)
	}
	p.setTitle(desc.Title)
	if desc.FixedSize {
		hints := &icccm.NormalHints{
			Flags:     icccm.SizeHintPMinSize | icccm.SizeHintPMaxSize,
			MinWidth:  uint(desc.Width),
			MinHeight: uint(desc.Height),
			MaxWidth:  uint(desc.Width),
			MaxHeight: uint(desc.Height),
		}
		if err := icccm.WmNormalHintsSet(xu, win.Id, hints); err != nil {
			w.log.Warnf("Failed to set size hints: %v", err)
		}
	}
	p.applyMode(desc.Mode)

	win.Map()
	p.setCursorMode(desc.CursorMode)
	return p, nil
}

// applyMode sets the initial state properties, which window managers read
// when the window is first mapped.
func (p *x11Platform) applyMode(mode WindowMode) {
	var err error
	switch mode {
	case WindowModeMaximized:
		err = ewmh.WmStateSet(p.xu, p.win.Id, []string{
			"_NET_WM_STATE_MAXIMIZED_VERT",
			"_NET_WM_STATE_MAXIMIZED_HORZ",
		})
	case WindowModeFullscreen:
		err = ewmh.WmStateSet(p.xu, p.win.Id, []string{"_NET_WM_STATE_FULLSCREEN"})
	case WindowModeMinimized:
		err = icccm.WmHintsSet(p.xu, p.win.Id, &icccm.Hints{
			Flags:        icccm.HintState,
			InitialState: icccm.StateIconic,
		})
	}
	if err != nil {
		p.w.log.Warnf("Failed to apply window mode %s: %v", mode, err)
	}
}

func (p *x11Platform) kind() BackendKind { return BackendX11 }

func (p *x11Platform) handle() WindowHandle {
	return WindowHandle{Backend: BackendX11, XID: uint32(p.win.Id)}
}

// The stored size follows the ConfigureNotify that answers the request.
func (p *x11Platform) setSize(width, height uint32) {
	if err := ewmh.ResizeWindow(p.xu, p.win.Id, int(width), int(height)); err != nil {
		p.win.Resize(int(width), int(height))
	}
}

// X11 windows are sized in pixels.
func (p *x11Platform) framebufferSize() (uint32, uint32, bool) { return 0, 0, false }

func (p *x11Platform) position() Position {
	reply, err := xproto.TranslateCoordinates(p.xu.Conn(), p.win.Id, p.xu.RootWin(), 0, 0).Reply()
	if err != nil {
		p.w.log.Debugf("Failed to query window position: %v", err)
		return Position{}
	}
	return Position{X: int32(reply.DstX), Y: int32(reply.DstY)}
}

func (p *x11Platform) setPosition(pos Position) {
	if err := ewmh.MoveWindow(p.xu, p.win.Id, int(pos.X), int(pos.Y)); err != nil {
		p.win.Move(int(pos.X), int(pos.Y))
	}
}

func (p *x11Platform) setTitle(title string) {
	if err := ewmh.WmNameSet(p.xu, p.win.Id, title); err != nil {
		p.w.log.Debugf("Failed to set _NET_WM_NAME: %v", err)
	}
	if err := icccm.WmNameSet(p.xu, p.win.Id, title); err != nil {
		p.w.log.Debugf("Failed to set WM_NAME: %v", err)
	}
}

func (p *x11Platform) setIcon(path string) {
	icons, err := loadIcon(path)
	if err != nil {
		p.w.log.Warnf("Ignoring window icon: %v", err)
		return
	}
	wmIcons := make([]ewmh.WmIcon, 0, len(icons))
	for _, img := range icons {
		wmIcons = append(wmIcons, x11Icon(img))
	}
	if err := ewmh.WmIconSet(p.xu, p.win.Id, wmIcons); err != nil {
		p.w.log.Warnf("Failed to set _NET_WM_ICON: %v", err)
	}
}

// x11Icon packs an image into _NET_WM_ICON's ARGB layout.
func x11Icon(img image.Image) ewmh.WmIcon {
	src := toNRGBA(img)
	b := src.Bounds()
	data := make([]uint, 0, b.Dx()*b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := src.NRGBAAt(x, y)
			data = append(data, uint(c.A)<<24|uint(c.R)<<16|uint(c.G)<<8|uint(c.B))
		}
	}
	return ewmh.WmIcon{Width: uint(b.Dx()), Height: uint(b.Dy()), Data: data}
}

func (p *x11Platform) invisibleCursor() (xproto.Cursor, error) {
	if p.blank != 0 {
		return p.blank, nil
	}
	conn := p.xu.Conn()
	pix, err := xproto.NewPixmapId(conn)
	if err != nil {
		return 0, err
	}
	if err := xproto.CreatePixmapChecked(conn, 1, pix, xproto.Drawable(p.win.Id), 1, 1).Check(); err != nil {
		return 0, err
	}
	defer xproto.FreePixmap(conn, pix)

	cur, err := xproto.NewCursorId(conn)
	if err != nil {
		return 0, err
	}
	if err := xproto.CreateCursorChecked(conn, cur, pix, pix, 0, 0, 0, 0, 0, 0, 0, 0).Check(); err != nil {
		return 0, err
	}
	p.blank = cur
	return cur, nil
}

// setCursorMode hides the cursor with a blank cursor. Disabled additionally
// confines the pointer to the window.
func (p *x11Platform) setCursorMode(mode CursorMode) {
	conn := p.xu.Conn()
	cursor := xproto.Cursor(xproto.CursorNone)
	if mode != CursorModeNormal {
		cur, err := p.invisibleCursor()
		if err != nil {
			p.w.log.Warnf("Failed to create invisible cursor: %v", err)
		} else {
			cursor = cur
		}
	}
	xproto.ChangeWindowAttributes(conn, p.win.Id, xproto.CwCursor, []uint32{uint32(cursor)})

	if p.grabbed {
		xproto.UngrabPointer(conn, xproto.TimeCurrentTime)
		p.grabbed = false
	}
	if mode == CursorModeDisabled {
		reply, err := xproto.GrabPointer(conn, true, p.win.Id,
			xproto.EventMaskPointerMotion|xproto.EventMaskButtonPress|xproto.EventMaskButtonRelease,
			xproto.GrabModeAsync, xproto.GrabModeAsync, p.win.Id, cursor, xproto.TimeCurrentTime).Reply()
		if err != nil || reply.Status != xproto.GrabStatusSuccess {
			p.w.log.Debugf("Pointer grab failed: %v", err)
			return
		}
		p.grabbed = true
	}
}

func (p *x11Platform) clipboard() (string, bool) {
	if clipboard.Unsupported {
		return "", false
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		p.w.log.Debugf("Failed to read clipboard: %v", err)
		return "", false
	}
	return text, true
}

func (p *x11Platform) setClipboard(text string) {
	if clipboard.Unsupported {
		return
	}
	if err := clipboard.WriteAll(text); err != nil {
		p.w.log.Debugf("Failed to write clipboard: %v", err)
	}
}

// X11 has no gamepad input.
func (p *x11Platform) pollGamepadInput() {}

func (p *x11Platform) gamepadState() GamepadState { return GamepadState{} }

// processEvents drains the queued X events without blocking.
func (p *x11Platform) processEvents() {
	conn := p.xu.Conn()
	for !p.w.destroyed {
		ev, xerr := conn.PollForEvent()
		if ev == nil && xerr == nil {
			return
		}
		if xerr != nil {
			p.w.log.Debugf("X error: %v", xerr)
			continue
		}
		p.dispatch(ev)
	}
}

func (p *x11Platform) dispatch(ev xgb.Event) {
	switch e := ev.(type) {
	case xproto.ConfigureNotifyEvent:
		if e.Window != p.win.Id || (e.Width == p.lastWidth && e.Height == p.lastHeight) {
			return
		}
		p.lastWidth, p.lastHeight = e.Width, e.Height
		p.w.HandleWindowSize(uint32(e.Width), uint32(e.Height))
	case xproto.KeyPressEvent:
		p.key(e.Detail, e.State, true)
	case xproto.KeyReleaseEvent:
		p.key(e.Detail, e.State, false)
	case xproto.ButtonPressEvent:
		p.button(e.Detail, e.State, e.EventX, e.EventY, true)
	case xproto.ButtonReleaseEvent:
		p.button(e.Detail, e.State, e.EventX, e.EventY, false)
	case xproto.MotionNotifyEvent:
		p.w.HandleMouseEvent(MouseEvent{
			Type: MouseMove,
			Pos:  mgl32.Vec2{float32(e.EventX), float32(e.EventY)},
			Mods: x11Mods(e.State),
		})
	case xproto.ClientMessageEvent:
		if e.Format == 32 && xproto.Atom(e.Data.Data32[0]) == p.wmDelete {
			p.w.closeRequested()
		}
	case xproto.DestroyNotifyEvent:
		if e.Window == p.win.Id {
			p.w.closeRequested()
		}
	}
}

func (p *x11Platform) key(detail xproto.Keycode, state uint16, pressed bool) {
	mods := x11Mods(state)
	code := x11KeyCode(keybind.LookupString(p.xu, 0, detail))

	typ := KeyRelease
	if pressed {
		typ = KeyPress
		if p.keysDown[detail] {
			typ = KeyRepeat
		}
	}
	p.keysDown[detail] = pressed
	p.w.HandleKeyboardEvent(KeyboardEvent{Type: typ, Key: code, Mods: mods})

	if pressed && mods&(ModCtrl|ModAlt|ModSuper) == 0 {
		lookup := func(column byte) xproto.Keysym {
			return keybind.KeysymGet(p.xu, detail, column)
		}
		if r, ok := x11TextRune(lookup, state); ok {
			p.w.HandleKeyboardEvent(KeyboardEvent{Type: KeyInput, Codepoint: r})
		}
	}
}

func (p *x11Platform) button(detail xproto.Button, state uint16, x, y int16, pressed bool) {
	pos := mgl32.Vec2{float32(x), float32(y)}
	if dx, dy, ok := x11Scroll(detail); ok {
		if pressed {
			p.w.HandleMouseEvent(MouseEvent{Type: MouseScroll, Pos: pos, Scroll: mgl32.Vec2{dx, dy}, Mods: x11Mods(state)})
		}
		return
	}
	typ := MouseButtonUp
	if pressed {
		typ = MouseButtonDown
	}
	p.w.HandleMouseEvent(MouseEvent{Type: typ, Pos: pos, Button: x11MouseButton(detail), Mods: x11Mods(state)})
}

func (p *x11Platform) requestClose() {}

func (p *x11Platform) destroy() {
	conn := p.xu.Conn()
	if p.grabbed {
		xproto.UngrabPointer(conn, xproto.TimeCurrentTime)
	}
	if p.blank != 0 {
		xproto.FreeCursor(conn, p.blank)
	}
	p.win.Destroy()
	conn.Close()
}
