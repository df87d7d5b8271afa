package window

import (
	"fmt"

	"github.com/gekko3d/window/internal/anativewindow"
)

func init() {
	registerBackend(BackendExternal, newExternalPlatform)
}

// externalPlatform is driven by a host application that creates the native
// surface itself (an Android activity, an iOS view controller) and pushes
// events through the Window.Handle* methods. Only the surface reference and the
// size are real; everything else is recorded or ignored.
type externalPlatform struct {
	w   *Window
	api NativeWindowAPI
	ref foreignRef
}

func newExternalPlatform(w *Window, desc *WindowDesc) (platform, error) {
	return &externalPlatform{w: w, api: desc.NativeAPI}, nil
}

func (p *externalPlatform) nativeAPI() (NativeWindowAPI, error) {
	if p.api == nil {
		api, err := anativewindow.Load()
		if err != nil {
			return nil, err
		}
		p.api = api
	}
	return p.api, nil
}

func (p *externalPlatform) attach(ptr uintptr) error {
	log := p.w.log
	log.Debugf("Attaching native window %#x", ptr)
	if ptr == 0 {
		log.Errorf("Invalid native window pointer (null)")
		return ErrInvalidHandle
	}

	api, err := p.nativeAPI()
	if err != nil {
		log.Errorf("Native window API unavailable: %v", err)
		return fmt.Errorf("failed to load native window API: %w", err)
	}

	if prev, ok := p.ref.get(); ok && prev != ptr {
		log.Debugf("Releasing previous native window %#x", prev)
	}
	if err := p.ref.attach(api, ptr); err != nil {
		log.Errorf("Failed to acquire native window %#x: %v", ptr, err)
		return err
	}
	log.Debugf("Acquired native window %#x", ptr)

	width, height := api.Size(ptr)
	log.Debugf("Native window dimensions: %dx%d", width, height)
	if width > 0 && height > 0 {
		p.w.width = uint32(width)
		p.w.height = uint32(height)
		log.Debugf("Window size updated to %dx%d", p.w.width, p.w.height)
	} else {
		log.Warnf("Ignoring invalid native window dimensions %dx%d, keeping %dx%d",
			width, height, p.w.width, p.w.height)
	}

	log.Debugf("Native window %#x attached", ptr)
	return nil
}

func (p *externalPlatform) detach() {
	if ptr, ok := p.ref.get(); ok {
		p.ref.release()
		p.w.log.Debugf("Detached native window %#x", ptr)
	}
}

func (p *externalPlatform) kind() BackendKind { return BackendExternal }

func (p *externalPlatform) handle() WindowHandle {
	ptr, _ := p.ref.get()
	return WindowHandle{Backend: BackendExternal, Native: ptr}
}

// The host owns the surface size; a later HandleWindowSize overwrites this.
func (p *externalPlatform) setSize(width, height uint32) {
	p.w.width = width
	p.w.height = height
}

// ANativeWindow sizes are already in pixels.
func (p *externalPlatform) framebufferSize() (uint32, uint32, bool) { return 0, 0, false }

func (p *externalPlatform) position() Position { return Position{} }

func (p *externalPlatform) setPosition(pos Position) {}

func (p *externalPlatform) setTitle(title string) {}

func (p *externalPlatform) setIcon(path string) {}

func (p *externalPlatform) setCursorMode(mode CursorMode) {}

func (p *externalPlatform) clipboard() (string, bool) { return "", false }

func (p *externalPlatform) setClipboard(text string) {}

func (p *externalPlatform) pollGamepadInput() {}

func (p *externalPlatform) gamepadState() GamepadState { return GamepadState{} }

func (p *externalPlatform) processEvents() {}

func (p *externalPlatform) requestClose() {}

func (p *externalPlatform) destroy() {
	p.detach()
}
