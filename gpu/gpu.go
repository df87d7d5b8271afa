// Package gpu connects a window to a WebGPU device. It builds the surface from
// the window's native handle and owns the adapter, device, queue and surface
// configuration that a renderer presents through.
package gpu

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gekko3d/window"
)

// ErrUnsupportedHandle is returned for handles no surface can be created from,
// such as X11 windows and invalid or detached handles.
var ErrUnsupportedHandle = errors.New("gpu: unsupported window handle")

// SurfaceDescriptor describes a WebGPU surface for the native window behind h.
func SurfaceDescriptor(h window.WindowHandle) (*wgpu.SurfaceDescriptor, error) {
	if !h.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedHandle, h)
	}
	switch h.Backend {
	case window.BackendGLFW:
		return glfwSurfaceDescriptor(h)
	case window.BackendExternal:
		return &wgpu.SurfaceDescriptor{
			AndroidNativeWindow: &wgpu.SurfaceDescriptorFromAndroidNativeWindow{
				Window: unsafe.Pointer(h.Native),
			},
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedHandle, h)
	}
}

type Context struct {
	Surface *wgpu.Surface
	Adapter *wgpu.Adapter
	Device  *wgpu.Device
	Queue   *wgpu.Queue
	Config  *wgpu.SurfaceConfiguration
}

// NewContext creates a surface for w and a device able to present to it. The
// surface is configured for the window's framebuffer size with vsync.
func NewContext(w *window.Window) (*Context, error) {
	desc, err := SurfaceDescriptor(w.Handle())
	if err != nil {
		return nil, err
	}

	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	c := &Context{}
	c.Surface = instance.CreateSurface(desc)

	// finds a suitable GPU (discrete GPU preferred)
	c.Adapter, err = instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: c.Surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		c.Release()
		return nil, fmt.Errorf("failed to request adapter: %w", err)
	}

	c.Device, err = c.Adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Window Device",
	})
	if err != nil {
		c.Release()
		return nil, fmt.Errorf("failed to request device: %w", err)
	}
	c.Queue = c.Device.GetQueue()

	caps := c.Surface.GetCapabilities(c.Adapter)
	if len(caps.Formats) == 0 || len(caps.AlphaModes) == 0 {
		c.Release()
		return nil, errors.New("surface is not compatible with the adapter")
	}
	width, height := w.FramebufferSize()
	c.Config = &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      caps.Formats[0],
		Width:       width,
		Height:      height,
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   caps.AlphaModes[0],
	}
	c.Surface.Configure(c.Adapter, c.Device, c.Config)
	return c, nil
}

// Resize reconfigures the surface for a framebuffer size in pixels. Zero
// sizes, as reported for minimized windows, are ignored.
func (c *Context) Resize(width, height uint32) {
	if width == 0 || height == 0 || c.Config == nil {
		return
	}
	c.Config.Width = width
	c.Config.Height = height
	c.Surface.Configure(c.Adapter, c.Device, c.Config)
}

// Clear presents a frame filled with color.
func (c *Context) Clear(color wgpu.Color) error {
	next, err := c.Surface.GetCurrentTexture()
	if err != nil {
		return err
	}
	defer next.Release()

	view, err := next.CreateView(nil)
	if err != nil {
		return err
	}
	defer view.Release()

	encoder, err := c.Device.CreateCommandEncoder(nil)
	if err != nil {
		return err
	}
	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: color,
		}},
	})
	defer pass.Release()
	if err := pass.End(); err != nil {
		return err
	}

	cmd, err := encoder.Finish(nil)
	if err != nil {
		return err
	}
	defer cmd.Release()

	c.Queue.Submit(cmd)
	c.Surface.Present()
	return nil
}

// Release frees the context in reverse creation order. It is safe to call on
// a partially built or already released context.
func (c *Context) Release() {
	if c.Queue != nil {
		c.Queue.Release()
		c.Queue = nil
	}
	if c.Device != nil {
		c.Device.Release()
		c.Device = nil
	}
	if c.Adapter != nil {
		c.Adapter.Release()
		c.Adapter = nil
	}
	if c.Surface != nil {
		c.Surface.Release()
		c.Surface = nil
	}
	c.Config = nil
}
