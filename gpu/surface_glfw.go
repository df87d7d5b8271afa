//go:build cgo && ((darwin && !ios) || windows || (linux && !android) || freebsd)

package gpu

import (
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gekko3d/window"
)

func glfwSurfaceDescriptor(h window.WindowHandle) (*wgpu.SurfaceDescriptor, error) {
	// wraps GLFW window into a wgpu surface.
	return wgpuglfw.GetSurfaceDescriptor(glfw.GoWindow(unsafe.Pointer(h.Native))), nil
}
