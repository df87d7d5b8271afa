//go:build !(cgo && ((darwin && !ios) || windows || (linux && !android) || freebsd))

package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gekko3d/window"
)

func glfwSurfaceDescriptor(h window.WindowHandle) (*wgpu.SurfaceDescriptor, error) {
	return nil, fmt.Errorf("%w: glfw is not available in this build", ErrUnsupportedHandle)
}
