package gpu

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/window"
)

func TestSurfaceDescriptorInvalidHandle(t *testing.T) {
	_, err := SurfaceDescriptor(window.WindowHandle{Backend: window.BackendExternal})
	assert.ErrorIs(t, err, ErrUnsupportedHandle)
}

func TestSurfaceDescriptorX11Unsupported(t *testing.T) {
	_, err := SurfaceDescriptor(window.WindowHandle{Backend: window.BackendX11, XID: 0x400001})
	assert.ErrorIs(t, err, ErrUnsupportedHandle)
}

func TestSurfaceDescriptorHeadlessUnsupported(t *testing.T) {
	w, err := window.New(window.WindowDesc{Width: 64, Height: 64, Backend: window.BackendHeadless})
	require.NoError(t, err)
	defer w.Destroy()

	_, err = SurfaceDescriptor(w.Handle())
	assert.ErrorIs(t, err, ErrUnsupportedHandle)

	_, err = NewContext(w)
	assert.ErrorIs(t, err, ErrUnsupportedHandle)
}

func TestSurfaceDescriptorExternal(t *testing.T) {
	var native [8]byte
	ptr := uintptr(unsafe.Pointer(&native))

	desc, err := SurfaceDescriptor(window.WindowHandle{Backend: window.BackendExternal, Native: ptr})
	require.NoError(t, err)
	require.NotNil(t, desc.AndroidNativeWindow)
	assert.Equal(t, unsafe.Pointer(&native), desc.AndroidNativeWindow.Window)
}

func TestReleaseEmptyContext(t *testing.T) {
	c := &Context{}
	c.Release()
	c.Release()
	c.Resize(100, 100)
	assert.Nil(t, c.Surface)
}
