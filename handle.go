package window

import "fmt"

// WindowHandle is a read-only view of the active backend's native window. It is
// valid until the owning Window is destroyed or its surface is detached.
type WindowHandle struct {
	Backend BackendKind
	// Native is the GLFWwindow* on the GLFW backend and the ANativeWindow* on
	// the External backend.
	Native uintptr
	// XID is the X11 window id on the X11 backend.
	XID uint32
}

func (h WindowHandle) Valid() bool {
	return h.Native != 0 || h.XID != 0
}

func (h WindowHandle) String() string {
	if h.XID != 0 {
		return fmt.Sprintf("WindowHandle(%s, xid=%#x)", h.Backend, h.XID)
	}
	return fmt.Sprintf("WindowHandle(%s, native=%#x)", h.Backend, h.Native)
}

// NativeWindowAPI is the reference counting and query surface of a host-owned
// native window, such as libandroid's ANativeWindow functions.
type NativeWindowAPI interface {
	Acquire(window uintptr)
	Release(window uintptr)
	Size(window uintptr) (width, height int32)
}

// foreignRef owns at most one retained reference to a host surface.
type foreignRef struct {
	api NativeWindowAPI
	ptr uintptr
}

func (r *foreignRef) get() (uintptr, bool) {
	return r.ptr, r.ptr != 0
}

// attach retains ptr. Attaching the pointer already held keeps the existing
// reference; attaching another one releases the previous reference first. A
// null ptr fails without touching the current reference.
func (r *foreignRef) attach(api NativeWindowAPI, ptr uintptr) error {
	if ptr == 0 {
		return ErrInvalidHandle
	}
	if ptr == r.ptr {
		return nil
	}
	r.release()
	api.Acquire(ptr)
	r.api = api
	r.ptr = ptr
	return nil
}

func (r *foreignRef) release() {
	if r.ptr == 0 {
		return
	}
	r.api.Release(r.ptr)
	r.ptr = 0
	r.api = nil
}
