// Package anativewindow binds the reference counting and geometry functions of
// Android's ANativeWindow without cgo.
package anativewindow

import "errors"

// ErrUnavailable is returned by Load when libandroid cannot be loaded.
var ErrUnavailable = errors.New("anativewindow: libandroid unavailable")

// API calls into libandroid. The zero value is not usable; obtain one from Load.
type API struct {
	acquire   func(window uintptr)
	release   func(window uintptr)
	getWidth  func(window uintptr) int32
	getHeight func(window uintptr) int32
}

// Acquire increments the surface's reference count.
func (a *API) Acquire(window uintptr) {
	a.acquire(window)
}

// Release decrements the surface's reference count.
func (a *API) Release(window uintptr) {
	a.release(window)
}

// Size returns the surface size in pixels, or a negative value on error.
func (a *API) Size(window uintptr) (width, height int32) {
	return a.getWidth(window), a.getHeight(window)
}
