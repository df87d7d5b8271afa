//go:build !linux

package anativewindow

// Load always fails outside Linux and Android.
func Load() (*API, error) {
	return nil, ErrUnavailable
}
