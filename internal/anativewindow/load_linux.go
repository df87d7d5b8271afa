//go:build linux

package anativewindow

import (
	"fmt"
	"sync"

	"github.com/ebitengine/purego"
)

var (
	loadOnce sync.Once
	loaded   *API
	loadErr  error
)

// Load opens libandroid.so once per process and resolves the ANativeWindow
// functions. Later calls return the same result.
func Load() (*API, error) {
	loadOnce.Do(func() {
		loaded, loadErr = load("libandroid.so")
	})
	return loaded, loadErr
}

func load(name string) (*API, error) {
	lib, err := purego.Dlopen(name, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	api := &API{}
	syms := []struct {
		fptr any
		name string
	}{
		{&api.acquire, "ANativeWindow_acquire"},
		{&api.release, "ANativeWindow_release"},
		{&api.getWidth, "ANativeWindow_getWidth"},
		{&api.getHeight, "ANativeWindow_getHeight"},
	}
	for _, s := range syms {
		sym, err := purego.Dlsym(lib, s.name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, s.name, err)
		}
		purego.RegisterFunc(s.fptr, sym)
	}
	return api, nil
}
