//go:build linux && !android

package anativewindow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadMissingLibrary(t *testing.T) {
	api, err := load("libgekko-does-not-exist.so")
	assert.Nil(t, api)
	assert.True(t, errors.Is(err, ErrUnavailable), "got %v", err)
}
