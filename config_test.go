package window

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDescDefaults(t *testing.T) {
	desc, err := ParseDesc(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultWindowDesc(), desc)

	desc, err = ParseDesc([]byte("title: Editor\n"))
	require.NoError(t, err)
	assert.Equal(t, uint32(1280), desc.Width)
	assert.Equal(t, uint32(720), desc.Height)
	assert.Equal(t, "Editor", desc.Title)
	assert.False(t, desc.FixedSize)
}

func TestParseDescFull(t *testing.T) {
	data := []byte(`
width: 1920
height: 1080
title: Game
mode: Fullscreen
resizable: false
cursor_mode: disabled
backend: headless
`)
	desc, err := ParseDesc(data)
	require.NoError(t, err)
	assert.Equal(t, uint32(1920), desc.Width)
	assert.Equal(t, uint32(1080), desc.Height)
	assert.Equal(t, "Game", desc.Title)
	assert.Equal(t, WindowModeFullscreen, desc.Mode)
	assert.True(t, desc.FixedSize)
	assert.Equal(t, CursorModeDisabled, desc.CursorMode)
	assert.Equal(t, BackendHeadless, desc.Backend)
}

func TestParseDescErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"unknown key", "colour: red\n", "colour"},
		{"bad mode", "mode: tiny\n", "mode: "},
		{"bad cursor", "cursor_mode: glowing\n", "cursor_mode: "},
		{"bad backend", "backend: wayland\n", "backend: "},
		{"bad type", "width: wide\n", "failed to parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDesc([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseDescZeroSize(t *testing.T) {
	_, err := ParseDesc([]byte("width: 0\n"))
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestLoadDesc(t *testing.T) {
	path := filepath.Join(t.TempDir(), "window.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 320\nheight: 240\n"), 0o644))

	desc, err := LoadDesc(path)
	require.NoError(t, err)
	assert.Equal(t, uint32(320), desc.Width)
	assert.Equal(t, uint32(240), desc.Height)

	_, err = LoadDesc(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseEnums(t *testing.T) {
	for m, name := range windowModeNames {
		got, err := ParseWindowMode(name)
		require.NoError(t, err)
		assert.Equal(t, m, got)
		assert.Equal(t, name, m.String())
	}
	for k, name := range backendNames {
		got, err := ParseBackendKind(name)
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	assert.Equal(t, "CursorMode(9)", CursorMode(9).String())
}
