package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyNames(t *testing.T) {
	for k := KeyCode(0); k < keyCodeCount; k++ {
		assert.NotEmpty(t, k.String(), "key %d has no name", int(k))
	}
	assert.Equal(t, "KeyCode(-1)", KeyCode(-1).String())
}

func TestKeyboardEvent(t *testing.T) {
	ev := KeyboardEvent{Type: KeyPress, Key: KeyS, Mods: ModCtrl | ModShift}
	assert.True(t, ev.IsKeyPress())
	assert.False(t, ev.IsKeyRelease())
	assert.True(t, ev.HasModifier(ModCtrl))
	assert.True(t, ev.HasModifier(ModCtrl|ModShift))
	assert.False(t, ev.HasModifier(ModAlt))
	assert.Equal(t, "KeyboardEvent(press s, mods=0x3)", ev.String())

	input := KeyboardEvent{Type: KeyInput, Codepoint: 'é'}
	assert.True(t, input.IsInput())
	assert.Equal(t, "KeyboardEvent(input 'é')", input.String())
}

func TestMouseEvent(t *testing.T) {
	ev := MouseEvent{Type: MouseScroll, Mods: ModAlt}
	assert.True(t, ev.IsScroll())
	assert.False(t, ev.IsMove())
	assert.True(t, ev.HasModifier(ModAlt))
}
