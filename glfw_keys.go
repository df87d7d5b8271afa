//go:build cgo && ((darwin && !ios) || windows || (linux && !android) || freebsd)

package window

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

var glfwKeys = map[glfw.Key]KeyCode{
	glfw.KeyA:            KeyA,
	glfw.KeyB:            KeyB,
	glfw.KeyC:            KeyC,
	glfw.KeyD:            KeyD,
	glfw.KeyE:            KeyE,
	glfw.KeyF:            KeyF,
	glfw.KeyG:            KeyG,
	glfw.KeyH:            KeyH,
	glfw.KeyI:            KeyI,
	glfw.KeyJ:            KeyJ,
	glfw.KeyK:            KeyK,
	glfw.KeyL:            KeyL,
	glfw.KeyM:            KeyM,
	glfw.KeyN:            KeyN,
	glfw.KeyO:            KeyO,
	glfw.KeyP:            KeyP,
	glfw.KeyQ:            KeyQ,
	glfw.KeyR:            KeyR,
	glfw.KeyS:            KeyS,
	glfw.KeyT:            KeyT,
	glfw.KeyU:            KeyU,
	glfw.KeyV:            KeyV,
	glfw.KeyW:            KeyW,
	glfw.KeyX:            KeyX,
	glfw.KeyY:            KeyY,
	glfw.KeyZ:            KeyZ,
	glfw.Key0:            Key0,
	glfw.Key1:            Key1,
	glfw.Key2:            Key2,
	glfw.Key3:            Key3,
	glfw.Key4:            Key4,
	glfw.Key5:            Key5,
	glfw.Key6:            Key6,
	glfw.Key7:            Key7,
	glfw.Key8:            Key8,
	glfw.Key9:            Key9,
	glfw.KeySpace:        KeySpace,
	glfw.KeyEnter:        KeyEnter,
	glfw.KeyEscape:       KeyEscape,
	glfw.KeyTab:          KeyTab,
	glfw.KeyBackspace:    KeyBackspace,
	glfw.KeyInsert:       KeyInsert,
	glfw.KeyDelete:       KeyDelete,
	glfw.KeyRight:        KeyRight,
	glfw.KeyLeft:         KeyLeft,
	glfw.KeyDown:         KeyDown,
	glfw.KeyUp:           KeyUp,
	glfw.KeyHome:         KeyHome,
	glfw.KeyEnd:          KeyEnd,
	glfw.KeyPageUp:       KeyPageUp,
	glfw.KeyPageDown:     KeyPageDown,
	glfw.KeyF1:           KeyF1,
	glfw.KeyF2:           KeyF2,
	glfw.KeyF3:           KeyF3,
	glfw.KeyF4:           KeyF4,
	glfw.KeyF5:           KeyF5,
	glfw.KeyF6:           KeyF6,
	glfw.KeyF7:           KeyF7,
	glfw.KeyF8:           KeyF8,
	glfw.KeyF9:           KeyF9,
	glfw.KeyF10:          KeyF10,
	glfw.KeyF11:          KeyF11,
	glfw.KeyF12:          KeyF12,
	glfw.KeyMinus:        KeyMinus,
	glfw.KeyEqual:        KeyEqual,
	glfw.KeyKP0:          KeyKP0,
	glfw.KeyKP1:          KeyKP1,
	glfw.KeyKP2:          KeyKP2,
	glfw.KeyKP3:          KeyKP3,
	glfw.KeyKP4:          KeyKP4,
	glfw.KeyKP5:          KeyKP5,
	glfw.KeyKP6:          KeyKP6,
	glfw.KeyKP7:          KeyKP7,
	glfw.KeyKP8:          KeyKP8,
	glfw.KeyKP9:          KeyKP9,
	glfw.KeyKPAdd:        KeyKPAdd,
	glfw.KeyKPSubtract:   KeyKPSubtract,
	glfw.KeyKPMultiply:   KeyKPMultiply,
	glfw.KeyKPDivide:     KeyKPDivide,
	glfw.KeyKPEnter:      KeyKPEnter,
	glfw.KeyLeftShift:    KeyLeftShift,
	glfw.KeyRightShift:   KeyRightShift,
	glfw.KeyLeftControl:  KeyLeftControl,
	glfw.KeyRightControl: KeyRightControl,
	glfw.KeyLeftAlt:      KeyLeftAlt,
	glfw.KeyRightAlt:     KeyRightAlt,
	glfw.KeyLeftSuper:    KeyLeftSuper,
	glfw.KeyRightSuper:   KeyRightSuper,
}

func glfwKeyCode(key glfw.Key) KeyCode {
	if code, ok := glfwKeys[key]; ok {
		return code
	}
	return KeyUnknown
}

func glfwMods(mods glfw.ModifierKey) KeyModifierFlags {
	var m KeyModifierFlags
	if mods&glfw.ModShift != 0 {
		m |= ModShift
	}
	if mods&glfw.ModControl != 0 {
		m |= ModCtrl
	}
	if mods&glfw.ModAlt != 0 {
		m |= ModAlt
	}
	if mods&glfw.ModSuper != 0 {
		m |= ModSuper
	}
	return m
}

func glfwMouseButton(button glfw.MouseButton) MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return MouseButtonLeft
	case glfw.MouseButtonMiddle:
		return MouseButtonMiddle
	case glfw.MouseButtonRight:
		return MouseButtonRight
	default:
		return MouseButtonUnknown
	}
}

func glfwKeyEventType(action glfw.Action) KeyboardEventType {
	switch action {
	case glfw.Release:
		return KeyRelease
	case glfw.Repeat:
		return KeyRepeat
	default:
		return KeyPress
	}
}

var glfwCursorModes = map[CursorMode]int{
	CursorModeNormal:   glfw.CursorNormal,
	CursorModeHidden:   glfw.CursorHidden,
	CursorModeDisabled: glfw.CursorDisabled,
}

// glfwCursorMode falls back to the normal cursor for unknown modes; GLFW
// rejects any other value with an invalid enum error.
func glfwCursorMode(mode CursorMode) int {
	if m, ok := glfwCursorModes[mode]; ok {
		return m
	}
	return glfw.CursorNormal
}
