package window

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeySpace
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyInsert
	KeyDelete
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyMinus
	KeyEqual
	KeyKP0
	KeyKP1
	KeyKP2
	KeyKP3
	KeyKP4
	KeyKP5
	KeyKP6
	KeyKP7
	KeyKP8
	KeyKP9
	KeyKPAdd
	KeyKPSubtract
	KeyKPMultiply
	KeyKPDivide
	KeyKPEnter
	KeyLeftShift
	KeyRightShift
	KeyLeftControl
	KeyRightControl
	KeyLeftAlt
	KeyRightAlt
	KeyLeftSuper
	KeyRightSuper
	keyCodeCount
)

var keyNames = [...]string{
	KeyUnknown: "unknown",
	KeyA:       "a", KeyB: "b", KeyC: "c", KeyD: "d", KeyE: "e", KeyF: "f", KeyG: "g",
	KeyH: "h", KeyI: "i", KeyJ: "j", KeyK: "k", KeyL: "l", KeyM: "m", KeyN: "n",
	KeyO: "o", KeyP: "p", KeyQ: "q", KeyR: "r", KeyS: "s", KeyT: "t", KeyU: "u",
	KeyV: "v", KeyW: "w", KeyX: "x", KeyY: "y", KeyZ: "z",
	Key0: "0", Key1: "1", Key2: "2", Key3: "3", Key4: "4",
	Key5: "5", Key6: "6", Key7: "7", Key8: "8", Key9: "9",
	KeySpace:     "space",
	KeyEnter:     "enter",
	KeyEscape:    "escape",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyInsert:    "insert",
	KeyDelete:    "delete",
	KeyRight:     "right",
	KeyLeft:      "left",
	KeyDown:      "down",
	KeyUp:        "up",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "page_up",
	KeyPageDown:  "page_down",
	KeyF1:        "f1", KeyF2: "f2", KeyF3: "f3", KeyF4: "f4", KeyF5: "f5", KeyF6: "f6",
	KeyF7: "f7", KeyF8: "f8", KeyF9: "f9", KeyF10: "f10", KeyF11: "f11", KeyF12: "f12",
	KeyMinus: "minus",
	KeyEqual: "equal",
	KeyKP0:   "keypad_0", KeyKP1: "keypad_1", KeyKP2: "keypad_2", KeyKP3: "keypad_3",
	KeyKP4: "keypad_4", KeyKP5: "keypad_5", KeyKP6: "keypad_6", KeyKP7: "keypad_7",
	KeyKP8: "keypad_8", KeyKP9: "keypad_9",
	KeyKPAdd:        "keypad_add",
	KeyKPSubtract:   "keypad_subtract",
	KeyKPMultiply:   "keypad_multiply",
	KeyKPDivide:     "keypad_divide",
	KeyKPEnter:      "keypad_enter",
	KeyLeftShift:    "left_shift",
	KeyRightShift:   "right_shift",
	KeyLeftControl:  "left_control",
	KeyRightControl: "right_control",
	KeyLeftAlt:      "left_alt",
	KeyRightAlt:     "right_alt",
	KeyLeftSuper:    "left_super",
	KeyRightSuper:   "right_super",
}

func (k KeyCode) String() string {
	if k >= 0 && k < keyCodeCount {
		return keyNames[k]
	}
	return fmt.Sprintf("KeyCode(%d)", int(k))
}

type KeyModifierFlags uint8

const (
	ModShift KeyModifierFlags = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

func (m KeyModifierFlags) Has(flag KeyModifierFlags) bool {
	return m&flag == flag
}

type KeyboardEventType int

const (
	KeyPress KeyboardEventType = iota
	KeyRelease
	KeyRepeat
	// KeyInput carries translated text in Codepoint rather than a physical key.
	KeyInput
)

type KeyboardEvent struct {
	Type      KeyboardEventType
	Key       KeyCode
	Codepoint rune
	Mods      KeyModifierFlags
}

func (e KeyboardEvent) IsKeyPress() bool   { return e.Type == KeyPress }
func (e KeyboardEvent) IsKeyRelease() bool { return e.Type == KeyRelease }
func (e KeyboardEvent) IsKeyRepeat() bool  { return e.Type == KeyRepeat }
func (e KeyboardEvent) IsInput() bool      { return e.Type == KeyInput }

func (e KeyboardEvent) HasModifier(flag KeyModifierFlags) bool {
	return e.Mods.Has(flag)
}

func (e KeyboardEvent) String() string {
	switch e.Type {
	case KeyPress:
		return fmt.Sprintf("KeyboardEvent(press %s, mods=%#x)", e.Key, uint8(e.Mods))
	case KeyRelease:
		return fmt.Sprintf("KeyboardEvent(release %s, mods=%#x)", e.Key, uint8(e.Mods))
	case KeyRepeat:
		return fmt.Sprintf("KeyboardEvent(repeat %s, mods=%#x)", e.Key, uint8(e.Mods))
	default:
		return fmt.Sprintf("KeyboardEvent(input %q)", e.Codepoint)
	}
}

type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
	MouseButtonUnknown
)

type MouseEventType int

const (
	MouseButtonDown MouseEventType = iota
	MouseButtonUp
	MouseMove
	MouseScroll
)

// MouseEvent positions are in window coordinates with the origin at the top
// left. Scroll is only meaningful for MouseScroll events.
type MouseEvent struct {
	Type   MouseEventType
	Pos    mgl32.Vec2
	Scroll mgl32.Vec2
	Button MouseButton
	Mods   KeyModifierFlags
}

func (e MouseEvent) IsButtonDown() bool { return e.Type == MouseButtonDown }
func (e MouseEvent) IsButtonUp() bool   { return e.Type == MouseButtonUp }
func (e MouseEvent) IsMove() bool       { return e.Type == MouseMove }
func (e MouseEvent) IsScroll() bool     { return e.Type == MouseScroll }

func (e MouseEvent) HasModifier(flag KeyModifierFlags) bool {
	return e.Mods.Has(flag)
}

type Position struct {
	X, Y int32
}
