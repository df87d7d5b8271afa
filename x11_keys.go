//go:build (linux && !android) || freebsd || openbsd || netbsd

package window

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/BurntSushi/xgb/xproto"
)

// x11Keysyms maps keysym names, as returned by keybind.LookupString with no
// modifiers, to key codes.
var x11Keysyms = map[string]KeyCode{
	"space":       KeySpace,
	"Return":      KeyEnter,
	"Escape":      KeyEscape,
	"Tab":         KeyTab,
	"BackSpace":   KeyBackspace,
	"Insert":      KeyInsert,
	"Delete":      KeyDelete,
	"Right":       KeyRight,
	"Left":        KeyLeft,
	"Down":        KeyDown,
	"Up":          KeyUp,
	"Home":        KeyHome,
	"End":         KeyEnd,
	"Prior":       KeyPageUp,
	"Next":        KeyPageDown,
	"minus":       KeyMinus,
	"equal":       KeyEqual,
	"KP_Add":      KeyKPAdd,
	"KP_Subtract": KeyKPSubtract,
	"KP_Multiply": KeyKPMultiply,
	"KP_Divide":   KeyKPDivide,
	"KP_Enter":    KeyKPEnter,
	"Shift_L":     KeyLeftShift,
	"Shift_R":     KeyRightShift,
	"Control_L":   KeyLeftControl,
	"Control_R":   KeyRightControl,
	"Alt_L":       KeyLeftAlt,
	"Alt_R":       KeyRightAlt,
	"Super_L":     KeyLeftSuper,
	"Super_R":     KeyRightSuper,
}

func init() {
	for i := 0; i < 26; i++ {
		x11Keysyms[string(rune('a'+i))] = KeyA + KeyCode(i)
	}
	for i := 0; i < 10; i++ {
		x11Keysyms[string(rune('0'+i))] = Key0 + KeyCode(i)
		x11Keysyms[fmt.Sprintf("KP_%d", i)] = KeyKP0 + KeyCode(i)
	}
	for i := 1; i <= 12; i++ {
		x11Keysyms[fmt.Sprintf("F%d", i)] = KeyF1 + KeyCode(i-1)
	}
}

func x11KeyCode(name string) KeyCode {
	if code, ok := x11Keysyms[name]; ok {
		return code
	}
	return KeyUnknown
}

// Keypad keysyms that produce text.
var x11KeypadRunes = map[xproto.Keysym]rune{
	0xff80: ' ', // KP_Space
	0xffaa: '*', // KP_Multiply
	0xffab: '+', // KP_Add
	0xffac: ',', // KP_Separator
	0xffad: '-', // KP_Subtract
	0xffae: '.', // KP_Decimal
	0xffaf: '/', // KP_Divide
	0xffbd: '=', // KP_Equal
}

// x11KeysymRune returns the character a keysym produces. Latin-1 keysyms equal
// their code point and Unicode keysyms carry it below 0x01000000.
func x11KeysymRune(sym xproto.Keysym) (rune, bool) {
	switch {
	case sym >= 0x20 && sym <= 0x7e, sym >= 0xa0 && sym <= 0xff:
		return rune(sym), true
	case sym&0xff000000 == 0x01000000:
		r := rune(sym & 0x00ffffff)
		if !utf8.ValidRune(r) {
			return 0, false
		}
		return r, true
	case sym >= 0xffb0 && sym <= 0xffb9: // KP_0 to KP_9
		return '0' + rune(sym-0xffb0), true
	}
	r, ok := x11KeypadRunes[sym]
	return r, ok
}

// x11TextRune picks the keysym column for the modifier state and returns the
// character it produces. Caps Lock upper-cases letters only.
func x11TextRune(lookup func(column byte) xproto.Keysym, state uint16) (rune, bool) {
	column := byte(0)
	if state&xproto.ModMaskShift != 0 {
		column = 1
	}
	sym := lookup(column)
	if sym == 0 && column == 1 {
		sym = lookup(0)
	}
	r, ok := x11KeysymRune(sym)
	if ok && state&xproto.ModMaskLock != 0 {
		if state&xproto.ModMaskShift != 0 {
			r = unicode.ToLower(r)
		} else {
			r = unicode.ToUpper(r)
		}
	}
	return r, ok
}

func x11Mods(state uint16) KeyModifierFlags {
	var m KeyModifierFlags
	if state&xproto.ModMaskShift != 0 {
		m |= ModShift
	}
	if state&xproto.ModMaskControl != 0 {
		m |= ModCtrl
	}
	if state&xproto.ModMask1 != 0 {
		m |= ModAlt
	}
	if state&xproto.ModMask4 != 0 {
		m |= ModSuper
	}
	return m
}

func x11MouseButton(detail xproto.Button) MouseButton {
	switch detail {
	case xproto.ButtonIndex1:
		return MouseButtonLeft
	case xproto.ButtonIndex2:
		return MouseButtonMiddle
	case xproto.ButtonIndex3:
		return MouseButtonRight
	default:
		return MouseButtonUnknown
	}
}

// x11Scroll returns the scroll offset for the wheel pseudo buttons 4 to 7.
func x11Scroll(detail xproto.Button) (dx, dy float32, ok bool) {
	switch detail {
	case 4:
		return 0, 1, true
	case 5:
		return 0, -1, true
	case 6:
		return 1, 0, true
	case 7:
		return -1, 0, true
	}
	return 0, 0, false
}
