package window

// GamepadButton values follow the standard gamepad mapping order used by SDL
// and GLFW, so they index GamepadState.Buttons directly.
type GamepadButton int

const (
	GamepadButtonA GamepadButton = iota
	GamepadButtonB
	GamepadButtonX
	GamepadButtonY
	GamepadButtonLeftBumper
	GamepadButtonRightBumper
	GamepadButtonBack
	GamepadButtonStart
	GamepadButtonGuide
	GamepadButtonLeftThumb
	GamepadButtonRightThumb
	GamepadButtonDpadUp
	GamepadButtonDpadRight
	GamepadButtonDpadDown
	GamepadButtonDpadLeft
	gamepadButtonCount
)

type GamepadAxis int

const (
	GamepadAxisLeftX GamepadAxis = iota
	GamepadAxisLeftY
	GamepadAxisRightX
	GamepadAxisRightY
	GamepadAxisLeftTrigger
	GamepadAxisRightTrigger
	gamepadAxisCount
)

type GamepadEventType int

const (
	GamepadButtonDown GamepadEventType = iota
	GamepadButtonUp
	GamepadConnect
	GamepadDisconnect
)

type GamepadEvent struct {
	Type   GamepadEventType
	Button GamepadButton
}

type GamepadState struct {
	Connected bool
	Buttons   [gamepadButtonCount]bool
	Axes      [gamepadAxisCount]float32
}

func (s GamepadState) IsButtonDown(b GamepadButton) bool {
	if b < 0 || b >= gamepadButtonCount {
		return false
	}
	return s.Buttons[b]
}

func (s GamepadState) Axis(a GamepadAxis) float32 {
	if a < 0 || a >= gamepadAxisCount {
		return 0
	}
	return s.Axes[a]
}

// diffGamepad returns the events that turn prev into next, button transitions
// in button order. A connect is reported before the transitions. A disconnect
// releases every held button and is reported after them.
func diffGamepad(prev, next GamepadState) []GamepadEvent {
	var events []GamepadEvent
	if !prev.Connected && next.Connected {
		events = append(events, GamepadEvent{Type: GamepadConnect})
	}
	if prev.Connected && !next.Connected {
		next.Buttons = [gamepadButtonCount]bool{}
	}
	for b := GamepadButton(0); b < gamepadButtonCount; b++ {
		switch {
		case !prev.Buttons[b] && next.Buttons[b]:
			events = append(events, GamepadEvent{Type: GamepadButtonDown, Button: b})
		case prev.Buttons[b] && !next.Buttons[b]:
			events = append(events, GamepadEvent{Type: GamepadButtonUp, Button: b})
		}
	}
	if prev.Connected && !next.Connected {
		events = append(events, GamepadEvent{Type: GamepadDisconnect})
	}
	return events
}
