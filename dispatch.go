package window

type (
	ResizeFunc    func(width, height uint32)
	KeyboardFunc  func(event KeyboardEvent)
	MouseFunc     func(event MouseEvent)
	GamepadFunc   func(event GamepadEvent)
	DropFilesFunc func(paths []string)
)

type callbacks struct {
	onResize    ResizeFunc
	onKeyboard  KeyboardFunc
	onMouse     MouseFunc
	onGamepad   GamepadFunc
	onDropFiles DropFilesFunc
}

// SetOnResize registers the resize callback; nil clears it.
func (w *Window) SetOnResize(fn ResizeFunc) { w.callbacks.onResize = fn }

func (w *Window) SetOnKeyboardEvent(fn KeyboardFunc) { w.callbacks.onKeyboard = fn }

func (w *Window) SetOnMouseEvent(fn MouseFunc) { w.callbacks.onMouse = fn }

func (w *Window) SetOnGamepadEvent(fn GamepadFunc) { w.callbacks.onGamepad = fn }

func (w *Window) SetOnDropFiles(fn DropFilesFunc) { w.callbacks.onDropFiles = fn }

// The Handle* methods deliver one platform event. Backends call them while
// processing events, and hosts of the External backend call them directly to
// push events. Events without a registered callback are dropped. Callbacks run
// synchronously on the caller's goroutine and may call back into the window.

// HandleWindowSize stores the new size, then invokes the resize callback.
func (w *Window) HandleWindowSize(width, height uint32) {
	if w.destroyed {
		return
	}
	w.width = width
	w.height = height
	if fn := w.callbacks.onResize; fn != nil {
		fn(width, height)
	}
}

func (w *Window) HandleKeyboardEvent(event KeyboardEvent) {
	if w.destroyed {
		return
	}
	if fn := w.callbacks.onKeyboard; fn != nil {
		fn(event)
	}
}

func (w *Window) HandleMouseEvent(event MouseEvent) {
	if w.destroyed {
		return
	}
	if fn := w.callbacks.onMouse; fn != nil {
		fn(event)
	}
}

func (w *Window) HandleGamepadEvent(event GamepadEvent) {
	if w.destroyed {
		return
	}
	if fn := w.callbacks.onGamepad; fn != nil {
		fn(event)
	}
}

func (w *Window) HandleDropFiles(paths []string) {
	if w.destroyed {
		return
	}
	if fn := w.callbacks.onDropFiles; fn != nil {
		fn(paths)
	}
}
