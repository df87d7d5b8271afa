package window

import "errors"

var (
	// ErrInvalidSize is returned by New for a descriptor with a zero width or height.
	ErrInvalidSize = errors.New("window: width and height must be positive")

	// ErrBackendUnavailable is returned by New when the requested backend was not
	// compiled into this binary.
	ErrBackendUnavailable = errors.New("window: backend unavailable")

	// ErrInvalidHandle is returned by AttachNativeWindow for a null surface pointer.
	ErrInvalidHandle = errors.New("window: invalid native window handle")

	// ErrAttachUnsupported is returned by AttachNativeWindow on backends that own
	// their native window.
	ErrAttachUnsupported = errors.New("window: backend does not accept an external native window")

	// ErrWindowDestroyed is returned by AttachNativeWindow after Destroy.
	ErrWindowDestroyed = errors.New("window: destroyed")
)
