package convo

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrUnknownTheme indicates a theme name that does not match a built-in theme.
	ErrUnknownTheme = errors.New("unknown theme")

	// ErrInvalidColor indicates a theme color that is not a #rrggbb hex value.
	ErrInvalidColor = errors.New("invalid color")

	// ErrUnsupportedFormat indicates a conversation file with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported conversation format")

	// ErrUnsupportedVersion indicates a conversation file with an unknown envelope version.
	ErrUnsupportedVersion = errors.New("unsupported envelope version")
)
