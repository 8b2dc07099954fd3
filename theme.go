package convo

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Built-in theme names.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Theme defines the palette, typography and shape tokens used to render a
// conversation. Colors are #rrggbb hex values so they can be interpolated.
type Theme struct {
	Name      string
	Primary   string // Expanded message surface
	Secondary string // Author label, avatar border, focus marker
	Surface   string // Collapsed message surface
	OnPrimary string // Body text over Primary
	OnSurface string // Body text over Surface
	Muted     string // Surface border, help line

	BoldAuthor    bool // Author label typography
	RoundedShapes bool // Medium shape: rounded message surface corners
}

// LightTheme returns the light palette.
func LightTheme() Theme {
	return Theme{
		Name:          ThemeLight,
		Primary:       "#6200ee",
		Secondary:     "#03dac5",
		Surface:       "#ffffff",
		OnPrimary:     "#ffffff",
		OnSurface:     "#000000",
		Muted:         "#757575",
		BoldAuthor:    true,
		RoundedShapes: true,
	}
}

// DarkTheme returns the dark palette.
func DarkTheme() Theme {
	return Theme{
		Name:          ThemeDark,
		Primary:       "#bb86fc",
		Secondary:     "#03dac5",
		Surface:       "#121212",
		OnPrimary:     "#000000",
		OnSurface:     "#ffffff",
		Muted:         "#9e9e9e",
		BoldAuthor:    true,
		RoundedShapes: true,
	}
}

// DefaultTheme returns the light theme.
func DefaultTheme() Theme {
	return LightTheme()
}

// ThemeByName returns the built-in theme with the given name. Matching is
// case-insensitive.
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ThemeLight:
		return LightTheme(), nil
	case ThemeDark:
		return DarkTheme(), nil
	default:
		return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
}

// Validate reports whether every palette entry is a parseable hex color.
func (t Theme) Validate() error {
	colors := []struct {
		name  string
		value string
	}{
		{"primary", t.Primary},
		{"secondary", t.Secondary},
		{"surface", t.Surface},
		{"on-primary", t.OnPrimary},
		{"on-surface", t.OnSurface},
		{"muted", t.Muted},
	}
	for _, c := range colors {
		if _, err := colorful.Hex(c.value); err != nil {
			return fmt.Errorf("%w: %s %q", ErrInvalidColor, c.name, c.value)
		}
	}
	return nil
}
