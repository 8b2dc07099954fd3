package main

import (
	"fmt"

	"github.com/fwojciec/convo"
)

const themeAuto = "auto"

// resolveTheme selects the theme for the -theme flag. darkBackground
// queries the terminal and is only called for auto.
func resolveTheme(name string, darkBackground func() bool) (convo.Theme, error) {
	if name == "" || name == themeAuto {
		if darkBackground() {
			return convo.DarkTheme(), nil
		}
		return convo.LightTheme(), nil
	}
	theme, err := convo.ThemeByName(name)
	if err != nil {
		return convo.Theme{}, fmt.Errorf("resolve theme: %w", err)
	}
	return theme, nil
}
