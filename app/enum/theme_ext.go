package enum

// Toggle returns the opposite theme (dark↔light).
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Dark reports whether the theme selects the dark palette.
func (t Theme) Dark() bool {
	return t == ThemeDark
}

