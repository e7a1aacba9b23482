package tui

import (
	"errors"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func TestParseTheme(t *testing.T) {
	for _, theme := range Themes {
		got, err := ParseTheme(string(theme))
		if err != nil || got != theme {
			t.Errorf("ParseTheme(%q) = %q, %v", theme, got, err)
		}
	}
	if _, err := ParseTheme("sepia"); !errors.Is(err, ErrUnknownTheme) {
		t.Errorf("ParseTheme(sepia) err = %v, want ErrUnknownTheme", err)
	}
}

func TestThemedPalette(t *testing.T) {
	dark := NewPalette(nil)
	light := dark.WithTheme(ThemeLight)
	contrast := dark.WithTheme(ThemeContrast)

	if dark.WithTheme(ThemeDark) != dark {
		t.Error("WithTheme on the same theme should keep the palette")
	}
	if light.Theme() != ThemeLight || light.renderer != dark.renderer {
		t.Error("WithTheme should keep the renderer and switch the theme")
	}
	if light.UI() == dark.UI() || contrast.UI() == dark.UI() {
		t.Error("themes should differ in chrome colors")
	}

	if got := light.style(core.ColorBrightYellow).GetForeground(); got != lipgloss.Color("130") {
		t.Errorf("light bright yellow = %v, want 130", got)
	}
	if got := dark.style(core.ColorBrightYellow).GetForeground(); got != lipgloss.Color("11") {
		t.Errorf("dark bright yellow = %v, want 11", got)
	}
	if !contrast.style(core.ColorGray).GetBold() {
		t.Error("high contrast styles are bold")
	}
	if dark.style(core.ColorGray).GetBold() {
		t.Error("dark gray should not be bold")
	}
}
