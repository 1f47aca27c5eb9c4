package theme

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/gdamore/tcell/v2"
)

// DialogColors defines color scheme for dialogs and modals
type DialogColors struct {
	Background tcell.Color
	Foreground tcell.Color
	Border     tcell.Color
	Title      tcell.Color
	ButtonBg   tcell.Color
	ButtonFg   tcell.Color
	FieldBg    tcell.Color // Input field background
	FieldFg    tcell.Color // Input field text
}

// DefaultColors defines default text colors for general use
type DefaultColors struct {
	Background tcell.Color
	Foreground tcell.Color
	Muted      tcell.Color // secondary labels like "Over:" and "Ball:"
}

// StatusColors defines color scheme for the status bar
type StatusColors struct {
	Background  tcell.Color
	Foreground  tcell.Color
	HighlightFg tcell.Color
	ErrorFg     tcell.Color
	PlayingFg   tcell.Color
	PausedFg    tcell.Color
	FinishedFg  tcell.Color
}

// PanelColors defines color scheme for the scoreboard, commentary and views
type PanelColors struct {
	Background tcell.Color
	Foreground tcell.Color
	Border     tcell.Color
	Title      tcell.Color
}

// ScoreColors highlights individual deliveries in commentary and the scoreboard
type ScoreColors struct {
	Dot    tcell.Color
	Runs   tcell.Color // 1-3 and anything else that is not a boundary
	Four   tcell.Color
	Six    tcell.Color
	Wicket tcell.Color
}

// FieldColors is the palette used by rendered diagrams
type FieldColors struct {
	Background  tcell.Color
	Boundary    tcell.Color
	InnerCircle tcell.Color
	Pitch       tcell.Color
	Striker     tcell.Color
	Text        tcell.Color
	Grid        tcell.Color
}

// BorderStyle defines border styling options
type BorderStyle struct {
	Color      tcell.Color
	TitleColor tcell.Color
	Padding    int
}

// Theme interface defines all theming properties
type Theme interface {
	// Name returns the theme name
	Name() string

	DefaultColors() DefaultColors
	DialogColors() DialogColors
	StatusColors() StatusColors
	PanelColors() PanelColors
	ScoreColors() ScoreColors
	FieldColors() FieldColors

	BorderStyle() BorderStyle
}

// ThemeManager manages theme selection and application
type ThemeManager struct {
	currentTheme Theme
	themes       map[string]Theme
}

// NewThemeManager creates a theme manager with the built-in themes registered
func NewThemeManager() *ThemeManager {
	tm := &ThemeManager{
		themes: make(map[string]Theme),
	}

	tm.RegisterTheme(NewPavilionTheme())
	tm.RegisterTheme(NewClassicTheme())

	tm.SetTheme("pavilion")

	return tm
}

// RegisterTheme registers a new theme
func (tm *ThemeManager) RegisterTheme(theme Theme) {
	tm.themes[theme.Name()] = theme
}

// SetTheme sets the current theme by name
func (tm *ThemeManager) SetTheme(name string) error {
	if theme, exists := tm.themes[name]; exists {
		tm.currentTheme = theme
		return nil
	}
	return fmt.Errorf("theme '%s' not found", name)
}

// Current returns the current theme
func (tm *ThemeManager) Current() Theme {
	return tm.currentTheme
}

// Available returns the sorted list of theme names
func (tm *ThemeManager) Available() []string {
	names := make([]string, 0, len(tm.themes))
	for name := range tm.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Global theme manager instance
var defaultThemeManager = NewThemeManager()

// GetThemeManager returns the global theme manager
func GetThemeManager() *ThemeManager {
	return defaultThemeManager
}

// Current returns the current theme from the global manager
func Current() Theme {
	return defaultThemeManager.Current()
}

// SetTheme selects a theme on the global manager
func SetTheme(name string) error {
	return defaultThemeManager.SetTheme(name)
}

// RGBA converts a tcell color into an opaque image color for rendering
func RGBA(c tcell.Color) color.RGBA {
	r, g, b := c.RGB()
	if r < 0 {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}
}

// RunsColor picks the score color for a delivery
func (s ScoreColors) RunsColor(runs int, wicket bool) tcell.Color {
	switch {
	case wicket:
		return s.Wicket
	case runs == 0:
		return s.Dot
	case runs == 4:
		return s.Four
	case runs == 6:
		return s.Six
	default:
		return s.Runs
	}
}
