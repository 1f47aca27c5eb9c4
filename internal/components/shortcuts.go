package components

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Shortcut is one registered key binding
type Shortcut struct {
	Key         string // normalized, e.g. "space", "ctrl+c", "pagedown"
	Description string
	callback    func()
}

// ShortcutManager handles registration and dispatch of keyboard shortcuts.
// Help lists bindings in registration order.
type ShortcutManager struct {
	shortcuts map[string]*Shortcut
	order     []string
}

// NewShortcutManager creates a new shortcut manager
func NewShortcutManager() *ShortcutManager {
	return &ShortcutManager{
		shortcuts: make(map[string]*Shortcut),
	}
}

// RegisterShortcut binds shortcut (like "Ctrl+G" or "Space") to callback.
// Registering the same shortcut again replaces the callback.
func (sm *ShortcutManager) RegisterShortcut(shortcut, description string, callback func()) {
	key := NormalizeShortcut(shortcut)
	if key == "" || callback == nil {
		return
	}
	if _, exists := sm.shortcuts[key]; !exists {
		sm.order = append(sm.order, key)
	}
	sm.shortcuts[key] = &Shortcut{Key: key, Description: description, callback: callback}
}

// UnregisterShortcut removes a shortcut
func (sm *ShortcutManager) UnregisterShortcut(shortcut string) {
	key := NormalizeShortcut(shortcut)
	if _, exists := sm.shortcuts[key]; !exists {
		return
	}
	delete(sm.shortcuts, key)
	for i, k := range sm.order {
		if k == key {
			sm.order = append(sm.order[:i], sm.order[i+1:]...)
			break
		}
	}
}

// HandleKeyEvent runs the callback bound to event, reporting whether one matched
func (sm *ShortcutManager) HandleKeyEvent(event *tcell.EventKey) bool {
	key := KeyEventToString(event)
	if key == "" {
		return false
	}
	if shortcut, exists := sm.shortcuts[key]; exists {
		shortcut.callback()
		return true
	}
	return false
}

// Help returns the registered shortcuts in registration order
func (sm *ShortcutManager) Help() []Shortcut {
	out := make([]Shortcut, 0, len(sm.order))
	for _, key := range sm.order {
		out = append(out, *sm.shortcuts[key])
	}
	return out
}

// HelpText renders Help as "key description" pairs separated by two spaces
func (sm *ShortcutManager) HelpText() string {
	parts := make([]string, 0, len(sm.order))
	for _, s := range sm.Help() {
		parts = append(parts, s.Key+" "+s.Description)
	}
	return strings.Join(parts, "  ")
}

// KeyEventToString converts a tcell.EventKey to a normalized shortcut string
func KeyEventToString(event *tcell.EventKey) string {
	var parts []string

	mods := event.Modifiers()
	key := event.Key()

	// tcell reports Ctrl+letter as a dedicated control key
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ && key != tcell.KeyTab &&
		key != tcell.KeyEnter && key != tcell.KeyBackspace {
		return "ctrl+" + string(rune('a'+key-tcell.KeyCtrlA))
	}

	if mods&tcell.ModCtrl != 0 {
		parts = append(parts, "ctrl")
	}
	if mods&tcell.ModAlt != 0 {
		parts = append(parts, "alt")
	}

	if key == tcell.KeyRune {
		switch r := event.Rune(); r {
		case ' ':
			parts = append(parts, "space")
		default:
			parts = append(parts, strings.ToLower(string(r)))
		}
		return strings.Join(parts, "+")
	}

	if mods&tcell.ModShift != 0 {
		parts = append(parts, "shift")
	}

	name, ok := specialKeys[key]
	if !ok {
		return ""
	}
	parts = append(parts, name)
	return strings.Join(parts, "+")
}

var specialKeys = map[tcell.Key]string{
	tcell.KeyF1:        "f1",
	tcell.KeyF2:        "f2",
	tcell.KeyF3:        "f3",
	tcell.KeyF4:        "f4",
	tcell.KeyF5:        "f5",
	tcell.KeyEnter:     "enter",
	tcell.KeyEscape:    "esc",
	tcell.KeyTab:       "tab",
	tcell.KeyBackspace: "backspace",
	tcell.KeyDelete:    "delete",
	tcell.KeyHome:      "home",
	tcell.KeyEnd:       "end",
	tcell.KeyPgUp:      "pageup",
	tcell.KeyPgDn:      "pagedown",
	tcell.KeyUp:        "up",
	tcell.KeyDown:      "down",
	tcell.KeyLeft:      "left",
	tcell.KeyRight:     "right",
}

// NormalizeShortcut lowercases shortcut and orders its modifiers the way
// KeyEventToString emits them
func NormalizeShortcut(shortcut string) string {
	hasCtrl, hasAlt, hasShift, key := ParseShortcut(shortcut)
	if key == "" {
		return ""
	}
	var parts []string
	if hasCtrl {
		parts = append(parts, "ctrl")
	}
	if hasAlt {
		parts = append(parts, "alt")
	}
	if hasShift {
		parts = append(parts, "shift")
	}
	switch key {
	case " ":
		key = "space"
	case "pgup":
		key = "pageup"
	case "pgdn":
		key = "pagedown"
	case "escape":
		key = "esc"
	}
	return strings.Join(append(parts, key), "+")
}

// ParseShortcut parses a shortcut string (like "Ctrl+O") and returns the constituent parts
func ParseShortcut(shortcut string) (hasCtrl, hasAlt, hasShift bool, key string) {
	if shortcut == " " {
		return false, false, false, " "
	}
	parts := strings.Split(strings.ToLower(shortcut), "+")

	for _, part := range parts {
		part = strings.TrimSpace(part)
		switch part {
		case "ctrl":
			hasCtrl = true
		case "alt":
			hasAlt = true
		case "shift":
			hasShift = true
		default:
			key = part
		}
	}

	return
}
