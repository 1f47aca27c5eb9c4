package components

import (
	"fmt"
	"strings"

	"crease/internal/theme"

	"github.com/rivo/tview"
)

// PlayState is the playback indicator shown in the status bar
type PlayState int

const (
	Paused PlayState = iota
	Playing
	Finished
)

func (s PlayState) String() string {
	switch s {
	case Playing:
		return "▶ Playing"
	case Finished:
		return "🏁 Finished"
	default:
		return "⏸ Paused"
	}
}

// StatusComponent manages the bottom status bar
type StatusComponent struct {
	wrapper *tview.TextView
	ball    int
	total   int
	state   PlayState
	view    string
	help    string
	err     string
}

// NewStatusComponent creates a new status bar component
func NewStatusComponent() *StatusComponent {
	statusBar := theme.NewStatusBar().
		SetTextAlign(tview.AlignLeft).
		SetWrap(false)

	return &StatusComponent{wrapper: statusBar}
}

// GetWrapper returns the status bar TextView
func (sc *StatusComponent) GetWrapper() *tview.TextView {
	return sc.wrapper
}

// SetProgress sets the "Ball: i / N" counter
func (sc *StatusComponent) SetProgress(ball, total int) {
	sc.ball, sc.total = ball, total
	sc.UpdateStatus()
}

// SetPlayState sets the playback indicator
func (sc *StatusComponent) SetPlayState(state PlayState) {
	sc.state = state
	sc.UpdateStatus()
}

// SetView names the visualization on show
func (sc *StatusComponent) SetView(name string) {
	sc.view = name
	sc.UpdateStatus()
}

// SetHelp sets the shortcut summary on the right
func (sc *StatusComponent) SetHelp(help string) {
	sc.help = help
	sc.UpdateStatus()
}

// SetError shows a transient error until the next call with ""
func (sc *StatusComponent) SetError(msg string) {
	sc.err = msg
	sc.UpdateStatus()
}

// Text returns the plain status text without color tags
func (sc *StatusComponent) Text() string {
	return sc.wrapper.GetText(true)
}

// UpdateStatus updates the status bar display
func (sc *StatusComponent) UpdateStatus() {
	colors := theme.Current().StatusColors()

	stateColor := colors.PausedFg
	switch sc.state {
	case Playing:
		stateColor = colors.PlayingFg
	case Finished:
		stateColor = colors.FinishedFg
	}

	var text strings.Builder
	fmt.Fprintf(&text, " %sBall: %d / %d[-]", colorTag(colors.HighlightFg), sc.ball, sc.total)
	fmt.Fprintf(&text, " | %s%s[-]", colorTag(stateColor), sc.state)
	if sc.view != "" {
		fmt.Fprintf(&text, " | %s", sc.view)
	}
	if sc.err != "" {
		fmt.Fprintf(&text, " | %s%s[-]", colorTag(colors.ErrorFg), tview.Escape(sc.err))
	}
	if sc.help != "" {
		fmt.Fprintf(&text, " | %s", sc.help)
	}
	sc.wrapper.SetText(text.String())
}
