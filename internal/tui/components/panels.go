package components

import (
	"fmt"
	"strings"

	"crease/internal/api"
	"crease/internal/theme"

	"github.com/rivo/tview"
)

// maxCommentaryLines bounds the commentary log
const maxCommentaryLines = 200

// ScoreboardComponent shows score, over and the latest event
type ScoreboardComponent struct {
	view *tview.TextView
}

// NewScoreboardComponent creates the scoreboard panel
func NewScoreboardComponent() *ScoreboardComponent {
	view := theme.NewPanelView().SetTextAlign(tview.AlignCenter)
	view.SetTitle(" 🏏 Cricket Match Replay ")
	return &ScoreboardComponent{view: view}
}

// GetView returns the scoreboard TextView
func (sc *ScoreboardComponent) GetView() *tview.TextView {
	return sc.view
}

// Update redraws the scoreboard from a snapshot and a status message
func (sc *ScoreboardComponent) Update(snapshot api.StateSnapshot, message string) {
	sc.view.SetText(ScoreboardText(snapshot, message, theme.Current()))
}

// ScoreboardText formats the scoreboard
func ScoreboardText(snapshot api.StateSnapshot, message string, th theme.Theme) string {
	muted := colorTag(th.DefaultColors().Muted)

	var b strings.Builder
	fmt.Fprintf(&b, "[::b]Score: %d / %d[::-]\n", snapshot.TotalRuns, snapshot.Wickets)
	fmt.Fprintf(&b, "%sOver: %s[-]\n\n", muted, snapshot.OverLabel)
	b.WriteString(tview.Escape(message))
	return b.String()
}

// CommentaryLine is one delivery in the commentary log
type CommentaryLine struct {
	Text   string
	Runs   int
	Wicket bool
}

// CommentaryComponent is the scrolling ball-by-ball log
type CommentaryComponent struct {
	view  *tview.TextView
	lines []CommentaryLine
}

// NewCommentaryComponent creates the commentary panel
func NewCommentaryComponent() *CommentaryComponent {
	view := theme.NewPanelView()
	view.SetTitle(" Commentary ")
	view.SetScrollable(true)
	return &CommentaryComponent{view: view}
}

// GetView returns the commentary TextView
func (cc *CommentaryComponent) GetView() *tview.TextView {
	return cc.view
}

// Append adds a line and scrolls to it
func (cc *CommentaryComponent) Append(line CommentaryLine) {
	cc.lines = append(cc.lines, line)
	if len(cc.lines) > maxCommentaryLines {
		cc.lines = cc.lines[len(cc.lines)-maxCommentaryLines:]
	}
	cc.refresh()
}

// Replace swaps the whole log, used after a seek
func (cc *CommentaryComponent) Replace(lines []CommentaryLine) {
	if len(lines) > maxCommentaryLines {
		lines = lines[len(lines)-maxCommentaryLines:]
	}
	cc.lines = append([]CommentaryLine(nil), lines...)
	cc.refresh()
}

// Lines returns the logged lines, oldest first
func (cc *CommentaryComponent) Lines() []CommentaryLine {
	return append([]CommentaryLine(nil), cc.lines...)
}

func (cc *CommentaryComponent) refresh() {
	score := theme.Current().ScoreColors()
	var b strings.Builder
	for i, line := range cc.lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(colorTag(score.RunsColor(line.Runs, line.Wicket)))
		b.WriteString(tview.Escape(line.Text))
		b.WriteString("[-]")
	}
	cc.view.SetText(b.String())
	cc.view.ScrollToEnd()
}
