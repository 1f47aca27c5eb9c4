package components

import (
	"crease/internal/theme"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// ProgressComponent is the match slider: a bar from ball 0 to N with a knob
// at the cursor. Clicking the bar seeks.
type ProgressComponent struct {
	*tview.Box
	position int
	total    int
	onSeek   func(ball int)
}

// NewProgressComponent creates the slider
func NewProgressComponent() *ProgressComponent {
	box := tview.NewBox()
	box.SetBackgroundColor(theme.Current().DefaultColors().Background)
	return &ProgressComponent{Box: box}
}

// SetPosition moves the knob
func (pc *ProgressComponent) SetPosition(ball, total int) {
	pc.position, pc.total = ball, total
}

// Position returns the knob position and the total
func (pc *ProgressComponent) Position() (int, int) {
	return pc.position, pc.total
}

// SetSeekFunc sets the callback invoked when the bar is clicked
func (pc *ProgressComponent) SetSeekFunc(onSeek func(ball int)) {
	pc.onSeek = onSeek
}

// knobColumn is the bar column showing ball, for a bar width columns wide
func knobColumn(ball, total, width int) int {
	if total <= 0 || width <= 1 {
		return 0
	}
	return ball * (width - 1) / total
}

// BallAtColumn maps a bar column back to a ball index in [0, total]
func BallAtColumn(column, total, width int) int {
	if total <= 0 || width <= 1 || column <= 0 {
		return 0
	}
	if column >= width-1 {
		return total
	}
	return (column*total + (width-1)/2) / (width - 1)
}

// Draw draws the bar
func (pc *ProgressComponent) Draw(screen tcell.Screen) {
	pc.Box.DrawForSubclass(screen, pc)
	x, y, width, height := pc.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	th := theme.Current()
	bg := th.DefaultColors().Background
	done := tcell.StyleDefault.Background(bg).Foreground(th.ScoreColors().Four)
	todo := tcell.StyleDefault.Background(bg).Foreground(th.DefaultColors().Muted)
	knob := tcell.StyleDefault.Background(bg).Foreground(th.DefaultColors().Foreground)

	row := y + height/2
	k := knobColumn(pc.position, pc.total, width)
	for col := 0; col < width; col++ {
		switch {
		case col == k:
			screen.SetContent(x+col, row, '●', nil, knob)
		case col < k:
			screen.SetContent(x+col, row, '━', nil, done)
		default:
			screen.SetContent(x+col, row, '─', nil, todo)
		}
	}
}

// MouseHandler seeks to the clicked column
func (pc *ProgressComponent) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return pc.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		if action != tview.MouseLeftClick || !pc.InRect(event.Position()) {
			return false, nil
		}
		x, _, width, _ := pc.GetInnerRect()
		mx, _ := event.Position()
		if pc.onSeek != nil {
			pc.onSeek(BallAtColumn(mx-x, pc.total, width))
		}
		return true, nil
	})
}
