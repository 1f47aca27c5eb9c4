package components

import (
	"fmt"
	"strconv"
	"strings"

	"crease/internal/theme"

	"github.com/rivo/tview"
)

// GotoDialog asks for a ball number to seek to
type GotoDialog struct {
	form           *tview.Form
	total          int
	callback       func(int)
	cancelCallback func()
}

// NewGotoDialog creates the dialog. callback receives a ball index in [0, total].
func NewGotoDialog(current, total int, callback func(int), cancelCallback func()) *GotoDialog {
	gd := &GotoDialog{
		total:          total,
		callback:       callback,
		cancelCallback: cancelCallback,
	}

	gd.form = theme.NewForm()
	gd.form.SetTitle(" Go to Ball ")
	gd.form.SetTitleAlign(tview.AlignCenter)
	gd.form.SetBorder(true)

	gd.form.AddInputField(fmt.Sprintf("Ball (0-%d):", total), strconv.Itoa(current), 8,
		tview.InputFieldInteger, nil)

	gd.form.AddButton("Go", gd.submit)
	gd.form.AddButton("Cancel", func() {
		if gd.cancelCallback != nil {
			gd.cancelCallback()
		}
	})
	gd.form.SetCancelFunc(func() {
		if gd.cancelCallback != nil {
			gd.cancelCallback()
		}
	})
	gd.form.SetFocus(0)
	return gd
}

// ParseBall validates the text typed into the dialog
func ParseBall(text string, total int) (int, error) {
	ball, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("not a ball number: %q", text)
	}
	if ball < 0 || ball > total {
		return 0, fmt.Errorf("ball %d outside 0-%d", ball, total)
	}
	return ball, nil
}

func (gd *GotoDialog) submit() {
	field := gd.form.GetFormItem(0).(*tview.InputField)
	ball, err := ParseBall(field.GetText(), gd.total)
	if err != nil {
		gd.form.SetTitle(" " + err.Error() + " ")
		return
	}
	if gd.callback != nil {
		gd.callback(ball)
	}
}

// GetView returns the dialog centred over the page
func (gd *GotoDialog) GetView() tview.Primitive {
	return theme.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().
			AddItem(nil, 0, 1, false).
			AddItem(gd.form, 40, 0, true).
			AddItem(nil, 0, 1, false), 7, 0, true).
		AddItem(nil, 0, 1, false)
}

// GetForm returns the internal form component
func (gd *GotoDialog) GetForm() *tview.Form {
	return gd.form
}
