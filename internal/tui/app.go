package tui

import (
	"errors"
	"fmt"
	"io"
	"time"

	"crease/internal/api"
	"crease/internal/components"
	"crease/internal/log"
	"crease/internal/render"
	"crease/internal/theme"
	tuicomponents "crease/internal/tui/components"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	ballsPerOver    = 6   // PgUp/PgDn step
	commentaryBalls = 200 // balls replayed into the log after a seek
)

// Options configures the application
type Options struct {
	TickInterval time.Duration
	Graphics     render.Protocol // resolved protocol; none keeps every view as text
	Seed         int64           // seeds shot placement and the pitch map
	Screen       tcell.Screen    // nil uses the real terminal
	GraphicsOut  io.Writer       // where inline images are written, normally /dev/tty
}

// CreaseApp is the interactive replay window
type CreaseApp struct {
	app    *tview.Application
	replay api.ReplayAPI
	opts   Options

	pages    *tview.Pages
	mainGrid *tview.Grid

	// UI Components
	scoreboard *tuicomponents.ScoreboardComponent
	commentary *tuicomponents.CommentaryComponent
	viewPanel  *tuicomponents.ViewPanel
	progress   *tuicomponents.ProgressComponent
	status     *tuicomponents.StatusComponent
	layer      *tuicomponents.GraphicsLayer

	shortcuts *components.ShortcutManager
	playback  *Playback
	views     *viewRenderer

	// State, only touched on the UI goroutine
	snapshot     api.StateSnapshot
	message      string
	view         tuicomponents.View
	modalVisible bool
}

// NewApplication creates and configures the tview application
func NewApplication(replay api.ReplayAPI, opts Options) *CreaseApp {
	app := tview.NewApplication()
	if opts.Screen != nil {
		app.SetScreen(opts.Screen)
	}

	var layer *tuicomponents.GraphicsLayer
	if opts.Graphics != render.ProtocolNone && opts.Graphics != "" && opts.GraphicsOut != nil {
		layer = tuicomponents.NewGraphicsLayer(opts.GraphicsOut)
	} else {
		opts.Graphics = render.ProtocolNone
	}

	ca := &CreaseApp{
		app:        app,
		replay:     replay,
		opts:       opts,
		scoreboard: tuicomponents.NewScoreboardComponent(),
		commentary: tuicomponents.NewCommentaryComponent(),
		viewPanel:  tuicomponents.NewViewPanel(layer, opts.Graphics),
		progress:   tuicomponents.NewProgressComponent(),
		status:     tuicomponents.NewStatusComponent(),
		layer:      layer,
		shortcuts:  components.NewShortcutManager(),
		views:      newViewRenderer(replay, opts.Seed, opts.Graphics != render.ProtocolNone),
		snapshot:   replay.Snapshot(),
		message:    "Press ▶ Play (space) or n for the next ball",
	}
	ca.playback = NewPlayback(opts.TickInterval, func(fn func()) {
		app.QueueUpdateDraw(fn)
	}, ca.advance)

	ca.setupUI()
	ca.setupShortcuts()
	ca.refresh()

	log.Info("replay window created", "balls", replay.TotalBalls(), "graphics", opts.Graphics)
	return ca
}

// setupUI configures the user interface layout
func (ca *CreaseApp) setupUI() {
	ca.mainGrid = tview.NewGrid().
		SetRows(7, 0, 1, 1).
		SetColumns(0, 0).
		SetBorders(false)

	ca.mainGrid.AddItem(ca.scoreboard.GetView(), 0, 0, 1, 1, 0, 0, false)
	ca.mainGrid.AddItem(ca.commentary.GetView(), 1, 0, 1, 1, 0, 0, false)
	ca.mainGrid.AddItem(ca.viewPanel, 0, 1, 2, 1, 0, 0, false)
	ca.mainGrid.AddItem(ca.progress, 2, 0, 1, 2, 0, 0, false)
	ca.mainGrid.AddItem(ca.status.GetWrapper(), 3, 0, 1, 2, 0, 0, false)

	ca.progress.SetSeekFunc(ca.seek)

	ca.pages = tview.NewPages()
	ca.pages.AddPage("main", ca.mainGrid, true, true)

	ca.app.SetRoot(ca.pages, true)
	ca.app.EnableMouse(true)
	ca.app.SetInputCapture(ca.handleKey)
	ca.app.SetBeforeDrawFunc(func(screen tcell.Screen) bool {
		_, _, width, height := ca.viewPanel.GetInnerRect()
		if ca.views.resized(width, height) {
			ca.renderView()
		}
		return false
	})
	if ca.layer != nil {
		ca.app.SetAfterDrawFunc(func(screen tcell.Screen) {
			ca.layer.Render()
		})
	}
}

// setupShortcuts registers the replay key bindings
func (ca *CreaseApp) setupShortcuts() {
	sm := ca.shortcuts
	sm.RegisterShortcut("Space", "play/pause", ca.togglePlay)
	sm.RegisterShortcut("n", "next", func() { ca.advance() })
	sm.RegisterShortcut("Left", "-1", func() { ca.seek(ca.snapshot.BallIndex - 1) })
	sm.RegisterShortcut("Right", "+1", func() { ca.seek(ca.snapshot.BallIndex + 1) })
	sm.RegisterShortcut("PgUp", "-over", func() { ca.seek(max(ca.snapshot.BallIndex-ballsPerOver, 0)) })
	sm.RegisterShortcut("PgDn", "+over", func() {
		ca.seek(min(ca.snapshot.BallIndex+ballsPerOver, ca.snapshot.TotalBalls))
	})
	sm.RegisterShortcut("Home", "start", ca.reset)
	sm.RegisterShortcut("End", "end", func() { ca.seek(ca.snapshot.TotalBalls) })
	sm.RegisterShortcut("r", "reset", ca.reset)
	sm.RegisterShortcut("v", "view", func() { ca.setView(ca.view.Next()) })
	for i := tuicomponents.ViewField; i <= tuicomponents.ViewMatchups; i++ {
		view := i
		sm.RegisterShortcut(fmt.Sprint(int(view)+1), view.String(), func() { ca.setView(view) })
	}
	sm.RegisterShortcut("g", "goto", ca.showGotoDialog)
	sm.RegisterShortcut("?", "help", ca.showHelp)
	sm.RegisterShortcut("q", "quit", ca.Stop)
	sm.RegisterShortcut("Ctrl+C", "quit", ca.Stop)

	ca.status.SetHelp("space play  n next  ←/→ seek  v view  g goto  ? help  q quit")
}

// handleKey dispatches shortcuts unless a dialog owns the keyboard
func (ca *CreaseApp) handleKey(event *tcell.EventKey) *tcell.EventKey {
	if ca.modalVisible {
		if event.Key() == tcell.KeyCtrlC {
			ca.Stop()
			return nil
		}
		return event
	}
	if ca.shortcuts.HandleKeyEvent(event) {
		return nil
	}
	return event
}

// Run starts the TUI application and blocks until it exits
func (ca *CreaseApp) Run() error {
	defer ca.playback.Stop()
	return ca.app.Run()
}

// Stop ends playback and shuts down the application. Safe to call from any goroutine.
func (ca *CreaseApp) Stop() {
	ca.playback.Stop()
	ca.app.Stop()
}

// advance consumes one ball. It reports false at the end of the match, which
// also ends playback.
func (ca *CreaseApp) advance() bool {
	delivery, snapshot, err := ca.replay.Advance()
	if err != nil {
		if errors.Is(err, api.ErrMatchFinished) {
			ca.playback.Stop()
			ca.snapshot = snapshot
			ca.message = "🏁 Match Finished"
			ca.status.SetError("")
			ca.refresh()
			return false
		}
		log.Error("advance failed", "error", err)
		ca.status.SetError(err.Error())
		return false
	}

	ca.snapshot = snapshot
	ca.message = snapshot.LastEvent
	ca.commentary.Append(ca.commentaryLine(delivery))
	ca.status.SetError("")
	ca.refresh()
	return true
}

// seek moves to target, stopping playback and rebuilding every panel
func (ca *CreaseApp) seek(target int) {
	ca.playback.Stop()

	snapshot, err := ca.replay.Seek(target)
	if err != nil {
		log.Debug("seek rejected", "target", target, "error", err)
		ca.status.SetError(err.Error())
		ca.refresh()
		return
	}

	ca.snapshot = snapshot
	switch {
	case snapshot.BallIndex == 0:
		ca.message = "Start of match"
	case snapshot.Finished:
		ca.message = "🏁 Match Finished"
	default:
		ca.message = snapshot.LastEvent
	}
	ca.rebuildCommentary()
	ca.status.SetError("")
	ca.refresh()
}

// reset rewinds to ball 0
func (ca *CreaseApp) reset() {
	ca.playback.Stop()
	ca.snapshot = ca.replay.Reset()
	ca.message = "Replay reset. Press ▶ Play."
	ca.commentary.Replace(nil)
	ca.status.SetError("")
	ca.refresh()
}

// togglePlay starts or pauses playback
func (ca *CreaseApp) togglePlay() {
	if ca.snapshot.Finished {
		ca.message = "🏁 Match Finished"
		ca.refresh()
		return
	}
	ca.playback.Toggle()
	ca.refresh()
}

func (ca *CreaseApp) setView(view tuicomponents.View) {
	ca.view = view
	ca.renderView()
	ca.status.SetView(view.String())
}

func (ca *CreaseApp) commentaryLine(d api.Delivery) tuicomponents.CommentaryLine {
	text, err := ca.replay.Commentary(d.Index)
	if err != nil {
		text = d.Label
	}
	return tuicomponents.CommentaryLine{Text: text, Runs: d.Runs, Wicket: d.IsWicket}
}

// rebuildCommentary regenerates the log for the consumed prefix
func (ca *CreaseApp) rebuildCommentary() {
	deliveries := ca.views.deliveries()
	end := ca.snapshot.BallIndex
	start := max(end-commentaryBalls, 0)

	lines := make([]tuicomponents.CommentaryLine, 0, end-start)
	for _, d := range deliveries[start:end] {
		lines = append(lines, ca.commentaryLine(d))
	}
	ca.commentary.Replace(lines)
}

// refresh pushes the snapshot into every panel
func (ca *CreaseApp) refresh() {
	ca.scoreboard.Update(ca.snapshot, ca.message)
	ca.progress.SetPosition(ca.snapshot.BallIndex, ca.snapshot.TotalBalls)
	ca.status.SetProgress(ca.snapshot.BallIndex, ca.snapshot.TotalBalls)

	switch {
	case ca.playback.Playing():
		ca.status.SetPlayState(tuicomponents.Playing)
	case ca.snapshot.Finished:
		ca.status.SetPlayState(tuicomponents.Finished)
	default:
		ca.status.SetPlayState(tuicomponents.Paused)
	}
	ca.status.SetView(ca.view.String())
	ca.renderView()
}

func (ca *CreaseApp) renderView() {
	_, _, width, height := ca.viewPanel.GetInnerRect()
	title, img, text := ca.views.render(ca.view, ca.snapshot, width, height)
	ca.viewPanel.SetContent(title, img, text)
}

// showGotoDialog asks for a ball number and seeks to it
func (ca *CreaseApp) showGotoDialog() {
	ca.playback.Stop()
	dialog := tuicomponents.NewGotoDialog(ca.snapshot.BallIndex, ca.snapshot.TotalBalls,
		func(ball int) {
			ca.closeModal()
			ca.seek(ball)
		},
		ca.closeModal)

	ca.showModalPage(dialog.GetView(), dialog.GetForm())
}

// showHelp lists the key bindings
func (ca *CreaseApp) showHelp() {
	text := "Keyboard Shortcuts\n\n"
	for _, s := range ca.shortcuts.Help() {
		text += fmt.Sprintf("%-10s %s\n", s.Key, s.Description)
	}

	modal := theme.NewModal().
		SetText(text).
		AddButtons([]string{"Close"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			ca.closeModal()
		})
	ca.showModalPage(modal, modal)
}

func (ca *CreaseApp) showModalPage(page, focus tview.Primitive) {
	ca.modalVisible = true
	if ca.layer != nil {
		ca.layer.SetRegionVisible("view", false)
	}
	ca.pages.AddPage("modal", page, true, true)
	ca.app.SetFocus(focus)
}

// closeModal closes the currently displayed modal
func (ca *CreaseApp) closeModal() {
	ca.modalVisible = false
	ca.pages.RemovePage("modal")
}
