package components

import (
	"bytes"
	"image"
	"strings"
	"testing"

	"crease/internal/api"
	"crease/internal/render"
	"crease/internal/theme"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func TestScoreboardText(t *testing.T) {
	snapshot := api.StateSnapshot{TotalRuns: 10, Wickets: 1, OverLabel: "0.3"}
	text := ScoreboardText(snapshot, "0.3 → Kohli vs Starc : 6 run(s)", theme.NewPavilionTheme())

	for _, want := range []string{"Score: 10 / 1", "Over: 0.3", "Kohli vs Starc : 6 run(s)"} {
		if !strings.Contains(text, want) {
			t.Errorf("scoreboard %q missing %q", text, want)
		}
	}
}

func TestCommentaryBounded(t *testing.T) {
	cc := NewCommentaryComponent()
	for i := 0; i < maxCommentaryLines+5; i++ {
		cc.Append(CommentaryLine{Text: "ball", Runs: i % 7})
	}
	if got := len(cc.Lines()); got != maxCommentaryLines {
		t.Errorf("Lines() = %d, want %d", got, maxCommentaryLines)
	}

	cc.Replace([]CommentaryLine{{Text: "0.1 → A vs B : 4 run(s)", Runs: 4}})
	lines := cc.Lines()
	if len(lines) != 1 || lines[0].Runs != 4 {
		t.Errorf("Replace() left %+v", lines)
	}
	if got := cc.GetView().GetText(true); got != "0.1 → A vs B : 4 run(s)" {
		t.Errorf("commentary text = %q", got)
	}
}

func TestStatusText(t *testing.T) {
	sc := NewStatusComponent()
	sc.SetProgress(3, 120)
	sc.SetPlayState(Playing)
	sc.SetView(ViewMomentum.String())

	text := sc.Text()
	for _, want := range []string{"Ball: 3 / 120", "Playing", "Momentum"} {
		if !strings.Contains(text, want) {
			t.Errorf("status %q missing %q", text, want)
		}
	}

	sc.SetError("ball index out of range")
	if !strings.Contains(sc.Text(), "out of range") {
		t.Errorf("status %q missing error", sc.Text())
	}
}

func TestBallAtColumn(t *testing.T) {
	tests := []struct {
		column, total, width, want int
	}{
		{0, 120, 61, 0},
		{60, 120, 61, 120},
		{30, 120, 61, 60},
		{-4, 120, 61, 0},
		{99, 120, 61, 120},
		{5, 0, 61, 0},
		{1, 3, 10, 0},
		{2, 3, 10, 1},
	}
	for _, tt := range tests {
		if got := BallAtColumn(tt.column, tt.total, tt.width); got != tt.want {
			t.Errorf("BallAtColumn(%d, %d, %d) = %d, want %d", tt.column, tt.total, tt.width, got, tt.want)
		}
	}

	// every knob position maps back to its own ball when the bar is wide enough
	for ball := 0; ball <= 40; ball++ {
		if got := BallAtColumn(knobColumn(ball, 40, 81), 40, 81); got != ball {
			t.Errorf("round trip of ball %d gave %d", ball, got)
		}
	}
}

func TestProgressDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(11, 1)

	pc := NewProgressComponent()
	pc.SetRect(0, 0, 11, 1)
	pc.SetPosition(5, 10)
	pc.Draw(screen)

	var row strings.Builder
	for x := 0; x < 11; x++ {
		r, _, _, _ := screen.GetContent(x, 0)
		row.WriteRune(r)
	}
	if got := row.String(); got != "━━━━━●─────" {
		t.Errorf("progress row = %q", got)
	}
}

func TestGraphicsLayer(t *testing.T) {
	var out bytes.Buffer
	layer := NewGraphicsLayer(&out)

	layer.SetRegion("view", GraphicsRegion{X: 2, Y: 3, Width: 4, Height: 2, Data: "IMG", Visible: true})
	layer.Render()
	if !strings.Contains(out.String(), "\x1b[4;3HIMG") {
		t.Errorf("render output %q missing positioned image", out.String())
	}

	out.Reset()
	layer.SetRegionVisible("view", false)
	if !strings.Contains(out.String(), "\x1b[4;3H    ") {
		t.Errorf("hiding should blank the region, got %q", out.String())
	}
	out.Reset()
	layer.Render()
	if out.Len() != 0 {
		t.Errorf("hidden region rendered %q", out.String())
	}

	layer.SetRegion("view", GraphicsRegion{X: 2, Y: 3, Width: 8, Height: 1, Data: "IMG2", Visible: true})
	region, ok := layer.Region("view")
	if !ok || region.MaxWidth != 8 || region.MaxHeight != 2 {
		t.Errorf("region = %+v, want max 8x2", region)
	}
}

func TestViewPanelTextFallback(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(30, 5)

	vp := NewViewPanel(nil, render.ProtocolSixel)
	if vp.Graphics() {
		t.Fatal("a panel without a layer cannot show images")
	}
	vp.SetRect(0, 0, 30, 5)
	vp.SetContent("Matchups", image.NewRGBA(image.Rect(0, 0, 4, 4)), "Starc → Rohit")
	vp.Draw(screen)

	var row strings.Builder
	for x := 1; x < 14; x++ {
		r, _, _, _ := screen.GetContent(x, 1)
		row.WriteRune(r)
	}
	if got := row.String(); got != "Starc → Rohit" {
		t.Errorf("panel row = %q", got)
	}
}

func TestViewPanelRegistersImage(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(20, 8)

	layer := NewGraphicsLayer(nil)
	vp := NewViewPanel(layer, render.ProtocolSixel)
	vp.SetRect(0, 0, 20, 8)
	vp.SetContent("Field View", render.FieldView(nil, render.Options{Width: 64, Height: 64, Theme: theme.NewPavilionTheme()}), "")
	vp.Draw(screen)

	region, ok := layer.Region("view")
	if !ok || !region.Visible || region.Data == "" {
		t.Fatalf("expected a visible encoded region, got %+v", region)
	}
	if region.X != 1 || region.Y != 1 || region.Width != 18 || region.Height != 6 {
		t.Errorf("region geometry = %+v", region)
	}
}

func TestViewCycle(t *testing.T) {
	v := ViewField
	seen := map[View]bool{}
	for i := 0; i < int(viewCount); i++ {
		seen[v] = true
		v = v.Next()
	}
	if v != ViewField || len(seen) != int(viewCount) {
		t.Errorf("cycle ended at %v after visiting %d views", v, len(seen))
	}
}

func TestTextViews(t *testing.T) {
	th := theme.NewPavilionTheme()

	field := FieldText(&render.Shot{Runs: 4, Kind: render.ShotFour, Distance: render.FourDistance}, 40, 20, th)
	if !strings.Contains(field, "@") || !strings.Contains(field, "●") {
		t.Errorf("field text missing striker or shot:\n%s", field)
	}
	if n := strings.Count(field, "\n"); n != 19 {
		t.Errorf("field text has %d rows, want 20", n+1)
	}

	momentum := MomentumText([]api.OverTotal{{Label: "0", Runs: 10}, {Label: "1", Runs: 5}}, 33, th)
	lines := strings.Split(momentum, "\n")
	if len(lines) != 2 {
		t.Fatalf("momentum lines = %d", len(lines))
	}
	if a, b := strings.Count(lines[0], "█"), strings.Count(lines[1], "█"); a != 2*b {
		t.Errorf("bars not proportional: %d vs %d", a, b)
	}
	if MomentumText(nil, 40, th) != "No overs bowled yet" {
		t.Error("empty momentum text")
	}

	matchups := MatchupsText([]api.Matchup{{Bowler: "Starc", Batsman: "Rohit", Balls: 2, Runs: 4, Wickets: 1}}, th)
	if !strings.Contains(matchups, "Starc  → Rohit") {
		t.Errorf("matchups text:\n%s", matchups)
	}

	pitch := PitchMapText([]render.PitchPoint{{Line: 0, Length: 0}}, 9, 5, th)
	if first := strings.Split(pitch, "\n")[0]; !strings.Contains(first, "●") {
		t.Errorf("short ball should be on the top row:\n%s", pitch)
	}

	wagon := WagonWheelText([]render.WagonPoint{{Runs: 6, X: 60}}, 21, 11, th)
	if !strings.Contains(wagon, "●") {
		t.Errorf("wagon wheel text:\n%s", wagon)
	}
}

func TestParseBall(t *testing.T) {
	tests := []struct {
		text    string
		want    int
		wantErr bool
	}{
		{"0", 0, false},
		{" 7 ", 7, false},
		{"120", 120, false},
		{"121", 0, true},
		{"-1", 0, true},
		{"six", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseBall(tt.text, 120)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBall(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseBall(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestGotoDialogSubmit(t *testing.T) {
	var got = -1
	gd := NewGotoDialog(3, 10, func(ball int) { got = ball }, nil)
	field := gd.GetForm().GetFormItem(0).(*tview.InputField)
	if field.GetText() != "3" {
		t.Errorf("initial text = %q, want current ball", field.GetText())
	}

	field.SetText("11")
	gd.submit()
	if got != -1 {
		t.Errorf("out of range ball submitted: %d", got)
	}

	field.SetText("10")
	gd.submit()
	if got != 10 {
		t.Errorf("submitted %d, want 10", got)
	}
}
