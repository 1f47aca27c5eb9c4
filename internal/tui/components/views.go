package components

import (
	"fmt"
	"math"
	"strings"

	"crease/internal/api"
	"crease/internal/render"
	"crease/internal/theme"
)

// View selects what the view panel shows
type View int

const (
	ViewField View = iota
	ViewMomentum
	ViewWagonWheel
	ViewPitchMap
	ViewMatchups
	viewCount
)

func (v View) String() string {
	switch v {
	case ViewField:
		return "Field View"
	case ViewMomentum:
		return "Momentum"
	case ViewWagonWheel:
		return "Wagon Wheel"
	case ViewPitchMap:
		return "Pitch Map"
	case ViewMatchups:
		return "Matchups"
	default:
		return fmt.Sprintf("View(%d)", int(v))
	}
}

// Next cycles through the views
func (v View) Next() View {
	return (v + 1) % viewCount
}

// FieldText draws the ground, and the shot if any, as characters
func FieldText(shot *render.Shot, cols, rows int, th theme.Theme) string {
	field := th.FieldColors()
	extent := render.BoundaryRadius + 3
	p := newASCIIPlot(cols, rows, -extent, extent, -extent, extent)

	p.ring(render.BoundaryRadius, 'o', field.Boundary, false)
	p.ring(render.InnerRadius, '.', field.InnerCircle, true)
	p.line(0, -render.PitchLength/2, 0, render.PitchLength/2, '█', field.Pitch)

	if shot != nil {
		color := th.ScoreColors().Runs
		switch shot.Kind {
		case render.ShotFour:
			color = th.ScoreColors().Four
		case render.ShotSix:
			color = th.ScoreColors().Six
		}
		x, y := shot.End()
		p.line(0, 0, x, y, '•', color)
		p.plot(x, y, '●', color)
	}
	p.plot(0, 0, '@', field.Striker)
	return p.String()
}

// MomentumText draws runs per over as horizontal bars
func MomentumText(overs []api.OverTotal, cols int, th theme.Theme) string {
	if len(overs) == 0 {
		return "No overs bowled yet"
	}

	maxRuns, labelWidth := 1, 1
	for _, o := range overs {
		maxRuns = max(maxRuns, o.Runs)
		labelWidth = max(labelWidth, len(o.Label))
	}
	barWidth := max(cols-labelWidth-12, 1)

	score := th.ScoreColors()
	var b strings.Builder
	for i, o := range overs {
		n := int(math.Round(float64(o.Runs) / float64(maxRuns) * float64(barWidth)))
		fmt.Fprintf(&b, "Over %-*s %s%s[-] %d", labelWidth, o.Label, colorTag(score.Runs), strings.Repeat("█", n), o.Runs)
		if i < len(overs)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// WagonWheelText scatters scoring shots around the striker
func WagonWheelText(points []render.WagonPoint, cols, rows int, th theme.Theme) string {
	if len(points) == 0 {
		return "No scoring shots yet"
	}

	extent := 70.0
	for _, pt := range points {
		extent = math.Max(extent, math.Max(math.Abs(pt.X), math.Abs(pt.Y))+10)
	}
	p := newASCIIPlot(cols, rows, -extent, extent, -extent, extent)
	grid := th.FieldColors().Grid
	p.line(-extent, 0, extent, 0, '─', grid)
	p.line(0, -extent, 0, extent, '│', grid)

	score := th.ScoreColors()
	for _, pt := range points {
		p.plot(pt.X, pt.Y, '●', score.RunsColor(pt.Runs, false))
	}
	return p.String()
}

// PitchMapText scatters pitching points, short balls at the top
func PitchMapText(points []render.PitchPoint, cols, rows int, th theme.Theme) string {
	if len(points) == 0 {
		return "No deliveries yet"
	}
	// y is negated so that length 0 (short) is drawn at the top
	p := newASCIIPlot(cols, rows, -1, 1, -20, 0)
	pitch := th.FieldColors().Pitch
	for _, pt := range points {
		p.plot(pt.Line, -pt.Length, '●', pitch)
	}
	return p.String()
}

// MatchupsText lists bowler to batsman matchups
func MatchupsText(matchups []api.Matchup, th theme.Theme) string {
	if len(matchups) == 0 {
		return "No matchups"
	}

	bowlerWidth, batsmanWidth := 6, 7
	for _, m := range matchups {
		bowlerWidth = max(bowlerWidth, len(m.Bowler))
		batsmanWidth = max(batsmanWidth, len(m.Batsman))
	}

	wicket := colorTag(th.ScoreColors().Wicket)
	var b strings.Builder
	fmt.Fprintf(&b, "%-*s   %-*s %5s %5s %3s", bowlerWidth, "Bowler", batsmanWidth, "Batsman", "Balls", "Runs", "W")
	for _, m := range matchups {
		b.WriteByte('\n')
		line := fmt.Sprintf("%-*s → %-*s %5d %5d %3d", bowlerWidth, m.Bowler, batsmanWidth, m.Batsman, m.Balls, m.Runs, m.Wickets)
		if m.Wickets > 0 {
			line = wicket + line + "[-]"
		}
		b.WriteString(line)
	}
	return b.String()
}
