package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"math/rand"

	"crease/internal/api"
	"crease/internal/theme"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// WagonPoint is one scoring shot on the wagon wheel
type WagonPoint struct {
	Index int
	Runs  int
	X, Y  float64
}

// WagonWheelPoints places every scoring delivery at angle index*20 degrees
// (mod 360) and distance runs*10. Dot balls are skipped.
func WagonWheelPoints(deliveries []api.Delivery) []WagonPoint {
	var points []WagonPoint
	for _, d := range deliveries {
		if d.Runs == 0 {
			continue
		}
		angle := float64(d.Index*20%360) * math.Pi / 180
		distance := float64(d.Runs * 10)
		points = append(points, WagonPoint{
			Index: d.Index,
			Runs:  d.Runs,
			X:     distance * math.Cos(angle),
			Y:     distance * math.Sin(angle),
		})
	}
	return points
}

// PitchPoint is where a simulated delivery pitched
type PitchPoint struct {
	Line   float64 // -1 off side .. 1 leg side
	Length float64 // 0 short .. 20 full
}

// PitchPoints simulates n pitching positions, uniform in line and length
func PitchPoints(n int, rng *rand.Rand) []PitchPoint {
	points := make([]PitchPoint, n)
	for i := range points {
		points[i] = PitchPoint{
			Line:   rng.Float64()*2 - 1,
			Length: rng.Float64() * 20,
		}
	}
	return points
}

// MomentumGraph plots runs per over as a line
func MomentumGraph(overs []api.OverTotal, opts Options) (image.Image, error) {
	opts = opts.withDefaults()
	field := opts.Theme.FieldColors()
	if len(overs) == 0 {
		return placeholder(opts.Width, opts.Height, "No overs bowled yet",
			theme.RGBA(field.Background), theme.RGBA(field.Text)), nil
	}

	xs := make([]float64, len(overs))
	ys := make([]float64, len(overs))
	maxRuns := 1.0
	for i, over := range overs {
		xs[i] = over.Over
		ys[i] = float64(over.Runs)
		maxRuns = math.Max(maxRuns, ys[i])
	}
	minX, maxX := xs[0], xs[0]
	for _, x := range xs {
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
	}
	if minX == maxX {
		minX, maxX = minX-1, maxX+1
	}

	line := theme.RGBA(opts.Theme.ScoreColors().Runs)
	ch := newChart("Momentum Graph (Runs per Over)", opts)
	ch.XAxis = axisX("Over", &chart.ContinuousRange{Min: minX, Max: maxX}, field)
	ch.YAxis = axisY("Runs", &chart.ContinuousRange{Min: 0, Max: maxRuns + 1}, field)
	ch.Series = []chart.Series{
		chart.ContinuousSeries{
			Name:    "Runs",
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: drawingColor(line),
				StrokeWidth: 2,
				DotColor:    drawingColor(line),
				DotWidth:    3,
			},
		},
	}
	return renderChart(ch)
}

// WagonWheel scatters scoring shots around the striker: green for fours,
// red for sixes, blue for everything else
func WagonWheel(deliveries []api.Delivery, opts Options) (image.Image, error) {
	opts = opts.withDefaults()
	field := opts.Theme.FieldColors()
	points := WagonWheelPoints(deliveries)
	if len(points) == 0 {
		return placeholder(opts.Width, opts.Height, "No scoring shots yet",
			theme.RGBA(field.Background), theme.RGBA(field.Text)), nil
	}

	extent := 70.0
	groups := map[ShotKind]*chart.ContinuousSeries{}
	score := opts.Theme.ScoreColors()
	for _, p := range points {
		extent = math.Max(extent, math.Max(math.Abs(p.X), math.Abs(p.Y))+10)
		kind := ShotShort
		switch p.Runs {
		case 4:
			kind = ShotFour
		case 6:
			kind = ShotSix
		}
		s, ok := groups[kind]
		if !ok {
			s = &chart.ContinuousSeries{Name: kindName(kind), Style: scatterStyle(ShotColor(kind, score))}
			groups[kind] = s
		}
		s.XValues = append(s.XValues, p.X)
		s.YValues = append(s.YValues, p.Y)
	}

	axis := chart.Style{StrokeColor: drawingColor(theme.RGBA(field.Grid)), StrokeWidth: 1}
	ch := newChart("Wagon Wheel", opts)
	ch.XAxis = axisX("Off Side", &chart.ContinuousRange{Min: -extent, Max: extent}, field)
	ch.YAxis = axisY("Leg Side", &chart.ContinuousRange{Min: -extent, Max: extent}, field)
	ch.Series = []chart.Series{
		chart.ContinuousSeries{XValues: []float64{-extent, extent}, YValues: []float64{0, 0}, Style: axis},
		chart.ContinuousSeries{XValues: []float64{0, 0}, YValues: []float64{-extent, extent}, Style: axis},
	}
	for _, kind := range []ShotKind{ShotShort, ShotFour, ShotSix} {
		if s, ok := groups[kind]; ok {
			ch.Series = append(ch.Series, *s)
		}
	}
	return renderChart(ch)
}

// PitchMap scatters n simulated pitching points, short balls at the top
func PitchMap(n int, rng *rand.Rand, opts Options) (image.Image, error) {
	opts = opts.withDefaults()
	field := opts.Theme.FieldColors()
	if n <= 0 {
		return placeholder(opts.Width, opts.Height, "No deliveries yet",
			theme.RGBA(field.Background), theme.RGBA(field.Text)), nil
	}

	points := PitchPoints(n, rng)
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, p := range points {
		xs[i], ys[i] = p.Line, p.Length
	}

	ch := newChart("Pitch Map (Bowling Length & Line)", opts)
	ch.XAxis = axisX("Line (Off ↔ Leg)", &chart.ContinuousRange{Min: -1, Max: 1}, field)
	ch.YAxis = axisY("Length (Short → Full)", &chart.ContinuousRange{Min: 0, Max: 20, Descending: true}, field)
	ch.Series = []chart.Series{
		chart.ContinuousSeries{
			Name:    "Pitch",
			XValues: xs,
			YValues: ys,
			Style:   scatterStyle(theme.RGBA(field.Pitch)),
		},
	}
	return renderChart(ch)
}

func newChart(title string, opts Options) chart.Chart {
	field := opts.Theme.FieldColors()
	bg := drawingColor(theme.RGBA(field.Background))
	return chart.Chart{
		Title:      title,
		TitleStyle: chart.Style{FontColor: drawingColor(theme.RGBA(field.Text))},
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{FillColor: bg, Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		Canvas:     chart.Style{FillColor: bg},
	}
}

func axisX(name string, rng *chart.ContinuousRange, field theme.FieldColors) chart.XAxis {
	return chart.XAxis{
		Name:      name,
		NameStyle: textStyle(field),
		Style:     textStyle(field),
		Range:     rng,
	}
}

func axisY(name string, rng *chart.ContinuousRange, field theme.FieldColors) chart.YAxis {
	return chart.YAxis{
		Name:      name,
		NameStyle: textStyle(field),
		Style:     textStyle(field),
		Range:     rng,
	}
}

func textStyle(field theme.FieldColors) chart.Style {
	text := drawingColor(theme.RGBA(field.Text))
	return chart.Style{FontColor: text, StrokeColor: text}
}

// scatterStyle renders points only, no connecting line
func scatterStyle(col color.RGBA) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    5,
		DotColor:    drawingColor(col),
	}
}

func kindName(kind ShotKind) string {
	switch kind {
	case ShotFour:
		return "Fours"
	case ShotSix:
		return "Sixes"
	default:
		return "Runs"
	}
}

func renderChart(ch chart.Chart) (image.Image, error) {
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render %q: %w", ch.Title, err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", ch.Title, err)
	}
	return img, nil
}

func drawingColor(c color.RGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
