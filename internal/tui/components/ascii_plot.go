package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// asciiPlot is a character grid used when the terminal cannot show images.
// Plot coordinates run from -extentX..extentX and -extentY..extentY, y up.
type asciiPlot struct {
	cols, rows int
	cells      []rune
	colors     []tcell.Color
	minX, maxX float64
	minY, maxY float64
}

func newASCIIPlot(cols, rows int, minX, maxX, minY, maxY float64) *asciiPlot {
	cols, rows = max(cols, 1), max(rows, 1)
	p := &asciiPlot{
		cols:   cols,
		rows:   rows,
		cells:  make([]rune, cols*rows),
		colors: make([]tcell.Color, cols*rows),
		minX:   minX,
		maxX:   maxX,
		minY:   minY,
		maxY:   maxY,
	}
	for i := range p.cells {
		p.cells[i] = ' '
		p.colors[i] = tcell.ColorDefault
	}
	return p
}

func (p *asciiPlot) cell(x, y float64) (int, int, bool) {
	col := int(math.Round((x - p.minX) / (p.maxX - p.minX) * float64(p.cols-1)))
	row := int(math.Round((p.maxY - y) / (p.maxY - p.minY) * float64(p.rows-1)))
	return col, row, col >= 0 && col < p.cols && row >= 0 && row < p.rows
}

func (p *asciiPlot) plot(x, y float64, ch rune, color tcell.Color) {
	if col, row, ok := p.cell(x, y); ok {
		p.cells[row*p.cols+col] = ch
		p.colors[row*p.cols+col] = color
	}
}

// ring plots a circle; dashed rings skip every other segment
func (p *asciiPlot) ring(r float64, ch rune, color tcell.Color, dashed bool) {
	steps := 4 * (p.cols + p.rows)
	for i := 0; i < steps; i++ {
		if dashed && (i/4)%2 == 1 {
			continue
		}
		theta := 2 * math.Pi * float64(i) / float64(steps)
		p.plot(r*math.Cos(theta), r*math.Sin(theta), ch, color)
	}
}

func (p *asciiPlot) line(x1, y1, x2, y2 float64, ch rune, color tcell.Color) {
	steps := 2 * max(p.cols, p.rows)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p.plot(x1+(x2-x1)*t, y1+(y2-y1)*t, ch, color)
	}
}

// String renders the grid with tview color tags
func (p *asciiPlot) String() string {
	var b strings.Builder
	for row := 0; row < p.rows; row++ {
		current := tcell.ColorDefault
		for col := 0; col < p.cols; col++ {
			i := row*p.cols + col
			if p.colors[i] != current {
				current = p.colors[i]
				b.WriteString(colorTag(current))
			}
			b.WriteRune(p.cells[i])
		}
		if current != tcell.ColorDefault {
			b.WriteString("[-]")
		}
		if row < p.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// colorTag returns the tview tag selecting color as foreground
func colorTag(color tcell.Color) string {
	if color == tcell.ColorDefault {
		return "[-]"
	}
	return fmt.Sprintf("[#%06x]", color.Hex())
}
