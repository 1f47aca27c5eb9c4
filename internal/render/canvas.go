package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// canvas maps field coordinates (origin at the striker, y up) onto an RGBA image
type canvas struct {
	img   *image.RGBA
	scale float64 // pixels per field unit
	cx    float64
	cy    float64
}

func newCanvas(size int, extent float64, bg color.RGBA) *canvas {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{bg}, image.Point{}, draw.Src)
	return &canvas{
		img:   img,
		scale: float64(size) / (2 * extent),
		cx:    float64(size) / 2,
		cy:    float64(size) / 2,
	}
}

func (c *canvas) toPixel(x, y float64) (int, int) {
	return int(math.Round(c.cx + x*c.scale)), int(math.Round(c.cy - y*c.scale))
}

func (c *canvas) set(x, y int, col color.RGBA) {
	if image.Pt(x, y).In(c.img.Bounds()) {
		c.img.SetRGBA(x, y, col)
	}
}

// fillCircle draws a filled disc of radius r field units
func (c *canvas) fillCircle(x, y, r float64, col color.RGBA) {
	px, py := c.toPixel(x, y)
	radius := int(math.Max(1, math.Round(r*c.scale)))
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				c.set(px+dx, py+dy, col)
			}
		}
	}
}

// circle strokes a ring; dash > 0 leaves gaps every dash radians
func (c *canvas) circle(r, width float64, dash float64, col color.RGBA) {
	steps := int(2 * math.Pi * r * c.scale * 2)
	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		if dash > 0 && int(theta/dash)%2 == 1 {
			continue
		}
		c.fillCircle(r*math.Cos(theta), r*math.Sin(theta), width/2, col)
	}
}

// line strokes from (x1, y1) to (x2, y2) with the given width in pixels
func (c *canvas) line(x1, y1, x2, y2, width float64, col color.RGBA) {
	px1, py1 := c.toPixel(x1, y1)
	px2, py2 := c.toPixel(x2, y2)
	half := int(math.Max(0, math.Round(width/2)))

	dx := abs(px2 - px1)
	dy := abs(py2 - py1)
	sx, sy := 1, 1
	if px1 > px2 {
		sx = -1
	}
	if py1 > py2 {
		sy = -1
	}

	err := dx - dy
	x, y := px1, py1
	for {
		for oy := -half; oy <= half; oy++ {
			for ox := -half; ox <= half; ox++ {
				c.set(x+ox, y+oy, col)
			}
		}
		if x == px2 && y == py2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// rect fills the rectangle with lower-left corner (x, y)
func (c *canvas) rect(x, y, w, h float64, col color.RGBA) {
	x0, y0 := c.toPixel(x, y+h)
	x1, y1 := c.toPixel(x+w, y)
	draw.Draw(c.img, image.Rect(x0, y0, x1, y1), &image.Uniform{col}, image.Point{}, draw.Over)
}

// label writes text centred horizontally at pixel row y
func label(img *image.RGBA, text string, y int, col color.RGBA) {
	face := basicfont.Face7x13
	dr := &font.Drawer{Dst: img, Src: image.NewUniform(col), Face: face}
	width := dr.MeasureString(text).Ceil()
	x := img.Bounds().Min.X + (img.Bounds().Dx()-width)/2
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y + face.Metrics().Ascent.Ceil())}
	dr.DrawString(text)
}

// placeholder is shown when a chart has nothing to plot yet
func placeholder(width, height int, text string, bg, fg color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{bg}, image.Point{}, draw.Src)
	label(img, text, height/2-6, fg)
	return img
}

// Scale resizes img to width x height
func Scale(img image.Image, width, height int) *image.RGBA {
	scaled := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.BiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Over, nil)
	return scaled
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
