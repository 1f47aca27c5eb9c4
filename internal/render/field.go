package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strconv"

	"crease/internal/theme"
)

// Field geometry in field units, striker at the origin
const (
	BoundaryRadius = 75.0
	InnerRadius    = 30.0
	PitchLength    = 40.0
	PitchWidth     = 6.0

	fieldExtent = 82.0
	fieldPixels = 480
)

// Options controls the size and palette of a rendered image
type Options struct {
	Width  int
	Height int
	Theme  theme.Theme
}

// DefaultOptions renders 640x480 images in the current theme
func DefaultOptions() Options {
	return Options{Width: 640, Height: 480, Theme: theme.Current()}
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 640
	}
	if o.Height <= 0 {
		o.Height = 480
	}
	if o.Theme == nil {
		o.Theme = theme.Current()
	}
	return o
}

// ShotColor returns the theme color of a shot
func ShotColor(kind ShotKind, colors theme.ScoreColors) color.RGBA {
	switch kind {
	case ShotFour:
		return theme.RGBA(colors.Four)
	case ShotSix:
		return theme.RGBA(colors.Six)
	default:
		return theme.RGBA(colors.Runs)
	}
}

// FieldView draws the ground from above with the shot, if any, played from the striker
func FieldView(shot *Shot, opts Options) image.Image {
	opts = opts.withDefaults()
	field := opts.Theme.FieldColors()

	c := newCanvas(fieldPixels, fieldExtent, theme.RGBA(field.Background))
	c.circle(BoundaryRadius, 0.8, 0, theme.RGBA(field.Boundary))
	c.circle(InnerRadius, 0.5, math.Pi/24, theme.RGBA(field.InnerCircle))
	c.rect(-PitchWidth/2, -PitchLength/2, PitchWidth, PitchLength, theme.RGBA(field.Pitch))
	c.fillCircle(0, 0, 1.5, theme.RGBA(field.Striker))

	caption := "Dot ball"
	if shot != nil {
		col := ShotColor(shot.Kind, opts.Theme.ScoreColors())
		x, y := shot.End()
		c.line(0, 0, x, y, shot.Width*2, col)
		c.fillCircle(x, y, 2.6, theme.RGBA(field.Striker))
		c.fillCircle(x, y, 2, col)
		caption = shotCaption(*shot)
	}

	text := theme.RGBA(field.Text)
	label(c.img, "Field View", 8, text)
	label(c.img, caption, fieldPixels-24, text)

	return fit(c.img, opts.Width, opts.Height, theme.RGBA(field.Background))
}

func shotCaption(shot Shot) string {
	switch shot.Kind {
	case ShotSix:
		return "SIX!"
	case ShotFour:
		return "FOUR!"
	default:
		return strconv.Itoa(shot.Runs) + " run(s)"
	}
}

// fit scales a square image into width x height keeping its aspect ratio
func fit(img *image.RGBA, width, height int, bg color.RGBA) image.Image {
	src := img.Bounds()
	if src.Dx() == width && src.Dy() == height {
		return img
	}

	side := width
	if height < side {
		side = height
	}
	scaled := Scale(img, side, side)

	out := placeholder(width, height, "", bg, bg)
	offset := image.Pt((width-side)/2, (height-side)/2)
	draw.Draw(out, image.Rectangle{Min: offset, Max: offset.Add(image.Pt(side, side))}, scaled, image.Point{}, draw.Src)
	return out
}
