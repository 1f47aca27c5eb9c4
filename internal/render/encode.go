package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"io"
	"os"
	"strings"

	"github.com/BourgeoisBear/rasterm"
	"github.com/mattn/go-sixel"
)

// Protocol is a terminal inline image protocol
type Protocol string

const (
	ProtocolNone  Protocol = "none"
	ProtocolSixel Protocol = "sixel"
	ProtocolKitty Protocol = "kitty"
	ProtocolITerm Protocol = "iterm"
	ProtocolAuto  Protocol = "auto"
)

// Terminal cell size used to size images for a panel
const (
	CellWidth  = 8
	CellHeight = 16
)

// ParseProtocol accepts the names used by CREASE_GRAPHICS
func ParseProtocol(name string) (Protocol, error) {
	switch p := Protocol(strings.ToLower(strings.TrimSpace(name))); p {
	case ProtocolNone, ProtocolSixel, ProtocolKitty, ProtocolITerm, ProtocolAuto:
		return p, nil
	case "":
		return ProtocolAuto, nil
	default:
		return ProtocolNone, fmt.Errorf("unknown graphics protocol %q", name)
	}
}

// DetectProtocol guesses what the terminal supports from its environment.
// getenv is os.Getenv outside of tests.
func DetectProtocol(getenv func(string) string) Protocol {
	term := strings.ToLower(getenv("TERM"))
	program := strings.ToLower(getenv("TERM_PROGRAM"))

	switch {
	case getenv("KITTY_WINDOW_ID") != "" || strings.Contains(term, "kitty") || program == "ghostty":
		return ProtocolKitty
	case program == "iterm.app" || getenv("LC_TERMINAL") == "iTerm2":
		return ProtocolITerm
	case program == "wezterm":
		return ProtocolITerm
	case strings.Contains(term, "sixel") || strings.Contains(term, "mlterm") ||
		strings.HasPrefix(term, "foot") || strings.Contains(term, "yaft"):
		return ProtocolSixel
	}
	return ProtocolNone
}

// Resolve turns auto into a concrete protocol for the current terminal
func Resolve(p Protocol) Protocol {
	if p != ProtocolAuto {
		return p
	}
	switch {
	case rasterm.IsKittyCapable():
		return ProtocolKitty
	case rasterm.IsItermCapable():
		return ProtocolITerm
	}
	return DetectProtocol(os.Getenv)
}

// Encode writes img to w as an inline image escape sequence
func Encode(w io.Writer, img image.Image, p Protocol) error {
	switch p {
	case ProtocolSixel:
		if paletted, ok := img.(*image.Paletted); ok {
			return rasterm.SixelWriteImage(w, paletted)
		}
		enc := sixel.NewEncoder(w)
		enc.Dither = false
		return enc.Encode(img)
	case ProtocolKitty:
		return rasterm.KittyWriteImage(w, img, rasterm.KittyImgOpts{})
	case ProtocolITerm:
		return rasterm.ItermWriteImage(w, img)
	default:
		return fmt.Errorf("cannot encode images for protocol %q", p)
	}
}

// EncodeString is Encode into a string, ready for the sixel layer
func EncodeString(img image.Image, p Protocol) (string, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, img, p); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Paletted reduces img to the Plan9 palette with Floyd-Steinberg dithering
func Paletted(img image.Image) *image.Paletted {
	bounds := img.Bounds()
	out := image.NewPaletted(bounds, palette.Plan9)
	draw.FloydSteinberg.Draw(out, bounds, img, bounds.Min)
	return out
}

// ForCells scales img to cover a panel of cols x rows terminal cells
func ForCells(img image.Image, cols, rows int) image.Image {
	width, height := cols*CellWidth, rows*CellHeight
	if width <= 0 || height <= 0 {
		return img
	}
	return Scale(img, width, height)
}
