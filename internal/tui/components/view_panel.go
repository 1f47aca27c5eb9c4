package components

import (
	"image"
	"strings"

	"crease/internal/log"
	"crease/internal/render"
	"crease/internal/theme"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// ViewPanel shows the selected visualization, as an inline image when the
// terminal supports one and as text otherwise
type ViewPanel struct {
	*tview.Box
	layer    *GraphicsLayer
	regionID string
	protocol render.Protocol

	image    image.Image
	text     string
	encoded  string
	encodedW int
	encodedH int
}

// NewViewPanel creates the panel. protocol none (or a nil layer) keeps it text only.
func NewViewPanel(layer *GraphicsLayer, protocol render.Protocol) *ViewPanel {
	colors := theme.Current().PanelColors()

	box := tview.NewBox()
	box.SetBorder(true)
	box.SetBackgroundColor(colors.Background)
	box.SetBorderColor(colors.Border)
	box.SetTitleColor(colors.Title)

	if layer == nil {
		protocol = render.ProtocolNone
	}
	return &ViewPanel{
		Box:      box,
		layer:    layer,
		regionID: "view",
		protocol: protocol,
	}
}

// Graphics reports whether images are shown inline
func (vp *ViewPanel) Graphics() bool {
	return vp.protocol != render.ProtocolNone
}

// SetContent replaces what is shown. img may be nil; text is the fallback.
func (vp *ViewPanel) SetContent(title string, img image.Image, text string) {
	vp.SetTitle(" " + title + " ")
	vp.image = img
	vp.text = text
	vp.encoded = ""
}

// Text returns the current text rendition
func (vp *ViewPanel) Text() string {
	return vp.text
}

// Draw draws the frame and either the fallback text or registers the image region
func (vp *ViewPanel) Draw(screen tcell.Screen) {
	vp.Box.DrawForSubclass(screen, vp)
	x, y, width, height := vp.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	if !vp.Graphics() || vp.image == nil {
		if vp.layer != nil {
			vp.layer.SetRegionVisible(vp.regionID, false)
		}
		vp.drawText(screen, x, y, width, height)
		return
	}

	if vp.encoded == "" || vp.encodedW != width || vp.encodedH != height {
		data, err := render.EncodeString(render.ForCells(vp.image, width, height), vp.protocol)
		if err != nil {
			log.Warn("failed to encode view image", "protocol", vp.protocol, "error", err)
			vp.protocol = render.ProtocolNone
			vp.drawText(screen, x, y, width, height)
			return
		}
		vp.encoded, vp.encodedW, vp.encodedH = data, width, height
	}

	vp.layer.SetRegion(vp.regionID, GraphicsRegion{
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		Data:    vp.encoded,
		Visible: true,
	})
}

func (vp *ViewPanel) drawText(screen tcell.Screen, x, y, width, height int) {
	colors := theme.Current().PanelColors()
	for i, line := range strings.Split(vp.text, "\n") {
		if i >= height {
			break
		}
		tview.Print(screen, line, x, y+i, width, tview.AlignLeft, colors.Foreground)
	}
}
