package components

import (
	"fmt"
	"io"
	"sync"
)

// GraphicsRegion is a screen area covered by an inline image
type GraphicsRegion struct {
	X, Y                int    // Screen coordinates
	Width, Height       int    // Current region dimensions in cells
	MaxWidth, MaxHeight int    // Largest dimensions used so far, cleared on change
	Data                string // Encoded escape sequence (sixel, kitty or iTerm)
	Visible             bool
}

// GraphicsLayer writes inline images straight to the terminal after tview
// has drawn, since tview has no notion of pixel graphics
type GraphicsLayer struct {
	regions map[string]*GraphicsRegion
	mutex   sync.Mutex
	out     io.Writer
}

// NewGraphicsLayer creates a layer writing to out, normally /dev/tty.
// A nil writer disables output but regions are still tracked.
func NewGraphicsLayer(out io.Writer) *GraphicsLayer {
	return &GraphicsLayer{
		regions: make(map[string]*GraphicsRegion),
		out:     out,
	}
}

// SetRegion adds or replaces a region
func (gl *GraphicsLayer) SetRegion(id string, region GraphicsRegion) {
	gl.mutex.Lock()
	defer gl.mutex.Unlock()

	existing, ok := gl.regions[id]
	if !ok {
		region.MaxWidth, region.MaxHeight = region.Width, region.Height
		gl.regions[id] = &region
		return
	}

	if existing.Visible && (existing.X != region.X || existing.Y != region.Y ||
		existing.Data != region.Data) {
		gl.clearRegionArea(existing)
	}
	region.MaxWidth = max(existing.MaxWidth, region.Width)
	region.MaxHeight = max(existing.MaxHeight, region.Height)
	*existing = region
}

// SetRegionVisible shows or hides a region, clearing it when hidden
func (gl *GraphicsLayer) SetRegionVisible(id string, visible bool) {
	gl.mutex.Lock()
	defer gl.mutex.Unlock()

	if region, ok := gl.regions[id]; ok {
		if !visible && region.Visible {
			gl.clearRegionArea(region)
		}
		region.Visible = visible
	}
}

// Region returns a copy of the region registered under id
func (gl *GraphicsLayer) Region(id string) (GraphicsRegion, bool) {
	gl.mutex.Lock()
	defer gl.mutex.Unlock()

	region, ok := gl.regions[id]
	if !ok {
		return GraphicsRegion{}, false
	}
	return *region, true
}

// Render writes every visible region. Called from the application's after-draw hook.
func (gl *GraphicsLayer) Render() {
	gl.mutex.Lock()
	defer gl.mutex.Unlock()

	if gl.out == nil {
		return
	}
	for _, region := range gl.regions {
		if region.Visible && region.Data != "" {
			fmt.Fprintf(gl.out, "\x1b7\x1b[%d;%dH%s\x1b8", region.Y+1, region.X+1, region.Data)
		}
	}
}

// clearRegionArea overwrites the largest area the region ever covered with spaces
func (gl *GraphicsLayer) clearRegionArea(region *GraphicsRegion) {
	if gl.out == nil {
		return
	}
	width := max(region.MaxWidth, region.Width)
	height := max(region.MaxHeight, region.Height)

	blank := make([]byte, width)
	for i := range blank {
		blank[i] = ' '
	}
	fmt.Fprint(gl.out, "\x1b7")
	for row := 0; row < height; row++ {
		fmt.Fprintf(gl.out, "\x1b[%d;%dH%s", region.Y+row+1, region.X+1, blank)
	}
	fmt.Fprint(gl.out, "\x1b8")
}
