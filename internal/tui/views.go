package tui

import (
	"context"
	"image"
	"math/rand"

	"crease/internal/api"
	"crease/internal/log"
	"crease/internal/render"
	"crease/internal/theme"
	tuicomponents "crease/internal/tui/components"
)

// Text views use this size until the panel has been laid out
const (
	defaultTextCols = 60
	defaultTextRows = 20
)

// viewRenderer produces the image and text rendition of each view for a
// snapshot. Random placement is seeded from the ball index, so revisiting a
// ball redraws the same shot.
type viewRenderer struct {
	replay api.ReplayAPI
	seed   int64
	images bool

	width, height int

	all          []api.Delivery
	matchupImage image.Image
	matchupText  string
	matchupsDone bool
}

func newViewRenderer(replay api.ReplayAPI, seed int64, images bool) *viewRenderer {
	return &viewRenderer{replay: replay, seed: seed, images: images}
}

// deliveries returns the whole match, fetched once
func (vr *viewRenderer) deliveries() []api.Delivery {
	if vr.all == nil {
		vr.all = vr.replay.Deliveries()
	}
	return vr.all
}

// resized records the panel size and reports whether it changed
func (vr *viewRenderer) resized(width, height int) bool {
	if width == vr.width && height == vr.height {
		return false
	}
	vr.width, vr.height = width, height
	return true
}

// shotRNG is the generator for the shot off ball index i (0-based)
func (vr *viewRenderer) shotRNG(i int) *rand.Rand {
	return rand.New(rand.NewSource(vr.seed + int64(i)))
}

func (vr *viewRenderer) pitchRNG() *rand.Rand {
	return rand.New(rand.NewSource(vr.seed))
}

func (vr *viewRenderer) render(view tuicomponents.View, snapshot api.StateSnapshot, width, height int) (string, image.Image, string) {
	cols, rows := width, height
	if cols <= 0 || rows <= 0 {
		cols, rows = defaultTextCols, defaultTextRows
	}
	th := theme.Current()
	opts := render.Options{Theme: th}

	var (
		img  image.Image
		text string
		err  error
	)
	switch view {
	case tuicomponents.ViewMomentum:
		text = tuicomponents.MomentumText(snapshot.RunsPerOver, cols, th)
		if vr.images {
			img, err = render.MomentumGraph(snapshot.RunsPerOver, opts)
		}

	case tuicomponents.ViewWagonWheel:
		played := vr.deliveries()[:snapshot.BallIndex]
		text = tuicomponents.WagonWheelText(render.WagonWheelPoints(played), cols, rows, th)
		if vr.images {
			img, err = render.WagonWheel(played, opts)
		}

	case tuicomponents.ViewPitchMap:
		text = tuicomponents.PitchMapText(render.PitchPoints(snapshot.BallIndex, vr.pitchRNG()), cols, rows, th)
		if vr.images {
			img, err = render.PitchMap(snapshot.BallIndex, vr.pitchRNG(), opts)
		}

	case tuicomponents.ViewMatchups:
		img, text = vr.matchups(th)

	default:
		var shot *render.Shot
		if snapshot.BallIndex > 0 {
			if s, ok := render.ShotFor(snapshot.LastRuns, vr.shotRNG(snapshot.BallIndex-1)); ok {
				shot = &s
			}
		}
		text = tuicomponents.FieldText(shot, cols, rows, th)
		if vr.images {
			img = render.FieldView(shot, opts)
		}
	}

	if err != nil {
		log.Warn("failed to render view", "view", view, "error", err)
		img = nil
	}
	return view.String(), img, text
}

// matchups covers the whole match, so it is built once
func (vr *viewRenderer) matchups(th theme.Theme) (image.Image, string) {
	if vr.matchupsDone {
		return vr.matchupImage, vr.matchupText
	}
	vr.matchupsDone = true

	matchups := vr.replay.Matchups()
	vr.matchupText = tuicomponents.MatchupsText(matchups, th)
	if vr.images {
		img, err := render.MatchupGraph(context.Background(), matchups, render.Options{Theme: th})
		if err != nil {
			log.Warn("failed to render matchup graph", "error", err)
		} else {
			vr.matchupImage = img
		}
	}
	return vr.matchupImage, vr.matchupText
}
