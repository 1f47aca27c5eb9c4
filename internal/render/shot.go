package render

import (
	"math"
	"math/rand"
)

// ShotKind buckets a scoring shot by how far it travelled
type ShotKind int

const (
	ShotShort ShotKind = iota // 1-3 runs and anything else that is not a boundary
	ShotFour
	ShotSix
)

// Shot distances on the 75 unit field
const (
	ShortDistance = 35.0
	FourDistance  = 55.0
	SixDistance   = 70.0
)

// Shot is a scoring stroke drawn from the striker outwards
type Shot struct {
	Runs     int
	Kind     ShotKind
	Angle    float64 // radians, counter-clockwise from the off side
	Distance float64
	Width    float64 // line width in field units
}

// ShotFor places the shot for a delivery worth runs. Dot balls draw nothing.
// The angle is the only random input and comes from rng.
func ShotFor(runs int, rng *rand.Rand) (Shot, bool) {
	if runs <= 0 {
		return Shot{}, false
	}

	shot := Shot{
		Runs:     runs,
		Kind:     ShotShort,
		Angle:    rng.Float64() * 2 * math.Pi,
		Distance: ShortDistance,
		Width:    2,
	}
	switch runs {
	case 4:
		shot.Kind, shot.Distance, shot.Width = ShotFour, FourDistance, 2.5
	case 6:
		shot.Kind, shot.Distance, shot.Width = ShotSix, SixDistance, 3
	}
	return shot, true
}

// End returns where the ball finished, relative to the striker
func (s Shot) End() (x, y float64) {
	return s.Distance * math.Cos(s.Angle), s.Distance * math.Sin(s.Angle)
}
