package match

import (
	"strconv"
)

// Over identifies an over. Most data sets use whole numbers, but some
// exports carry fractional identifiers, so the value is kept as a float.
type Over float64

// String formats the over without trailing zeros (0, 3, 1.5)
func (o Over) String() string {
	return strconv.FormatFloat(float64(o), 'f', -1, 64)
}

// BallRecord is one recorded delivery. Records are immutable once loaded.
type BallRecord struct {
	Over     Over
	Ball     int
	Batsman  string
	Bowler   string
	Runs     int
	IsWicket bool
}

// Label returns the "over.ball" marker used in commentary and the scoreboard
func (b BallRecord) Label() string {
	return b.Over.String() + "." + strconv.Itoa(b.Ball)
}

// Outcome returns "WICKET!" for dismissals and "N run(s)" otherwise.
// Runs scored on a wicket ball still count towards the total; they are
// just not part of the outcome text.
func (b BallRecord) Outcome() string {
	if b.IsWicket {
		return "WICKET!"
	}
	return strconv.Itoa(b.Runs) + " run(s)"
}

// Describe renders the delivery as a single commentary line
func (b BallRecord) Describe() string {
	return b.Label() + " → " + b.Batsman + " vs " + b.Bowler + " : " + b.Outcome()
}
