package replay

import (
	"strconv"
	"strings"

	"crease/internal/match"
)

// OverRuns maps overs to run totals and remembers the order in which each
// over first appeared, so iteration is deterministic
type OverRuns struct {
	overs []match.Over
	runs  map[match.Over]int
}

func newOverRuns() OverRuns {
	return OverRuns{runs: make(map[match.Over]int)}
}

func (o *OverRuns) add(over match.Over, runs int) {
	if _, seen := o.runs[over]; !seen {
		o.overs = append(o.overs, over)
	}
	o.runs[over] += runs
}

// Overs returns the overs in first-appearance order
func (o OverRuns) Overs() []match.Over {
	out := make([]match.Over, len(o.overs))
	copy(out, o.overs)
	return out
}

// Runs returns the total for over and whether the over was recorded
func (o OverRuns) Runs(over match.Over) (int, bool) {
	runs, ok := o.runs[over]
	return runs, ok
}

// Len returns the number of distinct overs
func (o OverRuns) Len() int {
	return len(o.overs)
}

// Total sums every over
func (o OverRuns) Total() int {
	total := 0
	for _, runs := range o.runs {
		total += runs
	}
	return total
}

// String renders {0: 10, 1: 3}
func (o OverRuns) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, over := range o.overs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(over.String())
		b.WriteString(": ")
		b.WriteString(strconv.Itoa(o.runs[over]))
	}
	b.WriteByte('}')
	return b.String()
}

// OverRange selects overs From..To inclusive
type OverRange struct {
	From match.Over
	To   match.Over
}

func (r OverRange) contains(over match.Over) bool {
	return over >= r.From && over <= r.To
}

// Matchup aggregates every ball one bowler delivered to one batsman
type Matchup struct {
	Bowler  string
	Batsman string
	Balls   int
	Runs    int
	Wickets int
}
