// Package console implements the line oriented manual replay mode used when
// no terminal is attached or when -console is given.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"crease/internal/api"
	"crease/internal/log"
)

// Options selects the sections printed before the manual replay prompt
type Options struct {
	Commentary bool // full ball-by-ball commentary with running score
	Analytics  bool // runs per over and run rate
}

// DefaultOptions prints every section
var DefaultOptions = Options{Commentary: true, Analytics: true}

// Run prints the requested summaries and then replays the match one ball per
// input line. A line equal to "q" (any case) stops the replay; any other line,
// blank or not, advances. Run returns nil when the match ends, the user quits
// or in reaches EOF.
func Run(ctx context.Context, in io.Reader, out io.Writer, replay api.ReplayAPI, opts Options) error {
	w := bufio.NewWriter(out)
	defer w.Flush()

	if opts.Commentary {
		if err := printCommentary(w, replay); err != nil {
			return err
		}
	}
	if opts.Analytics {
		printAnalytics(w, replay)
	}

	fmt.Fprintln(w, "\n🎮 Manual Replay Mode")
	fmt.Fprintln(w, "Press ENTER to see next ball, or type 'q' to quit")
	fmt.Fprintln(w)
	if err := w.Flush(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines, readErr := readLines(ctx, in)

	for !replay.Snapshot().Finished {
		if err := ctx.Err(); err != nil {
			return err
		}

		var text string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("read input: %w", err)
				}
				log.Debug("console input closed", "ball", replay.Snapshot().BallIndex)
				return nil
			}
			text = line
		}

		if strings.EqualFold(strings.TrimSpace(text), "q") {
			fmt.Fprintln(w, "Replay stopped.")
			return nil
		}

		_, snapshot, err := replay.Advance()
		if errors.Is(err, api.ErrMatchFinished) {
			break
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(w, snapshot.LastEvent)
		if err := w.Flush(); err != nil {
			return err
		}
	}

	fmt.Fprintln(w, "\n🏁 Match Replay Finished")
	return nil
}

// readLines scans in on its own goroutine so a blocked read cannot hold up
// cancellation. readErr receives the scanner error before lines is closed.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()
	return lines, readErr
}

func printCommentary(w io.Writer, replay api.ReplayAPI) error {
	fmt.Fprintln(w, "🏏 Match Replay Started")
	fmt.Fprintln(w)
	for i := 0; i < replay.TotalBalls(); i++ {
		line, err := replay.Commentary(i)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, "\n🏁 Match Replay Finished")
	return nil
}

func printAnalytics(w io.Writer, replay api.ReplayAPI) {
	fmt.Fprintln(w, "\n📊 Match Analytics")
	fmt.Fprintln(w, "Runs per over:", FormatRunsPerOver(replay.RunsPerOver(nil)))

	rate, err := replay.RunRate()
	if err != nil {
		fmt.Fprintln(w, "Run Rate: n/a")
		return
	}
	fmt.Fprintln(w, "Run Rate:", FormatRunRate(rate))
}

// FormatRunsPerOver renders totals as {0: 10, 1: 3}
func FormatRunsPerOver(totals []api.OverTotal) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, total := range totals {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(total.Label)
		b.WriteString(": ")
		b.WriteString(strconv.Itoa(total.Runs))
	}
	b.WriteByte('}')
	return b.String()
}

// FormatRunRate rounds to two decimals and always keeps one (10.0, 3.33)
func FormatRunRate(rate float64) string {
	s := strconv.FormatFloat(math.Round(rate*100)/100, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
