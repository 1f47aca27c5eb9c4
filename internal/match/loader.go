package match

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Column names expected in the header row
const (
	ColumnOver     = "over"
	ColumnBall     = "ball"
	ColumnBatsman  = "batsman"
	ColumnBowler   = "bowler"
	ColumnRuns     = "runs"
	ColumnIsWicket = "is_wicket"
)

var requiredColumns = []string{
	ColumnOver, ColumnBall, ColumnBatsman, ColumnBowler, ColumnRuns, ColumnIsWicket,
}

// LoadFile opens path and parses it with Load
func LoadFile(path string) ([]BallRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DataLoadError{Err: fmt.Errorf("open %s: %w", path, err)}
	}
	defer f.Close()

	return Load(f)
}

// Load parses ball-by-ball rows. The header may list the columns in any
// order and may carry extra columns. The first malformed row fails the
// whole load; nothing is defaulted.
func Load(r io.Reader) ([]BallRecord, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, &DataLoadError{Err: fmt.Errorf("read input: %w", err)}
	}
	text, err := decodeText(raw)
	if err != nil {
		return nil, &DataLoadError{Err: err}
	}

	reader := csv.NewReader(bytes.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &DataLoadError{Err: errors.New("missing header row")}
	}
	if err != nil {
		return nil, csvError(err)
	}
	index, err := headerIndex(header)
	if err != nil {
		return nil, err
	}

	var records []BallRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvError(err)
		}
		line, _ := reader.FieldPos(0)

		record, err := parseRow(row, index, line)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// decodeText strips a UTF-8 byte order mark and falls back to Windows-1252
// for spreadsheet exports that are not valid UTF-8
func decodeText(raw []byte) ([]byte, error) {
	if utf8.Valid(raw) {
		text, err := unicode.UTF8BOM.NewDecoder().Bytes(raw)
		if err != nil {
			return nil, fmt.Errorf("decode utf-8: %w", err)
		}
		return text, nil
	}
	text, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, fmt.Errorf("decode windows-1252: %w", err)
	}
	return text, nil
}

func headerIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, dup := index[key]; dup && key != "" {
			return nil, &DataLoadError{Line: 1, Column: key, Err: errors.New("duplicate column")}
		}
		index[key] = i
	}
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, &DataLoadError{Line: 1, Column: name, Err: errors.New("missing column")}
		}
	}
	return index, nil
}

func parseRow(row []string, index map[string]int, line int) (BallRecord, error) {
	field := func(name string) (string, error) {
		i := index[name]
		if i >= len(row) {
			return "", &DataLoadError{Line: line, Column: name, Err: errors.New("missing value")}
		}
		value := strings.TrimSpace(row[i])
		if value == "" {
			return "", &DataLoadError{Line: line, Column: name, Err: errors.New("empty value")}
		}
		return value, nil
	}

	var record BallRecord

	value, err := field(ColumnOver)
	if err != nil {
		return record, err
	}
	over, err := strconv.ParseFloat(value, 64)
	if err != nil || over < 0 || math.IsNaN(over) || math.IsInf(over, 0) {
		return record, &DataLoadError{Line: line, Column: ColumnOver, Err: fmt.Errorf("invalid over %q", value)}
	}
	if over == 0 {
		over = 0 // "-0" parses as negative zero, which prints as "-0"
	}
	record.Over = Over(over)

	if value, err = field(ColumnBall); err != nil {
		return record, err
	}
	ball, ok := parseWhole(value)
	if !ok || ball <= 0 {
		return record, &DataLoadError{Line: line, Column: ColumnBall, Err: fmt.Errorf("invalid ball %q", value)}
	}
	record.Ball = ball

	if record.Batsman, err = field(ColumnBatsman); err != nil {
		return record, err
	}
	if record.Bowler, err = field(ColumnBowler); err != nil {
		return record, err
	}

	if value, err = field(ColumnRuns); err != nil {
		return record, err
	}
	runs, ok := parseWhole(value)
	if !ok || runs < 0 {
		return record, &DataLoadError{Line: line, Column: ColumnRuns, Err: fmt.Errorf("invalid runs %q", value)}
	}
	record.Runs = runs

	if value, err = field(ColumnIsWicket); err != nil {
		return record, err
	}
	switch strings.ToLower(value) {
	case "1", "1.0", "true":
		record.IsWicket = true
	case "0", "0.0", "false":
		record.IsWicket = false
	default:
		return record, &DataLoadError{Line: line, Column: ColumnIsWicket, Err: fmt.Errorf("invalid wicket flag %q", value)}
	}

	return record, nil
}

// parseWhole accepts "4" as well as the "4.0" that numeric exports produce
func parseWhole(value string) (int, bool) {
	if n, err := strconv.Atoi(value); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

func csvError(err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return &DataLoadError{Line: parseErr.Line, Err: parseErr.Err}
	}
	return &DataLoadError{Err: err}
}
