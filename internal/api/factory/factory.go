package factory

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"crease/internal/api"
	"crease/internal/database"
	"crease/internal/log"
	"crease/internal/match"
	"crease/internal/replay"
)

// Source names where the deliveries come from. When both are set the
// database wins if it already holds a match; otherwise the CSV is loaded
// and archived into it.
type Source struct {
	DataPath     string
	DatabasePath string
}

// Open loads the match described by src and returns a ReplayAPI positioned at ball 0
func Open(ctx context.Context, src Source) (api.ReplayAPI, error) {
	records, err := LoadRecords(ctx, src)
	if err != nil {
		return nil, err
	}
	return replay.NewReplayAPI(replay.NewEngine(records)), nil
}

// LoadRecords resolves src to the ordered deliveries of one match
func LoadRecords(ctx context.Context, src Source) ([]match.BallRecord, error) {
	if src.DatabasePath == "" {
		if src.DataPath == "" {
			return nil, errors.New("no data source configured")
		}
		return loadCSV(src.DataPath)
	}

	db := database.NewDatabase()
	if err := db.OpenDatabase(src.DatabasePath); err != nil {
		return nil, &match.DataLoadError{Err: err}
	}
	defer db.CloseDatabase()

	records, err := db.LoadDeliveries(ctx)
	if err == nil {
		log.Info("loaded deliveries from database", "file", src.DatabasePath, "balls", len(records))
		return records, nil
	}
	if !errors.Is(err, database.ErrNoMatch) || src.DataPath == "" {
		return nil, &match.DataLoadError{Err: err}
	}

	records, err = loadCSV(src.DataPath)
	if err != nil {
		return nil, err
	}
	info := database.MatchInfo{
		Title:  titleFromPath(src.DataPath),
		Source: src.DataPath,
	}
	if err := db.ReplaceDeliveries(ctx, info, records); err != nil {
		// the CSV is still usable; the archive is only a cache
		log.Warn("failed to archive deliveries", "file", src.DatabasePath, "error", err)
	}
	return records, nil
}

// Import loads the CSV at dataPath and replaces the match stored at dbPath
func Import(ctx context.Context, dataPath, dbPath, title string) (int, error) {
	records, err := loadCSV(dataPath)
	if err != nil {
		return 0, err
	}
	if title == "" {
		title = titleFromPath(dataPath)
	}

	db := database.NewDatabase()
	if err := db.OpenDatabase(dbPath); err != nil {
		return 0, err
	}
	defer db.CloseDatabase()

	if err := db.ReplaceDeliveries(ctx, database.MatchInfo{Title: title, Source: dataPath}, records); err != nil {
		return 0, fmt.Errorf("import %s: %w", dataPath, err)
	}
	return len(records), nil
}

func loadCSV(path string) ([]match.BallRecord, error) {
	records, err := match.LoadFile(path)
	if err != nil {
		return nil, err
	}
	log.Info("loaded deliveries from csv", "file", path, "balls", len(records))
	return records, nil
}

func titleFromPath(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}
