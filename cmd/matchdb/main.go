package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"

	"crease/internal/api"
	"crease/internal/api/factory"
	"crease/internal/config"
	"crease/internal/log"
	"crease/internal/render"
	"crease/internal/theme"
)

const usage = `Usage: matchdb <command> [flags]

Commands:
  import   Archive a ball-by-ball CSV into a sqlite match database
  charts   Export the match charts as PNG files
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	log.SetLevel(cfg.LogLevel)

	ctx := context.Background()
	switch os.Args[1] {
	case "import":
		err = runImport(ctx, cfg, os.Args[2:])
	case "charts":
		err = runCharts(ctx, cfg, os.Args[2:])
	case "-h", "--help", "help":
		fmt.Print(usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runImport(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	var (
		dataPath = fs.String("data", cfg.DataPath, "CSV file to import")
		dbPath   = fs.String("db", cfg.DatabasePath, "sqlite database to write")
		title    = fs.String("title", "", "Match title (defaults to the CSV file name)")
	)
	fs.Parse(args)

	if *dbPath == "" {
		return fmt.Errorf("import: -db is required")
	}
	n, err := factory.Import(ctx, *dataPath, *dbPath, *title)
	if err != nil {
		return err
	}
	fmt.Printf("Imported %d deliveries from %s into %s\n", n, *dataPath, *dbPath)
	return nil
}

func runCharts(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("charts", flag.ExitOnError)
	var (
		dataPath  = fs.String("data", cfg.DataPath, "Ball-by-ball CSV file")
		dbPath    = fs.String("db", cfg.DatabasePath, "sqlite match archive")
		outDir    = fs.String("out", "charts", "Directory for the PNG files")
		width     = fs.Int("width", 800, "Image width in pixels")
		height    = fs.Int("height", 600, "Image height in pixels")
		seed      = fs.Int64("seed", cfg.Seed, "Seed for the pitch map")
		themeName = fs.String("theme", cfg.Theme, "Color theme")
	)
	fs.Parse(args)

	if err := theme.SetTheme(*themeName); err != nil {
		return err
	}
	replay, err := factory.Open(ctx, factory.Source{DataPath: *dataPath, DatabasePath: *dbPath})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(*outDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", *outDir, err)
	}

	opts := render.Options{Width: *width, Height: *height, Theme: theme.Current()}
	charts := []struct {
		file   string
		render func() (image.Image, error)
	}{
		{"momentum.png", func() (image.Image, error) {
			return render.MomentumGraph(replay.RunsPerOver(nil), opts)
		}},
		{"wagon_wheel.png", func() (image.Image, error) {
			return render.WagonWheel(replay.Deliveries(), opts)
		}},
		{"pitch_map.png", func() (image.Image, error) {
			return render.PitchMap(replay.TotalBalls(), rand.New(rand.NewSource(*seed)), opts)
		}},
		{"matchups.png", func() (image.Image, error) {
			return render.MatchupGraph(ctx, replay.Matchups(), opts)
		}},
	}

	for _, c := range charts {
		img, err := c.render()
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", c.file, err)
		}
		path := filepath.Join(*outDir, c.file)
		if err := writePNG(path, img); err != nil {
			return err
		}
		fmt.Println("Wrote", path)
	}
	printSummary(replay)
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}

func printSummary(replay api.ReplayAPI) {
	total := 0
	for _, o := range replay.RunsPerOver(nil) {
		total += o.Runs
	}
	rate, err := replay.RunRate()
	if err != nil {
		fmt.Printf("%d balls, %d runs, run rate n/a\n", replay.TotalBalls(), total)
		return
	}
	fmt.Printf("%d balls, %d runs, run rate %.2f\n", replay.TotalBalls(), total, rate)
}
