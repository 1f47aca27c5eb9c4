//go:build integration

package setup

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"

	"crease/internal/api/factory"
)

// ArchiveTestSetup holds a temporary sqlite archive of the sample match
type ArchiveTestSetup struct {
	DataPath   string
	TempDBPath string
	Imported   int
}

// SampleDataPath returns data/mockData.csv at the repository root
func SampleDataPath(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot locate the repository root")
	}
	return filepath.Join(filepath.Dir(file), "..", "..", "data", "mockData.csv")
}

// SetupArchive imports the sample match into a fresh database
func SetupArchive(t *testing.T) *ArchiveTestSetup {
	t.Helper()
	setup := &ArchiveTestSetup{
		DataPath:   SampleDataPath(t),
		TempDBPath: filepath.Join(t.TempDir(), "match.db"),
	}

	n, err := factory.Import(context.Background(), setup.DataPath, setup.TempDBPath, "sample")
	if err != nil {
		t.Fatalf("Failed to import sample match: %v", err)
	}
	setup.Imported = n
	return setup
}
