package internal_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestTUIImportRestrictions ensures the TUI reaches the replay only through the API
func TestTUIImportRestrictions(t *testing.T) {
	allowedPrefixes := []string{
		"crease/internal/api",        // Replay API only
		"crease/internal/log",        // Logging
		"crease/internal/theme",      // UI theming
		"crease/internal/components", // Shortcuts
		"crease/internal/render",     // Presentation rendering
		"crease/internal/tui",        // TUI can import its own subpackages
	}

	forbiddenPrefixes := []string{
		"crease/internal/replay",   // No engine internals
		"crease/internal/match",    // No raw records
		"crease/internal/database", // No direct database access
	}

	checkImports(t, "./tui", allowedPrefixes, forbiddenPrefixes)
}

// TestConsoleImportRestrictions keeps console mode on the same API as the TUI
func TestConsoleImportRestrictions(t *testing.T) {
	forbiddenPrefixes := []string{
		"crease/internal/replay",
		"crease/internal/database",
		"crease/internal/tui",
	}

	checkImports(t, "./console", []string{"crease/internal/api", "crease/internal/log"}, forbiddenPrefixes)
}

// TestRenderImportRestrictions keeps rendering free of engine state
func TestRenderImportRestrictions(t *testing.T) {
	forbiddenPrefixes := []string{
		"crease/internal/replay",
		"crease/internal/database",
		"crease/internal/tui",
	}

	checkImports(t, "./render", nil, forbiddenPrefixes)
}

// TestCoreImportRestrictions ensures the engine does not import presentation code
func TestCoreImportRestrictions(t *testing.T) {
	forbiddenPrefixes := []string{
		"crease/internal/tui",
		"crease/internal/render",
		"crease/internal/console",
		"crease/internal/theme",
	}

	checkImports(t, "./replay", nil, forbiddenPrefixes)
	checkImports(t, "./match", nil, forbiddenPrefixes)
	checkImports(t, "./database", nil, forbiddenPrefixes)
}

func checkImports(t *testing.T, packageDir string, allowedPrefixes, forbiddenPrefixes []string) {
	err := filepath.Walk(packageDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}

		fset := token.NewFileSet()
		node, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			t.Errorf("Failed to parse %s: %v", path, err)
			return nil
		}

		for _, imp := range node.Imports {
			importPath := strings.Trim(imp.Path.Value, `"`)

			// Only module-internal imports are restricted
			if !strings.HasPrefix(importPath, "crease/internal") {
				continue
			}

			for _, forbidden := range forbiddenPrefixes {
				if strings.HasPrefix(importPath, forbidden) {
					t.Errorf("FORBIDDEN import in %s: %s", path, importPath)
				}
			}

			if len(allowedPrefixes) > 0 {
				allowed := false
				for _, prefix := range allowedPrefixes {
					if strings.HasPrefix(importPath, prefix) {
						allowed = true
						break
					}
				}
				if !allowed {
					t.Errorf("DISALLOWED import in %s: %s (not in allowed list)", path, importPath)
				}
			}
		}

		return nil
	})

	if err != nil {
		t.Errorf("Failed to walk directory %s: %v", packageDir, err)
	}
}
