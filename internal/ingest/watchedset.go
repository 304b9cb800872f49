package ingest

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// fixedTopLevelFiles is the closed set of top-level memory files watched in
// every workspace, regardless of whether they currently exist on disk.
var fixedTopLevelFiles = []string{
	"MEMORY.md", "MEMORY_EXTENDED.md", "SOUL.md", "USER.md", "AGENTS.md", "TOOLS.md",
}

// DiscoverWatchedSet enumerates the fixed top-level files that exist under
// root, plus every "*.md" file directly inside root/memory (not
// recursive). Files outside this set are ignored by the ingestion
// pipeline entirely. Exported for one-shot callers (such as cityd's
// layout debug command) that want the same file set without running a
// Supervisor.
func DiscoverWatchedSet(root string) ([]string, error) {
	return discoverWatchedSet(root)
}

func discoverWatchedSet(root string) ([]string, error) {
	var paths []string

	for _, name := range fixedTopLevelFiles {
		p := filepath.Join(root, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			paths = append(paths, p)
		}
	}

	memDir := filepath.Join(root, "memory")
	entries, err := os.ReadDir(memDir)
	if err != nil {
		if os.IsNotExist(err) {
			sort.Strings(paths)
			return paths, nil
		}
		return nil, err
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		paths = append(paths, filepath.Join(memDir, e.Name()))
	}

	sort.Strings(paths)
	return paths, nil
}

// inWatchedSet reports whether path is one this pipeline cares about: a
// fixed top-level file, or a "*.md" file directly under root/memory.
func inWatchedSet(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)

	for _, name := range fixedTopLevelFiles {
		if rel == name {
			return true
		}
	}

	dir, file := filepath.Split(rel)
	return filepath.ToSlash(filepath.Clean(dir)) == "memory" && strings.HasSuffix(file, ".md")
}
