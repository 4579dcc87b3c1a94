// Package vscode generates editor configuration for a project: compiler
// remappings for the installed libraries and a merged settings document.
package vscode

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/solforge/solforge/internal/fsutil"
)

// RemappingsFileName is the name of the remappings file at the project root.
const RemappingsFileName = "remappings.txt"

// Remapping is an alias-to-path mapping used by compiler tooling to locate
// library sources.
type Remapping struct {
	// Alias is the import prefix, e.g. "forge-std".
	Alias string
	// Path is the root-relative source path, e.g. "lib/forge-std/src".
	Path string
}

// String renders the remapping in remappings.txt line format.
func (r Remapping) String() string {
	return r.Alias + "/=" + r.Path + "/"
}

// FindRemappings derives one remapping per dependency directory under libDir.
// A dependency's source path is its src/ subdirectory when present, otherwise
// the dependency directory itself. A missing libDir yields no remappings.
func FindRemappings(root string, libDir string) ([]Remapping, error) {
	entries, err := os.ReadDir(filepath.Join(root, libDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var remappings []Remapping
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		srcPath := filepath.Join(libDir, name, "src")
		if !fsutil.Exists(filepath.Join(root, srcPath)) {
			srcPath = filepath.Join(libDir, name)
		}
		remappings = append(remappings, Remapping{
			Alias: name,
			Path:  filepath.ToSlash(srcPath),
		})
	}
	return remappings, nil
}

// RenderRemappings produces the remappings file content: deduplicated and
// lexicographically sorted lines.
func RenderRemappings(remappings []Remapping) string {
	seen := make(map[string]struct{}, len(remappings))
	lines := make([]string, 0, len(remappings))
	for _, r := range remappings {
		line := r.String()
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		lines = append(lines, line)
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}

// writeRemappingsIfAbsent writes the remappings file at the root when the
// derived set is non-empty and no remappings file exists yet.
func writeRemappingsIfAbsent(root string) error {
	path := filepath.Join(root, RemappingsFileName)
	if fsutil.Exists(path) {
		return nil
	}

	remappings, err := FindRemappings(root, "lib")
	if err != nil {
		return err
	}
	if len(remappings) == 0 {
		return nil
	}

	return fsutil.WriteFile(path, []byte(RenderRemappings(remappings)))
}
