package vscode

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iancoleman/orderedmap"

	"github.com/solforge/solforge/internal/fsutil"
)

// Solidity extension keys inserted into the settings document.
// See https://github.com/juanfranblanco/vscode-solidity
const (
	contractsDirKey = "solidity.packageDefaultDependenciesContractsDirectory"
	librariesDirKey = "solidity.packageDefaultDependenciesDirectory"
)

// settingsRelPath is the settings file path relative to the project root.
var settingsRelPath = filepath.Join(".vscode", "settings.json")

// Generate writes the editor configuration for the project at root: a
// remappings file (only if non-empty and absent) and the merged
// .vscode/settings.json document.
//
// Existing settings keys are never overwritten, only missing keys are
// inserted. Malformed existing settings fail the whole operation and leave
// the file untouched.
func Generate(root string) error {
	if err := writeRemappingsIfAbsent(root); err != nil {
		return err
	}
	return mergeSettings(root)
}

func mergeSettings(root string) error {
	vscodeDir := filepath.Join(root, ".vscode")
	settingsPath := filepath.Join(root, settingsRelPath)

	settings := orderedmap.New()
	if !fsutil.Exists(vscodeDir) {
		if err := fsutil.EnsureDir(vscodeDir); err != nil {
			return err
		}
	} else if fsutil.Exists(settingsPath) {
		data, err := os.ReadFile(settingsPath)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(data, settings); err != nil {
			return fmt.Errorf("failed to parse existing %s: %w", settingsRelPath, err)
		}
	}

	if _, ok := settings.Get(contractsDirKey); !ok {
		settings.Set(contractsDirKey, "src")
	}
	if _, ok := settings.Get(librariesDirKey); !ok {
		settings.Set(librariesDirKey, "lib")
	}

	content, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return fsutil.WriteFile(settingsPath, content)
}
