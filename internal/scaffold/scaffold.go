// Package scaffold creates the canonical directory layout and template files
// for a new project when no remote template is requested.
package scaffold

import (
	"fmt"
	"path/filepath"

	"github.com/solforge/solforge/internal/debug"
	"github.com/solforge/solforge/internal/fsutil"
)

// Options contains options for building the default skeleton.
type Options struct {
	// Root is the project root directory.
	Root string
	// Force allows building into a non-empty root.
	Force bool
	// Vyper selects the alternate-language template set.
	Vyper bool
}

// Result contains the results of building the skeleton.
type Result struct {
	// Warnings are non-fatal conditions encountered during the build.
	Warnings []string
	// Files are the paths of all files written.
	Files []string
}

// file pairs a target path relative to the root with a logical asset name.
type file struct {
	relPath string
	asset   string
}

var solidityFiles = []file{
	{filepath.Join("src", "Counter.sol"), "Counter.sol"},
	{filepath.Join("test", "Counter.t.sol"), "Counter.t.sol"},
	{filepath.Join("script", "Counter.s.sol"), "Counter.s.sol"},
	{"README.md", "README.md"},
}

var vyperFiles = []file{
	{filepath.Join("src", "Counter.vy"), "Counter.vy"},
	{filepath.Join("src", "interface", "ICounter.sol"), "ICounter.sol"},
	{filepath.Join("src", "utils", "VyperDeployer.sol"), "VyperDeployer.sol"},
	{filepath.Join("test", "Counter.t.sol"), "Counter.t.sol"},
	{filepath.Join("script", "Counter.s.sol"), "Counter.s.sol"},
	{"README.md", "README.md"},
}

// Build writes the directory layout and template files for the selected
// variant into opts.Root.
//
// A non-empty root fails before any write unless Force is set, in which case
// a warning is recorded instead. Template files are fresh-file paths and are
// written unconditionally; the project configuration file is written only if
// absent.
func Build(opts Options) (*Result, error) {
	result := &Result{}

	empty, err := fsutil.IsEmptyDir(opts.Root)
	if err != nil {
		return nil, err
	}
	if !empty {
		if !opts.Force {
			return nil, fmt.Errorf("cannot initialize a non-empty directory: %s\n"+
				"run with --force to initialize regardless", opts.Root)
		}
		result.Warnings = append(result.Warnings, "target directory is not empty, but --force was specified")
	}

	variant := Solidity
	if opts.Vyper {
		variant = Vyper
	}
	debug.DebugValue("scaffold.variant", variant.String())

	for _, dir := range []string{"src", "test", "script"} {
		if err := fsutil.EnsureDir(filepath.Join(opts.Root, dir)); err != nil {
			return nil, err
		}
	}

	files := solidityFiles
	if variant == Vyper {
		files = vyperFiles
	}
	for _, f := range files {
		content, err := Asset(variant, f.asset)
		if err != nil {
			return nil, err
		}
		target := filepath.Join(opts.Root, f.relPath)
		if err := fsutil.WriteFile(target, content); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, target)
	}

	configPath := filepath.Join(opts.Root, ConfigFileName)
	written, err := writeConfigIfAbsent(configPath, variant)
	if err != nil {
		return nil, err
	}
	if written {
		result.Files = append(result.Files, configPath)
	}

	return result, nil
}
