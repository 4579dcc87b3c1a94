package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
)

func TestBuildSolidityLayout(t *testing.T) {
	root := t.TempDir()

	result, err := Build(Options{Root: root})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("Build() warnings = %v, want none", result.Warnings)
	}

	for _, dir := range []string{"src", "test", "script"} {
		info, err := os.Stat(filepath.Join(root, dir))
		if err != nil || !info.IsDir() {
			t.Errorf("directory %s should exist", dir)
		}
	}

	for _, f := range []string{
		"src/Counter.sol",
		"test/Counter.t.sol",
		"script/Counter.s.sol",
		"README.md",
		"foundry.toml",
	} {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(f))); err != nil {
			t.Errorf("file %s should exist: %v", f, err)
		}
	}

	// Vyper-only files must not appear
	if _, err := os.Stat(filepath.Join(root, "src", "Counter.vy")); err == nil {
		t.Error("src/Counter.vy should not exist for the default variant")
	}
}

func TestBuildVyperLayout(t *testing.T) {
	root := t.TempDir()

	_, err := Build(Options{Root: root, Vyper: true})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	for _, f := range []string{
		"src/Counter.vy",
		"src/interface/ICounter.sol",
		"src/utils/VyperDeployer.sol",
		"test/Counter.t.sol",
		"script/Counter.s.sol",
		"README.md",
		"foundry.toml",
	} {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(f))); err != nil {
			t.Errorf("file %s should exist: %v", f, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(root, "foundry.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "ffi = true") {
		t.Error("vyper foundry.toml should enable ffi")
	}
}

func TestBuildNonEmptyGuard(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "existing.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Build(Options{Root: root})
	if err == nil {
		t.Fatal("Build() should fail on a non-empty root without force")
	}

	// Guard fires before any write
	for _, dir := range []string{"src", "test", "script"} {
		if _, statErr := os.Stat(filepath.Join(root, dir)); statErr == nil {
			t.Errorf("directory %s should not have been created", dir)
		}
	}
}

func TestBuildForceWarns(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "existing.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := Build(Options{Root: root, Force: true})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(result.Warnings) == 0 {
		t.Error("Build() with force on a non-empty root should record a warning")
	}
}

func TestBuildNeverOverwritesConfig(t *testing.T) {
	root := t.TempDir()

	if _, err := Build(Options{Root: root}); err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	custom := []byte("[profile.default]\nsrc = \"contracts\"\n")
	configPath := filepath.Join(root, ConfigFileName)
	if err := os.WriteFile(configPath, custom, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Build(Options{Root: root, Force: true}); err != nil {
		t.Fatalf("Build() second run error = %v", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(custom) {
		t.Errorf("foundry.toml was overwritten: got %q", string(data))
	}
}

func TestDefaultConfigRoundTrip(t *testing.T) {
	content, err := renderConfig(Solidity)
	if err != nil {
		t.Fatalf("renderConfig() error = %v", err)
	}

	var cfg Config
	if err := toml.Unmarshal(content, &cfg); err != nil {
		t.Fatalf("generated config is not valid TOML: %v", err)
	}

	profile, ok := cfg.Profile["default"]
	if !ok {
		t.Fatal("generated config should contain a default profile")
	}
	if profile.Src != "src" || profile.Out != "out" {
		t.Errorf("default profile = %+v, want src/out defaults", profile)
	}
	if len(profile.Libs) != 1 || profile.Libs[0] != "lib" {
		t.Errorf("default profile libs = %v, want [lib]", profile.Libs)
	}
}

func TestAssetLookup(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		asset   string
		wantErr bool
	}{
		{name: "solidity contract", variant: Solidity, asset: "Counter.sol"},
		{name: "vyper contract", variant: Vyper, asset: "Counter.vy"},
		{name: "unknown asset", variant: Solidity, asset: "Nope.sol", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, err := Asset(tt.variant, tt.asset)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Asset() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && len(content) == 0 {
				t.Error("Asset() returned empty content")
			}
		})
	}

	if len(Gitignore()) == 0 {
		t.Error("Gitignore() should not be empty")
	}
	if len(Workflow(Vyper)) == 0 {
		t.Error("Workflow(Vyper) should not be empty")
	}
}
