package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
)

// Template file contents are compiled into the binary via //go:embed and
// resolved into a (variant, logical name) lookup at startup, so the build
// logic never touches the packaging.
//
//go:embed assets
var assetFS embed.FS

// Variant selects one of the two fixed scaffold template sets.
type Variant int

const (
	// Solidity is the default template set.
	Solidity Variant = iota
	// Vyper is the alternate-language template set.
	Vyper
)

// String returns the asset directory name for the variant.
func (v Variant) String() string {
	if v == Vyper {
		return "vyper"
	}
	return "solidity"
}

// assets maps variant directory names to logical file names to content.
var assets = mustLoadAssets()

func mustLoadAssets() map[string]map[string][]byte {
	loaded := make(map[string]map[string][]byte)
	err := fs.WalkDir(assetFS, "assets", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := assetFS.ReadFile(p)
		if err != nil {
			return err
		}
		variant := path.Base(path.Dir(p))
		if loaded[variant] == nil {
			loaded[variant] = make(map[string][]byte)
		}
		loaded[variant][path.Base(p)] = data
		return nil
	})
	if err != nil {
		panic(fmt.Sprintf("scaffold: failed to load embedded assets: %v", err))
	}
	return loaded
}

// Asset returns the embedded content for the given variant and logical name.
func Asset(v Variant, name string) ([]byte, error) {
	content, ok := assets[v.String()][name]
	if !ok {
		return nil, fmt.Errorf("no embedded asset %q for variant %s", name, v)
	}
	return content, nil
}

// Gitignore returns the default .gitignore content. It is shared by both
// variants.
func Gitignore() []byte {
	content, _ := Asset(Solidity, "gitignore")
	return content
}

// Workflow returns the CI workflow content for the variant.
func Workflow(v Variant) []byte {
	content, _ := Asset(v, "workflow.yml")
	return content
}
