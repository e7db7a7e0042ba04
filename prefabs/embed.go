package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var prefabsFS embed.FS

//go:embed scripts/*.tengo
var scriptsFS embed.FS

// Load reads a prefab file. A checkout with a prefabs/ directory on disk
// wins over the embedded copy so the watcher's hot reload sees edits.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if b, err := os.ReadFile(filepath.Join("prefabs", clean)); err == nil {
		return b, nil
	}
	return prefabsFS.ReadFile(clean)
}

// LoadScript reads a tengo brain by name, disk first then embedded.
func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if b, err := os.ReadFile(filepath.Join("prefabs", clean)); err == nil {
		return b, nil
	}
	return scriptsFS.ReadFile(clean)
}

func cleanPrefabPath(name string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "prefabs/")
	if !strings.HasSuffix(s, ".yaml") {
		s += ".yaml"
	}
	return s
}

func cleanScriptPath(name string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "prefabs/")
	if !strings.HasPrefix(s, "scripts/") {
		s = "scripts/" + s
	}
	if !strings.HasSuffix(s, ".tengo") {
		s += ".tengo"
	}
	return s
}
