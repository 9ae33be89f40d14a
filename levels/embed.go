package levels

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml *.tengo
var LevelsFS embed.FS

// ErrUnknownFormat is returned for files that are neither YAML nor tengo.
var ErrUnknownFormat = errors.New("levels: unknown level format")

// DefaultName is the level shipped with the binary.
const DefaultName = "default.yaml"

// Load resolves name against the working directory, then the levels/
// directory on disk, then the embedded set. A missing extension means .yaml.
func Load(name string) (*Level, error) {
	clean := cleanLevelPath(name)
	if !isLevelFile(clean) && !isScriptFile(clean) {
		return nil, fmt.Errorf("levels: load %s: %w", name, ErrUnknownFormat)
	}
	data, err := readLevel(name, clean)
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", name, err)
	}
	var lvl *Level
	if isScriptFile(clean) {
		lvl, err = RunScript(data)
	} else {
		lvl, err = Parse(data)
	}
	if err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", name, err)
	}
	return lvl, nil
}

// Path returns the on-disk file backing name, if there is one.
func Path(name string) (string, bool) {
	clean := cleanLevelPath(name)
	for _, p := range []string{name, diskLevelPath(clean)} {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, true
		}
	}
	return "", false
}

func readLevel(name, clean string) ([]byte, error) {
	if p, ok := Path(name); ok {
		return os.ReadFile(p)
	}
	return LevelsFS.ReadFile(clean)
}

func cleanLevelPath(path string) string {
	if path == "" {
		return DefaultName
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		s = after
	}
	if filepath.Ext(s) == "" {
		s += ".yaml"
	}
	return s
}

func diskLevelPath(clean string) string {
	return filepath.Join("levels", filepath.FromSlash(clean))
}

func isLevelFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isScriptFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tengo"
}
