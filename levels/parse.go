package levels

import (
	"errors"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"gopkg.in/yaml.v3"
)

var ErrNoLevelVar = errors.New("levels: script did not define `level`")

// Parse decodes a YAML level, fills defaults and validates it.
func Parse(data []byte) (*Level, error) {
	var raw Level
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	lvl := raw.WithDefaults()
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// RunScript evaluates a tengo program and reads its global `level` map,
// which uses the same keys as the YAML format.
func RunScript(src []byte) (*Level, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math", "fmt", "rand"))

	compiled, err := script.Run()
	if err != nil {
		return nil, fmt.Errorf("run level script: %w", err)
	}
	if !compiled.IsDefined("level") {
		return nil, ErrNoLevelVar
	}
	m := compiled.Get("level").Map()
	if m == nil {
		return nil, fmt.Errorf("%w: not a map", ErrNoLevelVar)
	}
	// Round-trip through YAML so scripts and files share one decoder.
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal script level: %w", err)
	}
	return Parse(data)
}
