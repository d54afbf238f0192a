package script

import (
	"fmt"
	"sort"

	"github.com/papercomputeco/streamcast/pkg/stream"
)

// DefaultName is the script played when none is chosen.
const DefaultName = "cyberbard"

var builtins = map[string]func() stream.Script{
	DefaultName: CyberBard,
}

// Names lists the built-in scripts in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns a fresh script for name. A name that is not built in is
// read as a TOML script file.
func Resolve(name string) (stream.Script, error) {
	if name == "" {
		name = DefaultName
	}
	if build, ok := builtins[name]; ok {
		return build(), nil
	}

	s, err := LoadFile(name)
	if err != nil {
		return nil, fmt.Errorf("unknown script %q: %w", name, err)
	}
	return s, nil
}
