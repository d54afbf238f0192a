package script

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/papercomputeco/streamcast/pkg/stream"
)

// File is the TOML layout of a user supplied script:
//
//	[[fragment]]
//	data = "\u001b[32m$\u001b[0m ls\r\n"
//	delay = "500ms"
//
//	[[fragment]]
//	data = "."
//	delay = "150ms"
//	repeat = 15
type File struct {
	Fragments []FileFragment `toml:"fragment"`
}

// FileFragment is one entry of a script file. Repeat sends the same payload
// several times as separate fragments.
type FileFragment struct {
	Data   string        `toml:"data"`
	Delay  time.Duration `toml:"delay"`
	Repeat int           `toml:"repeat"`
}

// LoadFile reads a TOML script from path.
func LoadFile(path string) (stream.Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses a TOML script. The file is validated up front; fragments
// are only produced when the script is ranged over.
func Decode(r io.Reader) (stream.Script, error) {
	var file File
	if _, err := toml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("could not parse script: %w", err)
	}

	for i, f := range file.Fragments {
		if f.Delay < 0 {
			return nil, fmt.Errorf("fragment %d: delay must not be negative", i)
		}
		if f.Repeat < 0 {
			return nil, fmt.Errorf("fragment %d: repeat must not be negative", i)
		}
	}

	return func(yield func(stream.Fragment) bool) {
		for _, f := range file.Fragments {
			n := max(f.Repeat, 1)
			for range n {
				if !yield(stream.Fragment{Data: f.Data, Delay: f.Delay}) {
					return
				}
			}
		}
	}, nil
}
