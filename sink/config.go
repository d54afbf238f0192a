package sink

import (
	"io"

	"github.com/papercomputeco/streamcast/pkg/config"
)

// Config is the stub sink configuration.
type Config struct {
	// Address to listen on (e.g., ":6070")
	ListenAddr string

	// APIKey every request must carry in X-API-Key. Empty accepts any
	// non-empty key.
	APIKey config.SecretString

	// DBPath is the path to the SQLite recording database.
	// Empty keeps the recording in memory.
	DBPath string

	// FailAt lists 0-based data call indexes that are answered with a 500
	// instead of being recorded.
	FailAt []int

	// Echo, when set, receives every accepted fragment verbatim.
	Echo io.Writer
}
