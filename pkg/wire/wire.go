// Package wire holds the JSON shapes exchanged with a stream sink.
package wire

// Paths of the agent streaming API, relative to the sink's base URL.
const (
	DataPath  = "/api/agent/stream/data"
	StartPath = "/api/agent/stream/start"
	EndPath   = "/api/agent/stream/end"
)

// APIKeyHeader carries the static agent credential on every request.
const APIKeyHeader = "X-API-Key"

// DataRequest is the body of a single fragment transmission.
// It must marshal to an object with exactly one key.
type DataRequest struct {
	Data string `json:"data"`
}
