// Package sink provides a stub agent stream sink that records every fragment
// it receives. It speaks the same protocol as the hosted streaming service and
// is used to rehearse and test runs locally.
package sink

import (
	"encoding/json"
	"fmt"
	"net"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/papercomputeco/streamcast/pkg/recording"
	"github.com/papercomputeco/streamcast/pkg/wire"
)

// Sink is the stub sink server.
type Sink struct {
	config Config
	storer recording.Storer
	logger *zap.Logger
	server *fiber.App

	mu        sync.Mutex
	dataCalls int
	room      *wire.StartResult
	echoMu    sync.Mutex
}

// New creates a new Sink.
func New(config Config, logger *zap.Logger) (*Sink, error) {
	var storer recording.Storer
	var err error

	if config.DBPath != "" {
		storer, err = recording.NewSQLiteStorer(config.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create SQLite storer: %w", err)
		}
		logger.Info("using SQLite recording", zap.String("path", config.DBPath))
	} else {
		storer = recording.NewMemoryStorer()
		logger.Info("using in-memory recording")
	}

	return NewWithStorer(config, storer, logger), nil
}

// NewWithStorer creates a Sink over an existing recording store.
func NewWithStorer(config Config, storer recording.Storer, logger *zap.Logger) *Sink {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	s := &Sink{
		config: config,
		storer: storer,
		logger: logger,
		server: app,
	}

	s.routes(app)
	return s
}

func (s *Sink) routes(app *fiber.App) {
	app.Post(wire.DataPath, s.handleData)
	app.Post(wire.StartPath, s.handleStart)
	app.Post(wire.EndPath, s.handleEnd)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(map[string]string{"status": "ok"})
	})

	app.Get("/recording", s.handleListRecording)
	app.Get("/recording/stats", s.handleRecordingStats)
	app.Delete("/recording", s.handleResetRecording)
}

// Run starts the sink on the configured listening address.
func (s *Sink) Run() error {
	s.logger.Info("starting stub sink",
		zap.String("listen", s.config.ListenAddr),
		zap.Ints("fail_at", s.config.FailAt),
	)

	return s.server.Listen(s.config.ListenAddr)
}

// RunWithListener serves on an already bound listener.
func (s *Sink) RunWithListener(ln net.Listener) error {
	s.logger.Info("starting stub sink", zap.String("listen", ln.Addr().String()))
	return s.server.Listener(ln)
}

// Shutdown stops accepting requests.
func (s *Sink) Shutdown() error {
	return s.server.ShutdownWithTimeout(5 * time.Second)
}

// Close shuts down the server and releases the recording store.
func (s *Sink) Close() error {
	return multierr.Combine(s.Shutdown(), s.storer.Close())
}

// Storer exposes the recording store.
func (s *Sink) Storer() recording.Storer {
	return s.storer
}

func (s *Sink) authorized(c *fiber.Ctx) bool {
	key := c.Get(wire.APIKeyHeader)
	if key == "" {
		return false
	}
	return s.config.APIKey == "" || key == s.config.APIKey.Reveal()
}

func (s *Sink) reject(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(wire.Envelope{Success: false, Error: msg})
}

func (s *Sink) ok(c *fiber.Ctx, data any) error {
	env := wire.Envelope{Success: true}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return s.reject(c, fiber.StatusInternalServerError, "internal error")
		}
		env.Data = raw
	}
	return c.JSON(env)
}

// handleData records a single fragment.
func (s *Sink) handleData(c *fiber.Ctx) error {
	if !s.authorized(c) {
		return s.reject(c, fiber.StatusUnauthorized, "Invalid API key")
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return s.reject(c, fiber.StatusBadRequest, "invalid request body")
	}
	raw, ok := body["data"]
	if !ok {
		return s.reject(c, fiber.StatusBadRequest, "data is required")
	}
	var data string
	if err := json.Unmarshal(raw, &data); err != nil {
		return s.reject(c, fiber.StatusBadRequest, "data must be a string")
	}

	index := s.nextDataCall()
	if slices.Contains(s.config.FailAt, index) {
		s.logger.Warn("injecting failure", zap.Int("index", index))
		return s.reject(c, fiber.StatusInternalServerError, "injected failure")
	}

	record, err := s.storer.Append(c.Context(), data, time.Now())
	if err != nil {
		s.logger.Error("failed to record fragment", zap.Error(err))
		return s.reject(c, fiber.StatusInternalServerError, "failed to record fragment")
	}

	s.logger.Debug("fragment received",
		zap.Int("index", index),
		zap.Int("seq", record.Seq),
		zap.String("hash", truncate(record.Hash, 16)),
		zap.String("preview", truncate(ansi.Strip(data), 40)),
	)

	s.echo(data)

	return s.ok(c, map[string]any{
		"seq":  record.Seq,
		"hash": record.Hash,
	})
}

func (s *Sink) nextDataCall() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.dataCalls
	s.dataCalls++
	return i
}

func (s *Sink) echo(data string) {
	if s.config.Echo == nil {
		return
	}

	s.echoMu.Lock()
	defer s.echoMu.Unlock()

	if _, err := s.config.Echo.Write([]byte(data)); err != nil {
		s.logger.Warn("failed to echo fragment", zap.Error(err))
	}
}

// handleStart opens a broadcast room.
func (s *Sink) handleStart(c *fiber.Ctx) error {
	if !s.authorized(c) {
		return s.reject(c, fiber.StatusUnauthorized, "Invalid API key")
	}

	var req wire.StartRequest
	if len(c.Body()) > 0 {
		if err := json.Unmarshal(c.Body(), &req); err != nil {
			return s.reject(c, fiber.StatusBadRequest, "invalid request body")
		}
	}

	roomID := uuid.NewString()
	room := &wire.StartResult{
		RoomID:   roomID,
		WatchURL: c.BaseURL() + "/watch/" + roomID,
	}

	s.mu.Lock()
	s.room = room
	s.mu.Unlock()

	s.logger.Info("stream started",
		zap.String("room_id", roomID),
		zap.String("title", req.Title),
		zap.Int("cols", req.Cols),
		zap.Int("rows", req.Rows),
	)

	return s.ok(c, room)
}

// handleEnd closes the current broadcast room, if any.
func (s *Sink) handleEnd(c *fiber.Ctx) error {
	if !s.authorized(c) {
		return s.reject(c, fiber.StatusUnauthorized, "Invalid API key")
	}

	s.mu.Lock()
	room := s.room
	s.room = nil
	s.mu.Unlock()

	if room != nil {
		s.logger.Info("stream ended", zap.String("room_id", room.RoomID))
	}
	return s.ok(c, nil)
}

// handleListRecording returns every recorded fragment in order.
func (s *Sink) handleListRecording(c *fiber.Ctx) error {
	records, err := s.storer.List(c.Context())
	if err != nil {
		return s.reject(c, fiber.StatusInternalServerError, "failed to list records")
	}
	if records == nil {
		records = []*recording.Record{}
	}

	return c.JSON(map[string]any{
		"count":   len(records),
		"records": records,
	})
}

// RecordingStats summarises the recording.
type RecordingStats struct {
	Records  int    `json:"records"`
	Bytes    int    `json:"bytes"`
	HeadHash string `json:"head_hash,omitempty"`
	Verified bool   `json:"verified"`
	RoomID   string `json:"room_id,omitempty"`
}

func (s *Sink) handleRecordingStats(c *fiber.Ctx) error {
	records, err := s.storer.List(c.Context())
	if err != nil {
		return s.reject(c, fiber.StatusInternalServerError, "failed to list records")
	}

	stats := RecordingStats{
		Records:  len(records),
		Verified: recording.Verify(records) == nil,
	}
	for _, r := range records {
		stats.Bytes += len(r.Data)
	}
	if n := len(records); n > 0 {
		stats.HeadHash = records[n-1].Hash
	}

	s.mu.Lock()
	if s.room != nil {
		stats.RoomID = s.room.RoomID
	}
	s.mu.Unlock()

	return c.JSON(stats)
}

// handleResetRecording clears the recording and the data call counter.
func (s *Sink) handleResetRecording(c *fiber.Ctx) error {
	if err := s.storer.Reset(c.Context()); err != nil {
		return s.reject(c, fiber.StatusInternalServerError, "failed to reset recording")
	}

	s.mu.Lock()
	s.dataCalls = 0
	s.mu.Unlock()

	return c.SendStatus(fiber.StatusNoContent)
}

func truncate(s string, maxLen int) string {
	s = strings.NewReplacer("\r", "", "\n", " ").Replace(s)
	return ansi.Truncate(s, maxLen, "...")
}
