package stream

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"github.com/papercomputeco/streamcast/pkg/wire"
)

// Sender transmits one fragment payload to a sink and returns its
// acknowledgement.
type Sender interface {
	Send(ctx context.Context, data string) (wire.Result, error)
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, data string) (wire.Result, error)

func (f SenderFunc) Send(ctx context.Context, data string) (wire.Result, error) {
	return f(ctx, data)
}

// Summary covers the fragments delivered by a run, including a run that
// stopped early.
type Summary struct {
	Sent    int
	Bytes   int
	Elapsed time.Duration
}

// FragmentError reports the fragment at which a run halted.
type FragmentError struct {
	Index int
	Err   error
}

func (e *FragmentError) Error() string {
	return fmt.Sprintf("fragment %d: %v", e.Index, e.Err)
}

func (e *FragmentError) Unwrap() error {
	return e.Err
}

// Streamer sends a script one fragment at a time. It never has more than one
// fragment in flight, and never overlaps a send with a delay.
type Streamer struct {
	sender Sender
	pacer  Pacer
	logger *zap.Logger
}

// Option configures a Streamer.
type Option func(*Streamer)

// WithPacer replaces the default real-time pacer.
func WithPacer(p Pacer) Option {
	return func(s *Streamer) {
		s.pacer = p
	}
}

// WithLogger sets the logger used for per-fragment debug output.
func WithLogger(l *zap.Logger) Option {
	return func(s *Streamer) {
		s.logger = l
	}
}

// New creates a Streamer over sender. Without options it paces in real
// time and does not log.
func New(sender Sender, opts ...Option) *Streamer {
	s := &Streamer{
		sender: sender,
		pacer:  SleepPacer{Speed: 1},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send transmits a single fragment payload.
func (s *Streamer) Send(ctx context.Context, data string) (wire.Result, error) {
	return s.sender.Send(ctx, data)
}

// Run sends every fragment of script in order, waiting each fragment's delay
// after it is acknowledged. The first failed send halts the run and is
// returned as a *FragmentError; nothing after it is sent. A delay cut short
// after the last fragment does not fail the run.
func (s *Streamer) Run(ctx context.Context, script Script) (Summary, error) {
	var sum Summary
	start := time.Now()

	halt := func(index int, err error) (Summary, error) {
		sum.Elapsed = time.Since(start)
		return sum, &FragmentError{Index: index, Err: err}
	}

	var (
		index   int
		pending time.Duration
	)
	for f := range script {
		// The previous fragment's delay runs only once there is another
		// fragment to send.
		if index > 0 {
			if err := s.pacer.Pace(ctx, pending); err != nil {
				return halt(index, err)
			}
		}
		if err := ctx.Err(); err != nil {
			return halt(index, err)
		}

		if _, err := s.sender.Send(ctx, f.Data); err != nil {
			return halt(index, err)
		}
		sum.Sent++
		sum.Bytes += len(f.Data)

		s.logger.Debug("fragment sent",
			zap.Int("index", index),
			zap.Int("bytes", len(f.Data)),
			zap.Duration("delay", f.Delay),
			zap.String("preview", preview(f.Data, 40)),
		)

		pending = f.Delay
		index++
	}

	if index > 0 {
		if err := s.pacer.Pace(ctx, pending); err != nil {
			s.logger.Debug("final delay cut short", zap.Error(err))
		}
	}

	sum.Elapsed = time.Since(start)
	return sum, nil
}

// preview strips escape sequences and line breaks for single-line logging.
func preview(s string, maxWidth int) string {
	s = ansi.Strip(s)
	s = replaceControl(s)
	return ansi.Truncate(s, maxWidth, "...")
}

func replaceControl(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch r {
		case '\r':
			continue
		case '\n', '\t':
			out = append(out, ' ')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
