package stream

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/papercomputeco/streamcast/pkg/wire"
)

// WriterSender is a Sender that writes payloads verbatim to W, so a terminal
// can render the script locally.
type WriterSender struct {
	mu sync.Mutex
	W  io.Writer
}

func (s *WriterSender) Send(ctx context.Context, data string) (wire.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := io.WriteString(s.W, data); err != nil {
		return nil, fmt.Errorf("write fragment: %w", err)
	}
	return wire.Result{"success": true}, nil
}
