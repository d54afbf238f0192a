package main

import (
	"flag"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/papercomputeco/streamcast/pkg/config"
	"github.com/papercomputeco/streamcast/pkg/logger"
	"github.com/papercomputeco/streamcast/sink"
)

func main() {
	stdoutIsTerminal := term.IsTerminal(int(os.Stdout.Fd()))

	// Parse command line flags
	listenAddr := flag.String("listen", ":6070", "Address to listen on")
	apiKey := flag.String("api-key", os.Getenv("STREAMCAST_API_KEY"), "Required X-API-Key value (empty accepts any key)")
	dbPath := flag.String("db", "", "Path to SQLite recording database (default: in-memory)")
	failAt := flag.Int("fail-at", -1, "0-based data call index to answer with a 500 (-1 disables)")
	echo := flag.Bool("echo", stdoutIsTerminal, "Write received fragments to stdout")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	// Set up logger
	logger := logger.NewLogger(*debug)
	defer logger.Sync()

	logger.Info("stub sink starting",
		zap.String("listen", *listenAddr),
		zap.Bool("echo", *echo),
		zap.Bool("debug", *debug),
	)

	cfg := sink.Config{
		ListenAddr: *listenAddr,
		APIKey:     config.SecretString(*apiKey),
		DBPath:     *dbPath,
	}
	if *failAt >= 0 {
		cfg.FailAt = []int{*failAt}
	}
	if *echo {
		cfg.Echo = os.Stdout
	}

	s, err := sink.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to create sink", zap.Error(err))
	}
	defer s.Close()

	if err := s.Run(); err != nil {
		logger.Fatal("sink server failed", zap.Error(err))
	}
}
