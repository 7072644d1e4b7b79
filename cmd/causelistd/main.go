package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/causelist"
	clecho "github.com/fwojciec/causelist/echo"
	"github.com/fwojciec/causelist/fs"
	"github.com/fwojciec/causelist/goquery"
	clhttp "github.com/fwojciec/causelist/http"
	"github.com/fwojciec/causelist/koanf"
	"github.com/fwojciec/causelist/prometheus"
	clslog "github.com/fwojciec/causelist/slog"
	"github.com/fwojciec/causelist/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Loaded configuration. Populated by Run.
	Config *koanf.Config

	// SQLite database for search history. Opened when history.path is set.
	DB *sqlite.DB

	// Fetcher overrides the HTTP fetcher for end-to-end testing.
	Fetcher causelist.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config string `short:"c" type:"path" env:"CAUSELIST_CONFIG" help:"YAML configuration file"`
}

// Run parses args, starts the API server and blocks until ctx is canceled.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("causelistd"),
		kong.Description("Serve the cause list search API"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			_, _ = parser.Parse([]string{"--help"})
			return nil
		}
	}

	if _, err := parser.Parse(args); err != nil {
		return causelist.Errorf(causelist.EINVALID, "%v", err)
	}

	cfg, err := koanf.Load(cli.Config)
	if err != nil {
		return err
	}
	m.Config = cfg

	logger := newLogger(stderr, cfg.Log)

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = clhttp.NewFetcher(
			clhttp.WithTimeout(cfg.Fetch.Timeout),
			clhttp.WithUserAgent(cfg.Fetch.UserAgent),
		)
	}
	defer fetcher.Close()

	server, err := m.newServer(cfg, fetcher, logger)
	if err != nil {
		return err
	}
	defer m.Close()

	errc := make(chan error, 1)
	go func() { errc <- server.Start(cfg.Server.Addr()) }()

	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return <-errc
}

// newServer wires the services behind the API.
func (m *Main) newServer(cfg *koanf.Config, fetcher causelist.Fetcher, logger *slog.Logger) (*clecho.Server, error) {
	metrics := prometheus.NewMetrics()

	var instrumented causelist.Fetcher = prometheus.NewFetcher(fetcher, metrics)
	instrumented = clslog.NewLoggingFetcher(instrumented, logger)

	extractor := goquery.NewExtractor()

	server := clecho.NewServer(logger)
	server.Source = causelist.NewCompositeSource(fs.NewFileReader(), instrumented)
	server.Extractor = clslog.NewLoggingExtractor(extractor, logger)
	server.TextExtractor = extractor
	server.Metrics = metrics

	if cfg.History.Path != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.History.Path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
		m.DB = sqlite.NewDB(cfg.History.Path)
		if err := m.DB.Open(); err != nil {
			return nil, fmt.Errorf("failed to open history database at %q: %w", cfg.History.Path, err)
		}
		server.Searches = clslog.NewLoggingSearchService(sqlite.NewSearchService(m.DB), logger)
	}

	return server, nil
}

// newLogger builds the process logger from the log settings.
func newLogger(w io.Writer, cfg koanf.LogConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
