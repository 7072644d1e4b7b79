package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/causelist"
	"github.com/fwojciec/causelist/fs"
	"github.com/fwojciec/causelist/goquery"
	"github.com/fwojciec/causelist/htmltomarkdown"
	clhttp "github.com/fwojciec/causelist/http"
	"github.com/fwojciec/causelist/rate"
	clslog "github.com/fwojciec/causelist/slog"
	"github.com/fwojciec/causelist/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(ExitCode(err))
	}
}

// ExitCode maps an error to the process exit status: 2 when the cause list
// could not be acquired, 1 for everything else.
func ExitCode(err error) int {
	switch causelist.ErrorCode(err) {
	case "":
		return 0
	case causelist.EUNAVAILABLE:
		return 2
	}
	return 1
}

// Main represents the program.
type Main struct {
	// SQLite database recording searches. Opened when --history-db is set.
	DB *sqlite.DB

	// Overrides for end-to-end testing. Defaults are used when nil.
	Fetcher    causelist.Fetcher
	Downloader causelist.Downloader
	Now        func() time.Time
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Now: time.Now}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("causelist"),
		kong.Description("Check a court cause list for a case listed today or tomorrow"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return causelist.Errorf(causelist.EINVALID, "no arguments provided")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return causelist.Errorf(causelist.EINVALID, "%v", err)
	}

	cmd, err := cli.Command()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cli.OutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %q: %w", cli.OutDir, err)
	}

	logger := newLogger(stderr, cli.Verbose)
	now := m.Now
	if now == nil {
		now = time.Now
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
		Now:    now,
	}

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = clhttp.NewFetcher(clhttp.WithTimeout(cli.Timeout))
	}
	defer fetcher.Close()
	fetcher = clslog.NewLoggingFetcher(fetcher, logger)

	downloader := m.Downloader
	if downloader == nil {
		downloader = clhttp.NewDownloader()
	}

	extractor := goquery.NewExtractor()
	deps.Source = causelist.NewCompositeSource(fs.NewFileReader(), fetcher)
	deps.Extractor = clslog.NewLoggingExtractor(extractor, logger)
	deps.TextExtractor = extractor
	deps.Downloader = clslog.NewLoggingDownloader(downloader, logger)
	deps.Limiter = rate.NewDomainLimiter(cli.Rate)
	deps.Results = fs.NewResultWriter(cli.OutDir)
	deps.Snapshots = fs.NewSnapshotStore(cli.OutDir)

	var convOpts []htmltomarkdown.Option
	if _, local := causelist.LocalPath(cli.URL); !local && cli.URL != "" {
		convOpts = append(convOpts, htmltomarkdown.WithDomain(cli.URL))
	}
	deps.Converter = htmltomarkdown.NewConverter(convOpts...)

	if cli.HistoryDB != "" {
		if err := os.MkdirAll(filepath.Dir(cli.HistoryDB), 0755); err != nil {
			return fmt.Errorf("failed to create history directory: %w", err)
		}
		m.DB = sqlite.NewDB(cli.HistoryDB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: Set CAUSELIST_HISTORY_DB or --history-db to a writable path")
			return fmt.Errorf("failed to open history database at %q: %w", cli.HistoryDB, err)
		}
		defer m.Close()
		deps.Searches = clslog.NewLoggingSearchService(sqlite.NewSearchService(m.DB), logger)
	}

	return cmd.Run(deps)
}

// newLogger logs to stderr: debug and up with --verbose, warnings otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
