package main

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/causelist"
	"github.com/fwojciec/causelist/fs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Now    func() time.Time

	Source        causelist.DocumentSource
	Extractor     causelist.MatchExtractor
	TextExtractor causelist.TextExtractor
	Converter     causelist.Converter
	Downloader    causelist.Downloader
	Limiter       causelist.DomainLimiter
	Results       *fs.ResultWriter
	Snapshots     causelist.SnapshotStore

	// Searches is nil unless a history database is configured.
	Searches causelist.SearchService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	CNR       string   `name:"cnr" xor:"query" help:"CNR number to search for"`
	Case      []string `name:"case" xor:"query" placeholder:"TYPE,NUMBER,YEAR" help:"Case type, number and year, e.g. --case=CIV,123,2024"`
	CauseList bool     `name:"causelist" xor:"query" help:"Download the entire cause list without searching"`

	URL         string        `name:"cause-list-url" help:"Cause list URL, or a local HTML file (file:///path or a path)"`
	Today       bool          `help:"Check today's listings (default)"`
	Tomorrow    bool          `help:"Check tomorrow's listings"`
	DownloadPDF bool          `name:"download-pdf" help:"Download the PDF linked from each match"`
	OutDir      string        `name:"outdir" default:"outputs" help:"Directory for JSON results and downloads"`
	Verbose     bool          `short:"v" help:"Log progress to stderr"`
	HistoryDB   string        `name:"history-db" env:"CAUSELIST_HISTORY_DB" help:"Record searches in this SQLite database"`
	Timeout     time.Duration `default:"15s" help:"Timeout for fetching the cause list"`
	Concurrency int           `short:"c" default:"3" help:"Concurrent PDF downloads"`
	Rate        float64       `default:"2" help:"PDF downloads per second per host (0 disables throttling)"`
}

// Command validates the flags and returns the command they select.
func (c *CLI) Command() (*SearchCmd, error) {
	cmd := &SearchCmd{
		URL:         c.URL,
		Date:        causelist.Today,
		CauseList:   c.CauseList,
		DownloadPDF: c.DownloadPDF,
		Verbose:     c.Verbose,
		Concurrency: c.Concurrency,
	}
	if c.Tomorrow && !c.Today {
		cmd.Date = causelist.Tomorrow
	}

	switch {
	case c.CauseList:
	case strings.TrimSpace(c.CNR) != "":
		cmd.Query = &causelist.Query{CNR: strings.TrimSpace(c.CNR)}
	case len(c.Case) > 0:
		if len(c.Case) != 3 {
			return nil, causelist.Errorf(causelist.EINVALID, "--case expects TYPE,NUMBER,YEAR, got %q", strings.Join(c.Case, ","))
		}
		cmd.Query = &causelist.Query{Case: &causelist.CaseNumber{Type: c.Case[0], Number: c.Case[1], Year: c.Case[2]}}
	default:
		return nil, causelist.Errorf(causelist.EINVALID, "one of --cnr, --case or --causelist is required")
	}

	if cmd.Query != nil {
		if err := cmd.Query.Validate(); err != nil {
			return nil, err
		}
	}
	return cmd, nil
}

// SearchCmd searches a cause list, or saves all of it.
type SearchCmd struct {
	URL         string
	Date        causelist.ListingDate
	Query       *causelist.Query
	CauseList   bool
	DownloadPDF bool
	Verbose     bool
	Concurrency int
}
