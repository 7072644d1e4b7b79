package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fwojciec/causelist"
	"github.com/fwojciec/causelist/fs"
	"github.com/fwojciec/causelist/rate"
	"golang.org/x/sync/errgroup"
)

const (
	// pdfPreviewLen is how much row text is shown for a match without a link.
	pdfPreviewLen = 120

	defaultConcurrency = 3
)

// Run executes the command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	now := deps.Now()
	dateStr := c.Date.DateString(now)
	isoDay := now.Format("2006-01-02")

	if c.Verbose {
		fmt.Fprintf(deps.Stdout, "Checking listings for: %s (%s)\n", c.Date, dateStr)
	}

	if c.URL == "" {
		fmt.Fprintln(deps.Stdout, "No cause-list URL provided. This tool requires the cause-list URL from eCourts.\nSee README for how to obtain it.")
		fmt.Fprintln(deps.Stdout, "You can also point to a local sample HTML (testdata/cause_list_sample.html) for testing.")
		return causelist.Errorf(causelist.EINVALID, "--cause-list-url is required")
	}

	doc, err := deps.Source.Load(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintln(deps.Stdout, "Failed to fetch cause list.")
		return err
	}

	if c.CauseList {
		return c.saveCauseList(deps, doc, dateStr, now)
	}

	matcher, err := c.Query.Matcher()
	if err != nil {
		return err
	}

	matches, err := deps.Extractor.ExtractMatches(doc.HTML, matcher, doc.BaseURL)
	if err != nil {
		return fmt.Errorf("failed to extract matches: %w", err)
	}

	result := causelist.NewSearchResult(c.Query, c.URL, c.Date, dateStr, matches)
	path, err := deps.Results.WriteResult(fs.ResultFileName(string(c.Date), isoDay), result)
	if err != nil {
		return fmt.Errorf("failed to save search results: %w", err)
	}
	fmt.Fprintf(deps.Stdout, "Saved search results to %s\n", path)

	c.recordSearch(deps, doc, dateStr, result.Matches)

	if len(matches) > 0 && c.DownloadPDF {
		if err := c.downloadLinks(deps, matches, deps.Results.Dir()); err != nil {
			return err
		}
	}

	fmt.Fprint(deps.Stdout, "\n"+causelist.FormatMatches(matches, c.Date, dateStr))
	return nil
}

// saveCauseList stores the whole list as HTML, text, markdown and a JSON summary.
func (c *SearchCmd) saveCauseList(deps *Dependencies, doc *causelist.Document, dateStr string, now time.Time) (err error) {
	text, err := deps.TextExtractor.ExtractText(doc.HTML)
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}

	snap := &causelist.Snapshot{
		URL:     c.URL,
		Date:    c.Date,
		DateStr: dateStr,
		HTML:    doc.HTML,
		Text:    text,
		SavedOn: now,
	}

	// A list the converter cannot render is still saved without markdown.
	if md, err := deps.Converter.Convert(doc.HTML); err != nil {
		deps.Logger.Warn("markdown conversion failed", "url", c.URL, "error", err)
	} else {
		snap.Markdown = md
	}

	defer func() {
		if err != nil {
			_ = deps.Snapshots.Abort()
		}
	}()

	if err := deps.Snapshots.Save(deps.Ctx, snap); err != nil {
		return fmt.Errorf("failed to save cause list: %w", err)
	}
	if err := deps.Snapshots.Commit(); err != nil {
		return fmt.Errorf("failed to commit cause list: %w", err)
	}

	dir := deps.Results.Dir()
	base := filepath.Join(dir, snap.BaseName())
	fmt.Fprintf(deps.Stdout, "Downloaded entire cause list for %s (%s)\n", c.Date, dateStr)
	fmt.Fprintf(deps.Stdout, "   HTML: %s.html\n", base)
	fmt.Fprintf(deps.Stdout, "   Text: %s.txt\n", base)
	fmt.Fprintf(deps.Stdout, "   JSON: %s.json\n", base)
	return nil
}

// recordSearch stores the search in history when a database is configured.
// History failures are logged and never fail the command.
func (c *SearchCmd) recordSearch(deps *Dependencies, doc *causelist.Document, dateStr string, matches []*causelist.Match) {
	if deps.Searches == nil {
		return
	}
	search := &causelist.Search{
		URL:        c.URL,
		Query:      c.Query.String(),
		Date:       c.Date,
		DateStr:    dateStr,
		MatchCount: len(matches),
		Matches:    matches,
		Content:    doc.HTML,
	}
	if err := deps.Searches.CreateSearch(deps.Ctx, search); err != nil {
		deps.Logger.Warn("failed to record search", "error", err)
		return
	}
	deps.Logger.Debug("recorded search", "id", search.ID)
}

// downloadLinks fetches each match's linked document concurrently and
// reports the outcome of every match in order once all are done.
// A failed download is reported and does not affect the others.
func (c *SearchCmd) downloadLinks(deps *Dependencies, matches []*causelist.Match, dir string) error {
	reports := make([]string, len(matches))

	limit := c.Concurrency
	if limit <= 0 {
		limit = defaultConcurrency
	}

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(limit)

	for i, m := range matches {
		if m.PDF == nil {
			reports[i] = "No PDF link found for match: " + causelist.Truncate(m.Text, pdfPreviewLen)
			continue
		}
		link := *m.PDF
		dest := filepath.Join(dir, fmt.Sprintf("case_pdf_%s_%d.pdf", c.Date, i+1))
		g.Go(func() error {
			if err := deps.Limiter.Wait(ctx, rate.Host(link)); err != nil {
				return err
			}
			if err := deps.Downloader.Download(ctx, link, dest); err != nil {
				reports[i] = "Failed to download PDF from " + link
				return nil
			}
			reports[i] = "Downloaded PDF to " + dest
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("link downloads interrupted: %w", err)
	}

	for _, r := range reports {
		fmt.Fprintln(deps.Stdout, r)
	}
	return nil
}
