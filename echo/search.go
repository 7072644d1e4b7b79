package echo

import (
	"net/http"
	"strings"

	"github.com/fwojciec/causelist"
	"github.com/fwojciec/causelist/prometheus"
	"github.com/labstack/echo/v4"
)

// SearchResponse is the body of GET /api/search.
type SearchResponse struct {
	Date    causelist.ListingDate `json:"date"`
	DateStr string                `json:"date_str"`
	Query   SearchResponseQuery   `json:"query"`
	Matches []*causelist.Match    `json:"matches"`
	Count   int                   `json:"count"`
}

// SearchResponseQuery echoes the query a search ran with.
type SearchResponseQuery struct {
	CNR  *string `json:"cnr"`
	Case *string `json:"case"`
}

// handleSearch reports the rows of a cause list matching a CNR or a case
// type, number and year. A CNR wins when both are given.
func (s *Server) handleSearch(c echo.Context) error {
	url := c.QueryParam("url")
	cnr := strings.TrimSpace(c.QueryParam("cnr"))
	caseNum := causelist.CaseNumber{
		Type:   c.QueryParam("type"),
		Number: c.QueryParam("number"),
		Year:   c.QueryParam("year"),
	}

	if url == "" {
		return errorJSON(c, http.StatusBadRequest, "Missing 'url' parameter")
	}
	if cnr == "" && (caseNum.Type == "" || caseNum.Number == "" || caseNum.Year == "") {
		return errorJSON(c, http.StatusBadRequest, "Provide either 'cnr' or 'type'+'number'+'year'")
	}
	date, err := causelist.ParseListingDate(c.QueryParam("date"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, causelist.ErrorMessage(err))
	}

	q := &causelist.Query{CNR: cnr}
	mode := "cnr"
	if cnr == "" {
		q = &causelist.Query{Case: &caseNum}
		mode = "case"
	}
	m, err := q.Matcher()
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	doc, err := s.Source.Load(ctx, url)
	if err == nil && doc.HTML == "" {
		err = causelist.Errorf(causelist.EUNAVAILABLE, "empty document at %s", url)
	}
	if err != nil {
		s.logger.Warn("cause list unavailable", "url", url, "err", err)
		s.observeSearch(mode, prometheus.OutcomeError, 0)
		return errorJSON(c, http.StatusInternalServerError, "Failed to fetch cause list")
	}

	matches, err := s.Extractor.ExtractMatches(doc.HTML, m, doc.BaseURL)
	if err != nil {
		s.observeSearch(mode, prometheus.OutcomeError, 0)
		return err
	}
	if matches == nil {
		matches = []*causelist.Match{}
	}
	s.observeSearch(mode, prometheus.OutcomeOK, len(matches))

	dateStr := date.DateString(s.Now())
	s.recordSearch(c, &causelist.Search{
		URL:     url,
		Query:   q.String(),
		Date:    date,
		DateStr: dateStr,
		Content: doc.HTML,
		Matches: matches,
	})

	resp := SearchResponse{
		Date:    date,
		DateStr: dateStr,
		Matches: matches,
		Count:   len(matches),
	}
	if cnr != "" {
		resp.Query.CNR = &cnr
	}
	if caseNum.Type != "" {
		desc := caseNum.String()
		resp.Query.Case = &desc
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) observeSearch(mode, outcome string, matches int) {
	if s.Metrics != nil {
		s.Metrics.ObserveSearch(mode, outcome, matches)
	}
}

// recordSearch stores the search in the history, if enabled. Failures are
// logged and do not affect the response.
func (s *Server) recordSearch(c echo.Context, search *causelist.Search) {
	if s.Searches == nil {
		return
	}
	if err := s.Searches.CreateSearch(c.Request().Context(), search); err != nil {
		s.logger.Warn("failed to record search", "url", search.URL, "err", err)
	}
}
