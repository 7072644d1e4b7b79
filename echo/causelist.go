package echo

import (
	"net/http"
	"unicode/utf8"

	"github.com/fwojciec/causelist"
	"github.com/labstack/echo/v4"
)

// CauseListResponse is the body of GET /api/causelist.
type CauseListResponse struct {
	Date       causelist.ListingDate `json:"date"`
	DateStr    string                `json:"date_str"`
	URL        string                `json:"url"`
	Text       string                `json:"text"`
	HTMLLength int                   `json:"html_length"`
}

// handleCauseList returns the full text of a cause list. html_length counts
// characters, not bytes.
func (s *Server) handleCauseList(c echo.Context) error {
	url := c.QueryParam("url")
	if url == "" {
		return errorJSON(c, http.StatusBadRequest, "Missing 'url' parameter")
	}
	date, err := causelist.ParseListingDate(c.QueryParam("date"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, causelist.ErrorMessage(err))
	}

	doc, err := s.Source.Load(c.Request().Context(), url)
	if err == nil && doc.HTML == "" {
		err = causelist.Errorf(causelist.EUNAVAILABLE, "empty document at %s", url)
	}
	if err != nil {
		s.logger.Warn("cause list unavailable", "url", url, "err", err)
		return errorJSON(c, http.StatusInternalServerError, "Failed to fetch cause list")
	}

	text, err := s.TextExtractor.ExtractText(doc.HTML)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, CauseListResponse{
		Date:       date,
		DateStr:    date.DateString(s.Now()),
		URL:        url,
		Text:       text,
		HTMLLength: utf8.RuneCountInString(doc.HTML),
	})
}
