package echo

import (
	"net/http"
	"strconv"

	"github.com/fwojciec/causelist"
	"github.com/labstack/echo/v4"
)

// HistoryResponse is the body of GET /api/history.
type HistoryResponse struct {
	Searches []*causelist.Search `json:"searches"`
	Count    int                 `json:"count"`
}

func (s *Server) handleHistory(c echo.Context) error {
	if s.Searches == nil {
		return errorJSON(c, http.StatusNotImplemented, "Search history is not enabled")
	}

	filter := causelist.SearchFilter{Limit: DefaultHistoryLimit}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return errorJSON(c, http.StatusBadRequest, "limit must be a positive integer")
		}
		filter.Limit = min(n, MaxHistoryLimit)
	}
	if v := c.QueryParam("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return errorJSON(c, http.StatusBadRequest, "offset must be a non-negative integer")
		}
		filter.Offset = n
	}
	if v := c.QueryParam("url"); v != "" {
		filter.URL = &v
	}

	searches, err := s.Searches.FindSearches(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	if searches == nil {
		searches = []*causelist.Search{}
	}
	return c.JSON(http.StatusOK, HistoryResponse{Searches: searches, Count: len(searches)})
}

func (s *Server) handleHistoryByID(c echo.Context) error {
	if s.Searches == nil {
		return errorJSON(c, http.StatusNotImplemented, "Search history is not enabled")
	}

	search, err := s.Searches.FindSearchByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, search)
}
