package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/plemya-health/healthfeed/diagnostics"
	"github.com/plemya-health/healthfeed/errors"
	"github.com/plemya-health/healthfeed/feed"
	"github.com/plemya-health/healthfeed/store"
)

// GetDashboard
// (GET /v1/users/{userId}/dashboard)
func (h *Handler) GetDashboard(c echo.Context) error {
	userId := c.Param("userId")

	dashboard, err := h.feed.Dashboard(c.Request().Context(), userId)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dashboard)
}

// ListResults
// (GET /v1/users/{userId}/results)
func (h *Handler) ListResults(c echo.Context) error {
	userId := c.Param("userId")
	limit := intQueryParam(c, "limit", h.cfg.DefaultFeedLimit)

	results, err := h.feed.AllResults(c.Request().Context(), userId, limit)
	if err != nil {
		return err
	}

	if kind := c.QueryParam("kind"); kind != "" {
		filtered := make([]feed.UnifiedResult, 0, len(results))
		for _, result := range results {
			if result.Kind == feed.Kind(kind) {
				filtered = append(filtered, result)
			}
		}
		results = filtered
	}

	return c.JSON(http.StatusOK, results)
}

// GetResult
// (GET /v1/users/{userId}/results/{resultId})
func (h *Handler) GetResult(c echo.Context) error {
	userId := c.Param("userId")
	resultId := c.Param("resultId")

	result, err := h.feed.Result(c.Request().Context(), userId, resultId)
	if err == feed.ErrNotFound {
		return errors.NotFound
	} else if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// GetResultTrend
// (GET /v1/users/{userId}/results/trend)
func (h *Handler) GetResultTrend(c echo.Context) error {
	userId := c.Param("userId")
	testId := c.QueryParam("testId")
	if testId == "" {
		return errors.BadRequest
	}
	limit := intQueryParam(c, "limit", 10)

	filter := &diagnostics.Filter{
		UserId: &userId,
		TestId: &testId,
	}
	rows, err := h.diagnostics.List(c.Request().Context(), filter, store.Pagination{Limit: limit})
	if err != nil {
		return err
	}

	results := make([]feed.UnifiedResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, feed.FromDiagnostic(row))
	}

	return c.JSON(http.StatusOK, results)
}

func intQueryParam(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
