package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/plemya-health/healthfeed/store"
)

// GetTimeline
// (GET /v1/users/{userId}/timeline)
func (h *Handler) GetTimeline(c echo.Context) error {
	userId := c.Param("userId")
	pagination := store.Pagination{
		Offset: intQueryParam(c, "offset", 0),
		Limit:  intQueryParam(c, "limit", h.cfg.DefaultFeedLimit),
	}

	var types []string
	if raw := c.QueryParam("types"); raw != "" {
		types = strings.Split(raw, ",")
	}

	events, err := h.feed.Timeline(c.Request().Context(), userId, pagination, types)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, events)
}
