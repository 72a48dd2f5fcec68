package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/plemya-health/healthfeed/labs"
	"github.com/plemya-health/healthfeed/store"
)

// ListLabResults
// (GET /v1/users/{userId}/labs)
func (h *Handler) ListLabResults(c echo.Context) error {
	userId := c.Param("userId")
	filter := &labs.Filter{UserId: &userId}
	if category := c.QueryParam("category"); category != "" {
		filter.Category = &category
	}
	pagination := store.Pagination{
		Limit: intQueryParam(c, "limit", h.cfg.DefaultFeedLimit),
	}

	rows, err := h.labs.List(c.Request().Context(), filter, pagination)
	if err != nil {
		return err
	}

	dtos := make([]LabSummaryDto, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, NewLabSummaryDto(row))
	}

	return c.JSON(http.StatusOK, dtos)
}
