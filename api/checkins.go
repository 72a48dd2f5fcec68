package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/plemya-health/healthfeed/checkins"
	"github.com/plemya-health/healthfeed/store"
)

// ListCheckins
// (GET /v1/users/{userId}/checkins)
func (h *Handler) ListCheckins(c echo.Context) error {
	userId := c.Param("userId")
	pagination := store.Pagination{
		Limit: intQueryParam(c, "limit", 30),
	}

	rows, err := h.checkins.List(c.Request().Context(), &checkins.Filter{UserId: &userId}, pagination)
	if err != nil {
		return err
	}

	dtos := make([]CheckinDto, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, NewCheckinDto(row))
	}

	return c.JSON(http.StatusOK, dtos)
}

// GetStreak
// (GET /v1/users/{userId}/checkins/streak)
func (h *Handler) GetStreak(c echo.Context) error {
	userId := c.Param("userId")

	streak, err := h.checkins.Streak(c.Request().Context(), userId)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, StreakDto{Streak: streak})
}
