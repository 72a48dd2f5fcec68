package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/plemya-health/healthfeed/errors"
	"github.com/plemya-health/healthfeed/scores"
)

// GetLatestScore
// (GET /v1/users/{userId}/scores/latest)
func (h *Handler) GetLatestScore(c echo.Context) error {
	userId := c.Param("userId")

	latest, err := h.scores.Latest(c.Request().Context(), userId)
	if err == scores.ErrNotFound {
		return errors.NotFound
	} else if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, NewScoreDto(latest))
}

// GetScoreHistory
// (GET /v1/users/{userId}/scores/history)
func (h *Handler) GetScoreHistory(c echo.Context) error {
	userId := c.Param("userId")
	days := intQueryParam(c, "days", 30)

	history, err := h.scores.History(c.Request().Context(), userId, days)
	if err != nil {
		return err
	}

	dtos := make([]ScoreDto, 0, len(history))
	for _, row := range history {
		dtos = append(dtos, NewScoreDto(row))
	}

	return c.JSON(http.StatusOK, dtos)
}
