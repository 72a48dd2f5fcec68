package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/plemya-health/healthfeed/bodymap"
)

// GetBodyMapFindings
// (GET /v1/users/{userId}/bodymap)
func (h *Handler) GetBodyMapFindings(c echo.Context) error {
	userId := c.Param("userId")

	findings, err := h.bodyMap.Findings(c.Request().Context(), userId)
	if err != nil {
		return err
	}
	if findings == nil {
		findings = []*bodymap.Finding{}
	}

	return c.JSON(http.StatusOK, findings)
}
