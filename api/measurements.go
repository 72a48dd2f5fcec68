package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/plemya-health/healthfeed/measurements"
	"github.com/plemya-health/healthfeed/store"
)

// ListMeasurements
// (GET /v1/users/{userId}/measurements)
func (h *Handler) ListMeasurements(c echo.Context) error {
	userId := c.Param("userId")
	filter := &measurements.Filter{UserId: &userId}
	if measurementType := c.QueryParam("type"); measurementType != "" {
		filter.Type = &measurementType
	}
	pagination := store.Pagination{
		Limit: intQueryParam(c, "limit", 20),
	}

	rows, err := h.measurements.List(c.Request().Context(), filter, pagination)
	if err != nil {
		return err
	}

	dtos := make([]MeasurementDto, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, NewMeasurementDto(row))
	}

	return c.JSON(http.StatusOK, dtos)
}

// GetLatestMeasurements
// (GET /v1/users/{userId}/measurements/latest)
func (h *Handler) GetLatestMeasurements(c echo.Context) error {
	userId := c.Param("userId")

	latest, err := h.measurements.Latest(c.Request().Context(), userId)
	if err != nil {
		return err
	}

	dtos := make(map[string]MeasurementDto, len(latest))
	for measurementType, row := range latest {
		dtos[measurementType] = NewMeasurementDto(row)
	}

	return c.JSON(http.StatusOK, dtos)
}
