package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/plemya-health/healthfeed/errors"
	"github.com/plemya-health/healthfeed/users"
)

// GetProfile
// (GET /v1/users/{userId}/profile)
func (h *Handler) GetProfile(c echo.Context) error {
	userId := c.Param("userId")

	profile, err := h.users.GetProfile(c.Request().Context(), userId)
	if err == users.ErrNotFound {
		return errors.NotFound
	} else if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, NewProfileDto(profile))
}

// GetEmergencyInfo
// (GET /v1/users/{userId}/emergency)
func (h *Handler) GetEmergencyInfo(c echo.Context) error {
	userId := c.Param("userId")

	info, err := h.users.GetEmergencyInfo(c.Request().Context(), userId)
	if err == users.ErrNotFound {
		return errors.NotFound
	} else if err != nil {
		return err
	}
	if info == nil {
		// The profile exists but the card was never filled in. Clients
		// treat this the same as a missing profile.
		return errors.NotFound
	}

	return c.JSON(http.StatusOK, info)
}

// SaveEmergencyInfo
// (PUT /v1/users/{userId}/emergency)
func (h *Handler) SaveEmergencyInfo(c echo.Context) error {
	userId := c.Param("userId")

	info := users.EmergencyInfo{}
	if err := c.Bind(&info); err != nil {
		return errors.BadRequest
	}

	saved, err := h.users.SaveEmergencyInfo(c.Request().Context(), userId, info)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, saved)
}
