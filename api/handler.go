package api

import (
	"github.com/labstack/echo/v4"
	"github.com/plemya-health/healthfeed/bodymap"
	"github.com/plemya-health/healthfeed/checkins"
	"github.com/plemya-health/healthfeed/config"
	"github.com/plemya-health/healthfeed/diagnostics"
	"github.com/plemya-health/healthfeed/feed"
	"github.com/plemya-health/healthfeed/labs"
	"github.com/plemya-health/healthfeed/measurements"
	"github.com/plemya-health/healthfeed/scores"
	"github.com/plemya-health/healthfeed/users"
	"go.uber.org/fx"
)

type Handler struct {
	feed         feed.Service
	diagnostics  diagnostics.Service
	labs         labs.Service
	checkins     checkins.Service
	measurements measurements.Service
	scores       scores.Service
	bodyMap      bodymap.Service
	users        users.Service
	cfg          *config.Config
}

type Params struct {
	fx.In

	Feed         feed.Service
	Diagnostics  diagnostics.Service
	Labs         labs.Service
	Checkins     checkins.Service
	Measurements measurements.Service
	Scores       scores.Service
	BodyMap      bodymap.Service
	Users        users.Service
	Config       *config.Config
}

func NewHandler(p Params) *Handler {
	return &Handler{
		feed:         p.Feed,
		diagnostics:  p.Diagnostics,
		labs:         p.Labs,
		checkins:     p.Checkins,
		measurements: p.Measurements,
		scores:       p.Scores,
		bodyMap:      p.BodyMap,
		users:        p.Users,
		cfg:          p.Config,
	}
}

func RegisterRoutes(e *echo.Echo, h *Handler) {
	v1 := e.Group("/v1/users/:userId")
	v1.GET("/dashboard", h.GetDashboard)
	v1.GET("/results", h.ListResults)
	v1.GET("/results/trend", h.GetResultTrend)
	v1.GET("/results/:resultId", h.GetResult)
	v1.GET("/timeline", h.GetTimeline)
	v1.GET("/bodymap", h.GetBodyMapFindings)
	v1.GET("/labs", h.ListLabResults)
	v1.GET("/checkins", h.ListCheckins)
	v1.GET("/checkins/streak", h.GetStreak)
	v1.GET("/measurements", h.ListMeasurements)
	v1.GET("/measurements/latest", h.GetLatestMeasurements)
	v1.GET("/scores/latest", h.GetLatestScore)
	v1.GET("/scores/history", h.GetScoreHistory)
	v1.GET("/profile", h.GetProfile)
	v1.GET("/emergency", h.GetEmergencyInfo)
	v1.PUT("/emergency", h.SaveEmergencyInfo)
}
