package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-insights/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	meetingHandler *Meeting
	audioHandler   *Audio
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, meetingHandler *Meeting, audioHandler *Audio) *Router {
	return &Router{
		cfg:            cfg,
		meetingHandler: meetingHandler,
		audioHandler:   audioHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)

	v1 := e.Group("/v1")

	rt.setupMeetingRoutes(v1)
	rt.setupAudioRoutes(v1)
}

func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetingGroup := g.Group("/meetings")

	if rt.meetingHandler != nil {
		meetingGroup.POST("/analyze", rt.meetingHandler.Analyze)
		meetingGroup.POST("/upload", rt.meetingHandler.Upload)
		meetingGroup.GET("", rt.meetingHandler.List)
		meetingGroup.GET("/:id", rt.meetingHandler.Get)
		meetingGroup.GET("/:id/export", rt.meetingHandler.Export)
		meetingGroup.GET("/:id/events.ics", rt.meetingHandler.EventsICS)
	} else {
		meetingGroup.POST("/analyze", rt.notImplemented)
		meetingGroup.POST("/upload", rt.notImplemented)
		meetingGroup.GET("", rt.notImplemented)
		meetingGroup.GET("/:id", rt.notImplemented)
		meetingGroup.GET("/:id/export", rt.notImplemented)
		meetingGroup.GET("/:id/events.ics", rt.notImplemented)
	}
}

func (rt *Router) setupAudioRoutes(g *echo.Group) {
	audioGroup := g.Group("/audio")

	if rt.audioHandler != nil {
		audioGroup.POST("/enhance", rt.audioHandler.Enhance)
	} else {
		audioGroup.POST("/enhance", rt.notImplemented)
	}
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":   "This endpoint is not yet implemented",
		"path":    c.Request().URL.Path,
		"method":  c.Request().Method,
		"message": "Please initialize the required handler in main.go",
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"time":        time.Now().Format(time.RFC3339),
		"environment": rt.cfg.Server.Environment,
	})
}
