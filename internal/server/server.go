package server

import (
	"context"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	"schoolsite/internal/config"
	"schoolsite/internal/validator"
)

// Server owns the echo instance. Lifecycle is explicit: the caller decides
// when to Start and when to Shutdown, there is no signal handling here.
type Server struct {
	echo *echo.Echo
	cfg  config.Config
}

func New(cfg config.Config, h Handlers) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validator.New()

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(requestLogger())

	e.Static(cfg.MediaBaseURL, cfg.MediaRoot)

	registerRoutes(e, cfg, h)

	return &Server{echo: e, cfg: cfg}
}

func (s *Server) Start() error {
	log.WithField("port", s.cfg.Port).Info("http server listening")
	return s.echo.Start(":" + s.cfg.Port)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Echo exposes the router for in-process tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

func requestLogger() echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			log.WithFields(log.Fields{
				"method":  v.Method,
				"uri":     v.URI,
				"status":  v.Status,
				"latency": v.Latency.String(),
			}).Info("request")
			return nil
		},
	})
}
