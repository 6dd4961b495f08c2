package server

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/pensionbase/bankcore/internal/config"
	"github.com/pensionbase/bankcore/internal/handler"
	"github.com/pensionbase/bankcore/internal/middleware"
	"github.com/pensionbase/bankcore/pkg/logger"
)

type Server struct {
	echo            *echo.Echo
	cfg             *config.Config
	logger          *logger.Logger
	messageHandler  *handler.MessageHandler
	backfillHandler *handler.BackfillHandler
	paymentHandler  *handler.PaymentHandler
	healthHandler   *handler.HealthHandler
}

func New(
	cfg *config.Config,
	log *logger.Logger,
	messageHandler *handler.MessageHandler,
	backfillHandler *handler.BackfillHandler,
	paymentHandler *handler.PaymentHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	return &Server{
		echo:            e,
		cfg:             cfg,
		logger:          log,
		messageHandler:  messageHandler,
		backfillHandler: backfillHandler,
		paymentHandler:  paymentHandler,
		healthHandler:   healthHandler,
	}
}

func (s *Server) Start() error {
	s.setupMiddleware()
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%s", s.cfg.Server.Host, s.cfg.Server.Port)
	s.logger.Info(context.Background(), "Starting HTTP server",
		"address", addr,
	)

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info(ctx, "Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupMiddleware() {
	s.echo.Use(echoMiddleware.Recover())
	s.echo.Use(echoMiddleware.CORS())
	s.echo.Use(middleware.RequestID())
	s.echo.Use(middleware.Logging(s.logger))
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthHandler.Check)

	s.echo.POST("/messages/:bank", s.messageHandler.Receive)
	s.echo.POST("/payments", s.paymentHandler.Initiate)

	s.echo.GET("/admin/messages/pending", s.messageHandler.ListPending)
	s.echo.POST("/admin/messages/process", s.messageHandler.ProcessPending)
	s.echo.POST("/admin/backfill", s.backfillHandler.Trigger)
}

func (s *Server) Handler() *echo.Echo {
	s.setupMiddleware()
	s.setupRoutes()
	return s.echo
}
