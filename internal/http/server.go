package http

import (
	"context"
	stdhttp "net/http"

	"client-service/internal/config"
	"client-service/internal/http/handler"
	"client-service/internal/http/middleware"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const (
	jsonKeyStatus    = "status"
	statusOK         = "ok"
	requestBodyLimit = "1M"
)

type ServerDependencies struct {
	Config    *config.Config
	Directory handler.ClientDirectory
	Logger    *zap.Logger
}

type Server struct {
	echo *echo.Echo
	deps *ServerDependencies
}

func NewServer(deps *ServerDependencies) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = CustomHTTPErrorHandler

	e.Server.ReadTimeout = deps.Config.Server.ReadTimeout
	e.Server.WriteTimeout = deps.Config.Server.WriteTimeout

	// Request ID first, so every log line carries one.
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.BodyLimit(requestBodyLimit))

	rateLimiter := middleware.NewRateLimiter(deps.Config.Limits.RatePerSecond, deps.Config.Limits.RateBurst)
	e.Use(rateLimiter.Middleware())

	clientHandler := handler.NewClientHandler(deps.Directory)

	e.GET("/health", healthCheck)

	e.POST("/clients", clientHandler.CreateClient)
	e.GET("/clients", clientHandler.ListClients)
	e.GET("/clients/search", clientHandler.SearchClients)
	e.GET("/clients/:id", clientHandler.GetClient)
	e.PATCH("/clients/:id", clientHandler.UpdateClient)
	e.DELETE("/clients/:id", clientHandler.DeleteClient)
	e.POST("/clients/:id/phones", clientHandler.AddPhone)
	e.DELETE("/clients/:id/phones", clientHandler.DeletePhone)

	return &Server{
		echo: e,
		deps: deps,
	}
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func healthCheck(c echo.Context) error {
	return c.JSON(stdhttp.StatusOK, map[string]string{
		jsonKeyStatus: statusOK,
	})
}
