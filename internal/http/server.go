package http

import (
	"context"
	stdhttp "net/http"
	"strconv"

	"casestudy-service/internal/config"
	"casestudy-service/internal/http/handler"
	"casestudy-service/internal/http/middleware"
	"casestudy-service/internal/store"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

const (
	jsonKeyStatus      = "status"
	statusOK           = "ok"
	uploadsRoutePrefix = "/uploads/projects"
)

type ServerDependencies struct {
	Config   *config.Config
	Projects *store.ProjectStore
}

type Server struct {
	echo *echo.Echo
	deps *ServerDependencies
}

func NewServer(deps *ServerDependencies) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Set custom HTTP error handler
	e.HTTPErrorHandler = CustomHTTPErrorHandler

	e.Server.ReadTimeout = deps.Config.Server.ReadTimeout
	e.Server.WriteTimeout = deps.Config.Server.WriteTimeout

	// Request ID middleware (first, so all logs have request ID)
	e.Use(middleware.RequestID())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.BodyLimit(strconv.FormatInt(deps.Config.App.MaxUploadSize, 10)))

	// Global rate limiting; mutations get a tighter budget since each one
	// rewrites the whole projects file.
	globalRateLimiter := middleware.NewGlobalRateLimiter()
	e.Use(globalRateLimiter.Middleware())

	mutationRateLimiter := middleware.NewMutationRateLimiter()

	projectHandler := handler.NewProjectHandler(deps.Projects)

	e.GET("/health", healthCheck)
	e.Static(uploadsRoutePrefix, deps.Config.Storage.UploadsDir)

	api := e.Group("/api")
	api.GET("/projects", projectHandler.ListProjects)
	api.GET("/projects/:id", projectHandler.GetProject)
	api.POST("/projects", projectHandler.CreateProject, mutationRateLimiter.Middleware())
	api.PUT("/projects/:id", projectHandler.UpdateProject, mutationRateLimiter.Middleware())
	api.DELETE("/projects/:id", projectHandler.DeleteProject, mutationRateLimiter.Middleware())

	// The original admin panel addressed records through the collection
	// path, id in the form body or query string. Kept for compatibility.
	api.PUT("/projects", projectHandler.UpdateProject, mutationRateLimiter.Middleware())
	api.DELETE("/projects", projectHandler.DeleteProject, mutationRateLimiter.Middleware())

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
