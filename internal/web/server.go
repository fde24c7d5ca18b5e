package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"job-board-web/internal/config"
	"job-board-web/internal/controller"
)

// JobBackend is the job service as the web pages use it.
type JobBackend interface {
	controller.JobFeed
	controller.JobPoster
}

// AccountBackend is the account service as the registration pages use it.
type AccountBackend interface {
	controller.SeekerRegistrar
	controller.EmployerRegistrar
}

// Deps are the services the pages are built on.
type Deps struct {
	Jobs     JobBackend
	Accounts AccountBackend
	// Recorder is optional.
	Recorder controller.Recorder
}

type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	config     *config.Config
	deps       Deps
	logger     *slog.Logger
	now        func() time.Time
}

// NewServer builds the router with every page registered.
func NewServer(cfg *config.Config, deps Deps, logger *slog.Logger) (*Server, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	if err := router.SetTrustedProxies(nil); err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)
	router.Use(gin.Recovery(), requestLogger(logger), identityMiddleware(cfg.Session.DefaultEmployerID))

	s := &Server{
		router: router,
		config: cfg,
		deps:   deps,
		logger: logger,
		now:    time.Now,
	}
	s.setUpRoutes()

	s.httpServer = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	return s, nil
}

func (s *Server) setUpRoutes() {
	s.router.GET("/health", s.health)
	s.router.GET("/", s.home)

	s.router.GET("/register/seeker", s.seekerPage)
	s.router.POST("/register/seeker", s.registerSeeker)
	s.router.GET("/register/employer", s.employerPage)
	s.router.POST("/register/employer", s.registerEmployer)
	s.router.GET("/post-job", s.postJobPage)
	s.router.POST("/post-job", s.postJob)

	api := s.router.Group("/api/v1")
	api.Use(cors.New(s.corsConfig()))
	{
		api.GET("/jobs", s.jobsJSON)
	}
}

func (s *Server) corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodOptions}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", EmployerHeader}

	origins := s.config.Server.AllowedOrigins
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens until Shutdown is called.
func (s *Server) Run() error {
	s.logger.Info("server is running", "addr", s.httpServer.Addr, "api", s.config.API.BaseURL)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	s.logger.Info("server shutdown completed")
	return nil
}
