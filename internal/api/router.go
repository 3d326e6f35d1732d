package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/ananyaa0518/resQAI/internal/api/handlers/http/admin"
	"github.com/ananyaa0518/resQAI/internal/api/handlers/http/public"
	"github.com/ananyaa0518/resQAI/internal/api/handlers/http/system"
	"github.com/ananyaa0518/resQAI/internal/config"
	"github.com/ananyaa0518/resQAI/internal/middleware"
	"github.com/ananyaa0518/resQAI/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service) *Server {
	publicHandler := public.NewHandler(logger, svc.ReportIntake, svc.SOSIntake, svc.ReportQuery)
	adminHandler := admin.NewHandler(logger, svc.Moderation, svc.Stats)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(cfg, publicHandler, adminHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(cfg *config.Config, publicHandler *public.Handler, adminHandler *admin.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Get("/", systemHandler.Root)
	r.Get("/health", systemHandler.Health)

	// Transport limits sit on top of the domain-level 3-per-hour rule.
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.LimitPerMinute(10, 10*time.Minute, logger))
		pr.Post("/report", publicHandler.CreateReport)
	})
	r.Group(func(sr chi.Router) {
		sr.Use(middleware.LimitPerMinute(5, 10*time.Minute, logger))
		sr.Post("/sos", publicHandler.CreateSOS)
	})

	r.Get("/reports", publicHandler.ListReports)

	r.With(middleware.APIKeyMiddleware(cfg.APIKey)).
		Patch("/reports/{id}/status", adminHandler.UpdateReportStatus)

	r.Route("/admin", func(ar chi.Router) {
		ar.Use(middleware.APIKeyMiddleware(cfg.APIKey))
		ar.Get("/stats", adminHandler.AdminStats)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
