package server

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/vgrigoryan/pr-review-assigner/internal/handler"
	"github.com/vgrigoryan/pr-review-assigner/internal/handler/middleware"
)

type Server struct {
	log    *zap.SugaredLogger
	server *http.Server
}

func NewServer(log *zap.SugaredLogger, h *handler.Handler, addr string) *Server {
	mux := http.NewServeMux()
	SetupRoutes(mux, h)

	var root http.Handler = mux
	root = middleware.RequestLogger(log)(root)
	root = middleware.Recover(log)(root)
	root = middleware.RequestID(root)

	return &Server{
		log: log,
		server: &http.Server{
			Addr:              addr,
			Handler:           root,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

func (s *Server) Start() error {
	s.log.Infow("server starting", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.log.Info("server stopped")
	return nil
}
