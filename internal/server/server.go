package server

import (
	"context"
	"net"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/readmio/bookshelf-service/config"
)

type Server struct {
	srv *http.Server
}

func NewServer(cfg config.HTTPServer, handler *echo.Echo) *Server {
	return &Server{
		srv: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}
}

func (s *Server) Run() error {
	return s.srv.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
