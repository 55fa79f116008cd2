package api

import (
	"github.com/burenotti/go_nutrition/internal/adapter/render"
	"github.com/burenotti/go_nutrition/internal/app/planner"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"
)

type Option func(*Server)

func Addr(host string, port int) Option {
	return func(s *Server) {
		s.addr = net.JoinHostPort(host, strconv.Itoa(port))
	}
}

func Logger(l *slog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

func PlannerService(service *planner.Service) Option {
	return func(s *Server) {
		s.plannerService = service
	}
}

func MetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metricsHandler = h
	}
}

func SVGOptions(opts render.SVGOptions) Option {
	return func(s *Server) {
		s.svgOptions = opts
	}
}

type Timeouts struct {
	Read       time.Duration
	Write      time.Duration
	Idle       time.Duration
	ReadHeader time.Duration
}

func ServerTimeouts(t Timeouts) Option {
	return func(s *Server) {
		s.handler.Server.ReadTimeout = t.Read
		s.handler.Server.WriteTimeout = t.Write
		s.handler.Server.IdleTimeout = t.Idle
		s.handler.Server.ReadHeaderTimeout = t.ReadHeader
	}
}

func MaxHeaderBytes(n int) Option {
	return func(s *Server) {
		s.handler.Server.MaxHeaderBytes = n
	}
}
