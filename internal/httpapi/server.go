package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/alexanderramin/physio/internal/metrics"
)

const shutdownTimeout = 15 * time.Second

type NewServerParams struct {
	Addr           string
	MetricsAddr    string
	Handler        *Handler
	MetricsManager *metrics.Manager
	PromRegistry   prometheus.Gatherer
}

type Server struct {
	addr        string
	metricsAddr string

	handler        *Handler
	metricsManager *metrics.Manager
	promRegistry   prometheus.Gatherer

	apiListener       net.Listener
	metricsListener   net.Listener
	httpServer        *http.Server
	metricsHTTPServer *http.Server
}

func NewServer(params NewServerParams) *Server {
	return &Server{
		addr:           params.Addr,
		metricsAddr:    params.MetricsAddr,
		handler:        params.Handler,
		metricsManager: params.MetricsManager,
		promRegistry:   params.PromRegistry,
	}
}

// Router builds the API router with its middleware chain.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("physio-api"))
	s.handler.SetupRoutes(r)

	r.Use(PanicRecovery(s.metricsManager))
	r.Use(LogRequest())
	r.Use(RequestMetrics(s.metricsManager))
	r.Use(DrainAndCloseRequest())
	return r
}

func (s *Server) metricsRouter() *mux.Router {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}))
	return r
}

// Listen binds the API and metrics addresses. Serve calls it when needed.
func (s *Server) Listen() error {
	if s.apiListener != nil {
		return nil
	}
	apiListener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	metricsListener, err := net.Listen("tcp", s.metricsAddr)
	if err != nil {
		return errors.Join(fmt.Errorf("listen on %s: %w", s.metricsAddr, err), apiListener.Close())
	}
	s.apiListener = apiListener
	s.metricsListener = metricsListener
	return nil
}

// Addr is the bound API address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	if s.apiListener == nil {
		return nil
	}
	return s.apiListener.Addr()
}

func (s *Server) MetricsAddr() net.Addr {
	if s.metricsListener == nil {
		return nil
	}
	return s.metricsListener.Addr()
}

// Serve runs both servers until ctx is cancelled or one of them fails, then
// shuts both down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}

	s.httpServer = &http.Server{
		Handler:      s.Router(),
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}
	s.metricsHTTPServer = &http.Server{
		Handler:           s.metricsRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		log.Infof(" > server listening on: [%s]", s.apiListener.Addr())
		if err := s.httpServer.Serve(s.apiListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("api server: %w", err)
		}
	}()
	go func() {
		defer wg.Done()
		log.Debugf(" > metrics listening on: [%s]", s.metricsListener.Addr())
		if err := s.metricsHTTPServer.Serve(s.metricsListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("metrics server: %w", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
	}

	shutdownErr := s.gracefulShutdown()
	wg.Wait()
	return errors.Join(serveErr, shutdownErr)
}

func (s *Server) gracefulShutdown() error {
	log.Debug("graceful shutdown initiated ...")
	s.metricsManager.GaugeLifeSignal.Set(0)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var err error
	if shutdownErr := s.httpServer.Shutdown(ctx); shutdownErr != nil {
		err = errors.Join(err, fmt.Errorf("shutdown api server: %w", shutdownErr))
	}
	log.Info("server shut down")
	if shutdownErr := s.metricsHTTPServer.Shutdown(ctx); shutdownErr != nil {
		err = errors.Join(err, fmt.Errorf("shutdown metrics server: %w", shutdownErr))
	}
	log.Debug("metrics server shut down")
	return err
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed, http.StateHijacked:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
	}
}
