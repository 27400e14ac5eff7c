package api

import (
	"context"
	"fmt"
	"net/http"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/metrics-api/internal/api/handler"
	"github.com/vfg2006/metrics-api/internal/api/handler/router"
	"github.com/vfg2006/metrics-api/internal/calendar"
	"github.com/vfg2006/metrics-api/internal/config"
	"github.com/vfg2006/metrics-api/internal/usecases/recording"
	"github.com/vfg2006/metrics-api/internal/usecases/reporting"
	"github.com/vfg2006/metrics-api/internal/usecases/sharing"
	"github.com/vfg2006/metrics-api/pkg/metrics"
	"github.com/vfg2006/metrics-api/pkg/middleware"
)

const (
	shutdownTimeout      = 15 * time.Second
	rateLimitCleanupTick = 10 * time.Minute
)

type Server struct {
	httpServer  *http.Server
	rateLimiter *middleware.RateLimiter
	routes      []string
}

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Recorder recording.Recorder
	Reporter reporting.Reporter
	Sharer   sharing.Sharer
	CronJobs handler.CronJobServices
	Pinger   handler.Pinger
}

func New(cfg *config.Config, cal calendar.Calendar, services Services) (*Server, error) {
	loc := cal.Location()

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.Pinger)...),
		router.WithRoutes(handler.Transactions(services.Recorder, loc)...),
		router.WithRoutes(handler.Reports(services.Reporter, loc)...),
		router.WithRoutes(handler.Goals(services.Reporter)...),
		router.WithRoutes(handler.Shares(services.Sharer)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)

	// a ordem importa: o panic é capturado por fora do log, e o vendedor é
	// identificado antes do limite de requisições
	chain := alice.New(
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
		metrics.Instrument(rt),
		middleware.OwnerMiddleware(),
	)

	srv := &Server{routes: rt.Routes()}

	if cfg.RateLimit.Enabled {
		srv.rateLimiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		chain = chain.Append(srv.rateLimiter.Handler)
	}

	srv.httpServer = &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           chain.Then(rt),
		ReadHeaderTimeout: 2 * time.Second,
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run atende até receber SIGINT/SIGTERM ou até ctx ser cancelado, e então
// desliga o servidor aguardando as requisições em andamento.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if s.rateLimiter != nil {
		s.rateLimiter.StartCleanup(ctx, rateLimitCleanupTick)
	}

	serveErr := make(chan error, 1)
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
			"routes":  len(s.routes),
		}).Info("Servidor iniciando")
		for _, route := range s.routes {
			logrus.Debug("Rota registrada: ", route)
		}

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err, ok := <-serveErr:
		if ok {
			logrus.WithError(err).Error("Servidor encerrado com erro")
			return fmt.Errorf("erro ao servir HTTP: %w", err)
		}
		return nil
	case <-ctx.Done():
		logrus.Info("Encerramento solicitado, aguardando requisições em andamento")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado")
	return nil
}
