package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/metrics-api/infrastructure/repository"
	"github.com/vfg2006/metrics-api/internal/aggregation"
	"github.com/vfg2006/metrics-api/internal/calendar"
	"github.com/vfg2006/metrics-api/internal/config"
	"github.com/vfg2006/metrics-api/internal/domain"
	"github.com/vfg2006/metrics-api/internal/usecases/reporting"
	"github.com/vfg2006/metrics-api/pkg/metrics"
	"github.com/vfg2006/metrics-api/pkg/utils"
)

const DailySnapshotJob = "daily-snapshot"

var ErrSyncRunning = errors.New("sync already running")

// DailySnapshotSyncService grava periodicamente os snapshots diários de cada vendedor
type DailySnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              config.DailySnapshotSync
	cal                 calendar.Calendar
	transactionRepo     repository.TransactionRepository
	snapshotRepo        repository.DailySnapshotRepository
	syncMutex           sync.Mutex
	baseCtx             context.Context // contexto das execuções manuais, protegido por syncMutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewDailySnapshotSyncService(
	cal calendar.Calendar,
	cfg config.DailySnapshotSync,
	transactionRepo repository.TransactionRepository,
	snapshotRepo repository.DailySnapshotRepository,
) *DailySnapshotSyncService {
	if cfg.LookbackDays < 1 {
		cfg.LookbackDays = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.CronSchedule,
		"lookback_days": cfg.LookbackDays,
		"timeout":       cfg.Timeout.String(),
		"sync_enabled":  cfg.Enabled,
	}).Info("Configuração do agendador de snapshots diários carregada")

	return &DailySnapshotSyncService{
		scheduler:       gocron.NewScheduler(cal.Location()),
		config:          cfg,
		cal:             cal,
		transactionRepo: transactionRepo,
		snapshotRepo:    snapshotRepo,
		baseCtx:         context.Background(),
	}
}

// Start agenda a sincronização; não faz nada quando desabilitada por configuração
func (s *DailySnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Sincronização de snapshots diários desabilitada por configuração")
		return nil
	}

	s.syncMutex.Lock()
	s.baseCtx = ctx
	s.syncMutex.Unlock()

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots diários")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.Sync(ctx); err != nil && !errors.Is(err, ErrSyncRunning) {
			logrus.WithError(err).Error("Erro na sincronização agendada de snapshots diários")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de snapshots diários: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots diários")
		s.scheduler.Stop()
	}()

	return nil
}

// Sync calcula e grava os snapshots dos últimos LookbackDays dias completos de cada vendedor.
// Retorna ErrSyncRunning se outra execução estiver em andamento.
func (s *DailySnapshotSyncService) Sync(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots diários já em andamento, ignorando")
		return ErrSyncRunning
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	owners, failed, err := s.syncAllOwners(ctx)

	duration := time.Since(startTime)
	metrics.RecordSnapshotSync(duration, err == nil)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"owners":   owners,
		"failed":   failed,
		"days":     s.config.LookbackDays,
	}).Info("Sincronização de snapshots diários concluída")

	return err
}

func (s *DailySnapshotSyncService) syncAllOwners(ctx context.Context) (int, int, error) {
	owners, err := s.transactionRepo.ListOwners(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("erro ao buscar vendedores: %w", err)
	}

	if len(owners) == 0 {
		logrus.Info("Nenhum vendedor encontrado para sincronização de snapshots diários")
		return 0, 0, nil
	}

	days := s.getDaysToProcess()
	logrus.WithFields(logrus.Fields{
		"days":       len(days),
		"start_date": utils.FormatDate(days[len(days)-1]),
		"end_date":   utils.FormatDate(days[0]),
	}).Info("Período para sincronização de snapshots diários")

	var errs []error
	for _, owner := range owners {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		if err := s.syncOwner(ctx, owner, days); err != nil {
			logrus.WithFields(logrus.Fields{
				"owner_id": owner,
				"error":    err.Error(),
			}).Error("Erro ao sincronizar snapshots do vendedor")
			errs = append(errs, fmt.Errorf("vendedor %s: %w", owner, err))
		}
	}

	return len(owners), len(errs), errors.Join(errs...)
}

// getDaysToProcess começa em ontem e volta LookbackDays dias
func (s *DailySnapshotSyncService) getDaysToProcess() []time.Time {
	today := s.cal.StartOfDay(s.cal.Now())
	days := make([]time.Time, s.config.LookbackDays)
	for i := range days {
		days[i] = s.cal.AddDays(today, -i-1)
	}
	return days
}

func (s *DailySnapshotSyncService) syncOwner(ctx context.Context, ownerID string, days []time.Time) error {
	from := days[len(days)-1]
	to := s.cal.AddDays(days[0], 1)

	transactions, err := s.transactionRepo.ListByOwner(ctx, ownerID, domain.TransactionFilter{From: &from, To: &to})
	if err != nil {
		return err
	}

	set := aggregation.New(s.cal, transactions)

	snapshots := make([]domain.DailySnapshot, 0, len(days))
	for _, day := range days {
		snapshots = append(snapshots, reporting.BuildDailySnapshot(set, ownerID, day))
	}

	return s.snapshotRepo.SaveOrUpdate(ctx, snapshots)
}

// TriggerManualSync dispara uma sincronização em segundo plano.
// Retorna false quando já existe uma execução em andamento.
func (s *DailySnapshotSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots diários já em andamento, ignorando solicitação manual")
		return false
	}
	ctx := s.baseCtx
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de snapshots diários")
	go func() {
		if err := s.Sync(ctx); err != nil && !errors.Is(err, ErrSyncRunning) {
			logrus.WithError(err).Error("Erro na sincronização manual de snapshots diários")
		}
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *DailySnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
