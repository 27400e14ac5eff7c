package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/metrics-api/infrastructure/repository"
	"github.com/vfg2006/metrics-api/internal/aggregation"
	"github.com/vfg2006/metrics-api/internal/calendar"
	"github.com/vfg2006/metrics-api/internal/domain"
	"github.com/vfg2006/metrics-api/pkg/log"
	"github.com/vfg2006/metrics-api/pkg/utils"
)

// Reporter calcula os relatórios de um vendedor
type Reporter interface {
	Today(ctx context.Context, ownerID string) (*domain.TodaySummary, error)
	Week(ctx context.Context, ownerID string) (*domain.WeekSummary, error)
	Graph(ctx context.Context, ownerID string, stat domain.GraphStat, scale domain.GraphScale, offset int) (*domain.GraphReport, error)
	Lifetime(ctx context.Context, ownerID string) (*domain.LifetimeSummary, error)
	Goals(ctx context.Context, ownerID string) (*domain.GoalSettings, error)
	UpdateGoals(ctx context.Context, ownerID string, settings domain.GoalSettings) (*domain.GoalSettings, error)
	Snapshots(ctx context.Context, ownerID string, from, to time.Time) ([]domain.DailySnapshot, error)
}

type Service struct {
	cal                    calendar.Calendar
	defaultGoals           domain.GoalSettings
	transactionRepository  repository.TransactionRepository
	goalSettingsRepository repository.GoalSettingsRepository
	snapshotRepository     repository.DailySnapshotRepository
}

func NewService(
	cal calendar.Calendar,
	defaultGoals domain.GoalSettings,
	transactionRepo repository.TransactionRepository,
	goalSettingsRepo repository.GoalSettingsRepository,
	snapshotRepo repository.DailySnapshotRepository,
) Reporter {
	return &Service{
		cal:                    cal,
		defaultGoals:           defaultGoals,
		transactionRepository:  transactionRepo,
		goalSettingsRepository: goalSettingsRepo,
		snapshotRepository:     snapshotRepo,
	}
}

// load busca as transações do vendedor em [from, to) e monta o conjunto de agregação.
// Os filtros do conjunto continuam decidindo o recorte exato.
func (s *Service) load(ctx context.Context, ownerID string, from, to *time.Time) (aggregation.Set, error) {
	transactions, err := s.transactionRepository.ListByOwner(ctx, ownerID, domain.TransactionFilter{From: from, To: to})
	if err != nil {
		return aggregation.Set{}, err
	}
	return aggregation.New(s.cal, transactions), nil
}

func (s *Service) Today(ctx context.Context, ownerID string) (*domain.TodaySummary, error) {
	start := s.cal.StartOfDay(s.cal.Now())
	end := s.cal.AddDays(start, 1)

	set, err := s.load(ctx, ownerID, &start, &end)
	if err != nil {
		return nil, fmt.Errorf("reports-today: %w", err)
	}

	goals, err := s.Goals(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("reports-today: %w", err)
	}

	summary := BuildTodaySummary(set, goals)
	return &summary, nil
}

func (s *Service) Week(ctx context.Context, ownerID string) (*domain.WeekSummary, error) {
	start := s.cal.StartOfWeek(s.cal.Now())
	end := s.cal.AddDays(start, 7)

	set, err := s.load(ctx, ownerID, &start, &end)
	if err != nil {
		return nil, fmt.Errorf("reports-week: %w", err)
	}

	summary := BuildWeekSummary(set)
	return &summary, nil
}

func (s *Service) Graph(ctx context.Context, ownerID string, stat domain.GraphStat, scale domain.GraphScale, offset int) (*domain.GraphReport, error) {
	if offset < 0 {
		return nil, newValidationError(ErrInvalidGraphRequest, "offset")
	}

	from, to := s.graphRange(scale, offset)

	set, err := s.load(ctx, ownerID, &from, &to)
	if err != nil {
		return nil, fmt.Errorf("reports-graph: %w", err)
	}

	report, err := BuildGraph(set, stat, scale, offset)
	if err != nil {
		return nil, err
	}

	log.ForOperation(ctx, "reports-graph").WithFields(log.Fields{
		"owner_id": ownerID,
		"stat":     stat,
		"scale":    scale,
		"offset":   offset,
	}).Debug("Gráfico calculado")

	return report, nil
}

// graphRange cobre todos os períodos exibidos pelo gráfico
func (s *Service) graphRange(scale domain.GraphScale, offset int) (time.Time, time.Time) {
	switch scale {
	case domain.GraphScaleWeekly:
		start := s.cal.StartOfWeek(s.cal.WeeksAgo(offset))
		return start, s.cal.AddDays(start, 7)
	case domain.GraphScaleMonthly:
		start := s.cal.StartOfWeek(s.cal.WeeksAgo(graphBars*offset + graphBars - 1))
		end := s.cal.AddDays(s.cal.StartOfWeek(s.cal.WeeksAgo(graphBars*offset)), 7)
		return start, end
	default:
		start := s.cal.MonthsAgo(graphBars*offset + graphBars - 1)
		end := s.cal.AddMonths(s.cal.MonthsAgo(graphBars*offset), 1)
		return start, end
	}
}

func (s *Service) Lifetime(ctx context.Context, ownerID string) (*domain.LifetimeSummary, error) {
	set, err := s.load(ctx, ownerID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("reports-lifetime: %w", err)
	}

	summary := BuildLifetimeSummary(set)
	return &summary, nil
}

// Goals devolve as metas do vendedor ou as metas padrão quando ele ainda não configurou nenhuma
func (s *Service) Goals(ctx context.Context, ownerID string) (*domain.GoalSettings, error) {
	settings, err := s.goalSettingsRepository.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("goals: %w", err)
	}

	if settings == nil {
		defaults := s.defaultGoals
		defaults.OwnerID = ownerID
		return &defaults, nil
	}

	return settings, nil
}

func (s *Service) UpdateGoals(ctx context.Context, ownerID string, settings domain.GoalSettings) (*domain.GoalSettings, error) {
	if err := ValidateGoals(settings); err != nil {
		return nil, err
	}

	settings.OwnerID = ownerID
	settings.UpdatedAt = s.cal.Now().UTC()

	if err := s.goalSettingsRepository.Upsert(ctx, settings); err != nil {
		return nil, fmt.Errorf("update-goals: %w", err)
	}

	log.WithOwner(ctx, ownerID).WithField("operation", "update-goals").Info("Metas atualizadas")

	return &settings, nil
}

// ValidateGoals limita as metas percentuais a 0..100 e a meta de leads a valores não negativos
func ValidateGoals(settings domain.GoalSettings) error {
	if settings.AppleCareGoalPercent < 0 || settings.AppleCareGoalPercent > 100 {
		return newValidationError(ErrInvalidGoal, "appleCareGoalPercent")
	}
	if settings.BusinessLeadsGoal < 0 {
		return newValidationError(ErrInvalidGoal, "businessLeadsGoal")
	}
	if settings.ConnectivityGoalPercent < 0 || settings.ConnectivityGoalPercent > 100 {
		return newValidationError(ErrInvalidGoal, "connectivityGoalPercent")
	}
	return nil
}

// Snapshots lista os snapshots diários do período, com as duas datas inclusivas
func (s *Service) Snapshots(ctx context.Context, ownerID string, from, to time.Time) ([]domain.DailySnapshot, error) {
	if to.Before(from) {
		return nil, ErrInvalidPeriod
	}

	snapshots, err := s.snapshotRepository.ListByOwner(ctx, ownerID, utils.FormatDate(from), utils.FormatDate(to))
	if err != nil {
		return nil, fmt.Errorf("reports-snapshots: %w", err)
	}

	return snapshots, nil
}
