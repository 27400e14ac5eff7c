package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/metrics-api/infrastructure/database"
	"github.com/vfg2006/metrics-api/internal/domain"
)

const goalSettingsTable = "goal_settings"

type GoalSettingsRepository interface {
	GetByOwner(ctx context.Context, ownerID string) (*domain.GoalSettings, error)
	Upsert(ctx context.Context, settings domain.GoalSettings) error
}

type goalSettingsRepository struct {
	conn *database.Connection
}

func NewGoalSettingsRepository(conn *database.Connection) GoalSettingsRepository {
	return &goalSettingsRepository{
		conn: conn,
	}
}

// GetByOwner retorna nil quando o vendedor ainda não salvou metas
func (r *goalSettingsRepository) GetByOwner(ctx context.Context, ownerID string) (*domain.GoalSettings, error) {
	query, args, err := r.conn.Builder().
		Select(
			"owner_id",
			"applecare_goal_percent",
			"business_leads_goal",
			"connectivity_goal_percent",
			"show_goals_in_summary",
			"show_sharing_in_summary",
			"updated_at",
		).
		From(goalSettingsTable).
		Where(squirrel.Eq{"owner_id": ownerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	settings := &domain.GoalSettings{}
	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&settings.OwnerID,
		&settings.AppleCareGoalPercent,
		&settings.BusinessLeadsGoal,
		&settings.ConnectivityGoalPercent,
		&settings.ShowGoalsInSummaryView,
		&settings.ShowSharingInSummaryView,
		&settings.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear metas: %w", err)
	}

	return settings, nil
}

func (r *goalSettingsRepository) Upsert(ctx context.Context, s domain.GoalSettings) error {
	query, args, err := r.conn.Builder().
		Insert(goalSettingsTable).
		Columns(
			"owner_id",
			"applecare_goal_percent",
			"business_leads_goal",
			"connectivity_goal_percent",
			"show_goals_in_summary",
			"show_sharing_in_summary",
			"updated_at",
		).
		Values(
			s.OwnerID,
			s.AppleCareGoalPercent,
			s.BusinessLeadsGoal,
			s.ConnectivityGoalPercent,
			s.ShowGoalsInSummaryView,
			s.ShowSharingInSummaryView,
			s.UpdatedAt.UTC(),
		).
		Suffix(`
			ON CONFLICT (owner_id) DO UPDATE SET
				applecare_goal_percent = EXCLUDED.applecare_goal_percent,
				business_leads_goal = EXCLUDED.business_leads_goal,
				connectivity_goal_percent = EXCLUDED.connectivity_goal_percent,
				show_goals_in_summary = EXCLUDED.show_goals_in_summary,
				show_sharing_in_summary = EXCLUDED.show_sharing_in_summary,
				updated_at = EXCLUDED.updated_at
		`).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao salvar metas: %w", err)
	}

	return nil
}
