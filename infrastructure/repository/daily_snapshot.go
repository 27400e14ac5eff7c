package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/metrics-api/infrastructure/database"
	"github.com/vfg2006/metrics-api/internal/domain"
)

const dailySnapshotsTable = "daily_snapshots"

type DailySnapshotRepository interface {
	SaveOrUpdate(ctx context.Context, snapshots []domain.DailySnapshot) error
	ListByOwner(ctx context.Context, ownerID, fromDay, toDay string) ([]domain.DailySnapshot, error)
}

type dailySnapshotRepository struct {
	conn *database.Connection
}

func NewDailySnapshotRepository(conn *database.Connection) DailySnapshotRepository {
	return &dailySnapshotRepository{
		conn: conn,
	}
}

func (r *dailySnapshotRepository) SaveOrUpdate(ctx context.Context, snapshots []domain.DailySnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	query := r.conn.Builder().
		Insert(dailySnapshotsTable).
		Columns(
			"owner_id",
			"day",
			"devices",
			"applecare_numerator",
			"applecare_denominator",
			"applecare_percent",
			"business_leads",
			"connected_units",
			"iphone_units",
			"connectivity_percent",
			"updated_at",
		)

	for _, s := range snapshots {
		query = query.Values(
			s.OwnerID,
			s.Day,
			s.Devices,
			s.AppleCareNumerator,
			s.AppleCareDenominator,
			s.AppleCarePercent,
			s.BusinessLeads,
			s.ConnectedUnits,
			s.IPhoneUnits,
			s.ConnectivityPercent,
			s.UpdatedAt.UTC(),
		)
	}

	query = query.Suffix(`
		ON CONFLICT (owner_id, day) DO UPDATE SET
			devices = EXCLUDED.devices,
			applecare_numerator = EXCLUDED.applecare_numerator,
			applecare_denominator = EXCLUDED.applecare_denominator,
			applecare_percent = EXCLUDED.applecare_percent,
			business_leads = EXCLUDED.business_leads,
			connected_units = EXCLUDED.connected_units,
			iphone_units = EXCLUDED.iphone_units,
			connectivity_percent = EXCLUDED.connectivity_percent,
			updated_at = EXCLUDED.updated_at
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.Exec(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

// ListByOwner lista os snapshots entre os dias informados (YYYY-MM-DD, inclusivos)
func (r *dailySnapshotRepository) ListByOwner(ctx context.Context, ownerID, fromDay, toDay string) ([]domain.DailySnapshot, error) {
	builder := r.conn.Builder().
		Select(
			"owner_id",
			"day",
			"devices",
			"applecare_numerator",
			"applecare_denominator",
			"applecare_percent",
			"business_leads",
			"connected_units",
			"iphone_units",
			"connectivity_percent",
			"updated_at",
		).
		From(dailySnapshotsTable).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("day ASC")

	if fromDay != "" {
		builder = builder.Where(squirrel.GtOrEq{"day": fromDay})
	}
	if toDay != "" {
		builder = builder.Where(squirrel.LtOrEq{"day": toDay})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]domain.DailySnapshot, 0)
	for rows.Next() {
		var s domain.DailySnapshot
		err := rows.Scan(
			&s.OwnerID,
			&s.Day,
			&s.Devices,
			&s.AppleCareNumerator,
			&s.AppleCareDenominator,
			&s.AppleCarePercent,
			&s.BusinessLeads,
			&s.ConnectedUnits,
			&s.IPhoneUnits,
			&s.ConnectivityPercent,
			&s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}
		snapshots = append(snapshots, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}
