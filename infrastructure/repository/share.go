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

const (
	sharesTable            = "shares"
	shareParticipantsTable = "share_participants"
)

type ShareRepository interface {
	Create(ctx context.Context, share domain.Share) error
	GetByCode(ctx context.Context, code string) (*domain.Share, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Share, error)
	Delete(ctx context.Context, code string) error
	AddParticipant(ctx context.Context, participant domain.ShareParticipant) error
	ListAcceptedByViewer(ctx context.Context, viewerID string) ([]domain.Share, error)
}

type shareRepository struct {
	conn *database.Connection
}

func NewShareRepository(conn *database.Connection) ShareRepository {
	return &shareRepository{
		conn: conn,
	}
}

func (r *shareRepository) Create(ctx context.Context, share domain.Share) error {
	query, args, err := r.conn.Builder().
		Insert(sharesTable).
		Columns("code", "owner_id", "owner_name", "created_at").
		Values(share.Code, share.OwnerID, share.OwnerName, share.CreatedAt.UTC()).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("código %s: %w", share.Code, ErrDuplicateKey)
		}
		return fmt.Errorf("erro ao inserir compartilhamento: %w", err)
	}

	return nil
}

func (r *shareRepository) GetByCode(ctx context.Context, code string) (*domain.Share, error) {
	query, args, err := r.conn.Builder().
		Select("code", "owner_id", "owner_name", "created_at").
		From(sharesTable).
		Where(squirrel.Eq{"code": code}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	share, err := scanShare(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear compartilhamento: %w", err)
	}

	return share, nil
}

func (r *shareRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Share, error) {
	query, args, err := r.conn.Builder().
		Select("code", "owner_id", "owner_name", "created_at").
		From(sharesTable).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryShares(ctx, query, args...)
}

// Delete remove o compartilhamento; os participantes saem em cascata
func (r *shareRepository) Delete(ctx context.Context, code string) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		participants, args, err := r.conn.Builder().
			Delete(shareParticipantsTable).
			Where(squirrel.Eq{"code": code}).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, participants, args...); err != nil {
			return fmt.Errorf("erro ao remover participantes: %w", err)
		}

		share, args, err := r.conn.Builder().
			Delete(sharesTable).
			Where(squirrel.Eq{"code": code}).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, share, args...); err != nil {
			return fmt.Errorf("erro ao remover compartilhamento: %w", err)
		}

		return nil
	})
}

// AddParticipant é idempotente: aceitar o mesmo convite duas vezes não duplica
func (r *shareRepository) AddParticipant(ctx context.Context, p domain.ShareParticipant) error {
	query, args, err := r.conn.Builder().
		Insert(shareParticipantsTable).
		Columns("code", "viewer_id", "accepted_at").
		Values(p.Code, p.ViewerID, p.AcceptedAt.UTC()).
		Suffix("ON CONFLICT (code, viewer_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir participante: %w", err)
	}

	return nil
}

func (r *shareRepository) ListAcceptedByViewer(ctx context.Context, viewerID string) ([]domain.Share, error) {
	query, args, err := r.conn.Builder().
		Select("s.code", "s.owner_id", "s.owner_name", "s.created_at").
		From(sharesTable + " s").
		Join(shareParticipantsTable + " sp ON sp.code = s.code").
		Where(squirrel.Eq{"sp.viewer_id": viewerID}).
		OrderBy("s.owner_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryShares(ctx, query, args...)
}

func (r *shareRepository) queryShares(ctx context.Context, query string, args ...any) ([]domain.Share, error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	shares := make([]domain.Share, 0)
	for rows.Next() {
		share, err := scanShare(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear compartilhamento: %w", err)
		}
		shares = append(shares, *share)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return shares, nil
}

func scanShare(row scanner) (*domain.Share, error) {
	share := &domain.Share{}
	if err := row.Scan(&share.Code, &share.OwnerID, &share.OwnerName, &share.CreatedAt); err != nil {
		return nil, err
	}
	return share, nil
}
