// Package repository contém as implementações dos repositórios para acesso aos dados
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

const transactionsTable = "transactions"

var transactionColumns = []string{
	"id",
	"owner_id",
	"occurred_at",
	"device_type",
	"bought_applecare",
	"applecare_standalone",
	"got_lead",
	"connected",
	"created_at",
}

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/vfg2006/metrics-api/infrastructure/repository DailySnapshotRepository,GoalSettingsRepository,ShareRepository,TransactionRepository

type TransactionRepository interface {
	Create(ctx context.Context, transaction *domain.Transaction) error
	GetByID(ctx context.Context, ownerID, id string) (*domain.Transaction, error)
	ListByOwner(ctx context.Context, ownerID string, filter domain.TransactionFilter) ([]domain.Transaction, error)
	ListOwners(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, ownerID, id string) (bool, error)
	DeleteByOwner(ctx context.Context, ownerID string) (int64, error)
}

type transactionRepository struct {
	conn *database.Connection
}

func NewTransactionRepository(conn *database.Connection) TransactionRepository {
	return &transactionRepository{
		conn: conn,
	}
}

func (r *transactionRepository) Create(ctx context.Context, t *domain.Transaction) error {
	query, args, err := r.conn.Builder().
		Insert(transactionsTable).
		Columns(transactionColumns...).
		Values(
			t.ID,
			t.OwnerID,
			t.Date.UTC(),
			string(t.DeviceType),
			t.BoughtAppleCare,
			t.IsAppleCareStandalone,
			t.GotLead,
			t.Connected,
			t.CreatedAt.UTC(),
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir transação: %w", err)
	}

	return nil
}

func (r *transactionRepository) GetByID(ctx context.Context, ownerID, id string) (*domain.Transaction, error) {
	query, args, err := r.conn.Builder().
		Select(transactionColumns...).
		From(transactionsTable).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	t, err := scanTransaction(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear transação: %w", err)
	}

	return t, nil
}

func (r *transactionRepository) ListByOwner(ctx context.Context, ownerID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	builder := r.conn.Builder().
		Select(transactionColumns...).
		From(transactionsTable).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("occurred_at ASC", "id ASC")

	if filter.From != nil {
		builder = builder.Where(squirrel.GtOrEq{"occurred_at": filter.From.UTC()})
	}
	if filter.To != nil {
		builder = builder.Where(squirrel.Lt{"occurred_at": filter.To.UTC()})
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

	transactions := make([]domain.Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear transação: %w", err)
		}
		transactions = append(transactions, *t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return transactions, nil
}

func (r *transactionRepository) ListOwners(ctx context.Context) ([]string, error) {
	query, args, err := r.conn.Builder().
		Select("DISTINCT owner_id").
		From(transactionsTable).
		OrderBy("owner_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	owners := make([]string, 0)
	for rows.Next() {
		var owner string
		if err := rows.Scan(&owner); err != nil {
			return nil, fmt.Errorf("erro ao escanear dono: %w", err)
		}
		owners = append(owners, owner)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return owners, nil
}

func (r *transactionRepository) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	query, args, err := r.conn.Builder().
		Delete(transactionsTable).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao remover transação: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}

	return affected > 0, nil
}

func (r *transactionRepository) DeleteByOwner(ctx context.Context, ownerID string) (int64, error) {
	query, args, err := r.conn.Builder().
		Delete(transactionsTable).
		Where(squirrel.Eq{"owner_id": ownerID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover transações: %w", err)
	}

	return result.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row scanner) (*domain.Transaction, error) {
	t := &domain.Transaction{}
	var deviceType string

	err := row.Scan(
		&t.ID,
		&t.OwnerID,
		&t.Date,
		&deviceType,
		&t.BoughtAppleCare,
		&t.IsAppleCareStandalone,
		&t.GotLead,
		&t.Connected,
		&t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.DeviceType = domain.DeviceType(deviceType)

	if t.Date.IsZero() {
		return nil, fmt.Errorf("transação %s: %w", t.ID, domain.ErrMissingDate)
	}

	return t, nil
}
