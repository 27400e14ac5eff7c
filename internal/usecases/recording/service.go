package recording

import (
	"context"
	"fmt"

	"github.com/vfg2006/metrics-api/infrastructure/repository"
	"github.com/vfg2006/metrics-api/internal/calendar"
	"github.com/vfg2006/metrics-api/internal/domain"
	"github.com/vfg2006/metrics-api/pkg/log"
	"github.com/vfg2006/metrics-api/pkg/metrics"
	"github.com/vfg2006/metrics-api/pkg/utils"
)

// Recorder registra e consulta as transações de um vendedor
type Recorder interface {
	Record(ctx context.Context, ownerID string, input domain.NewTransaction) (*domain.Transaction, error)
	Get(ctx context.Context, ownerID, id string) (*domain.Transaction, error)
	List(ctx context.Context, ownerID string, filter domain.TransactionFilter) ([]domain.Transaction, error)
	Delete(ctx context.Context, ownerID, id string) error
	DeleteAll(ctx context.Context, ownerID string) (int64, error)
}

type Service struct {
	cal                   calendar.Calendar
	transactionRepository repository.TransactionRepository
}

func NewService(cal calendar.Calendar, transactionRepo repository.TransactionRepository) Recorder {
	return &Service{
		cal:                   cal,
		transactionRepository: transactionRepo,
	}
}

func (s *Service) Record(ctx context.Context, ownerID string, input domain.NewTransaction) (*domain.Transaction, error) {
	if ownerID == "" {
		return nil, ErrOwnerRequired
	}

	now := s.cal.Now()

	transaction := &domain.Transaction{
		ID:                    utils.GenerateID(),
		OwnerID:               ownerID,
		Date:                  now,
		DeviceType:            input.DeviceType,
		BoughtAppleCare:       input.BoughtAppleCare,
		IsAppleCareStandalone: input.BoughtAppleCare && input.IsAppleCareStandalone,
		GotLead:               input.GotLead,
		Connected:             input.Connected,
		CreatedAt:             now,
	}

	if input.Date != nil {
		transaction.Date = input.Date.In(s.cal.Location())
	}

	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	if err := s.transactionRepository.Create(ctx, transaction); err != nil {
		log.ForOperation(ctx, "record-transaction").WithError(err).Error("Erro ao salvar transação")
		return nil, fmt.Errorf("record-transaction: %w", err)
	}

	metrics.RecordTransaction(string(transaction.DeviceType))

	log.WithOwner(ctx, ownerID).WithFields(log.Fields{
		"operation":   "record-transaction",
		"device_type": transaction.DeviceType,
	}).Debug("Transação registrada")

	return transaction, nil
}

func (s *Service) Get(ctx context.Context, ownerID, id string) (*domain.Transaction, error) {
	transaction, err := s.transactionRepository.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("get-transaction: %w", err)
	}

	if transaction == nil {
		return nil, ErrTransactionNotFound
	}

	return transaction, nil
}

func (s *Service) List(ctx context.Context, ownerID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return nil, ErrInvalidPeriod
	}

	transactions, err := s.transactionRepository.ListByOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("list-transactions: %w", err)
	}

	return transactions, nil
}

func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	deleted, err := s.transactionRepository.Delete(ctx, ownerID, id)
	if err != nil {
		return fmt.Errorf("delete-transaction: %w", err)
	}

	if !deleted {
		return ErrTransactionNotFound
	}

	return nil
}

// DeleteAll remove todas as transações do vendedor e devolve quantas foram removidas
func (s *Service) DeleteAll(ctx context.Context, ownerID string) (int64, error) {
	removed, err := s.transactionRepository.DeleteByOwner(ctx, ownerID)
	if err != nil {
		return 0, fmt.Errorf("delete-all-transactions: %w", err)
	}

	log.WithOwner(ctx, ownerID).WithFields(log.Fields{
		"operation": "delete-all-transactions",
		"removed":   removed,
	}).Info("Transações removidas")

	return removed, nil
}
