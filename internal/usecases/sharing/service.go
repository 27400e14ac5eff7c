package sharing

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/vfg2006/metrics-api/infrastructure/repository"
	"github.com/vfg2006/metrics-api/internal/aggregation"
	"github.com/vfg2006/metrics-api/internal/calendar"
	"github.com/vfg2006/metrics-api/internal/domain"
	"github.com/vfg2006/metrics-api/internal/usecases/reporting"
	"github.com/vfg2006/metrics-api/pkg/log"
	"github.com/vfg2006/metrics-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

// Sharer gerencia os convites de compartilhamento entre vendedores
type Sharer interface {
	CreateInvite(ctx context.Context, ownerID, ownerName string) (*domain.Share, error)
	ListInvites(ctx context.Context, ownerID string) ([]domain.Share, error)
	Accept(ctx context.Context, code, viewerID string) (*domain.Share, error)
	Revoke(ctx context.Context, ownerID, code string) error
	SharedWithYou(ctx context.Context, viewerID string) ([]domain.SharedSummary, error)
}

type Options struct {
	CodeLength     int
	MaxConcurrency int
}

type Service struct {
	cal                   calendar.Calendar
	opts                  Options
	shareRepository       repository.ShareRepository
	transactionRepository repository.TransactionRepository
}

func NewService(
	cal calendar.Calendar,
	opts Options,
	shareRepo repository.ShareRepository,
	transactionRepo repository.TransactionRepository,
) Sharer {
	if opts.MaxConcurrency < 1 {
		opts.MaxConcurrency = 1
	}

	return &Service{
		cal:                   cal,
		opts:                  opts,
		shareRepository:       shareRepo,
		transactionRepository: transactionRepo,
	}
}

// maxCodeAttempts limita as tentativas de gerar um código ainda não usado
const maxCodeAttempts = 3

func (s *Service) CreateInvite(ctx context.Context, ownerID, ownerName string) (*domain.Share, error) {
	for attempt := 1; ; attempt++ {
		code, err := utils.GenerateCode(s.opts.CodeLength)
		if err != nil {
			return nil, fmt.Errorf("create-invite: erro ao gerar código: %w", err)
		}

		share := domain.Share{
			Code:      code,
			OwnerID:   ownerID,
			OwnerName: ownerName,
			CreatedAt: s.cal.Now().UTC(),
		}

		err = s.shareRepository.Create(ctx, share)
		if errors.Is(err, repository.ErrDuplicateKey) && attempt < maxCodeAttempts {
			log.WithOwner(ctx, ownerID).WithField("attempt", attempt).Warn("create-invite: código já usado, gerando outro")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("create-invite: %w", err)
		}

		log.WithOwner(ctx, ownerID).WithField("operation", "create-invite").Info("Convite de compartilhamento criado")

		return &share, nil
	}
}

func (s *Service) ListInvites(ctx context.Context, ownerID string) ([]domain.Share, error) {
	shares, err := s.shareRepository.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list-invites: %w", err)
	}
	return shares, nil
}

// Accept registra o vendedor como participante do convite. Aceitar de novo não altera nada.
func (s *Service) Accept(ctx context.Context, code, viewerID string) (*domain.Share, error) {
	share, err := s.shareRepository.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("accept-share: %w", err)
	}

	if share == nil {
		return nil, ErrShareNotFound
	}

	if share.OwnerID == viewerID {
		return nil, ErrSelfShare
	}

	err = s.shareRepository.AddParticipant(ctx, domain.ShareParticipant{
		Code:       code,
		ViewerID:   viewerID,
		AcceptedAt: s.cal.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("accept-share: %w", err)
	}

	return share, nil
}

func (s *Service) Revoke(ctx context.Context, ownerID, code string) error {
	share, err := s.shareRepository.GetByCode(ctx, code)
	if err != nil {
		return fmt.Errorf("revoke-share: %w", err)
	}

	if share == nil {
		return ErrShareNotFound
	}

	if share.OwnerID != ownerID {
		return ErrNotShareOwner
	}

	if err := s.shareRepository.Delete(ctx, code); err != nil {
		return fmt.Errorf("revoke-share: %w", err)
	}

	log.WithOwner(ctx, ownerID).WithField("operation", "revoke-share").Info("Compartilhamento revogado")

	return nil
}

// SharedWithYou calcula o resumo de hoje de cada vendedor que compartilhou com o visualizador.
// Os donos são processados em paralelo, limitados por MaxConcurrency.
func (s *Service) SharedWithYou(ctx context.Context, viewerID string) ([]domain.SharedSummary, error) {
	shares, err := s.shareRepository.ListAcceptedByViewer(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("shared-with-you: %w", err)
	}

	start := s.cal.StartOfDay(s.cal.Now())
	end := s.cal.AddDays(start, 1)

	summaries := make([]domain.SharedSummary, len(shares))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.MaxConcurrency)

	for i, share := range shares {
		g.Go(func() error {
			transactions, err := s.transactionRepository.ListByOwner(gctx, share.OwnerID, domain.TransactionFilter{From: &start, To: &end})
			if err != nil {
				return fmt.Errorf("dono %s: %w", share.OwnerID, err)
			}

			summaries[i] = domain.SharedSummary{
				Code:      share.Code,
				OwnerName: share.DisplayName(),
				Summary:   reporting.BuildTodaySummary(aggregation.New(s.cal, transactions), nil),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("shared-with-you: %w", err)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].OwnerName < summaries[j].OwnerName
	})

	return summaries, nil
}
