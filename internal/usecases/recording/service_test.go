package recording

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/metrics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/metrics-api/internal/calendar"
	"github.com/vfg2006/metrics-api/internal/domain"
	"github.com/vfg2006/metrics-api/pkg/log"
	"go.uber.org/mock/gomock"
)

var refNow = time.Date(2024, 1, 18, 14, 0, 0, 0, time.UTC)

func newService(t *testing.T) (Recorder, *mocks.MockTransactionRepository) {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTransactionRepository(ctrl)
	cal := calendar.New(
		calendar.WithLocation(time.UTC),
		calendar.WithClock(func() time.Time { return refNow }),
	)

	return NewService(cal, repo), repo
}

func TestService_Record(t *testing.T) {
	supplied := time.Date(2024, 1, 17, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		ownerID  string
		input    domain.NewTransaction
		setup    func(repo *mocks.MockTransactionRepository)
		validate func(t *testing.T, tx *domain.Transaction, err error)
	}{
		{
			name:    "usa o relógio quando a data não é informada",
			ownerID: "owner-1",
			input:   domain.NewTransaction{DeviceType: domain.DeviceIPhone, Connected: true},
			setup: func(repo *mocks.MockTransactionRepository) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, tx *domain.Transaction, err error) {
				require.NoError(t, err)
				assert.NotEmpty(t, tx.ID)
				assert.Equal(t, "owner-1", tx.OwnerID)
				assert.True(t, tx.Date.Equal(refNow))
				assert.True(t, tx.CreatedAt.Equal(refNow))
				assert.True(t, tx.Connected)
			},
		},
		{
			name:    "mantém a data informada",
			ownerID: "owner-1",
			input:   domain.NewTransaction{Date: &supplied, DeviceType: domain.DeviceMac, BoughtAppleCare: true},
			setup: func(repo *mocks.MockTransactionRepository) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, tx *domain.Transaction, err error) {
				require.NoError(t, err)
				assert.True(t, tx.Date.Equal(supplied))
				assert.True(t, tx.BoughtAppleCare)
			},
		},
		{
			name:    "avulso sem AppleCare vira falso",
			ownerID: "owner-1",
			input:   domain.NewTransaction{DeviceType: domain.DeviceIPad, IsAppleCareStandalone: true},
			setup: func(repo *mocks.MockTransactionRepository) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tx *domain.Transaction) error {
						assert.False(t, tx.IsAppleCareStandalone)
						return nil
					})
			},
			validate: func(t *testing.T, tx *domain.Transaction, err error) {
				require.NoError(t, err)
				assert.False(t, tx.IsAppleCareStandalone)
			},
		},
		{
			name:    "tipo de aparelho inválido",
			ownerID: "owner-1",
			input:   domain.NewTransaction{DeviceType: "Vision Pro"},
			setup:   func(repo *mocks.MockTransactionRepository) {},
			validate: func(t *testing.T, tx *domain.Transaction, err error) {
				assert.ErrorIs(t, err, domain.ErrInvalidDeviceType)
				assert.Nil(t, tx)
			},
		},
		{
			name:    "dono ausente",
			ownerID: "",
			input:   domain.NewTransaction{DeviceType: domain.DeviceIPhone},
			setup:   func(repo *mocks.MockTransactionRepository) {},
			validate: func(t *testing.T, tx *domain.Transaction, err error) {
				assert.ErrorIs(t, err, ErrOwnerRequired)
			},
		},
		{
			name:    "erro do repositório",
			ownerID: "owner-1",
			input:   domain.NewTransaction{DeviceType: domain.DeviceNone, GotLead: true},
			setup: func(repo *mocks.MockTransactionRepository) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("conexão perdida"))
			},
			validate: func(t *testing.T, tx *domain.Transaction, err error) {
				assert.ErrorContains(t, err, "conexão perdida")
				assert.Nil(t, tx)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)
			tt.setup(repo)

			tx, err := svc.Record(context.Background(), tt.ownerID, tt.input)

			tt.validate(t, tx, err)
		})
	}
}

func TestService_Get(t *testing.T) {
	svc, repo := newService(t)
	ctx := context.Background()

	repo.EXPECT().GetByID(ctx, "owner-1", "tx-1").Return(&domain.Transaction{ID: "tx-1"}, nil)
	repo.EXPECT().GetByID(ctx, "owner-1", "tx-2").Return(nil, nil)

	tx, err := svc.Get(ctx, "owner-1", "tx-1")
	require.NoError(t, err)
	assert.Equal(t, "tx-1", tx.ID)

	_, err = svc.Get(ctx, "owner-1", "tx-2")
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestService_List(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("repassa o filtro", func(t *testing.T) {
		svc, repo := newService(t)
		filter := domain.TransactionFilter{From: &from, To: &to}

		repo.EXPECT().ListByOwner(gomock.Any(), "owner-1", filter).
			Return([]domain.Transaction{{ID: "tx-1"}, {ID: "tx-2"}}, nil)

		transactions, err := svc.List(context.Background(), "owner-1", filter)

		require.NoError(t, err)
		assert.Len(t, transactions, 2)
	})

	t.Run("período invertido", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.List(context.Background(), "owner-1", domain.TransactionFilter{From: &to, To: &from})

		assert.ErrorIs(t, err, ErrInvalidPeriod)
	})
}

func TestService_Delete(t *testing.T) {
	svc, repo := newService(t)
	ctx := context.Background()

	repo.EXPECT().Delete(ctx, "owner-1", "tx-1").Return(true, nil)
	repo.EXPECT().Delete(ctx, "owner-1", "tx-9").Return(false, nil)

	assert.NoError(t, svc.Delete(ctx, "owner-1", "tx-1"))
	assert.ErrorIs(t, svc.Delete(ctx, "owner-1", "tx-9"), ErrTransactionNotFound)
}

func TestService_DeleteAll(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().DeleteByOwner(gomock.Any(), "owner-1").Return(int64(3), nil)

	removed, err := svc.DeleteAll(context.Background(), "owner-1")

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}
