package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/metrics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/metrics-api/internal/calendar"
	"github.com/vfg2006/metrics-api/internal/config"
	"github.com/vfg2006/metrics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// Data de referência do teste: quinta-feira, 18 de janeiro
var refNow = time.Date(2024, 1, 18, 0, 5, 0, 0, time.UTC)

func newSyncService(t *testing.T, cfg config.DailySnapshotSync) (*DailySnapshotSyncService, *mocks.MockTransactionRepository, *mocks.MockDailySnapshotRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	transactions := mocks.NewMockTransactionRepository(ctrl)
	snapshots := mocks.NewMockDailySnapshotRepository(ctrl)
	cal := calendar.New(
		calendar.WithLocation(time.UTC),
		calendar.WithClock(func() time.Time { return refNow }),
	)

	return NewDailySnapshotSyncService(cal, cfg, transactions, snapshots), transactions, snapshots
}

func TestDailySnapshotSyncService_Sync(t *testing.T) {
	day16 := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	day17 := time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		setup    func(transactions *mocks.MockTransactionRepository, snapshots *mocks.MockDailySnapshotRepository)
		validate func(t *testing.T, err error)
	}{
		{
			name: "grava um snapshot por dia para cada vendedor",
			setup: func(transactions *mocks.MockTransactionRepository, snapshots *mocks.MockDailySnapshotRepository) {
				transactions.EXPECT().ListOwners(gomock.Any()).Return([]string{"owner-1"}, nil)
				transactions.EXPECT().ListByOwner(gomock.Any(), "owner-1", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
						assert.True(t, filter.From.Equal(day16))
						assert.True(t, filter.To.Equal(day17.AddDate(0, 0, 1)))
						return []domain.Transaction{
							{ID: "1", Date: day17.Add(10 * time.Hour), DeviceType: domain.DeviceIPhone, BoughtAppleCare: true, Connected: true},
							{ID: "2", Date: day17.Add(11 * time.Hour), DeviceType: domain.DeviceIPhone},
							{ID: "3", Date: day16.Add(9 * time.Hour), DeviceType: domain.DeviceNone, GotLead: true},
						}, nil
					})
				snapshots.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, saved []domain.DailySnapshot) error {
						require.Len(t, saved, 2)
						assert.Equal(t, "2024-01-17", saved[0].Day)
						assert.Equal(t, 2, saved[0].Devices)
						assert.Equal(t, 50, saved[0].AppleCarePercent)
						assert.Equal(t, 50, saved[0].ConnectivityPercent)
						assert.Equal(t, "2024-01-16", saved[1].Day)
						assert.Equal(t, 1, saved[1].BusinessLeads)
						assert.Equal(t, 0, saved[1].Devices)
						return nil
					})
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "sem vendedores não grava nada",
			setup: func(transactions *mocks.MockTransactionRepository, snapshots *mocks.MockDailySnapshotRepository) {
				transactions.EXPECT().ListOwners(gomock.Any()).Return([]string{}, nil)
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "falha de um vendedor não impede os demais",
			setup: func(transactions *mocks.MockTransactionRepository, snapshots *mocks.MockDailySnapshotRepository) {
				transactions.EXPECT().ListOwners(gomock.Any()).Return([]string{"owner-1", "owner-2"}, nil)
				transactions.EXPECT().ListByOwner(gomock.Any(), "owner-1", gomock.Any()).Return(nil, errors.New("timeout"))
				transactions.EXPECT().ListByOwner(gomock.Any(), "owner-2", gomock.Any()).Return(nil, nil)
				snapshots.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Len(2)).Return(nil)
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "owner-1")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, transactions, snapshots := newSyncService(t, config.DailySnapshotSync{LookbackDays: 2, Timeout: time.Minute})
			tt.setup(transactions, snapshots)

			err := svc.Sync(context.Background())

			tt.validate(t, err)

			status := svc.GetStatus()
			assert.Equal(t, false, status["sync_running"])
			assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
		})
	}
}

func TestDailySnapshotSyncService_SyncRunning(t *testing.T) {
	svc, _, _ := newSyncService(t, config.DailySnapshotSync{LookbackDays: 1})
	svc.syncRunning = true

	assert.ErrorIs(t, svc.Sync(context.Background()), ErrSyncRunning)
	assert.False(t, svc.TriggerManualSync())
}

func TestDailySnapshotSyncService_StartDisabled(t *testing.T) {
	svc, _, _ := newSyncService(t, config.DailySnapshotSync{Enabled: false, CronSchedule: "5 0 * * *"})

	require.NoError(t, svc.Start(context.Background()))
	assert.Equal(t, false, svc.GetStatus()["sync_enabled"])
}

func TestDailySnapshotSyncService_StartAndManualTriggerConcurrently(t *testing.T) {
	svc, transactions, _ := newSyncService(t, config.DailySnapshotSync{
		Enabled:      true,
		CronSchedule: "0 3 * * *",
		LookbackDays: 1,
	})
	done := make(chan struct{}, 1)
	transactions.EXPECT().ListOwners(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]string, error) {
		done <- struct{}{}
		return nil, nil
	}).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	started := make(chan error, 1)
	go func() { started <- svc.Start(ctx) }()
	triggered := svc.TriggerManualSync()

	require.NoError(t, <-started)
	require.True(t, triggered)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sincronização manual não executou")
	}

	require.Eventually(t, func() bool {
		return svc.GetStatus()["sync_running"] == false
	}, 2*time.Second, 10*time.Millisecond)
}

func TestDailySnapshotSyncService_getDaysToProcess(t *testing.T) {
	svc, _, _ := newSyncService(t, config.DailySnapshotSync{LookbackDays: 0})

	days := svc.getDaysToProcess()

	require.Len(t, days, 1)
	assert.Equal(t, time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC), days[0])
}
