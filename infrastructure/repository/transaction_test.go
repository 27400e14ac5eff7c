package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/metrics-api/infrastructure/database"
	"github.com/vfg2006/metrics-api/internal/config"
	"github.com/vfg2006/metrics-api/internal/domain"
)

func newMockConn(t *testing.T, driver string) (*database.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return database.NewFromDB(db, driver), mock
}

func TestTransactionRepository_Create(t *testing.T) {
	conn, mock := newMockConn(t, config.DriverPostgres)
	repo := NewTransactionRepository(conn)

	date := time.Date(2024, 1, 18, 14, 0, 0, 0, time.UTC)
	created := date.Add(time.Minute)

	mock.ExpectExec(`INSERT INTO transactions \(id,owner_id,occurred_at,.*\) VALUES \(\$1,\$2,\$3`).
		WithArgs("tx-1", "owner-1", date, "iPhone", true, false, false, true, created).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &domain.Transaction{
		ID:              "tx-1",
		OwnerID:         "owner-1",
		Date:            date,
		DeviceType:      domain.DeviceIPhone,
		BoughtAppleCare: true,
		Connected:       true,
		CreatedAt:       created,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_ListByOwner(t *testing.T) {
	columns := []string{"id", "owner_id", "occurred_at", "device_type", "bought_applecare", "applecare_standalone", "got_lead", "connected", "created_at"}
	date := time.Date(2024, 1, 18, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		driver   string
		filter   domain.TransactionFilter
		setup    func(mock sqlmock.Sqlmock)
		validate func(t *testing.T, result []domain.Transaction, err error)
	}{
		{
			name:   "postgres sem filtro",
			driver: config.DriverPostgres,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .* FROM transactions WHERE owner_id = \$1 ORDER BY occurred_at ASC`).
					WithArgs("owner-1").
					WillReturnRows(sqlmock.NewRows(columns).
						AddRow("tx-1", "owner-1", date, "iPhone", true, false, true, false, date).
						AddRow("tx-2", "owner-1", date, "No Device", false, false, true, false, date))
			},
			validate: func(t *testing.T, result []domain.Transaction, err error) {
				require.NoError(t, err)
				require.Len(t, result, 2)
				assert.Equal(t, domain.DeviceIPhone, result[0].DeviceType)
				assert.True(t, result[0].BoughtAppleCare)
				assert.True(t, result[0].GotLead)
				assert.Equal(t, domain.DeviceNone, result[1].DeviceType)
			},
		},
		{
			name:   "sqlite com intervalo usa placeholder ?",
			driver: config.DriverSQLite,
			filter: domain.TransactionFilter{
				From: timePtr(date.AddDate(0, 0, -1)),
				To:   timePtr(date),
			},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM transactions WHERE owner_id = \? AND occurred_at >= \? AND occurred_at < \?`).
					WithArgs("owner-1", date.AddDate(0, 0, -1), date).
					WillReturnRows(sqlmock.NewRows(columns))
			},
			validate: func(t *testing.T, result []domain.Transaction, err error) {
				require.NoError(t, err)
				assert.Empty(t, result)
				assert.NotNil(t, result)
			},
		},
		{
			name:   "data ausente é rejeitada",
			driver: config.DriverPostgres,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM transactions`).
					WillReturnRows(sqlmock.NewRows(columns).
						AddRow("tx-1", "owner-1", time.Time{}, "iPhone", false, false, false, false, date))
			},
			validate: func(t *testing.T, result []domain.Transaction, err error) {
				assert.ErrorIs(t, err, domain.ErrMissingDate)
			},
		},
		{
			name:   "erro do banco é propagado",
			driver: config.DriverPostgres,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM transactions`).WillReturnError(errors.New("connection reset"))
			},
			validate: func(t *testing.T, result []domain.Transaction, err error) {
				assert.ErrorContains(t, err, "connection reset")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConn(t, tt.driver)
			tt.setup(mock)

			result, err := NewTransactionRepository(conn).ListByOwner(context.Background(), "owner-1", tt.filter)
			tt.validate(t, result, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTransactionRepository_GetByID_NotFound(t *testing.T) {
	conn, mock := newMockConn(t, config.DriverPostgres)

	mock.ExpectQuery(`FROM transactions WHERE id = \$1 AND owner_id = \$2`).
		WithArgs("tx-404", "owner-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	result, err := NewTransactionRepository(conn).GetByID(context.Background(), "owner-1", "tx-404")

	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_Delete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		expected bool
	}{
		{name: "removida", affected: 1, expected: true},
		{name: "inexistente", affected: 0, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConn(t, config.DriverPostgres)

			mock.ExpectExec(`DELETE FROM transactions WHERE id = \$1 AND owner_id = \$2`).
				WithArgs("tx-1", "owner-1").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			deleted, err := NewTransactionRepository(conn).Delete(context.Background(), "owner-1", "tx-1")

			require.NoError(t, err)
			assert.Equal(t, tt.expected, deleted)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTransactionRepository_DeleteByOwnerAndListOwners(t *testing.T) {
	conn, mock := newMockConn(t, config.DriverPostgres)
	repo := NewTransactionRepository(conn)

	mock.ExpectExec(`DELETE FROM transactions WHERE owner_id = \$1`).
		WithArgs("owner-1").
		WillReturnResult(sqlmock.NewResult(0, 7))

	mock.ExpectQuery(`SELECT DISTINCT owner_id FROM transactions ORDER BY owner_id`).
		WillReturnRows(sqlmock.NewRows([]string{"owner_id"}).AddRow("owner-2").AddRow("owner-3"))

	removed, err := repo.DeleteByOwner(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), removed)

	owners, err := repo.ListOwners(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"owner-2", "owner-3"}, owners)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func timePtr(t time.Time) *time.Time {
	return &t
}
