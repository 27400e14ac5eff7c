package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/metrics-api/internal/config"
	"github.com/vfg2006/metrics-api/internal/domain"
)

func TestShareRepository_AddParticipantIsIdempotent(t *testing.T) {
	conn, mock := newMockConn(t, config.DriverPostgres)
	accepted := time.Date(2024, 1, 18, 9, 0, 0, 0, time.UTC)

	mock.ExpectExec(`INSERT INTO share_participants .* ON CONFLICT \(code, viewer_id\) DO NOTHING`).
		WithArgs("ABCD1234", "viewer-1", accepted).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewShareRepository(conn).AddParticipant(context.Background(), domain.ShareParticipant{
		Code:       "ABCD1234",
		ViewerID:   "viewer-1",
		AcceptedAt: accepted,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShareRepository_Delete(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr bool
	}{
		{
			name: "remove participantes e compartilhamento na mesma transação",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`DELETE FROM share_participants WHERE code = \$1`).
					WithArgs("ABCD1234").
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectExec(`DELETE FROM shares WHERE code = \$1`).
					WithArgs("ABCD1234").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "rollback quando a remoção falha",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`DELETE FROM share_participants`).
					WillReturnError(errors.New("lock timeout"))
				mock.ExpectRollback()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConn(t, config.DriverPostgres)
			tt.setup(mock)

			err := NewShareRepository(conn).Delete(context.Background(), "ABCD1234")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestShareRepository_ListAcceptedByViewer(t *testing.T) {
	conn, mock := newMockConn(t, config.DriverSQLite)
	created := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM shares s JOIN share_participants sp ON sp.code = s.code WHERE sp.viewer_id = \?`).
		WithArgs("viewer-1").
		WillReturnRows(sqlmock.NewRows([]string{"code", "owner_id", "owner_name", "created_at"}).
			AddRow("AAAA1111", "owner-1", "Ana", created).
			AddRow("BBBB2222", "owner-2", "", created))

	shares, err := NewShareRepository(conn).ListAcceptedByViewer(context.Background(), "viewer-1")

	require.NoError(t, err)
	require.Len(t, shares, 2)
	assert.Equal(t, "Ana", shares[0].DisplayName())
	assert.Equal(t, domain.NameNotProvided, shares[1].DisplayName())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShareRepository_CreateDuplicateCode(t *testing.T) {
	conn, mock := newMockConn(t, config.DriverPostgres)

	mock.ExpectExec(`INSERT INTO shares`).
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

	err := NewShareRepository(conn).Create(context.Background(), domain.Share{
		Code:      "ABCD1234",
		OwnerID:   "owner-1",
		CreatedAt: time.Date(2024, 1, 18, 9, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}
