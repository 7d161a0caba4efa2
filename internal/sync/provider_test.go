package sync

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Pranav212nair/xeno/internal/model"
	"github.com/Pranav212nair/xeno/internal/storage"
)

func TestNoOpProviderRecordsSyncLog(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tenantID := uuid.New()
	mock.ExpectExec("INSERT INTO sync_logs").
		WithArgs(sqlmock.AnyArg(), tenantID, "orders", model.SyncStatusInProgress, 0, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	p := &NoOpProvider{Storage: &storage.Storage{DB: db}}
	logID, err := p.Start(context.Background(), tenantID, "orders")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, logID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoOpProviderDefaultsResourceType(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tenantID := uuid.New()
	mock.ExpectExec("INSERT INTO sync_logs").
		WithArgs(sqlmock.AnyArg(), tenantID, "all", model.SyncStatusInProgress, 0, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	p := &NoOpProvider{Storage: &storage.Storage{DB: db}}
	_, err = p.Start(context.Background(), tenantID, "")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
