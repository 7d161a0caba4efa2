package sync

import (
	"encoding/json"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/streadway/amqp"
	"github.com/stretchr/testify/require"

	"github.com/Pranav212nair/xeno/internal/model"
	"github.com/Pranav212nair/xeno/internal/storage"
)

func TestWorkerHandleCompletesLog(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	job := Job{SyncLogID: uuid.New(), TenantID: uuid.New(), ResourceType: "all"}
	body, err := json.Marshal(job)
	require.NoError(t, err)

	mock.ExpectExec("UPDATE sync_logs").
		WithArgs(job.SyncLogID, job.TenantID, model.SyncStatusCompleted, 0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := NewWorker(&storage.Storage{DB: db}, nil)
	require.NoError(t, w.handle(amqp.Delivery{Body: body}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkerHandleRejectsBadPayload(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	w := NewWorker(&storage.Storage{DB: db}, nil)
	require.Error(t, w.handle(amqp.Delivery{Body: []byte("not json")}))
}

func TestWorkerHandleUnknownLog(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	job := Job{SyncLogID: uuid.New(), TenantID: uuid.New()}
	body, err := json.Marshal(job)
	require.NoError(t, err)

	mock.ExpectExec("UPDATE sync_logs").
		WillReturnResult(sqlmock.NewResult(0, 0))

	w := NewWorker(&storage.Storage{DB: db}, nil)
	require.ErrorIs(t, w.handle(amqp.Delivery{Body: body}), storage.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
