// internal/sync/worker.go
package sync

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"

	"github.com/Pranav212nair/xeno/internal/metrics"
	"github.com/Pranav212nair/xeno/internal/model"
	"github.com/Pranav212nair/xeno/internal/storage"
)

// Worker drains the sync-job queue and transitions each log to completed.
// Nothing is fetched from the commerce platform; the worker exists so queued
// jobs do not pile up as permanently in_progress rows.
type Worker struct {
	storage *storage.Storage
	client  *AMQPClient
	stopCh  chan struct{}
	doneCh  chan struct{}
}

func NewWorker(s *storage.Storage, client *AMQPClient) *Worker {
	return &Worker{
		storage: s,
		client:  client,
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

func (w *Worker) Start() error {
	msgs, err := w.client.channel.Consume(
		jobQueue,
		"sync-worker",
		false, // manual ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	go w.consumeLoop(msgs)
	logrus.Info("sync worker started")
	return nil
}

func (w *Worker) consumeLoop(msgs <-chan amqp.Delivery) {
	defer close(w.doneCh)

	for {
		select {
		case <-w.stopCh:
			_ = w.client.channel.Cancel("sync-worker", false)
			return
		case msg, ok := <-msgs:
			if !ok {
				logrus.Warn("sync worker: delivery channel closed")
				return
			}
			if err := w.handle(msg); err != nil {
				logrus.WithField("error", err).Error("sync job failed")
				_ = msg.Reject(false) // send to DLQ
				metrics.SyncJobs.WithLabelValues("amqp", "failed").Inc()
				continue
			}
			_ = msg.Ack(false)
			metrics.SyncJobs.WithLabelValues("amqp", "completed").Inc()
		}
	}
}

func (w *Worker) handle(msg amqp.Delivery) error {
	var job Job
	if err := json.Unmarshal(msg.Body, &job); err != nil {
		return err
	}

	// Stub transition: mark the log done with zero records processed.
	err := w.storage.UpdateSyncLogStatus(context.Background(), job.TenantID, job.SyncLogID, model.SyncStatusCompleted, 0)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"tenant_id":   job.TenantID,
		"sync_log_id": job.SyncLogID,
	}).Info("sync job completed")
	return nil
}

// Stop signals the worker and waits for the loop to exit.
func (w *Worker) Stop() {
	close(w.stopCh)
	<-w.doneCh
}
