// internal/sync/amqp.go
package sync

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/streadway/amqp"

	"github.com/Pranav212nair/xeno/internal/metrics"
	"github.com/Pranav212nair/xeno/internal/storage"
)

const (
	jobQueue = "shopify_sync_jobs"
	jobDLQ   = "shopify_sync_jobs_dlq"
)

// Job is the message published per sync request.
type Job struct {
	SyncLogID    uuid.UUID `json:"sync_log_id"`
	TenantID     uuid.UUID `json:"tenant_id"`
	ResourceType string    `json:"resource_type"`
}

// AMQPClient wraps the RabbitMQ connection and the sync-job queue topology.
type AMQPClient struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewAMQPClient(url string) (*AMQPClient, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}

	c := &AMQPClient{conn: conn, channel: ch}
	if err := c.declareQueues(); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

func (c *AMQPClient) declareQueues() error {
	_, err := c.channel.QueueDeclare(jobDLQ, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("declare DLQ: %w", err)
	}

	args := amqp.Table{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": jobDLQ,
	}
	_, err = c.channel.QueueDeclare(jobQueue, true, false, false, false, args)
	if err != nil {
		return fmt.Errorf("declare job queue: %w", err)
	}
	return nil
}

func (c *AMQPClient) publish(job Job) error {
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal sync job: %w", err)
	}
	err = c.channel.Publish(
		"",       // default exchange
		jobQueue, // routing key (queue name)
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish sync job: %w", err)
	}
	return nil
}

func (c *AMQPClient) Close() error {
	if err := c.channel.Close(); err != nil {
		return err
	}
	return c.conn.Close()
}

// AMQPProvider records the sync request and hands it to the job queue. The
// worker drains the queue; no external commerce API is called anywhere.
type AMQPProvider struct {
	Storage *storage.Storage
	Client  *AMQPClient
}

func (p *AMQPProvider) Name() string { return "amqp" }

func (p *AMQPProvider) Start(ctx context.Context, tenantID uuid.UUID, resourceType string) (uuid.UUID, error) {
	logID, err := createLog(ctx, p.Storage, tenantID, resourceType)
	if err != nil {
		metrics.SyncJobs.WithLabelValues(p.Name(), "error").Inc()
		return uuid.Nil, err
	}

	job := Job{SyncLogID: logID, TenantID: tenantID, ResourceType: resourceType}
	if err := p.Client.publish(job); err != nil {
		metrics.SyncJobs.WithLabelValues(p.Name(), "error").Inc()
		return uuid.Nil, err
	}

	metrics.SyncJobs.WithLabelValues(p.Name(), "started").Inc()
	return logID, nil
}
