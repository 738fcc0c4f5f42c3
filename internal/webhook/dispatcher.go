package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"widget-admin-backend/internal/database/models"
	"widget-admin-backend/internal/logger"
	"widget-admin-backend/internal/metrics"
	"widget-admin-backend/internal/repository"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
)

var (
	// ErrQueueFull is returned when a delivery cannot be queued without blocking
	ErrQueueFull = errors.New("webhook queue is full")
	// ErrStopped is returned when the dispatcher no longer accepts work
	ErrStopped = errors.New("webhook dispatcher is stopped")
	// ErrWebhookDisabled marks deliveries for deactivated webhooks
	ErrWebhookDisabled = errors.New("webhook is disabled")
)

// Envelope is the JSON body posted to webhook endpoints
type Envelope struct {
	ID             uuid.UUID   `json:"id"`
	Event          string      `json:"event"`
	OrganizationID uuid.UUID   `json:"organization_id"`
	CreatedAt      time.Time   `json:"created_at"`
	Data           interface{} `json:"data"`
}

// Dispatcher fans events out to subscribed webhooks and delivers them on a worker pool
type Dispatcher struct {
	hooks      repository.WebhookRepositoryInterface
	deliveries repository.WebhookDeliveryRepositoryInterface
	opts       Options
	log        *logger.Logger
	m          *metrics.Collectors

	queue chan uuid.UUID
	wg    sync.WaitGroup

	mu      sync.RWMutex
	stopped bool
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewDispatcher creates a dispatcher; call Start to run workers
func NewDispatcher(hooks repository.WebhookRepositoryInterface, deliveries repository.WebhookDeliveryRepositoryInterface, opts Options) *Dispatcher {
	opts.setDefaults()
	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		hooks:      hooks,
		deliveries: deliveries,
		opts:       opts,
		log:        logger.Named("webhook"),
		m:          metrics.Get(),
		queue:      make(chan uuid.UUID, opts.QueueSize),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Start launches the worker pool
func (d *Dispatcher) Start() {
	for i := 0; i < d.opts.Workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
}

// Shutdown stops accepting work and waits for queued deliveries. In-flight
// retries are cancelled when ctx expires.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return nil
	}
	d.stopped = true
	close(d.queue)
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.cancel()
		return nil
	case <-ctx.Done():
		d.cancel()
		<-done
		return ctx.Err()
	}
}

// Publish records one delivery per subscribed webhook and queues them.
// It does no network I/O; failures are logged.
func (d *Dispatcher) Publish(orgID uuid.UUID, event string, data interface{}) {
	log := d.log.WithFields(map[string]interface{}{
		"organization_id": orgID,
		"event":           event,
	})

	hooks, err := d.hooks.GetSubscribed(orgID, event)
	if err != nil {
		log.WithError(err).Error("failed to load subscribed webhooks")
		return
	}

	for i := range hooks {
		delivery, err := d.CreateDelivery(&hooks[i], event, data)
		if err != nil {
			log.WithError(err).WithField("webhook_id", hooks[i].ID).Error("failed to record delivery")
			continue
		}
		if err := d.Enqueue(delivery.ID); err != nil {
			log.WithError(err).WithField("delivery_id", delivery.ID).Warn("delivery left pending")
		}
	}
}

// CreateDelivery stores a pending delivery whose payload is the exact body that will be signed
func (d *Dispatcher) CreateDelivery(hook *models.Webhook, event string, data interface{}) (*models.WebhookDelivery, error) {
	delivery := &models.WebhookDelivery{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		WebhookID:      hook.ID,
		OrganizationID: hook.OrganizationID,
		Event:          event,
		Status:         models.DeliveryStatusPending,
	}
	body, err := json.Marshal(Envelope{
		ID:             delivery.ID,
		Event:          event,
		OrganizationID: hook.OrganizationID,
		CreatedAt:      d.opts.Now().UTC(),
		Data:           data,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	delivery.Payload = body

	if err := d.deliveries.Create(delivery); err != nil {
		return nil, err
	}
	return delivery, nil
}

// Enqueue hands a stored delivery to the worker pool without blocking
func (d *Dispatcher) Enqueue(deliveryID uuid.UUID) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		return ErrStopped
	}
	select {
	case d.queue <- deliveryID:
		d.m.WebhookQueueDepth.Inc()
		return nil
	default:
		return ErrQueueFull
	}
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for id := range d.queue {
		d.m.WebhookQueueDepth.Dec()
		delivery, err := d.deliveries.GetByID(id)
		if err != nil {
			d.log.WithError(err).WithField("delivery_id", id).Error("failed to load delivery")
			continue
		}
		_ = d.Deliver(d.ctx, delivery)
	}
}

// Deliver sends one delivery, retrying with exponential backoff, and records
// the outcome on the delivery and its webhook.
func (d *Dispatcher) Deliver(ctx context.Context, delivery *models.WebhookDelivery) error {
	log := d.log.WithFields(map[string]interface{}{
		"delivery_id": delivery.ID,
		"webhook_id":  delivery.WebhookID,
		"event":       delivery.Event,
	})

	hook, err := d.hooks.GetByID(delivery.WebhookID)
	if err != nil {
		d.finish(delivery, nil, fmt.Errorf("failed to load webhook: %w", err))
		return err
	}
	if !hook.IsActive {
		d.finish(delivery, nil, ErrWebhookDisabled)
		return ErrWebhookDisabled
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = d.opts.InitialInterval
	b.MaxInterval = d.opts.MaxInterval

	_, err = backoff.Retry(ctx, func() (int, error) {
		return d.attempt(ctx, hook, delivery)
	},
		backoff.WithBackOff(b),
		backoff.WithMaxTries(uint(d.opts.MaxAttempts)),
		backoff.WithNotify(func(err error, wait time.Duration) {
			next := d.opts.Now().Add(wait)
			delivery.NextAttemptAt = &next
			if uerr := d.deliveries.Update(delivery); uerr != nil {
				log.WithError(uerr).Warn("failed to record attempt")
			}
			log.WithError(err).WithField("retry_in", wait.String()).Info("delivery attempt failed")
		}),
	)

	if err != nil && ctx.Err() != nil {
		// Interrupted by shutdown; leave it pending for redelivery.
		delivery.NextAttemptAt = nil
		if uerr := d.deliveries.Update(delivery); uerr != nil {
			log.WithError(uerr).Warn("failed to record interrupted delivery")
		}
		return err
	}

	d.finish(delivery, hook, err)
	if err != nil {
		log.WithError(err).WithField("attempts", delivery.Attempts).Warn("delivery failed")
	}
	return err
}

func (d *Dispatcher) attempt(ctx context.Context, hook *models.Webhook, delivery *models.WebhookDelivery) (int, error) {
	delivery.Attempts++
	start := time.Now()

	reqCtx, cancel := context.WithTimeout(ctx, d.opts.Timeout)
	defer cancel()

	ts := d.opts.Now().Unix()
	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, hook.URL, bytes.NewReader(delivery.Payload))
	if err != nil {
		delivery.Error = err.Error()
		return 0, backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", d.opts.UserAgent)
	req.Header.Set(HeaderEvent, delivery.Event)
	req.Header.Set(HeaderDelivery, delivery.ID.String())
	req.Header.Set(HeaderTimestamp, strconv.FormatInt(ts, 10))
	req.Header.Set(HeaderSignature, Sign(hook.Secret, ts, delivery.Payload))

	resp, err := d.opts.HTTPClient.Do(req)
	if err != nil {
		d.m.WebhookAttemptLatency.WithLabelValues("error").Observe(time.Since(start).Seconds())
		delivery.ResponseStatus = 0
		delivery.ResponseBody = ""
		delivery.Error = err.Error()
		return 0, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, int64(d.opts.ResponseBodyMaxLen)+4))
	delivery.ResponseStatus = resp.StatusCode
	delivery.ResponseBody = truncate(string(body), d.opts.ResponseBodyMaxLen)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		d.m.WebhookAttemptLatency.WithLabelValues("failure").Observe(time.Since(start).Seconds())
		err := fmt.Errorf("endpoint responded with status %d", resp.StatusCode)
		delivery.Error = err.Error()
		return resp.StatusCode, err
	}

	d.m.WebhookAttemptLatency.WithLabelValues("success").Observe(time.Since(start).Seconds())
	delivery.Error = ""
	return resp.StatusCode, nil
}

// finish writes the terminal state. hook is nil when no HTTP attempt was made.
func (d *Dispatcher) finish(delivery *models.WebhookDelivery, hook *models.Webhook, err error) {
	now := d.opts.Now()
	delivery.NextAttemptAt = nil
	log := d.log.WithField("delivery_id", delivery.ID)

	if err == nil {
		delivery.Status = models.DeliveryStatusSucceeded
		delivery.DeliveredAt = &now
		d.m.WebhookDeliveries.WithLabelValues(delivery.Event, "succeeded").Inc()
		if rerr := d.hooks.RecordSuccess(delivery.WebhookID, now); rerr != nil {
			log.WithError(rerr).Warn("failed to reset webhook failure count")
		}
	} else {
		delivery.Status = models.DeliveryStatusFailed
		if delivery.Error == "" {
			delivery.Error = err.Error()
		}
		d.m.WebhookDeliveries.WithLabelValues(delivery.Event, "failed").Inc()
		if hook != nil {
			disabled, rerr := d.hooks.RecordFailure(delivery.WebhookID, now, d.opts.AutoDisableThreshold)
			if rerr != nil {
				log.WithError(rerr).Warn("failed to record webhook failure")
			}
			if disabled {
				d.m.WebhooksDisabled.Inc()
				log.WithField("webhook_id", delivery.WebhookID).Warn("webhook disabled after consecutive failures")
			}
		}
	}

	if uerr := d.deliveries.Update(delivery); uerr != nil {
		log.WithError(uerr).Error("failed to save delivery result")
	}
}
