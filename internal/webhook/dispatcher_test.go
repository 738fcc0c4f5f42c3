package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"widget-admin-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type memoryHooks struct {
	mu    sync.Mutex
	hooks map[uuid.UUID]*models.Webhook
}

func (m *memoryHooks) Create(h *models.Webhook) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hooks[h.ID] = h
	return nil
}

func (m *memoryHooks) GetByID(id uuid.UUID) (*models.Webhook, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.hooks[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *h
	return &cp, nil
}

func (m *memoryHooks) GetByOrganizationID(orgID uuid.UUID) ([]models.Webhook, error) {
	return m.GetSubscribed(orgID, "*")
}

func (m *memoryHooks) GetSubscribed(orgID uuid.UUID, event string) ([]models.Webhook, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Webhook
	for _, h := range m.hooks {
		if h.OrganizationID == orgID && h.IsActive && h.Subscribes(event) {
			out = append(out, *h)
		}
	}
	return out, nil
}

func (m *memoryHooks) Update(h *models.Webhook) error { return m.Create(h) }

func (m *memoryHooks) Delete(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.hooks, id)
	return nil
}

func (m *memoryHooks) RecordSuccess(id uuid.UUID, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hooks[id].FailureCount = 0
	m.hooks[id].LastDeliveryAt = &at
	return nil
}

func (m *memoryHooks) RecordFailure(id uuid.UUID, at time.Time, threshold int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h := m.hooks[id]
	h.FailureCount++
	if threshold > 0 && h.IsActive && h.FailureCount >= threshold {
		h.IsActive = false
		h.DisabledAt = &at
		return true, nil
	}
	return false, nil
}

type memoryDeliveries struct {
	mu   sync.Mutex
	rows map[uuid.UUID]models.WebhookDelivery
}

func (m *memoryDeliveries) Create(d *models.WebhookDelivery) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[d.ID] = *d
	return nil
}

func (m *memoryDeliveries) GetByID(id uuid.UUID) (*models.WebhookDelivery, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &d, nil
}

func (m *memoryDeliveries) GetByWebhookID(uuid.UUID, int, int) ([]models.WebhookDelivery, int64, error) {
	return nil, 0, nil
}

func (m *memoryDeliveries) GetStale(models.DeliveryStatus, time.Time, int) ([]models.WebhookDelivery, error) {
	return nil, nil
}

func (m *memoryDeliveries) Update(d *models.WebhookDelivery) error { return m.Create(d) }

type DispatcherTestSuite struct {
	suite.Suite
	hooks      *memoryHooks
	deliveries *memoryDeliveries
	orgID      uuid.UUID
}

func (s *DispatcherTestSuite) SetupTest() {
	s.hooks = &memoryHooks{hooks: map[uuid.UUID]*models.Webhook{}}
	s.deliveries = &memoryDeliveries{rows: map[uuid.UUID]models.WebhookDelivery{}}
	s.orgID = uuid.New()
}

func (s *DispatcherTestSuite) newHook(url string, events ...string) *models.Webhook {
	raw, _ := json.Marshal(events)
	h := &models.Webhook{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: s.orgID,
		URL:            url,
		Secret:         "whsec_test",
		Events:         raw,
		IsActive:       true,
	}
	s.Require().NoError(s.hooks.Create(h))
	return h
}

func (s *DispatcherTestSuite) dispatcher(maxAttempts, threshold int) *Dispatcher {
	return NewDispatcher(s.hooks, s.deliveries, Options{
		Workers:              2,
		QueueSize:            10,
		Timeout:              2 * time.Second,
		MaxAttempts:          maxAttempts,
		AutoDisableThreshold: threshold,
		InitialInterval:      time.Millisecond,
		MaxInterval:          5 * time.Millisecond,
	})
}

func (s *DispatcherTestSuite) TestDeliverSignsExactBody() {
	var (
		gotBody []byte
		gotSig  string
		gotTS   string
		gotHdrs http.Header
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotSig = r.Header.Get(HeaderSignature)
		gotTS = r.Header.Get(HeaderTimestamp)
		gotHdrs = r.Header.Clone()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	hook := s.newHook(srv.URL, EventWidgetCreated)
	d := s.dispatcher(3, 0)

	delivery, err := d.CreateDelivery(hook, EventWidgetCreated, map[string]string{"name": "Website"})
	s.Require().NoError(err)
	s.Require().NoError(d.Deliver(context.Background(), delivery))

	ts, err := strconv.ParseInt(gotTS, 10, 64)
	s.Require().NoError(err)
	s.True(Verify("whsec_test", gotSig, ts, gotBody))
	s.JSONEq(string(delivery.Payload), string(gotBody))
	s.Equal(EventWidgetCreated, gotHdrs.Get(HeaderEvent))
	s.Equal(delivery.ID.String(), gotHdrs.Get(HeaderDelivery))

	var env Envelope
	s.Require().NoError(json.Unmarshal(gotBody, &env))
	s.Equal(delivery.ID, env.ID)
	s.Equal(s.orgID, env.OrganizationID)

	stored, err := s.deliveries.GetByID(delivery.ID)
	s.Require().NoError(err)
	s.Equal(models.DeliveryStatusSucceeded, stored.Status)
	s.Equal(1, stored.Attempts)
	s.Equal(http.StatusNoContent, stored.ResponseStatus)
	s.NotNil(stored.DeliveredAt)
}

func (s *DispatcherTestSuite) TestDeliverRetriesUntilSuccess() {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	hook := s.newHook(srv.URL, "*")
	hook.FailureCount = 4
	s.Require().NoError(s.hooks.Update(hook))

	d := s.dispatcher(5, 20)
	delivery, err := d.CreateDelivery(hook, EventMemberJoined, nil)
	s.Require().NoError(err)
	s.Require().NoError(d.Deliver(context.Background(), delivery))

	s.Equal(int32(3), calls.Load())
	stored, _ := s.deliveries.GetByID(delivery.ID)
	s.Equal(models.DeliveryStatusSucceeded, stored.Status)
	s.Equal(3, stored.Attempts)

	h, _ := s.hooks.GetByID(hook.ID)
	s.Equal(0, h.FailureCount)
}

func (s *DispatcherTestSuite) TestDeliverGivesUpAndAutoDisables() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	hook := s.newHook(srv.URL, "*")
	hook.FailureCount = 1
	s.Require().NoError(s.hooks.Update(hook))

	d := s.dispatcher(2, 2)
	delivery, err := d.CreateDelivery(hook, EventWidgetDeleted, nil)
	s.Require().NoError(err)
	s.Error(d.Deliver(context.Background(), delivery))

	stored, _ := s.deliveries.GetByID(delivery.ID)
	s.Equal(models.DeliveryStatusFailed, stored.Status)
	s.Equal(2, stored.Attempts)
	s.Equal(http.StatusInternalServerError, stored.ResponseStatus)
	s.Equal("boom", stored.ResponseBody)
	s.Contains(stored.Error, "status 500")

	h, _ := s.hooks.GetByID(hook.ID)
	s.False(h.IsActive)
	s.NotNil(h.DisabledAt)
	s.Equal(2, h.FailureCount)
}

func (s *DispatcherTestSuite) TestDeliverSkipsDisabledWebhook() {
	hook := s.newHook("http://127.0.0.1:1", "*")
	hook.IsActive = false
	s.Require().NoError(s.hooks.Update(hook))

	d := s.dispatcher(3, 0)
	delivery, err := d.CreateDelivery(hook, EventWebhookTest, nil)
	s.Require().NoError(err)
	s.ErrorIs(d.Deliver(context.Background(), delivery), ErrWebhookDisabled)

	stored, _ := s.deliveries.GetByID(delivery.ID)
	s.Equal(models.DeliveryStatusFailed, stored.Status)
	s.Equal(0, stored.Attempts)
}

func (s *DispatcherTestSuite) TestPublishFansOutToSubscribers() {
	var received atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s.newHook(srv.URL, EventMemberRemoved)
	s.newHook(srv.URL, "*")
	s.newHook(srv.URL, EventWidgetCreated)

	d := s.dispatcher(1, 0)
	d.Start()
	d.Publish(s.orgID, EventMemberRemoved, map[string]string{"user_id": "u1"})
	s.Require().NoError(d.Shutdown(context.Background()))

	s.Equal(int32(2), received.Load())
	s.Len(s.deliveries.rows, 2)
	for _, row := range s.deliveries.rows {
		s.Equal(models.DeliveryStatusSucceeded, row.Status)
	}
}

func (s *DispatcherTestSuite) TestEnqueueAfterShutdown() {
	d := s.dispatcher(1, 0)
	d.Start()
	s.Require().NoError(d.Shutdown(context.Background()))
	s.ErrorIs(d.Enqueue(uuid.New()), ErrStopped)
}

func TestDispatcherTestSuite(t *testing.T) {
	suite.Run(t, new(DispatcherTestSuite))
}

func TestEnqueueQueueFull(t *testing.T) {
	d := NewDispatcher(&memoryHooks{hooks: map[uuid.UUID]*models.Webhook{}}, &memoryDeliveries{rows: map[uuid.UUID]models.WebhookDelivery{}}, Options{QueueSize: 1})
	require.NoError(t, d.Enqueue(uuid.New()))
	assert.ErrorIs(t, d.Enqueue(uuid.New()), ErrQueueFull)
}
