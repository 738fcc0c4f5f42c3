package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"widget-admin-backend/internal/database/models"
	apperrors "widget-admin-backend/internal/errors"
	"widget-admin-backend/internal/knowledge"
	"widget-admin-backend/internal/logger"
	"widget-admin-backend/internal/metrics"
	"widget-admin-backend/internal/repository"
	"widget-admin-backend/internal/webhook"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	// DefaultMaxUploadSize bounds file sources when no limit is configured
	DefaultMaxUploadSize int64 = 10 << 20
	maxSearchResults           = 20
)

// ErrIngestionStopped is returned when the ingestion pool no longer accepts work
var ErrIngestionStopped = errors.New("knowledge ingestion is stopped")

// KnowledgeConfig carries knowledge ingestion settings
type KnowledgeConfig struct {
	Workers       int
	QueueSize     int
	ChunkSize     int
	MaxUploadSize int64
}

// KnowledgeService manages knowledge sources and runs their ingestion on a worker pool
type KnowledgeService struct {
	repo      repository.KnowledgeRepositoryInterface
	widgets   repository.WidgetRepositoryInterface
	fetcher   DocumentFetcher
	audit     AuditRecorder
	events    EventPublisher
	validator *validator.Validate
	cfg       KnowledgeConfig
	log       *logger.Logger
	now       func() time.Time

	queue   chan uuid.UUID
	wg      sync.WaitGroup
	mu      sync.RWMutex
	stopped bool
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewKnowledgeService creates a knowledge service; call Start to run ingestion workers
func NewKnowledgeService(
	repo repository.KnowledgeRepositoryInterface,
	widgets repository.WidgetRepositoryInterface,
	fetcher DocumentFetcher,
	audit AuditRecorder,
	events EventPublisher,
	validator *validator.Validate,
	cfg KnowledgeConfig,
) *KnowledgeService {
	if cfg.Workers <= 0 {
		cfg.Workers = 2
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 100
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = knowledge.DefaultChunkSize
	}
	if cfg.MaxUploadSize <= 0 {
		cfg.MaxUploadSize = DefaultMaxUploadSize
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &KnowledgeService{
		repo:      repo,
		widgets:   widgets,
		fetcher:   fetcher,
		audit:     audit,
		events:    events,
		validator: validator,
		cfg:       cfg,
		log:       logger.Named("knowledge"),
		now:       time.Now,
		queue:     make(chan uuid.UUID, cfg.QueueSize),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// CreateTextSourceRequest represents an inline text source
type CreateTextSourceRequest struct {
	Title    string     `json:"title" validate:"required,max=200"`
	Content  string     `json:"content" validate:"required"`
	WidgetID *uuid.UUID `json:"widget_id,omitempty"`
}

// CreateURLSourceRequest represents a source fetched from a URL
type CreateURLSourceRequest struct {
	Title    string     `json:"title,omitempty" validate:"max=200"`
	URL      string     `json:"url" validate:"required,url,max=2000"`
	WidgetID *uuid.UUID `json:"widget_id,omitempty"`
}

// KnowledgeSourceResponse represents a knowledge source
type KnowledgeSourceResponse struct {
	ID             uuid.UUID  `json:"id"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	WidgetID       *uuid.UUID `json:"widget_id,omitempty"`
	Kind           string     `json:"kind"`
	Title          string     `json:"title"`
	SourceURL      string     `json:"source_url,omitempty"`
	FileName       string     `json:"file_name,omitempty"`
	MimeType       string     `json:"mime_type,omitempty"`
	Status         string     `json:"status"`
	Error          string     `json:"error,omitempty"`
	ChunkCount     int        `json:"chunk_count"`
	ContentHash    string     `json:"content_hash,omitempty"`
	IngestedAt     *string    `json:"ingested_at,omitempty"`
	CreatedAt      string     `json:"created_at"`
	UpdatedAt      string     `json:"updated_at"`
}

// KnowledgeSourceListResponse represents a paginated list of sources
type KnowledgeSourceListResponse struct {
	Sources  []KnowledgeSourceResponse `json:"sources"`
	Total    int64                     `json:"total"`
	Page     int                       `json:"page"`
	PageSize int                       `json:"page_size"`
}

// KnowledgeChunkResponse represents one chunk of a source
type KnowledgeChunkResponse struct {
	ID       uuid.UUID `json:"id"`
	SourceID uuid.UUID `json:"source_id"`
	Position int       `json:"position"`
	Heading  string    `json:"heading,omitempty"`
	Content  string    `json:"content"`
}

// Start launches the ingestion workers
func (s *KnowledgeService) Start() {
	for i := 0; i < s.cfg.Workers; i++ {
		s.wg.Add(1)
		go s.worker()
	}
}

// Shutdown stops accepting sources and waits for queued ingestion; running
// fetches are cancelled when ctx expires.
func (s *KnowledgeService) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return nil
	}
	s.stopped = true
	close(s.queue)
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.cancel()
		return nil
	case <-ctx.Done():
		s.cancel()
		<-done
		return ctx.Err()
	}
}

// MaxUploadSize is the largest accepted file source in bytes
func (s *KnowledgeService) MaxUploadSize() int64 {
	return s.cfg.MaxUploadSize
}

// CreateText stores an inline text source and queues its ingestion
func (s *KnowledgeService) CreateText(actor Actor, orgID uuid.UUID, req *CreateTextSourceRequest) (*KnowledgeSourceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.checkWidget(orgID, req.WidgetID); err != nil {
		return nil, err
	}
	if int64(len(req.Content)) > s.cfg.MaxUploadSize {
		return nil, apperrors.NewValidationError("content", fmt.Sprintf("must not exceed %d bytes", s.cfg.MaxUploadSize))
	}

	source := &models.KnowledgeSource{
		OrganizationID: orgID,
		WidgetID:       req.WidgetID,
		Kind:           models.SourceKindText,
		Title:          strings.TrimSpace(req.Title),
		MimeType:       "text/markdown",
		RawContent:     strings.ToValidUTF8(req.Content, ""),
		Status:         models.SourceStatusPending,
	}
	return s.create(actor, source)
}

// CreateURL stores a URL source; the document is fetched during ingestion
func (s *KnowledgeService) CreateURL(actor Actor, orgID uuid.UUID, req *CreateURLSourceRequest) (*KnowledgeSourceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	u, err := url.Parse(req.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, apperrors.NewValidationError("url", "must be an absolute http or https URL")
	}
	if err := s.checkWidget(orgID, req.WidgetID); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = u.Host + u.Path
	}
	source := &models.KnowledgeSource{
		OrganizationID: orgID,
		WidgetID:       req.WidgetID,
		Kind:           models.SourceKindURL,
		Title:          truncateRunes(title, 200),
		SourceURL:      u.String(),
		Status:         models.SourceStatusPending,
	}
	return s.create(actor, source)
}

// CreateFile extracts the text of an uploaded file and queues its ingestion.
// Unsupported content types are rejected before anything is stored.
func (s *KnowledgeService) CreateFile(actor Actor, orgID uuid.UUID, title, fileName string, data []byte) (*KnowledgeSourceResponse, error) {
	if len(data) == 0 {
		return nil, apperrors.NewValidationError("file", "is empty")
	}
	if int64(len(data)) > s.cfg.MaxUploadSize {
		return nil, apperrors.NewValidationError("file", fmt.Sprintf("must not exceed %d bytes", s.cfg.MaxUploadSize))
	}

	doc, err := knowledge.Extract(data, fileName)
	if err != nil {
		if errors.Is(err, knowledge.ErrUnsupportedType) {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrUnsupportedContentType, err)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = doc.Title
	}
	if title == "" {
		title = fileName
	}
	source := &models.KnowledgeSource{
		OrganizationID: orgID,
		Kind:           models.SourceKindFile,
		Title:          truncateRunes(title, 200),
		FileName:       truncateRunes(fileName, 255),
		MimeType:       doc.MimeType,
		RawContent:     strings.ToValidUTF8(strings.ReplaceAll(doc.Text, "\x00", ""), ""),
		Status:         models.SourceStatusPending,
	}
	return s.create(actor, source)
}

// Get retrieves a knowledge source
func (s *KnowledgeService) Get(orgID, id uuid.UUID) (*KnowledgeSourceResponse, error) {
	source, err := s.load(orgID, id)
	if err != nil {
		return nil, err
	}
	return sourceToResponse(source), nil
}

// List returns an organization's sources
func (s *KnowledgeService) List(orgID uuid.UUID, page, pageSize int) (*KnowledgeSourceListResponse, error) {
	page, pageSize, offset := paginate(page, pageSize)
	sources, total, err := s.repo.GetSourcesByOrganizationID(orgID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list knowledge sources: %w", err)
	}
	out := make([]KnowledgeSourceResponse, len(sources))
	for i := range sources {
		out[i] = *sourceToResponse(&sources[i])
	}
	return &KnowledgeSourceListResponse{Sources: out, Total: total, Page: page, PageSize: pageSize}, nil
}

// Reingest queues a source for another ingestion run
func (s *KnowledgeService) Reingest(actor Actor, orgID, id uuid.UUID) (*KnowledgeSourceResponse, error) {
	source, err := s.load(orgID, id)
	if err != nil {
		return nil, err
	}
	if source.Status == models.SourceStatusProcessing {
		return nil, apperrors.NewConflictError("source is already being ingested")
	}

	source.Status = models.SourceStatusPending
	source.Error = ""
	if err := s.repo.UpdateSource(source); err != nil {
		return nil, fmt.Errorf("failed to update knowledge source: %w", err)
	}
	s.enqueue(source.ID)

	s.audit.Record(actor, orgIDPtr(orgID), "knowledge.reingest", "knowledge_source", source.ID.String(), nil)
	return sourceToResponse(source), nil
}

// ReingestReport summarizes a ReingestStale run
type ReingestReport struct {
	Scanned int `json:"scanned"`
	Ready   int `json:"ready"`
	Failed  int `json:"failed"`
}

// ReingestStale ingests sources stuck in status for longer than olderThan,
// e.g. left pending by a full queue or processing by a crashed worker.
// Sources run synchronously; ctx cancellation stops the run.
func (s *KnowledgeService) ReingestStale(ctx context.Context, status models.SourceStatus, olderThan time.Duration, limit int) (*ReingestReport, error) {
	switch status {
	case models.SourceStatusPending, models.SourceStatusProcessing, models.SourceStatusFailed:
	default:
		return nil, apperrors.NewValidationError("status", "must be pending, processing or failed")
	}
	if limit < 1 {
		limit = 100
	}

	stale, err := s.repo.GetStaleSources(status, s.now().UTC().Add(-olderThan), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load knowledge sources: %w", err)
	}

	report := &ReingestReport{Scanned: len(stale)}
	for i := range stale {
		if ctx.Err() != nil {
			break
		}
		if err := s.Ingest(ctx, stale[i].ID); err != nil {
			report.Failed++
			continue
		}
		report.Ready++
	}

	s.audit.Record(SystemActor, nil, "knowledge.reingest_stale", "knowledge_source", "", report)
	return report, ctx.Err()
}

// Delete removes a source and its chunks
func (s *KnowledgeService) Delete(actor Actor, orgID, id uuid.UUID) error {
	source, err := s.load(orgID, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteSource(source.ID); err != nil {
		return fmt.Errorf("failed to delete knowledge source: %w", err)
	}
	s.audit.Record(actor, orgIDPtr(orgID), "knowledge.delete", "knowledge_source", source.ID.String(), map[string]string{"title": source.Title})
	return nil
}

// ListChunks returns a source's chunks in document order
func (s *KnowledgeService) ListChunks(orgID, id uuid.UUID) ([]KnowledgeChunkResponse, error) {
	source, err := s.load(orgID, id)
	if err != nil {
		return nil, err
	}
	chunks, err := s.repo.GetChunksBySourceID(source.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chunks: %w", err)
	}
	return chunksToResponse(chunks), nil
}

// Search finds chunks containing the query, case-insensitively
func (s *KnowledgeService) Search(orgID uuid.UUID, query string) ([]KnowledgeChunkResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.NewValidationError("q", "is required")
	}
	chunks, err := s.repo.SearchChunks(orgID, query, maxSearchResults)
	if err != nil {
		return nil, fmt.Errorf("failed to search knowledge base: %w", err)
	}
	return chunksToResponse(chunks), nil
}

// Ingest extracts, chunks and stores one source, recording the outcome on it
func (s *KnowledgeService) Ingest(ctx context.Context, id uuid.UUID) error {
	source, err := s.repo.GetSourceByID(id)
	if err != nil {
		return fmt.Errorf("failed to load knowledge source: %w", err)
	}
	log := s.log.WithFields(map[string]interface{}{
		"source_id":       source.ID,
		"organization_id": source.OrganizationID,
		"kind":            source.Kind,
	})

	source.Status = models.SourceStatusProcessing
	if err := s.repo.UpdateSource(source); err != nil {
		return fmt.Errorf("failed to mark source processing: %w", err)
	}

	count, err := s.ingest(ctx, source)
	if err != nil {
		if ctx.Err() != nil {
			// Interrupted by shutdown; leave it for reingest.
			source.Status = models.SourceStatusPending
			if uerr := s.repo.UpdateSource(source); uerr != nil {
				log.WithError(uerr).Warn("failed to reset interrupted source")
			}
			return err
		}
		source.Status = models.SourceStatusFailed
		source.Error = err.Error()
		if uerr := s.repo.UpdateSource(source); uerr != nil {
			log.WithError(uerr).Error("failed to record ingestion failure")
		}
		metrics.Get().KnowledgeIngestions.WithLabelValues(string(source.Kind), "failed").Inc()
		log.WithError(err).Warn("knowledge ingestion failed")
		s.events.Publish(source.OrganizationID, webhook.EventKnowledgeSourceFailed, sourceToResponse(source))
		return err
	}

	metrics.Get().KnowledgeIngestions.WithLabelValues(string(source.Kind), "ready").Inc()
	metrics.Get().KnowledgeChunks.Add(float64(count))
	log.WithField("chunks", count).Info("knowledge source ingested")
	s.events.Publish(source.OrganizationID, webhook.EventKnowledgeSourceReady, sourceToResponse(source))
	return nil
}

func (s *KnowledgeService) ingest(ctx context.Context, source *models.KnowledgeSource) (int, error) {
	text := source.RawContent
	if source.Kind == models.SourceKindURL {
		data, err := s.fetcher.Fetch(ctx, source.SourceURL)
		if err != nil {
			return 0, fmt.Errorf("fetch failed: %w", err)
		}
		doc, err := knowledge.Extract(data, "")
		if err != nil {
			return 0, err
		}
		text = strings.ToValidUTF8(strings.ReplaceAll(doc.Text, "\x00", ""), "")
		source.MimeType = doc.MimeType
	}
	if strings.TrimSpace(text) == "" {
		return 0, errors.New("document has no text content")
	}

	parts := knowledge.Split(text, s.cfg.ChunkSize)
	chunks := make([]models.KnowledgeChunk, len(parts))
	for i, p := range parts {
		chunks[i] = models.KnowledgeChunk{
			SourceID:       source.ID,
			OrganizationID: source.OrganizationID,
			Position:       i,
			Heading:        truncateRunes(p.Heading, 300),
			Content:        p.Content,
		}
	}
	if err := s.repo.ReplaceChunks(source.ID, chunks); err != nil {
		return 0, fmt.Errorf("failed to store chunks: %w", err)
	}

	sum := sha256.Sum256([]byte(text))
	now := s.now().UTC()
	source.Status = models.SourceStatusReady
	source.Error = ""
	source.ChunkCount = len(chunks)
	source.ContentHash = hex.EncodeToString(sum[:])
	source.IngestedAt = &now
	if err := s.repo.UpdateSource(source); err != nil {
		return 0, fmt.Errorf("failed to mark source ready: %w", err)
	}
	return len(chunks), nil
}

func (s *KnowledgeService) create(actor Actor, source *models.KnowledgeSource) (*KnowledgeSourceResponse, error) {
	if err := s.repo.CreateSource(source); err != nil {
		return nil, fmt.Errorf("failed to create knowledge source: %w", err)
	}
	s.enqueue(source.ID)

	s.audit.Record(actor, orgIDPtr(source.OrganizationID), "knowledge.create", "knowledge_source", source.ID.String(),
		map[string]string{"kind": string(source.Kind), "title": source.Title})
	return sourceToResponse(source), nil
}

func (s *KnowledgeService) enqueue(id uuid.UUID) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.stopped {
		s.log.WithError(ErrIngestionStopped).WithField("source_id", id).Warn("source left pending")
		return
	}
	select {
	case s.queue <- id:
	default:
		s.log.WithField("source_id", id).Warn("ingestion queue full, source left pending")
	}
}

func (s *KnowledgeService) worker() {
	defer s.wg.Done()
	for id := range s.queue {
		_ = s.Ingest(s.ctx, id)
	}
}

func (s *KnowledgeService) checkWidget(orgID uuid.UUID, widgetID *uuid.UUID) error {
	if widgetID == nil {
		return nil
	}
	widget, err := s.widgets.GetByID(*widgetID)
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to get widget: %w", err)
	}
	if err != nil || widget.OrganizationID != orgID {
		return apperrors.NewValidationError("widget_id", "widget does not belong to this organization")
	}
	return nil
}

func (s *KnowledgeService) load(orgID, id uuid.UUID) (*models.KnowledgeSource, error) {
	source, err := s.repo.GetSourceByID(id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrKnowledgeSourceNotFound
		}
		return nil, fmt.Errorf("failed to get knowledge source: %w", err)
	}
	if source.OrganizationID != orgID {
		return nil, apperrors.ErrKnowledgeSourceNotFound
	}
	return source, nil
}

func truncateRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

func sourceToResponse(src *models.KnowledgeSource) *KnowledgeSourceResponse {
	return &KnowledgeSourceResponse{
		ID:             src.ID,
		OrganizationID: src.OrganizationID,
		WidgetID:       src.WidgetID,
		Kind:           string(src.Kind),
		Title:          src.Title,
		SourceURL:      src.SourceURL,
		FileName:       src.FileName,
		MimeType:       src.MimeType,
		Status:         string(src.Status),
		Error:          src.Error,
		ChunkCount:     src.ChunkCount,
		ContentHash:    src.ContentHash,
		IngestedAt:     formatTimePtr(src.IngestedAt),
		CreatedAt:      formatTime(src.CreatedAt),
		UpdatedAt:      formatTime(src.UpdatedAt),
	}
}

func chunksToResponse(chunks []models.KnowledgeChunk) []KnowledgeChunkResponse {
	out := make([]KnowledgeChunkResponse, len(chunks))
	for i, c := range chunks {
		out[i] = KnowledgeChunkResponse{
			ID:       c.ID,
			SourceID: c.SourceID,
			Position: c.Position,
			Heading:  c.Heading,
			Content:  c.Content,
		}
	}
	return out
}
