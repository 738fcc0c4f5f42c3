package routes

import (
	"context"
	"fmt"
	"time"

	"widget-admin-backend/internal/cache"
	"widget-admin-backend/internal/config"
	"widget-admin-backend/internal/knowledge"
	"widget-admin-backend/internal/linkrules"
	"widget-admin-backend/internal/logger"
	"widget-admin-backend/internal/mailer"
	"widget-admin-backend/internal/repository"
	"widget-admin-backend/internal/service"
	"widget-admin-backend/internal/webhook"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	widgetCachePrefix = "widget-admin:widget-config"
	fetchTimeout      = 15 * time.Second
)

// Services holds the wired service layer shared by the HTTP server and the CLI
type Services struct {
	Repositories *Repositories

	Dispatcher    *webhook.Dispatcher
	Audit         *service.AuditService
	Organizations *service.OrganizationService
	Members       *service.MemberService
	Invitations   *service.InvitationService
	Widgets       *service.WidgetService
	LinkRules     *service.LinkRuleService
	Webhooks      *service.WebhookService
	Billing       *service.BillingService
	Knowledge     *service.KnowledgeService
	Directory     *service.DirectoryService
}

// Repositories holds one repository per table family
type Repositories struct {
	Organizations repository.OrganizationRepositoryInterface
	Users         repository.UserRepositoryInterface
	Memberships   repository.MembershipRepositoryInterface
	Invitations   repository.InvitationRepositoryInterface
	Widgets       repository.WidgetRepositoryInterface
	LinkRules     repository.LinkRuleRepositoryInterface
	Webhooks      repository.WebhookRepositoryInterface
	Deliveries    repository.WebhookDeliveryRepositoryInterface
	AuditLogs     repository.AuditLogRepositoryInterface
	Subscriptions repository.SubscriptionRepositoryInterface
	Knowledge     repository.KnowledgeRepositoryInterface
}

// NewRepositories creates the gorm-backed repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Organizations: repository.NewOrganizationRepository(db),
		Users:         repository.NewUserRepository(db),
		Memberships:   repository.NewMembershipRepository(db),
		Invitations:   repository.NewInvitationRepository(db),
		Widgets:       repository.NewWidgetRepository(db),
		LinkRules:     repository.NewLinkRuleRepository(db),
		Webhooks:      repository.NewWebhookRepository(db),
		Deliveries:    repository.NewWebhookDeliveryRepository(db),
		AuditLogs:     repository.NewAuditLogRepository(db),
		Subscriptions: repository.NewSubscriptionRepository(db),
		Knowledge:     repository.NewKnowledgeRepository(db),
	}
}

// NewServices wires every service. rdb may be nil, in which case public
// widget configuration is not cached. Workers are not started.
func NewServices(db *gorm.DB, cfg *config.Config, rdb *redis.Client) (*Services, error) {
	validate := validator.New()
	repos := NewRepositories(db)

	prices, err := service.ParsePlanPrices(cfg.BillingCurrency, cfg.PlanPrices)
	if err != nil {
		return nil, fmt.Errorf("invalid plan prices: %w", err)
	}

	var widgetCache service.ConfigCache = cache.NoopCache{}
	if rdb != nil {
		widgetCache = cache.NewRedisCache(rdb, widgetCachePrefix)
	}

	var mail service.Mailer
	if cfg.SMTPHost != "" {
		mail = mailer.NewSMTPMailer(mailer.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.MailFrom,
		})
	} else {
		logger.Named("mailer").Warn("SMTP_HOST is not set, outgoing mail is logged only")
		mail = mailer.NewLogMailer()
	}

	dispatcher := webhook.NewDispatcher(repos.Webhooks, repos.Deliveries, webhook.Options{
		Workers:              cfg.WebhookWorkers,
		QueueSize:            cfg.WebhookQueueSize,
		Timeout:              cfg.WebhookTimeout,
		MaxAttempts:          cfg.WebhookMaxAttempts,
		AutoDisableThreshold: cfg.WebhookAutoDisableThreshold,
	})
	audit := service.NewAuditService(repos.AuditLogs)
	matcher := linkrules.NewMatcher(repos.LinkRules, cfg.LinkRuleMaxCards)

	s := &Services{
		Repositories: repos,
		Dispatcher:   dispatcher,
		Audit:        audit,
	}
	s.Widgets = service.NewWidgetService(repos.Widgets, widgetCache, cfg.WidgetConfigCacheTTL, audit, dispatcher, validate)
	s.Organizations = service.NewOrganizationService(repos.Organizations, repos.Memberships, repos.Subscriptions,
		prices, s.Widgets, audit, dispatcher, validate)
	s.Members = service.NewMemberService(repos.Memberships, repos.Users, audit, dispatcher, validate)
	s.Invitations = service.NewInvitationService(repos.Invitations, repos.Organizations, repos.Users, repos.Memberships,
		mail, audit, dispatcher, validate, service.InvitationConfig{
			TTL:           cfg.InvitationTTL,
			PublicBaseURL: cfg.PublicBaseURL,
		})
	s.LinkRules = service.NewLinkRuleService(repos.LinkRules, repos.Widgets, matcher, audit, validate)
	s.Webhooks = service.NewWebhookService(repos.Webhooks, repos.Deliveries, dispatcher, audit, validate)
	s.Billing = service.NewBillingService(repos.Subscriptions, prices)
	s.Knowledge = service.NewKnowledgeService(repos.Knowledge, repos.Widgets,
		knowledge.NewFetcher(fetchTimeout, cfg.KnowledgeMaxUploadSize), audit, dispatcher, validate,
		service.KnowledgeConfig{
			Workers:       cfg.KnowledgeWorkers,
			ChunkSize:     cfg.KnowledgeChunkSize,
			MaxUploadSize: cfg.KnowledgeMaxUploadSize,
		})
	s.Directory = service.NewDirectoryService(cfg)

	return s, nil
}

// Start launches the webhook and ingestion workers
func (s *Services) Start() {
	s.Dispatcher.Start()
	s.Knowledge.Start()
}

// Shutdown drains the worker pools
func (s *Services) Shutdown(ctx context.Context) error {
	var firstErr error
	if err := s.Knowledge.Shutdown(ctx); err != nil {
		firstErr = fmt.Errorf("knowledge shutdown: %w", err)
	}
	if err := s.Dispatcher.Shutdown(ctx); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("webhook shutdown: %w", err)
	}
	return firstErr
}
