package routes

import (
	"context"
	"fmt"

	"widget-admin-backend/internal/api/handlers"
	"widget-admin-backend/internal/api/middleware"
	"widget-admin-backend/internal/auth"
	"widget-admin-backend/internal/authz"
	"widget-admin-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"gorm.io/gorm"
)

// Server bundles the router with the components main has to manage
type Server struct {
	Router   *gin.Engine
	Services *Services
	Auth     *auth.AuthService
}

// SetupRoutes configures all the routes for the application. rdb may be nil.
func SetupRoutes(db *gorm.DB, cfg *config.Config, rdb *redis.Client) (*Server, error) {
	services, err := NewServices(db, cfg, rdb)
	if err != nil {
		return nil, err
	}

	enforcer, err := authz.NewEnforcer()
	if err != nil {
		return nil, fmt.Errorf("failed to load role policy: %w", err)
	}

	authConfig := auth.NewAuthConfig(cfg)
	authService, err := auth.NewAuthService(authConfig, services.Repositories.Users)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService, services.Repositories.Memberships, enforcer)

	publicLimit, err := publicRateLimit(cfg, rdb)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(cfg))

	healthHandler := handlers.NewHealthHandler(db)
	if rdb != nil {
		healthHandler.AddCheck("redis", func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
	}
	organizationHandler := handlers.NewOrganizationHandler(services.Organizations, services.Members)
	memberHandler := handlers.NewMemberHandler(services.Members)
	invitationHandler := handlers.NewInvitationHandler(services.Invitations)
	widgetHandler := handlers.NewWidgetHandler(services.Widgets)
	publicHandler := handlers.NewPublicWidgetHandler(services.Widgets, services.LinkRules)
	linkRuleHandler := handlers.NewLinkRuleHandler(services.LinkRules)
	webhookHandler := handlers.NewWebhookHandler(services.Webhooks)
	auditHandler := handlers.NewAuditHandler(services.Audit)
	billingHandler := handlers.NewBillingHandler(services.Billing)
	knowledgeHandler := handlers.NewKnowledgeHandler(services.Knowledge)
	directoryHandler := handlers.NewDirectoryHandler(services.Directory)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/github/start", authHandler.GitHubStart)
		authGroup.GET("/github/callback", authHandler.GitHubCallback)
		authGroup.POST("/refresh", authHandler.Refresh)
		authGroup.POST("/logout", authHandler.Logout)
		authGroup.POST("/validate", authHandler.ValidateToken)
	}

	// Endpoints called by embedded widgets; origin checks happen per widget
	public := router.Group("/public/widgets/:publicKey")
	if publicLimit != nil {
		public.Use(publicLimit)
	}
	{
		public.GET("/config", publicHandler.GetConfig)
		public.POST("/messages/scan", publicHandler.ScanMessage)
	}

	v1 := router.Group("/api/v1")
	v1.POST("/invitations/accept", invitationHandler.AcceptInvitation)

	secured := v1.Group("")
	secured.Use(authMiddleware.RequireAuth())
	{
		secured.GET("/me", memberHandler.Me)

		organizations := secured.Group("/organizations")
		{
			organizations.GET("", organizationHandler.ListOrganizations)
			organizations.POST("", organizationHandler.CreateOrganization)
			organizations.GET("/by-slug/:slug", organizationHandler.GetOrganizationBySlug)
		}

		org := secured.Group("/organizations/:id")
		{
			org.GET("", authMiddleware.RequireOrgRole(authz.ResourceOrganization, authz.ActionRead), organizationHandler.GetOrganization)
			org.PUT("", authMiddleware.RequireOrgRole(authz.ResourceOrganization, authz.ActionWrite), organizationHandler.UpdateOrganization)
			org.DELETE("", authMiddleware.RequireOrgRole(authz.ResourceOrganization, authz.ActionDelete), organizationHandler.DeleteOrganization)
			org.PUT("/plan", authMiddleware.RequireOrgRole(authz.ResourceBilling, authz.ActionWrite), organizationHandler.ChangePlan)
			org.DELETE("/subscription", authMiddleware.RequireOrgRole(authz.ResourceBilling, authz.ActionWrite), organizationHandler.CancelSubscription)

			// Role changes and self-removal are checked in the member service
			members := org.Group("/members", authMiddleware.RequireOrgRole(authz.ResourceMember, authz.ActionRead))
			{
				members.GET("", memberHandler.ListMembers)
				members.PUT("/:userId", memberHandler.ChangeRole)
				members.DELETE("/:userId", memberHandler.RemoveMember)
			}

			invitations := org.Group("/invitations")
			{
				invitations.GET("", authMiddleware.RequireOrgRole(authz.ResourceInvitation, authz.ActionRead), invitationHandler.ListInvitations)
				invitations.POST("", authMiddleware.RequireOrgRole(authz.ResourceInvitation, authz.ActionWrite), invitationHandler.CreateInvitation)
				invitations.POST("/:invitationId/resend", authMiddleware.RequireOrgRole(authz.ResourceInvitation, authz.ActionWrite), invitationHandler.ResendInvitation)
				invitations.DELETE("/:invitationId", authMiddleware.RequireOrgRole(authz.ResourceInvitation, authz.ActionDelete), invitationHandler.RevokeInvitation)
			}

			widgets := org.Group("/widgets")
			{
				read := authMiddleware.RequireOrgRole(authz.ResourceWidget, authz.ActionRead)
				write := authMiddleware.RequireOrgRole(authz.ResourceWidget, authz.ActionWrite)
				widgets.GET("", read, widgetHandler.ListWidgets)
				widgets.POST("", write, widgetHandler.CreateWidget)
				widgets.GET("/:widgetId", read, widgetHandler.GetWidget)
				widgets.PUT("/:widgetId", write, widgetHandler.UpdateWidget)
				widgets.PATCH("/:widgetId/settings", write, widgetHandler.PatchSettings)
				widgets.POST("/:widgetId/rotate-key", write, widgetHandler.RotateKey)
				widgets.DELETE("/:widgetId", authMiddleware.RequireOrgRole(authz.ResourceWidget, authz.ActionDelete), widgetHandler.DeleteWidget)
			}

			linkRules := org.Group("/link-rules")
			{
				read := authMiddleware.RequireOrgRole(authz.ResourceLinkRule, authz.ActionRead)
				write := authMiddleware.RequireOrgRole(authz.ResourceLinkRule, authz.ActionWrite)
				linkRules.GET("", read, linkRuleHandler.ListLinkRules)
				linkRules.POST("", write, linkRuleHandler.CreateLinkRule)
				linkRules.POST("/test", read, linkRuleHandler.TestLinkRule)
				linkRules.GET("/:ruleId", read, linkRuleHandler.GetLinkRule)
				linkRules.PUT("/:ruleId", write, linkRuleHandler.UpdateLinkRule)
				linkRules.DELETE("/:ruleId", authMiddleware.RequireOrgRole(authz.ResourceLinkRule, authz.ActionDelete), linkRuleHandler.DeleteLinkRule)
			}

			webhooks := org.Group("/webhooks")
			{
				read := authMiddleware.RequireOrgRole(authz.ResourceWebhook, authz.ActionRead)
				write := authMiddleware.RequireOrgRole(authz.ResourceWebhook, authz.ActionWrite)
				webhooks.GET("", read, webhookHandler.ListWebhooks)
				webhooks.POST("", write, webhookHandler.CreateWebhook)
				webhooks.GET("/:webhookId", read, webhookHandler.GetWebhook)
				webhooks.PUT("/:webhookId", write, webhookHandler.UpdateWebhook)
				webhooks.DELETE("/:webhookId", authMiddleware.RequireOrgRole(authz.ResourceWebhook, authz.ActionDelete), webhookHandler.DeleteWebhook)
				webhooks.POST("/:webhookId/rotate-secret", write, webhookHandler.RotateSecret)
				webhooks.POST("/:webhookId/test", write, webhookHandler.SendTest)
				webhooks.GET("/:webhookId/deliveries", read, webhookHandler.ListDeliveries)
				webhooks.POST("/:webhookId/deliveries/:deliveryId/redeliver", write, webhookHandler.Redeliver)
			}

			kb := org.Group("/knowledge")
			{
				read := authMiddleware.RequireOrgRole(authz.ResourceKnowledge, authz.ActionRead)
				write := authMiddleware.RequireOrgRole(authz.ResourceKnowledge, authz.ActionWrite)
				kb.GET("/sources", read, knowledgeHandler.ListSources)
				kb.POST("/sources", write, knowledgeHandler.CreateSource)
				kb.GET("/sources/:sourceId", read, knowledgeHandler.GetSource)
				kb.DELETE("/sources/:sourceId", authMiddleware.RequireOrgRole(authz.ResourceKnowledge, authz.ActionDelete), knowledgeHandler.DeleteSource)
				kb.POST("/sources/:sourceId/reingest", write, knowledgeHandler.ReingestSource)
				kb.GET("/sources/:sourceId/chunks", read, knowledgeHandler.ListChunks)
				kb.GET("/search", read, knowledgeHandler.Search)
			}

			audit := authMiddleware.RequireOrgRole(authz.ResourceAudit, authz.ActionRead)
			org.GET("/audit-logs", audit, auditHandler.ListOrganizationAudit)
			org.GET("/audit-logs/export", audit, auditHandler.ExportOrganizationAudit)

			org.GET("/directory/users/search", authMiddleware.RequireOrgRole(authz.ResourceDirectory, authz.ActionRead), directoryHandler.UserSearch)
		}

		admin := secured.Group("/admin", authMiddleware.RequireSuperAdmin())
		{
			admin.GET("/billing/kpis", billingHandler.GetKPIs)
			admin.GET("/audit-logs", auditHandler.ListAudit)
			admin.GET("/audit-logs/export", auditHandler.ExportAudit)
			admin.PUT("/organizations/:id/status", organizationHandler.SetStatus)
		}
	}

	return &Server{Router: router, Services: services, Auth: authService}, nil
}

// publicRateLimit builds the limiter for the widget endpoints; nil when disabled
func publicRateLimit(cfg *config.Config, rdb *redis.Client) (gin.HandlerFunc, error) {
	if !cfg.RateLimitEnabled {
		return nil, nil
	}

	var (
		store limiter.Store
		err   error
	)
	switch cfg.RateLimitStorage {
	case "redis":
		if rdb == nil {
			return nil, fmt.Errorf("RATE_LIMIT_STORAGE=redis requires REDIS_URL")
		}
		store, err = middleware.NewRedisStore(rdb)
		if err != nil {
			return nil, fmt.Errorf("failed to create rate limit store: %w", err)
		}
	default:
		store = middleware.NewMemoryStore()
	}

	return middleware.RateLimit(middleware.RateLimitConfig{Rate: cfg.RateLimitPublic, Store: store})
}
