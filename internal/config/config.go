package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment   string `mapstructure:"ENVIRONMENT"`
	Port          string `mapstructure:"PORT"`
	LogLevel      string `mapstructure:"LOG_LEVEL"`
	PublicBaseURL string `mapstructure:"PUBLIC_BASE_URL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`
	// Base URL of this API as seen by the browser, used to build OAuth callbacks
	AuthRedirectURL string `mapstructure:"AUTH_REDIRECT_URL"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Redis configuration (widget config cache, rate limit store)
	RedisURL             string        `mapstructure:"REDIS_URL"`
	WidgetConfigCacheTTL time.Duration `mapstructure:"WIDGET_CONFIG_CACHE_TTL"`

	// Rate limiting for public widget endpoints
	RateLimitEnabled bool   `mapstructure:"RATE_LIMIT_ENABLED"`
	RateLimitPublic  string `mapstructure:"RATE_LIMIT_PUBLIC"` // ulule formatted rate, e.g. "120-M"
	RateLimitStorage string `mapstructure:"RATE_LIMIT_STORAGE"`

	// Webhook delivery
	WebhookWorkers              int           `mapstructure:"WEBHOOK_WORKERS"`
	WebhookQueueSize            int           `mapstructure:"WEBHOOK_QUEUE_SIZE"`
	WebhookTimeout              time.Duration `mapstructure:"WEBHOOK_TIMEOUT"`
	WebhookMaxAttempts          int           `mapstructure:"WEBHOOK_MAX_ATTEMPTS"`
	WebhookAutoDisableThreshold int           `mapstructure:"WEBHOOK_AUTO_DISABLE_THRESHOLD"`

	// Knowledge base ingestion
	KnowledgeWorkers       int   `mapstructure:"KNOWLEDGE_WORKERS"`
	KnowledgeChunkSize     int   `mapstructure:"KNOWLEDGE_CHUNK_SIZE"`
	KnowledgeMaxUploadSize int64 `mapstructure:"KNOWLEDGE_MAX_UPLOAD_SIZE"`

	// Link rules
	LinkRuleMaxCards int `mapstructure:"LINK_RULE_MAX_CARDS"`

	// Invitations
	InvitationTTL time.Duration `mapstructure:"INVITATION_TTL"`

	// Mail configuration; an empty SMTP host logs outgoing mail instead of sending it
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     string `mapstructure:"SMTP_PORT"`
	SMTPUsername string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	MailFrom     string `mapstructure:"MAIL_FROM"`

	// LDAP configuration
	LDAPHost               string `mapstructure:"LDAP_HOST"`
	LDAPPort               string `mapstructure:"LDAP_PORT"`
	LDAPBindDN             string `mapstructure:"LDAP_BIND_DN"`
	LDAPBindPW             string `mapstructure:"LDAP_BIND_PW"`
	LDAPBaseDN             string `mapstructure:"LDAP_BASE_DN"`
	LDAPInsecureSkipVerify bool   `mapstructure:"LDAP_INSECURE_SKIP_VERIFY"`
	LDAPTimeoutSec         int    `mapstructure:"LDAP_TIMEOUT_SEC"`

	// GitHub SSO
	GitHubClientID          string `mapstructure:"GITHUB_CLIENT_ID"`
	GitHubClientSecret      string `mapstructure:"GITHUB_CLIENT_SECRET"`
	GitHubEnterpriseBaseURL string `mapstructure:"GITHUB_ENTERPRISE_BASE_URL"`

	// Billing
	BillingCurrency string            `mapstructure:"BILLING_CURRENCY"`
	PlanPrices      map[string]string `mapstructure:"PLAN_PRICES"` // monthly price per plan, decimal strings
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("PUBLIC_BASE_URL", "http://localhost:3000")

	// Database defaults; DATABASE_URL wins over the DB_* parts when set
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "widget_admin")
	viper.SetDefault("DB_SSL_MODE", "disable")

	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("AUTH_REDIRECT_URL", "http://localhost:7008")
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("WIDGET_CONFIG_CACHE_TTL", 5*time.Minute)

	viper.SetDefault("RATE_LIMIT_ENABLED", true)
	viper.SetDefault("RATE_LIMIT_PUBLIC", "120-M")
	viper.SetDefault("RATE_LIMIT_STORAGE", "memory")

	viper.SetDefault("WEBHOOK_WORKERS", 4)
	viper.SetDefault("WEBHOOK_QUEUE_SIZE", 1000)
	viper.SetDefault("WEBHOOK_TIMEOUT", 10*time.Second)
	viper.SetDefault("WEBHOOK_MAX_ATTEMPTS", 5)
	viper.SetDefault("WEBHOOK_AUTO_DISABLE_THRESHOLD", 20)

	viper.SetDefault("KNOWLEDGE_WORKERS", 2)
	viper.SetDefault("KNOWLEDGE_CHUNK_SIZE", 1500)
	viper.SetDefault("KNOWLEDGE_MAX_UPLOAD_SIZE", 10<<20)

	viper.SetDefault("LINK_RULE_MAX_CARDS", 3)
	viper.SetDefault("INVITATION_TTL", 7*24*time.Hour)

	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", "587")
	viper.SetDefault("SMTP_USERNAME", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("MAIL_FROM", "no-reply@localhost")

	viper.SetDefault("LDAP_HOST", "")
	viper.SetDefault("LDAP_PORT", "636")
	viper.SetDefault("LDAP_BIND_DN", "")
	viper.SetDefault("LDAP_BIND_PW", "")
	viper.SetDefault("LDAP_BASE_DN", "")
	viper.SetDefault("LDAP_INSECURE_SKIP_VERIFY", false)
	viper.SetDefault("LDAP_TIMEOUT_SEC", 10)

	viper.SetDefault("GITHUB_CLIENT_ID", "")
	viper.SetDefault("GITHUB_CLIENT_SECRET", "")
	viper.SetDefault("GITHUB_ENTERPRISE_BASE_URL", "")

	viper.SetDefault("BILLING_CURRENCY", "USD")
	viper.SetDefault("PLAN_PRICES", map[string]string{
		"free":       "0",
		"starter":    "29",
		"pro":        "99",
		"enterprise": "499",
	})
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.WebhookMaxAttempts < 1 {
		return fmt.Errorf("WEBHOOK_MAX_ATTEMPTS must be at least 1")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// LDAPEnabled reports whether directory search has a host to talk to
func (c *Config) LDAPEnabled() bool {
	return c.LDAPHost != ""
}

// GitHubSSOEnabled reports whether GitHub OAuth credentials are present
func (c *Config) GitHubSSOEnabled() bool {
	return c.GitHubClientID != "" && c.GitHubClientSecret != ""
}
