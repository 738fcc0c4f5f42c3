package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"widget-admin-backend/internal/api/routes"
	"widget-admin-backend/internal/config"
	"widget-admin-backend/internal/database"
	"widget-admin-backend/internal/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var Version = "dev"

type globalFlags struct {
	output     string
	dbAttempts int
}

func main() {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:           "platformctl",
		Short:         "Operations CLI for the widget admin backend",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&flags.output, "output", "o", "json", "Output format (json, yaml)")
	rootCmd.PersistentFlags().IntVar(&flags.dbAttempts, "db-attempts", 30, "Database connection attempts before giving up")

	rootCmd.AddCommand(seedCmd(flags))
	rootCmd.AddCommand(invitationsCmd(flags))
	rootCmd.AddCommand(webhooksCmd(flags))
	rootCmd.AddCommand(knowledgeCmd(flags))
	rootCmd.AddCommand(billingCmd(flags))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// env is what every subcommand needs: configuration, a database and the service graph
type env struct {
	cfg      *config.Config
	db       *gorm.DB
	services *routes.Services
}

func (e *env) Close() {
	if sqlDB, err := e.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func bootstrap(flags *globalFlags) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger.Setup(cfg.LogLevel)

	db, err := connectWithRetry(cfg.DatabaseURL, flags.dbAttempts, time.Second)
	if err != nil {
		return nil, err
	}

	services, err := routes.NewServices(db, cfg, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build services: %w", err)
	}

	return &env{cfg: cfg, db: db, services: services}, nil
}

// connectWithRetry waits for Postgres to accept connections, e.g. right after docker compose up
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	opts := &database.Options{LogLevel: gormlogger.Silent}
	log := logger.Named("platformctl")

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.WithError(err).Warnf("Database not ready (%d/%d)", attempt, maxAttempts)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func printResult(w io.Writer, format string, v interface{}) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(toPlain(v))
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// toPlain round-trips through JSON so yaml output uses the json field names
func toPlain(v interface{}) interface{} {
	raw, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return v
	}
	return out
}
