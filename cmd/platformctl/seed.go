package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"widget-admin-backend/internal/database/models"
	apperrors "widget-admin-backend/internal/errors"
	"widget-admin-backend/internal/logger"
	"widget-admin-backend/internal/service"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// SeedFile is the YAML document accepted by `platformctl seed`
type SeedFile struct {
	Users         []UserData         `yaml:"users"`
	Organizations []OrganizationData `yaml:"organizations"`
}

type UserData struct {
	Email      string `yaml:"email"`
	FullName   string `yaml:"full_name"`
	Password   string `yaml:"password,omitempty"`
	SuperAdmin bool   `yaml:"super_admin,omitempty"`
}

type OrganizationData struct {
	Name         string                 `yaml:"name"`
	Slug         string                 `yaml:"slug"`
	Plan         string                 `yaml:"plan,omitempty"`
	Interval     string                 `yaml:"interval,omitempty"`
	BillingEmail string                 `yaml:"billing_email,omitempty"`
	Metadata     map[string]interface{} `yaml:"metadata,omitempty"`
	Members      []MemberData           `yaml:"members"`
	Widgets      []WidgetData           `yaml:"widgets,omitempty"`
	LinkRules    []LinkRuleData         `yaml:"link_rules,omitempty"`
}

type MemberData struct {
	Email string `yaml:"email"`
	Role  string `yaml:"role"`
}

type WidgetData struct {
	Name           string                 `yaml:"name"`
	AllowedOrigins []string               `yaml:"allowed_origins,omitempty"`
	Settings       map[string]interface{} `yaml:"settings,omitempty"`
}

type LinkRuleData struct {
	Name            string `yaml:"name"`
	Widget          string `yaml:"widget,omitempty"`
	Pattern         string `yaml:"pattern"`
	CaseSensitive   bool   `yaml:"case_sensitive,omitempty"`
	Priority        int    `yaml:"priority,omitempty"`
	CardTitle       string `yaml:"card_title"`
	CardDescription string `yaml:"card_description,omitempty"`
	CardURL         string `yaml:"card_url"`
	CardImageURL    string `yaml:"card_image_url,omitempty"`
}

// SeedReport counts what a seed run created; existing rows are left untouched
type SeedReport struct {
	Users         int `json:"users"`
	Organizations int `json:"organizations"`
	Members       int `json:"members"`
	Widgets       int `json:"widgets"`
	LinkRules     int `json:"link_rules"`
	Skipped       int `json:"skipped"`
}

func seedCmd(flags *globalFlags) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load users, organizations, widgets and link rules from a YAML file",
		Long: `Loads a YAML seed file. Users are matched by email and organizations by slug;
rows that already exist are skipped, so the command can be re-run safely.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := readSeedFile(file)
			if err != nil {
				return err
			}

			e, err := bootstrap(flags)
			if err != nil {
				return err
			}
			defer e.Close()

			report, err := (&seeder{env: e}).run(seed)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), flags.output, report)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "scripts/data/seed.yaml", "Seed file")

	return cmd
}

func readSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return &seed, nil
}

type seeder struct {
	env    *env
	report SeedReport
}

func (s *seeder) run(seed *SeedFile) (*SeedReport, error) {
	log := logger.Named("seed")

	users := make(map[string]*models.User, len(seed.Users))
	for _, u := range seed.Users {
		user, err := s.ensureUser(u)
		if err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", u.Email, err)
		}
		users[strings.ToLower(u.Email)] = user
	}

	for _, org := range seed.Organizations {
		if err := s.seedOrganization(org, users); err != nil {
			if errors.Is(err, apperrors.ErrOrganizationSlugExists) {
				log.WithField("slug", org.Slug).Info("Organization exists, skipping")
				s.report.Skipped++
				continue
			}
			return nil, fmt.Errorf("failed to seed organization %s: %w", org.Slug, err)
		}
	}

	log.WithFields(map[string]interface{}{
		"users":         s.report.Users,
		"organizations": s.report.Organizations,
		"widgets":       s.report.Widgets,
		"link_rules":    s.report.LinkRules,
	}).Info("Seed complete")
	return &s.report, nil
}

func (s *seeder) ensureUser(data UserData) (*models.User, error) {
	repo := s.env.services.Repositories.Users
	email := strings.ToLower(strings.TrimSpace(data.Email))

	existing, err := repo.GetByEmail(email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		FullName:     data.FullName,
		IsSuperAdmin: data.SuperAdmin,
	}
	if data.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if err := repo.Create(user); err != nil {
		return nil, err
	}
	s.report.Users++
	return user, nil
}

func (s *seeder) seedOrganization(data OrganizationData, users map[string]*models.User) error {
	services := s.env.services

	owner, members, err := splitOwner(data, users)
	if err != nil {
		return err
	}
	actor := service.Actor{UserID: owner.ID, Email: owner.Email, UserAgent: "platformctl"}

	var metadata json.RawMessage
	if len(data.Metadata) > 0 {
		if metadata, err = json.Marshal(data.Metadata); err != nil {
			return fmt.Errorf("invalid metadata: %w", err)
		}
	}

	org, err := services.Organizations.Create(actor, &service.CreateOrganizationRequest{
		Name:         data.Name,
		Slug:         data.Slug,
		BillingEmail: data.BillingEmail,
		Metadata:     metadata,
	})
	if err != nil {
		return err
	}
	s.report.Organizations++

	for _, m := range members {
		if err := services.Repositories.Memberships.Create(&models.Membership{
			OrganizationID: org.ID,
			UserID:         m.user.ID,
			Role:           m.role,
		}); err != nil {
			return fmt.Errorf("failed to add member %s: %w", m.user.Email, err)
		}
		s.report.Members++
	}

	if data.Plan != "" && data.Plan != string(models.PlanFree) {
		if _, err := services.Organizations.ChangePlan(actor, org.ID, &service.ChangePlanRequest{
			Plan:     data.Plan,
			Interval: data.Interval,
		}); err != nil {
			return fmt.Errorf("failed to set plan: %w", err)
		}
	}

	widgets := make(map[string]uuid.UUID, len(data.Widgets))
	for _, w := range data.Widgets {
		var settings json.RawMessage
		if len(w.Settings) > 0 {
			if settings, err = json.Marshal(w.Settings); err != nil {
				return fmt.Errorf("invalid settings for widget %s: %w", w.Name, err)
			}
		}
		widget, err := services.Widgets.Create(actor, org.ID, &service.CreateWidgetRequest{
			Name:           w.Name,
			AllowedOrigins: w.AllowedOrigins,
			Settings:       settings,
		})
		if err != nil {
			return fmt.Errorf("failed to create widget %s: %w", w.Name, err)
		}
		widgets[w.Name] = widget.ID
		s.report.Widgets++
	}

	for _, r := range data.LinkRules {
		req := &service.LinkRuleRequest{
			Name:            r.Name,
			Pattern:         r.Pattern,
			CaseSensitive:   r.CaseSensitive,
			CardTitle:       r.CardTitle,
			CardDescription: r.CardDescription,
			CardURL:         r.CardURL,
			CardImageURL:    r.CardImageURL,
		}
		if r.Priority > 0 {
			priority := r.Priority
			req.Priority = &priority
		}
		if r.Widget != "" {
			id, ok := widgets[r.Widget]
			if !ok {
				return fmt.Errorf("link rule %s references unknown widget %s", r.Name, r.Widget)
			}
			req.WidgetID = &id
		}
		if _, err := services.LinkRules.Create(actor, org.ID, req); err != nil {
			return fmt.Errorf("failed to create link rule %s: %w", r.Name, err)
		}
		s.report.LinkRules++
	}

	return nil
}

type seedMember struct {
	user *models.User
	role models.Role
}

// splitOwner picks the first owner listed as the creating actor; the rest are added directly
func splitOwner(data OrganizationData, users map[string]*models.User) (*models.User, []seedMember, error) {
	var (
		owner   *models.User
		members []seedMember
	)
	for _, m := range data.Members {
		user := users[strings.ToLower(strings.TrimSpace(m.Email))]
		if user == nil {
			return nil, nil, fmt.Errorf("member %s is not listed under users", m.Email)
		}
		role := models.Role(strings.ToLower(m.Role))
		if role == "" {
			role = models.RoleMember
		}
		if !role.IsValid() {
			return nil, nil, fmt.Errorf("member %s: %w", m.Email, apperrors.ErrInvalidRole)
		}
		if role == models.RoleOwner && owner == nil {
			owner = user
			continue
		}
		members = append(members, seedMember{user: user, role: role})
	}
	if owner == nil {
		return nil, nil, fmt.Errorf("organization %s needs at least one owner", data.Slug)
	}
	return owner, members, nil
}
