package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"widget-admin-backend/internal/database/models"
	apperrors "widget-admin-backend/internal/errors"
	"widget-admin-backend/internal/logger"
	"widget-admin-backend/internal/mailer"
	"widget-admin-backend/internal/repository"
	"widget-admin-backend/internal/webhook"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DefaultInvitationTTL is how long an invitation link stays valid
const DefaultInvitationTTL = 7 * 24 * time.Hour

const minPasswordLength = 8

// InvitationService issues and redeems organization invitations
type InvitationService struct {
	invitations   repository.InvitationRepositoryInterface
	organizations repository.OrganizationRepositoryInterface
	users         repository.UserRepositoryInterface
	memberships   repository.MembershipRepositoryInterface
	mailer        Mailer
	audit         AuditRecorder
	events        EventPublisher
	validator     *validator.Validate
	ttl           time.Duration
	acceptURL     string
	now           func() time.Time
}

// InvitationConfig carries invitation settings
type InvitationConfig struct {
	TTL           time.Duration
	PublicBaseURL string
}

// NewInvitationService creates a new invitation service
func NewInvitationService(
	invitations repository.InvitationRepositoryInterface,
	organizations repository.OrganizationRepositoryInterface,
	users repository.UserRepositoryInterface,
	memberships repository.MembershipRepositoryInterface,
	mail Mailer,
	audit AuditRecorder,
	events EventPublisher,
	validator *validator.Validate,
	cfg InvitationConfig,
) *InvitationService {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultInvitationTTL
	}
	return &InvitationService{
		invitations:   invitations,
		organizations: organizations,
		users:         users,
		memberships:   memberships,
		mailer:        mail,
		audit:         audit,
		events:        events,
		validator:     validator,
		ttl:           ttl,
		acceptURL:     strings.TrimRight(cfg.PublicBaseURL, "/") + "/invitations/accept",
		now:           time.Now,
	}
}

// CreateInvitationRequest represents the request to invite someone
type CreateInvitationRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
	Role  string `json:"role,omitempty"`
}

// AcceptInvitationRequest represents the public accept call
type AcceptInvitationRequest struct {
	Token    string `json:"token" validate:"required"`
	FullName string `json:"full_name,omitempty" validate:"omitempty,max=200"`
	Password string `json:"password,omitempty" validate:"omitempty,max=72"`
}

// InvitationResponse represents an invitation without its token
type InvitationResponse struct {
	ID             uuid.UUID  `json:"id"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	Email          string     `json:"email"`
	Role           string     `json:"role"`
	Status         string     `json:"status"`
	InvitedBy      *uuid.UUID `json:"invited_by,omitempty"`
	ExpiresAt      string     `json:"expires_at"`
	AcceptedAt     *string    `json:"accepted_at,omitempty"`
	CreatedAt      string     `json:"created_at"`
}

// InvitationCreatedResponse carries the raw token, which is never shown again
type InvitationCreatedResponse struct {
	Invitation InvitationResponse `json:"invitation"`
	Token      string             `json:"token"`
	AcceptURL  string             `json:"accept_url"`
}

// InvitationListResponse represents a paginated list of invitations
type InvitationListResponse struct {
	Invitations []InvitationResponse `json:"invitations"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// AcceptInvitationResponse describes the membership created by accepting
type AcceptInvitationResponse struct {
	OrganizationID uuid.UUID `json:"organization_id"`
	UserID         uuid.UUID `json:"user_id"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	NewUser        bool      `json:"new_user"`
}

// Create invites an email address into the organization and mails the accept link
func (s *InvitationService) Create(ctx context.Context, actor Actor, orgID uuid.UUID, req *CreateInvitationRequest) (*InvitationCreatedResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	role := models.RoleMember
	if req.Role != "" {
		role = models.Role(req.Role)
	}
	if !role.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}

	actorRole, err := requireRole(s.memberships, actor, orgID, models.RoleOwner, models.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if role == models.RoleOwner && actorRole != models.RoleOwner {
		return nil, apperrors.NewAuthorizationError("only owners can invite owners")
	}

	org, err := s.organizations.GetByID(orgID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	email := normalizeEmail(req.Email)
	now := s.now().UTC()

	if user, err := s.users.GetByEmail(email); err == nil {
		if _, err := s.memberships.Get(orgID, user.ID); err == nil {
			return nil, apperrors.ErrMembershipExists
		} else if !isNotFound(err) {
			return nil, fmt.Errorf("failed to check membership: %w", err)
		}
	} else if !isNotFound(err) {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}

	if _, err := s.invitations.GetPendingByEmail(orgID, email, now); err == nil {
		return nil, apperrors.ErrInvitationExists
	} else if !isNotFound(err) {
		return nil, fmt.Errorf("failed to check pending invitations: %w", err)
	}

	token, hash, err := newToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	inv := &models.Invitation{
		OrganizationID: orgID,
		Email:          email,
		Role:           role,
		TokenHash:      hash,
		Status:         models.InvitationStatusPending,
		ExpiresAt:      now.Add(s.ttl),
	}
	if actor.UserID != uuid.Nil {
		inviter := actor.UserID
		inv.InvitedBy = &inviter
	}
	if err := s.invitations.Create(inv); err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	resp := s.created(ctx, actor, org, inv, token)
	s.audit.Record(actor, orgIDPtr(orgID), "invitation.create", "invitation", inv.ID.String(),
		map[string]string{"email": email, "role": string(role)})
	s.events.Publish(orgID, webhook.EventMemberInvited, resp.Invitation)
	return resp, nil
}

// List returns invitations of an organization, optionally filtered by status
func (s *InvitationService) List(orgID uuid.UUID, status string, page, pageSize int) (*InvitationListResponse, error) {
	page, pageSize, offset := paginate(page, pageSize)

	st := models.InvitationStatus(status)
	switch st {
	case "", models.InvitationStatusPending, models.InvitationStatusAccepted,
		models.InvitationStatusRevoked, models.InvitationStatusExpired:
	default:
		return nil, apperrors.NewValidationError("status", "must be one of pending, accepted, revoked, expired")
	}

	invs, total, err := s.invitations.GetByOrganizationID(orgID, st, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	out := make([]InvitationResponse, len(invs))
	for i := range invs {
		out[i] = invitationToResponse(&invs[i])
	}
	return &InvitationListResponse{Invitations: out, Total: total, Page: page, PageSize: pageSize}, nil
}

// Revoke cancels a pending invitation
func (s *InvitationService) Revoke(actor Actor, orgID, id uuid.UUID) (*InvitationResponse, error) {
	inv, err := s.load(orgID, id)
	if err != nil {
		return nil, err
	}
	if inv.Status != models.InvitationStatusPending {
		return nil, apperrors.ErrInvitationNotPending
	}

	inv.Status = models.InvitationStatusRevoked
	if err := s.invitations.Update(inv); err != nil {
		return nil, fmt.Errorf("failed to revoke invitation: %w", err)
	}

	resp := invitationToResponse(inv)
	s.audit.Record(actor, orgIDPtr(orgID), "invitation.revoke", "invitation", inv.ID.String(), map[string]string{"email": inv.Email})
	return &resp, nil
}

// Resend rotates the token, restarts the expiry window and mails the link again
func (s *InvitationService) Resend(ctx context.Context, actor Actor, orgID, id uuid.UUID) (*InvitationCreatedResponse, error) {
	inv, err := s.load(orgID, id)
	if err != nil {
		return nil, err
	}
	if inv.Status != models.InvitationStatusPending && inv.Status != models.InvitationStatusExpired {
		return nil, apperrors.ErrInvitationNotPending
	}

	org, err := s.organizations.GetByID(orgID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	token, hash, err := newToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	inv.TokenHash = hash
	inv.Status = models.InvitationStatusPending
	inv.ExpiresAt = s.now().UTC().Add(s.ttl)
	if err := s.invitations.Update(inv); err != nil {
		return nil, fmt.Errorf("failed to update invitation: %w", err)
	}

	resp := s.created(ctx, actor, org, inv, token)
	s.audit.Record(actor, orgIDPtr(orgID), "invitation.resend", "invitation", inv.ID.String(), map[string]string{"email": inv.Email})
	return resp, nil
}

// Accept redeems a token: creates the user if needed and the membership, in one transaction
func (s *InvitationService) Accept(ctx context.Context, req *AcceptInvitationRequest, ip, userAgent string) (*AcceptInvitationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	inv, err := s.invitations.GetByTokenHash(hashToken(strings.TrimSpace(req.Token)))
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	now := s.now().UTC()
	switch inv.Status {
	case models.InvitationStatusAccepted:
		return nil, apperrors.ErrInvitationAlreadyUsed
	case models.InvitationStatusRevoked:
		return nil, apperrors.ErrInvitationNotPending
	case models.InvitationStatusExpired:
		return nil, apperrors.ErrInvitationExpired
	}
	if inv.IsExpired(now) {
		inv.Status = models.InvitationStatusExpired
		if err := s.invitations.Update(inv); err != nil {
			logger.WithContext(ctx).WithError(err).WithField("invitation_id", inv.ID).Warn("failed to mark invitation expired")
		}
		return nil, apperrors.ErrInvitationExpired
	}

	user, err := s.users.GetByEmail(inv.Email)
	newUser := false
	switch {
	case err == nil:
	case isNotFound(err):
		if len(req.Password) < minPasswordLength {
			if req.Password == "" {
				return nil, apperrors.ErrPasswordRequired
			}
			return nil, apperrors.NewValidationError("password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		fullName := strings.TrimSpace(req.FullName)
		if fullName == "" {
			fullName, _, _ = strings.Cut(inv.Email, "@")
		}
		user = &models.User{Email: inv.Email, FullName: fullName, PasswordHash: string(hash)}
		newUser = true
	default:
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	membership := &models.Membership{Role: inv.Role}
	if err := s.invitations.Accept(inv, user, membership, now); err != nil {
		if apperrors.IsConflict(err) || apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to accept invitation: %w", err)
	}

	resp := &AcceptInvitationResponse{
		OrganizationID: inv.OrganizationID,
		UserID:         user.ID,
		Email:          user.Email,
		Role:           string(inv.Role),
		NewUser:        newUser,
	}
	actor := Actor{UserID: user.ID, Email: user.Email, IP: ip, UserAgent: userAgent}
	s.audit.Record(actor, orgIDPtr(inv.OrganizationID), "invitation.accept", "invitation", inv.ID.String(),
		map[string]interface{}{"role": inv.Role, "new_user": newUser})
	s.events.Publish(inv.OrganizationID, webhook.EventMemberJoined, resp)
	return resp, nil
}

// ExpireStale marks every pending invitation past its expiry as expired
func (s *InvitationService) ExpireStale() (int64, error) {
	n, err := s.invitations.ExpirePending(s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to expire invitations: %w", err)
	}
	if n > 0 {
		s.audit.Record(SystemActor, nil, "invitation.expire_sweep", "invitation", "", map[string]int64{"expired": n})
	}
	return n, nil
}

func (s *InvitationService) load(orgID, id uuid.UUID) (*models.Invitation, error) {
	inv, err := s.invitations.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}
	if inv.OrganizationID != orgID {
		return nil, apperrors.ErrInvitationNotFound
	}
	return inv, nil
}

func (s *InvitationService) created(ctx context.Context, actor Actor, org *models.Organization, inv *models.Invitation, token string) *InvitationCreatedResponse {
	link := s.acceptURL + "?token=" + url.QueryEscape(token)
	msg := mailer.InvitationMessage(inv.Email, org.Name, actor.Email, string(inv.Role), link, inv.ExpiresAt)
	if err := s.mailer.Send(ctx, msg); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("invitation_id", inv.ID).Error("failed to send invitation email")
	}
	return &InvitationCreatedResponse{
		Invitation: invitationToResponse(inv),
		Token:      token,
		AcceptURL:  link,
	}
}

func invitationToResponse(inv *models.Invitation) InvitationResponse {
	return InvitationResponse{
		ID:             inv.ID,
		OrganizationID: inv.OrganizationID,
		Email:          inv.Email,
		Role:           string(inv.Role),
		Status:         string(inv.Status),
		InvitedBy:      inv.InvitedBy,
		ExpiresAt:      formatTime(inv.ExpiresAt),
		AcceptedAt:     formatTimePtr(inv.AcceptedAt),
		CreatedAt:      formatTime(inv.CreatedAt),
	}
}
