package service

import (
	"errors"
	"fmt"

	"widget-admin-backend/internal/database/models"
	apperrors "widget-admin-backend/internal/errors"
	"widget-admin-backend/internal/repository"
	"widget-admin-backend/internal/webhook"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MemberService handles organization memberships and user profiles
type MemberService struct {
	memberships repository.MembershipRepositoryInterface
	users       repository.UserRepositoryInterface
	audit       AuditRecorder
	events      EventPublisher
	validator   *validator.Validate
}

// NewMemberService creates a new member service
func NewMemberService(
	memberships repository.MembershipRepositoryInterface,
	users repository.UserRepositoryInterface,
	audit AuditRecorder,
	events EventPublisher,
	validator *validator.Validate,
) *MemberService {
	return &MemberService{
		memberships: memberships,
		users:       users,
		audit:       audit,
		events:      events,
		validator:   validator,
	}
}

// ChangeRoleRequest represents the request to change a member's role
type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// MemberResponse represents one member of an organization
type MemberResponse struct {
	UserID         uuid.UUID `json:"user_id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	Role           string    `json:"role"`
	JoinedAt       string    `json:"joined_at"`
}

// MemberListResponse represents a paginated list of members
type MemberListResponse struct {
	Members  []MemberResponse `json:"members"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// ProfileMembership is an organization the current user belongs to
type ProfileMembership struct {
	OrganizationID   uuid.UUID `json:"organization_id"`
	OrganizationName string    `json:"organization_name"`
	OrganizationSlug string    `json:"organization_slug"`
	Role             string    `json:"role"`
}

// ProfileResponse describes the signed-in user
type ProfileResponse struct {
	ID           uuid.UUID           `json:"id"`
	Email        string              `json:"email"`
	FullName     string              `json:"full_name"`
	GitHubLogin  *string             `json:"github_login,omitempty"`
	IsSuperAdmin bool                `json:"is_super_admin"`
	LastLoginAt  *string             `json:"last_login_at,omitempty"`
	Memberships  []ProfileMembership `json:"memberships"`
}

// List returns members of an organization, optionally filtered by email or name
func (s *MemberService) List(orgID uuid.UUID, query string, page, pageSize int) (*MemberListResponse, error) {
	page, pageSize, offset := paginate(page, pageSize)

	members, total, err := s.memberships.GetByOrganizationID(orgID, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	out := make([]MemberResponse, len(members))
	for i := range members {
		out[i] = memberToResponse(&members[i])
	}
	return &MemberListResponse{Members: out, Total: total, Page: page, PageSize: pageSize}, nil
}

// ChangeRole sets a member's role. Only owners may grant or revoke ownership,
// and the last owner cannot be demoted.
func (s *MemberService) ChangeRole(actor Actor, orgID, userID uuid.UUID, req *ChangeRoleRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	role := models.Role(req.Role)
	if !role.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}

	actorRole, err := requireRole(s.memberships, actor, orgID, models.RoleOwner, models.RoleAdmin)
	if err != nil {
		return nil, err
	}

	target, err := s.memberships.Get(orgID, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	if actorRole != models.RoleOwner && (target.Role == models.RoleOwner || role == models.RoleOwner) {
		return nil, apperrors.NewAuthorizationError("only owners can change ownership")
	}
	if target.Role == role {
		resp := memberToResponse(target)
		return &resp, nil
	}
	previous := target.Role

	updated, err := s.memberships.ChangeRole(orgID, userID, role)
	if err != nil {
		if errors.Is(err, apperrors.ErrLastOwner) {
			return nil, apperrors.ErrLastOwner
		}
		if isNotFound(err) {
			return nil, apperrors.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("failed to change role: %w", err)
	}
	updated.User = target.User

	resp := memberToResponse(updated)
	s.audit.Record(actor, orgIDPtr(orgID), "member.role_change", "membership", userID.String(),
		map[string]string{"from": string(previous), "to": string(role)})
	s.events.Publish(orgID, webhook.EventMemberRoleChanged, map[string]interface{}{
		"member":        resp,
		"previous_role": previous,
	})
	return &resp, nil
}

// Remove deletes a membership. Members may always remove themselves; removing
// someone else needs admin rights, and owners can only be removed by owners.
func (s *MemberService) Remove(actor Actor, orgID, userID uuid.UUID) error {
	target, err := s.memberships.Get(orgID, userID)
	if err != nil {
		if isNotFound(err) {
			return apperrors.ErrMembershipNotFound
		}
		return fmt.Errorf("failed to get membership: %w", err)
	}

	self := actor.UserID == userID
	if !self {
		actorRole, err := requireRole(s.memberships, actor, orgID, models.RoleOwner, models.RoleAdmin)
		if err != nil {
			return err
		}
		if target.Role == models.RoleOwner && actorRole != models.RoleOwner {
			return apperrors.NewAuthorizationError("only owners can remove an owner")
		}
	}

	if _, err := s.memberships.Remove(orgID, userID); err != nil {
		if errors.Is(err, apperrors.ErrLastOwner) {
			return apperrors.ErrLastOwner
		}
		if isNotFound(err) {
			return apperrors.ErrMembershipNotFound
		}
		return fmt.Errorf("failed to remove member: %w", err)
	}

	action := "member.remove"
	if self {
		action = "member.leave"
	}
	resp := memberToResponse(target)
	s.audit.Record(actor, orgIDPtr(orgID), action, "membership", userID.String(), map[string]string{"role": string(target.Role)})
	s.events.Publish(orgID, webhook.EventMemberRemoved, resp)
	return nil
}

// Profile returns the user with their memberships
func (s *MemberService) Profile(userID uuid.UUID) (*ProfileResponse, error) {
	user, err := s.users.GetWithMemberships(userID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	resp := &ProfileResponse{
		ID:           user.ID,
		Email:        user.Email,
		FullName:     user.FullName,
		GitHubLogin:  user.GitHubLogin,
		IsSuperAdmin: user.IsSuperAdmin,
		LastLoginAt:  formatTimePtr(user.LastLoginAt),
		Memberships:  make([]ProfileMembership, 0, len(user.Memberships)),
	}
	for _, m := range user.Memberships {
		pm := ProfileMembership{OrganizationID: m.OrganizationID, Role: string(m.Role)}
		if m.Organization != nil {
			pm.OrganizationName = m.Organization.Name
			pm.OrganizationSlug = m.Organization.Slug
		}
		resp.Memberships = append(resp.Memberships, pm)
	}
	return resp, nil
}

// RoleOf returns the user's role in an organization
func (s *MemberService) RoleOf(orgID, userID uuid.UUID) (models.Role, error) {
	m, err := s.memberships.Get(orgID, userID)
	if err != nil {
		if isNotFound(err) {
			return "", apperrors.ErrNotAMember
		}
		return "", fmt.Errorf("failed to get membership: %w", err)
	}
	return m.Role, nil
}

func memberToResponse(m *models.Membership) MemberResponse {
	resp := MemberResponse{
		UserID:         m.UserID,
		OrganizationID: m.OrganizationID,
		Role:           string(m.Role),
		JoinedAt:       formatTime(m.CreatedAt),
	}
	if m.User != nil {
		resp.Email = m.User.Email
		resp.FullName = m.User.FullName
	}
	return resp
}
