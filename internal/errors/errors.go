package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this slug"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return e.Message
}

// ConflictError represents a request that conflicts with the current state of a resource
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// GoneError represents a resource that existed but is no longer usable
type GoneError struct {
	Message string
}

func (e *GoneError) Error() string {
	return e.Message
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound    = &NotFoundError{Entity: "organization"}
	ErrUserNotFound            = &NotFoundError{Entity: "user"}
	ErrMembershipNotFound      = &NotFoundError{Entity: "membership"}
	ErrInvitationNotFound      = &NotFoundError{Entity: "invitation"}
	ErrWidgetNotFound          = &NotFoundError{Entity: "widget"}
	ErrLinkRuleNotFound        = &NotFoundError{Entity: "link rule"}
	ErrWebhookNotFound         = &NotFoundError{Entity: "webhook"}
	ErrWebhookDeliveryNotFound = &NotFoundError{Entity: "webhook delivery"}
	ErrSubscriptionNotFound    = &NotFoundError{Entity: "subscription"}
	ErrKnowledgeSourceNotFound = &NotFoundError{Entity: "knowledge source"}
)

// Already Exists Errors
var (
	ErrOrganizationSlugExists = &AlreadyExistsError{Entity: "organization slug"}
	ErrUserExists             = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrMembershipExists       = &AlreadyExistsError{Entity: "member", Context: "in this organization"}
	ErrInvitationExists       = &AlreadyExistsError{Entity: "pending invitation", Context: "for this email"}
	ErrWidgetExists           = &AlreadyExistsError{Entity: "widget", Context: "with this name in the organization"}
	ErrLinkRuleExists         = &AlreadyExistsError{Entity: "link rule", Context: "with this name in the organization"}
	ErrWebhookExists          = &AlreadyExistsError{Entity: "webhook", Context: "with this URL in the organization"}
)

// Business Logic Errors
var (
	ErrLastOwner                = &ValidationError{Message: "cannot remove the last owner"}
	ErrInvalidRole              = &ValidationError{Field: "role", Message: "must be one of owner, admin, member"}
	ErrInvalidPlan              = &ValidationError{Field: "plan", Message: "must be one of free, starter, pro, enterprise"}
	ErrInvalidPattern           = &ValidationError{Field: "pattern", Message: "invalid pattern"}
	ErrInvalidWebhookEvent      = &ValidationError{Field: "events", Message: "unknown event"}
	ErrInvalidWidgetSettings    = &ValidationError{Field: "settings", Message: "invalid widget settings"}
	ErrPasswordRequired         = &ValidationError{Field: "password", Message: "password is required for new accounts"}
	ErrUnsupportedContentType   = &ValidationError{Field: "file", Message: "unsupported content type"}
	ErrInvitationExpired        = &GoneError{Message: "invitation has expired"}
	ErrInvitationNotPending     = &ConflictError{Message: "invitation is no longer pending"}
	ErrInvitationAlreadyUsed    = &ConflictError{Message: "invitation has already been accepted"}
	ErrDeliveryAlreadyRunning   = &ConflictError{Message: "delivery is already in progress"}
	ErrDirectoryNotConfigured   = &ConfigurationError{Message: "directory search is not configured"}
	ErrOAuthProviderUnavailable = &ConfigurationError{Message: "oauth provider is not configured"}
)

// Authentication Errors
var (
	ErrInvalidCredentials  = &AuthenticationError{Message: "invalid email or password"}
	ErrInvalidRefreshToken = &AuthenticationError{Message: "invalid refresh token"}
	ErrRefreshTokenExpired = &AuthenticationError{Message: "refresh token has expired"}
	ErrSSOUserUnknown      = &AuthenticationError{Message: "no account is registered for this email"}
	ErrForbidden           = &AuthorizationError{Message: "insufficient permissions"}
	ErrNotAMember          = &AuthorizationError{Message: "user is not a member of this organization"}
	ErrSuperAdminRequired  = &AuthorizationError{Message: "platform administrator access required"}
	ErrOriginNotAllowed    = &AuthorizationError{Message: "origin is not allowed for this widget"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsGone checks if an error is a GoneError
func IsGone(err error) bool {
	var goneErr *GoneError
	return errors.As(err, &goneErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConflictError creates a new ConflictError
func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
