package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"widget-admin-backend/internal/database/models"
	apperrors "widget-admin-backend/internal/errors"
	"widget-admin-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	timeFormat      = time.RFC3339
)

// Actor identifies who performs a mutating operation, for audit and permission checks
type Actor struct {
	UserID       uuid.UUID
	Email        string
	IP           string
	UserAgent    string
	IsSuperAdmin bool
}

// SystemActor is used by CLI jobs and background workers
var SystemActor = Actor{Email: "system"}

func paginate(page, pageSize int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	return page, pageSize, (page - 1) * pageSize
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var (
	slugRegex       = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	slugSeparators  = regexp.MustCompile(`[\s_]+`)
	slugDuplicateHy = regexp.MustCompile(`-{2,}`)
)

// NormalizeSlug lowercases s and turns whitespace and underscores into hyphens
func NormalizeSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugSeparators.ReplaceAllString(s, "-")
	s = slugDuplicateHy.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func validSlug(s string) bool {
	return len(s) >= 3 && len(s) <= 50 && slugRegex.MatchString(s)
}

// newToken returns a random URL-safe token and its sha256 hex digest
func newToken() (string, string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", "", err
	}
	token := base64.RawURLEncoding.EncodeToString(b)
	return token, hashToken(token), nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

const publicKeyAlphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

func newPublicKey() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	out := make([]byte, len(b))
	for i, v := range b {
		out[i] = publicKeyAlphabet[int(v)%len(publicKeyAlphabet)]
	}
	return "wgt_" + string(out), nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeFormat)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// requireRole checks the actor holds at least one of roles in the organization
func requireRole(memberships repository.MembershipRepositoryInterface, actor Actor, orgID uuid.UUID, roles ...models.Role) (models.Role, error) {
	if actor.IsSuperAdmin {
		return models.RoleOwner, nil
	}
	m, err := memberships.Get(orgID, actor.UserID)
	if err != nil {
		if isNotFound(err) {
			return "", apperrors.ErrNotAMember
		}
		return "", err
	}
	for _, r := range roles {
		if m.Role == r {
			return m.Role, nil
		}
	}
	return m.Role, apperrors.ErrForbidden
}

func orgIDPtr(id uuid.UUID) *uuid.UUID {
	return &id
}

// truncateBytes cuts s to at most n bytes without splitting a rune
func truncateBytes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
