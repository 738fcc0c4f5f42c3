package service

import (
	"crypto/tls"
	"fmt"
	"strings"
	"time"

	"widget-admin-backend/internal/config"
	apperrors "widget-admin-backend/internal/errors"

	"github.com/go-ldap/ldap/v3"
)

const maxDirectoryResults = 50

// ErrDirectoryUnavailable wraps failures talking to the directory server
var ErrDirectoryUnavailable = fmt.Errorf("directory server unavailable")

// DirectoryUser represents a subset of LDAP user attributes returned by the search
type DirectoryUser struct {
	DN          string `json:"dn"`
	DisplayName string `json:"display_name"`
	GivenName   string `json:"given_name"`
	SN          string `json:"sn"`
	Name        string `json:"name"`
	Mail        string `json:"mail"`
}

// ldapClient is the part of *ldap.Conn the directory search needs
type ldapClient interface {
	Bind(username, password string) error
	Search(searchRequest *ldap.SearchRequest) (*ldap.SearchResult, error)
	SetTimeout(d time.Duration)
	Close() error
}

var dialLDAP = func(network, addr string, cfg *tls.Config) (ldapClient, error) {
	return ldap.DialTLS(network, addr, cfg)
}

// DirectoryService searches the company directory for people to invite
type DirectoryService struct {
	cfg *config.Config
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(cfg *config.Config) *DirectoryService {
	return &DirectoryService{cfg: cfg}
}

// SearchUsersByCN searches users by common name (cn prefix match)
func (s *DirectoryService) SearchUsersByCN(cn string) ([]DirectoryUser, error) {
	if !s.cfg.LDAPEnabled() {
		return nil, apperrors.ErrDirectoryNotConfigured
	}
	cn = strings.TrimSpace(cn)
	if len(cn) < 2 {
		return nil, apperrors.NewValidationError("cn", "must be at least 2 characters")
	}

	l, err := dialLDAP("tcp", s.cfg.LDAPHost+":"+s.cfg.LDAPPort, &tls.Config{
		ServerName:         s.cfg.LDAPHost,
		InsecureSkipVerify: s.cfg.LDAPInsecureSkipVerify, //nolint:gosec // opt-in for self-signed directory servers
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
	}
	defer l.Close()

	if s.cfg.LDAPTimeoutSec > 0 {
		l.SetTimeout(time.Duration(s.cfg.LDAPTimeoutSec) * time.Second)
	}

	if err := l.Bind(s.cfg.LDAPBindDN, s.cfg.LDAPBindPW); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
	}

	req := ldap.NewSearchRequest(
		s.cfg.LDAPBaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		maxDirectoryResults,
		s.cfg.LDAPTimeoutSec,
		false,
		"(&(objectClass=person)(cn="+ldap.EscapeFilter(cn)+"*))",
		[]string{"displayName", "givenName", "sn", "name", "mail"},
		nil,
	)

	res, err := l.Search(req)
	if err != nil && !ldap.IsErrorWithCode(err, ldap.LDAPResultSizeLimitExceeded) {
		return nil, fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
	}
	if res == nil {
		return []DirectoryUser{}, nil
	}

	out := make([]DirectoryUser, 0, len(res.Entries))
	for _, e := range res.Entries {
		out = append(out, DirectoryUser{
			DN:          e.DN,
			DisplayName: e.GetAttributeValue("displayName"),
			GivenName:   e.GetAttributeValue("givenName"),
			SN:          e.GetAttributeValue("sn"),
			Name:        e.GetAttributeValue("name"),
			Mail:        strings.ToLower(e.GetAttributeValue("mail")),
		})
	}
	return out, nil
}
