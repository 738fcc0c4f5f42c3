// Package linkrules turns an organization's link rules into compiled matchers
// that pick link cards for visitor chat messages.
package linkrules

import (
	"fmt"
	"regexp"
	"sort"
	"sync"

	"widget-admin-backend/internal/database/models"

	"github.com/google/uuid"
)

// MaxPatternLength bounds the regex source accepted for a rule
const MaxPatternLength = 500

// DefaultMaxCards is used when a Matcher is built with a non-positive limit
const DefaultMaxCards = 3

// Card is the link card shown under a visitor message
type Card struct {
	RuleID      uuid.UUID `json:"rule_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"image_url,omitempty"`
}

// RuleSource loads the active rules of an organization in evaluation order
type RuleSource interface {
	GetActiveByOrganizationID(orgID uuid.UUID) ([]models.LinkRule, error)
}

type compiledRule struct {
	rule models.LinkRule
	re   *regexp.Regexp
}

// Compile validates and compiles a rule pattern
func Compile(pattern string, caseSensitive bool) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, fmt.Errorf("pattern is empty")
	}
	if len(pattern) > MaxPatternLength {
		return nil, fmt.Errorf("pattern exceeds %d characters", MaxPatternLength)
	}
	if !caseSensitive {
		pattern = "(?i)" + pattern
	}
	return regexp.Compile(pattern)
}

// Matcher caches compiled rule sets per organization
type Matcher struct {
	source   RuleSource
	maxCards int

	mu    sync.RWMutex
	cache map[uuid.UUID][]compiledRule
	// gen counts invalidations per organization; a load only fills the
	// cache when no invalidation happened while it ran
	gen map[uuid.UUID]uint64
}

// NewMatcher creates a matcher backed by source
func NewMatcher(source RuleSource, maxCards int) *Matcher {
	if maxCards <= 0 {
		maxCards = DefaultMaxCards
	}
	return &Matcher{
		source:   source,
		maxCards: maxCards,
		cache:    make(map[uuid.UUID][]compiledRule),
		gen:      make(map[uuid.UUID]uint64),
	}
}

// Invalidate drops the cached rule set of an organization
func (m *Matcher) Invalidate(orgID uuid.UUID) {
	m.mu.Lock()
	delete(m.cache, orgID)
	m.gen[orgID]++
	m.mu.Unlock()
}

// Match returns the cards for a message sent through widgetID. Rules bound to
// another widget are skipped.
func (m *Matcher) Match(orgID, widgetID uuid.UUID, message string) ([]Card, error) {
	rules, err := m.rules(orgID)
	if err != nil {
		return nil, err
	}
	return evaluate(rules, widgetID, message, m.maxCards), nil
}

// MatchRules evaluates an uncached rule set, used when testing rules before saving them
func MatchRules(rules []models.LinkRule, message string, maxCards int) ([]Card, error) {
	if maxCards <= 0 {
		maxCards = DefaultMaxCards
	}
	compiled, err := compileAll(rules)
	if err != nil {
		return nil, err
	}
	return evaluate(compiled, uuid.Nil, message, maxCards), nil
}

func (m *Matcher) rules(orgID uuid.UUID) ([]compiledRule, error) {
	m.mu.RLock()
	rules, ok := m.cache[orgID]
	gen := m.gen[orgID]
	m.mu.RUnlock()
	if ok {
		return rules, nil
	}

	loaded, err := m.source.GetActiveByOrganizationID(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to load link rules: %w", err)
	}
	compiled, err := compileAll(loaded)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	if m.gen[orgID] == gen {
		m.cache[orgID] = compiled
	}
	m.mu.Unlock()
	return compiled, nil
}

func compileAll(rules []models.LinkRule) ([]compiledRule, error) {
	sorted := make([]models.LinkRule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Priority != sorted[j].Priority {
			return sorted[i].Priority < sorted[j].Priority
		}
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	compiled := make([]compiledRule, 0, len(sorted))
	for _, rule := range sorted {
		if !rule.IsActive {
			continue
		}
		re, err := Compile(rule.Pattern, rule.CaseSensitive)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", rule.ID, err)
		}
		compiled = append(compiled, compiledRule{rule: rule, re: re})
	}
	return compiled, nil
}

func evaluate(rules []compiledRule, widgetID uuid.UUID, message string, maxCards int) []Card {
	cards := make([]Card, 0, maxCards)
	seen := make(map[string]struct{})
	for _, cr := range rules {
		if len(cards) >= maxCards {
			break
		}
		if cr.rule.WidgetID != nil && widgetID != uuid.Nil && *cr.rule.WidgetID != widgetID {
			continue
		}
		if !cr.re.MatchString(message) {
			continue
		}
		if _, dup := seen[cr.rule.CardURL]; dup {
			continue
		}
		seen[cr.rule.CardURL] = struct{}{}
		cards = append(cards, Card{
			RuleID:      cr.rule.ID,
			Title:       cr.rule.CardTitle,
			Description: cr.rule.CardDescription,
			URL:         cr.rule.CardURL,
			ImageURL:    cr.rule.CardImageURL,
		})
	}
	return cards
}
