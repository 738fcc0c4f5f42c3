// Package webhook signs and delivers platform events to organization endpoints.
package webhook

import "sort"

// Event names published by the platform
const (
	EventOrganizationUpdated   = "organization.updated"
	EventMemberInvited         = "member.invited"
	EventMemberJoined          = "member.joined"
	EventMemberRoleChanged     = "member.role_changed"
	EventMemberRemoved         = "member.removed"
	EventWidgetCreated         = "widget.created"
	EventWidgetUpdated         = "widget.updated"
	EventWidgetDeleted         = "widget.deleted"
	EventKnowledgeSourceReady  = "knowledge.source_ready"
	EventKnowledgeSourceFailed = "knowledge.source_failed"
	EventWebhookTest           = "webhook.test"

	// EventWildcard subscribes a webhook to every event
	EventWildcard = "*"
)

var knownEvents = map[string]struct{}{
	EventOrganizationUpdated:   {},
	EventMemberInvited:         {},
	EventMemberJoined:          {},
	EventMemberRoleChanged:     {},
	EventMemberRemoved:         {},
	EventWidgetCreated:         {},
	EventWidgetUpdated:         {},
	EventWidgetDeleted:         {},
	EventKnowledgeSourceReady:  {},
	EventKnowledgeSourceFailed: {},
	EventWebhookTest:           {},
}

// IsKnownEvent reports whether name can appear in a webhook subscription
func IsKnownEvent(name string) bool {
	if name == EventWildcard {
		return true
	}
	_, ok := knownEvents[name]
	return ok
}

// KnownEvents lists subscribable event names in sorted order
func KnownEvents() []string {
	out := make([]string, 0, len(knownEvents))
	for name := range knownEvents {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
