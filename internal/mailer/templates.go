package mailer

import (
	"fmt"
	"strings"
	"time"
)

// InvitationMessage builds the plain-text invite email
func InvitationMessage(to, orgName, inviter, role, acceptURL string, expiresAt time.Time) Message {
	var b strings.Builder
	if inviter != "" {
		fmt.Fprintf(&b, "%s invited you to join %s as %s.\n\n", inviter, orgName, role)
	} else {
		fmt.Fprintf(&b, "You have been invited to join %s as %s.\n\n", orgName, role)
	}
	fmt.Fprintf(&b, "Accept the invitation:\n%s\n\n", acceptURL)
	fmt.Fprintf(&b, "This link expires on %s.\n", expiresAt.UTC().Format("2006-01-02 15:04 MST"))
	return Message{
		To:      to,
		Subject: fmt.Sprintf("You're invited to %s", orgName),
		Body:    b.String(),
	}
}
