// internal/email/mailer/org_invitation.go
package mailer

import (
	"fmt"

	"github.com/procurehq/reqflow/internal/email"
)

// InvitationTemplateData contains data for the organization invitation template
type InvitationTemplateData struct {
	FirstName        string
	OrganizationName string
	InviterName      string
	Role             string
	AcceptLink       string
}

// SendOrgInvitationEmail invites a user into an organization with a given role
func SendOrgInvitationEmail(s email.Sender, to string, data InvitationTemplateData) error {
	emailData := email.EmailData{
		To:           to,
		FromName:     "ReqFlow",
		Subject:      fmt.Sprintf("You've been invited to join %s on ReqFlow", data.OrganizationName),
		TemplateName: "org_invitation",
		TemplateData: data,
	}

	return s.SendEmail(emailData)
}
