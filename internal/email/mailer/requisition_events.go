// internal/email/mailer/requisition_events.go
package mailer

import (
	"fmt"

	"github.com/procurehq/reqflow/internal/email"
)

// RequisitionTemplateData contains data shared by the requisition lifecycle emails
type RequisitionTemplateData struct {
	RecipientName    string
	RequisitionTitle string
	SubmitterName    string
	ActorName        string
	TotalFormatted   string
	Comment          string
	RequisitionLink  string
}

// SendRequisitionSubmittedEmail notifies reviewers that a requisition is
// waiting for review.
func SendRequisitionSubmittedEmail(s email.Sender, to string, data RequisitionTemplateData) error {
	emailData := email.EmailData{
		To:           to,
		FromName:     "ReqFlow",
		Subject:      fmt.Sprintf("Requisition awaiting review: %s", data.RequisitionTitle),
		TemplateName: "requisition_submitted",
		TemplateData: data,
	}

	return s.SendEmail(emailData)
}

// SendRequisitionApprovedEmail notifies the submitter of an approval.
func SendRequisitionApprovedEmail(s email.Sender, to string, data RequisitionTemplateData) error {
	emailData := email.EmailData{
		To:           to,
		FromName:     "ReqFlow",
		Subject:      fmt.Sprintf("Requisition approved: %s", data.RequisitionTitle),
		TemplateName: "requisition_approved",
		TemplateData: data,
	}

	return s.SendEmail(emailData)
}

// SendRequisitionRejectedEmail notifies the submitter of a rejection,
// including the reviewer's reason.
func SendRequisitionRejectedEmail(s email.Sender, to string, data RequisitionTemplateData) error {
	emailData := email.EmailData{
		To:           to,
		FromName:     "ReqFlow",
		Subject:      fmt.Sprintf("Requisition rejected: %s", data.RequisitionTitle),
		TemplateName: "requisition_rejected",
		TemplateData: data,
	}

	return s.SendEmail(emailData)
}
