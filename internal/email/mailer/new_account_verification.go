// internal/email/mailer/new_account_verification.go
package mailer

import "github.com/procurehq/reqflow/internal/email"

// VerificationTemplateData contains data for the verification email template
type VerificationTemplateData struct {
	FirstName        string
	VerificationLink string
}

// SendVerificationEmail sends a verification email to the user
func SendVerificationEmail(s email.Sender, to, firstName, verificationLink string) error {
	templateData := VerificationTemplateData{
		FirstName:        firstName,
		VerificationLink: verificationLink,
	}

	emailData := email.EmailData{
		To:           to,
		FromName:     "ReqFlow",
		Subject:      "Welcome to ReqFlow! Please verify your email",
		TemplateName: "new_account_verification",
		TemplateData: templateData,
	}

	return s.SendEmail(emailData)
}
