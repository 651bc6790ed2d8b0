package smtp

import (
	"fmt"
	"net/smtp"

	"bimar-service/internal/app/contracts"
	"bimar-service/internal/app/drivers/mailer"
	"bimar-service/internal/app/models"
	"bimar-service/internal/pkg/constvars"
	"bimar-service/internal/pkg/exceptions"
)

type smtpService struct {
	client *mailer.SMTPClient
}

func NewSMTPService(client *mailer.SMTPClient) contracts.SMTPService {
	return &smtpService{client: client}
}

func (s *smtpService) Send(intent *models.NotificationIntent) error {
	subject, body := renderIntent(intent)
	msg := []byte(fmt.Sprintf(constvars.EmailSendBasicEmailSubjectFormat, intent.RecipientEmail, subject, body))
	addr := fmt.Sprintf("%s:%d", s.client.Host, s.client.Port)

	err := smtp.SendMail(addr, s.client.Auth, s.client.EmailSender, []string{intent.RecipientEmail}, msg)
	if err != nil {
		return exceptions.ErrSMTPSendEmail(err, s.client.Host)
	}
	return nil
}

func renderIntent(intent *models.NotificationIntent) (subject, body string) {
	name, _ := intent.TemplateData["name"].(string)

	switch intent.Kind {
	case constvars.NotificationKindDoctorRegistered:
		subject = constvars.EmailSubjectDoctorRegistered
		body = fmt.Sprintf("Dear Dr. %s,\n\nThank you for registering with Bimar. Your application is under review and you will be notified once a decision is made.", name)
	case constvars.NotificationKindDoctorActivated:
		subject = constvars.EmailSubjectDoctorActivated
		body = fmt.Sprintf("Dear Dr. %s,\n\nYour account has been activated. You can now log in and start using Bimar.", name)
	case constvars.NotificationKindDoctorRejected:
		reason, _ := intent.TemplateData["reason"].(string)
		subject = constvars.EmailSubjectDoctorRejected
		body = fmt.Sprintf("Dear Dr. %s,\n\nYour application has been rejected.\nReason: %s\n\nYou may review your submission and apply again.", name, reason)
	case constvars.NotificationKindDoctorBanned:
		subject = constvars.EmailSubjectDoctorBanned
		body = fmt.Sprintf("Dear Dr. %s,\n\nYour account has been permanently banned from Bimar.", name)
	case constvars.NotificationKindDoctorSuspended:
		reason, _ := intent.TemplateData["reason"].(string)
		endDate, _ := intent.TemplateData["endDate"].(string)
		subject = constvars.EmailSubjectDoctorSuspended
		body = fmt.Sprintf("Dear Dr. %s,\n\nYour account has been suspended until %s.\nReason: %s", name, endDate, reason)
	case constvars.NotificationKindPasswordResetOTP:
		otp, _ := intent.TemplateData["otp"].(string)
		subject = constvars.EmailSubjectPasswordResetOTP
		body = fmt.Sprintf("Your password reset code is: %s\n\nThe code expires shortly. If you did not request a reset, ignore this email.", otp)
	default:
		subject = "Bimar Notification"
		body = fmt.Sprintf("Dear %s,\n\nYou have a new notification from Bimar.", name)
	}
	return subject, body
}
