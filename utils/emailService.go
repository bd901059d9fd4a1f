package utils

import (
	"fmt"
	"lms/config"
	"log"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail delivers a message through SendGrid. When no API key is configured
// the message is logged instead so local setups keep working.
func SendEmail(toEmail, toName, subject, htmlBody string) error {
	if config.AppConfig.SendgridApiKey == "" {
		log.Printf("--- Email (console) ---\nTo: %s <%s>\nSubject: %s\n", toName, toEmail, subject)
		return nil
	}

	from := mail.NewEmail("LMS", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 300 {
		log.Printf("Email to %s rejected with status %d", toEmail, resp.StatusCode)
		return fmt.Errorf("email rejected with status %d", resp.StatusCode)
	}
	return nil
}

// getEmailTemplate wraps body content in the shared HTML layout
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #005EB8; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1e293b; line-height: 1.6; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #87C232; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>LEARNING PORTAL</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				You are receiving this email because an account was created or updated for you.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendWelcomeEmail notifies a newly admitted student of their account
func SendWelcomeEmail(email, name, tempPassword string) {
	subject := "Welcome to the Learning Portal"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>An account has been created for you on the learning portal.</p>
		<div class="info-box">
			<strong>Email:</strong> %s<br>
			<strong>Temporary Password:</strong> %s
		</div>
		<p>Please log in and change your password as soon as possible.</p>
	`, name, email, tempPassword)

	go SendEmail(email, name, subject, getEmailTemplate("Welcome Onboard!", body))
}

// SendEnrollmentEmail confirms an enrollment to the student
func SendEnrollmentEmail(email, name, courseTitle string) {
	subject := "Course Enrollment Confirmation"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have been enrolled in <strong>%s</strong>.</p>
		<p>You can now access the course content from your dashboard.</p>
	`, name, courseTitle)

	go SendEmail(email, name, subject, getEmailTemplate("Enrollment Successful", body))
}

// SendTrialReminderEmail warns a student their trial access is about to expire
func SendTrialReminderEmail(email, name, courseTitle string, expiresAt time.Time) {
	subject := "Your trial access is expiring soon: " + courseTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your trial access to <strong>%s</strong> expires on <strong>%s</strong>.</p>
		<div class="info-box">
			Upgrade to a paid enrollment to keep lifetime access to the course.
		</div>
	`, name, courseTitle, expiresAt.Format("January 2, 2006"))

	go SendEmail(email, name, subject, getEmailTemplate("Trial Expiring Soon", body))
}
