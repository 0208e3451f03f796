package utils

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"learnhub/config"
	"learnhub/logger"
	"learnhub/models"
)

// SendEmail delivers an HTML email through SendGrid. A missing API key is a
// no-op so the process runs with zero email configuration.
func SendEmail(toEmail, subject, htmlBody string) error {
	if config.AppConfig.SendgridApiKey == "" {
		logger.Infof("email: no SENDGRID_API_KEY, skipping %q to %s", subject, toEmail)
		return nil
	}

	from := sgmail.NewEmail("LearnHub", config.AppConfig.EmailSender)
	to := sgmail.NewEmail("", toEmail)
	message := sgmail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)
	resp, err := client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// --- Triggers ---

// SendAssetIssueEmail notifies the maintenance contact about a reported
// equipment issue. Fire-and-forget from a goroutine; failures are logged.
func SendAssetIssueEmail(assetID, assetName, description string) {
	to := config.AppConfig.MaintenanceEmail
	if to == "" {
		return
	}
	body := fmt.Sprintf(`
		<h2>Equipment issue reported</h2>
		<p><b>Asset:</b> %s (%s)</p>
		<p><b>Reported issue:</b> %s</p>
		<p>The asset has been moved to Maintenance status.</p>
	`, assetName, assetID, description)
	if err := SendEmail(to, "Equipment issue: "+assetName, body); err != nil {
		logger.Errorf("email: asset issue notification failed: %v", err)
	}
}

// SendBookingConfirmation confirms a lab booking to the student
func SendBookingConfirmation(toEmail string, booking models.Booking, assetName string) {
	if toEmail == "" {
		return
	}
	body := fmt.Sprintf(`
		<h2>Booking confirmed</h2>
		<p><b>Equipment:</b> %s</p>
		<p><b>Date:</b> %s at %s (%d hours)</p>
		<p><b>Purpose:</b> %s</p>
	`, assetName, booking.Date, booking.StartTime, booking.DurationHours, booking.Purpose)
	if err := SendEmail(toEmail, "Your LearnHub booking is confirmed", body); err != nil {
		logger.Errorf("email: booking confirmation failed: %v", err)
	}
}
