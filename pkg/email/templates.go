package email

import (
	"fmt"
	"strings"
)

// ApplicationEmailData carries the fields rendered into the new-application
// notification sent to the recruiting inbox.
type ApplicationEmailData struct {
	JobID           int
	JobTitle        string
	FullName        string
	Email           string
	Phone           string
	PortfolioURL    string
	CoverLetter     string
	ApplicationDate string
	Recipient       string
}

// BuildApplicationEmail creates the new-application notification message.
func BuildApplicationEmail(data ApplicationEmailData) Message {
	portfolio := data.PortfolioURL
	if strings.TrimSpace(portfolio) == "" {
		portfolio = "N/A"
	}

	subject := fmt.Sprintf("New application: %s (%s)", data.JobTitle, data.FullName)

	textBody := fmt.Sprintf(`A new application was submitted.

Position: %s (ID %d)
Name: %s
Email: %s
Phone: %s
Portfolio: %s
Submitted: %s

Cover letter:
%s`,
		data.JobTitle, data.JobID, data.FullName, data.Email, data.Phone, portfolio, data.ApplicationDate, data.CoverLetter)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #25d366;">New application received</h2>
    <table style="border-collapse: collapse; width: 100%%;">
        <tr><td style="padding: 6px 12px 6px 0; color: #6b7280;">Position</td><td style="padding: 6px 0;"><strong>%s</strong> (ID %d)</td></tr>
        <tr><td style="padding: 6px 12px 6px 0; color: #6b7280;">Name</td><td style="padding: 6px 0;">%s</td></tr>
        <tr><td style="padding: 6px 12px 6px 0; color: #6b7280;">Email</td><td style="padding: 6px 0;">%s</td></tr>
        <tr><td style="padding: 6px 12px 6px 0; color: #6b7280;">Phone</td><td style="padding: 6px 0;">%s</td></tr>
        <tr><td style="padding: 6px 12px 6px 0; color: #6b7280;">Portfolio</td><td style="padding: 6px 0;">%s</td></tr>
        <tr><td style="padding: 6px 12px 6px 0; color: #6b7280;">Submitted</td><td style="padding: 6px 0;">%s</td></tr>
    </table>
    <h3 style="margin-top: 24px;">Cover letter</h3>
    <p style="background-color: #f3f4f6; padding: 12px 16px; border-radius: 4px; white-space: pre-wrap;">%s</p>
</body>
</html>`,
		data.JobTitle, data.JobID, data.FullName, data.Email, data.Phone, portfolio, data.ApplicationDate, data.CoverLetter)

	return Message{
		To:       []string{data.Recipient},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// ContactEmailData carries the fields rendered into the new-contact
// notification.
type ContactEmailData struct {
	Name        string
	Email       string
	Subject     string
	MessageBody string
	ContactDate string
	Recipient   string
}

// BuildContactEmail creates the contact-message notification.
func BuildContactEmail(data ContactEmailData) Message {
	subject := fmt.Sprintf("New contact message: %s", data.Subject)

	textBody := fmt.Sprintf(`A new contact message was submitted.

From: %s <%s>
Subject: %s
Submitted: %s

Message:
%s`,
		data.Name, data.Email, data.Subject, data.ContactDate, data.MessageBody)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #25d366;">New contact message</h2>
    <p><strong>From:</strong> %s &lt;%s&gt;</p>
    <p><strong>Subject:</strong> %s</p>
    <p><strong>Submitted:</strong> %s</p>
    <p style="background-color: #f3f4f6; padding: 12px 16px; border-radius: 4px; white-space: pre-wrap;">%s</p>
</body>
</html>`,
		data.Name, data.Email, data.Subject, data.ContactDate, data.MessageBody)

	return Message{
		To:       []string{data.Recipient},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
