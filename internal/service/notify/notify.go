// Package notify dispatches submission notifications through the
// configured templated-email provider. Dispatch is best-effort by
// contract: every failure is absorbed into a Result and logged, nothing
// here may fail a submission.
package notify

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/nyaruka/phonenumbers"

	"github.com/talentgate/careers_backend/config"
	"github.com/talentgate/careers_backend/pkg/email"
	"github.com/talentgate/careers_backend/pkg/emailjs"
)

// dateLayout matches the dd/mm/yyyy hh:mm format of the original
// notification emails.
const dateLayout = "02/01/2006 15:04"

// phoneRegion is the default region hint for formatting applicant phone
// numbers in notifications. Formatting is cosmetic; unparseable numbers
// pass through verbatim.
const phoneRegion = "VN"

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// ApplicationNotice is the data handed to the provider for a new
// application.
type ApplicationNotice struct {
	JobID        int
	JobTitle     string
	FullName     string
	Email        string
	Phone        string
	PortfolioURL string
	CoverLetter  string
}

// ContactNotice is the data handed to the provider for a new contact
// message.
type ContactNotice struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Result reports the dispatch outcome. Callers observe it for logging
// only; Success=false must never be surfaced as a submission failure.
type Result struct {
	Success bool
	Err     error
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Dispatcher interface {
	NotifyApplication(ctx context.Context, n ApplicationNotice) Result
	NotifyContact(ctx context.Context, n ContactNotice) Result
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type dispatcher struct {
	cfg     config.NotificationConfig
	emailJS *emailjs.Client
	mailer  *email.Client
	logger  *slog.Logger
	now     func() time.Time
}

func New(cfg config.NotificationConfig, ejs *emailjs.Client, mailer *email.Client, logger *slog.Logger) Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	if !cfg.Configured() {
		logger.Warn("notification provider not configured; submission emails will be skipped",
			"provider", cfg.Provider,
		)
	}
	return &dispatcher{
		cfg:     cfg,
		emailJS: ejs,
		mailer:  mailer,
		logger:  logger,
		now:     time.Now,
	}
}

func (d *dispatcher) NotifyApplication(ctx context.Context, n ApplicationNotice) Result {
	date := d.now().Format(dateLayout)

	var err error
	switch d.cfg.Provider {
	case "emailjs":
		err = d.emailJS.Send(ctx, map[string]any{
			"job_id":           n.JobID,
			"job_title":        n.JobTitle,
			"fullname":         n.FullName,
			"email":            n.Email,
			"phone":            displayPhone(n.Phone),
			"portfolio":        orNA(n.PortfolioURL),
			"coverletter":      n.CoverLetter,
			"application_date": date,
		})
		if err == nil && !d.emailJS.IsEnabled() {
			err = ErrNotConfigured
		}
	case "smtp":
		err = d.mailer.Send(ctx, email.BuildApplicationEmail(email.ApplicationEmailData{
			JobID:           n.JobID,
			JobTitle:        n.JobTitle,
			FullName:        n.FullName,
			Email:           n.Email,
			Phone:           displayPhone(n.Phone),
			PortfolioURL:    n.PortfolioURL,
			CoverLetter:     n.CoverLetter,
			ApplicationDate: date,
			Recipient:       d.cfg.Recipient,
		}))
	default:
		err = ErrNotConfigured
	}

	if err != nil {
		d.logger.Warn("application notification dispatch failed",
			"job_id", n.JobID,
			"provider", d.cfg.Provider,
			"error", err,
		)
		return Result{Success: false, Err: err}
	}
	return Result{Success: true}
}

func (d *dispatcher) NotifyContact(ctx context.Context, n ContactNotice) Result {
	date := d.now().Format(dateLayout)

	var err error
	switch d.cfg.Provider {
	case "emailjs":
		err = d.emailJS.Send(ctx, map[string]any{
			"from_name":    n.Name,
			"from_email":   n.Email,
			"subject":      n.Subject,
			"message":      n.Message,
			"contact_date": date,
		})
		if err == nil && !d.emailJS.IsEnabled() {
			err = ErrNotConfigured
		}
	case "smtp":
		err = d.mailer.Send(ctx, email.BuildContactEmail(email.ContactEmailData{
			Name:        n.Name,
			Email:       n.Email,
			Subject:     n.Subject,
			MessageBody: n.Message,
			ContactDate: date,
			Recipient:   d.cfg.Recipient,
		}))
	default:
		err = ErrNotConfigured
	}

	if err != nil {
		d.logger.Warn("contact notification dispatch failed",
			"provider", d.cfg.Provider,
			"error", err,
		)
		return Result{Success: false, Err: err}
	}
	return Result{Success: true}
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

// displayPhone formats the applicant's phone number for the notification
// when it parses; otherwise the raw value is kept.
func displayPhone(raw string) string {
	num, err := phonenumbers.Parse(raw, phoneRegion)
	if err != nil {
		return raw
	}
	if !phonenumbers.IsValidNumber(num) {
		return raw
	}
	return phonenumbers.Format(num, phonenumbers.INTERNATIONAL)
}
