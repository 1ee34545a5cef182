// Package wizard implements the multi-step application form state
// machine: step navigation, field collection, resume staging, the
// review/confirm overlay, and the final authoritative submit. It performs
// no I/O of its own; the submitter and country suggester are injected.
package wizard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/talentgate/careers_backend/internal/validate"
)

// Step identifies the wizard page.
type Step int

const (
	StepContact Step = 1 // personal details
	StepResume  Step = 2 // resume upload + cover letter
	StepReview  Step = 3 // confirmation page
)

// resume MIME types accepted via drag and drop.
const (
	mimePDF  = "application/pdf"
	mimeDoc  = "application/msword"
	mimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// FormValues are the fields collected across steps.
type FormValues struct {
	FullName     string
	Email        string
	Phone        string
	PortfolioURL string
	CoverLetter  string
}

// StagedFile is the client-visible resume selection. It is shown on the
// review surface and is not transmitted on submit.
type StagedFile struct {
	Name string
	Size int64
	MIME string
}

// Country is one entry of the selector.
type Country struct {
	Code string
	Name string
}

// defaultCountries matches the selector options of the form.
var defaultCountries = []Country{
	{Code: "us", Name: "United States"},
	{Code: "uk", Name: "United Kingdom"},
	{Code: "ie", Name: "Ireland"},
	{Code: "ca", Name: "Canada"},
	{Code: "au", Name: "Australia"},
	{Code: "vn", Name: "Vietnam"},
	{Code: "sg", Name: "Singapore"},
	{Code: "jp", Name: "Japan"},
}

const defaultCountryCode = "us"

// Submitter performs the authoritative submission.
type Submitter interface {
	SubmitApplication(ctx context.Context, in validate.ApplicationInput) (int, error)
}

// CountrySuggester is the optional geo-IP enrichment. A nil suggester
// simply leaves the default selection.
type CountrySuggester interface {
	SuggestCountry(ctx context.Context) (string, error)
}

// JobContext optionally supplies the job title for the review surface.
type JobContext struct {
	Title string
}

// Wizard is the form state machine. It models a single interactive
// session and is not safe for concurrent use.
type Wizard struct {
	jobID    int
	jobTitle string

	step       Step
	reviewMode bool
	submitted  bool
	inFlight   bool

	values FormValues
	staged *StagedFile

	countries       []Country
	selectedCountry string

	submitter Submitter
	suggester CountrySuggester
	onSuccess func(id int)
	logger    *slog.Logger
}

// Option configures optional wizard collaborators.
type Option func(*Wizard)

func WithCountrySuggester(s CountrySuggester) Option {
	return func(w *Wizard) { w.suggester = s }
}

// WithOnSuccess registers the enclosing page's callback, invoked with the
// new application id after a confirmed submit.
func WithOnSuccess(fn func(id int)) Option {
	return func(w *Wizard) { w.onSuccess = fn }
}

func WithLogger(l *slog.Logger) Option {
	return func(w *Wizard) { w.logger = l }
}

// New builds a wizard for the given job. job may be nil; the title then
// falls back to a placeholder embedding the id.
func New(jobID int, job *JobContext, submitter Submitter, opts ...Option) *Wizard {
	w := &Wizard{
		jobID:           jobID,
		jobTitle:        fmt.Sprintf("Position ID: %d", jobID),
		step:            StepContact,
		countries:       defaultCountries,
		selectedCountry: defaultCountryCode,
		submitter:       submitter,
		logger:          slog.Default(),
	}
	if job != nil && job.Title != "" {
		w.jobTitle = job.Title
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Mount runs the one-shot country suggestion. Lookup failure is logged
// and leaves the default selection; the value is presentational only.
func (w *Wizard) Mount(ctx context.Context) {
	if w.suggester == nil {
		return
	}
	code, err := w.suggester.SuggestCountry(ctx)
	if err != nil {
		w.logger.Debug("could not get country suggestion", "error", err)
		return
	}
	w.selectedCountry = code
}

// --- accessors -------------------------------------------------------------

func (w *Wizard) JobID() int              { return w.jobID }
func (w *Wizard) JobTitle() string        { return w.jobTitle }
func (w *Wizard) Step() Step              { return w.step }
func (w *Wizard) InReviewMode() bool      { return w.reviewMode }
func (w *Wizard) Submitted() bool         { return w.submitted }
func (w *Wizard) Values() FormValues      { return w.values }
func (w *Wizard) StagedFile() *StagedFile { return w.staged }
func (w *Wizard) Countries() []Country    { return w.countries }
func (w *Wizard) SelectedCountry() string { return w.selectedCountry }

// FieldErrors returns the current schema violations keyed by field name.
func (w *Wizard) FieldErrors() map[string]string {
	verr := validate.Application(w.input())
	if verr == nil {
		return map[string]string{}
	}
	return verr.ByField()
}

// --- field setters ---------------------------------------------------------

func (w *Wizard) SetFullName(v string)     { w.values.FullName = v }
func (w *Wizard) SetEmail(v string)        { w.values.Email = v }
func (w *Wizard) SetPhone(v string)        { w.values.Phone = v }
func (w *Wizard) SetPortfolioURL(v string) { w.values.PortfolioURL = v }
func (w *Wizard) SetCoverLetter(v string)  { w.values.CoverLetter = v }

// SelectCountry records a manual selector choice.
func (w *Wizard) SelectCountry(code string) { w.selectedCountry = code }

// --- navigation ------------------------------------------------------------

// GoToStep moves between pages. Leaving the contact step forward is
// refused silently while fullName, email, or phone carry a violation;
// every other transition is unconditional.
func (w *Wizard) GoToStep(s Step) {
	if s < StepContact || s > StepReview {
		return
	}
	if w.reviewMode || w.submitted {
		return
	}
	if w.step == StepContact && s > StepContact && w.stepOneInvalid() {
		return
	}
	w.step = s
}

func (w *Wizard) stepOneInvalid() bool {
	errs := w.FieldErrors()
	for _, field := range []string{"fullName", "email", "phone"} {
		if _, bad := errs[field]; bad {
			return true
		}
	}
	return false
}

// --- file staging ----------------------------------------------------------

// DropFile stages a dragged file. Types outside the accepted resume MIME
// set are silently ignored. A new file replaces the previous one. Size is
// recorded for display only; the advertised 5MB limit is not enforced.
func (w *Wizard) DropFile(name string, size int64, mime string) {
	switch mime {
	case mimePDF, mimeDoc, mimeDocx:
		w.staged = &StagedFile{Name: name, Size: size, MIME: mime}
	}
}

// SelectFile stages a file chosen through the picker. The picker's accept
// filter is advisory, so no MIME check happens here.
func (w *Wizard) SelectFile(name string, size int64, mime string) {
	w.staged = &StagedFile{Name: name, Size: size, MIME: mime}
}

// RemoveFile clears the staged file.
func (w *Wizard) RemoveFile() {
	w.staged = nil
}

// --- review and submit -----------------------------------------------------

// SubmitForm is the step-3 form submission. It does not persist: with a
// valid form it enters review mode; violations leave the state unchanged
// for field-level display.
func (w *Wizard) SubmitForm() {
	if w.step != StepReview || w.reviewMode || w.submitted {
		return
	}
	if validate.Application(w.input()) != nil {
		return
	}
	w.reviewMode = true
}

// Edit leaves review mode, returning to step 3 exactly as left.
func (w *Wizard) Edit() {
	if w.inFlight {
		return
	}
	w.reviewMode = false
}

// Confirm performs the authoritative submit. On success the form values
// and staged file are cleared and the success callback runs. On failure
// the wizard stays in review mode with values intact so nothing is lost.
// A confirm arriving while one is already pending is refused.
func (w *Wizard) Confirm(ctx context.Context) error {
	if !w.reviewMode || w.submitted {
		return ErrNotInReview
	}
	if w.inFlight {
		return ErrSubmitPending
	}
	w.inFlight = true
	defer func() { w.inFlight = false }()

	id, err := w.submitter.SubmitApplication(ctx, w.input())
	if err != nil {
		w.logger.Warn("application submit failed", "job_id", w.jobID, "error", err)
		return err
	}

	w.values = FormValues{}
	w.staged = nil
	w.reviewMode = false
	w.submitted = true

	if w.onSuccess != nil {
		w.onSuccess(id)
	}
	return nil
}

func (w *Wizard) input() validate.ApplicationInput {
	return validate.ApplicationInput{
		JobID:        w.jobID,
		FullName:     w.values.FullName,
		Email:        w.values.Email,
		Phone:        w.values.Phone,
		PortfolioURL: w.values.PortfolioURL,
		CoverLetter:  w.values.CoverLetter,
	}
}

// ReviewSummary is the read-only confirmation surface content.
type ReviewSummary struct {
	JobTitle string
	Values   FormValues
	Staged   *StagedFile
}

// Review snapshots the currently held data for the confirmation screen.
func (w *Wizard) Review() ReviewSummary {
	return ReviewSummary{
		JobTitle: w.jobTitle,
		Values:   w.values,
		Staged:   w.staged,
	}
}
