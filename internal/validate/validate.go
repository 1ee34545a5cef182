// Package validate holds the boundary schemas for application and contact
// submissions. Both the HTTP layer and the application wizard run the same
// rules, so client-side feedback and the authoritative server check cannot
// drift apart.
package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ApplicationInput mirrors the application form payload.
type ApplicationInput struct {
	JobID        int    `json:"jobId" validate:"required"`
	FullName     string `json:"fullName" validate:"required,min=2"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required,min=9"`
	PortfolioURL string `json:"portfolioUrl" validate:"omitempty,url"`
	CoverLetter  string `json:"coverLetter" validate:"required,min=10,max=1000"`
}

// ContactInput mirrors the contact form payload. Subject is a closed set in
// the UI but deliberately not an enum here.
type ContactInput struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required,min=10,max=1000"`
}

// FieldError is one violated constraint with a human-readable reason.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError enumerates every violated field of a payload.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return "Validation error: " + strings.Join(msgs, "; ")
}

// ByField returns the violations keyed by JSON field name.
func (e *ValidationError) ByField() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		if _, seen := out[f.Field]; !seen {
			out[f.Field] = f.Message
		}
	}
	return out
}

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	// report JSON names, not Go struct names
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return val
}

// messages maps field+tag to the reason shown to the user. Unlisted
// combinations fall back to a generic reason.
var messages = map[string]string{
	"jobId.required":        "Job is required",
	"fullName.required":     "Please enter your full name",
	"fullName.min":          "Please enter your full name",
	"email.required":        "Invalid email address",
	"email.email":           "Invalid email address",
	"phone.required":        "Invalid phone number",
	"phone.min":             "Invalid phone number",
	"portfolioUrl.url":      "Portfolio must be a valid URL",
	"coverLetter.required":  "Please provide more detail",
	"coverLetter.min":       "Please provide more detail",
	"coverLetter.max":       "Maximum 1000 characters",
	"name.required":         "Please enter your full name",
	"name.min":              "Please enter your full name",
	"subject.required":      "Please choose a subject",
	"message.required":      "Please enter a message",
	"message.min":           "Please enter a message",
	"message.max":           "Maximum 1000 characters",
}

// Application validates an application payload. Returns nil when valid,
// otherwise a *ValidationError listing every violated field.
func Application(in ApplicationInput) *ValidationError {
	return check(in)
}

// Contact validates a contact payload.
func Contact(in ContactInput) *ValidationError {
	return check(in)
}

func check(in any) *ValidationError {
	err := v.Struct(in)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &ValidationError{Fields: []FieldError{{Field: "", Message: err.Error()}}}
	}

	out := &ValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Message: reason(fe),
		})
	}
	return out
}

func reason(fe validator.FieldError) string {
	if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
