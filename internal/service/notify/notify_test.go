package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/talentgate/careers_backend/config"
	"github.com/talentgate/careers_backend/pkg/emailjs"
)

func fixedNow() time.Time {
	return time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC)
}

func TestNotifyApplication_BuildsTemplateParams(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			TemplateParams map[string]any `json:"template_params"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode: %v", err)
		}
		got = req.TemplateParams
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := config.NotificationConfig{
		Provider: "emailjs",
		EmailJS: config.EmailJSConfig{
			ServiceID:  "service_abc",
			TemplateID: "template_xyz",
			PublicKey:  "pk_123",
			BaseURL:    srv.URL,
		},
	}
	d := New(cfg, emailjs.NewFromConfig(cfg.EmailJS), nil, nil).(*dispatcher)
	d.now = fixedNow

	res := d.NotifyApplication(context.Background(), ApplicationNotice{
		JobID:       2,
		JobTitle:    "Content Marketing Specialist",
		FullName:    "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "0912345678",
		CoverLetter: "I would like to apply for this role.",
	})
	if !res.Success {
		t.Fatalf("expected success, got error: %v", res.Err)
	}

	if got["job_title"] != "Content Marketing Specialist" {
		t.Errorf("job_title = %v", got["job_title"])
	}
	if got["fullname"] != "Jane Doe" {
		t.Errorf("fullname = %v", got["fullname"])
	}
	// empty portfolio falls back to a placeholder
	if got["portfolio"] != "N/A" {
		t.Errorf("portfolio = %v, expected N/A", got["portfolio"])
	}
	// server-formatted dd/mm/yyyy hh:mm timestamp
	if got["application_date"] != "29/08/2026 14:30" {
		t.Errorf("application_date = %v", got["application_date"])
	}
}

func TestNotifyApplication_ProviderOutageIsAbsorbed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := config.NotificationConfig{
		Provider: "emailjs",
		EmailJS: config.EmailJSConfig{
			ServiceID:  "service_abc",
			TemplateID: "template_xyz",
			PublicKey:  "pk_123",
			BaseURL:    srv.URL,
		},
	}
	d := New(cfg, emailjs.NewFromConfig(cfg.EmailJS), nil, nil)

	res := d.NotifyApplication(context.Background(), ApplicationNotice{JobID: 1})
	if res.Success {
		t.Error("expected failure result on provider outage")
	}
	if res.Err == nil {
		t.Error("expected failure to carry the provider error")
	}
}

func TestNotify_Unconfigured(t *testing.T) {
	cfg := config.NotificationConfig{}
	d := New(cfg, emailjs.NewFromConfig(cfg.EmailJS), nil, nil)

	res := d.NotifyApplication(context.Background(), ApplicationNotice{JobID: 1})
	if res.Success {
		t.Error("unconfigured dispatcher should report failure")
	}
	if !errors.Is(res.Err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", res.Err)
	}

	res = d.NotifyContact(context.Background(), ContactNotice{Name: "Bob"})
	if res.Success || !errors.Is(res.Err, ErrNotConfigured) {
		t.Errorf("contact dispatch: expected ErrNotConfigured, got %+v", res)
	}
}

func TestNotifyContact_BuildsTemplateParams(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			TemplateParams map[string]any `json:"template_params"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		got = req.TemplateParams
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := config.NotificationConfig{
		Provider: "emailjs",
		EmailJS: config.EmailJSConfig{
			ServiceID:  "service_abc",
			TemplateID: "template_xyz",
			PublicKey:  "pk_123",
			BaseURL:    srv.URL,
		},
	}
	d := New(cfg, emailjs.NewFromConfig(cfg.EmailJS), nil, nil).(*dispatcher)
	d.now = fixedNow

	res := d.NotifyContact(context.Background(), ContactNotice{
		Name:    "Bob",
		Email:   "bob@example.com",
		Subject: "Partnership",
		Message: "Hello there",
	})
	if !res.Success {
		t.Fatalf("expected success, got: %v", res.Err)
	}
	if got["from_name"] != "Bob" || got["from_email"] != "bob@example.com" {
		t.Errorf("sender params: %v", got)
	}
	if got["contact_date"] != "29/08/2026 14:30" {
		t.Errorf("contact_date = %v", got["contact_date"])
	}
}

func TestDisplayPhone(t *testing.T) {
	// valid Vietnamese mobile number gets international formatting
	if got := displayPhone("0912345678"); got == "0912345678" {
		t.Errorf("expected formatted number, got raw %q", got)
	}
	// garbage passes through untouched
	if got := displayPhone("not a phone"); got != "not a phone" {
		t.Errorf("unparseable input should pass through, got %q", got)
	}
}
