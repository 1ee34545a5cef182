package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/talentgate/careers_backend/config"
	"github.com/talentgate/careers_backend/internal/service/application"
	"github.com/talentgate/careers_backend/internal/service/contact"
	"github.com/talentgate/careers_backend/internal/service/job"
	"github.com/talentgate/careers_backend/internal/service/location"
	"github.com/talentgate/careers_backend/internal/service/notify"
	"github.com/talentgate/careers_backend/internal/store"
)

// silentDispatcher reports a provider outage for every notice. Handlers
// must never surface that to the client.
type silentDispatcher struct{}

func (silentDispatcher) NotifyApplication(ctx context.Context, n notify.ApplicationNotice) notify.Result {
	return notify.Result{Success: false, Err: notify.ErrNotConfigured}
}

func (silentDispatcher) NotifyContact(ctx context.Context, n notify.ContactNotice) notify.Result {
	return notify.Result{Success: false, Err: notify.ErrNotConfigured}
}

func newTestApp(t *testing.T) (*fiber.App, store.Storage) {
	t.Helper()
	st := store.NewMemStorage()
	disp := silentDispatcher{}

	app := fiber.New()
	api := app.Group("/api")

	jobH := NewJobHandler(job.New(st))
	applicationH := NewApplicationHandler(application.New(st, disp, nil))
	contactH := NewContactHandler(contact.New(st, disp, nil))
	locationH := NewLocationHandler(location.New(config.LocationConfig{}))

	api.Get("/jobs", jobH.List)
	api.Get("/jobs/:id", jobH.Get)
	api.Post("/applications", applicationH.Submit)
	api.Post("/contact", contactH.Submit)
	api.Get("/location", locationH.Get)

	return app, st
}

func decode(t *testing.T, body io.Reader, out any) {
	t.Helper()
	if err := json.NewDecoder(body).Decode(out); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
}

func TestListJobs(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/jobs", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var jobs []store.Job
	decode(t, resp.Body, &jobs)
	if len(jobs) != 3 {
		t.Fatalf("expected the 3 seeded jobs, got %d", len(jobs))
	}
	if jobs[0].ID != 1 || jobs[0].Title != "Digital Marketing Manager" {
		t.Errorf("first job = %+v", jobs[0])
	}
}

func TestGetJob(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/jobs/2", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var j store.Job
	decode(t, resp.Body, &j)
	if j.ID != 2 {
		t.Errorf("job id = %d", j.ID)
	}
}

func TestGetJob_NotFound(t *testing.T) {
	app, _ := newTestApp(t)

	for _, path := range []string{"/api/jobs/9999", "/api/jobs/abc"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != fiber.StatusNotFound {
			t.Errorf("%s: status = %d, expected 404", path, resp.StatusCode)
		}
		var body struct {
			Message string `json:"message"`
		}
		decode(t, resp.Body, &body)
		if body.Message != "Job not found" {
			t.Errorf("%s: message = %q", path, body.Message)
		}
	}
}

func TestSubmitApplication(t *testing.T) {
	app, _ := newTestApp(t)

	payload, _ := json.Marshal(map[string]any{
		"jobId":       1,
		"fullName":    "Jane Doe",
		"email":       "jane@example.com",
		"phone":       "0123456789",
		"coverLetter": "I have five years of relevant experience.",
	})
	req := httptest.NewRequest("POST", "/api/applications", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, expected 201", resp.StatusCode)
	}

	var body struct {
		Message string `json:"message"`
		ID      int    `json:"id"`
	}
	decode(t, resp.Body, &body)
	if body.Message != "Application submitted successfully" {
		t.Errorf("message = %q", body.Message)
	}
	if body.ID != 1 {
		t.Errorf("id = %d, expected 1", body.ID)
	}
}

func TestSubmitApplication_ValidationError(t *testing.T) {
	app, st := newTestApp(t)

	payload, _ := json.Marshal(map[string]any{
		"jobId":       1,
		"fullName":    "J",
		"email":       "not-an-email",
		"phone":       "0123456789",
		"coverLetter": "I have five years of relevant experience.",
	})
	req := httptest.NewRequest("POST", "/api/applications", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, expected 400", resp.StatusCode)
	}

	var body struct {
		Message string `json:"message"`
	}
	decode(t, resp.Body, &body)
	if !strings.HasPrefix(body.Message, "Validation error:") {
		t.Errorf("message = %q", body.Message)
	}

	// rejected payload must not consume an id
	if id := st.CreateApplication(store.Application{JobID: 1}); id != 1 {
		t.Errorf("store was touched by a rejected payload, next id = %d", id)
	}
}

func TestSubmitContact(t *testing.T) {
	app, _ := newTestApp(t)

	payload, _ := json.Marshal(map[string]any{
		"name":    "John Smith",
		"email":   "john@example.com",
		"subject": "Partnership inquiry",
		"message": "We would like to discuss a collaboration.",
	})
	req := httptest.NewRequest("POST", "/api/contact", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, expected 201", resp.StatusCode)
	}

	var body struct {
		Message string `json:"message"`
		ID      int    `json:"id"`
	}
	decode(t, resp.Body, &body)
	if body.Message != "Message sent successfully" {
		t.Errorf("message = %q", body.Message)
	}
	if body.ID != 1 {
		t.Errorf("id = %d, expected 1", body.ID)
	}
}

func TestSubmitContact_ValidationError(t *testing.T) {
	app, _ := newTestApp(t)

	payload, _ := json.Marshal(map[string]any{
		"name":    "John Smith",
		"email":   "john@example.com",
		"subject": "",
		"message": "short",
	})
	req := httptest.NewRequest("POST", "/api/contact", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, expected 400", resp.StatusCode)
	}
}

func TestGetLocation(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("GET", "/api/location", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.5, 70.41.3.18")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var body struct {
		Location string `json:"location"`
		IP       string `json:"ip"`
	}
	decode(t, resp.Body, &body)
	if body.IP != "203.0.113.5" {
		t.Errorf("proxy chain not sanitized, ip = %q", body.IP)
	}
	if body.Location == "" {
		t.Error("location must always be populated")
	}
}
