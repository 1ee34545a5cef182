package store

import (
	"testing"
	"time"
)

func TestListJobs_SeededInOrder(t *testing.T) {
	s := NewMemStorage()

	jobs := s.ListJobs()
	if len(jobs) != 3 {
		t.Fatalf("expected 3 seeded jobs, got %d", len(jobs))
	}
	for i, job := range jobs {
		if job.ID != i+1 {
			t.Errorf("job at index %d has id %d, expected %d", i, job.ID, i+1)
		}
	}
}

func TestGetJob(t *testing.T) {
	s := NewMemStorage()

	job, ok := s.GetJob(1)
	if !ok {
		t.Fatal("expected job 1 to exist")
	}
	if job.Title != "Digital Marketing Manager" {
		t.Errorf("unexpected title: %q", job.Title)
	}
	if job.Location != "Austin, Texas, USA" {
		t.Errorf("unexpected location: %q", job.Location)
	}
	if len(job.Description) == 0 || len(job.Requirements) == 0 || len(job.Benefits) == 0 {
		t.Error("seeded job should carry description, requirements, and benefits")
	}

	if _, ok := s.GetJob(9999); ok {
		t.Error("expected job 9999 to be absent")
	}
}

func TestCreateApplication_SequentialIDs(t *testing.T) {
	s := NewMemStorage()

	for want := 1; want <= 5; want++ {
		got := s.CreateApplication(Application{
			JobID:       1,
			FullName:    "Jane Doe",
			Email:       "jane@example.com",
			Phone:       "123456789",
			CoverLetter: "I would like to apply.",
		})
		if got != want {
			t.Fatalf("expected id %d, got %d", want, got)
		}
	}
}

func TestCreateApplication_StampsCreatedAt(t *testing.T) {
	s := NewMemStorage()
	s.now = func() string { return "2026-01-02T03:04:05Z" }

	id := s.CreateApplication(Application{
		JobID: 2,
		// caller-supplied createdAt must be overwritten
		CreatedAt: "1999-01-01T00:00:00Z",
	})

	s.mu.Lock()
	stored := s.applications[id]
	s.mu.Unlock()

	if stored.CreatedAt != "2026-01-02T03:04:05Z" {
		t.Errorf("createdAt = %q, expected server-assigned timestamp", stored.CreatedAt)
	}
}

func TestCreateContactMessage_IndependentCounter(t *testing.T) {
	s := NewMemStorage()

	if id := s.CreateApplication(Application{JobID: 1}); id != 1 {
		t.Fatalf("first application id = %d", id)
	}
	if id := s.CreateApplication(Application{JobID: 1}); id != 2 {
		t.Fatalf("second application id = %d", id)
	}

	// contact counter must not be advanced by applications
	if id := s.CreateContactMessage(ContactMessage{Name: "Bob"}); id != 1 {
		t.Fatalf("first contact id = %d", id)
	}
	if id := s.CreateContactMessage(ContactMessage{Name: "Eve"}); id != 2 {
		t.Fatalf("second contact id = %d", id)
	}
}

func TestFreshStoreResetsCounters(t *testing.T) {
	s := NewMemStorage()
	s.CreateApplication(Application{JobID: 1})
	s.CreateApplication(Application{JobID: 1})

	// a new instance models a process restart
	s2 := NewMemStorage()
	if id := s2.CreateApplication(Application{JobID: 1}); id != 1 {
		t.Errorf("fresh store first id = %d, expected 1", id)
	}
	if len(s2.ListJobs()) != 3 {
		t.Error("fresh store should be reseeded with the default catalog")
	}
}

func TestTimestampFormat(t *testing.T) {
	if _, err := time.Parse(time.RFC3339, timestamp()); err != nil {
		t.Errorf("timestamp is not RFC3339: %v", err)
	}
}
