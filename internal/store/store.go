// Package store holds the process-memory submission store: the seeded job
// catalog plus application and contact-message records. Nothing here is
// durable; a restart reseeds the catalog and resets every counter to 1.
package store

import "sync"

// Job is a posted opening. The catalog is seeded once at construction and
// never mutated by client requests.
type Job struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Location     string   `json:"location"`
	Description  []string `json:"description"`
	Requirements []string `json:"requirements"`
	Benefits     []string `json:"benefits"`
}

// Application is a candidate submission against a job. ID and CreatedAt are
// assigned by the store at write time; the rest is caller-supplied and
// assumed validated at the boundary. JobID is not checked against the
// catalog.
type Application struct {
	ID           int    `json:"id"`
	JobID        int    `json:"jobId"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	PortfolioURL string `json:"portfolioUrl"`
	CoverLetter  string `json:"coverLetter"`
	CreatedAt    string `json:"createdAt"`
}

// ContactMessage is a general inquiry unrelated to a specific job.
type ContactMessage struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
}

// Storage is the persistence seam. The in-memory implementation below is
// the only one; a durable backend can replace it without touching the
// request layer.
type Storage interface {
	ListJobs() []Job
	GetJob(id int) (Job, bool)
	CreateApplication(app Application) int
	CreateContactMessage(msg ContactMessage) int
}

// MemStorage keeps everything in maps guarded by a single mutex so the
// id-increment-and-insert stays atomic under concurrent request handlers.
type MemStorage struct {
	mu sync.Mutex

	jobs     map[int]Job
	jobOrder []int

	applications map[int]Application
	contacts     map[int]ContactMessage

	applicationIDCounter int
	contactIDCounter     int

	now func() string
}

var _ Storage = (*MemStorage)(nil)

// NewMemStorage returns a store seeded with the default job catalog and
// both submission counters at 1.
func NewMemStorage() *MemStorage {
	s := &MemStorage{
		jobs:                 make(map[int]Job),
		applications:         make(map[int]Application),
		contacts:             make(map[int]ContactMessage),
		applicationIDCounter: 1,
		contactIDCounter:     1,
		now:                  timestamp,
	}

	for _, job := range defaultJobs {
		s.jobs[job.ID] = job
		s.jobOrder = append(s.jobOrder, job.ID)
	}

	return s
}

// ListJobs returns the full catalog in insertion order.
func (s *MemStorage) ListJobs() []Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Job, 0, len(s.jobOrder))
	for _, id := range s.jobOrder {
		out = append(out, s.jobs[id])
	}
	return out
}

// GetJob looks a job up by id. The second return distinguishes a normal
// not-found outcome from success.
func (s *MemStorage) GetJob(id int) (Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	return job, ok
}

// CreateApplication stores the record under the next sequential id and
// stamps it with the server clock. Returns the new id.
func (s *MemStorage) CreateApplication(app Application) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	app.ID = s.applicationIDCounter
	s.applicationIDCounter++
	app.CreatedAt = s.now()
	s.applications[app.ID] = app
	return app.ID
}

// CreateContactMessage is symmetric to CreateApplication with its own
// independent counter.
func (s *MemStorage) CreateContactMessage(msg ContactMessage) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg.ID = s.contactIDCounter
	s.contactIDCounter++
	msg.CreatedAt = s.now()
	s.contacts[msg.ID] = msg
	return msg.ID
}
