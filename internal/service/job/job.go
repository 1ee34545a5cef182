package job

import (
	"context"

	"github.com/talentgate/careers_backend/internal/store"
)

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context) ([]store.Job, error)
	Get(ctx context.Context, id int) (store.Job, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type jobService struct {
	st store.Storage
}

func New(st store.Storage) Service {
	return &jobService{st: st}
}

func (s *jobService) List(ctx context.Context) ([]store.Job, error) {
	return s.st.ListJobs(), nil
}

// Get returns ErrNotFound for an absent id; absence is a normal outcome,
// not a fault.
func (s *jobService) Get(ctx context.Context, id int) (store.Job, error) {
	j, ok := s.st.GetJob(id)
	if !ok {
		return store.Job{}, ErrNotFound
	}
	return j, nil
}
