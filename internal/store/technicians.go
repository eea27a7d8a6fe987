package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/restoservice/repair-admin/internal/domain/technician"
	"github.com/restoservice/repair-admin/internal/models"
)

// TechnicianStore owns the technician roster and the currently
// selected technician (shared edit-mode state).
type TechnicianStore struct {
	repo domain.Repository

	now   func() time.Time
	newID func() string

	mu          sync.Mutex
	technicians []models.Technician
	selected    *models.Technician
	loading     bool
	errMsg      string
	subs        []chan struct{}
}

func NewTechnicianStore(repo domain.Repository) *TechnicianStore {
	return &TechnicianStore{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// ======================================================
// SNAPSHOT ACCESS
// ======================================================

func (s *TechnicianStore) Technicians() []models.Technician {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Technician, len(s.technicians))
	copy(out, s.technicians)
	return out
}

func (s *TechnicianStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *TechnicianStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

func (s *TechnicianStore) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

func (s *TechnicianStore) notify() {
	s.mu.Lock()
	subs := s.subs
	s.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// ======================================================
// SELECTION
// ======================================================

// SelectTechnician sets or clears the shared "currently selected"
// reference used by edit workflows. Synchronous.
func (s *TechnicianStore) SelectTechnician(t *models.Technician) {
	s.mu.Lock()
	s.selected = t
	s.mu.Unlock()
	s.notify()
}

func (s *TechnicianStore) Selected() *models.Technician {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == nil {
		return nil
	}
	sel := *s.selected
	return &sel
}

// ======================================================
// FETCH
// ======================================================

func (s *TechnicianStore) FetchTechnicians(ctx context.Context) {
	s.beginLoad()

	techs, err := s.repo.ListTechnicians(ctx)
	if err != nil {
		s.failLoad("could not load technicians")
		return
	}

	s.finishLoad(func() {
		s.technicians = techs
	})
}

// ======================================================
// ADD
// ======================================================

type AddTechnicianInput struct {
	Name        string
	Email       string
	Phone       string
	Status      string
	Specialties []string
	Schedule    *models.Schedule
}

// AddTechnician assigns identity and joinedAt and zeroes the rating
// and both counters before appending.
func (s *TechnicianStore) AddTechnician(
	ctx context.Context,
	in AddTechnicianInput,
) (*models.Technician, error) {

	s.beginLoad()

	status := in.Status
	if status == "" {
		status = string(domain.StatusAvailable)
	}

	now := s.now()

	t := &models.Technician{
		ID:          s.newID(),
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Status:      status,
		Specialties: in.Specialties,
		Schedule:    in.Schedule,

		Rating:               0,
		ActiveOrders:         0,
		TotalCompletedOrders: 0,

		JoinedAt: now,
	}

	if err := s.repo.CreateTechnician(ctx, t); err != nil {
		s.failLoad("could not add the technician")
		return nil, err
	}

	s.finishLoad(func() {
		s.technicians = append(s.technicians, *t)
	})

	return t, nil
}

// ======================================================
// UPDATE
// ======================================================

// UpdateTechnician merges the patch into the matching technician.
// Missing ids are a no-op.
func (s *TechnicianStore) UpdateTechnician(
	ctx context.Context,
	id string,
	patch domain.Patch,
) (*models.Technician, error) {

	s.beginLoad()

	t, err := s.repo.GetTechnicianByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			s.finishLoad(nil)
			return nil, nil
		}
		s.failLoad("could not update the technician")
		return nil, err
	}

	patch.Apply(t)

	if err := s.repo.SaveTechnician(ctx, t); err != nil {
		s.failLoad("could not update the technician")
		return nil, err
	}

	s.finishLoad(func() {
		for i := range s.technicians {
			if s.technicians[i].ID == t.ID {
				s.technicians[i] = *t
				break
			}
		}
	})

	return t, nil
}

// ======================================================
// DELETE
// ======================================================

// DeleteTechnician removes the technician permanently. Orders keeping
// a reference to the id are left dangling on purpose; nothing cascades.
func (s *TechnicianStore) DeleteTechnician(ctx context.Context, id string) error {
	s.beginLoad()

	if err := s.repo.DeleteTechnician(ctx, id); err != nil {
		s.failLoad("could not delete the technician")
		return err
	}

	s.finishLoad(func() {
		kept := s.technicians[:0]
		for _, t := range s.technicians {
			if t.ID != id {
				kept = append(kept, t)
			}
		}
		s.technicians = kept
	})

	return nil
}

// ======================================================
// STATE HELPERS
// ======================================================

func (s *TechnicianStore) beginLoad() {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()
	s.notify()
}

func (s *TechnicianStore) failLoad(msg string) {
	s.mu.Lock()
	s.loading = false
	s.errMsg = msg
	s.mu.Unlock()
	s.notify()
}

func (s *TechnicianStore) finishLoad(commit func()) {
	s.mu.Lock()
	if commit != nil {
		commit()
	}
	s.loading = false
	s.mu.Unlock()
	s.notify()
}
