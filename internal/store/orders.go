package store

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/restoservice/repair-admin/internal/domain/order"
	"github.com/restoservice/repair-admin/internal/models"
)

// OrderStore is the single source of truth for the repair-order
// collection and the active filter selection for the process lifetime.
// All mutations go through its operations; consumers read snapshots.
type OrderStore struct {
	repo domain.Repository

	now   func() time.Time
	newID func() string

	// createMu serializes creations so that two concurrent creates can
	// never be issued the same order number for the same year.
	createMu sync.Mutex

	mu      sync.Mutex
	orders  []models.RepairOrder
	filters domain.Filters
	loading bool
	errMsg  string
	subs    []chan struct{}
}

func NewOrderStore(repo domain.Repository) *OrderStore {
	return &OrderStore{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// ======================================================
// SNAPSHOT ACCESS
// ======================================================

func (s *OrderStore) Orders() []models.RepairOrder {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.RepairOrder, len(s.orders))
	copy(out, s.orders)
	return out
}

// FilteredOrders applies the active filters to the snapshot,
// preserving relative order.
func (s *OrderStore) FilteredOrders() []models.RepairOrder {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.RepairOrder, 0, len(s.orders))
	for i := range s.orders {
		if s.filters.Match(&s.orders[i]) {
			out = append(out, s.orders[i])
		}
	}
	return out
}

func (s *OrderStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *OrderStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// Subscribe returns a channel that receives a tick after every state
// change. The channel is never closed and drops ticks when the
// subscriber lags.
func (s *OrderStore) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

func (s *OrderStore) notify() {
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
// FILTERS
// ======================================================

// SetFilters replaces the active filter criteria. The underlying
// collection is untouched.
func (s *OrderStore) SetFilters(f domain.Filters) {
	s.mu.Lock()
	s.filters = f
	s.mu.Unlock()
	s.notify()
}

func (s *OrderStore) Filters() domain.Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// ======================================================
// FETCH
// ======================================================

// FetchOrders replaces the snapshot with the canonical set. On failure
// the previous snapshot is kept and the error message is set.
func (s *OrderStore) FetchOrders(ctx context.Context) {
	s.beginLoad()

	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		s.failLoad("could not load orders")
		return
	}

	s.finishLoad(func() {
		s.orders = orders
	})
}

// FetchTechnicianOrders returns the orders assigned to the technician,
// in original relative order. This is a read-only side query: failures
// degrade to an empty result instead of surfacing an error.
func (s *OrderStore) FetchTechnicianOrders(
	ctx context.Context,
	technicianID string,
) []models.RepairOrder {

	orders, err := s.repo.ListOrdersByTechnician(ctx, technicianID)
	if err != nil {
		log.Printf("order store: technician orders lookup failed: %v", err)
		return []models.RepairOrder{}
	}
	return orders
}

// ======================================================
// CREATE
// ======================================================

type CreateOrderInput struct {
	ClientName  string
	ClientPhone string
	ClientEmail string
	Address     string

	ApplianceType string
	Brand         string
	Model         string
	SerialNumber  string

	Problem     string
	Status      string
	Priority    string
	ServiceType string

	TechnicianID  string
	ScheduledDate *time.Time
	Photos        []string
}

// CreateOrder synthesizes identity, the next per-year order number and
// both timestamps, then appends the order to the collection.
func (s *OrderStore) CreateOrder(
	ctx context.Context,
	in CreateOrderInput,
) (*models.RepairOrder, error) {

	s.createMu.Lock()
	defer s.createMu.Unlock()

	s.beginLoad()

	now := s.now()

	seq, err := s.repo.MaxSequence(ctx, now.Year())
	if err != nil {
		s.failLoad("could not create the order")
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = string(domain.InitialStatus())
	}
	priority := in.Priority
	if priority == "" {
		priority = string(domain.PriorityMedium)
	}
	serviceType := in.ServiceType
	if serviceType == "" {
		serviceType = string(domain.ServiceWorkshop)
	}
	photos := in.Photos
	if photos == nil {
		photos = []string{}
	}

	o := &models.RepairOrder{
		ID:          s.newID(),
		OrderNumber: domain.FormatNumber(now.Year(), seq+1),

		ClientName:  in.ClientName,
		ClientPhone: in.ClientPhone,
		ClientEmail: in.ClientEmail,
		Address:     in.Address,

		ApplianceType: in.ApplianceType,
		Brand:         in.Brand,
		Model:         in.Model,
		SerialNumber:  in.SerialNumber,

		Problem:     in.Problem,
		Status:      status,
		Priority:    priority,
		ServiceType: serviceType,

		TechnicianID:  in.TechnicianID,
		ScheduledDate: in.ScheduledDate,
		Photos:        photos,

		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.CreateOrder(ctx, o); err != nil {
		s.failLoad("could not create the order")
		return nil, err
	}

	s.finishLoad(func() {
		s.orders = append(s.orders, *o)
	})

	return o, nil
}

// ======================================================
// UPDATE
// ======================================================

// UpdateOrder merges the patch into the matching order and stamps
// UpdatedAt. A missing id is a no-op, not an error; that mirrors the
// store contract and is covered by tests.
func (s *OrderStore) UpdateOrder(
	ctx context.Context,
	id string,
	patch domain.Patch,
) (*models.RepairOrder, error) {

	s.beginLoad()

	o, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			s.finishLoad(nil)
			return nil, nil
		}
		s.failLoad("could not update the order")
		return nil, err
	}

	patch.Apply(o)
	o.UpdatedAt = s.now()

	if err := s.repo.SaveOrder(ctx, o); err != nil {
		s.failLoad("could not update the order")
		return nil, err
	}

	s.finishLoad(func() {
		for i := range s.orders {
			if s.orders[i].ID == o.ID {
				s.orders[i] = *o
				break
			}
		}
	})

	return o, nil
}

// Mutate loads the order, applies fn and persists the result with a
// fresh UpdatedAt. Used for domain actions (budget, review, photos)
// that are richer than a field patch. Missing ids report ok=false.
func (s *OrderStore) Mutate(
	ctx context.Context,
	id string,
	fn func(o *models.RepairOrder) error,
) (*models.RepairOrder, bool, error) {

	s.beginLoad()

	o, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			s.finishLoad(nil)
			return nil, false, nil
		}
		s.failLoad("could not update the order")
		return nil, false, err
	}

	if err := fn(o); err != nil {
		s.finishLoad(nil)
		return nil, true, err
	}

	o.UpdatedAt = s.now()

	if err := s.repo.SaveOrder(ctx, o); err != nil {
		s.failLoad("could not update the order")
		return nil, true, err
	}

	s.finishLoad(func() {
		for i := range s.orders {
			if s.orders[i].ID == o.ID {
				s.orders[i] = *o
				break
			}
		}
	})

	return o, true, nil
}

// ======================================================
// LOOKUP BY NUMBER
// ======================================================

// GetOrderByNumber is the public-tracking lookup. It never surfaces
// errors: both a missing order and a failed read report ok=false.
func (s *OrderStore) GetOrderByNumber(
	ctx context.Context,
	orderNumber string,
) (*models.RepairOrder, bool) {

	o, err := s.repo.GetOrderByNumber(ctx, orderNumber)
	if err != nil {
		if !isNotFound(err) {
			log.Printf("order store: lookup by number failed: %v", err)
		}
		return nil, false
	}
	return o, true
}

// ======================================================
// STATE HELPERS
// ======================================================

func (s *OrderStore) beginLoad() {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()
	s.notify()
}

func (s *OrderStore) failLoad(msg string) {
	s.mu.Lock()
	s.loading = false
	s.errMsg = msg
	s.mu.Unlock()
	s.notify()
}

func (s *OrderStore) finishLoad(commit func()) {
	s.mu.Lock()
	if commit != nil {
		commit()
	}
	s.loading = false
	s.mu.Unlock()
	s.notify()
}
