// Package testutil provides in-memory repositories for handler and service tests.
package testutil

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"sync"

	"serviceboard/database"
	"serviceboard/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrStore is returned by a repository whose Fail flag is set.
var ErrStore = errors.New("store unavailable")

// ServiceRepo is an in-memory serviceRepo.ServiceRepository.
type ServiceRepo struct {
	mu    sync.Mutex
	docs  map[primitive.ObjectID]models.Service
	order []primitive.ObjectID

	Calls int
	Fail  bool
}

func NewServiceRepo() *ServiceRepo {
	return &ServiceRepo{docs: map[primitive.ObjectID]models.Service{}}
}

func (r *ServiceRepo) begin() error {
	r.Calls++
	if r.Fail {
		return ErrStore
	}
	return nil
}

func (r *ServiceRepo) List(ctx context.Context) ([]models.Service, error) {
	return r.filter(func(models.Service) bool { return true })
}

func (r *ServiceRepo) ListByProvider(ctx context.Context, email string) ([]models.Service, error) {
	return r.filter(func(s models.Service) bool { return s.ServiceProviderEmail == email })
}

func (r *ServiceRepo) filter(keep func(models.Service) bool) ([]models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.begin(); err != nil {
		return nil, err
	}
	out := []models.Service{}
	for _, id := range r.order {
		if s, ok := r.docs[id]; ok && keep(s) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *ServiceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.begin(); err != nil {
		return nil, err
	}
	oid, err := database.ParseID(id)
	if err != nil {
		return nil, err
	}
	s, ok := r.docs[oid]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &s, nil
}

func (r *ServiceRepo) Create(ctx context.Context, service *models.Service) (*models.InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.begin(); err != nil {
		return nil, err
	}
	service.ID = primitive.NewObjectID()
	r.docs[service.ID] = *service
	r.order = append(r.order, service.ID)
	return &models.InsertResult{Acknowledged: true, InsertedID: service.ID.Hex()}, nil
}

func (r *ServiceRepo) Update(ctx context.Context, id string, update models.ServiceUpdate) (*models.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.begin(); err != nil {
		return nil, err
	}
	oid, err := database.ParseID(id)
	if err != nil {
		return nil, err
	}
	s, ok := r.docs[oid]
	if !ok {
		return nil, database.ErrNotFound
	}
	before := s
	s.Name, s.Description, s.Price, s.Image, s.Location =
		deref(update.Name), deref(update.Description), update.Price, deref(update.Image), update.Location
	r.docs[oid] = s

	var modified int64
	if !reflect.DeepEqual(before, s) {
		modified = 1
	}
	return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
}

func (r *ServiceRepo) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.begin(); err != nil {
		return nil, err
	}
	oid, err := database.ParseID(id)
	if err != nil {
		return &models.DeleteResult{Acknowledged: true}, nil
	}
	if _, ok := r.docs[oid]; !ok {
		return &models.DeleteResult{Acknowledged: true}, nil
	}
	delete(r.docs, oid)
	return &models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

// BookingRepo is an in-memory bookingRepo.BookingRepository.
type BookingRepo struct {
	mu    sync.Mutex
	docs  map[primitive.ObjectID]models.Booking
	order []primitive.ObjectID

	Calls int
	Fail  bool
}

func NewBookingRepo() *BookingRepo {
	return &BookingRepo{docs: map[primitive.ObjectID]models.Booking{}}
}

func (r *BookingRepo) begin() error {
	r.Calls++
	if r.Fail {
		return ErrStore
	}
	return nil
}

func (r *BookingRepo) Create(ctx context.Context, booking *models.Booking) (*models.InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.begin(); err != nil {
		return nil, err
	}
	booking.ID = primitive.NewObjectID()
	r.docs[booking.ID] = *booking
	r.order = append(r.order, booking.ID)
	return &models.InsertResult{Acknowledged: true, InsertedID: booking.ID.Hex()}, nil
}

func (r *BookingRepo) ListByUser(ctx context.Context, email string) ([]models.Booking, error) {
	out, err := r.filter(func(b models.Booking) bool { return b.UserEmail == email })
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ServiceTakingDate > out[j].ServiceTakingDate
	})
	return out, nil
}

func (r *BookingRepo) ListByProvider(ctx context.Context, email string) ([]models.Booking, error) {
	return r.filter(func(b models.Booking) bool { return b.ServiceProviderEmail == email })
}

func (r *BookingRepo) filter(keep func(models.Booking) bool) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.begin(); err != nil {
		return nil, err
	}
	out := []models.Booking{}
	for _, id := range r.order {
		if b, ok := r.docs[id]; ok && keep(b) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *BookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.begin(); err != nil {
		return nil, err
	}
	oid, err := database.ParseID(id)
	if err != nil {
		return nil, err
	}
	b, ok := r.docs[oid]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &b, nil
}

func (r *BookingRepo) UpdateStatus(ctx context.Context, id, status string) (*models.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.begin(); err != nil {
		return nil, err
	}
	oid, err := database.ParseID(id)
	if err != nil {
		return nil, err
	}
	b, ok := r.docs[oid]
	if !ok {
		return nil, database.ErrNotFound
	}
	var modified int64
	if b.Status != status {
		modified = 1
	}
	b.Status = status
	r.docs[oid] = b
	return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
