// Package memory provides in-memory repository implementations for tests.
package memory

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/models"
	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/repository"
)

type UserStore struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]models.User

	InsertErr error
}

func NewUserStore() *UserStore {
	return &UserStore{users: map[primitive.ObjectID]models.User{}}
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := []models.User{}
	for _, u := range s.users {
		users = append(users, u)
	}
	return users, nil
}

func (s *UserStore) ListByRole(ctx context.Context, role models.UserRole) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := []models.User{}
	for _, u := range s.users {
		if u.Role == role {
			users = append(users, u)
		}
	}
	return users, nil
}

func (s *UserStore) Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	if s.InsertErr != nil {
		return primitive.NilObjectID, s.InsertErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	s.users[user.ID] = *user
	return user.ID, nil
}

func (s *UserStore) SetRole(ctx context.Context, id primitive.ObjectID, role models.UserRole) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return 0, nil
	}
	u.Role = role
	s.users[id] = u
	return 1, nil
}

// Count reports how many user documents exist; test helper only.
func (s *UserStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

type ClassStore struct {
	mu      sync.Mutex
	classes map[primitive.ObjectID]models.Class

	ApplyErr error
}

func NewClassStore() *ClassStore {
	return &ClassStore{classes: map[primitive.ObjectID]models.Class{}}
}

func (s *ClassStore) List(ctx context.Context) ([]models.Class, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	classes := []models.Class{}
	for _, c := range s.classes {
		classes = append(classes, c)
	}
	return classes, nil
}

func (s *ClassStore) ListByInstructor(ctx context.Context, email string) ([]models.Class, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	classes := []models.Class{}
	for _, c := range s.classes {
		if c.InstructorEmail == email {
			classes = append(classes, c)
		}
	}
	return classes, nil
}

func (s *ClassStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Class, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.classes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (s *ClassStore) Insert(ctx context.Context, class *models.Class) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if class.ID.IsZero() {
		class.ID = primitive.NewObjectID()
	}
	s.classes[class.ID] = *class
	return class.ID, nil
}

func (s *ClassStore) SetStatus(ctx context.Context, id primitive.ObjectID, status models.ClassStatus) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.classes[id]
	if !ok {
		return 0, nil
	}
	c.Status = status
	s.classes[id] = c
	return 1, nil
}

func (s *ClassStore) Update(ctx context.Context, id primitive.ObjectID, update models.ClassUpdate) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.classes[id]
	if !ok {
		return 0, nil
	}
	c.NameClass = update.NameClass
	c.Image = update.Image
	c.Seats = update.Seats
	c.Price = update.Price
	s.classes[id] = c
	return 1, nil
}

func (s *ClassStore) ApplyEnrollment(ctx context.Context, id primitive.ObjectID) (int64, error) {
	if s.ApplyErr != nil {
		return 0, s.ApplyErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.classes[id]
	if !ok || c.Seats <= 0 {
		return 0, nil
	}
	c.Seats--
	c.Enroll++
	s.classes[id] = c
	return 1, nil
}

func (s *ClassStore) RevertEnrollment(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.classes[id]
	if !ok {
		return nil
	}
	c.Seats++
	c.Enroll--
	s.classes[id] = c
	return nil
}

type CartStore struct {
	mu      sync.Mutex
	entries map[primitive.ObjectID]models.CartEntry

	DeleteErr error
}

func NewCartStore() *CartStore {
	return &CartStore{entries: map[primitive.ObjectID]models.CartEntry{}}
}

func (s *CartStore) ListByEmail(ctx context.Context, email string) ([]models.CartEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := []models.CartEntry{}
	for _, e := range s.entries {
		if e.Email == email {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (s *CartStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.CartEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &e, nil
}

func (s *CartStore) Insert(ctx context.Context, entry *models.CartEntry) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	s.entries[entry.ID] = *entry
	return entry.ID, nil
}

func (s *CartStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	if s.DeleteErr != nil {
		return 0, s.DeleteErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[id]; !ok {
		return 0, nil
	}
	delete(s.entries, id)
	return 1, nil
}

type PaymentStore struct {
	mu       sync.Mutex
	payments map[primitive.ObjectID]models.Payment

	InsertErr error
}

func NewPaymentStore() *PaymentStore {
	return &PaymentStore{payments: map[primitive.ObjectID]models.Payment{}}
}

func (s *PaymentStore) ListByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payments := []models.Payment{}
	for _, p := range s.payments {
		if p.Email == email {
			payments = append(payments, p)
		}
	}
	return payments, nil
}

func (s *PaymentStore) Insert(ctx context.Context, payment *models.Payment) (primitive.ObjectID, error) {
	if s.InsertErr != nil {
		return primitive.NilObjectID, s.InsertErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	s.payments[payment.ID] = *payment
	return payment.ID, nil
}

func (s *PaymentStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.payments, id)
	return nil
}
