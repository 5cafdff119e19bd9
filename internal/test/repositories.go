package test

import (
	"context"
	"slices"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/resi/internal/domain/errors"
	"github.com/polkiloo/resi/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		Next:  1,
	}
}

// Create registers user unless the email exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, name, email, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Name: name, Email: email, PasswordHash: passwordHash, CreatedAt: time.Now()}
	s.Next++
	s.Users[email] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ReceiptRepositoryStub is an in-memory receipt store with the same ownership
// and uniqueness rules as the SQL one.
type ReceiptRepositoryStub struct {
	mu    sync.Mutex
	items []model.Receipt
	next  int64

	// Today is used when an input has no date.
	Today time.Time
	// CreateErr, when set, is consulted before every insert.
	CreateErr func(model.ReceiptInput) error
	Err       error
}

// NewReceiptRepositoryStub constructs an empty store.
func NewReceiptRepositoryStub() *ReceiptRepositoryStub {
	return &ReceiptRepositoryStub{Today: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)}
}

// Create inserts a receipt; tracking numbers are unique across all owners.
func (s *ReceiptRepositoryStub) Create(ctx context.Context, userID int64, input model.ReceiptInput) (*model.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if s.CreateErr != nil {
		if err := s.CreateErr(input); err != nil {
			return nil, err
		}
	}
	for _, r := range s.items {
		if r.TrackingNumber == input.TrackingNumber {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	s.next++
	r := model.Receipt{
		ID:             s.next,
		TrackingNumber: input.TrackingNumber,
		ItemName:       input.ItemName,
		StoreName:      input.StoreName,
		Courier:        input.Courier,
		Date:           s.Today,
		UserID:         userID,
	}
	if input.Date != nil {
		r.Date = *input.Date
	}
	s.items = append(s.items, r)
	return &r, nil
}

// ListByUser filters by owner and filter, ordered by date then id descending.
func (s *ReceiptRepositoryStub) ListByUser(ctx context.Context, userID int64, filter model.ReceiptFilter) ([]model.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	result := make([]model.Receipt, 0)
	for _, r := range s.items {
		if r.UserID != userID {
			continue
		}
		if filter.Start != nil && r.Date.Before(*filter.Start) {
			continue
		}
		if filter.End != nil && r.Date.After(*filter.End) {
			continue
		}
		if filter.Courier != "" && (r.Courier == nil || *r.Courier != filter.Courier) {
			continue
		}
		result = append(result, r)
	}
	slices.SortFunc(result, func(a, b model.Receipt) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		switch {
		case a.ID > b.ID:
			return -1
		case a.ID < b.ID:
			return 1
		}
		return 0
	})
	return result, nil
}

// Update applies non-nil patch fields to a receipt owned by userID.
func (s *ReceiptRepositoryStub) Update(ctx context.Context, userID, id int64, patch model.ReceiptPatch) (*model.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.items {
		r := &s.items[i]
		if r.ID != id || r.UserID != userID {
			continue
		}
		if patch.ItemName != nil {
			r.ItemName = patch.ItemName
		}
		if patch.StoreName != nil {
			r.StoreName = patch.StoreName
		}
		if patch.Courier != nil {
			r.Courier = patch.Courier
		}
		if patch.Date != nil {
			r.Date = *patch.Date
		}
		updated := *r
		return &updated, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Delete removes a receipt owned by userID; missing ids are ignored.
func (s *ReceiptRepositoryStub) Delete(ctx context.Context, userID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.items = slices.DeleteFunc(s.items, func(r model.Receipt) bool {
		return r.ID == id && r.UserID == userID
	})
	return nil
}

// Len reports the number of stored receipts across all owners.
func (s *ReceiptRepositoryStub) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
