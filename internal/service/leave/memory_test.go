package leave

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/hris-attendance-leave/internal/domain/leave"
	"github.com/cmlabs-hris/hris-attendance-leave/internal/domain/user"
)

// memoryStore backs the in-memory repositories. Its transactor runs one
// transaction at a time and restores a snapshot when fn fails, standing in
// for row locks and rollback.
type memoryStore struct {
	txMu sync.Mutex
	mu   sync.Mutex

	users    map[string]user.User
	requests map[string]leave.LeaveRequest
	balances map[string]leave.LeaveBalance
	nextID   int

	// failOn makes the named repository method return the error.
	failOn map[string]error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:    make(map[string]user.User),
		requests: make(map[string]leave.LeaveRequest),
		balances: make(map[string]leave.LeaveBalance),
		failOn:   make(map[string]error),
	}
}

func (s *memoryStore) fail(method string) error {
	return s.failOn[method]
}

func (s *memoryStore) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	requests := make(map[string]leave.LeaveRequest, len(s.requests))
	for k, v := range s.requests {
		requests[k] = v
	}
	balances := make(map[string]leave.LeaveBalance, len(s.balances))
	for k, v := range s.balances {
		balances[k] = v
	}
	s.mu.Unlock()

	if err := fn(ctx); err != nil {
		s.mu.Lock()
		s.requests = requests
		s.balances = balances
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *memoryStore) request(id string) (leave.LeaveRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.requests[id]
	return r, ok
}

func (s *memoryStore) balance(userID string) (leave.LeaveBalance, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.balances[userID]
	return b, ok
}

type memoryUserRepository struct{ *memoryStore }

func (r memoryUserRepository) GetByID(_ context.Context, id string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r memoryUserRepository) ListByRole(_ context.Context, role user.Role) ([]user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]user.User, 0)
	for _, u := range r.users {
		if u.Role == role {
			result = append(result, u)
		}
	}
	return result, nil
}

type memoryRequestRepository struct{ *memoryStore }

func (r memoryRequestRepository) Create(_ context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail("Create"); err != nil {
		return leave.LeaveRequest{}, err
	}
	r.nextID++
	req.ID = fmt.Sprintf("lr-%d", r.nextID)
	req.CreatedAt = time.Now().UTC()
	req.UpdatedAt = req.CreatedAt
	r.requests[req.ID] = req
	return req, nil
}

func (r memoryRequestRepository) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return req, nil
}

func (r memoryRequestRepository) GetByIDForUpdate(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return r.GetByID(ctx, id)
}

func (r memoryRequestRepository) UpdateStatus(_ context.Context, id string, from, to leave.Status) (leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail("UpdateStatus"); err != nil {
		return leave.LeaveRequest{}, err
	}
	req, ok := r.requests[id]
	if !ok || req.Status != from {
		return leave.LeaveRequest{}, leave.ErrInvalidLeaveRequest
	}
	req.Status = to
	req.UpdatedAt = time.Now().UTC()
	r.requests[id] = req
	return req, nil
}

func (r memoryRequestRepository) ListByUser(_ context.Context, userID string) ([]leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail("ListByUser"); err != nil {
		return nil, err
	}
	result := make([]leave.LeaveRequest, 0)
	for _, req := range r.requests {
		if req.UserID == userID {
			result = append(result, req)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r memoryRequestRepository) List(_ context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]leave.LeaveRequest, 0)
	for _, req := range r.requests {
		if filter.Status != nil && string(req.Status) != *filter.Status {
			continue
		}
		if u, ok := r.users[req.UserID]; ok {
			name, email := u.Name, u.Email
			req.UserName, req.UserEmail = &name, &email
		}
		result = append(result, req)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

type memoryBalanceRepository struct{ *memoryStore }

func (r memoryBalanceRepository) Create(_ context.Context, b leave.LeaveBalance) (leave.LeaveBalance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.balances[b.UserID]; ok {
		return leave.LeaveBalance{}, leave.ErrBalanceAlreadyExists
	}
	b.CreatedAt = time.Now().UTC()
	b.UpdatedAt = b.CreatedAt
	r.balances[b.UserID] = b
	return b, nil
}

func (r memoryBalanceRepository) GetByUserID(_ context.Context, userID string) (leave.LeaveBalance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail("GetByUserID"); err != nil {
		return leave.LeaveBalance{}, err
	}
	b, ok := r.balances[userID]
	if !ok {
		return leave.LeaveBalance{}, leave.ErrBalanceNotFound
	}
	return b, nil
}

func (r memoryBalanceRepository) GetByUserIDForUpdate(ctx context.Context, userID string) (leave.LeaveBalance, error) {
	return r.GetByUserID(ctx, userID)
}

func (r memoryBalanceRepository) ApplyDebit(_ context.Context, userID string, days int) (leave.LeaveBalance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.balances[userID]
	if !ok || !b.Covers(days) {
		return leave.LeaveBalance{}, leave.ErrInsufficientBalance
	}
	b.Used += days
	b.Remaining -= days
	b.UpdatedAt = time.Now().UTC()
	r.balances[userID] = b
	return b, nil
}
