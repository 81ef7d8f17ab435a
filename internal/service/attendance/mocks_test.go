package attendance

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/hris-attendance-leave/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-leave/internal/domain/user"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserRepository) ListByRole(ctx context.Context, role user.Role) ([]user.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]user.User), args.Error(1)
}

type recordKey struct {
	userID string
	date   string
}

// memoryAttendanceRepository enforces the (user, date) uniqueness the table
// constraint provides. Set failWith to make every call fail.
type memoryAttendanceRepository struct {
	mu       sync.Mutex
	records  map[recordKey]attendance.Attendance
	order    []recordKey
	nextID   int
	failWith error
	// skipLookup makes GetByUserAndDate report no record, simulating a
	// concurrent insert that lands after the existence check.
	skipLookup bool
}

func newMemoryAttendanceRepository() *memoryAttendanceRepository {
	return &memoryAttendanceRepository{records: make(map[recordKey]attendance.Attendance)}
}

func keyOf(userID string, date time.Time) recordKey {
	return recordKey{userID: userID, date: date.Format("2006-01-02")}
}

func (r *memoryAttendanceRepository) GetByUserAndDate(_ context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	if r.skipLookup {
		return nil, nil
	}
	if a, ok := r.records[keyOf(userID, date)]; ok {
		return &a, nil
	}
	return nil, nil
}

func (r *memoryAttendanceRepository) Create(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return attendance.Attendance{}, r.failWith
	}
	key := keyOf(a.UserID, a.Date)
	if _, ok := r.records[key]; ok {
		return attendance.Attendance{}, attendance.ErrDuplicateRecord
	}
	r.nextID++
	a.ID = fmt.Sprintf("att-%d", r.nextID)
	a.CreatedAt = time.Now().UTC()
	r.records[key] = a
	r.order = append(r.order, key)
	return a, nil
}

func (r *memoryAttendanceRepository) CreateIfMissing(ctx context.Context, a attendance.Attendance) (bool, error) {
	_, err := r.Create(ctx, a)
	if err == attendance.ErrDuplicateRecord {
		return false, nil
	}
	return err == nil, err
}

func (r *memoryAttendanceRepository) ListByUser(_ context.Context, userID string) ([]attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	result := make([]attendance.Attendance, 0)
	for _, key := range r.order {
		if key.userID == userID {
			result = append(result, r.records[key])
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func (r *memoryAttendanceRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}
