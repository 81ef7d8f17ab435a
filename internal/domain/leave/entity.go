package leave

import (
	"fmt"
	"time"
)

// DefaultAnnualAllotment is the number of leave days granted at onboarding.
const DefaultAnnualAllotment = 22

// Status of a leave request. Approved and declined are terminal.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDeclined Status = "declined"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDeclined:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed out of s.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusApproved, StatusDeclined:
		return true
	case StatusPending:
		return false
	}
	return true
}

// CanTransitionTo reports whether s -> next is an allowed transition.
func (s Status) CanTransitionTo(next Status) bool {
	if s.IsTerminal() {
		return false
	}
	return next == StatusApproved || next == StatusDeclined
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.Valid() {
		return "", fmt.Errorf("unknown leave status %q", s)
	}
	return status, nil
}

// Type of leave requested.
type Type string

const (
	TypeCasual    Type = "casual"
	TypeMedical   Type = "medical"
	TypeHalfLeave Type = "half_leave"
)

func (t Type) Valid() bool {
	switch t {
	case TypeCasual, TypeMedical, TypeHalfLeave:
		return true
	}
	return false
}

// LeaveRequest entity
type LeaveRequest struct {
	ID       string
	UserID   string
	Reason   string
	FromDate time.Time
	ToDate   time.Time
	Type     Type
	Status   Status

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships (for responses)
	UserName  *string
	UserEmail *string
}

// LeaveBalance is the per-user leave counter. Remaining always equals
// Total - Used and never drops below zero.
type LeaveBalance struct {
	UserID    string
	Total     int
	Used      int
	Remaining int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBalance returns an untouched balance of total days.
func NewBalance(userID string, total int) LeaveBalance {
	return LeaveBalance{
		UserID:    userID,
		Total:     total,
		Used:      0,
		Remaining: total,
	}
}

// Covers reports whether days can be debited without going negative.
func (b LeaveBalance) Covers(days int) bool {
	return days >= 0 && b.Remaining >= days
}
