package user

import "context"

// UserRepository is the read side of the user directory. Users are created
// and maintained by the account management surface, not by this service.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)
	ListByRole(ctx context.Context, role Role) ([]User, error)
}
