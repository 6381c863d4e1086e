package staff

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

// ErrUserIsNotConstructed is returned when a User was not created via NewUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser")

// User is the authenticated caller of a core operation: identity, role, and
// home department. It is a value object; commands embed it as the actor.
type User struct { //nolint:recvcheck //using for validation
	id           kernel.UUID
	role         Role
	departmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewUser creates a validated user record.
func NewUser(id kernel.UUID, role Role, departmentID kernel.UUID) (User, error) {
	u := User{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		u.setID(id),
		u.setRole(role),
		u.setDepartmentID(departmentID),
	); err != nil {
		return User{}, err
	}

	return u, nil
}

// Validate ensures the user was created through NewUser.
func (u User) Validate() error {
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the user's unique identifier.
func (u User) ID() kernel.UUID {
	return u.id
}

// Role returns the user's role.
func (u User) Role() Role {
	return u.role
}

// DepartmentID returns the user's home department.
func (u User) DepartmentID() kernel.UUID {
	return u.departmentID
}

// IsAdmin reports whether the user bypasses department-scope checks.
func (u User) IsAdmin() bool {
	return u.role == RoleAdmin
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setDepartmentID(departmentID kernel.UUID) error {
	if err := departmentID.Validate(); err != nil {
		return err
	}
	u.departmentID = departmentID
	return nil
}
