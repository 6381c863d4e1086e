package staff_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/staff"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Validate(t *testing.T) {
	assert.NoError(t, staff.RoleAdmin.Validate())
	assert.NoError(t, staff.RoleApprover.Validate())
	assert.NoError(t, staff.RoleRequester.Validate())
	assert.ErrorIs(t, staff.RoleUnknown.Validate(), errs.ErrValueIsInvalid)
	assert.ErrorIs(t, staff.Role(42).Validate(), errs.ErrValueIsInvalid)
}

func TestRoleFromString(t *testing.T) {
	r, err := staff.RoleFromString("Approver")
	require.NoError(t, err)
	assert.Equal(t, staff.RoleApprover, r)

	_, err = staff.RoleFromString("Chef")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		u, err := staff.NewUser(kernel.NewUUID(), staff.RoleRequester, kernel.NewUUID())

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.False(t, u.IsAdmin())
	})

	t.Run("admin bypass flag", func(t *testing.T) {
		u, err := staff.NewUser(kernel.NewUUID(), staff.RoleAdmin, kernel.NewUUID())

		require.NoError(t, err)
		assert.True(t, u.IsAdmin())
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := staff.NewUser(kernel.NewUUID(), staff.RoleUnknown, kernel.NewUUID())
		require.Error(t, err)
	})

	t.Run("zero department", func(t *testing.T) {
		_, err := staff.NewUser(kernel.NewUUID(), staff.RoleAdmin, kernel.UUID{})
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var u staff.User
		assert.ErrorIs(t, u.Validate(), staff.ErrUserIsNotConstructed)
	})
}
