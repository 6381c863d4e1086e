package guard_test

import (
	"errors"
	"testing"

	"ordering/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	g := guard.NewConstructorGuard()

	require.NoError(t, g.Validate(errors.New("not constructed")))
	require.NoError(t, g.Validate(nil))
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero value returns custom error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("entity not constructed")

		err := g.Validate(expected)

		assert.Equal(t, expected, err)
	})

	t.Run("zero value returns default error when none given", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		assert.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})

	t.Run("guard is copyable by value", func(t *testing.T) {
		type command struct {
			guard guard.ConstructorGuard
		}
		c := command{guard: guard.NewConstructorGuard()}
		copied := c

		require.NoError(t, copied.guard.Validate(nil))
	})
}
