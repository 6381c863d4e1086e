package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/staff"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	hierarchy := newTestHierarchy(t)
	actor := testUser(t, staff.RoleRequester, hierarchy.kitchen)

	t.Run("valid without lines", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), actor, hierarchy.kitchen, nil, "Trüffelöl bitte", "", nil,
		)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		require.Equal(t, "Trüffelöl bitte", cmd.AdditionalArticles())
	})

	t.Run("zero order id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.UUID{}, actor, hierarchy.kitchen, nil, "", "", nil,
		)
		require.Error(t, err)
	})

	t.Run("unconstructed actor", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), staff.User{}, hierarchy.kitchen, nil, "", "", nil,
		)
		require.Error(t, err)
	})

	t.Run("non-positive line quantity", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), actor, hierarchy.kitchen, nil, "", "",
			[]commands.LineInput{{
				LineID:    kernel.NewUUID(),
				ArticleID: kernel.NewUUID(),
				Quantity:  decimal.Zero,
			}},
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
