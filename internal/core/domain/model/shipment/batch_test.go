package shipment_test

import (
	"testing"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/shipment"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBatch(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	b, err := shipment.NewBatch(kernel.NewUUID(), kernel.NewUUID(), &date)

	require.NoError(t, err)
	require.NoError(t, b.Validate())
	assert.Equal(t, shipment.StatusOpen, b.Status())
	assert.Nil(t, b.SenderID())
	assert.Nil(t, b.SentAt())
}

func TestNewBatch_NilDeliveryDate(t *testing.T) {
	// Unscheduled batches are valid; the date is resolved manually downstream.
	b, err := shipment.NewBatch(kernel.NewUUID(), kernel.NewUUID(), nil)

	require.NoError(t, err)
	assert.Nil(t, b.DeliveryDate())
}

func TestBatch_Release(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

	t.Run("open batch with future date releases", func(t *testing.T) {
		date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
		b, err := shipment.NewBatch(kernel.NewUUID(), kernel.NewUUID(), &date)
		require.NoError(t, err)
		sender := kernel.NewUUID()

		require.NoError(t, b.Release(sender, now))

		assert.Equal(t, shipment.StatusSent, b.Status())
		require.NotNil(t, b.SenderID())
		assert.True(t, b.SenderID().IsEqual(sender))
		require.NotNil(t, b.SentAt())
	})

	t.Run("nil date releases", func(t *testing.T) {
		b, err := shipment.NewBatch(kernel.NewUUID(), kernel.NewUUID(), nil)
		require.NoError(t, err)

		require.NoError(t, b.Release(kernel.NewUUID(), now))
	})

	t.Run("past date is a conflict", func(t *testing.T) {
		date := time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC)
		b, err := shipment.NewBatch(kernel.NewUUID(), kernel.NewUUID(), &date)
		require.NoError(t, err)

		err = b.Release(kernel.NewUUID(), now)

		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, shipment.StatusOpen, b.Status())
	})

	t.Run("sent never regresses", func(t *testing.T) {
		b, err := shipment.NewBatch(kernel.NewUUID(), kernel.NewUUID(), nil)
		require.NoError(t, err)
		require.NoError(t, b.Release(kernel.NewUUID(), now))

		assert.ErrorIs(t, b.Release(kernel.NewUUID(), now), errs.ErrConflict)
		assert.ErrorIs(t, b.Cancel(), errs.ErrConflict)
	})
}

func TestBatch_Cancel(t *testing.T) {
	b, err := shipment.NewBatch(kernel.NewUUID(), kernel.NewUUID(), nil)
	require.NoError(t, err)

	require.NoError(t, b.Cancel())
	assert.Equal(t, shipment.StatusCancelled, b.Status())
	assert.ErrorIs(t, b.Cancel(), errs.ErrConflict)
}
