package department_test

import (
	"testing"

	"ordering/internal/core/domain/model/department"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hierarchy builds the restaurant fixture used throughout:
//
//	Restaurant (root)
//	├── Kitchen
//	│   └── Pastry
//	├── Service
//	└── Bar (inactive)
type hierarchy struct {
	tree                                     *department.Tree
	restaurant, kitchen, pastry, service, bar kernel.UUID
}

func buildHierarchy(t *testing.T) hierarchy {
	t.Helper()

	h := hierarchy{
		restaurant: kernel.NewUUID(),
		kitchen:    kernel.NewUUID(),
		pastry:     kernel.NewUUID(),
		service:    kernel.NewUUID(),
		bar:        kernel.NewUUID(),
	}

	restaurant, err := department.NewDepartment(h.restaurant, "Restaurant", nil)
	require.NoError(t, err)
	kitchen, err := department.NewDepartment(h.kitchen, "Kitchen", &h.restaurant)
	require.NoError(t, err)
	pastry, err := department.NewDepartment(h.pastry, "Pastry", &h.kitchen)
	require.NoError(t, err)
	service, err := department.NewDepartment(h.service, "Service", &h.restaurant)
	require.NoError(t, err)
	bar, err := department.RestoreDepartment(h.bar, "Bar", &h.restaurant, false)
	require.NoError(t, err)

	tree, err := department.NewTree([]*department.Department{restaurant, kitchen, pastry, service, bar})
	require.NoError(t, err)
	h.tree = tree
	return h
}

func TestNewDepartment_Validation(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		_, err := department.NewDepartment(kernel.NewUUID(), "", nil)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("self parent", func(t *testing.T) {
		id := kernel.NewUUID()
		_, err := department.NewDepartment(id, "Kitchen", &id)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero id", func(t *testing.T) {
		_, err := department.NewDepartment(kernel.UUID{}, "Kitchen", nil)
		require.Error(t, err)
	})
}

func TestNewTree_MissingParent(t *testing.T) {
	orphanParent := kernel.NewUUID()
	d, err := department.NewDepartment(kernel.NewUUID(), "Kitchen", &orphanParent)
	require.NoError(t, err)

	_, err = department.NewTree([]*department.Department{d})

	assert.ErrorIs(t, err, errs.ErrInternalInconsistency)
}

func TestTree_VisibleFrom(t *testing.T) {
	h := buildHierarchy(t)

	t.Run("mid-level department sees home, parent, active siblings and active children", func(t *testing.T) {
		visible, err := h.tree.VisibleFrom(h.kitchen)
		require.NoError(t, err)

		assert.True(t, visible.Contains(h.kitchen))
		assert.True(t, visible.Contains(h.restaurant))
		assert.True(t, visible.Contains(h.service))
		assert.True(t, visible.Contains(h.pastry))
		assert.False(t, visible.Contains(h.bar), "inactive siblings stay hidden")
	})

	t.Run("root sees exactly itself and its active children", func(t *testing.T) {
		visible, err := h.tree.VisibleFrom(h.restaurant)
		require.NoError(t, err)

		assert.Len(t, visible, 3)
		assert.True(t, visible.Contains(h.restaurant))
		assert.True(t, visible.Contains(h.kitchen))
		assert.True(t, visible.Contains(h.service))
	})

	t.Run("leaf sees home, parent and siblings but not grandparent", func(t *testing.T) {
		visible, err := h.tree.VisibleFrom(h.pastry)
		require.NoError(t, err)

		assert.True(t, visible.Contains(h.pastry))
		assert.True(t, visible.Contains(h.kitchen))
		assert.False(t, visible.Contains(h.restaurant))
		assert.False(t, visible.Contains(h.service))
	})

	t.Run("unknown home is not found", func(t *testing.T) {
		_, err := h.tree.VisibleFrom(kernel.NewUUID())
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestTree_EditableFrom(t *testing.T) {
	h := buildHierarchy(t)

	t.Run("home plus full descendant subtree", func(t *testing.T) {
		editable, err := h.tree.EditableFrom(h.kitchen)
		require.NoError(t, err)

		assert.Len(t, editable, 2)
		assert.True(t, editable.Contains(h.kitchen))
		assert.True(t, editable.Contains(h.pastry))
	})

	t.Run("never contains an ancestor or sibling", func(t *testing.T) {
		editable, err := h.tree.EditableFrom(h.pastry)
		require.NoError(t, err)

		assert.Len(t, editable, 1)
		assert.True(t, editable.Contains(h.pastry))
		assert.False(t, editable.Contains(h.kitchen))
		assert.False(t, editable.Contains(h.restaurant))
	})

	t.Run("root edits everything beneath it", func(t *testing.T) {
		editable, err := h.tree.EditableFrom(h.restaurant)
		require.NoError(t, err)

		assert.Len(t, editable, 5)
	})
}

func TestTree_IsDescendantOf(t *testing.T) {
	h := buildHierarchy(t)

	t.Run("reflexive", func(t *testing.T) {
		for _, id := range []kernel.UUID{h.restaurant, h.kitchen, h.pastry, h.service, h.bar} {
			ok, err := h.tree.IsDescendantOf(id, id)
			require.NoError(t, err)
			assert.True(t, ok)
		}
	})

	t.Run("transitive descent", func(t *testing.T) {
		ok, err := h.tree.IsDescendantOf(h.pastry, h.restaurant)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("fails safe at the root", func(t *testing.T) {
		ok, err := h.tree.IsDescendantOf(h.service, h.kitchen)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("upward reach is not descent", func(t *testing.T) {
		ok, err := h.tree.IsDescendantOf(h.restaurant, h.kitchen)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("missing candidate is NotFound, not false", func(t *testing.T) {
		_, err := h.tree.IsDescendantOf(kernel.NewUUID(), h.restaurant)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("missing ancestor is NotFound", func(t *testing.T) {
		_, err := h.tree.IsDescendantOf(h.pastry, kernel.NewUUID())
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestTree_CyclicParentChain(t *testing.T) {
	// A two-node cycle cannot happen with intact foreign keys, but a corrupted
	// store must surface as InternalConsistency, never as an endless walk.
	aID := kernel.NewUUID()
	bID := kernel.NewUUID()
	a, err := department.NewDepartment(aID, "A", &bID)
	require.NoError(t, err)
	b, err := department.NewDepartment(bID, "B", &aID)
	require.NoError(t, err)

	cID := kernel.NewUUID()
	c, err := department.NewDepartment(cID, "C", nil)
	require.NoError(t, err)

	tree, err := department.NewTree([]*department.Department{a, b, c})
	require.NoError(t, err)

	_, err = tree.EditableFrom(aID)
	assert.ErrorIs(t, err, errs.ErrInternalInconsistency)

	_, err = tree.IsDescendantOf(aID, cID)
	assert.ErrorIs(t, err, errs.ErrInternalInconsistency)
}
