package department

import (
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// maxTreeDepth bounds every parent-pointer walk. The parent graph is supposed
// to be acyclic; a walk that exceeds this depth means the stored tree is
// malformed and must fail with an internal-consistency error instead of
// recursing forever.
const maxTreeDepth = 64

// IDSet is a set of department identifiers.
type IDSet map[kernel.UUID]struct{}

// Contains reports whether id is a member of the set.
func (s IDSet) Contains(id kernel.UUID) bool {
	_, ok := s[id]
	return ok
}

// add inserts id into the set.
func (s IDSet) add(id kernel.UUID) {
	s[id] = struct{}{}
}

// Tree is an arena of departments indexed by id. It is an immutable snapshot
// of the hierarchy loaded for one request; all visibility and editability
// questions are answered against it.
type Tree struct {
	nodes    map[kernel.UUID]*Department
	children map[kernel.UUID][]kernel.UUID
}

// NewTree builds a tree snapshot from a flat department list. A parent
// reference to a department missing from the list is an internal-consistency
// error: the persistence layer guarantees referential integrity.
func NewTree(departments []*Department) (*Tree, error) {
	t := &Tree{
		nodes:    make(map[kernel.UUID]*Department, len(departments)),
		children: make(map[kernel.UUID][]kernel.UUID),
	}

	for _, d := range departments {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		t.nodes[d.ID()] = d
	}

	for _, d := range departments {
		if pid := d.ParentID(); pid != nil {
			if _, ok := t.nodes[*pid]; !ok {
				return nil, errs.NewInternalConsistencyError(
					fmt.Sprintf("department %s references missing parent %s", d.ID(), pid))
			}
			t.children[*pid] = append(t.children[*pid], d.ID())
		}
	}

	return t, nil
}

// Get returns the department with the given id, or NotFound.
func (t *Tree) Get(id kernel.UUID) (*Department, error) {
	d, ok := t.nodes[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("departmentId", id.String())
	}
	return d, nil
}

// VisibleFrom computes the viewing scope of a user whose home department is
// homeID: the home department itself, its parent, all active siblings sharing
// that parent, and all active direct children of the home department. The
// radius is deliberately bounded to one level up and down plus siblings; it
// is not the ancestor/descendant closure.
func (t *Tree) VisibleFrom(homeID kernel.UUID) (IDSet, error) {
	home, err := t.Get(homeID)
	if err != nil {
		return nil, err
	}

	visible := make(IDSet)
	visible.add(home.ID())

	if pid := home.ParentID(); pid != nil {
		visible.add(*pid)
		for _, siblingID := range t.children[*pid] {
			if sibling := t.nodes[siblingID]; sibling.IsActive() {
				visible.add(siblingID)
			}
		}
	}

	for _, childID := range t.children[home.ID()] {
		if child := t.nodes[childID]; child.IsActive() {
			visible.add(childID)
		}
	}

	return visible, nil
}

// EditableFrom computes the editing scope of a user whose home department is
// homeID: the home department plus every descendant, recursively. Editing
// rights flow downward only; the result never contains an ancestor or a
// sibling of the home department.
func (t *Tree) EditableFrom(homeID kernel.UUID) (IDSet, error) {
	if _, err := t.Get(homeID); err != nil {
		return nil, err
	}

	editable := make(IDSet)
	if err := t.collectSubtree(homeID, editable, 0); err != nil {
		return nil, err
	}
	return editable, nil
}

func (t *Tree) collectSubtree(id kernel.UUID, into IDSet, depth int) error {
	if depth > maxTreeDepth {
		return errs.NewInternalConsistencyError("department tree exceeds maximum depth, cycle suspected")
	}
	into.add(id)
	for _, childID := range t.children[id] {
		if err := t.collectSubtree(childID, into, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// IsDescendantOf walks parent links from candidateID toward the root and
// reports whether ancestorID is encountered. A department is a descendant of
// itself. Reaching a root without finding ancestorID yields false; both ids
// must exist in the tree, otherwise NotFound is returned rather than a silent
// "no ancestor".
func (t *Tree) IsDescendantOf(candidateID, ancestorID kernel.UUID) (bool, error) {
	if _, err := t.Get(ancestorID); err != nil {
		return false, err
	}
	current, err := t.Get(candidateID)
	if err != nil {
		return false, err
	}

	if candidateID.IsEqual(ancestorID) {
		return true, nil
	}

	for depth := 0; current.ParentID() != nil; depth++ {
		if depth > maxTreeDepth {
			return false, errs.NewInternalConsistencyError(
				"department parent chain exceeds maximum depth, cycle suspected")
		}
		pid := *current.ParentID()
		if pid.IsEqual(ancestorID) {
			return true, nil
		}
		current, err = t.Get(pid)
		if err != nil {
			return false, err
		}
	}

	return false, nil
}
