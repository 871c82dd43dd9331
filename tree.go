package artboard

import (
	"fmt"
	"slices"
)

// Artboard is the fixed-size canvas the layers are drawn onto.
type Artboard struct {
	ID         string
	Name       string
	Width      int
	Height     int
	Background RGBA

	// Layers are the top-level layer ids, head is topmost. Paint order is
	// the reverse of this list.
	Layers []string
}

// Tree is an artboard plus a lookup of every layer it references.
type Tree struct {
	Artboard Artboard
	layers   map[string]Layer
}

// NewTree creates a tree for the artboard. The artboard's Layers list is
// kept; the referenced layers must be registered with Put or Add.
func NewTree(a Artboard) *Tree {
	return &Tree{Artboard: a, layers: make(map[string]Layer)}
}

// Put registers l without changing any ordering list.
func (t *Tree) Put(l Layer) {
	t.layers[l.Base().ID] = l
}

// Add registers l and places it on top of its parent: the artboard when
// ParentID is empty, otherwise the group named by ParentID. Adding to a
// missing or non-group parent returns ErrUnknownLayer or ErrParentMismatch.
func (t *Tree) Add(l Layer) error {
	e := l.Base()
	if e.ParentID == "" {
		t.layers[e.ID] = l
		t.Artboard.Layers = slices.Insert(t.Artboard.Layers, 0, e.ID)
		return nil
	}
	parent, ok := t.layers[e.ParentID]
	if !ok {
		return fmt.Errorf("%w: parent %q of %q", ErrUnknownLayer, e.ParentID, e.ID)
	}
	g, ok := parent.(*GroupLayer)
	if !ok {
		return fmt.Errorf("%w: parent %q of %q is not a group", ErrParentMismatch, e.ParentID, e.ID)
	}
	t.layers[e.ID] = l
	g.Children = slices.Insert(g.Children, 0, e.ID)
	return nil
}

// Remove unregisters the layer and drops it from its parent's list.
// Children of a removed group are removed too.
func (t *Tree) Remove(id string) {
	l, ok := t.layers[id]
	if !ok {
		return
	}
	if g, ok := l.(*GroupLayer); ok {
		for _, child := range slices.Clone(g.Children) {
			t.Remove(child)
		}
	}
	delete(t.layers, id)

	drop := func(ids []string) []string {
		return slices.DeleteFunc(ids, func(s string) bool { return s == id })
	}
	if p := l.Base().ParentID; p != "" {
		if g, ok := t.layers[p].(*GroupLayer); ok {
			g.Children = drop(g.Children)
		}
		return
	}
	t.Artboard.Layers = drop(t.Artboard.Layers)
}

// Layer returns the layer with the given id.
func (t *Tree) Layer(id string) (Layer, bool) {
	l, ok := t.layers[id]
	return l, ok
}

// Len returns the number of registered layers.
func (t *Tree) Len() int {
	return len(t.layers)
}

// IDs returns every registered layer id, sorted.
func (t *Tree) IDs() []string {
	ids := make([]string, 0, len(t.layers))
	for id := range t.layers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Validate checks the tree structure. Every listed id must be registered
// (ErrUnknownLayer), groups must not contain themselves (ErrLayerCycle),
// and every layer must be listed exactly once by the container its
// ParentID names (ErrParentMismatch). Errors are wrapped with the
// offending id.
func (t *Tree) Validate() error {
	listedBy := make(map[string]string, len(t.layers))
	list := func(container string, ids []string) error {
		for _, id := range ids {
			if _, ok := t.layers[id]; !ok {
				return fmt.Errorf("%w: %q", ErrUnknownLayer, id)
			}
			if prev, dup := listedBy[id]; dup {
				return fmt.Errorf("%w: %q listed by both %q and %q", ErrParentMismatch, id, prev, container)
			}
			listedBy[id] = container
		}
		return nil
	}

	if err := list("", t.Artboard.Layers); err != nil {
		return err
	}
	for _, id := range t.IDs() {
		if g, ok := t.layers[id].(*GroupLayer); ok {
			if err := list(id, g.Children); err != nil {
				return err
			}
		}
	}

	// Cycles first: a group listing itself would also look like a parent
	// mismatch.
	state := make(map[string]uint8, len(t.layers))
	var visit func(id string) error
	visit = func(id string) error {
		switch state[id] {
		case 1:
			return fmt.Errorf("%w: %q", ErrLayerCycle, id)
		case 2:
			return nil
		}
		state[id] = 1
		if g, ok := t.layers[id].(*GroupLayer); ok {
			for _, child := range g.Children {
				if err := visit(child); err != nil {
					return err
				}
			}
		}
		state[id] = 2
		return nil
	}
	for _, id := range t.IDs() {
		if err := visit(id); err != nil {
			return err
		}
	}

	for _, id := range t.IDs() {
		parent := t.layers[id].Base().ParentID
		container, listed := listedBy[id]
		if !listed || container != parent {
			return fmt.Errorf("%w: %q has parent %q", ErrParentMismatch, id, parent)
		}
	}
	return nil
}
