package artboard

import (
	"context"
	"hash/fnv"
	"sync"
	"time"
)

// Scheduler coalesces redraw requests into at most one render per frame.
// A frame whose tree hash equals the previous frame's is skipped unless a
// redraw was forced: a decode finished, a paint stroke was committed or the
// viewport changed.
//
// Scheduler is safe for concurrent use; renders are serialised.
type Scheduler struct {
	comp    *Compositor
	surface *Pixmap

	mu       sync.Mutex
	tree     *Tree
	viewport Viewport
	dirty    bool
	force    bool
	lastHash uint64
	rendered bool
	onFrame  func(RenderStats)
}

// NewScheduler creates a scheduler that renders tree onto surface.
func NewScheduler(c *Compositor, tree *Tree, surface *Pixmap) *Scheduler {
	return &Scheduler{
		comp:     c,
		surface:  surface,
		tree:     tree,
		viewport: Viewport{Zoom: 1},
		dirty:    true,
	}
}

// SetTree replaces the tree and requests a redraw.
func (s *Scheduler) SetTree(t *Tree) {
	s.mu.Lock()
	s.tree = t
	s.dirty = true
	s.mu.Unlock()
}

// SetViewport changes the viewport and forces a redraw.
func (s *Scheduler) SetViewport(v Viewport) {
	s.mu.Lock()
	s.viewport = v
	s.dirty, s.force = true, true
	s.mu.Unlock()
}

// OnFrame registers a callback run after every render.
func (s *Scheduler) OnFrame(fn func(RenderStats)) {
	s.mu.Lock()
	s.onFrame = fn
	s.mu.Unlock()
}

// Invalidate requests a redraw. Repeated calls before the next frame
// collapse into one.
func (s *Scheduler) Invalidate() {
	s.mu.Lock()
	s.dirty = true
	s.mu.Unlock()
}

// InvalidateForce requests a redraw that happens even if the tree hash
// did not change.
func (s *Scheduler) InvalidateForce() {
	s.mu.Lock()
	s.dirty, s.force = true, true
	s.mu.Unlock()
}

// Frame renders if a redraw is pending and reports whether it did.
func (s *Scheduler) Frame() (RenderStats, bool) {
	s.mu.Lock()
	if !s.dirty || s.tree == nil {
		s.mu.Unlock()
		return RenderStats{}, false
	}
	h := TreeHash(s.tree)
	if !s.force && s.rendered && h == s.lastHash {
		s.dirty = false
		s.mu.Unlock()
		return RenderStats{}, false
	}

	stats := s.comp.Render(s.tree, s.surface, s.viewport)
	s.lastHash, s.rendered = h, true
	s.dirty, s.force = false, false
	fn := s.onFrame
	s.mu.Unlock()

	// Called unlocked so the callback may invalidate or swap the tree.
	if fn != nil {
		fn(stats)
	}
	return stats, true
}

// Run drives frames every interval until ctx is done. Finished decodes
// force the next frame.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	ready := s.comp.Images().Ready()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case src := <-ready:
			Logger().Debug("artboard: image ready", "source", sourceLabel(src))
			s.InvalidateForce()
		case <-ticker.C:
			s.Frame()
		}
	}
}

// TreeHash digests everything visible about a tree: the artboard, the
// layer order and every layer's content hash plus the fields ContentHash
// leaves out (position, rotation, visibility).
func TreeHash(t *Tree) uint64 {
	h := hasher{fnv.New64a()}
	ab := t.Artboard
	h.str(ab.ID)
	h.int(ab.Width)
	h.int(ab.Height)
	h.color(ab.Background)
	h.int(len(ab.Layers))
	for _, id := range ab.Layers {
		h.str(id)
	}
	for _, id := range t.IDs() {
		l := t.layers[id]
		e := l.Base()
		h.str(id)
		h.int(int(ContentHash(l)))
		h.floats(e.Transform.X, e.Transform.Y, e.Transform.Rotation)
		h.bools(e.Visible)
	}
	return h.Sum64()
}
