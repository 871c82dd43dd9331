package retouch

import "github.com/gogpu/artboard"

// Session routes artboard pointer events to the active tool.
//
// Switching tools or deselecting cancels the active stroke; a dropped
// stroke changes nothing.
type Session struct {
	tool     Tool
	toPixels artboard.Matrix
	onCommit func(*Commit)
}

// NewSession creates a session without a tool. Pointer coordinates are
// passed through unchanged until SetTransform is called.
func NewSession() *Session {
	return &Session{toPixels: artboard.Identity()}
}

// Use makes t the active tool, cancelling the previous one.
func (s *Session) Use(t Tool) {
	if s.tool != nil && s.tool != t {
		s.tool.Cancel()
	}
	s.tool = t
}

// Tool returns the active tool or nil.
func (s *Session) Tool() Tool { return s.tool }

// Deselect cancels the active tool and clears it.
func (s *Session) Deselect() {
	if s.tool != nil {
		s.tool.Cancel()
	}
	s.tool = nil
}

// SetTransform sets the artboard-to-buffer matrix applied to pointer
// coordinates, usually artboard.Tree.PixelMatrix of the edited layer.
func (s *Session) SetTransform(m artboard.Matrix) { s.toPixels = m }

// OnCommit registers a callback run for every committed stroke.
func (s *Session) OnCommit(fn func(*Commit)) { s.onCommit = fn }

func (s *Session) point(x, y float64) artboard.Point {
	return s.toPixels.TransformPoint(artboard.Pt(x, y))
}

// Start begins a stroke at the artboard point (x, y).
func (s *Session) Start(x, y, pressure float64) {
	if s.tool == nil {
		return
	}
	p := s.point(x, y)
	s.tool.Start(p.X, p.Y, pressure)
}

// Continue extends the stroke to the artboard point (x, y).
func (s *Session) Continue(x, y, pressure float64) {
	if s.tool == nil {
		return
	}
	p := s.point(x, y)
	s.tool.Continue(p.X, p.Y, pressure)
}

// SetSource sets the sampling point of a clone stamp or healing brush at
// the artboard point (x, y). Other tools ignore it.
func (s *Session) SetSource(x, y float64) {
	src, ok := s.tool.(interface{ SetSource(x, y float64) })
	if !ok {
		return
	}
	p := s.point(x, y)
	src.SetSource(p.X, p.Y)
}

// End finishes the stroke and reports the commit, if any.
func (s *Session) End() (*Commit, bool) {
	if s.tool == nil {
		return nil, false
	}
	c, ok := s.tool.End()
	if ok && s.onCommit != nil {
		s.onCommit(c)
	}
	return c, ok
}

// Cancel drops the active stroke.
func (s *Session) Cancel() {
	if s.tool != nil {
		s.tool.Cancel()
	}
}
