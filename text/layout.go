package text

import (
	"math"
	"strings"
)

// Align is the horizontal alignment of lines within the layout width.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// DefaultLineHeight is the baseline step as a multiple of the font size.
const DefaultLineHeight = 1.2

// LayoutOptions controls multi-line layout.
type LayoutOptions struct {
	// Size is the font size in pixels per em.
	Size float64

	// LineHeight multiplies Size to get the baseline step. Zero means
	// DefaultLineHeight.
	LineHeight float64

	LetterSpacing float64
	Align         Align

	// Width is the box lines are aligned in. Zero aligns within the
	// longest line.
	Width float64
}

// PositionedLine is a shaped line placed in the layout box.
type PositionedLine struct {
	Line

	// X is the left edge of the line; Baseline its baseline.
	X        float64
	Baseline float64
}

// Layout is a block of lines.
type Layout struct {
	Lines []PositionedLine

	// Width is the longest line width; Height spans from the first line's
	// top to the last line's bottom.
	Width  float64
	Height float64

	Metrics Metrics
}

// Layout splits content on '\n', shapes each line and positions the lines
// top-down from y = 0. The first baseline sits at the font ascent and each
// following one LineHeight*Size lower.
func (s *Shaper) Layout(face *Face, content string, opts LayoutOptions) *Layout {
	lh := opts.LineHeight
	if lh <= 0 {
		lh = DefaultLineHeight
	}
	step := opts.Size * lh
	m := face.Metrics(opts.Size)

	raw := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	lay := &Layout{Lines: make([]PositionedLine, len(raw)), Metrics: m}
	for i, text := range raw {
		line := s.ShapeLine(face, text, opts.Size, opts.LetterSpacing)
		lay.Lines[i] = PositionedLine{Line: line, Baseline: m.Ascent + float64(i)*step}
		lay.Width = math.Max(lay.Width, line.Width)
	}

	box := opts.Width
	if box <= 0 {
		box = lay.Width
	}
	for i := range lay.Lines {
		l := &lay.Lines[i]
		switch opts.Align {
		case AlignCenter:
			l.X = (box - l.Width) / 2
		case AlignRight:
			l.X = box - l.Width
		}
	}
	lay.Height = m.Ascent + m.Descent + float64(len(raw)-1)*step
	return lay
}

// Measure returns the width of the longest line and the block height
// without keeping the glyphs.
func (s *Shaper) Measure(face *Face, content string, opts LayoutOptions) (width, height float64) {
	lay := s.Layout(face, content, opts)
	return lay.Width, lay.Height
}
