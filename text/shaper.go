package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/text/unicode/bidi"
)

// Direction is the paragraph direction of a line.
type Direction int

const (
	LTR Direction = iota
	RTL
)

// String returns "ltr" or "rtl".
func (d Direction) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// Glyph is one shaped glyph. X and Y are the pen position of the glyph
// origin relative to the line origin on the baseline, y down.
type Glyph struct {
	ID      uint16
	X, Y    float64
	Advance float64
	// Cluster is the rune index in the line the glyph came from.
	Cluster int
}

// Line is one shaped line of text.
type Line struct {
	Text      string
	Glyphs    []Glyph
	Width     float64
	Direction Direction
}

// Shaper shapes lines with HarfBuzz. It is safe for concurrent use.
type Shaper struct {
	// HarfbuzzShaper holds scratch buffers and is not safe for concurrent
	// use, so instances are pooled.
	pool sync.Pool
}

// NewShaper creates a shaper.
func NewShaper() *Shaper {
	return &Shaper{
		pool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
	}
}

// ShapeLine shapes a single line (no '\n') at size pixels per em.
// letterSpacing is added after every glyph, as canvas letterSpacing does.
func (s *Shaper) ShapeLine(face *Face, line string, size, letterSpacing float64) Line {
	out := Line{Text: line, Direction: LineDirection(line)}
	runes := []rune(line)
	if len(runes) == 0 || face == nil || size <= 0 {
		return out
	}

	dir := di.DirectionLTR
	if out.Direction == RTL {
		dir = di.DirectionRTL
	}
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		// font.Face carries per-call caches; font.Font is shared.
		Face:     font.NewFace(face.gt),
		Size:     toFixed(size),
		Script:   detectScript(runes),
		Language: language.NewLanguage("en"),
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	shaped := hb.Shape(input)
	s.pool.Put(hb)

	out.Glyphs = make([]Glyph, len(shaped.Glyphs))
	var pen float64
	for i, g := range shaped.Glyphs {
		adv := fromFixed(g.Advance) + letterSpacing
		out.Glyphs[i] = Glyph{
			ID:      uint16(g.GlyphID),
			X:       pen + fromFixed(g.XOffset),
			Y:       -fromFixed(g.YOffset),
			Advance: adv,
			Cluster: g.TextIndex(),
		}
		pen += adv
	}
	out.Width = pen
	return out
}

// LineDirection returns the paragraph direction of line following rule
// P2 of the bidi algorithm: the class of the first strong character
// decides, LTR when there is none.
func LineDirection(line string) Direction {
	for _, r := range line {
		p, _ := bidi.LookupRune(r)
		switch p.Class() {
		case bidi.L:
			return LTR
		case bidi.R, bidi.AL:
			return RTL
		}
	}
	return LTR
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
