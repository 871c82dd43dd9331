package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Style selects a face within a family.
type Style struct {
	Bold   bool
	Italic bool
}

// String returns "regular", "bold", "italic" or "bold italic".
func (s Style) String() string {
	switch {
	case s.Bold && s.Italic:
		return "bold italic"
	case s.Bold:
		return "bold"
	case s.Italic:
		return "italic"
	default:
		return "regular"
	}
}

// PathSink receives glyph outlines in pixel coordinates, y down.
type PathSink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	Close()
}

// Metrics holds line metrics in pixels at a given size.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the line.
	Ascent float64
	// Descent is the distance from the baseline to the bottom, positive.
	Descent float64
	// Height is the recommended baseline-to-baseline distance.
	Height float64
}

// Face is one parsed font file. It is safe for concurrent use.
type Face struct {
	family string
	style  Style

	// outlines and metrics
	sf *sfnt.Font
	// shaping; font.Font is read-only and shareable
	gt *font.Font

	buffers sync.Pool
}

// ParseFace parses TTF or OTF data.
func ParseFace(family string, style Style, data []byte) (*Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	sf, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse %s %s: %w", family, style, err)
	}
	gt, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse %s %s for shaping: %w", family, style, err)
	}
	return &Face{
		family: family,
		style:  style,
		sf:     sf,
		gt:     gt.Font,
		buffers: sync.Pool{
			New: func() any { return new(sfnt.Buffer) },
		},
	}, nil
}

// Family returns the family the face was registered under.
func (f *Face) Family() string { return f.family }

// Style returns the face style.
func (f *Face) Style() Style { return f.style }

// Metrics returns line metrics at size pixels per em.
func (f *Face) Metrics(size float64) Metrics {
	buf := f.buffers.Get().(*sfnt.Buffer)
	defer f.buffers.Put(buf)

	m, err := f.sf.Metrics(buf, toFixed(size), xfont.HintingNone)
	if err != nil {
		return Metrics{Ascent: size * 0.8, Descent: size * 0.2, Height: size * 1.2}
	}
	return Metrics{
		Ascent:  fromFixed(m.Ascent),
		Descent: fromFixed(m.Descent),
		Height:  fromFixed(m.Height),
	}
}

// AppendOutline streams the outline of glyph id at size into sink, with
// the glyph origin (on the baseline) at (x, y). Glyphs without an outline,
// such as spaces, append nothing.
func (f *Face) AppendOutline(sink PathSink, id uint16, size, x, y float64) error {
	buf := f.buffers.Get().(*sfnt.Buffer)
	defer f.buffers.Put(buf)

	segs, err := f.sf.LoadGlyph(buf, sfnt.GlyphIndex(id), toFixed(size), nil)
	if err != nil {
		return fmt.Errorf("text: glyph %d: %w", id, err)
	}
	pt := func(p fixed.Point26_6) (float64, float64) {
		return x + fromFixed(p.X), y + fromFixed(p.Y)
	}
	open := false
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				sink.Close()
			}
			sink.MoveTo(pt(s.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			sink.LineTo(pt(s.Args[0]))
		case sfnt.SegmentOpQuadTo:
			cx, cy := pt(s.Args[0])
			px, py := pt(s.Args[1])
			sink.QuadTo(cx, cy, px, py)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := pt(s.Args[0])
			c2x, c2y := pt(s.Args[1])
			px, py := pt(s.Args[2])
			sink.CubicTo(c1x, c1y, c2x, c2y, px, py)
		}
	}
	if open {
		sink.Close()
	}
	return nil
}

// GlyphIndex returns the glyph for r, or 0 (.notdef) if the face lacks it.
func (f *Face) GlyphIndex(r rune) uint16 {
	buf := f.buffers.Get().(*sfnt.Buffer)
	defer f.buffers.Put(buf)

	gid, err := f.sf.GlyphIndex(buf, r)
	if err != nil {
		return 0
	}
	return uint16(gid)
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
