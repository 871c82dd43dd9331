package artboard

import (
	"image"
	"image/color"

	"github.com/gogpu/artboard/internal/filter"
	"github.com/gogpu/artboard/text"
)

// DefaultFontSize is used for text layers without a font size.
const DefaultFontSize = 16

// drawText lays out the text layer and draws, in order, the background
// plate, the glyph shadow, the fill and the outline into dst at (pad, pad).
func (c *Compositor) drawText(dst *image.RGBA, pad int, l *TextLayer, w, _ int) {
	s := l.Style
	size := s.FontSize
	if size <= 0 {
		size = DefaultFontSize
	}
	face := c.fonts.Face(s.FontFamily, text.Style{Bold: s.FontWeight >= 600, Italic: s.Italic})
	lay := c.shaper.Layout(face, l.Content, text.LayoutOptions{
		Size:          size,
		LineHeight:    s.LineHeight,
		LetterSpacing: s.LetterSpacing,
		Align:         textAlign(s.Align),
		Width:         float64(w),
	})

	off := float64(pad)
	bw, bh := dst.Rect.Dx(), dst.Rect.Dy()

	// The block box spans the longest line at its aligned position.
	bounds := Rect{X: off + blockLeft(lay), Y: off, Width: lay.Width, Height: lay.Height}

	if bg := s.Background; bg.Enabled && bg.Color.A > 0 {
		plate := NewPath()
		r := bg.Radius
		plate.RoundedRectangle(bounds.X-bg.Padding, bounds.Y-bg.Padding,
			bounds.Width+2*bg.Padding, bounds.Height+2*bg.Padding,
			CornerRadii{TopLeft: r, TopRight: r, BottomRight: r, BottomLeft: r})
		paintMask(dst, FillMask(plate, bw, bh), SolidBrush{Color: bg.Color}, 1)
	}

	glyphs := NewPath()
	for _, line := range lay.Lines {
		for _, g := range line.Glyphs {
			x := off + line.X + g.X
			y := off + line.Baseline + g.Y
			if err := face.AppendOutline(glyphs, g.ID, size, x, y); err != nil {
				Logger().Debug("artboard: glyph outline", "layer", l.ID, "glyph", g.ID, "err", err)
			}
		}
	}
	if glyphs.Empty() {
		return
	}
	mask := FillMask(glyphs, bw, bh)

	if sh := s.Shadow; sh.Enabled {
		shadow := filter.Shadow{
			OffsetX: sh.OffsetX,
			OffsetY: sh.OffsetY,
			Sigma:   sh.Blur / 2,
			Color:   sh.Color.NRGBA(),
		}
		over(dst, shadow.Render(filter.Colorize(mask, color.NRGBA{A: 255})))
	}

	var fill Brush = SolidBrush{Color: s.Color}
	if s.Gradient.Enabled && len(s.Gradient.Stops) > 0 {
		fill = s.Gradient.Brush(bounds)
	}
	paintMask(dst, mask, fill, 1)

	if st := s.Stroke; st.Enabled && st.Width > 0 {
		outline := StrokeMask(glyphs, bw, bh, Stroke{Width: st.Width, Join: LineJoinRound, Cap: LineCapRound})
		paintMask(dst, outline, SolidBrush{Color: st.Color}, 1)
	}
}

// blockLeft returns the x of the leftmost line start.
func blockLeft(lay *text.Layout) float64 {
	if len(lay.Lines) == 0 {
		return 0
	}
	left := lay.Lines[0].X
	for _, l := range lay.Lines[1:] {
		left = min(left, l.X)
	}
	return left
}

func textAlign(a TextAlign) text.Align {
	switch a {
	case AlignCenter:
		return text.AlignCenter
	case AlignRight:
		return text.AlignRight
	default:
		return text.AlignLeft
	}
}
