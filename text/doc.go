// Package text lays out the text of text layers.
//
// A Registry maps font families to faces. NewRegistry preloads the Go font
// family (regular, bold, italic, bold italic and mono) so that text renders
// without any system fonts; further families can be registered from TTF or
// OTF data.
//
// Lines are shaped with the HarfBuzz implementation in go-text/typesetting,
// which handles kerning, ligatures and complex scripts. The paragraph
// direction of each line comes from the Unicode bidi algorithm. Glyph
// outlines are read with golang.org/x/image/font/sfnt and streamed into any
// PathSink, so callers can rasterise them with their own path type.
//
// Example:
//
//	reg := text.NewRegistry()
//	face := reg.Face("Go", text.Style{Bold: true})
//	lay := text.NewShaper().Layout(face, "Hello\nWorld", text.LayoutOptions{Size: 32})
//	for _, line := range lay.Lines {
//	    for _, g := range line.Glyphs {
//	        face.AppendOutline(sink, g.ID, 32, line.X+g.X, line.Baseline+g.Y)
//	    }
//	}
package text
