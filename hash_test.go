package artboard

import "testing"

func imageLayer() *ImageLayer {
	return &ImageLayer{
		Envelope: Envelope{
			ID:        "img",
			Name:      "Photo",
			Visible:   true,
			Transform: Transform{X: 10, Y: 20, Width: 100, Height: 80, Opacity: 1},
		},
		AssetID: "asset-1",
		Filters: DefaultImageFilters(),
	}
}

func TestContentHashIgnoresPlacement(t *testing.T) {
	base := ContentHash(imageLayer())

	tests := []struct {
		name   string
		mutate func(l *ImageLayer)
	}{
		{"name", func(l *ImageLayer) { l.Name = "Renamed" }},
		{"locked", func(l *ImageLayer) { l.Locked = true }},
		{"visible", func(l *ImageLayer) { l.Visible = false }},
		{"parent", func(l *ImageLayer) { l.ParentID = "group" }},
		{"position", func(l *ImageLayer) { l.Transform.X, l.Transform.Y = 300, 400 }},
		{"rotation", func(l *ImageLayer) { l.Transform.Rotation = 45 }},
		{"disabled shadow colour", func(l *ImageLayer) { l.Effects.Shadow.Color = Red }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := imageLayer()
			tt.mutate(l)
			if got := ContentHash(l); got != base {
				t.Errorf("ContentHash changed after %s", tt.name)
			}
		})
	}
}

func TestContentHashTracksContent(t *testing.T) {
	base := ContentHash(imageLayer())

	tests := []struct {
		name   string
		mutate func(l *ImageLayer)
	}{
		{"width", func(l *ImageLayer) { l.Transform.Width = 101 }},
		{"opacity", func(l *ImageLayer) { l.Transform.Opacity = 0.5 }},
		{"scale", func(l *ImageLayer) { l.Transform.ScaleX = 2 }},
		{"skew", func(l *ImageLayer) { l.Transform.SkewY = 10 }},
		{"flip", func(l *ImageLayer) { l.FlipX = true }},
		{"blend", func(l *ImageLayer) { l.Effects.BlendMode = BlendMultiply }},
		{"asset", func(l *ImageLayer) { l.AssetID = "asset-2" }},
		{"crop", func(l *ImageLayer) { l.Crop = &Rect{Width: 10, Height: 10} }},
		{"brightness", func(l *ImageLayer) { l.Filters.Brightness = 101 }},
		{"contrast", func(l *ImageLayer) { l.Filters.Contrast = 99 }},
		{"saturation", func(l *ImageLayer) { l.Filters.Saturation = 120 }},
		{"exposure", func(l *ImageLayer) { l.Filters.Exposure = 1 }},
		{"highlights", func(l *ImageLayer) { l.Filters.Highlights = -1 }},
		{"shadows", func(l *ImageLayer) { l.Filters.Shadows = 1 }},
		{"vibrance", func(l *ImageLayer) { l.Filters.Vibrance = 1 }},
		{"clarity", func(l *ImageLayer) { l.Filters.Clarity = 1 }},
		{"hue", func(l *ImageLayer) { l.Filters.HueRotate = 1 }},
		{"grayscale", func(l *ImageLayer) { l.Filters.Grayscale = 1 }},
		{"sepia", func(l *ImageLayer) { l.Filters.Sepia = 1 }},
		{"invert", func(l *ImageLayer) { l.Filters.Invert = 1 }},
		{"blur", func(l *ImageLayer) { l.Filters.Blur = 1 }},
		{"blur type", func(l *ImageLayer) { l.Filters.BlurType = BlurMotion }},
		{"blur angle", func(l *ImageLayer) { l.Filters.BlurAngle = 1 }},
		{"shadow", func(l *ImageLayer) { l.Effects.Shadow.Enabled = true }},
		{"glow", func(l *ImageLayer) { l.Effects.Glow.Enabled = true }},
		{"outline", func(l *ImageLayer) { l.Effects.Stroke.Enabled = true }},
		{"posterize", func(l *ImageLayer) { l.Effects.Adjustments.Posterize = 4 }},
		{"vignette", func(l *ImageLayer) { l.Effects.Adjustments.Vignette = Vignette{Enabled: true, Amount: 20} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := imageLayer()
			tt.mutate(l)
			if got := ContentHash(l); got == base {
				t.Errorf("ContentHash unchanged after %s", tt.name)
			}
		})
	}
}

func TestContentHashGlowIgnoresOffset(t *testing.T) {
	l := imageLayer()
	l.Effects.Glow = GlowEffect{ShadowEffect: ShadowEffect{Enabled: true, Color: RGB(1, 1, 0), Blur: 6}, Intensity: 1}
	base := ContentHash(l)

	l.Effects.Glow.OffsetX, l.Effects.Glow.OffsetY = 12, -4
	if ContentHash(l) != base {
		t.Error("glow offset changed the content hash")
	}
	l.Effects.Glow.Intensity = 2
	if ContentHash(l) == base {
		t.Error("glow intensity did not change the content hash")
	}
}

func TestContentHashKinds(t *testing.T) {
	txt := &TextLayer{Envelope: Envelope{ID: "t"}, Content: "Hello"}
	h1 := ContentHash(txt)
	txt.Content = "Hello!"
	if ContentHash(txt) == h1 {
		t.Error("text content change kept the hash")
	}
	h2 := ContentHash(txt)
	txt.Style.Gradient.Stops = []ColorStop{{Offset: 0, Color: Red}}
	if ContentHash(txt) == h2 {
		t.Error("gradient stop change kept the hash")
	}

	sh := rectLayer("s", 0, 0, 10, 10, Red)
	h3 := ContentHash(sh)
	sh.Points = []Point{{X: 1, Y: 1}}
	if ContentHash(sh) == h3 {
		t.Error("shape points change kept the hash")
	}
	h4 := ContentHash(sh)
	sh.Style.CornerRadii.TopLeft = 4
	if ContentHash(sh) == h4 {
		t.Error("corner radius change kept the hash")
	}

	// Same fields, different kind.
	a := &TextLayer{Envelope: Envelope{ID: "x"}}
	b := &GroupLayer{Envelope: Envelope{ID: "x"}}
	if ContentHash(a) == ContentHash(b) {
		t.Error("text and group layers hashed equal")
	}
}

func TestContentHashDeterministic(t *testing.T) {
	if ContentHash(imageLayer()) != ContentHash(imageLayer()) {
		t.Error("ContentHash is not deterministic")
	}
}
