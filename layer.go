package artboard

import "github.com/gogpu/artboard/internal/blend"

// Layer is one node of the artboard tree.
//
// Layer is a sealed interface; only types in this package implement it:
//   - *ImageLayer: a placed media asset with filters
//   - *TextLayer: styled multi-line text
//   - *ShapeLayer: a filled and stroked vector shape
//   - *GroupLayer: an ordered list of child layer ids
//
// Every variant embeds Envelope, reachable through Base.
type Layer interface {
	// Base returns the common layer fields.
	Base() *Envelope

	isLayer()
}

// Envelope holds the fields shared by every layer kind.
type Envelope struct {
	ID       string
	Name     string
	ParentID string
	Visible  bool
	Locked   bool

	Transform Transform
	FlipX     bool
	FlipY     bool
	Effects   Effects
}

// Base returns e. It lets every variant satisfy Layer through embedding.
func (e *Envelope) Base() *Envelope { return e }

// Transform places a layer on the artboard. X and Y are the top-left
// corner of the untransformed box; rotation, scale and skew pivot on the
// box centre.
type Transform struct {
	X, Y          float64
	Width, Height float64

	// Rotation is clockwise in degrees.
	Rotation float64

	// ScaleX and ScaleY multiply the box size; zero means 1.
	ScaleX, ScaleY float64

	// SkewX and SkewY are in degrees.
	SkewX, SkewY float64

	// Opacity in [0, 1].
	Opacity float64
}

// scale returns ScaleX and ScaleY with zero mapped to 1.
func (t Transform) scale() (float64, float64) {
	sx, sy := t.ScaleX, t.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return sx, sy
}

// BlendMode names the layer compositing mode ("multiply", "color-dodge", ...).
// Unknown names composite as normal.
type BlendMode string

// Layer blend modes.
const (
	BlendNormal     BlendMode = "normal"
	BlendMultiply   BlendMode = "multiply"
	BlendScreen     BlendMode = "screen"
	BlendOverlay    BlendMode = "overlay"
	BlendDarken     BlendMode = "darken"
	BlendLighten    BlendMode = "lighten"
	BlendColorDodge BlendMode = "color-dodge"
	BlendColorBurn  BlendMode = "color-burn"
	BlendHardLight  BlendMode = "hard-light"
	BlendSoftLight  BlendMode = "soft-light"
	BlendDifference BlendMode = "difference"
	BlendExclusion  BlendMode = "exclusion"
	BlendHue        BlendMode = "hue"
	BlendSaturation BlendMode = "saturation"
	BlendColor      BlendMode = "color"
	BlendLuminosity BlendMode = "luminosity"
)

func (m BlendMode) op() blend.Mode {
	op, _ := blend.ParseMode(string(m))
	return op
}

// Effects are the decorations drawn around a layer's content.
type Effects struct {
	BlendMode   BlendMode
	Shadow      ShadowEffect
	InnerShadow ShadowEffect
	Glow        GlowEffect
	Stroke      Outline
	Adjustments Adjustments
}

// ShadowEffect is a canvas-style shadow. Blur follows canvas shadowBlur:
// a Gaussian of sigma Blur/2.
type ShadowEffect struct {
	Enabled bool
	Color   RGBA
	Blur    float64
	OffsetX float64
	OffsetY float64

	// Opacity scales the colour's alpha; zero means 1.
	Opacity float64
}

// GlowEffect is a shadow without offset, repeated to build up intensity.
// The offsets of the embedded ShadowEffect are ignored.
type GlowEffect struct {
	ShadowEffect

	// Intensity multiplies Blur; zero means 1.
	Intensity float64
}

// Outline is a solid stroke of a given width and colour.
type Outline struct {
	Enabled bool
	Color   RGBA
	Width   float64
}

// ImageLayer places a media asset.
type ImageLayer struct {
	Envelope

	AssetID string

	// Crop selects a sub-rectangle of the decoded bitmap, in bitmap pixels.
	// nil uses the whole bitmap.
	Crop *Rect

	Filters ImageFilters
}

// BlurType selects the image blur algorithm.
type BlurType string

const (
	BlurGaussian BlurType = "gaussian"
	BlurMotion   BlurType = "motion"
	BlurRadial   BlurType = "radial"
)

// ImageFilters is the per-image filter chain. Zero values are not neutral
// for the percentage fields; start from DefaultImageFilters.
type ImageFilters struct {
	// Brightness, Contrast and Saturation are percentages, 100 = unchanged.
	Brightness float64
	Contrast   float64
	Saturation float64

	// Exposure, Highlights, Shadows, Vibrance and Clarity range -100..100
	// and modulate brightness, contrast and saturation.
	Exposure   float64
	Highlights float64
	Shadows    float64
	Vibrance   float64
	Clarity    float64

	// HueRotate is in degrees.
	HueRotate float64

	// Grayscale, Sepia and Invert range 0..100.
	Grayscale float64
	Sepia     float64
	Invert    float64

	// Blur is the radius or distance in pixels; 0 disables blurring.
	Blur      float64
	BlurType  BlurType
	BlurAngle float64
}

// DefaultImageFilters returns the neutral filter chain.
func DefaultImageFilters() ImageFilters {
	return ImageFilters{Brightness: 100, Contrast: 100, Saturation: 100, BlurType: BlurGaussian}
}

// TextLayer draws styled text.
type TextLayer struct {
	Envelope

	// Content is split into lines on '\n'.
	Content string
	Style   TextStyle
}

// TextAlign is the horizontal alignment of text lines.
type TextAlign string

const (
	AlignLeft   TextAlign = "left"
	AlignCenter TextAlign = "center"
	AlignRight  TextAlign = "right"
)

// TextStyle describes how a TextLayer is drawn.
type TextStyle struct {
	FontFamily string
	FontSize   float64
	// FontWeight is a CSS weight; 600 and above selects bold.
	FontWeight int
	Italic     bool
	Color      RGBA
	Align      TextAlign

	// LineHeight multiplies FontSize to get the baseline step; zero means 1.2.
	LineHeight    float64
	LetterSpacing float64

	Background TextBackground
	Gradient   Gradient
	Stroke     Outline
	Shadow     TextShadow
}

// TextBackground is a rounded plate drawn behind the text.
type TextBackground struct {
	Enabled bool
	Color   RGBA
	Padding float64
	Radius  float64
}

// TextShadow is a drop shadow under the glyphs only.
type TextShadow struct {
	Enabled bool
	Color   RGBA
	Blur    float64
	OffsetX float64
	OffsetY float64
}

// ShapeKind names the geometry of a ShapeLayer.
type ShapeKind string

const (
	ShapeRectangle ShapeKind = "rectangle"
	ShapeEllipse   ShapeKind = "ellipse"
	ShapePolygon   ShapeKind = "polygon"
	ShapeStar      ShapeKind = "star"
	ShapePath      ShapeKind = "path"
	ShapeLine      ShapeKind = "line"
	ShapeArrow     ShapeKind = "arrow"
)

// FillType selects how a shape interior is painted.
type FillType string

const (
	FillSolid    FillType = "solid"
	FillGradient FillType = "gradient"
	FillNoise    FillType = "noise"
	FillNone     FillType = "none"
)

// ShapeLayer draws a vector shape inside the layer box.
type ShapeLayer struct {
	Envelope

	Kind  ShapeKind
	Style ShapeStyle

	// Points are in layer-local coordinates (0..Width, 0..Height). Paths use
	// them all; lines and arrows use the first and last.
	Points []Point
}

// ShapeStyle describes fill, stroke and kind-specific geometry.
type ShapeStyle struct {
	Fill     RGBA
	FillType FillType
	Gradient Gradient

	// NoiseAmount in 0..100.
	NoiseAmount float64
	NoiseSeed   uint32

	StrokeColor RGBA
	StrokeWidth float64
	StrokeStyle StrokeStyle
	LineCap     LineCap
	LineJoin    LineJoin

	// CornerRadii rounds rectangles.
	CornerRadii CornerRadii

	// Sides is the polygon side count; values below 3 mean 3.
	Sides int

	// StarPoints is the number of star tips; InnerRatio is the inner radius
	// as a fraction of the outer one (zero means 0.5).
	StarPoints int
	InnerRatio float64

	// Closed closes a freehand path.
	Closed bool

	// ArrowHead is the arrow head length; zero derives it from the stroke
	// width.
	ArrowHead float64
}

// GroupLayer composes its children with its own transform and opacity.
type GroupLayer struct {
	Envelope

	// Children are child layer ids, head is topmost.
	Children []string
}

func (*ImageLayer) isLayer() {}
func (*TextLayer) isLayer()  {}
func (*ShapeLayer) isLayer() {}
func (*GroupLayer) isLayer() {}
