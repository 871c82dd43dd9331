package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/artboard"
	"gopkg.in/yaml.v3"
)

// Project is the YAML document the command renders.
type Project struct {
	Artboard ArtboardDoc `yaml:"artboard"`
	Assets   []AssetDoc  `yaml:"assets"`
	// Layers are listed topmost first.
	Layers   []LayerDoc  `yaml:"layers"`
	Retouch  []StrokeDoc `yaml:"retouch"`

	dir string
}

type ArtboardDoc struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background Color  `yaml:"background"`
}

// AssetDoc names an image. Source is a data URL or a file path relative to
// the project file.
type AssetDoc struct {
	ID     string `yaml:"id"`
	Source string `yaml:"source"`
}

// Color decodes CSS colour strings.
type Color struct {
	artboard.RGBA
}

func (c *Color) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	v, ok := artboard.ParseColor(s)
	if !ok {
		return fmt.Errorf("line %d: invalid colour %q", n.Line, s)
	}
	c.RGBA = v
	return nil
}

type ShadowDoc struct {
	Color   Color   `yaml:"color"`
	Blur    float64 `yaml:"blur"`
	OffsetX float64 `yaml:"offsetX"`
	OffsetY float64 `yaml:"offsetY"`
	Opacity float64 `yaml:"opacity"`
}

func (d *ShadowDoc) effect() artboard.ShadowEffect {
	if d == nil {
		return artboard.ShadowEffect{}
	}
	return artboard.ShadowEffect{
		Enabled: true,
		Color:   d.Color.RGBA,
		Blur:    d.Blur,
		OffsetX: d.OffsetX,
		OffsetY: d.OffsetY,
		Opacity: d.Opacity,
	}
}

type GlowDoc struct {
	Color     Color   `yaml:"color"`
	Blur      float64 `yaml:"blur"`
	Intensity float64 `yaml:"intensity"`
}

type OutlineDoc struct {
	Color Color   `yaml:"color"`
	Width float64 `yaml:"width"`
}

func (d *OutlineDoc) outline() artboard.Outline {
	if d == nil {
		return artboard.Outline{}
	}
	return artboard.Outline{Enabled: true, Color: d.Color.RGBA, Width: d.Width}
}

type GradientDoc struct {
	Kind  string    `yaml:"kind"`
	Angle float64   `yaml:"angle"`
	Stops []StopDoc `yaml:"stops"`
}

type StopDoc struct {
	Offset float64 `yaml:"offset"`
	Color  Color   `yaml:"color"`
}

func (d *GradientDoc) gradient() artboard.Gradient {
	if d == nil {
		return artboard.Gradient{}
	}
	g := artboard.Gradient{Enabled: true, Kind: artboard.GradientKind(d.Kind), Angle: d.Angle}
	if g.Kind == "" {
		g.Kind = artboard.GradientLinear
	}
	for _, s := range d.Stops {
		g.Stops = append(g.Stops, artboard.ColorStop{Offset: s.Offset, Color: s.Color.RGBA})
	}
	return g
}

// FiltersDoc leaves unset percentages neutral.
type FiltersDoc struct {
	Brightness *float64 `yaml:"brightness"`
	Contrast   *float64 `yaml:"contrast"`
	Saturation *float64 `yaml:"saturation"`
	Exposure   float64  `yaml:"exposure"`
	Highlights float64  `yaml:"highlights"`
	Shadows    float64  `yaml:"shadows"`
	Vibrance   float64  `yaml:"vibrance"`
	Clarity    float64  `yaml:"clarity"`
	HueRotate  float64  `yaml:"hueRotate"`
	Grayscale  float64  `yaml:"grayscale"`
	Sepia      float64  `yaml:"sepia"`
	Invert     float64  `yaml:"invert"`
	Blur       float64  `yaml:"blur"`
	BlurType   string   `yaml:"blurType"`
	BlurAngle  float64  `yaml:"blurAngle"`
}

func (d *FiltersDoc) filters() artboard.ImageFilters {
	f := artboard.DefaultImageFilters()
	if d == nil {
		return f
	}
	if d.Brightness != nil {
		f.Brightness = *d.Brightness
	}
	if d.Contrast != nil {
		f.Contrast = *d.Contrast
	}
	if d.Saturation != nil {
		f.Saturation = *d.Saturation
	}
	f.Exposure, f.Highlights, f.Shadows = d.Exposure, d.Highlights, d.Shadows
	f.Vibrance, f.Clarity, f.HueRotate = d.Vibrance, d.Clarity, d.HueRotate
	f.Grayscale, f.Sepia, f.Invert = d.Grayscale, d.Sepia, d.Invert
	f.Blur, f.BlurAngle = d.Blur, d.BlurAngle
	if d.BlurType != "" {
		f.BlurType = artboard.BlurType(d.BlurType)
	}
	return f
}

// AdjustDoc mirrors artboard.Adjustments; absent sections are disabled.
type AdjustDoc struct {
	Levels *struct {
		InBlack  float64 `yaml:"inBlack"`
		InWhite  float64 `yaml:"inWhite"`
		Gamma    float64 `yaml:"gamma"`
		OutBlack float64 `yaml:"outBlack"`
		OutWhite float64 `yaml:"outWhite"`
	} `yaml:"levels"`
	Curves    [][2]float64 `yaml:"curves"`
	Posterize int          `yaml:"posterize"`
	Threshold int          `yaml:"threshold"`
	Vignette  *struct {
		Amount  float64 `yaml:"amount"`
		Size    float64 `yaml:"size"`
		Feather float64 `yaml:"feather"`
	} `yaml:"vignette"`
}

func (d *AdjustDoc) adjustments() artboard.Adjustments {
	var a artboard.Adjustments
	if d == nil {
		return a
	}
	if l := d.Levels; l != nil {
		a.Levels = artboard.Levels{
			Enabled:  true,
			InBlack:  l.InBlack,
			InWhite:  l.InWhite,
			Gamma:    l.Gamma,
			OutBlack: l.OutBlack,
			OutWhite: l.OutWhite,
		}
	}
	if len(d.Curves) > 0 {
		a.Curves.Enabled = true
		for _, p := range d.Curves {
			a.Curves.Points = append(a.Curves.Points, artboard.Pt(p[0], p[1]))
		}
	}
	a.Posterize, a.Threshold = d.Posterize, d.Threshold
	if v := d.Vignette; v != nil {
		a.Vignette = artboard.Vignette{Enabled: true, Amount: v.Amount, Size: v.Size, Feather: v.Feather}
	}
	return a
}

// LayerDoc is one layer of any type; Type selects which fields apply.
type LayerDoc struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	Hidden bool   `yaml:"hidden"`
	Locked bool   `yaml:"locked"`

	X        float64  `yaml:"x"`
	Y        float64  `yaml:"y"`
	Width    float64  `yaml:"width"`
	Height   float64  `yaml:"height"`
	Rotation float64  `yaml:"rotation"`
	ScaleX   float64  `yaml:"scaleX"`
	ScaleY   float64  `yaml:"scaleY"`
	SkewX    float64  `yaml:"skewX"`
	SkewY    float64  `yaml:"skewY"`
	Opacity  *float64 `yaml:"opacity"`
	FlipX    bool     `yaml:"flipX"`
	FlipY    bool     `yaml:"flipY"`

	Blend       string      `yaml:"blend"`
	Shadow      *ShadowDoc  `yaml:"shadow"`
	InnerShadow *ShadowDoc  `yaml:"innerShadow"`
	Glow        *GlowDoc    `yaml:"glow"`
	Outline     *OutlineDoc `yaml:"outline"`
	Adjust      *AdjustDoc  `yaml:"adjust"`

	// image
	Asset   string         `yaml:"asset"`
	Crop    *artboard.Rect `yaml:"crop"`
	Filters *FiltersDoc    `yaml:"filters"`

	// text
	Text          string     `yaml:"text"`
	Font          string     `yaml:"font"`
	FontSize      float64    `yaml:"fontSize"`
	FontWeight    int        `yaml:"fontWeight"`
	Italic        bool       `yaml:"italic"`
	Color         Color      `yaml:"color"`
	Align         string     `yaml:"align"`
	LineHeight    float64    `yaml:"lineHeight"`
	LetterSpacing float64    `yaml:"letterSpacing"`
	Plate         *PlateDoc  `yaml:"plate"`
	TextShadow    *ShadowDoc `yaml:"textShadow"`

	// shape
	Shape      string       `yaml:"shape"`
	Fill       *Color       `yaml:"fill"`
	Noise      float64      `yaml:"noise"`
	Seed       uint32       `yaml:"seed"`
	Stroke     *OutlineDoc  `yaml:"stroke"`
	Dash       string       `yaml:"dash"`
	Radius     float64      `yaml:"radius"`
	Sides      int          `yaml:"sides"`
	StarPoints int          `yaml:"starPoints"`
	InnerRatio float64      `yaml:"innerRatio"`
	Closed     bool         `yaml:"closed"`
	ArrowHead  float64      `yaml:"arrowHead"`
	Points     [][2]float64 `yaml:"points"`
	Gradient   *GradientDoc `yaml:"gradient"`

	// group, topmost first
	Children []LayerDoc `yaml:"children"`
}

// PlateDoc is the background plate behind text.
type PlateDoc struct {
	Color   Color   `yaml:"color"`
	Padding float64 `yaml:"padding"`
	Radius  float64 `yaml:"radius"`
}

// StrokeDoc is one retouch stroke replayed on an image layer, in artboard
// coordinates.
type StrokeDoc struct {
	Layer    string       `yaml:"layer"`
	Tool     string       `yaml:"tool"`
	Size     float64      `yaml:"size"`
	Hardness *float64     `yaml:"hardness"`
	Opacity  *float64     `yaml:"opacity"`
	Flow     *float64     `yaml:"flow"`
	Color    *Color       `yaml:"color"`
	Mode     string       `yaml:"mode"`
	Aligned  *bool        `yaml:"aligned"`
	Source   *[2]float64  `yaml:"source"`
	// Points are x, y and pressure.
	Points   [][3]float64 `yaml:"points"`
}

// LoadProject reads and decodes a project file.
func LoadProject(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := ParseProject(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p.dir = filepath.Dir(path)
	return p, nil
}

// ParseProject decodes a project document.
func ParseProject(data []byte) (*Project, error) {
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	if p.Artboard.Width <= 0 || p.Artboard.Height <= 0 {
		return nil, errors.New("artboard needs a positive width and height")
	}
	if p.Artboard.ID == "" {
		p.Artboard.ID = "artboard"
	}
	return &p, nil
}

// AssetStore returns the project assets.
func (p *Project) AssetStore() artboard.MapAssets {
	m := artboard.MapAssets{}
	for _, a := range p.Assets {
		m.Put(artboard.MediaAsset{ID: a.ID, Source: a.Source})
	}
	return m
}

// Tree builds the layer tree. Layers are added bottom first so that the
// first listed layer ends up topmost.
func (p *Project) Tree() (*artboard.Tree, error) {
	ab := p.Artboard
	tree := artboard.NewTree(artboard.Artboard{
		ID:         ab.ID,
		Name:       ab.Name,
		Width:      ab.Width,
		Height:     ab.Height,
		Background: ab.Background.RGBA,
	})
	if err := addLayers(tree, "", p.Layers); err != nil {
		return nil, err
	}
	if err := tree.Validate(); err != nil {
		return nil, err
	}
	return tree, nil
}

func addLayers(tree *artboard.Tree, parent string, docs []LayerDoc) error {
	for i := len(docs) - 1; i >= 0; i-- {
		d := docs[i]
		l, err := d.layer(parent)
		if err != nil {
			return err
		}
		if err := tree.Add(l); err != nil {
			return fmt.Errorf("layer %q: %w", d.ID, err)
		}
		if len(d.Children) > 0 {
			if err := addLayers(tree, d.ID, d.Children); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d LayerDoc) envelope(parent string) artboard.Envelope {
	opacity := 1.0
	if d.Opacity != nil {
		opacity = *d.Opacity
	}
	e := artboard.Envelope{
		ID:       d.ID,
		Name:     d.Name,
		ParentID: parent,
		Visible:  !d.Hidden,
		Locked:   d.Locked,
		Transform: artboard.Transform{
			X: d.X, Y: d.Y, Width: d.Width, Height: d.Height,
			Rotation: d.Rotation,
			ScaleX:   d.ScaleX, ScaleY: d.ScaleY,
			SkewX: d.SkewX, SkewY: d.SkewY,
			Opacity: opacity,
		},
		FlipX: d.FlipX,
		FlipY: d.FlipY,
	}
	e.Effects = artboard.Effects{
		BlendMode:   artboard.BlendMode(d.Blend),
		Shadow:      d.Shadow.effect(),
		InnerShadow: d.InnerShadow.effect(),
		Stroke:      d.Outline.outline(),
		Adjustments: d.Adjust.adjustments(),
	}
	if g := d.Glow; g != nil {
		e.Effects.Glow = artboard.GlowEffect{
			ShadowEffect: artboard.ShadowEffect{Enabled: true, Color: g.Color.RGBA, Blur: g.Blur},
			Intensity:    g.Intensity,
		}
	}
	return e
}

func (d LayerDoc) layer(parent string) (artboard.Layer, error) {
	if d.ID == "" {
		return nil, errors.New("layer without id")
	}
	env := d.envelope(parent)
	switch strings.ToLower(d.Type) {
	case "image":
		return &artboard.ImageLayer{Envelope: env, AssetID: d.Asset, Crop: d.Crop, Filters: d.Filters.filters()}, nil
	case "text":
		return &artboard.TextLayer{Envelope: env, Content: d.Text, Style: d.textStyle()}, nil
	case "shape":
		return &artboard.ShapeLayer{Envelope: env, Kind: d.shapeKind(), Style: d.shapeStyle(), Points: d.points()}, nil
	case "group":
		return &artboard.GroupLayer{Envelope: env}, nil
	}
	return nil, fmt.Errorf("layer %q: unknown type %q", d.ID, d.Type)
}

func (d LayerDoc) textStyle() artboard.TextStyle {
	s := artboard.TextStyle{
		FontFamily:    d.Font,
		FontSize:      d.FontSize,
		FontWeight:    d.FontWeight,
		Italic:        d.Italic,
		Color:         d.Color.RGBA,
		Align:         artboard.TextAlign(d.Align),
		LineHeight:    d.LineHeight,
		LetterSpacing: d.LetterSpacing,
		Gradient:      d.Gradient.gradient(),
		Stroke:        d.Stroke.outline(),
	}
	if s.Color == (artboard.RGBA{}) {
		s.Color = artboard.Black
	}
	if pl := d.Plate; pl != nil {
		s.Background = artboard.TextBackground{Enabled: true, Color: pl.Color.RGBA, Padding: pl.Padding, Radius: pl.Radius}
	}
	if sh := d.TextShadow; sh != nil {
		s.Shadow = artboard.TextShadow{Enabled: true, Color: sh.Color.RGBA, Blur: sh.Blur, OffsetX: sh.OffsetX, OffsetY: sh.OffsetY}
	}
	return s
}

func (d LayerDoc) shapeKind() artboard.ShapeKind {
	if d.Shape == "" {
		return artboard.ShapeRectangle
	}
	return artboard.ShapeKind(d.Shape)
}

func (d LayerDoc) shapeStyle() artboard.ShapeStyle {
	s := artboard.ShapeStyle{
		FillType:    artboard.FillNone,
		Gradient:    d.Gradient.gradient(),
		NoiseAmount: d.Noise,
		NoiseSeed:   d.Seed,
		StrokeStyle: artboard.StrokeStyle(d.Dash),
		LineCap:     artboard.LineCapRound,
		LineJoin:    artboard.LineJoinRound,
		CornerRadii: artboard.CornerRadii{TopLeft: d.Radius, TopRight: d.Radius, BottomRight: d.Radius, BottomLeft: d.Radius},
		Sides:       d.Sides,
		StarPoints:  d.StarPoints,
		InnerRatio:  d.InnerRatio,
		Closed:      d.Closed,
		ArrowHead:   d.ArrowHead,
	}
	switch {
	case s.Gradient.Enabled:
		s.FillType = artboard.FillGradient
	case d.Noise > 0 && d.Fill != nil:
		s.FillType, s.Fill = artboard.FillNoise, d.Fill.RGBA
	case d.Fill != nil:
		s.FillType, s.Fill = artboard.FillSolid, d.Fill.RGBA
	}
	if st := d.Stroke; st != nil {
		s.StrokeColor, s.StrokeWidth = st.Color.RGBA, st.Width
	}
	return s
}

func (d LayerDoc) points() []artboard.Point {
	pts := make([]artboard.Point, 0, len(d.Points))
	for _, p := range d.Points {
		pts = append(pts, artboard.Pt(p[0], p[1]))
	}
	return pts
}
