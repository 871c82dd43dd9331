package text

import (
	"slices"
	"strings"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Built-in family names.
const (
	FamilyGo     = "Go"
	FamilyGoMono = "Go Mono"
)

// Registry maps family names to faces. Lookups are case-insensitive.
// Registry is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	families map[string]map[Style]*Face
	names    map[string]string
	fallback string
}

// NewRegistry returns a registry preloaded with the Go fonts. Unknown
// families fall back to FamilyGo; "monospace" resolves to FamilyGoMono.
func NewRegistry() *Registry {
	r := &Registry{
		families: make(map[string]map[Style]*Face),
		names:    make(map[string]string),
		fallback: strings.ToLower(FamilyGo),
	}
	builtin := []struct {
		family string
		style  Style
		data   []byte
	}{
		{FamilyGo, Style{}, goregular.TTF},
		{FamilyGo, Style{Bold: true}, gobold.TTF},
		{FamilyGo, Style{Italic: true}, goitalic.TTF},
		{FamilyGo, Style{Bold: true, Italic: true}, gobolditalic.TTF},
		{FamilyGoMono, Style{}, gomono.TTF},
	}
	for _, b := range builtin {
		// The embedded fonts are known to parse.
		_ = r.Register(b.family, b.style, b.data)
	}
	r.Alias("monospace", FamilyGoMono)
	return r
}

// Register parses data and adds it as the given style of family,
// replacing any previous face.
func (r *Registry) Register(family string, style Style, data []byte) error {
	family = strings.TrimSpace(family)
	if family == "" {
		return ErrEmptyFamily
	}
	face, err := ParseFace(family, style, data)
	if err != nil {
		return err
	}

	key := strings.ToLower(family)
	r.mu.Lock()
	defer r.mu.Unlock()
	styles, ok := r.families[key]
	if !ok {
		styles = make(map[Style]*Face)
		r.families[key] = styles
	}
	styles[style] = face
	r.names[key] = family
	return nil
}

// Alias makes name resolve to an existing family.
func (r *Registry) Alias(name, family string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if styles, ok := r.families[strings.ToLower(family)]; ok {
		r.families[strings.ToLower(name)] = styles
	}
}

// Face returns the best match for family and style. It tries the exact
// style, then the family's regular face, then the fallback family in the
// requested style. It never returns nil for a registry built by
// NewRegistry.
func (r *Registry) Face(family string, style Style) *Face {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if styles, ok := r.families[strings.ToLower(strings.TrimSpace(family))]; ok {
		if f := pick(styles, style); f != nil {
			return f
		}
	}
	return pick(r.families[r.fallback], style)
}

// pick prefers the exact style, then dropping italic, then dropping bold.
func pick(styles map[Style]*Face, s Style) *Face {
	for _, try := range []Style{s, {Bold: s.Bold}, {Italic: s.Italic}, {}} {
		if f, ok := styles[try]; ok {
			return f
		}
	}
	return nil
}

// Families returns the registered family names, sorted. Aliases are not
// listed.
func (r *Registry) Families() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}
