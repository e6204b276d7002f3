// Package material keeps the table of wall materials for a rendering
// context. It is filled once at startup and read by the projector.
package material

import (
	"fmt"
	"image/color"
	"log"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"chosenoffset.com/raycaster/internal/render"
)

// Spec describes one material to load.
type Spec struct {
	Tag     uint8
	Name    string
	Texture string     // Image path; empty means flat colour only
	Color   color.RGBA // Flat colour
}

// Fallback is drawn for tags that were never registered.
var Fallback = render.Material{Name: "missing", Color: color.RGBA{255, 0, 255, 255}}

// Registry maps cell tags to materials. Each tag has a lit variant and a
// shaded variant used for walls struck on their north/south faces.
type Registry struct {
	lit    map[uint8]render.Material
	shaded map[uint8]render.Material
	shade  float64
}

// NewRegistry creates an empty registry. shade in [0, 1] is how much darker
// the shaded variants are.
func NewRegistry(shade float64) *Registry {
	return &Registry{
		lit:    make(map[uint8]render.Material),
		shaded: make(map[uint8]render.Material),
		shade:  shade,
	}
}

// Register adds a material under m.Tag.
func (r *Registry) Register(m render.Material) error {
	if m.Tag == 0 {
		return fmt.Errorf("material %q: tag 0 is reserved for empty cells", m.Name)
	}
	if existing, exists := r.lit[m.Tag]; exists {
		return fmt.Errorf("tag %d already has a material registered: %s", m.Tag, existing.Name)
	}

	r.lit[m.Tag] = m

	dark := m
	dark.Color = Darken(m.Color, r.shade)
	dark.Shade = r.shade
	r.shaded[m.Tag] = dark

	return nil
}

// Load loads and registers every spec. A texture that cannot be loaded is a
// FatalInitError; images loaded before the failure are released.
func (r *Registry) Load(loader render.MaterialLoader, specs []Spec) error {
	for _, spec := range specs {
		m := render.Material{
			Tag:   spec.Tag,
			Name:  spec.Name,
			Color: spec.Color,
		}

		if spec.Texture != "" {
			img, err := loader.LoadMaterial(spec.Tag, spec.Texture)
			if err != nil {
				r.Dispose()
				return &render.FatalInitError{Op: fmt.Sprintf("load material %d (%s)", spec.Tag, spec.Name), Path: spec.Texture, Err: err}
			}
			m.Image = img
		}

		if err := r.Register(m); err != nil {
			if m.Image != nil {
				m.Image.Dispose()
			}
			r.Dispose()
			return &render.FatalInitError{Op: "register material", Err: err}
		}

		log.Printf("Registered material %d: %s", spec.Tag, describe(spec))
	}
	return nil
}

func describe(spec Spec) string {
	if spec.Texture != "" {
		return fmt.Sprintf("%s (%s)", spec.Name, spec.Texture)
	}
	return fmt.Sprintf("%s (flat #%02x%02x%02x)", spec.Name, spec.Color.R, spec.Color.G, spec.Color.B)
}

// Lookup returns the material for tag. Unknown tags get Fallback.
func (r *Registry) Lookup(tag uint8, shaded bool) render.Material {
	table := r.lit
	if shaded {
		table = r.shaded
	}
	if m, ok := table[tag]; ok {
		return m
	}
	m := Fallback
	m.Tag = tag
	return m
}

// Has reports whether tag is registered.
func (r *Registry) Has(tag uint8) bool {
	_, ok := r.lit[tag]
	return ok
}

// Tags returns all registered tags in ascending order.
func (r *Registry) Tags() []uint8 {
	tags := make([]uint8, 0, len(r.lit))
	for tag := range r.lit {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

// Dispose releases every loaded texture and empties the registry.
func (r *Registry) Dispose() {
	for tag, m := range r.lit {
		if m.Image != nil {
			m.Image.Dispose()
		}
		delete(r.lit, tag)
		delete(r.shaded, tag)
	}
}

// Darken blends c toward black in Lab space by amount.
func Darken(c color.RGBA, amount float64) color.RGBA {
	if amount <= 0 {
		return c
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return c
	}
	rr, gg, bb := cf.BlendLab(colorful.Color{}, min(amount, 1)).Clamped().RGB255()
	return color.RGBA{R: rr, G: gg, B: bb, A: c.A}
}
