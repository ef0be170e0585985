package theme

// Builder accumulates tokens for programmatic Theme construction. Zero
// value is not usable; start with NewBuilder.
type Builder struct {
	name     string
	typ      Type
	colors   map[string]string
	fonts    map[string]string
	metadata map[string]string
}

// NewBuilder starts a builder for a theme with the given name and type.
func NewBuilder(name string, typ Type) *Builder {
	return &Builder{
		name:     name,
		typ:      typ,
		colors:   make(map[string]string),
		fonts:    make(map[string]string),
		metadata: make(map[string]string),
	}
}

// Color sets a color token.
func (b *Builder) Color(tok, value string) *Builder {
	b.colors[tok] = value
	return b
}

// Font sets a font token (family list, size, weight, line height or
// spacing, in raw string form).
func (b *Builder) Font(tok, value string) *Builder {
	b.fonts[tok] = value
	return b
}

// Meta sets a metadata entry.
func (b *Builder) Meta(key, value string) *Builder {
	b.metadata[key] = value
	return b
}

// Build validates and constructs the Theme.
func (b *Builder) Build() (*Theme, error) {
	return New(b.name, b.typ, b.colors, b.fonts, b.metadata)
}
