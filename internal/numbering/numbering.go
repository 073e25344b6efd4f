package numbering

import "fmt"

// Indent is the paragraph indentation carried by a numbering level, in
// twips.
type Indent struct {
	Left    int
	Hanging int
}

// Definition is one numbering identity. Every ordered list in a document
// gets its own Definition so ordinals never continue across unrelated
// lists.
type Definition struct {
	Reference string // unique within one document
	Format    string
	LevelText string
	Indent    Indent
}

// Registry allocates numbering definitions for one document. It grows
// lazily and has no ceiling.
type Registry struct {
	defs []Definition
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Allocate returns a fresh definition with a discriminator no earlier
// allocation used.
func (r *Registry) Allocate() Definition {
	def := Definition{
		Reference: fmt.Sprintf("ordered-list-%d", len(r.defs)+1),
		Format:    "decimal",
		LevelText: "%1.",
		Indent:    Indent{Left: 720, Hanging: 360},
	}
	r.defs = append(r.defs, def)
	return def
}

// Definitions returns every definition allocated so far, in allocation
// order.
func (r *Registry) Definitions() []Definition {
	out := make([]Definition, len(r.defs))
	copy(out, r.defs)
	return out
}

// Len reports how many definitions have been allocated.
func (r *Registry) Len() int {
	return len(r.defs)
}
