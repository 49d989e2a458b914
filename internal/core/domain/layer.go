package domain

// Layer is the name of an architectural layer. Layer names are
// configuration-driven; the classic hexagonal trio below is only the
// default vocabulary.
type Layer string

const (
	// LayerDomain is the innermost layer. By default it may depend on
	// nothing outside itself.
	LayerDomain Layer = "domain"

	// LayerApplication holds use cases. By default it may depend on
	// itself and domain.
	LayerApplication Layer = "application"

	// LayerInfrastructure holds adapters. By default it may depend on
	// itself, application and domain.
	LayerInfrastructure Layer = "infrastructure"

	// LayerUnclassified is the reserved tag for files matching no rule.
	// It cannot be used as a rule's layer name.
	LayerUnclassified Layer = "unclassified"
)

// LayerRule maps a path pattern to a layer. Rules are ordered and the
// first matching pattern wins; ordering is the configuration author's
// responsibility, there is no "most specific wins" heuristic.
type LayerRule struct {
	// Layer is the tag assigned to matching files.
	Layer Layer `toml:"layer" yaml:"layer" validate:"required"`

	// Pattern is a slash-separated glob. `*` matches within one path
	// segment, `**` spans segments, e.g. "src/domain/**".
	Pattern string `toml:"pattern" yaml:"pattern" validate:"required"`
}

// PolicyMatrix maps each layer to the set of layers it may depend on.
// A missing key means the layer may depend on nothing. The matrix is
// read-only configuration for the duration of a run.
type PolicyMatrix map[Layer][]Layer

// Allows reports whether an edge from layer `from` to layer `to` is
// permitted. Same-layer edges are only allowed when the layer's own
// name appears in its allowed set; nothing is implicit.
func (m PolicyMatrix) Allows(from, to Layer) bool {
	for _, allowed := range m[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Layers returns every layer named anywhere in the matrix, as keys or
// as allowed targets.
func (m PolicyMatrix) Layers() map[Layer]bool {
	out := make(map[Layer]bool, len(m))
	for from, targets := range m {
		out[from] = true
		for _, to := range targets {
			out[to] = true
		}
	}
	return out
}
