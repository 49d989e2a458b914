package domain

// ImportKind identifies the syntactic form an import specifier was found in.
type ImportKind string

const (
	// ImportStatic is an `import ... from "x"` or bare `import "x"` statement.
	ImportStatic ImportKind = "static"

	// ImportReexport is an `export ... from "x"` statement.
	ImportReexport ImportKind = "reexport"

	// ImportRequire is a CommonJS `require("x")` call.
	ImportRequire ImportKind = "require"

	// ImportDynamic is a dynamic `import("x")` call.
	ImportDynamic ImportKind = "dynamic"
)

// ImportRef is a raw import specifier as written in a source file,
// before resolution against the project file set.
type ImportRef struct {
	// Specifier is the literal module reference, e.g. "../domain/order".
	Specifier string

	// Line is the 1-based line number the specifier was found on.
	Line int

	// Kind is the syntactic form the specifier appeared in.
	Kind ImportKind
}

// ModuleNode is one project-internal source file in the dependency graph.
// Nodes are created once per discovered file and are immutable after
// resolution; the graph owns them for the duration of a single run.
type ModuleNode struct {
	// Path is the normalized project-relative file path using forward
	// slashes. It is the node's identity within one analysis run.
	Path string

	// Imports holds every raw import specifier found in the file,
	// including externals and specifiers that failed to resolve.
	Imports []ImportRef

	// Layer is the classification assigned by the layer classifier.
	// Empty until classification has run.
	Layer Layer
}

// Edge is a resolved import from one project file to another.
// Multiple edges between the same pair are preserved distinctly when
// they come from different specifiers; deduplication happens at
// policy-evaluation time, keyed on (Source, Target).
type Edge struct {
	// Source is the path of the importing ModuleNode.
	Source string

	// Target is the path of the imported ModuleNode.
	Target string

	// Specifier is the literal import text that produced this edge,
	// kept for diagnostics.
	Specifier string

	// Line is where the specifier appears in the source file.
	Line int
}

// BrokenImport records a relative specifier that did not resolve to any
// project file. Broken imports never abort a run; they surface in the
// report as their own diagnostic category.
type BrokenImport struct {
	// Source is the path of the importing file.
	Source string

	// Specifier is the unresolvable import text.
	Specifier string

	// Line is where the specifier appears in the source file.
	Line int
}

// Graph is the complete module graph of one analysis run. It is rebuilt
// from scratch on every invocation; nothing is cached across runs.
//
// Nodes are stored in an arena slice and addressed by index so that the
// structure can be shared across parallel consumers without pointer
// aliasing. PathIndex maps a node path back to its arena index.
type Graph struct {
	// Nodes is the arena of discovered files, sorted by Path.
	Nodes []ModuleNode

	// PathIndex maps ModuleNode.Path to its index in Nodes.
	PathIndex map[string]int

	// Edges are all resolved project-internal imports.
	Edges []Edge

	// Broken are the relative specifiers that failed resolution.
	Broken []BrokenImport

	// ExternalCount is the number of import specifiers that named
	// third-party packages. Externals are counted for the summary but
	// never produce edges: the verifier does not reason about
	// third-party dependency direction.
	ExternalCount int
}

// NodeAt returns the node for a path, or nil when the path is unknown.
func (g *Graph) NodeAt(path string) *ModuleNode {
	i, ok := g.PathIndex[path]
	if !ok {
		return nil
	}
	return &g.Nodes[i]
}

// Adjacency builds an index-based adjacency list over the deduplicated
// edge set. Duplicate (source, target) pairs collapse to one arc.
func (g *Graph) Adjacency() [][]int {
	adj := make([][]int, len(g.Nodes))
	seen := make(map[[2]int]bool, len(g.Edges))

	for _, e := range g.Edges {
		from, ok := g.PathIndex[e.Source]
		if !ok {
			continue
		}
		to, ok := g.PathIndex[e.Target]
		if !ok {
			continue
		}
		key := [2]int{from, to}
		if seen[key] {
			continue
		}
		seen[key] = true
		adj[from] = append(adj[from], to)
	}

	return adj
}
