// Package domain defines the core entities for archlint.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ModuleNode: A project-internal source file and its raw imports
//   - Edge: A resolved import between two ModuleNodes
//   - Graph: The complete dependency graph of one analysis run
//   - LayerRule: An ordered path-pattern rule assigning a layer
//   - PolicyMatrix: The allowed layer-to-layer dependency directions
//   - Finding: A violation, broken import or cycle detected in a run
//   - Report: The sorted findings plus summary and verdict
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse. archlint exists to verify exactly this rule
// in other codebases, so it had better hold here.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
