// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ProjectScanner: Discovers source files and resolves their imports
//   - ConfigLoader: Loads and validates analysis configuration
//
// # Optional Interfaces
//
//   - RunStore: Persists run summaries for the history command. When
//     nil, history is simply disabled; the analysis itself never
//     persists anything.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or scanner package
package driven
