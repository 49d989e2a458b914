// Package file is the file-based implementation of driven.ConfigLoader.
//
// Configuration is read from a TOML or YAML file, selected by
// extension. Values the file does not set fall back to the defaults in
// domain.DefaultConfig(), so a minimal config can override just the
// rules or just the policy matrix. All structural and semantic problems
// surface as domain.ErrConfiguration before any file is scanned.
package file
