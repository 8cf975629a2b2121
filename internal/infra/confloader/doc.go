// Package confloader provides configuration loading mechanism.
//
// This package implements a configuration loader on top of koanf:
//
//   - Sources: defaults, YAML file, environment variables, overrides
//   - Type Safety: unmarshaling into structs with koanf tags
//   - Watch Support: change notification for files (watcher.go)
//
// Priority (highest to lowest):
//
//  1. Overrides (command-line flags)
//  2. Environment variables (ORDMAP_ prefix)
//  3. Configuration file
//  4. Defaults
package confloader
