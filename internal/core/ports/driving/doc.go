// Package driving defines the interfaces external actors use to drive
// the core. CLI, TUI and MCP adapters depend on these interfaces; the
// services package implements them.
package driving
