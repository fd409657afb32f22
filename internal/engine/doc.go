// Package engine groups the core clipboard-history data structures.
//
// The engine is built on several sub-packages:
//
//   - entry: immutable history entries with preview formatting
//   - history: bounded buffer with cursor navigation and the yank stack
//   - register: keyed named-register storage
//
// These packages hold no platform state. The manager package composes
// them with a clipboard provider to form the running engine.
package engine
