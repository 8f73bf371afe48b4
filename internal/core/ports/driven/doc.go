// Package driven defines the driven ports (secondary adapters' contracts):
// interfaces the core services depend on and that infrastructure adapters
// implement.
package driven
