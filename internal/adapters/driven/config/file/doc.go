// Package file provides a TOML-backed implementation of the config
// store port, persisted under the formery config directory.
package file
