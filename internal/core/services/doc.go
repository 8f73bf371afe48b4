// Package services implements the core use cases behind the driving
// ports, orchestrating domain logic and driven adapters.
package services
