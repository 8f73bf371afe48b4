// Package google provides shared plumbing for Google API access:
// service constructors, the token source adapter, OAuth endpoint
// constants, rate limiting, and error classification.
package google
