package driven

import "context"

// TokenProvider supplies a valid OAuth access token, refreshing it
// transparently when expired.
type TokenProvider interface {
	// GetToken returns a valid access token.
	GetToken(ctx context.Context) (string, error)
}
