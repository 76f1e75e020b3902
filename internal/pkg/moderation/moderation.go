package moderation

import "context"

// Validator answers whether report comments plausibly describe an incident of
// the given category. Callers treat any returned error as "proceed": a down
// moderation service must never block reporting.
type Validator interface {
	Validate(ctx context.Context, category, comments string) (bool, error)
}

// AllowAll accepts every submission. Used when no moderation backend is
// configured, and in tests.
type AllowAll struct{}

func (AllowAll) Validate(ctx context.Context, category, comments string) (bool, error) {
	return true, nil
}
