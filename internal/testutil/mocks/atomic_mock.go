package mocks

import "context"

// PassthroughAtomic satisfies repository.Atomic without a real database:
// it simply runs fn with the given context.
type PassthroughAtomic struct{}

func (PassthroughAtomic) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
