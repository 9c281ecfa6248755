package ports

import "context"

// ViewCache holds rendered read views. Mutations call Invalidate so the next
// read reflects the change.
type ViewCache interface {
	Fetch(ctx context.Context, key string, load func(context.Context) (any, error)) (any, error)
	Invalidate(keys ...string)
}
