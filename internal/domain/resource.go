package domain

import "context"

// Resource is the content behind a photo's resource reference.
type Resource struct {
	Data        []byte
	ContentType string
}

// ResourceResolver turns a resource reference into bytes. It returns
// ErrResourceUnavailable when the resource can no longer be accessed.
type ResourceResolver interface {
	Resolve(ctx context.Context, ref string) (*Resource, error)
}
