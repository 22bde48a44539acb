package config

import "context"

// Loader is the interface for a format-specific rule file loader.
type Loader interface {
	// Load reads the file at path and translates it into the
	// format-agnostic model. The returned model has been validated.
	Load(ctx context.Context, path string) (*Model, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, path string) (*Model, error)

// Load implements Loader.
func (f LoaderFunc) Load(ctx context.Context, path string) (*Model, error) {
	return f(ctx, path)
}
