package repository

import (
	"context"
	"errors"
)

// Keys under which the editor state is persisted.
const (
	ResumeKey   = "resumeBuilderData"
	TemplateKey = "resumeBuilderTemplate"
)

var ErrNotFound = errors.New("key not found")

// Store is a string key/value store. Set fully replaces any prior value, so
// writing the same key repeatedly never grows the store.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}
