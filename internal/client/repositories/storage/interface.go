package storage

import "context"

type Repository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, key string) error
	CompareAndSwap(ctx context.Context, key string, expected string, value string) (bool, error)
	Keys(ctx context.Context) ([]string, error)
}
