// Package kv provides the durable key-value repository backing the account
// and session stores: a handful of named text values, each read and
// written whole.
package kv

import "context"

// Repository is a durable mapping of record name to raw text value.
//
// Get returns ok=false when the key is absent; absence is not an error.
type Repository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
