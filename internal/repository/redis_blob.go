package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ErrKeyMissing signals that the key holds no blob.
var ErrKeyMissing = fmt.Errorf("key missing")

// ErrMalformedBlob signals that the stored blob did not decode.
// Callers treat this the same as an absent blob.
var ErrMalformedBlob = fmt.Errorf("malformed blob")

// RedisBlobStore is the key-value persistence surface: whole
// collections serialized as JSON blobs under a single key each.
type RedisBlobStore struct {
	client *redis.Client
}

// NewRedisBlobStore creates a new blob store over the given client.
func NewRedisBlobStore(client *redis.Client) *RedisBlobStore {
	return &RedisBlobStore{
		client: client,
	}
}

// Get retrieves a blob by key and unmarshals it into dest with OTel tracing.
func (r *RedisBlobStore) Get(ctx context.Context, key string, dest interface{}) error {
	tracer := otel.Tracer("redis")
	ctx, span := tracer.Start(ctx, "redis.Get",
		trace.WithAttributes(attribute.String("blob.key", key)),
	)
	defer span.End()

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			span.SetAttributes(attribute.String("blob.result", "miss"))
			return ErrKeyMissing
		}
		span.RecordError(err)
		return fmt.Errorf("redis get error: %w", err)
	}

	span.SetAttributes(attribute.String("blob.result", "hit"))
	if err := json.Unmarshal(data, dest); err != nil {
		span.RecordError(err)
		return fmt.Errorf("%w: %v", ErrMalformedBlob, err)
	}

	return nil
}

// Set marshals value and overwrites the blob under key with OTel tracing.
// Blobs never expire; the store is the system of record, not a cache.
func (r *RedisBlobStore) Set(ctx context.Context, key string, value interface{}) error {
	tracer := otel.Tracer("redis")
	ctx, span := tracer.Start(ctx, "redis.Set",
		trace.WithAttributes(attribute.String("blob.key", key)),
	)
	defer span.End()

	data, err := json.Marshal(value)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("marshal error: %w", err)
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("redis set error: %w", err)
	}

	return nil
}

// Delete removes keys with OTel tracing.
func (r *RedisBlobStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	tracer := otel.Tracer("redis")
	ctx, span := tracer.Start(ctx, "redis.Delete",
		trace.WithAttributes(attribute.Int("blob.key_count", len(keys))),
	)
	defer span.End()

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("redis delete error: %w", err)
	}

	return nil
}
