package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

// common wrapper above a redis, keeps json documents of one collection
type Client[V any] struct {
	rdb        *redis.Client
	collection string
	marshal    func(V) (string, error)
	unmarshal  func(string) (V, error)
}

func NewClient[V any](addr string,
	password string,
	db int,
	collection string,
	marshal func(V) (string, error),
	unmarshal func(string) (V, error)) *Client[V] {

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &Client[V]{
		rdb:        rdb,
		collection: collection,
		marshal:    marshal,
		unmarshal:  unmarshal,
	}
}

func (c *Client[V]) Set(ctx context.Context, key string, value V, expiration time.Duration) error {
	strValue, err := c.marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, strValue, expiration).Err()
}

func (c *Client[V]) Get(ctx context.Context, key string) (V, error) {
	strValue, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		var zero V
		return zero, err
	}
	return c.unmarshal(strValue)
}

// Insert stores a document under collection:id and appends its id to the collection list
func (c *Client[V]) Insert(ctx context.Context, id string, value V) error {
	if err := c.Set(ctx, c.key(id), value, 0); err != nil {
		return fmt.Errorf("redis set %s: %w", c.key(id), err)
	}
	if err := c.rdb.RPush(ctx, c.collection, id).Err(); err != nil {
		return fmt.Errorf("redis rpush %s: %w", c.collection, err)
	}
	return nil
}

// Find returns a document of the collection by id
func (c *Client[V]) Find(ctx context.Context, id string) (V, error) {
	return c.Get(ctx, c.key(id))
}

func (c *Client[V]) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *Client[V]) Close() error {
	log.Info().Str("collection", c.collection).Msg("closing redis client")
	return c.rdb.Close()
}

func (c *Client[V]) key(id string) string {
	return c.collection + ":" + id
}
