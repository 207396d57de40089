// Package redis provides a wrapper around the go-redis client library
// for improved testing and abstraction.
package redis

import (
	"crypto/tls"
	"errors"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// Options configures Redis client behavior
type Options struct {
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
}

// NewClient creates a Redis client for a single instance
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.New("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	redisOpts := &redis.Options{
		Addr:            endpoint,
		MinIdleConns:    opts.MinIdleConns,
		PoolSize:        opts.PoolSize,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
	}

	if opts.UseTLS {
		redisOpts.TLSConfig = &tls.Config{
			InsecureSkipVerify: true, // #nosec G402 // For self-signed certs
		}
	}

	return redis.NewClient(redisOpts), nil
}

// NewEmbedded starts an in-process Redis and returns a client for it. The
// returned stop func closes both. Nothing survives a restart.
func NewEmbedded(opts *Options) (Client, func(), error) {
	mr, err := miniredis.Run()
	if err != nil {
		return nil, nil, err
	}

	client, err := NewClient(mr.Addr(), opts)
	if err != nil {
		mr.Close()
		return nil, nil, err
	}

	stop := func() {
		_ = client.Close() // nolint:errcheck // best effort on shutdown
		mr.Close()
	}
	return client, stop, nil
}

// Open connects to endpoint, or starts an embedded store when endpoint is
// empty. embedded reports which one happened.
func Open(endpoint string, opts *Options) (client Client, stop func(), embedded bool, err error) {
	if endpoint == "" {
		client, stop, err = NewEmbedded(opts)
		return client, stop, true, err
	}

	client, err = NewClient(endpoint, opts)
	if err != nil {
		return nil, nil, false, err
	}
	return client, func() { _ = client.Close() }, false, nil // nolint:errcheck
}
