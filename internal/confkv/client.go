// Package confkv reads per-service connection parameters from the Consul
// key-value store. Values are stored as JSON objects of string to string.
package confkv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hashicorp/consul/api"
)

// ErrKeyNotFound is returned by Get when the key is absent and no default
// mapping was supplied.
var ErrKeyNotFound = errors.New("confkv: key not found")

type Client struct {
	kv *api.KV
}

// New builds a client for the KV store at address (host:port). An empty
// address falls back to the consul api default (local agent or
// CONSUL_HTTP_ADDR).
func New(address string) (*Client, error) {
	conf := api.DefaultConfig()
	if address != "" {
		conf.Address = address
	}
	c, err := api.NewClient(conf)
	if err != nil {
		return nil, err
	}
	return &Client{kv: c.KV()}, nil
}

// Get fetches key and decodes its value as a JSON object. When the key is
// absent, def is returned if non-nil; otherwise ErrKeyNotFound.
func (c *Client) Get(ctx context.Context, key string, def map[string]string) (map[string]string, error) {
	opts := (&api.QueryOptions{}).WithContext(ctx)
	pair, _, err := c.kv.Get(key, opts)
	if err != nil {
		return nil, err
	}
	if pair == nil {
		if def != nil {
			return def, nil
		}
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}

	var out map[string]string
	if err := json.Unmarshal(pair.Value, &out); err != nil {
		return nil, fmt.Errorf("decode value of %q: %w", key, err)
	}
	return out, nil
}
