// Package consul registers the running process with a HashiCorp Consul agent
// so that load balancers and sidecars can find it through the catalog.
package consul

import (
	"fmt"

	consulapi "github.com/hashicorp/consul/api"
)

// Client talks to the local Consul agent
type Client struct {
	api *consulapi.Client
}

// NewClient creates a Consul client for addr. An empty token means anonymous access.
func NewClient(addr, token string) (*Client, error) {
	cfg := consulapi.DefaultConfig()
	cfg.Address = addr
	cfg.Token = token

	api, err := consulapi.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("consul client for %s: %w", addr, err)
	}
	return &Client{api: api}, nil
}
