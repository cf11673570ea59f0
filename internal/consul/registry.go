package consul

import (
	"fmt"
	"strconv"

	consulapi "github.com/hashicorp/consul/api"
)

// ServiceName is the catalog name postboard registers under
const ServiceName = "postboard"

// ServiceConfig contains configuration for service registration
type ServiceConfig struct {
	ID      string
	Name    string
	Address string
	Port    int
	Tags    []string
	Check   *HealthCheck
}

// HealthCheck defines health check configuration
type HealthCheck struct {
	HTTP     string
	Interval string
	Timeout  string

	// DeregisterAfter removes an instance whose check stays critical this long
	DeregisterAfter string
}

// ServiceRegistrar defines the interface for service registration
type ServiceRegistrar interface {
	Register(cfg *ServiceConfig) error
	Deregister(serviceID string) error
}

// NewServiceConfig describes a postboard instance listening on host:port with
// an HTTP check against /health. The ID is stable per host so restarts replace
// the previous registration.
func NewServiceConfig(host, port string) (*ServiceConfig, error) {
	p, err := strconv.Atoi(port)
	if err != nil {
		return nil, fmt.Errorf("invalid port %q: %w", port, err)
	}

	return &ServiceConfig{
		ID:      fmt.Sprintf("%s-%s-%d", ServiceName, host, p),
		Name:    ServiceName,
		Address: host,
		Port:    p,
		Tags:    []string{"posts", "reactions", "api"},
		Check: &HealthCheck{
			HTTP:            fmt.Sprintf("http://%s:%d/health", host, p),
			Interval:        "10s",
			Timeout:         "3s",
			DeregisterAfter: "1m",
		},
	}, nil
}

// Register registers a service with Consul
func (c *Client) Register(cfg *ServiceConfig) error {
	registration := &consulapi.AgentServiceRegistration{
		ID:      cfg.ID,
		Name:    cfg.Name,
		Address: cfg.Address,
		Port:    cfg.Port,
		Tags:    cfg.Tags,
	}

	if cfg.Check != nil {
		registration.Check = &consulapi.AgentServiceCheck{
			HTTP:                           cfg.Check.HTTP,
			Interval:                       cfg.Check.Interval,
			Timeout:                        cfg.Check.Timeout,
			DeregisterCriticalServiceAfter: cfg.Check.DeregisterAfter,
		}
	}

	if err := c.api.Agent().ServiceRegister(registration); err != nil {
		return fmt.Errorf("failed to register service: %w", err)
	}

	return nil
}

// Deregister removes a service from Consul
func (c *Client) Deregister(serviceID string) error {
	if err := c.api.Agent().ServiceDeregister(serviceID); err != nil {
		return fmt.Errorf("failed to deregister service: %w", err)
	}

	return nil
}
