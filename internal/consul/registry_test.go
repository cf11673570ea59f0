package consul

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	consulapi "github.com/hashicorp/consul/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAgent records the agent API calls the client makes
type fakeAgent struct {
	mu           sync.Mutex
	registered   []consulapi.AgentServiceRegistration
	deregistered []string
	token        string
}

func (f *fakeAgent) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.token = r.Header.Get("X-Consul-Token")
	switch {
	case r.Method == http.MethodPut && r.URL.Path == "/v1/agent/service/register":
		var reg consulapi.AgentServiceRegistration
		if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.registered = append(f.registered, reg)
	case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/v1/agent/service/deregister/"):
		f.deregistered = append(f.deregistered, strings.TrimPrefix(r.URL.Path, "/v1/agent/service/deregister/"))
	default:
		http.Error(w, "unexpected call", http.StatusInternalServerError)
	}
}

func newTestClient(t *testing.T) (*Client, *fakeAgent) {
	t.Helper()
	agent := &fakeAgent{}
	srv := httptest.NewServer(agent)
	t.Cleanup(srv.Close)

	client, err := NewClient(strings.TrimPrefix(srv.URL, "http://"), "secret-token")
	require.NoError(t, err)
	return client, agent
}

func TestNewServiceConfig(t *testing.T) {
	cfg, err := NewServiceConfig("api.local", "8080")
	require.NoError(t, err)

	assert.Equal(t, "postboard-api.local-8080", cfg.ID)
	assert.Equal(t, ServiceName, cfg.Name)
	assert.Equal(t, 8080, cfg.Port)
	require.NotNil(t, cfg.Check)
	assert.Equal(t, "http://api.local:8080/health", cfg.Check.HTTP)

	_, err = NewServiceConfig("api.local", "http")
	assert.Error(t, err)
}

func TestClient_RegisterAndDeregister(t *testing.T) {
	client, agent := newTestClient(t)

	cfg, err := NewServiceConfig("localhost", "9090")
	require.NoError(t, err)

	require.NoError(t, client.Register(cfg))
	require.NoError(t, client.Deregister(cfg.ID))

	agent.mu.Lock()
	defer agent.mu.Unlock()

	require.Len(t, agent.registered, 1)
	reg := agent.registered[0]
	assert.Equal(t, cfg.ID, reg.ID)
	assert.Equal(t, "postboard", reg.Name)
	assert.Equal(t, 9090, reg.Port)
	require.NotNil(t, reg.Check)
	assert.Equal(t, "http://localhost:9090/health", reg.Check.HTTP)
	assert.Equal(t, "1m", reg.Check.DeregisterCriticalServiceAfter)

	assert.Equal(t, []string{cfg.ID}, agent.deregistered)
	assert.Equal(t, "secret-token", agent.token)
}

func TestClient_RegisterFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "agent unavailable", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(strings.TrimPrefix(srv.URL, "http://"), "")
	require.NoError(t, err)

	err = client.Register(&ServiceConfig{ID: "x", Name: "postboard"})
	assert.ErrorContains(t, err, "failed to register service")
}
