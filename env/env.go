// Package env abstracts environment variable lookup so option resolution can be
// driven by the process environment or by a fixed set of values in tests.
package env

import (
	"os"
	"sort"
	"sync"
)

// Resolver defines an interface for environment resolution.
type Resolver interface {
	// Get returns the value of the environment variable named by the key.
	// It returns an empty string if the variable is not present.
	Get(key string) string

	// Set sets the value of the environment variable named by the key.
	// It returns an error, if any.
	Set(key, value string) error

	// Environ returns a slice of strings in the form "key=value" representing the environment,
	// similar to os.Environ.
	Environ() []string
}

// DefaultEnvResolver is the default implementation of the Resolver interface
// that encapsulates environment resolution using the os package.
type DefaultEnvResolver struct{}

// Get returns the value of the environment variable associated with the given key.
func (r *DefaultEnvResolver) Get(key string) string {
	return os.Getenv(key)
}

// Set sets the value of the environment variable identified by key.
func (r *DefaultEnvResolver) Set(key, value string) error {
	return os.Setenv(key, value)
}

// Environ returns a copy of strings representing the environment, as "key=value" pairs.
func (r *DefaultEnvResolver) Environ() []string {
	return os.Environ()
}

// MapResolver resolves variables from an in-memory map. The zero value is ready to use.
type MapResolver struct {
	mu   sync.RWMutex
	vars map[string]string
}

// NewMapResolver returns a MapResolver seeded with vars
func NewMapResolver(vars map[string]string) *MapResolver {
	r := &MapResolver{vars: make(map[string]string, len(vars))}
	for k, v := range vars {
		r.vars[k] = v
	}
	return r
}

func (r *MapResolver) Get(key string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.vars[key]
}

func (r *MapResolver) Set(key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.vars == nil {
		r.vars = make(map[string]string)
	}
	r.vars[key] = value
	return nil
}

// Environ returns the variables sorted by key
func (r *MapResolver) Environ() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.vars))
	for k, v := range r.vars {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}
