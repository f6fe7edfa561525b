// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"fmt"
	"sync"

	"cogentcore.org/props/base/ordmap"
)

// Registry is a set of [Component]s keyed by name, in registration order.
// It is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	components ordmap.Map[string, Component]
}

// DefaultRegistry is the registry that component packages
// add themselves to in their init functions.
var DefaultRegistry = &Registry{}

// Register adds the given component to the registry,
// replacing any component with the same name.
func (r *Registry) Register(c Component) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.components.Add(c.ComponentName(), c)
}

// Get returns the component with the given name.
func (r *Registry) Get(name string) (Component, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.components.At(name)
	if !ok {
		return nil, fmt.Errorf("props: unknown component %q (known components: %v)", name, r.components.Keys())
	}
	return c, nil
}

// Names returns the names of all components in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.components.Keys()
}

// Register adds the given component to [DefaultRegistry].
func Register(c Component) {
	DefaultRegistry.Register(c)
}
