package strix

import (
	"github.com/fogfish/opts"

	"github.com/casualjim/strix/internal/registry"
)

// Global is the process-wide directory of named registries. Hosts running
// several state machine groups use it to share a registry by name instead
// of threading the pointer through every component.
var Global = registry.New[*Registry]()

// Add stores a registry in the global directory under its name.
func Add(r *Registry) {
	Global.Add(r.Name(), r)
}

// Get looks up a registry by name.
func Get(name string) (*Registry, bool) {
	return Global.Get(name)
}

// GetOrAdd looks up a registry by name, constructing and storing one with
// the given options when it is absent. The second return reports whether
// the registry already existed.
func GetOrAdd(name string, options ...opts.Option[Registry]) (*Registry, bool) {
	return Global.GetOrAdd(name, func() *Registry {
		return NewRegistry(append(options, WithRegistryName(name))...)
	})
}

// Del removes a registry from the global directory. The registry itself is
// untouched; only the directory entry goes away.
func Del(name string) {
	Global.Del(name)
}
