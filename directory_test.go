package strix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casualjim/strix/pkg/uuidx"
)

func TestGlobalDirectory(t *testing.T) {
	// Unique names keep parallel test runs out of each other's way.
	name := "directory-test-" + uuidx.NewString()

	_, ok := Get(name)
	require.False(t, ok)

	r := NewRegistry(WithRegistryName(name))
	Add(r)
	defer Del(name)

	found, ok := Get(name)
	require.True(t, ok)
	assert.Same(t, r, found)

	t.Run("get or add returns the existing registry", func(t *testing.T) {
		existing, loaded := GetOrAdd(name)
		assert.True(t, loaded)
		assert.Same(t, r, existing)
	})

	t.Run("get or add constructs when absent", func(t *testing.T) {
		fresh := "directory-test-" + uuidx.NewString()
		created, loaded := GetOrAdd(fresh, WithRegistryCapacity(2))
		defer Del(fresh)

		assert.False(t, loaded)
		assert.Equal(t, fresh, created.Name())
		assert.Equal(t, 2, created.Cap())
	})

	t.Run("del removes only the directory entry", func(t *testing.T) {
		Del(name)
		_, ok := Get(name)
		assert.False(t, ok)
		assert.Equal(t, name, r.Name(), "the registry itself is untouched")
	})
}
