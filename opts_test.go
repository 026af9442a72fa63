package strix

import (
	"testing"
)

func TestWithListenerName(t *testing.T) {
	tests := []struct {
		name         string
		listenerName string
	}{
		{
			name:         "simple name",
			listenerName: "motor",
		},
		{
			name:         "name with spaces",
			listenerName: "left drive motor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewListener(WithListenerName(tt.listenerName))
			if l.Name() != tt.listenerName {
				t.Errorf("NewListener() with WithListenerName() got = %q, want %q", l.Name(), tt.listenerName)
			}
		})
	}
}

func TestWithListenerCapacity(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
	}{
		{
			name:     "single slot",
			capacity: 1,
		},
		{
			name:     "larger than default",
			capacity: 64,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewListener(WithListenerCapacity(tt.capacity))
			if l.Cap() != tt.capacity {
				t.Errorf("NewListener() with WithListenerCapacity() got = %d, want %d", l.Cap(), tt.capacity)
			}
		})
	}
}

func TestWithRegistryOptions(t *testing.T) {
	r := NewRegistry(WithRegistryName("demo"), WithRegistryCapacity(4))
	if r.Name() != "demo" {
		t.Errorf("NewRegistry() with WithRegistryName() got = %q, want %q", r.Name(), "demo")
	}
	if r.Cap() != 4 {
		t.Errorf("NewRegistry() with WithRegistryCapacity() got = %d, want %d", r.Cap(), 4)
	}
}

func TestWithHook(t *testing.T) {
	hook := &recordingHook{}
	r := NewRegistry(WithHook(hook))
	if r.hook != hook {
		t.Error("NewRegistry() with WithHook() did not install the hook")
	}
}
