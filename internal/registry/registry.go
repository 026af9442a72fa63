// Package registry provides a concurrency-safe directory of named values,
// used to share event registries between the state machine groups of a
// host process.
package registry

import "github.com/alphadose/haxmap"

type Directory[T any] interface {
	Get(name string) (T, bool)
	Add(name string, value T)
	GetOrAdd(name string, value func() T) (T, bool)
	Del(name string)
	Len() int
}

type directory[T any] struct {
	values *haxmap.Map[string, T]
}

func New[T any]() Directory[T] {
	return &directory[T]{
		values: haxmap.New[string, T](),
	}
}

func (d *directory[T]) Get(name string) (T, bool) {
	return d.values.Get(name)
}

func (d *directory[T]) Add(name string, value T) {
	d.values.Set(name, value)
}

func (d *directory[T]) GetOrAdd(name string, valueFn func() T) (T, bool) {
	return d.values.GetOrCompute(name, valueFn)
}

func (d *directory[T]) Del(name string) {
	d.values.Del(name)
}

func (d *directory[T]) Len() int {
	return int(d.values.Len())
}
