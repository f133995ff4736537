// Package pool recycles short-lived objects such as enemies so that a busy
// wave does not allocate every frame.
package pool

import (
	"errors"
	"fmt"
)

var ErrExhausted = errors.New("pool: exhausted")

// Poolable is implemented by objects a Pool can hand out.
type Poolable interface {
	// Reset clears per-use state before the object is handed out again.
	Reset()
	Activate()
	Deactivate()
	Active() bool
}

// Pool hands out inactive objects and grows in steps up to a fixed maximum.
type Pool[T Poolable] struct {
	factory func() T
	items   []T
	growth  int
	max     int
}

// New creates a pool with initial objects that grows by growth up to max.
func New[T Poolable](factory func() T, initial, growth, max int) (*Pool[T], error) {
	if factory == nil {
		return nil, errors.New("pool: nil factory")
	}
	if max <= 0 || initial < 0 || initial > max {
		return nil, fmt.Errorf("pool: invalid sizes initial=%d max=%d", initial, max)
	}
	if growth <= 0 {
		growth = 1
	}
	p := &Pool[T]{factory: factory, growth: growth, max: max}
	p.grow(initial)
	return p, nil
}

// Get returns a reset, active object. It returns ErrExhausted when every
// object up to the maximum is in use.
func (p *Pool[T]) Get() (T, error) {
	for _, it := range p.items {
		if !it.Active() {
			it.Reset()
			it.Activate()
			return it, nil
		}
	}

	var zero T
	if len(p.items) >= p.max {
		return zero, fmt.Errorf("%w: %d of %d in use", ErrExhausted, len(p.items), p.max)
	}

	first := len(p.items)
	p.grow(p.growth)
	it := p.items[first]
	it.Reset()
	it.Activate()
	return it, nil
}

// Release hands obj back to the pool.
func (p *Pool[T]) Release(obj T) {
	obj.Deactivate()
}

func (p *Pool[T]) grow(n int) {
	for i := 0; i < n && len(p.items) < p.max; i++ {
		p.items = append(p.items, p.factory())
	}
}

// Len is the number of objects allocated so far.
func (p *Pool[T]) Len() int { return len(p.items) }

func (p *Pool[T]) Cap() int { return p.max }

// InUse counts active objects.
func (p *Pool[T]) InUse() int {
	n := 0
	for _, it := range p.items {
		if it.Active() {
			n++
		}
	}
	return n
}
