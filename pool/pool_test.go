package pool

import (
	"errors"
	"testing"
)

type thing struct {
	active bool
	resets int
	value  int
}

func (t *thing) Reset()       { t.resets++; t.value = 0 }
func (t *thing) Activate()    { t.active = true }
func (t *thing) Deactivate()  { t.active = false }
func (t *thing) Active() bool { return t.active }

func TestPoolReusesReleasedObjects(t *testing.T) {
	p, err := New(func() *thing { return &thing{} }, 2, 2, 4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a, err := p.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	a.value = 42
	p.Release(a)

	b, err := p.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if a != b {
		t.Fatalf("expected released object to be reused")
	}
	if b.value != 0 || b.resets != 2 {
		t.Fatalf("reused object not reset: value=%d resets=%d", b.value, b.resets)
	}
	if p.Len() != 2 {
		t.Fatalf("len = %d, want 2", p.Len())
	}
}

func TestPoolGrowsThenExhausts(t *testing.T) {
	p, err := New(func() *thing { return &thing{} }, 1, 2, 3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := p.Get(); err != nil {
			t.Fatalf("Get %d: %v", i, err)
		}
	}
	if p.Len() != 3 || p.InUse() != 3 {
		t.Fatalf("len=%d inUse=%d, want 3/3", p.Len(), p.InUse())
	}
	if _, err := p.Get(); !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
}

func TestNewValidatesSizes(t *testing.T) {
	tests := []struct {
		name         string
		initial, max int
	}{
		{name: "zero max", initial: 0, max: 0},
		{name: "initial above max", initial: 5, max: 2},
		{name: "negative initial", initial: -1, max: 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(func() *thing { return &thing{} }, tc.initial, 1, tc.max); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
