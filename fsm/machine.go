// Package fsm switches between the game's long-lived top-level states.
package fsm

import (
	"log"

	"github.com/milk9111/blackcat/render"
)

// State is one top-level screen. Every state implements all four hooks;
// embed NopHooks for the ones with nothing to do on enter or leave.
type State interface {
	OnEnter(args ...any)
	OnUpdate(dt float64) error
	OnDraw(s render.Surface)
	OnLeave()
}

// NopHooks provides empty OnEnter and OnLeave hooks.
type NopHooks struct{}

func (NopHooks) OnEnter(...any) {}
func (NopHooks) OnLeave()       {}

// Machine owns the active state. It is driven from a single goroutine.
type Machine struct {
	current State
	Debug   bool
}

// NewMachine starts in initial and runs its OnEnter hook.
func NewMachine(initial State, args ...any) *Machine {
	m := &Machine{}
	if initial != nil {
		m.current = initial
		initial.OnEnter(args...)
	}
	return m
}

// SetState leaves the current state and enters next with args.
func (m *Machine) SetState(next State, args ...any) {
	if next == nil {
		return
	}
	m.swap(next)
	next.OnEnter(args...)
}

// ResumeState leaves the current state and makes next current without
// calling its OnEnter, so next keeps every field it had when it was
// suspended.
func (m *Machine) ResumeState(next State) {
	if next == nil {
		return
	}
	m.swap(next)
}

func (m *Machine) swap(next State) {
	if m.current != nil {
		m.current.OnLeave()
	}
	if m.Debug {
		log.Printf("[FSM] %T -> %T", m.current, next)
	}
	m.current = next
}

// Update forwards to the current state.
func (m *Machine) Update(dt float64) error {
	if m.current == nil {
		return nil
	}
	return m.current.OnUpdate(dt)
}

func (m *Machine) Draw(s render.Surface) {
	if m.current == nil {
		return
	}
	m.current.OnDraw(s)
}

func (m *Machine) Current() State { return m.current }
