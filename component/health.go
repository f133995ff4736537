package component

// Health is an integer hit-point pool with a millisecond invincibility
// window. Current only ever decreases.
type Health struct {
	Max     int
	Current int

	invincible float64

	OnDeath func(h *Health)
}

// NewHealth creates a Health component with max/current initialized.
func NewHealth(max int) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// IsAlive reports whether any health is left.
func (h *Health) IsAlive() bool {
	return h != nil && h.Current > 0
}

// Invincible reports whether the invincibility window is open.
func (h *Health) Invincible() bool {
	return h != nil && h.invincible > 0
}

// InvincibleFor returns the remaining invincibility in ms.
func (h *Health) InvincibleFor() float64 {
	if h == nil {
		return 0
	}
	return h.invincible
}

// ApplyDamage removes amount points unless invincible or already dead.
// Returns true if damage was applied.
func (h *Health) ApplyDamage(amount int) bool {
	if h == nil || !h.IsAlive() || h.Invincible() || amount <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	if h.Current == 0 && h.OnDeath != nil {
		h.OnDeath(h)
	}
	return true
}

// StartInvincibility opens an invincibility window of ms milliseconds.
func (h *Health) StartInvincibility(ms float64) {
	if h == nil || ms <= 0 {
		return
	}
	h.invincible = ms
}

// Tick advances the invincibility timer by dt milliseconds.
func (h *Health) Tick(dt float64) {
	if h == nil || h.invincible <= 0 {
		return
	}
	h.invincible -= dt
	if h.invincible < 0 {
		h.invincible = 0
	}
}
