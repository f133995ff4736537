package component

// Cooldown counts elapsed milliseconds toward a fixed duration. A fresh
// Cooldown starts ready.
type Cooldown struct {
	Duration float64
	elapsed  float64
}

func NewCooldown(durationMs float64) *Cooldown {
	return &Cooldown{Duration: durationMs, elapsed: durationMs}
}

func (c *Cooldown) Tick(dt float64) {
	if c == nil || c.elapsed >= c.Duration {
		return
	}
	c.elapsed += dt
	if c.elapsed > c.Duration {
		c.elapsed = c.Duration
	}
}

// Restart zeroes the elapsed time.
func (c *Cooldown) Restart() {
	if c == nil {
		return
	}
	c.elapsed = 0
}

func (c *Cooldown) Ready() bool {
	return c != nil && c.elapsed >= c.Duration
}

// Progress returns elapsed/duration in [0,1].
func (c *Cooldown) Progress() float64 {
	if c == nil || c.Duration <= 0 {
		return 1
	}
	p := c.elapsed / c.Duration
	if p > 1 {
		return 1
	}
	return p
}
