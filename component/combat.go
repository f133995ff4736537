package component

// CombatEventType defines the kind of combat event.
type CombatEventType string

const (
	// EventKill is emitted when a dead enemy is retired.
	EventKill CombatEventType = "kill"
	// EventEscape is emitted when a live enemy leaves the screen.
	EventEscape CombatEventType = "escape"
	// EventReflect is emitted when the player swats a projectile back.
	EventReflect CombatEventType = "reflect"
	// EventContact is emitted when a hostile body touches the player outside
	// of an attack.
	EventContact CombatEventType = "contact"
	// EventBossHit is emitted when the boss loses a health point.
	EventBossHit CombatEventType = "boss_hit"
)

// CombatEvent is emitted during combat resolution.
type CombatEvent struct {
	Type     CombatEventType
	TargetID uint64
	Points   int
	PosX     float64
	PosY     float64
}

// CombatEventHandler handles combat events.
type CombatEventHandler func(evt CombatEvent)

// CombatEventEmitter fans events out to its handlers in registration order.
type CombatEventEmitter struct {
	Handlers []CombatEventHandler
}

// Subscribe appends h to the handler list.
func (e *CombatEventEmitter) Subscribe(h CombatEventHandler) {
	if e == nil || h == nil {
		return
	}
	e.Handlers = append(e.Handlers, h)
}

// Emit sends a combat event to all handlers.
func (e *CombatEventEmitter) Emit(evt CombatEvent) {
	if e == nil || len(e.Handlers) == 0 {
		return
	}
	for _, h := range e.Handlers {
		if h != nil {
			h(evt)
		}
	}
}
