package game

import "github.com/kamstrup/intmap"

// Key is an abstract input code. The shell translates platform key events
// into these before handing them to the engine.
type Key int32

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyEnter
)

// KeyEvent is a key-down or key-up transition for a single key.
type KeyEvent struct {
	Key     Key
	Pressed bool
}

// Keymap is a snapshot of which keys are currently held, refreshed by
// incoming events. The engine queries it by code and never iterates it.
type Keymap struct {
	held *intmap.Map[Key, bool]
}

func NewKeymap() *Keymap {
	return &Keymap{held: intmap.New[Key, bool](16)}
}

// Handle folds a key transition into the pressed set.
func (k *Keymap) Handle(e KeyEvent) {
	k.held.Put(e.Key, e.Pressed)
}

// Pressed reports whether the key is currently held.
func (k *Keymap) Pressed(key Key) bool {
	held, ok := k.held.Get(key)
	return ok && held
}
