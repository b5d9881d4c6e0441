package input

import (
	"github.com/gdamore/tcell/v2"
)

// Bindings maps terminal keys to actions
// Runes cover printable keys; Keys cover specials (arrows, escape)
type Bindings struct {
	Runes map[rune]Action
	Keys  map[tcell.Key]Action
}

// DefaultBindings returns the standard WASD layout with arrow-key aliases
func DefaultBindings() *Bindings {
	return &Bindings{
		Runes: map[rune]Action{
			'w': ActionAccelerate,
			's': ActionBrake,
			'a': ActionSteerLeft,
			'd': ActionSteerRight,
			' ': ActionHandbrake,
			'e': ActionShiftUp,
			'q': ActionShiftDown,
			'c': ActionToggleCamera,
			'p': ActionPause,
		},
		Keys: map[tcell.Key]Action{
			tcell.KeyUp:    ActionAccelerate,
			tcell.KeyDown:  ActionBrake,
			tcell.KeyLeft:  ActionSteerLeft,
			tcell.KeyRight: ActionSteerRight,
			tcell.KeyEsc:   ActionPause,
		},
	}
}

// Bind attaches a rune to an action, replacing any previous binding of that
// rune. Used by the keymap config loader.
func (b *Bindings) Bind(r rune, a Action) {
	b.Runes[r] = a
}

// resolve maps a tcell key event to an action
func (b *Bindings) resolve(ev *tcell.EventKey) (Action, bool) {
	if ev.Key() == tcell.KeyRune {
		a, ok := b.Runes[ev.Rune()]
		return a, ok
	}
	a, ok := b.Keys[ev.Key()]
	return a, ok
}
