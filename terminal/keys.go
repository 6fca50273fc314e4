package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong/input"
)

// Key identifies a terminal key: a special key code, or KeyRune plus a lower-case rune
type Key struct {
	Code tcell.Key
	Rune rune
}

// Keys maps terminal keys to intents
var Keys = input.KeyTable[Key]{
	{Code: tcell.KeyUp}:              input.IntentUp,
	{Code: tcell.KeyRune, Rune: 'w'}: input.IntentUp,
	{Code: tcell.KeyDown}:            input.IntentDown,
	{Code: tcell.KeyRune, Rune: 's'}: input.IntentDown,
	{Code: tcell.KeyEscape}:          input.IntentQuit,
	{Code: tcell.KeyCtrlC}:           input.IntentQuit,
}

// KeyOf normalizes a key event; letters match regardless of Shift or Caps Lock
func KeyOf(ev *tcell.EventKey) Key {
	if ev.Key() == tcell.KeyRune {
		return Key{Code: tcell.KeyRune, Rune: unicode.ToLower(ev.Rune())}
	}
	return Key{Code: ev.Key()}
}
