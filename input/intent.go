package input

// Intent is a bitmask of the actions requested during one frame.
// Several intents can be active at once (Up and Down cancel in effect, not in the mask)
type Intent uint8

const IntentNone Intent = 0

const (
	IntentUp   Intent = 1 << iota // Up arrow, W
	IntentDown                    // Down arrow, S
	IntentQuit                    // Escape
)

// Has reports whether every bit of other is set
func (i Intent) Has(other Intent) bool {
	return other != IntentNone && i&other == other
}

func (i Intent) String() string {
	if i == IntentNone {
		return "none"
	}
	s := ""
	for _, n := range intentNames {
		if i.Has(n.intent) {
			if s != "" {
				s += "|"
			}
			s += n.name
		}
	}
	return s
}

var intentNames = []struct {
	intent Intent
	name   string
}{
	{IntentUp, "up"},
	{IntentDown, "down"},
	{IntentQuit, "quit"},
}
