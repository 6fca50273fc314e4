package input

// KeyTable maps backend key identifiers to intents.
// Several keys may share one intent (Up and W both move the paddle up)
type KeyTable[K comparable] map[K]Intent

// Resolve ORs together the intents of every key reported as held
func (t KeyTable[K]) Resolve(held func(K) bool) Intent {
	var out Intent
	for key, intent := range t {
		if out.Has(intent) {
			continue
		}
		if held(key) {
			out |= intent
		}
	}
	return out
}

// Lookup returns the intent bound to a single key
func (t KeyTable[K]) Lookup(key K) (Intent, bool) {
	intent, ok := t[key]
	return intent, ok
}
