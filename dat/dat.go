package dat

// DAT is a frozen double-array trie for romaji syllable keys.
//   - Nodes/states are indices into Base/Check (0 is unused; Root is typically 1).
//   - Transition: t := Base[s] + c; valid if Check[t] == s; next state is t.
//   - c is a dense alphabet ID in [1..Sigma]. c==0 means "not in alphabet".
//   - A state with Base[s] == 0 has no outgoing transitions.
//
// Values:
//   - Value[s] holds the syllable ID + 1 for terminal states, 0 otherwise.
//     Syllable IDs index into a table owned by the caller.
type DAT struct {
	// Root state index (commonly 1).
	Root uint32

	// Sigma is the size of the dense alphabet (maximum dense ID).
	Sigma uint16

	// Base and Check are the classic double-array.
	Base  []int32 // len == N
	Check []int32 // len == N

	// Value marks terminal states, see above.
	Value []int32 // len == N

	// Alphabet maps ASCII bytes to dense IDs [0..Sigma].
	Alphabet Alphabet
}

// NStates returns number of allocated slots/states in the arrays.
func (d *DAT) NStates() int { return len(d.Base) }

// Transition returns (nextState, ok). dense must be in [1..Sigma].
func (d *DAT) Transition(state uint32, dense uint16) (uint32, bool) {
	if int(state) >= len(d.Base) || int(state) >= len(d.Check) {
		return 0, false
	}
	if d.Base[state] == 0 || dense == 0 {
		return 0, false
	}
	t := d.Base[state] + int32(dense)
	if t <= 0 || int(t) >= len(d.Check) {
		return 0, false
	}
	if d.Check[t] != int32(state) {
		return 0, false
	}
	return uint32(t), true
}

// Walk follows key from the root state. It returns the reached state, or
// 0 if key leaves the trie.
func (d *DAT) Walk(key string) uint32 {
	state := d.Root
	for i := 0; i < len(key); i++ {
		next, ok := d.Transition(state, d.Alphabet.Dense(key[i]))
		if !ok {
			return 0
		}
		state = next
	}
	return state
}

// Terminal returns the syllable ID stored at state, if state ends a key.
func (d *DAT) Terminal(state uint32) (int, bool) {
	if state == 0 || int(state) >= len(d.Value) || d.Value[state] == 0 {
		return 0, false
	}
	return int(d.Value[state] - 1), true
}

// HasChildren reports whether state continues into longer keys.
func (d *DAT) HasChildren(state uint32) bool {
	return state != 0 && int(state) < len(d.Base) && d.Base[state] != 0
}
