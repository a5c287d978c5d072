package dat

// Alphabet maps 7-bit ASCII bytes to dense alphabet IDs (uint16).
//
// Romaji keys only ever use lowercase letters and the hyphen, so a flat
// array of 128 entries covers every possible input byte. Bytes outside of
// ASCII map to 0, i.e. "not part of the alphabet".
type Alphabet struct {
	dense [128]uint16
	size  uint16
}

// Dense returns the dense alphabet ID for an input byte.
// Returns 0 if absent.
func (a *Alphabet) Dense(b byte) uint16 {
	if b >= 128 {
		return 0
	}
	return a.dense[b]
}

// Add assigns the next free dense ID to b, if b has none yet.
// It returns the (possibly pre-existing) dense ID, or 0 for non-ASCII bytes.
func (a *Alphabet) Add(b byte) uint16 {
	if b >= 128 {
		return 0
	}
	if id := a.dense[b]; id != 0 {
		return id
	}
	a.size++
	a.dense[b] = a.size
	return a.size
}

// Size returns the number of bytes in the alphabet.
func (a *Alphabet) Size() uint16 { return a.size }
