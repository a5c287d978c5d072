package romkan

import "strings"

// Resolution is the result of resolving raw romaji input against a table.
type Resolution struct {
	Committed string // resolved kana, including characters passed through literally
	Pending   string // trailing fragment still waiting for more input
	Literals  int    // number of characters passed through unresolved
}

// Text returns the committed output followed by the pending fragment as typed.
// This is what a user sees for the raw input.
func (r Resolution) Text() string {
	return r.Committed + r.Pending
}

// Convert resolves a complete romaji string and returns its rendering.
//
// Example (hiragana):
//
//	"kyouto" => "きょうと".
func (t *Table) Convert(romaji string) string {
	return t.Resolve(romaji).Text()
}

// Resolve runs the resolution algorithm over raw input from scratch.
// The result depends on raw only.
//
// Characters are resolved one at a time. A fragment left over at the end
// is committed if it is a complete key, and kept pending otherwise.
func (t *Table) Resolve(raw string) Resolution {
	var out strings.Builder
	res := Resolution{}
	buf := make([]byte, 0, MaxKeyLength)
	for i := 0; i < len(raw); i++ {
		buf = append(buf, raw[i])
		buf = t.step(buf, &out, &res.Literals)
		assert(len(buf) < MaxKeyLength, "pending fragment exceeds maximum key length")
	}
	if kana, ok := t.Lookup(string(buf)); ok {
		out.WriteString(kana)
		buf = buf[:0]
	}
	res.Committed = out.String()
	res.Pending = string(buf)
	tracer().Debugf("resolve %q => committed=%q pending=%q", raw, res.Committed, res.Pending)
	return res
}

// step applies the resolution rules once, after a character has been
// appended to buf:
//
//   - a doubled geminating consonant emits a small tsu and keeps one consonant
//   - an exact key match emits its syllable and clears buf
//   - a full-length buf emits its leading two-letter key, if any, or else
//     passes its first character through
//   - a two-letter buf which cannot grow into a key passes its first
//     character through
//
// Everything else (one character, or a two-letter prefix of a longer key)
// is held. Whatever remains after a shift waits for the next character.
func (t *Table) step(buf []byte, out *strings.Builder, literals *int) []byte {
	if len(buf) == 2 && buf[0] == buf[1] && t.Geminates(buf[0]) {
		out.WriteString(t.smallTsu)
		buf = shift(buf, 1)
	}
	if kana, ok := t.Lookup(string(buf)); ok {
		out.WriteString(kana)
		return buf[:0]
	}
	switch {
	case len(buf) >= MaxKeyLength:
		if kana, ok := t.Lookup(string(buf[:2])); ok {
			out.WriteString(kana)
			return shift(buf, 2)
		}
	case len(buf) == 2 && !t.IsPrefix(string(buf)):
	default:
		return buf
	}
	out.WriteByte(buf[0])
	*literals++
	return shift(buf, 1)
}

// shift drops the first n bytes of buf in place.
func shift(buf []byte, n int) []byte {
	return append(buf[:0], buf[n:]...)
}
