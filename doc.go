/*
Package romkan converts typed romaji into kana, one keystroke at a time.

The engine is meant for typing aids and drills: a caller feeds key presses
into an Engine and reads back the current kana rendering after every
keystroke. Resolution follows a longest-match policy over a syllable Table:
three-letter keys win over two-letter keys, which win over single letters.
Fragments that may still grow into a longer key are held back until the
next keystroke decides. Doubled consonants produce a small tsu ("tta" =>
"った").

Input that never forms a table key is passed through literally, so the user
always sees something for every keystroke. Strict validation is left to the
caller comparing the output against an expected reading.

Tables are data. Package kanadef reads the textual table format, package
tables embeds the standard hiragana and katakana tables:

	eng := romkan.NewEngine(tables.Hiragana())
	for _, r := range "sushi" {
	    eng.Append(r)
	}
	fmt.Println(eng.Output()) // すし

Resolution re-processes the complete raw input after every change. Raw
input of a single input field stays short, so this is cheap and keeps the
result a pure function of what has been typed.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package romkan

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'romkan'
func tracer() tracing.Trace {
	return tracing.Select("romkan")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
