package romkan

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/derekparker/trie"
)

// MaxKeyLength is the maximum length of a romaji key in a Table.
const MaxKeyLength = 3

// EntryReader yields syllable table entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type EntryReader interface {
	Next() (romaji string, kana string, err error)
}

// Table is an immutable mapping from romaji fragments to kana syllables.
//
// A table contains:
//   - syllable entries (compiled into a romaji key index + a syllable list)
//   - a reverse index from kana to the preferred romaji of each syllable
//   - the gemination setup: the small tsu glyph and the consonants which
//     produce it when doubled.
//
// Tables are safe for concurrent use once loaded.
type Table struct {
	keys       keyIndex
	syllables  []string   // syllable ID => kana
	romaji     []string   // syllable ID => romaji key
	kana       *trie.Trie // kana => preferred romaji
	maxKana    int        // longest kana value, in runes
	geminates  [128]bool
	smallTsu   string
	Identifier string // Identifies the table
}

// LoadTable compiles syllable entries from a streaming, format-agnostic source.
//
// The first romaji key listed for a kana value becomes its preferred
// romanization (see Romanize). Entries are validated: keys must consist of
// 1 to MaxKeyLength lowercase ASCII letters, or be a single hyphen; values
// must not be empty; no key may be listed twice, and no key may be a proper
// prefix of another key, as the longer one would never be reached.
//
// File format parsing is intentionally outside the base package. Use adapters
// like package kanadef to parse concrete formats and feed this API.
func LoadTable(name string, reader EntryReader) (*Table, error) {
	t := &Table{
		keys:       newDATBackend(),
		kana:       trie.New(),
		Identifier: fmt.Sprintf("syllables: %s", name),
	}
	for {
		romaji, kana, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if err := t.add(romaji, kana); err != nil {
			tracer().Errorf("table %s: %v", name, err)
			return nil, err
		}
	}
	if err := t.checkShadowing(); err != nil {
		tracer().Errorf("table %s: %v", name, err)
		return nil, err
	}
	t.keys.Freeze()
	tracer().Debugf("table %s: key index %s", name, t.keys.String())
	backend, used, total, maxStateID, fill := t.Stats()
	tracer().Infof("syllable table %q: %d entries, backend=%s used=%d total=%d fill=%.2f maxStateID=%d",
		name, len(t.syllables), backend, used, total, fill, maxStateID)
	return t, nil
}

func (t *Table) add(romaji, kana string) error {
	if !validKey(romaji) {
		return fmt.Errorf("invalid romaji key %q", romaji)
	}
	if kana == "" {
		return fmt.Errorf("empty kana for romaji key %q", romaji)
	}
	id := len(t.syllables)
	if !t.keys.Insert(romaji, id) {
		return fmt.Errorf("duplicate romaji key %q", romaji)
	}
	t.syllables = append(t.syllables, kana)
	t.romaji = append(t.romaji, romaji)
	t.addKana(kana, romaji)
	return nil
}

func (t *Table) addKana(kana, romaji string) {
	if _, ok := t.kana.Find(kana); ok {
		return // keep the first, preferred romanization
	}
	t.kana.Add(kana, romaji)
	t.maxKana = max(t.maxKana, utf8.RuneCountInString(kana))
}

func (t *Table) checkShadowing() error {
	for _, key := range t.romaji {
		for n := 1; n < len(key); n++ {
			if _, found, _ := t.keys.Lookup(key[:n]); found {
				return fmt.Errorf("romaji key %q shadows longer key %q", key[:n], key)
			}
		}
	}
	return nil
}

func validKey(key string) bool {
	if key == "-" {
		return true
	}
	if len(key) == 0 || len(key) > MaxKeyLength {
		return false
	}
	for i := 0; i < len(key); i++ {
		if key[i] < 'a' || key[i] > 'z' {
			return false
		}
	}
	return true
}

// SetGemination configures the small tsu glyph and the consonants which
// produce it when typed twice in a row ("kk" => "っk").
//
// A consonant whose doubled form starts a table key (e.g. "nn" for "ん")
// is rejected, as gemination would pre-empt that key.
// SetGemination is part of table construction and must not be called once
// a table is in use.
func (t *Table) SetGemination(glyph string, consonants string) error {
	if glyph == "" {
		return fmt.Errorf("empty gemination glyph for table %s", t.Identifier)
	}
	var set [128]bool
	for i := 0; i < len(consonants); i++ {
		c := consonants[i]
		if c < 'a' || c > 'z' {
			return fmt.Errorf("invalid gemination consonant %q", c)
		}
		doubled := string([]byte{c, c})
		if _, found, extends := t.keys.Lookup(doubled); found || extends {
			return fmt.Errorf("gemination consonant %q collides with romaji key %q", c, doubled)
		}
		set[c] = true
	}
	t.geminates = set
	t.smallTsu = glyph
	t.addKana(glyph, "")
	tracer().Debugf("table %s: gemination %q for consonants %q", t.Identifier, glyph, consonants)
	return nil
}

// Lookup returns the kana for an exact romaji key.
func (t *Table) Lookup(fragment string) (string, bool) {
	id, found, _ := t.keys.Lookup(fragment)
	if !found {
		return "", false
	}
	return t.syllables[id], true
}

// IsPrefix reports whether fragment is a strict prefix of a longer key.
func (t *Table) IsPrefix(fragment string) bool {
	_, _, extends := t.keys.Lookup(fragment)
	return extends
}

// TwoCharPrefixes returns all two-letter fragments which are not keys
// themselves, but extend to a three-letter key.
//
// Example: "ky" (kya, kyu, kyo), "sh" (sha, shi, …), "ts" (tsu).
func (t *Table) TwoCharPrefixes() []string {
	seen := make(map[string]bool)
	var prefixes []string
	for _, key := range t.romaji {
		if len(key) != 3 || seen[key[:2]] {
			continue
		}
		seen[key[:2]] = true
		prefixes = append(prefixes, key[:2])
	}
	sort.Strings(prefixes)
	return prefixes
}

// Geminates reports whether consonant c produces a small tsu when doubled.
func (t *Table) Geminates(c byte) bool {
	return c < 128 && t.geminates[c]
}

// SmallTsu returns the gemination glyph, or "" if gemination is not
// configured for this table.
func (t *Table) SmallTsu() string {
	return t.smallTsu
}

// Size returns the number of romaji keys in the table.
func (t *Table) Size() int {
	return len(t.syllables)
}

// ContainsKana reports whether glyph is one of the table's syllables.
func (t *Table) ContainsKana(glyph string) bool {
	if glyph == "" {
		return false
	}
	_, ok := t.kana.Find(glyph)
	return ok
}

// ValidReading reports whether reading consists of table syllables only.
// Digraphs are matched before single glyphs. The empty reading is valid.
func (t *Table) ValidReading(reading string) bool {
	_, ok := t.segment(reading)
	return ok
}

// Romanize returns romaji which converts back to reading with this table.
// It is intended for typing hints.
//
// Example (hiragana):
//
//	"がっこう" => "gakkou".
func (t *Table) Romanize(reading string) (string, error) {
	segments, ok := t.segment(reading)
	if !ok {
		return "", fmt.Errorf("reading %q contains glyphs not in table %s", reading, t.Identifier)
	}
	var b strings.Builder
	for i, seg := range segments {
		if seg.kana == t.smallTsu && i+1 < len(segments) {
			next := segments[i+1].romaji
			if next != "" && t.Geminates(next[0]) {
				b.WriteByte(next[0])
				continue
			}
		}
		if seg.romaji == "" {
			return "", fmt.Errorf("no romaji for %q in table %s", seg.kana, t.Identifier)
		}
		b.WriteString(seg.romaji)
	}
	return b.String(), nil
}

type segment struct {
	kana   string
	romaji string
}

// segment splits reading into table syllables, longest match first.
func (t *Table) segment(reading string) ([]segment, bool) {
	runes := []rune(reading)
	segments := make([]segment, 0, len(runes))
	for i := 0; i < len(runes); {
		n := min(t.maxKana, len(runes)-i)
		for ; n > 0; n-- {
			glyph := string(runes[i : i+n])
			if node, ok := t.kana.Find(glyph); ok {
				segments = append(segments, segment{kana: glyph, romaji: node.Meta().(string)})
				break
			}
		}
		if n == 0 {
			return nil, false
		}
		i += n
	}
	return segments, true
}

// Stats reports density metrics for the underlying romaji key index.
func (t *Table) Stats() (backend string, usedSlots, totalSlots, maxStateID int, fillRatio float64) {
	if t == nil || t.keys == nil {
		return "", 0, 0, 0, 0
	}
	stats := t.keys.Stats()
	return stats.Backend, stats.UsedSlots, stats.TotalSlots, stats.MaxStateID, stats.FillRatio()
}
