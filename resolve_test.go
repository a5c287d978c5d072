package romkan_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/npillmayer/romkan"
	"github.com/npillmayer/romkan/tables"
)

var sampleInputs = []string{
	"", "a", "k", "ky", "kya", "sha", "tta", "nn", "n", "nk", "qa", "kyz",
	"gakkou", "shinbun", "shinnbunn", "ra-menn", "xtsu", "xxa", "zzz",
	"tsutsuji", "chotto", "konnnichiha", "wwwww", "-----", "lyaltu",
}

func randomInput(rnd *rand.Rand, n int) string {
	const keys = "abcdefghijklmnopqrstuvwxyz-aeiou"
	var b strings.Builder
	for range n {
		b.WriteByte(keys[rnd.Intn(len(keys))])
	}
	return b.String()
}

func TestResolveIsIdempotent(t *testing.T) {
	for _, table := range []*romkan.Table{tables.Hiragana(), tables.Katakana()} {
		for _, raw := range sampleInputs {
			first, second := table.Resolve(raw), table.Resolve(raw)
			if first != second {
				t.Errorf("%s: Resolve(%q) not stable: %+v vs %+v", table.Identifier, raw, first, second)
			}
		}
	}
}

func TestResolvePrefixGrowth(t *testing.T) {
	table := tables.Hiragana()
	rnd := rand.New(rand.NewSource(7))
	inputs := append([]string{}, sampleInputs...)
	for range 200 {
		inputs = append(inputs, randomInput(rnd, 1+rnd.Intn(12)))
	}
	for _, raw := range inputs {
		prev := table.Resolve("")
		for i := 1; i <= len(raw); i++ {
			next := table.Resolve(raw[:i])
			if len(next.Pending) >= romkan.MaxKeyLength {
				t.Fatalf("%q: pending fragment %q too long", raw[:i], next.Pending)
			}
			if next.Literals > prev.Literals {
				// a passed-through character may replace a trailing syllable
				prev = next
				continue
			}
			if !strings.HasPrefix(next.Committed, prev.Committed) {
				t.Fatalf("%q: committed output %q does not extend %q", raw[:i], next.Committed, prev.Committed)
			}
			if next.Committed == prev.Committed && next.Pending != prev.Pending+raw[i-1:i] {
				t.Fatalf("%q: nothing committed, but pending %q does not extend %q by one character",
					raw[:i], next.Pending, prev.Pending)
			}
			prev = next
		}
	}
}

func TestDeleteInvertsAppend(t *testing.T) {
	table := tables.Hiragana()
	for _, raw := range sampleInputs {
		for _, c := range "aknsty-" {
			eng := romkan.NewEngine(table)
			typeInto(eng, raw)
			eng.Append(c)
			eng.DeleteLast()
			want := table.Resolve(raw)
			if eng.Committed() != want.Committed || eng.Pending() != want.Pending {
				t.Errorf("%q + %q - 1 = %q|%q, want %q|%q", raw, c,
					eng.Committed(), eng.Pending(), want.Committed, want.Pending)
			}
		}
	}
}

func TestLongestMatchWins(t *testing.T) {
	table := tables.Hiragana()
	tests := []struct {
		raw  string
		want string
	}{
		{"sha", "しゃ"},
		{"kyo", "きょ"},
		{"tsu", "つ"},
		{"chi", "ち"},
		{"nya", "にゃ"},
	}
	for _, tt := range tests {
		res := table.Resolve(tt.raw)
		if res.Committed != tt.want || res.Pending != "" || res.Literals != 0 {
			t.Errorf("Resolve(%q) = %+v, want committed %q", tt.raw, res, tt.want)
		}
	}
}

func TestGeminationBeforeSyllable(t *testing.T) {
	hira, kata := tables.Hiragana(), tables.Katakana()
	tests := []struct {
		table *romkan.Table
		raw   string
		want  string
	}{
		{hira, "tta", "った"},
		{hira, "kka", "っか"},
		{hira, "sshi", "っし"},
		{hira, "cchi", "っち"},
		{hira, "ppyu", "っぴゅ"},
		{kata, "tto", "ット"},
	}
	for _, tt := range tests {
		if got := tt.table.Convert(tt.raw); got != tt.want {
			t.Errorf("Convert(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestFallbackTerminates(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for _, table := range []*romkan.Table{tables.Hiragana(), tables.Katakana()} {
		for range 500 {
			raw := randomInput(rnd, rnd.Intn(24))
			res := table.Resolve(raw)
			if raw != "" && res.Text() == "" {
				t.Fatalf("%s: input %q vanished", table.Identifier, raw)
			}
			if res.Literals > len(raw) {
				t.Fatalf("%s: input %q has %d literals", table.Identifier, raw, res.Literals)
			}
		}
	}
}

func TestFallbackWaitsForNextCharacter(t *testing.T) {
	table := tables.Hiragana()
	tests := []struct {
		raw       string
		committed string
		pending   string
		literals  int
	}{
		{"qa", "qあ", "", 1},
		{"qak", "qa", "k", 2},
		{"qua", "quあ", "", 2},
		{"kyyo", "kyよ", "", 2},
		{"kyyoka", "kyよか", "", 2},
		{"quaoohi", "quaooひ", "", 5},
		{"kyz", "k", "yz", 1},
		{"kyzak", "kyざ", "k", 2},
	}
	for _, tt := range tests {
		res := table.Resolve(tt.raw)
		if res.Committed != tt.committed || res.Pending != tt.pending || res.Literals != tt.literals {
			t.Errorf("Resolve(%q) = %+v, want committed=%q pending=%q literals=%d",
				tt.raw, res, tt.committed, tt.pending, tt.literals)
		}
	}
}

func TestRomanizeRoundTrip(t *testing.T) {
	tests := []struct {
		table   *romkan.Table
		reading string
		romaji  string
	}{
		{tables.Hiragana(), "がっこう", "gakkou"},
		{tables.Hiragana(), "しんぶん", "shinnbunn"},
		{tables.Hiragana(), "まっちゃ", "maccha"},
		{tables.Hiragana(), "らーめん", "ra-menn"},
		{tables.Hiragana(), "じゃんけん", "jannkenn"},
		{tables.Hiragana(), "ちょっと", "chotto"},
		{tables.Katakana(), "コーヒー", "ko-hi-"},
		{tables.Katakana(), "チェック", "chekku"},
		{tables.Katakana(), "パーティー", "pa-thi-"},
	}
	for _, tt := range tests {
		romaji, err := tt.table.Romanize(tt.reading)
		if err != nil {
			t.Errorf("Romanize(%q) failed: %v", tt.reading, err)
			continue
		}
		if romaji != tt.romaji {
			t.Errorf("Romanize(%q) = %q, want %q", tt.reading, romaji, tt.romaji)
		}
		if back := tt.table.Convert(romaji); back != tt.reading {
			t.Errorf("Convert(%q) = %q, want %q", romaji, back, tt.reading)
		}
	}
}
